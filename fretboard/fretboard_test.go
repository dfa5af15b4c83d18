package fretboard

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"fretdrill/model"
	"fretdrill/pitch"
)

func TestOpenStringsOfStandardTuning(t *testing.T) {
	tuning := model.StandardTuning()
	expected := []string{"E2", "A2", "D3", "G3", "B3", "E4"}
	for s, want := range expected {
		t.Run(fmt.Sprintf("string %d is %v", s, want), func(t *testing.T) {
			p, err := PitchAt(tuning, s, 0)
			assert.NoError(t, err)
			assert.Equal(t, want, p.String())
		})
	}
}

func TestFretTwelveIsOneOctaveUp(t *testing.T) {
	assert := assert.New(t)
	tuning := model.StandardTuning()

	for s := 0; s < 6; s++ {
		open, err := PitchAt(tuning, s, 0)
		assert.NoError(err)
		octave, err := PitchAt(tuning, s, 12)
		assert.NoError(err)

		assert.Equal(open.Class, octave.Class)
		assert.Equal(open.Value()+12, octave.Value())

		openNote, err := NoteAt(tuning, s, 0)
		assert.NoError(err)
		octaveNote, err := NoteAt(tuning, s, 12)
		assert.NoError(err)
		assert.Equal(openNote.String(), octaveNote.String())
	}
}

func TestRejectsBadPositions(t *testing.T) {
	assert := assert.New(t)
	tuning := model.StandardTuning()

	_, err := NoteAt(tuning, -1, 0)
	assert.ErrorIs(err, ErrInvalidString)
	_, err = NoteAt(tuning, 6, 0)
	assert.ErrorIs(err, ErrInvalidString)
	_, err = NoteAt(tuning, 0, -1)
	assert.ErrorIs(err, ErrInvalidFret)
	_, err = NoteAt(tuning, 0, 25)
	assert.ErrorIs(err, ErrInvalidFret)
}

func TestClassPositionsFindsEveryOctave(t *testing.T) {
	assert := assert.New(t)
	tuning := model.StandardTuning()

	e, err := pitch.ParseClass("E")
	assert.NoError(err)

	positions := ClassPositions(tuning, e, 12)
	assert.NotEmpty(positions)

	// both open E strings are present, as are fretted unisons/octaves
	assert.Contains(positions, model.FretPosition{String: 0, Fret: 0})
	assert.Contains(positions, model.FretPosition{String: 5, Fret: 0})
	assert.Contains(positions, model.FretPosition{String: 0, Fret: 12})
	assert.Contains(positions, model.FretPosition{String: 1, Fret: 7})

	for _, pos := range positions {
		note, err := NoteAt(tuning, pos.String, pos.Fret)
		assert.NoError(err)
		assert.Equal(e, note)
	}
}

func TestPitchPositionsMatchesExactOctave(t *testing.T) {
	assert := assert.New(t)
	tuning := model.StandardTuning()

	e4, err := pitch.Parse("E4")
	assert.NoError(err)

	// E4 needs fret 24/19/14 on the three lowest strings, out of reach
	// below fret 12; only the three highest strings qualify
	positions := PitchPositions(tuning, e4, 12)
	assert.Equal([]model.FretPosition{
		{String: 3, Fret: 9},
		{String: 4, Fret: 5},
		{String: 5, Fret: 0},
	}, positions)

	for _, pos := range positions {
		p, err := PitchAt(tuning, pos.String, pos.Fret)
		assert.NoError(err)
		assert.Equal(e4.Value(), p.Value())
	}
}
