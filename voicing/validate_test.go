package voicing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fretdrill/model"
	"fretdrill/pitch"
	"fretdrill/triad"
)

func cMajorNotes(t *testing.T) [3]pitch.Class {
	t.Helper()
	notes, err := triad.PitchClasses(0, triad.Major)
	assert.NoError(t, err)
	return notes
}

func TestHasUniqueCorrectNotes(t *testing.T) {
	assert := assert.New(t)
	tuning := model.StandardTuning()
	notes := cMajorNotes(t)

	// C3 E3 G3
	good := model.Voicing{{String: 0, Fret: 8}, {String: 1, Fret: 7}, {String: 2, Fret: 5}}
	assert.True(HasUniqueCorrectNotes(tuning, good, notes))

	// C3 C4 G3: doubles the root, drops the third
	doubled := model.Voicing{{String: 0, Fret: 8}, {String: 1, Fret: 15}, {String: 2, Fret: 5}}
	assert.False(HasUniqueCorrectNotes(tuning, doubled, notes))

	// C3 F3 G3: foreign note
	foreign := model.Voicing{{String: 0, Fret: 8}, {String: 1, Fret: 8}, {String: 2, Fret: 5}}
	assert.False(HasUniqueCorrectNotes(tuning, foreign, notes))

	// two positions on the same string
	sameString := model.Voicing{{String: 0, Fret: 8}, {String: 0, Fret: 12}, {String: 2, Fret: 5}}
	assert.False(HasUniqueCorrectNotes(tuning, sameString, notes))
}

func TestSpans(t *testing.T) {
	assert := assert.New(t)
	tuning := model.StandardTuning()

	v := model.Voicing{{String: 0, Fret: 8}, {String: 1, Fret: 7}, {String: 2, Fret: 5}}
	assert.Equal(3, FretSpan(v))
	assert.Equal(2, StringSpan(v))

	span, ok := PitchSpan(tuning, v)
	assert.True(ok)
	assert.Equal(7, span) // C3 to G3

	wide := model.Voicing{{String: 0, Fret: 0}, {String: 3, Fret: 2}, {String: 5, Fret: 0}}
	assert.Equal(5, StringSpan(wide))
}

func TestBassClassBreaksTiesByPitchNotString(t *testing.T) {
	assert := assert.New(t)
	tuning := model.StandardTuning()

	// string 0 fret 10 sounds D3 (50); open string 1 sounds A2 (45).
	// The bass is A even though it sits on a higher-numbered string.
	v := model.Voicing{{String: 0, Fret: 10}, {String: 1, Fret: 0}, {String: 2, Fret: 0}}
	bass, ok := BassClass(tuning, v)
	assert.True(ok)
	assert.Equal("A", bass.String())
}

func TestMatchesInversion(t *testing.T) {
	assert := assert.New(t)
	tuning := model.StandardTuning()
	notes := cMajorNotes(t)

	// G2 C3 E3: second-inversion shape
	v := model.Voicing{{String: 0, Fret: 3}, {String: 1, Fret: 3}, {String: 2, Fret: 2}}
	assert.True(MatchesInversion(tuning, v, notes, triad.SecondInversion))
	assert.False(MatchesInversion(tuning, v, notes, triad.RootPosition))
	assert.False(MatchesInversion(tuning, v, notes, triad.FirstInversion))
}
