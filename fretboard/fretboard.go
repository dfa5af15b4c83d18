// Package fretboard maps (string, fret) positions to pitches for a
// caller-supplied tuning. It holds no state.
package fretboard

import (
	"errors"
	"fmt"

	"fretdrill/constants"
	"fretdrill/model"
	"fretdrill/pitch"
)

var (
	ErrInvalidString = errors.New("string index out of range")
	ErrInvalidFret   = errors.New("fret out of range")
)

// PitchAt returns the sounding pitch of a position: the open-string
// pitch raised by one semitone per fret.
func PitchAt(t model.Tuning, stringIdx, fret int) (pitch.Pitch, error) {
	if stringIdx < 0 || stringIdx >= len(t) {
		return pitch.Pitch{}, fmt.Errorf("%w: %d", ErrInvalidString, stringIdx)
	}
	if fret < 0 || fret > constants.MaxFretLimit {
		return pitch.Pitch{}, fmt.Errorf("%w: %d", ErrInvalidFret, fret)
	}
	return t[stringIdx].AddSemitones(fret)
}

// NoteAt is PitchAt reduced to a pitch class.
func NoteAt(t model.Tuning, stringIdx, fret int) (pitch.Class, error) {
	p, err := PitchAt(t, stringIdx, fret)
	if err != nil {
		return 0, err
	}
	return p.Class, nil
}

// ClassPositions returns every position within maxFret sounding the
// given pitch class, in any octave, ordered by string then fret.
func ClassPositions(t model.Tuning, c pitch.Class, maxFret int) []model.FretPosition {
	var res []model.FretPosition
	for s := range t {
		for f := 0; f <= maxFret; f++ {
			p, err := PitchAt(t, s, f)
			if err != nil {
				break
			}
			if p.Class == c {
				res = append(res, model.FretPosition{String: s, Fret: f})
			}
		}
	}
	return res
}

// PitchPositions returns every position within maxFret sounding the
// exact pitch (class and octave).
func PitchPositions(t model.Tuning, target pitch.Pitch, maxFret int) []model.FretPosition {
	var res []model.FretPosition
	for s := range t {
		f := target.Value() - t[s].Value()
		if f >= 0 && f <= maxFret && f <= constants.MaxFretLimit {
			res = append(res, model.FretPosition{String: s, Fret: f})
		}
	}
	return res
}
