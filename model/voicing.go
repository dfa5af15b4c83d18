package model

import (
	"fmt"

	"fretdrill/pitch"
)

// Tuning is the ordered open-string pitches of a six-string instrument.
// String 0 is the LOWEST-pitched (thickest) string and string 5 the
// highest. Every collaborator — fretboard math, voicing search, scoring,
// display — relies on this ordering.
type Tuning [6]pitch.Pitch

// StandardTuning is E2 A2 D3 G3 B3 E4 (values 40 45 50 55 59 64).
func StandardTuning() Tuning {
	return Tuning{
		{Class: 4, Octave: 2},  // E2
		{Class: 9, Octave: 2},  // A2
		{Class: 2, Octave: 3},  // D3
		{Class: 7, Octave: 3},  // G3
		{Class: 11, Octave: 3}, // B3
		{Class: 4, Octave: 4},  // E4
	}
}

// FretPosition is a fretted (or open, fret 0) location on one string.
type FretPosition struct {
	String int `json:"string"`
	Fret   int `json:"fret"`
}

// Voicing is three positions on three distinct strings, ordered by
// ascending string index, realizing a triad's three pitch classes.
type Voicing [3]FretPosition

// Key is a canonical string form used to deduplicate voicings that use
// the same string/fret set.
func (v Voicing) Key() string {
	var res string
	for i, p := range v {
		res += fmt.Sprintf("%v:%v", p.String, p.Fret)
		if i < len(v)-1 {
			res += "-"
		}
	}
	return res
}
