// Package voicing finds and validates playable triad voicings.
//
// The validator half is a set of pure predicates over (tuning, voicing)
// pairs. The search engine consumes them but they are usable standalone
// to verify a voicing from any source.
package voicing

import (
	"fretdrill/fretboard"
	"fretdrill/model"
	"fretdrill/pitch"
	"fretdrill/triad"
)

// soundingPitches resolves each position to its absolute pitch. ok is
// false when any position is invalid for the tuning.
func soundingPitches(t model.Tuning, v model.Voicing) ([3]pitch.Pitch, bool) {
	var res [3]pitch.Pitch
	for i, pos := range v {
		p, err := fretboard.PitchAt(t, pos.String, pos.Fret)
		if err != nil {
			return res, false
		}
		res[i] = p
	}
	return res, true
}

// OnDistinctStrings reports whether the three positions use three
// different strings.
func OnDistinctStrings(v model.Voicing) bool {
	return v[0].String != v[1].String &&
		v[0].String != v[2].String &&
		v[1].String != v[2].String
}

// HasUniqueCorrectNotes reports whether the voicing's pitch classes are
// pairwise distinct and exactly the wanted triple: no repeats, no
// omissions, no foreign notes.
func HasUniqueCorrectNotes(t model.Tuning, v model.Voicing, want [3]pitch.Class) bool {
	if !OnDistinctStrings(v) {
		return false
	}
	ps, ok := soundingPitches(t, v)
	if !ok {
		return false
	}
	var used [3]bool
	for _, p := range ps {
		matched := false
		for i, w := range want {
			if !used[i] && p.Class == w {
				used[i] = true
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// FretSpan is the distance between the voicing's lowest and highest
// fret, a proxy for the hand span needed to play it.
func FretSpan(v model.Voicing) int {
	lo, hi := v[0].Fret, v[0].Fret
	for _, pos := range v[1:] {
		if pos.Fret < lo {
			lo = pos.Fret
		}
		if pos.Fret > hi {
			hi = pos.Fret
		}
	}
	return hi - lo
}

// StringSpan is the distance between the voicing's lowest and highest
// string index.
func StringSpan(v model.Voicing) int {
	lo, hi := v[0].String, v[0].String
	for _, pos := range v[1:] {
		if pos.String < lo {
			lo = pos.String
		}
		if pos.String > hi {
			hi = pos.String
		}
	}
	return hi - lo
}

// PitchSpan is the semitone distance between the voicing's lowest and
// highest sounding pitch.
func PitchSpan(t model.Tuning, v model.Voicing) (int, bool) {
	ps, ok := soundingPitches(t, v)
	if !ok {
		return 0, false
	}
	lo, hi := ps[0].Value(), ps[0].Value()
	for _, p := range ps[1:] {
		if p.Value() < lo {
			lo = p.Value()
		}
		if p.Value() > hi {
			hi = p.Value()
		}
	}
	return hi - lo, true
}

// BassClass is the pitch class of the voicing's lowest sounding member.
// Lowest means lowest absolute pitch, NOT lowest string index: a high
// fret on a low string can sound above an open higher string.
func BassClass(t model.Tuning, v model.Voicing) (pitch.Class, bool) {
	ps, ok := soundingPitches(t, v)
	if !ok {
		return 0, false
	}
	lowest := ps[0]
	for _, p := range ps[1:] {
		if p.Value() < lowest.Value() {
			lowest = p
		}
	}
	return lowest.Class, true
}

// MatchesInversion reports whether the voicing's actual bass is the
// bass the inversion intends for the given triad notes.
func MatchesInversion(t model.Tuning, v model.Voicing, notes [3]pitch.Class, inv triad.Inversion) bool {
	bass, ok := BassClass(t, v)
	if !ok {
		return false
	}
	return bass == triad.RotateForInversion(notes, inv)[0]
}
