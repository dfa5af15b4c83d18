package triad

import (
	"errors"
	"fmt"
	"strings"

	"fretdrill/pitch"
)

var (
	ErrInvalidQuality   = errors.New("invalid triad quality")
	ErrInvalidInversion = errors.New("invalid inversion")
	ErrInvalidChordName = errors.New("invalid chord name")
)

// Quality is a closed enumeration of the four triad qualities. The
// interval table is fixed at compile time so a quality can never
// produce fewer than 3 distinct pitch classes.
type Quality int

const (
	Major Quality = iota
	Minor
	Diminished
	Augmented
)

var qualityNames = [4]string{"major", "minor", "diminished", "augmented"}

// Semitone offsets of root, third and fifth for each quality.
var qualityIntervals = [4][3]int{
	Major:      {0, 4, 7},
	Minor:      {0, 3, 7},
	Diminished: {0, 3, 6},
	Augmented:  {0, 4, 8},
}

func (q Quality) Valid() bool {
	return q >= Major && q <= Augmented
}

func (q Quality) String() string {
	if !q.Valid() {
		return fmt.Sprintf("Quality(%d)", int(q))
	}
	return qualityNames[q]
}

// Intervals returns the ascending semitone offsets from the root.
func (q Quality) Intervals() [3]int {
	return qualityIntervals[q]
}

func ParseQuality(s string) (Quality, error) {
	for i, n := range qualityNames {
		if n == s {
			return Quality(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidQuality, s)
}

// Inversion names which chord tone is intended as the bass.
type Inversion int

const (
	RootPosition Inversion = iota
	FirstInversion
	SecondInversion
)

var inversionNames = [3]string{"root position", "first inversion", "second inversion"}

func (i Inversion) Valid() bool {
	return i >= RootPosition && i <= SecondInversion
}

func (i Inversion) String() string {
	if !i.Valid() {
		return fmt.Sprintf("Inversion(%d)", int(i))
	}
	return inversionNames[i]
}

func ParseInversion(s string) (Inversion, error) {
	for i, n := range inversionNames {
		if n == s {
			return Inversion(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidInversion, s)
}

// Triad identifies a chord to drill: root, quality and intended bass.
type Triad struct {
	Root      pitch.Class
	Quality   Quality
	Inversion Inversion
}

// PitchClasses returns the triad's notes in canonical order: root,
// third, fifth. The 3 classes are always pairwise distinct.
func PitchClasses(root pitch.Class, q Quality) ([3]pitch.Class, error) {
	var res [3]pitch.Class
	if !root.Valid() {
		return res, fmt.Errorf("%w: class %d", pitch.ErrInvalidNoteName, int(root))
	}
	if !q.Valid() {
		return res, fmt.Errorf("%w: %d", ErrInvalidQuality, int(q))
	}
	for i, iv := range q.Intervals() {
		res[i] = pitch.Class((int(root) + iv) % 12)
	}
	return res, nil
}

// RotateForInversion rotates the canonical (root, third, fifth) triple
// so that index 0 is the intended bass note.
func RotateForInversion(notes [3]pitch.Class, inv Inversion) [3]pitch.Class {
	var res [3]pitch.Class
	for i := 0; i < 3; i++ {
		res[i] = notes[(i+int(inv))%3]
	}
	return res
}

// Bass is the pitch class the inversion intends to sound lowest.
func (t Triad) Bass() (pitch.Class, error) {
	notes, err := PitchClasses(t.Root, t.Quality)
	if err != nil {
		return 0, err
	}
	if !t.Inversion.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidInversion, int(t.Inversion))
	}
	return RotateForInversion(notes, t.Inversion)[0], nil
}

func (t Triad) Name() string {
	return FormatName(t.Root, t.Quality, t.Inversion)
}

// FormatName renders e.g. "C major", "F# diminished (second inversion)".
// Root position carries no suffix. ParseName is its exact inverse.
func FormatName(root pitch.Class, q Quality, inv Inversion) string {
	name := fmt.Sprintf("%v %v", root, q)
	if inv != RootPosition {
		name += fmt.Sprintf(" (%v)", inv)
	}
	return name
}

// ParseName reads the chord names produced by FormatName. Flat root
// spellings are accepted and normalized to the sharp-canonical class.
func ParseName(s string) (Triad, error) {
	var t Triad

	rest := s
	inv := RootPosition
	if open := strings.Index(rest, " ("); open != -1 {
		if !strings.HasSuffix(rest, ")") {
			return t, fmt.Errorf("%w: %q", ErrInvalidChordName, s)
		}
		parsed, err := ParseInversion(rest[open+2 : len(rest)-1])
		if err != nil {
			return t, fmt.Errorf("%w: %q", ErrInvalidChordName, s)
		}
		inv = parsed
		rest = rest[:open]
	}

	parts := strings.SplitN(rest, " ", 2)
	if len(parts) != 2 {
		return t, fmt.Errorf("%w: %q", ErrInvalidChordName, s)
	}
	root, err := pitch.ParseClass(parts[0])
	if err != nil {
		return t, fmt.Errorf("%w: %q", ErrInvalidChordName, s)
	}
	q, err := ParseQuality(parts[1])
	if err != nil {
		return t, fmt.Errorf("%w: %q", ErrInvalidChordName, s)
	}

	t.Root = root
	t.Quality = q
	t.Inversion = inv
	return t, nil
}
