package pitch

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrInvalidNoteName = errors.New("invalid note name")
	ErrInvalidOctave   = errors.New("octave out of range")
)

// Class is a chromatic pitch class, 0=C through 11=B. Equality is by
// index; enharmonic spellings parse to the same Class.
type Class int

const (
	MinOctave = 0
	MaxOctave = 9
)

var classNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

// flat spellings accepted on input; output always uses the sharp names
var flatAliases = map[string]Class{
	"Db": 1,
	"Eb": 3,
	"Gb": 6,
	"Ab": 8,
	"Bb": 10,
}

func (c Class) Valid() bool {
	return c >= 0 && c < 12
}

func (c Class) String() string {
	if !c.Valid() {
		return fmt.Sprintf("Class(%d)", int(c))
	}
	return classNames[c]
}

// Aliases returns the alternate spellings of c. Natural notes have none;
// each of the 5 accidental classes has exactly one flat alias.
func (c Class) Aliases() []string {
	var res []string
	for name, class := range flatAliases {
		if class == c {
			res = append(res, name)
		}
	}
	return res
}

// ParseClass accepts canonical sharp names ("F#") and the common flat
// spellings ("Gb").
func ParseClass(name string) (Class, error) {
	for i, n := range classNames {
		if n == name {
			return Class(i), nil
		}
	}
	if c, ok := flatAliases[name]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidNoteName, name)
}

// Pitch is a pitch class qualified with an octave, e.g. C4.
type Pitch struct {
	Class  Class
	Octave int
}

func New(c Class, octave int) (Pitch, error) {
	if !c.Valid() {
		return Pitch{}, fmt.Errorf("%w: class %d", ErrInvalidNoteName, int(c))
	}
	if octave < MinOctave || octave > MaxOctave {
		return Pitch{}, fmt.Errorf("%w: %d", ErrInvalidOctave, octave)
	}
	return Pitch{Class: c, Octave: octave}, nil
}

// Parse reads scientific notation like "C#4" or "Db4".
func Parse(s string) (Pitch, error) {
	if len(s) < 2 {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidNoteName, s)
	}
	octave, err := strconv.Atoi(s[len(s)-1:])
	if err != nil {
		return Pitch{}, fmt.Errorf("%w: %q", ErrInvalidNoteName, s)
	}
	c, err := ParseClass(s[:len(s)-1])
	if err != nil {
		return Pitch{}, err
	}
	return New(c, octave)
}

// Value is the absolute semitone value, octave*12 + class + 12. This
// matches the MIDI note numbering: C4 is 60 and A4 is 69.
func (p Pitch) Value() int {
	return p.Octave*12 + int(p.Class) + 12
}

// FromValue is the inverse of Value.
func FromValue(v int) (Pitch, error) {
	if v < 12 {
		return Pitch{}, fmt.Errorf("%w: value %d", ErrInvalidOctave, v)
	}
	return New(Class(v%12), v/12-1)
}

// AddSemitones transposes by n semitones (n may be negative), carrying
// the octave across class boundaries. Fails if the result leaves the
// 0-9 octave range.
func (p Pitch) AddSemitones(n int) (Pitch, error) {
	return FromValue(p.Value() + n)
}

func (p Pitch) String() string {
	return fmt.Sprintf("%v%d", p.Class, p.Octave)
}
