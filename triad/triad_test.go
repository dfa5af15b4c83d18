package triad

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"fretdrill/pitch"
)

func TestCMajorIsCEG(t *testing.T) {
	assert := assert.New(t)

	root, err := pitch.ParseClass("C")
	assert.NoError(err)

	// call twice: the table is fixed, results never drift
	for i := 0; i < 2; i++ {
		notes, err := PitchClasses(root, Major)
		assert.NoError(err)
		assert.Equal("C", notes[0].String())
		assert.Equal("E", notes[1].String())
		assert.Equal("G", notes[2].String())
	}
}

func TestAllQualitiesProduceThreeDistinctClasses(t *testing.T) {
	for root := 0; root < 12; root++ {
		for _, q := range []Quality{Major, Minor, Diminished, Augmented} {
			name := fmt.Sprintf("%v %v", pitch.Class(root), q)
			t.Run(name, func(t *testing.T) {
				notes, err := PitchClasses(pitch.Class(root), q)
				assert.NoError(t, err)
				assert.NotEqual(t, notes[0], notes[1])
				assert.NotEqual(t, notes[0], notes[2])
				assert.NotEqual(t, notes[1], notes[2])
			})
		}
	}
}

func TestRotateForInversion(t *testing.T) {
	assert := assert.New(t)

	notes, err := PitchClasses(0, Major) // C E G
	assert.NoError(err)

	root := RotateForInversion(notes, RootPosition)
	assert.Equal("C", root[0].String())

	first := RotateForInversion(notes, FirstInversion)
	assert.Equal("E", first[0].String())
	assert.Equal("G", first[1].String())
	assert.Equal("C", first[2].String())

	second := RotateForInversion(notes, SecondInversion)
	assert.Equal("G", second[0].String())
}

func TestFormatParseRoundTripsEveryCombination(t *testing.T) {
	for root := 0; root < 12; root++ {
		for q := Major; q <= Augmented; q++ {
			for inv := RootPosition; inv <= SecondInversion; inv++ {
				name := FormatName(pitch.Class(root), q, inv)
				t.Run(name, func(t *testing.T) {
					parsed, err := ParseName(name)
					assert.NoError(t, err)
					assert.Equal(t, Triad{Root: pitch.Class(root), Quality: q, Inversion: inv}, parsed)
				})
			}
		}
	}
}

func TestParseNameAcceptsFlatRoots(t *testing.T) {
	assert := assert.New(t)

	parsed, err := ParseName("Bb minor (first inversion)")
	assert.NoError(err)
	assert.Equal("A#", parsed.Root.String())
	assert.Equal(Minor, parsed.Quality)
	assert.Equal(FirstInversion, parsed.Inversion)
}

func TestParseNameRejectsGarbage(t *testing.T) {
	cases := []string{
		"",
		"C",
		"C major7",
		"H major",
		"C major (third inversion)",
		"C major (first inversion",
	}
	for _, name := range cases {
		t.Run(fmt.Sprintf("rejects %q", name), func(t *testing.T) {
			_, err := ParseName(name)
			assert.ErrorIs(t, err, ErrInvalidChordName)
		})
	}
}

func TestInvalidArgumentsFailFast(t *testing.T) {
	assert := assert.New(t)

	_, err := PitchClasses(12, Major)
	assert.Error(err)
	_, err = PitchClasses(0, Quality(4))
	assert.ErrorIs(err, ErrInvalidQuality)

	bad := Triad{Root: 0, Quality: Major, Inversion: Inversion(3)}
	_, err = bad.Bass()
	assert.ErrorIs(err, ErrInvalidInversion)
}

func TestBass(t *testing.T) {
	assert := assert.New(t)

	bass, err := Triad{Root: 0, Quality: Major, Inversion: SecondInversion}.Bass()
	assert.NoError(err)
	assert.Equal("G", bass.String())
}
