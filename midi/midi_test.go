package midi

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"fretdrill/model"
)

// C major root-position shape: C3 E3 G3
var cMajorVoicing = model.Voicing{
	{String: 0, Fret: 8},
	{String: 1, Fret: 7},
	{String: 2, Fret: 5},
}

func TestVoicingSMFContainsTheChordNotes(t *testing.T) {
	assert := assert.New(t)

	s, err := VoicingSMF(model.StandardTuning(), cMajorVoicing, 90)
	assert.NoError(err)
	assert.Len(s.Tracks, 1)

	var ons, offs []uint8
	for _, evt := range s.Tracks[0] {
		var ch, key, vel uint8
		switch {
		case evt.Message.GetNoteOn(&ch, &key, &vel):
			ons = append(ons, key)
		case evt.Message.GetNoteOff(&ch, &key, &vel):
			offs = append(offs, key)
		}
	}

	assert.Equal([]uint8{48, 52, 55}, ons)
	assert.ElementsMatch(ons, offs)
}

func TestVoicingSMFRejectsInvalidPositions(t *testing.T) {
	bad := model.Voicing{{String: 9, Fret: 0}, {String: 1, Fret: 0}, {String: 2, Fret: 0}}
	_, err := VoicingSMF(model.StandardTuning(), bad, 90)
	assert.Error(t, err)
}

func TestWriteAndReadBack(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "c-major.mid")
	err := WriteVoicingFile(model.StandardTuning(), cMajorVoicing, 90, path)
	assert.NoError(err)

	s, err := ReadFile(path)
	assert.NoError(err)
	assert.Len(s.Tracks, 1)
}
