// Package midi renders voicings as standard MIDI files so external
// players can audition them.
package midi

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"fretdrill/fretboard"
	"fretdrill/model"
)

const ticksPerQuarter = 960

// VoicingSMF builds a one-track SMF that strums the voicing low string
// to high, an eighth note apart, then lets the chord ring for two
// beats. Pitch.Value doubles as the MIDI note number.
func VoicingSMF(tuning model.Tuning, v model.Voicing, bpm float64) (*smf.SMF, error) {
	var keys []uint8
	for _, pos := range v {
		p, err := fretboard.PitchAt(tuning, pos.String, pos.Fret)
		if err != nil {
			return nil, err
		}
		keys = append(keys, uint8(p.Value()))
	}

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(bpm))
	for i, key := range keys {
		var delta uint32
		if i > 0 {
			delta = ticksPerQuarter / 2
		}
		tr.Add(delta, midi.NoteOn(0, key, 100))
	}
	tr.Add(ticksPerQuarter*2, midi.NoteOff(0, keys[0]))
	for _, key := range keys[1:] {
		tr.Add(0, midi.NoteOff(0, key))
	}
	tr.Close(0)

	var res smf.SMF
	res.TimeFormat = smf.MetricTicks(ticksPerQuarter)
	res.Tracks = append(res.Tracks, tr)
	return &res, nil
}

// WriteVoicingFile writes the strummed voicing to path as a .mid file.
func WriteVoicingFile(tuning model.Tuning, v model.Voicing, bpm float64, path string) error {
	s, err := VoicingSMF(tuning, v, bpm)
	if err != nil {
		return err
	}
	return s.WriteFile(path)
}

// ReadFile parses a standard MIDI file.
func ReadFile(filepath string) (s *smf.SMF, e error) {
	var blank smf.SMF

	// the smf parser panics on some malformed files
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			e = errors.New(r)
		}
	}()

	dat, err := os.ReadFile(filepath)
	if err != nil {
		return &blank, fmt.Errorf("error reading midi file... %w", err)
	}
	res, err := smf.ReadFrom(bytes.NewReader(dat))
	if err != nil {
		return &blank, fmt.Errorf("error parsing midi file... %w", err)
	}
	return res, nil
}
