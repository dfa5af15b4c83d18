package cmd

import (
	"fmt"
	"time"

	"github.com/bep/debounce"
	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"fretdrill/pitch"
	"fretdrill/triad"
)

func init() {
	rootCmd.AddCommand(listenCmd)
}

var listenCmd = &cobra.Command{
	Use:   "listen <chord>",
	Short: "Grades a chord played on a MIDI instrument",
	Long:  `Listens on the first MIDI input port and reports when the held notes match the chord.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := triad.ParseName(args[0])
		if err != nil {
			return err
		}
		notes, err := triad.PitchClasses(t.Root, t.Quality)
		if err != nil {
			return err
		}
		return listen(t, notes)
	},
}

// OnNotes tracks the MIDI keys currently held down.
type OnNotes = map[uint8]bool

// matchesTriad reduces the held keys to pitch classes and compares the
// set against the triad's three classes. Inversion is deliberately not
// graded here: a keyboard answer has no fret positions to check.
func matchesTriad(onNotes OnNotes, want [3]pitch.Class) bool {
	held := make(map[pitch.Class]bool)
	for key := range onNotes {
		held[pitch.Class(key%12)] = true
	}
	if len(held) != len(want) {
		return false
	}
	for _, w := range want {
		if !held[w] {
			return false
		}
	}
	return true
}

func listen(t triad.Triad, notes [3]pitch.Class) error {
	defer gomidi.CloseDriver()

	in, err := gomidi.InPort(0)
	if err != nil {
		return fmt.Errorf("can't find a MIDI input port: %w", err)
	}

	fmt.Printf("Play %v...\n", t.Name())

	onNotes := make(OnNotes)
	matched := make(chan struct{})

	// grade only once the flurry of note events settles; the debounced
	// func runs off the listener goroutine, so hand it a snapshot
	debounced := debounce.New(300 * time.Millisecond)
	grade := func() {
		snapshot := make(OnNotes, len(onNotes))
		for key := range onNotes {
			snapshot[key] = true
		}
		debounced(func() {
			if matchesTriad(snapshot, notes) {
				select {
				case matched <- struct{}{}:
				default:
				}
			}
		})
	}

	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		var ch, key, vel uint8
		switch {
		case msg.GetNoteStart(&ch, &key, &vel):
			onNotes[key] = true
			grade()
		case msg.GetNoteEnd(&ch, &key):
			delete(onNotes, key)
			grade()
		default:
			// ignore
		}
	})
	if err != nil {
		return err
	}
	defer stop()

	started := time.Now()
	<-matched
	fmt.Printf("Correct! %v in %.1fs\n", t.Name(), time.Since(started).Seconds())
	return nil
}
