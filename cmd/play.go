package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	gomidi "gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // autoregisters driver

	"fretdrill/constants"
	"fretdrill/fretboard"
	"fretdrill/model"
	"fretdrill/triad"
	"fretdrill/voicing"
)

func init() {
	playCmd.Flags().IntVar(&flagMaxFret, "max-fret", constants.DefaultMaxFret, "highest fret searched")
	rootCmd.AddCommand(playCmd)
}

var playCmd = &cobra.Command{
	Use:   "play <chord>",
	Short: "Plays a chord's best voicing over MIDI",
	Long:  `Finds the best voicing and strums it out the first MIDI output port.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := triad.ParseName(args[0])
		if err != nil {
			return err
		}
		tuning := model.StandardTuning()
		v, ok, err := voicing.Find(t.Root, t.Quality, t.Inversion, tuning, flagMaxFret)
		if err != nil {
			return err
		}
		if !ok {
			fmt.Printf("No playable voicing for %v below fret %v\n", t.Name(), flagMaxFret)
			return nil
		}
		return playVoicing(tuning, v)
	},
}

func playVoicing(tuning model.Tuning, v model.Voicing) error {
	defer gomidi.CloseDriver()

	out, err := gomidi.OutPort(0)
	if err != nil {
		return fmt.Errorf("can't find a MIDI output port: %w", err)
	}
	send, err := gomidi.SendTo(out)
	if err != nil {
		return err
	}

	var keys []uint8
	for _, pos := range v {
		p, err := fretboard.PitchAt(tuning, pos.String, pos.Fret)
		if err != nil {
			return err
		}
		keys = append(keys, uint8(p.Value()))
	}

	// strum low to high, then let the chord ring
	for _, key := range keys {
		if err := send(gomidi.NoteOn(0, key, 100)); err != nil {
			return err
		}
		time.Sleep(80 * time.Millisecond)
	}
	time.Sleep(1500 * time.Millisecond)
	for _, key := range keys {
		if err := send(gomidi.NoteOff(0, key)); err != nil {
			return err
		}
	}
	return nil
}
