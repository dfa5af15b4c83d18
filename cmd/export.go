package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"fretdrill/constants"
	"fretdrill/midi"
	"fretdrill/model"
	"fretdrill/triad"
	"fretdrill/voicing"
)

var flagBPM float64

func init() {
	exportCmd.Flags().IntVar(&flagMaxFret, "max-fret", constants.DefaultMaxFret, "highest fret searched")
	exportCmd.Flags().Float64Var(&flagBPM, "bpm", 90, "tempo of the written file")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <chord> <file.mid>",
	Short: "Writes a chord's best voicing as a MIDI file",
	Long:  `Finds the best voicing and writes it to a standard MIDI file, strummed low to high.`,
	Args:  cobra.ExactArgs(2),
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
			return fmt.Errorf("no playable voicing for %v below fret %v", t.Name(), flagMaxFret)
		}
		if err := midi.WriteVoicingFile(tuning, v, flagBPM, args[1]); err != nil {
			return err
		}
		fmt.Printf("Wrote %v to %v\n", t.Name(), args[1])
		return nil
	},
}
