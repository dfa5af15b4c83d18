package cmd

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"fretdrill/constants"
	"fretdrill/fretboard"
	"fretdrill/model"
	"fretdrill/triad"
	"fretdrill/voicing"
)

func init() {
	findCmd.Flags().IntVar(&flagMaxFret, "max-fret", constants.DefaultMaxFret, "highest fret searched")
	findCmd.Flags().IntVar(&flagCount, "count", constants.DefaultVoicingCount, "how many voicings to return")
	findCmd.Flags().BoolVar(&flagShuffle, "shuffle", false, "randomize the bass-string search order")
	rootCmd.AddCommand(findCmd)
}

var findCmd = &cobra.Command{
	Use:   "find <chord>",
	Short: "Finds playable voicings for a chord",
	Long:  `Finds playable voicings for a chord, e.g. fretdrill find "C major" or "F# diminished (second inversion)".`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		t, err := triad.ParseName(args[0])
		if err != nil {
			return err
		}

		cfg := voicing.DefaultConfig()
		if flagShuffle {
			cfg.Shuffle = rand.New(rand.NewSource(time.Now().UnixNano()))
		}

		tuning := model.StandardTuning()
		voicings, err := voicing.FindN(t.Root, t.Quality, t.Inversion, tuning, flagMaxFret, flagCount, cfg)
		if err != nil {
			return err
		}
		if len(voicings) == 0 {
			fmt.Printf("No playable voicing for %v below fret %v\n", t.Name(), flagMaxFret)
			return nil
		}

		for i, v := range voicings {
			fmt.Printf("#%d  %v\n", i+1, t.Name())
			printVoicing(tuning, v)
		}
		return nil
	},
}

func printVoicing(tuning model.Tuning, v model.Voicing) {
	for _, pos := range v {
		p, err := fretboard.PitchAt(tuning, pos.String, pos.Fret)
		if err != nil {
			continue
		}
		fmt.Printf("    string %d fret %2d  %v\n", pos.String, pos.Fret, p)
	}
	if bass, ok := voicing.BassClass(tuning, v); ok {
		fmt.Printf("    bass %v, fret span %d\n", bass, voicing.FretSpan(v))
	}
}
