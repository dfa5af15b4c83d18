package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fretdrill",
	Short: "Triad voicing drills for six-string fretboards",
	Long:  `Finds playable triad voicings on a fretted six-string and drills you on them.`,
}

var (
	flagMaxFret int
	flagCount   int
	flagShuffle bool
)

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
