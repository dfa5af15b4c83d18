package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"fretdrill/triad"
)

func init() {
	rootCmd.AddCommand(notesCmd)
}

var notesCmd = &cobra.Command{
	Use:   "notes <chord>",
	Short: "Prints a chord's pitch classes",
	Long:  `Prints a chord's pitch classes and its intended bass note.`,
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
		bass, err := t.Bass()
		if err != nil {
			return err
		}

		names := make([]string, len(notes))
		for i, n := range notes {
			names[i] = n.String()
		}
		fmt.Printf("%v: %v (bass %v)\n", t.Name(), strings.Join(names, " "), bass)
		return nil
	},
}
