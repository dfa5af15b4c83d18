package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"fretdrill/constants"
	"fretdrill/db"
	"fretdrill/model"
	"fretdrill/practice"
	"fretdrill/util"
	"fretdrill/voicing"
)

var (
	flagRounds int
	flagDynamo bool
)

func init() {
	drillCmd.Flags().IntVarP(&flagRounds, "rounds", "n", 10, "how many chords to drill")
	drillCmd.Flags().IntVar(&flagMaxFret, "max-fret", constants.DefaultMaxFret, "highest fret searched")
	drillCmd.Flags().BoolVar(&flagDynamo, "dynamo", false, "also record results to DynamoDB")
	rootCmd.AddCommand(drillCmd)
}

var drillCmd = &cobra.Command{
	Use:   "drill",
	Short: "Runs an interactive triad drill",
	Long:  `Quizzes you on random triads: name the voicing, reveal it, self-grade y/n.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		var extra practice.Recorder
		if flagDynamo {
			store, err := db.NewStore()
			if err != nil {
				return err
			}
			extra = store
		}
		return drill(flagRounds, extra)
	},
}

func drill(rounds int, extra practice.Recorder) error {
	session := practice.NewSession(time.Now().UnixNano(), extra)
	tuning := model.StandardTuning()
	reader := bufio.NewReader(os.Stdin)

	fmt.Printf("Session %v: %d rounds, frets 0-%d\n\n", session.ID, rounds, flagMaxFret)

	for round := 1; round <= rounds; round++ {
		// draws with no playable voicing are rerolled; a fresh pick is
		// the normal response to an exhausted search
		var t = session.Next()
		v, ok, err := voicing.Find(t.Root, t.Quality, t.Inversion, tuning, flagMaxFret)
		if err != nil {
			return err
		}
		for !ok {
			t = session.Next()
			v, ok, err = voicing.Find(t.Root, t.Quality, t.Inversion, tuning, flagMaxFret)
			if err != nil {
				return err
			}
		}

		fmt.Printf("%d/%d  Find %v, then press enter to reveal.\n", round, rounds, t.Name())
		started := time.Now()
		if _, err := reader.ReadString('\n'); err != nil {
			return err
		}
		latency := time.Since(started)

		printVoicing(tuning, v)
		fmt.Print("Did you have it? [y/n] ")
		answer, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		correct := strings.HasPrefix(strings.TrimSpace(strings.ToLower(answer)), "y")

		if err := session.Record(t.Name(), correct, latency); err != nil {
			return err
		}
		fmt.Println()
	}

	fmt.Printf("Done. Accuracy %.0f%%\n", session.Accuracy()*100)
	stats := session.Stats()
	for _, chord := range util.GetKeys(stats) {
		st := stats[chord]
		fmt.Printf("  %-35s %d/%d, avg %.1fs\n",
			chord, st.Correct, st.Attempts,
			float64(st.TotalLatencyMs)/float64(st.Attempts)/1000)
	}
	return nil
}
