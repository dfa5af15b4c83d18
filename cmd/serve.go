package cmd

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"fretdrill/constants"
	"fretdrill/fretboard"
	"fretdrill/model"
	"fretdrill/pitch"
	"fretdrill/triad"
	"fretdrill/voicing"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the voicing API",
	Long:  `Serves the voicing API for the practice-mode frontends.`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: err.Error()})
}

// isArgumentError distinguishes bad requests from server faults.
func isArgumentError(err error) bool {
	return errors.Is(err, pitch.ErrInvalidNoteName) ||
		errors.Is(err, pitch.ErrInvalidOctave) ||
		errors.Is(err, triad.ErrInvalidQuality) ||
		errors.Is(err, triad.ErrInvalidInversion) ||
		errors.Is(err, triad.ErrInvalidChordName) ||
		errors.Is(err, voicing.ErrInvalidMaxFret) ||
		errors.Is(err, voicing.ErrInvalidCount)
}

func voicingResult(tuning model.Tuning, v model.Voicing) model.VoicingResult {
	res := model.VoicingResult{Positions: v}
	for _, pos := range v {
		p, err := fretboard.PitchAt(tuning, pos.String, pos.Fret)
		if err != nil {
			continue
		}
		res.Notes = append(res.Notes, p.String())
	}
	if bass, ok := voicing.BassClass(tuning, v); ok {
		res.Bass = bass.String()
	}
	return res
}

// HandleFindVoicings answers POST /voicings. An exhausted search is a
// 200 with an empty list, not an error; only malformed arguments 400.
func HandleFindVoicings(w http.ResponseWriter, r *http.Request) {
	var input model.VoicingRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	if input.MaxFret == 0 {
		input.MaxFret = constants.DefaultMaxFret
	}
	if input.Count == 0 {
		input.Count = constants.DefaultVoicingCount
	}

	t, err := triad.ParseName(input.Chord)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	tuning := model.StandardTuning()
	voicings, err := voicing.FindN(t.Root, t.Quality, t.Inversion, tuning, input.MaxFret, input.Count, voicing.DefaultConfig())
	if err != nil {
		status := http.StatusInternalServerError
		if isArgumentError(err) {
			status = http.StatusBadRequest
		}
		writeError(w, status, err)
		return
	}

	res := model.VoicingResponse{Chord: t.Name(), Voicings: make([]model.VoicingResult, 0, len(voicings))}
	for _, v := range voicings {
		res.Voicings = append(res.Voicings, voicingResult(tuning, v))
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

// HandleTriadNotes answers GET /triads/{chord}.
func HandleTriadNotes(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["chord"]
	t, err := triad.ParseName(name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	notes, err := triad.PitchClasses(t.Root, t.Quality)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	bass, err := t.Bass()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res := model.TriadNotesResponse{Chord: t.Name(), Bass: bass.String()}
	for _, n := range notes {
		res.Notes = append(res.Notes, n.String())
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/voicings", HandleFindVoicings).Methods("POST")
	router.HandleFunc("/triads/{chord}", HandleTriadNotes).Methods("GET")
	handler := cors.Default().Handler(router)
	log.Fatal(http.ListenAndServe(":8080", handler))
}
