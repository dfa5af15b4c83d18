// Package practice is the statistics collaborator the voicing engine's
// callers feed: it records correctness/latency per triad and hands out
// the next item to drill. Scheduling stays deliberately dumb (uniform
// random); a smarter scheduler only needs to implement Recorder.
package practice

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"fretdrill/model"
	"fretdrill/pitch"
	"fretdrill/triad"
)

// Recorder accepts graded drill answers.
type Recorder interface {
	Record(model.PracticeResult) error
}

// Session aggregates one practice run in memory.
type Session struct {
	ID    string
	rng   *rand.Rand
	stats map[string]*model.TriadStats
	extra Recorder // optional second sink, e.g. the DynamoDB store
}

func NewSession(seed int64, extra Recorder) *Session {
	return &Session{
		ID:    uuid.New().String(),
		rng:   rand.New(rand.NewSource(seed)),
		stats: make(map[string]*model.TriadStats),
		extra: extra,
	}
}

// Next picks the next triad to drill, uniformly over the 12 roots x 4
// qualities x 3 inversions. Callers that get no voicing for the pick
// simply call Next again; retrying is normal control flow.
func (s *Session) Next() triad.Triad {
	return triad.Triad{
		Root:      pitch.Class(s.rng.Intn(12)),
		Quality:   triad.Quality(s.rng.Intn(4)),
		Inversion: triad.Inversion(s.rng.Intn(3)),
	}
}

// Record grades one answer and forwards it to the extra sink if any.
func (s *Session) Record(chord string, correct bool, latency time.Duration) error {
	st, ok := s.stats[chord]
	if !ok {
		st = &model.TriadStats{}
		s.stats[chord] = st
	}
	st.Attempts++
	if correct {
		st.Correct++
	}
	st.TotalLatencyMs += latency.Milliseconds()

	if s.extra == nil {
		return nil
	}
	return s.extra.Record(model.PracticeResult{
		SessionID: s.ID,
		Chord:     chord,
		Correct:   correct,
		Latency:   latency,
		At:        time.Now(),
	})
}

// Stats returns a copy of the per-chord aggregates keyed by chord name.
func (s *Session) Stats() map[string]model.TriadStats {
	res := make(map[string]model.TriadStats, len(s.stats))
	for k, st := range s.stats {
		res[k] = *st
	}
	return res
}

// Accuracy is the session-wide fraction of correct answers.
func (s *Session) Accuracy() float64 {
	var attempts, correct int
	for _, st := range s.stats {
		attempts += st.Attempts
		correct += st.Correct
	}
	if attempts == 0 {
		return 0
	}
	return float64(correct) / float64(attempts)
}
