package model

import "time"

// PracticeResult is one graded drill answer.
type PracticeResult struct {
	SessionID string
	Chord     string
	Correct   bool
	Latency   time.Duration
	At        time.Time
}

// TriadStats aggregates answers for one chord name.
type TriadStats struct {
	Attempts       int
	Correct        int
	TotalLatencyMs int64
}

func (s TriadStats) Accuracy() float64 {
	if s.Attempts == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempts)
}
