package voicing

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"

	"fretdrill/constants"
	"fretdrill/fretboard"
	"fretdrill/model"
	"fretdrill/pitch"
	"fretdrill/triad"
	"fretdrill/util"
)

var (
	ErrInvalidMaxFret = errors.New("max fret out of range")
	ErrInvalidCount   = errors.New("count must be positive")
)

// Config bounds the search. All limits are per call so tests and
// callers can tighten or relax them without touching package state.
type Config struct {
	// MaxFretSpan is the widest playable hand span in frets.
	MaxFretSpan int
	// MaxPitchSpan keeps voicings closed: at most this many semitones
	// between the lowest and highest sounding note.
	MaxPitchSpan int
	// MaxStringSpan forbids skipping too many strings.
	MaxStringSpan int
	// FretWindow is how far either side of the bass fret the other two
	// notes are searched.
	FretWindow int
	// MaxAttempts bounds the search: one attempt is one candidate bass
	// position fully explored.
	MaxAttempts int
	// Shuffle, when non-nil, randomizes the bass-string preference
	// order per call. When nil the scan is deterministic, low strings
	// first.
	Shuffle *rand.Rand
}

func DefaultConfig() Config {
	return Config{
		MaxFretSpan:   5,
		MaxPitchSpan:  15,
		MaxStringSpan: 2,
		FretWindow:    4,
		MaxAttempts:   36,
	}
}

type candidate struct {
	voicing    model.Voicing
	score      int
	pitchSpan  int
	stringSpan int
}

// Find returns the best voicing for the triad, or ok=false when no
// voicing satisfies the constraints within the fret limit. An error
// means the arguments were invalid; exhausting the search is not an
// error.
func Find(root pitch.Class, q triad.Quality, inv triad.Inversion, tuning model.Tuning, maxFret int) (model.Voicing, bool, error) {
	res, err := FindN(root, q, inv, tuning, maxFret, 1, DefaultConfig())
	if err != nil {
		return model.Voicing{}, false, err
	}
	if len(res) == 0 {
		return model.Voicing{}, false, nil
	}
	return res[0], true, nil
}

// FindN returns up to count distinct voicings, best first. The slice is
// empty (never partially valid) when the attempt budget is exhausted
// without a constraint-satisfying voicing.
func FindN(root pitch.Class, q triad.Quality, inv triad.Inversion, tuning model.Tuning, maxFret, count int, cfg Config) ([]model.Voicing, error) {
	if count <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	if maxFret < 1 || maxFret > constants.MaxFretLimit {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMaxFret, maxFret)
	}
	notes, err := triad.PitchClasses(root, q)
	if err != nil {
		return nil, err
	}
	if !inv.Valid() {
		return nil, fmt.Errorf("%w: %d", triad.ErrInvalidInversion, int(inv))
	}

	// Rotated so order[0] is the target bass note.
	order := triad.RotateForInversion(notes, inv)
	targetBass := order[0]

	// Bass strings are tried low-to-high to bias toward idiomatic bass
	// placement (string 0 is the lowest-pitched string by the Tuning
	// convention), unless the caller asked for jitter.
	stringOrder := []int{0, 1, 2, 3, 4, 5}
	if cfg.Shuffle != nil {
		cfg.Shuffle.Shuffle(len(stringOrder), func(i, j int) {
			stringOrder[i], stringOrder[j] = stringOrder[j], stringOrder[i]
		})
	}

	var found []candidate
	seen := make(map[string]bool)
	attempts := 0

scan:
	for _, s0 := range stringOrder {
		for f0 := 0; f0 <= maxFret; f0++ {
			note, err := fretboard.NoteAt(tuning, s0, f0)
			if err != nil || note != targetBass {
				continue
			}
			if attempts >= cfg.MaxAttempts {
				break scan
			}
			attempts++

			bass := model.FretPosition{String: s0, Fret: f0}
			for _, c := range assemble(tuning, bass, order, notes, maxFret, cfg) {
				key := c.voicing.Key()
				if seen[key] {
					continue
				}
				seen[key] = true
				found = append(found, c)
			}
			if len(found) >= count {
				break scan
			}
		}
	}

	rankCandidates(found)

	res := make([]model.Voicing, 0, util.Min(len(found), count))
	for i := 0; i < len(found) && i < count; i++ {
		res = append(res, found[i].voicing)
	}
	return res, nil
}

// assemble explores the neighborhood of one bass position for the
// triad's other two notes and returns every candidate that survives
// pruning and validation.
func assemble(tuning model.Tuning, bass model.FretPosition, order, notes [3]pitch.Class, maxFret int, cfg Config) []candidate {
	loFret := util.Max(0, bass.Fret-cfg.FretWindow)
	hiFret := util.Min(maxFret, bass.Fret+cfg.FretWindow)
	hiString := util.Min(len(tuning)-1, bass.String+cfg.MaxStringSpan)

	var res []candidate
	for s1 := bass.String + 1; s1 <= hiString; s1++ {
		for f1 := loFret; f1 <= hiFret; f1++ {
			if n, err := fretboard.NoteAt(tuning, s1, f1); err != nil || n != order[1] {
				continue
			}
			for s2 := bass.String + 1; s2 <= hiString; s2++ {
				if s2 == s1 {
					continue
				}
				for f2 := loFret; f2 <= hiFret; f2++ {
					if n, err := fretboard.NoteAt(tuning, s2, f2); err != nil || n != order[2] {
						continue
					}
					second := model.FretPosition{String: s1, Fret: f1}
					third := model.FretPosition{String: s2, Fret: f2}
					if c, ok := finish(tuning, orderByString(bass, second, third), order, notes, cfg); ok {
						res = append(res, c)
					}
				}
			}
		}
	}
	return res
}

// finish runs the cheap span pruning, the actual-bass re-check and the
// full note validation on an assembled voicing, then scores it.
func finish(tuning model.Tuning, v model.Voicing, order, notes [3]pitch.Class, cfg Config) (candidate, bool) {
	pSpan, ok := PitchSpan(tuning, v)
	if !ok || pSpan > cfg.MaxPitchSpan {
		return candidate{}, false
	}
	sSpan := StringSpan(v)
	if sSpan > cfg.MaxStringSpan {
		return candidate{}, false
	}
	if FretSpan(v) > cfg.MaxFretSpan {
		return candidate{}, false
	}

	// The position picked as "the bass string" is not necessarily the
	// lowest pitch once the other two notes are placed; re-check.
	bass, ok := BassClass(tuning, v)
	if !ok || bass != order[0] {
		return candidate{}, false
	}
	if !HasUniqueCorrectNotes(tuning, v, notes) {
		return candidate{}, false
	}

	score := 1
	if bass == order[0] {
		score += 100
	}
	// Root-position requests get a little extra reinforcement when the
	// bass literally is the chord root.
	if order[0] == notes[0] && bass == notes[0] {
		score += 2
	}

	return candidate{voicing: v, score: score, pitchSpan: pSpan, stringSpan: sSpan}, true
}

// rankCandidates orders best-first: minimal pitch spread, then minimal
// string spread, ties broken by descending score.
func rankCandidates(cs []candidate) {
	sort.SliceStable(cs, func(i, j int) bool {
		wi := 10*cs[i].pitchSpan + cs[i].stringSpan
		wj := 10*cs[j].pitchSpan + cs[j].stringSpan
		if wi != wj {
			return wi < wj
		}
		return cs[i].score > cs[j].score
	})
}

func orderByString(a, b, c model.FretPosition) model.Voicing {
	v := model.Voicing{a, b, c}
	sort.Slice(v[:], func(i, j int) bool {
		return v[i].String < v[j].String
	})
	return v
}
