// Package workout runs a single workout session: the warm-up, main set,
// rest and cooldown state machine, the per-exercise status shown in the
// exercise list, and the one-second ticker that drives rest countdowns.
package workout

import (
	"sort"
)

// Phase is the variant tag of a State.
type Phase int

const (
	InExercise Phase = iota
	RestingBetweenSets
	RestingBetweenExercises
	Complete
)

func (p Phase) String() string {
	switch p {
	case InExercise:
		return "in_exercise"
	case RestingBetweenSets:
		return "resting_between_sets"
	case RestingBetweenExercises:
		return "resting_between_exercises"
	case Complete:
		return "complete"
	default:
		return "unknown"
	}
}

type RestPhase int

const (
	RestNone RestPhase = iota
	RestBetweenSets
	RestBetweenExercises
)

func (r RestPhase) String() string {
	switch r {
	case RestBetweenSets:
		return "between_sets"
	case RestBetweenExercises:
		return "between_exercises"
	default:
		return "none"
	}
}

// State is an immutable session value. The rest target only exists in the
// RestingBetweenExercises variant, so the rest flags are derived from the
// phase instead of being stored next to it.
type State struct {
	phase         Phase
	exercise      int
	set           int
	target        int
	restRemaining int
	elapsed       int
	active        bool
	skipped       map[int]struct{}
}

func (s State) Phase() Phase { return s.phase }

// CurrentExercise is 1-based; a value past the last exercise means the
// workout is complete.
func (s State) CurrentExercise() int { return s.exercise }

func (s State) CurrentSet() int { return s.set }

func (s State) Elapsed() int { return s.elapsed }

func (s State) Active() bool { return s.active }

func (s State) IsComplete() bool { return s.phase == Complete }

func (s State) IsRest() bool {
	return s.phase == RestingBetweenSets || s.phase == RestingBetweenExercises
}

func (s State) RestPhase() RestPhase {
	switch s.phase {
	case RestingBetweenSets:
		return RestBetweenSets
	case RestingBetweenExercises:
		return RestBetweenExercises
	default:
		return RestNone
	}
}

// RestTarget is the exercise a between-exercises rest leads to, or 0.
func (s State) RestTarget() int {
	if s.phase != RestingBetweenExercises {
		return 0
	}
	return s.target
}

func (s State) RestRemaining() int { return s.restRemaining }

func (s State) IsSkipped(pos int) bool {
	_, ok := s.skipped[pos]
	return ok
}

// Skipped returns the skipped positions in ascending order.
func (s State) Skipped() []int {
	out := make([]int, 0, len(s.skipped))
	for pos := range s.skipped {
		out = append(out, pos)
	}
	sort.Ints(out)
	return out
}

// withSkipped and withoutSkipped copy the set so earlier State values
// never observe a later mutation.
func (s State) withSkipped(pos int) State {
	if s.IsSkipped(pos) {
		return s
	}
	next := make(map[int]struct{}, len(s.skipped)+1)
	for k := range s.skipped {
		next[k] = struct{}{}
	}
	next[pos] = struct{}{}
	s.skipped = next
	return s
}

func (s State) withoutSkipped(pos int) State {
	if !s.IsSkipped(pos) {
		return s
	}
	next := make(map[int]struct{}, len(s.skipped))
	for k := range s.skipped {
		if k != pos {
			next[k] = struct{}{}
		}
	}
	s.skipped = next
	return s
}
