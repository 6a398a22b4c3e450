package workout

import (
	"github.com/adibhanna/workoutsessions/internal/models"
)

type Status string

const (
	StatusCompleted Status = "completed"
	StatusCurrent   Status = "current"
	StatusNext      Status = "next"
	StatusSkipped   Status = "skipped"
	StatusUpcoming  Status = "upcoming"
)

// StatusOf classifies one exercise for the exercise list. Current wins
// over everything, the pending rest target is always next, and skipped
// wins over completed and upcoming.
func StatusOf(pos int, s State) Status {
	if pos == s.exercise {
		return StatusCurrent
	}

	if s.phase == RestingBetweenExercises {
		switch {
		case pos == s.target:
			return StatusNext
		case s.IsSkipped(pos):
			return StatusSkipped
		case pos <= s.exercise:
			return StatusCompleted
		default:
			return StatusUpcoming
		}
	}

	// Between-sets rest and no rest classify the same way.
	switch {
	case s.IsSkipped(pos):
		return StatusSkipped
	case pos < s.exercise:
		return StatusCompleted
	default:
		return StatusUpcoming
	}
}

// Statuses classifies every exercise of the plan, indexed by position-1.
func Statuses(plan models.WorkoutPlan, s State) []Status {
	out := make([]Status, plan.Total())
	for i := range out {
		out[i] = StatusOf(i+1, s)
	}
	return out
}

// CanCompleteSet reports whether the "complete set" action is offered on
// the exercise at pos.
func CanCompleteSet(pos int, s State) bool {
	return s.phase == InExercise && pos == s.exercise
}

// CanSkipRest reports whether the "skip rest" action is offered on the
// exercise at pos: the one currently resting, or the one a
// between-exercises rest leads to.
func CanSkipRest(pos int, s State) bool {
	switch s.phase {
	case RestingBetweenSets:
		return pos == s.exercise
	case RestingBetweenExercises:
		return pos == s.exercise || pos == s.target
	default:
		return false
	}
}

// CompletedCount is the number of finished exercises. While resting
// between exercises the current one is already done even though the list
// still shows it as current.
func CompletedCount(plan models.WorkoutPlan, s State) int {
	n := 0
	if s.phase == RestingBetweenExercises {
		n++
	}
	for _, st := range Statuses(plan, s) {
		if st == StatusCompleted {
			n++
		}
	}
	return n
}
