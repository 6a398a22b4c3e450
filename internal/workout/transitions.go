package workout

import (
	"github.com/adibhanna/workoutsessions/internal/models"
)

// Every transition below is total: a call that does not apply to the
// given state returns that state unchanged.

// Initial returns a fresh, running session positioned on the first set of
// the first exercise. A plan without exercises starts complete.
func Initial(plan models.WorkoutPlan) State {
	s := State{
		phase:         InExercise,
		exercise:      1,
		set:           1,
		restRemaining: restFor(plan),
		active:        true,
	}
	if plan.Total() == 0 {
		s.phase = Complete
	}
	return s
}

// Tick advances the session by one second. At most one phase transition
// happens per tick.
func Tick(plan models.WorkoutPlan, s State) State {
	if !s.active || s.phase == Complete {
		return s
	}

	s.elapsed++
	if !s.IsRest() {
		return s
	}

	s.restRemaining--
	if s.restRemaining > 0 {
		return s
	}
	return endRest(plan, s)
}

func CompleteSet(plan models.WorkoutPlan, s State, pos int) State {
	if s.phase != InExercise || pos != s.exercise {
		return s
	}

	s = s.withoutSkipped(pos)

	switch plan.SectionOf(pos) {
	case models.SectionWarmup, models.SectionCooldown:
		return advance(plan, s, pos+1)

	case models.SectionMain:
		if s.set < plan.SetsFor(pos) {
			s.set++
			return startRest(plan, s, RestingBetweenSets, 0)
		}
		if pos < plan.LastMain() {
			s = s.withoutSkipped(pos + 1)
			return startRest(plan, s, RestingBetweenExercises, pos+1)
		}
		return advance(plan, s, pos+1)
	}

	return s
}

func SkipRest(plan models.WorkoutPlan, s State) State {
	if !s.IsRest() {
		return s
	}
	return endRest(plan, s)
}

// NeedsConfirm reports whether jumping to pos has to be confirmed by the
// user. Tapping the exercise a between-exercises rest is already heading
// to does not.
func NeedsConfirm(s State, pos int) bool {
	return !(s.phase == RestingBetweenExercises && pos == s.target)
}

// JumpTo moves the session to pos. The exercise being left is marked
// skipped, even when its sets were done and only the rest before the next
// exercise was pending. Nothing is marked once the workout is complete.
// Jumping to the pending rest target behaves as an early end of that rest.
func JumpTo(plan models.WorkoutPlan, s State, pos int) State {
	if pos < 1 || pos > plan.Total() {
		return s
	}

	if !NeedsConfirm(s, pos) {
		s = endRest(plan, s)
		s = s.withoutSkipped(pos)
		s.active = true
		return s
	}

	if s.exercise <= plan.Total() {
		s = s.withSkipped(s.exercise)
	}
	s = s.withoutSkipped(pos)

	s.phase = InExercise
	s.exercise = pos
	s.set = 1
	s.target = 0
	s.restRemaining = restFor(plan)
	s.active = true
	return s
}

func Reset(plan models.WorkoutPlan, _ State) State {
	return Initial(plan)
}

func Pause(s State) State {
	s.active = false
	return s
}

func Resume(s State) State {
	s.active = true
	return s
}

func startRest(plan models.WorkoutPlan, s State, phase Phase, target int) State {
	rest := restFor(plan)
	if rest == 0 {
		if phase == RestingBetweenExercises {
			return advance(plan, s, target)
		}
		return s
	}

	s.phase = phase
	s.target = target
	s.restRemaining = rest
	return s
}

func endRest(plan models.WorkoutPlan, s State) State {
	if s.phase == RestingBetweenExercises {
		s.exercise = s.target
		s.set = 1
	}
	s.phase = InExercise
	s.target = 0
	s.restRemaining = restFor(plan)
	return s
}

func advance(plan models.WorkoutPlan, s State, next int) State {
	s.target = 0
	s.set = 1
	s.restRemaining = restFor(plan)
	s.exercise = next

	if next > plan.Total() {
		s.phase = Complete
		return s
	}
	s.phase = InExercise
	return s
}

func restFor(plan models.WorkoutPlan) int {
	if plan.RestSeconds < 0 {
		return 0
	}
	return plan.RestSeconds
}
