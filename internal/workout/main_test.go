package workout

import (
	"testing"

	"go.uber.org/goleak"

	"github.com/adibhanna/workoutsessions/internal/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// ninePlan is 2 warm-up, 5 main at 3x12 and 2 cooldown items with a
// 60 second rest.
func ninePlan() models.WorkoutPlan {
	return models.WorkoutPlan{
		ID:          "nine",
		Name:        "Nine",
		RestSeconds: 60,
		Warmup: []models.TimedItem{
			{Name: "Arm Circles", DurationSec: 30},
			{Name: "Jumping Jacks", DurationSec: 60},
		},
		Main: []models.MainItem{
			{Name: "Push-ups", Sets: 3, Reps: 12},
			{Name: "Pike Push-ups", Sets: 3, Reps: 12},
			{Name: "Diamond Push-ups", Sets: 3, Reps: 12},
			{Name: "Tricep Dips", Sets: 3, Reps: 12},
			{Name: "Plank", Sets: 3, Reps: 12},
		},
		Cooldown: []models.TimedItem{
			{Name: "Chest Stretch", DurationSec: 30},
			{Name: "Child's Pose", DurationSec: 60},
		},
	}
}

// finishExercise completes every set of the current exercise, skipping
// the rests between sets. It stops at the between-exercises rest, if any.
func finishExercise(plan models.WorkoutPlan, s State) State {
	pos := s.CurrentExercise()
	for s.Phase() == InExercise && s.CurrentExercise() == pos {
		s = CompleteSet(plan, s, pos)
		if s.Phase() == RestingBetweenSets {
			s = SkipRest(plan, s)
		}
	}
	return s
}

func ticks(plan models.WorkoutPlan, s State, n int) State {
	for i := 0; i < n; i++ {
		s = Tick(plan, s)
	}
	return s
}
