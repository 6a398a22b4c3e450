package workout

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adibhanna/workoutsessions/internal/models"
)

func shortPlan() models.WorkoutPlan {
	return models.WorkoutPlan{
		ID:          "short",
		RestSeconds: 2,
		Main: []models.MainItem{
			{Name: "Squats", Sets: 2, Reps: 10},
			{Name: "Lunges", Sets: 1, Reps: 10},
		},
	}
}

func TestRunnerTicksThroughRest(t *testing.T) {
	var mu sync.Mutex
	var seen []Snapshot
	r := NewRunner(context.Background(), NewSession(shortPlan()), 2*time.Millisecond, func(s Snapshot) {
		mu.Lock()
		seen = append(seen, s)
		mu.Unlock()
	})
	defer r.Close()

	r.Start()
	r.CompleteSet(1)
	require.Eventually(t, func() bool {
		snap := r.Snapshot()
		return snap.Phase == InExercise && snap.CurrentSet == 2
	}, time.Second, time.Millisecond)

	r.CompleteSet(1)
	require.Eventually(t, func() bool {
		return r.Snapshot().CurrentExercise == 2
	}, time.Second, time.Millisecond)

	r.CompleteSet(2)
	select {
	case <-r.Done():
	case <-time.After(time.Second):
		t.Fatal("runner did not report completion")
	}
	assert.True(t, r.Snapshot().Complete)

	mu.Lock()
	defer mu.Unlock()
	assert.NotEmpty(t, seen)
}

func TestRunnerPauseStopsTicking(t *testing.T) {
	r := NewRunner(context.Background(), NewSession(shortPlan()), time.Millisecond, nil)
	defer r.Close()

	r.Start()
	require.Eventually(t, func() bool { return r.Snapshot().Elapsed >= 2 }, time.Second, time.Millisecond)

	r.Pause()
	paused := r.Snapshot()
	assert.False(t, paused.Active)
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, paused.Elapsed, r.Snapshot().Elapsed)

	r.Resume()
	require.Eventually(t, func() bool { return r.Snapshot().Elapsed > paused.Elapsed }, time.Second, time.Millisecond)
}

func TestRunnerResetStartsOver(t *testing.T) {
	r := NewRunner(context.Background(), NewSession(shortPlan()), time.Hour, nil)
	defer r.Close()

	r.Start()
	r.CompleteSet(1)
	r.SkipRest()
	r.Reset()

	snap := r.Snapshot()
	assert.Equal(t, 1, snap.CurrentExercise)
	assert.Equal(t, 1, snap.CurrentSet)
	assert.Equal(t, 0, snap.Elapsed)
	assert.True(t, snap.Active)
}

func TestRunnerJumpAppliesWithoutConfirm(t *testing.T) {
	r := NewRunner(context.Background(), NewSession(shortPlan()), time.Hour, nil)
	defer r.Close()

	r.Pause()
	r.Jump(2)

	snap := r.Snapshot()
	assert.Equal(t, 2, snap.CurrentExercise)
	assert.Equal(t, []int{1}, snap.Skipped)
	assert.True(t, snap.Active)
	assert.Equal(t, Pending{}, snap.Pending)
}

func TestRunnerCloseIsIdempotent(t *testing.T) {
	r := NewRunner(context.Background(), NewSession(shortPlan()), time.Millisecond, nil)
	r.Start()
	r.Close()
	r.Close()
}
