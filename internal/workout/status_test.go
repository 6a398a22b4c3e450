package workout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusesInitial(t *testing.T) {
	plan := ninePlan()
	got := Statuses(plan, Initial(plan))

	require.Len(t, got, 9)
	assert.Equal(t, StatusCurrent, got[0])
	for _, st := range got[1:] {
		assert.Equal(t, StatusUpcoming, st)
	}
}

func TestStatusesBetweenSets(t *testing.T) {
	plan := ninePlan()
	s := JumpTo(plan, Initial(plan), 4)
	s = CompleteSet(plan, s, 4)
	require.Equal(t, RestingBetweenSets, s.Phase())

	assert.Equal(t, []Status{
		StatusSkipped, StatusCompleted, StatusCompleted, StatusCurrent,
		StatusUpcoming, StatusUpcoming, StatusUpcoming, StatusUpcoming, StatusUpcoming,
	}, Statuses(plan, s))
}

func TestStatusesBetweenExercises(t *testing.T) {
	plan := ninePlan()
	s := CompleteSet(plan, CompleteSet(plan, Initial(plan), 1), 2)
	s = JumpTo(plan, s, 6)
	s = JumpTo(plan, s, 4)
	s = finishExercise(plan, s)
	require.Equal(t, RestingBetweenExercises, s.Phase())
	require.Equal(t, 5, s.RestTarget())

	assert.Equal(t, []Status{
		StatusCompleted, StatusCompleted, StatusSkipped, StatusCurrent,
		StatusNext, StatusSkipped, StatusUpcoming, StatusUpcoming, StatusUpcoming,
	}, Statuses(plan, s))

	assert.Equal(t, 3, CompletedCount(plan, s))
}

func TestStatusCurrentWinsOverSkipped(t *testing.T) {
	plan := ninePlan()
	s := JumpTo(plan, Initial(plan), 5)
	s = JumpTo(plan, s, 1)
	require.True(t, s.IsSkipped(5))

	assert.Equal(t, StatusCurrent, StatusOf(1, s))
	assert.Equal(t, StatusSkipped, StatusOf(5, s))
}

func TestStatusesComplete(t *testing.T) {
	plan := ninePlan()
	s := JumpTo(plan, Initial(plan), 9)
	s = CompleteSet(plan, s, 9)
	require.True(t, s.IsComplete())

	got := Statuses(plan, s)
	assert.Equal(t, StatusSkipped, got[0])
	for _, st := range got[1:] {
		assert.Equal(t, StatusCompleted, st)
	}
	assert.Equal(t, 8, CompletedCount(plan, s))
}

func TestCanCompleteSet(t *testing.T) {
	plan := ninePlan()
	s := JumpTo(plan, Initial(plan), 3)

	assert.True(t, CanCompleteSet(3, s))
	assert.False(t, CanCompleteSet(4, s))

	s = CompleteSet(plan, s, 3)
	assert.False(t, CanCompleteSet(3, s), "not while resting")
}

func TestCanSkipRest(t *testing.T) {
	plan := ninePlan()
	s := JumpTo(plan, Initial(plan), 3)
	assert.False(t, CanSkipRest(3, s))

	s = CompleteSet(plan, s, 3)
	assert.True(t, CanSkipRest(3, s))
	assert.False(t, CanSkipRest(4, s))

	s = finishExercise(plan, SkipRest(plan, s))
	require.Equal(t, RestingBetweenExercises, s.Phase())
	assert.True(t, CanSkipRest(3, s))
	assert.True(t, CanSkipRest(4, s))
	assert.False(t, CanSkipRest(5, s))
}
