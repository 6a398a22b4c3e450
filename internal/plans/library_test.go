package plans

import (
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adibhanna/workoutsessions/internal/models"
)

func findEntry(t *testing.T, lib []LibraryEntry, name string) LibraryEntry {
	t.Helper()
	for _, e := range lib {
		if e.Name == name {
			return e
		}
	}
	require.Failf(t, "missing exercise", "%q not in library", name)
	return LibraryEntry{}
}

func TestLibraryMergesAcrossPlans(t *testing.T) {
	lib := NewCatalog().Library()

	pushups := findEntry(t, lib, "Push-ups")
	assert.Equal(t, []string{"upper-body-power", "morning-strength"}, pushups.PlanIDs)
	assert.Equal(t, []models.Section{models.SectionMain}, pushups.Sections)
	assert.Equal(t, models.Intermediate, pushups.Difficulty)

	childsPose := findEntry(t, lib, "Child's Pose")
	assert.Equal(t, []string{"full-body-hiit", "core-focus"}, childsPose.PlanIDs)
	assert.Equal(t, models.Beginner, childsPose.Difficulty, "the easiest plan wins")
}

func TestLibrarySortedAndDistinct(t *testing.T) {
	c := NewCatalog()
	c.Add(models.WorkoutPlan{
		ID:         "extra",
		Difficulty: models.Advanced,
		Warmup:     []models.TimedItem{{Name: "squats", DurationSec: 30}},
		Main:       []models.MainItem{{Name: "Squats", Sets: 2, Reps: 5}},
	})
	lib := c.Library()

	seen := map[string]bool{}
	for _, e := range lib {
		key := strings.ToLower(e.Name)
		assert.False(t, seen[key], "duplicate %q", e.Name)
		seen[key] = true
	}
	assert.True(t, sort.SliceIsSorted(lib, func(i, j int) bool {
		return strings.ToLower(lib[i].Name) < strings.ToLower(lib[j].Name)
	}))

	squats := findEntry(t, lib, "Squats")
	assert.Equal(t, []string{"morning-strength", "extra"}, squats.PlanIDs)
	assert.Equal(t, []models.Section{models.SectionWarmup, models.SectionMain}, squats.Sections)
	assert.Equal(t, models.Intermediate, squats.Difficulty)
}
