package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adibhanna/workoutsessions/internal/models"
)

var testPlan = models.WorkoutPlan{
	ID:         "core-focus",
	Name:       "Core Focus",
	Difficulty: models.Beginner,
	Warmup:     []models.TimedItem{{Name: "Cat-Cow", DurationSec: 30}},
	Main:       []models.MainItem{{Name: "Crunches", Sets: 3, Reps: 15}},
}

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := New(t.TempDir())
	require.NoError(t, err)
	return s
}

func record(start time.Time, status models.RecordStatus, elapsed, completed int) models.WorkoutRecord {
	r := NewRecord(testPlan, start)
	r.Status = status
	r.ElapsedSeconds = elapsed
	r.ExercisesCompleted = completed
	return r
}

func TestNewCreatesDataDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	s, err := New(dir)
	require.NoError(t, err)

	assert.Equal(t, dir, s.DataDir())
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewRecord(t *testing.T) {
	start := time.Date(2026, time.January, 1, 9, 30, 0, 0, time.UTC)
	r := NewRecord(testPlan, start)

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "core-focus", r.PlanID)
	assert.Equal(t, 2, r.ExercisesTotal)
	assert.Equal(t, models.StatusPaused, r.Status)
	assert.Equal(t, "2026-01-01", r.Date)
	assert.Equal(t, 2026, r.Year)
	assert.Equal(t, 1, r.Week)

	assert.NotEqual(t, r.ID, NewRecord(testPlan, start).ID)
}

func TestSaveRecordUpserts(t *testing.T) {
	s := newTestStorage(t)
	start := time.Date(2026, time.March, 4, 7, 0, 0, 0, time.UTC)

	r := record(start, models.StatusPaused, 120, 1)
	require.NoError(t, s.SaveRecord(r))

	r.Status = models.StatusCompleted
	r.ElapsedSeconds = 600
	require.NoError(t, s.SaveRecord(r))

	all, err := s.GetAllRecords()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, models.StatusCompleted, all[0].Status)
	assert.Equal(t, 600, all[0].ElapsedSeconds)
}

func TestGetAllRecordsEmpty(t *testing.T) {
	all, err := newTestStorage(t).GetAllRecords()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestGetAllRecordsCorrupt(t *testing.T) {
	s := newTestStorage(t)
	require.NoError(t, os.WriteFile(s.workoutsFile(), []byte("{"), 0644))

	_, err := s.GetAllRecords()
	assert.ErrorContains(t, err, "workouts.json")
}

func TestGetRecentAndPaused(t *testing.T) {
	s := newTestStorage(t)
	base := time.Date(2026, time.March, 4, 7, 0, 0, 0, time.UTC)

	older := record(base, models.StatusPaused, 60, 0)
	middle := record(base.Add(time.Hour), models.StatusCompleted, 900, 2)
	newest := record(base.Add(2*time.Hour), models.StatusAbandoned, 30, 0)
	for _, r := range []models.WorkoutRecord{middle, newest, older} {
		require.NoError(t, s.SaveRecord(r))
	}

	recent, err := s.GetRecent(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, newest.ID, recent[0].ID)
	assert.Equal(t, middle.ID, recent[1].ID)

	all, err := s.GetRecent(0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	paused, err := s.GetPaused()
	require.NoError(t, err)
	require.NotNil(t, paused)
	assert.Equal(t, older.ID, paused.ID)
}

func TestGetPausedNone(t *testing.T) {
	paused, err := newTestStorage(t).GetPaused()
	require.NoError(t, err)
	assert.Nil(t, paused)
}

func TestDayAndWeekStats(t *testing.T) {
	s := newTestStorage(t)
	monday := time.Date(2026, time.March, 2, 7, 0, 0, 0, time.UTC)
	wednesday := monday.AddDate(0, 0, 2)

	for _, r := range []models.WorkoutRecord{
		record(monday, models.StatusCompleted, 600, 2),
		record(monday.Add(time.Hour), models.StatusPaused, 100, 1),
		record(wednesday, models.StatusCompleted, 900, 2),
		record(monday.AddDate(0, 0, 7), models.StatusCompleted, 300, 2),
	} {
		require.NoError(t, s.SaveRecord(r))
	}

	day, err := s.GetDayStats("2026-03-02")
	require.NoError(t, err)
	assert.Equal(t, 1, day.WorkoutsCount)
	assert.Equal(t, 600, day.TotalSeconds)
	assert.Equal(t, 2, day.ExercisesCount)
	assert.Len(t, day.Workouts, 2, "paused workouts are listed")

	year, week := monday.ISOWeek()
	stats, err := s.GetWeekStats(year, week)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.WorkoutsCount)
	assert.Equal(t, 1500, stats.TotalSeconds)
	require.Len(t, stats.DailyStats, 2)
	assert.Equal(t, "2026-03-02", stats.DailyStats[0].Date)
	assert.Equal(t, "2026-03-04", stats.DailyStats[1].Date)
}

func TestPreferences(t *testing.T) {
	s := newTestStorage(t)

	prefs, err := s.GetPreferences()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPreferences(), prefs)

	want := models.Preferences{RestSeconds: 90, MainSets: 4, MainReps: 10, IncludeWarmup: false, IncludeCooldown: true}
	require.NoError(t, s.SavePreferences(want))

	got, err := s.GetPreferences()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestResetAllData(t *testing.T) {
	s := newTestStorage(t)
	require.NoError(t, s.SaveRecord(record(time.Now(), models.StatusCompleted, 60, 1)))
	require.NoError(t, s.SavePreferences(models.Preferences{RestSeconds: 30}))

	require.NoError(t, s.ResetAllData())
	require.NoError(t, s.ResetAllData(), "resetting twice is fine")

	all, err := s.GetAllRecords()
	require.NoError(t, err)
	assert.Empty(t, all)

	prefs, err := s.GetPreferences()
	require.NoError(t, err)
	assert.Equal(t, models.DefaultPreferences(), prefs)
}

func TestExportReport(t *testing.T) {
	s := newTestStorage(t)
	now := time.Date(2026, time.March, 4, 20, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return now }

	require.NoError(t, s.SaveRecord(record(now.Add(-2*time.Hour), models.StatusCompleted, 1200, 2)))
	require.NoError(t, s.SaveRecord(record(now.Add(-time.Hour), models.StatusPaused, 60, 0)))

	report, err := s.ExportReport()
	require.NoError(t, err)

	assert.Contains(t, report, "Workouts Started: 2")
	assert.Contains(t, report, "Workouts Completed: 1")
	assert.Contains(t, report, "Total Training Time: 20m 0s")
	assert.Contains(t, report, "CURRENT WEEK (Week 10, 2026)")
	assert.Contains(t, report, "Wednesday: 1 workouts (20m 0s)")
	assert.Contains(t, report, "Core Focus")
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "0s"},
		{45, "45s"},
		{750, "12m 30s"},
		{3900, "1h 5m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.seconds))
	}
}
