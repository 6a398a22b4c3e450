package models

import (
	"time"
)

type RecordStatus string

const (
	StatusCompleted RecordStatus = "completed"
	StatusPaused    RecordStatus = "paused"
	StatusAbandoned RecordStatus = "abandoned"
)

type WorkoutRecord struct {
	ID                 string       `json:"id"`
	PlanID             string       `json:"plan_id"`
	PlanName           string       `json:"plan_name"`
	Difficulty         Difficulty   `json:"difficulty"`
	StartTime          time.Time    `json:"start_time"`
	EndTime            time.Time    `json:"end_time"`
	ElapsedSeconds     int          `json:"elapsed_seconds"`
	ExercisesTotal     int          `json:"exercises_total"`
	ExercisesCompleted int          `json:"exercises_completed"`
	Skipped            []int        `json:"skipped"`
	Status             RecordStatus `json:"status"`
	Date               string       `json:"date"` // YYYY-MM-DD format
	Week               int          `json:"week"` // ISO week number
	Year               int          `json:"year"`
}

// Preferences are the user's customizations applied on top of a plan
// before a workout starts. Zero values leave the plan untouched.
type Preferences struct {
	RestSeconds     int  `json:"rest_seconds"`
	MainSets        int  `json:"main_sets"`
	MainReps        int  `json:"main_reps"`
	IncludeWarmup   bool `json:"include_warmup"`
	IncludeCooldown bool `json:"include_cooldown"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		IncludeWarmup:   true,
		IncludeCooldown: true,
	}
}

type DayStats struct {
	Date           string          `json:"date"`
	WorkoutsCount  int             `json:"workouts_count"`
	TotalSeconds   int             `json:"total_seconds"`
	ExercisesCount int             `json:"exercises_count"`
	Workouts       []WorkoutRecord `json:"workouts"`
}

type WeekStats struct {
	Week          int        `json:"week"`
	Year          int        `json:"year"`
	WorkoutsCount int        `json:"workouts_count"`
	TotalSeconds  int        `json:"total_seconds"`
	DailyStats    []DayStats `json:"daily_stats"`
}
