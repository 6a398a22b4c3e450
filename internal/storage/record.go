package storage

import (
	"time"

	"github.com/google/uuid"

	"github.com/adibhanna/workoutsessions/internal/models"
)

// NewRecord starts a history record for a workout beginning at start.
func NewRecord(plan models.WorkoutPlan, start time.Time) models.WorkoutRecord {
	year, week := start.ISOWeek()
	return models.WorkoutRecord{
		ID:             uuid.New().String(),
		PlanID:         plan.ID,
		PlanName:       plan.Name,
		Difficulty:     plan.Difficulty,
		StartTime:      start,
		ExercisesTotal: plan.Total(),
		Status:         models.StatusPaused,
		Date:           start.Format("2006-01-02"),
		Week:           week,
		Year:           year,
	}
}
