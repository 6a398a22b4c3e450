package plans

import (
	"github.com/adibhanna/workoutsessions/internal/models"
)

// Customize derives a plan from base using the user's preferences. The
// base plan is not modified. Dropping sections never leaves a plan empty:
// if only warm-up and cooldown were left and both were dropped, the
// result keeps them.
func Customize(base models.WorkoutPlan, prefs models.Preferences) models.WorkoutPlan {
	p := base
	p.Warmup = append([]models.TimedItem(nil), base.Warmup...)
	p.Cooldown = append([]models.TimedItem(nil), base.Cooldown...)
	p.Main = append([]models.MainItem(nil), base.Main...)

	if prefs.RestSeconds > 0 {
		p.RestSeconds = prefs.RestSeconds
	}
	for i := range p.Main {
		if prefs.MainSets > 0 {
			p.Main[i].Sets = prefs.MainSets
		}
		if prefs.MainReps > 0 {
			p.Main[i].Reps = prefs.MainReps
		}
	}

	if len(p.Main) > 0 {
		if !prefs.IncludeWarmup {
			p.Warmup = nil
		}
		if !prefs.IncludeCooldown {
			p.Cooldown = nil
		}
	}

	return p
}
