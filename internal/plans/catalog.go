// Package plans resolves workout plan identifiers to plans. Lookups never
// fail: an unknown identifier resolves to the default plan.
package plans

import (
	"errors"
	"sort"

	"github.com/adibhanna/workoutsessions/internal/models"
)

const DefaultPlanID = "upper-body-power"

var ErrUnknownPlan = errors.New("unknown workout plan")

type Catalog struct {
	plans     map[string]models.WorkoutPlan
	order     []string
	defaultID string
}

// NewCatalog builds a catalog holding the built-in plans.
func NewCatalog() *Catalog {
	c := &Catalog{
		plans:     make(map[string]models.WorkoutPlan),
		defaultID: DefaultPlanID,
	}
	for _, p := range builtin() {
		c.Add(p)
	}
	return c
}

// Add inserts or replaces a plan, keeping its original list position on
// replacement.
func (c *Catalog) Add(p models.WorkoutPlan) {
	if _, exists := c.plans[p.ID]; !exists {
		c.order = append(c.order, p.ID)
	}
	c.plans[p.ID] = p
}

// SetDefault changes the fallback plan. Unknown ids are rejected.
func (c *Catalog) SetDefault(id string) error {
	if _, ok := c.plans[id]; !ok {
		return ErrUnknownPlan
	}
	c.defaultID = id
	return nil
}

func (c *Catalog) Default() models.WorkoutPlan {
	return c.plans[c.defaultID]
}

// Get returns the plan for id, or the default plan when id is empty or
// unknown.
func (c *Catalog) Get(id string) models.WorkoutPlan {
	if p, ok := c.Lookup(id); ok {
		return p
	}
	return c.Default()
}

func (c *Catalog) Lookup(id string) (models.WorkoutPlan, bool) {
	if id == "" {
		return models.WorkoutPlan{}, false
	}
	p, ok := c.plans[id]
	return p, ok
}

// List returns plans in insertion order: built-ins first, then loaded
// plans.
func (c *Catalog) List() []models.WorkoutPlan {
	out := make([]models.WorkoutPlan, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.plans[id])
	}
	return out
}

func (c *Catalog) IDs() []string {
	ids := make([]string, len(c.order))
	copy(ids, c.order)
	sort.Strings(ids)
	return ids
}

func builtin() []models.WorkoutPlan {
	return []models.WorkoutPlan{
		{
			ID:          "upper-body-power",
			Name:        "Upper Body Power",
			Duration:    "35 min",
			Difficulty:  models.Intermediate,
			Focus:       "Upper Body",
			Equipment:   "Bodyweight + Dumbbells",
			RestSeconds: 60,
			Warmup: []models.TimedItem{
				{Name: "Arm Circles", DurationSec: 30},
				{Name: "Shoulder Rolls", DurationSec: 30},
			},
			Main: []models.MainItem{
				{Name: "Push-ups", Sets: 3, Reps: 12},
				{Name: "Dumbbell Rows", Sets: 3, Reps: 12},
				{Name: "Shoulder Press", Sets: 3, Reps: 12},
				{Name: "Tricep Dips", Sets: 3, Reps: 12},
				{Name: "Bicep Curls", Sets: 3, Reps: 12},
			},
			Cooldown: []models.TimedItem{
				{Name: "Stretching", DurationSec: 60},
				{Name: "Deep Breathing", DurationSec: 30},
			},
		},
		{
			ID:          "morning-strength",
			Name:        "Morning Strength",
			Duration:    "45 min",
			Difficulty:  models.Intermediate,
			Focus:       "Full Body",
			Equipment:   "Bodyweight + Dumbbells",
			RestSeconds: 60,
			Warmup: []models.TimedItem{
				{Name: "Jumping Jacks", DurationSec: 45},
				{Name: "Hip Circles", DurationSec: 30},
			},
			Main: []models.MainItem{
				{Name: "Squats", Sets: 3, Reps: 12},
				{Name: "Push-ups", Sets: 3, Reps: 10},
				{Name: "Bent-over Rows", Sets: 3, Reps: 12},
				{Name: "Lunges", Sets: 3, Reps: 12},
			},
			Cooldown: []models.TimedItem{
				{Name: "Forward Fold", DurationSec: 45},
				{Name: "Thoracic Twist", DurationSec: 30},
			},
		},
		{
			ID:          "full-body-hiit",
			Name:        "Full Body HIIT",
			Duration:    "25 min",
			Difficulty:  models.Advanced,
			Focus:       "Full Body",
			Equipment:   "Bodyweight",
			RestSeconds: 30,
			Warmup: []models.TimedItem{
				{Name: "High Knees", DurationSec: 30},
				{Name: "Arm Swings", DurationSec: 30},
			},
			Main: []models.MainItem{
				{Name: "Burpees", Sets: 3, Reps: 12},
				{Name: "Jump Squats", Sets: 3, Reps: 15},
				{Name: "Mountain Climbers", Sets: 3, Reps: 20},
				{Name: "Plank Jacks", Sets: 3, Reps: 20},
			},
			Cooldown: []models.TimedItem{
				{Name: "Child's Pose", DurationSec: 30},
				{Name: "Hamstring Stretch", DurationSec: 30},
			},
		},
		{
			ID:          "core-focus",
			Name:        "Core Focus",
			Duration:    "15 min",
			Difficulty:  models.Beginner,
			Focus:       "Core",
			Equipment:   "Bodyweight",
			RestSeconds: 45,
			Warmup: []models.TimedItem{
				{Name: "Cat-Cow", DurationSec: 30},
				{Name: "Torso Twists", DurationSec: 30},
			},
			Main: []models.MainItem{
				{Name: "Crunches", Sets: 3, Reps: 15},
				{Name: "Russian Twists", Sets: 3, Reps: 20},
				{Name: "Plank", Sets: 3, Reps: 30}, // reps are seconds held
				{Name: "Leg Raises", Sets: 3, Reps: 12},
			},
			Cooldown: []models.TimedItem{
				{Name: "Cobra Stretch", DurationSec: 30},
				{Name: "Child's Pose", DurationSec: 30},
			},
		},
	}
}
