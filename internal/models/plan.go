package models

type Difficulty string

const (
	Beginner     Difficulty = "Beginner"
	Intermediate Difficulty = "Intermediate"
	Advanced     Difficulty = "Advanced"
)

// Section is the part of a plan an exercise position belongs to.
type Section int

const (
	SectionNone Section = iota
	SectionWarmup
	SectionMain
	SectionCooldown
)

func (s Section) String() string {
	switch s {
	case SectionWarmup:
		return "Warm Up"
	case SectionMain:
		return "Main"
	case SectionCooldown:
		return "Cool Down"
	default:
		return ""
	}
}

type TimedItem struct {
	Name        string `yaml:"name" json:"name"`
	DurationSec int    `yaml:"duration_sec" json:"duration_sec"`
}

type MainItem struct {
	Name string `yaml:"name" json:"name"`
	Sets int    `yaml:"sets" json:"sets"`
	Reps int    `yaml:"reps" json:"reps"`
}

type WorkoutPlan struct {
	ID          string      `yaml:"id" json:"id"`
	Name        string      `yaml:"name" json:"name"`
	Duration    string      `yaml:"duration" json:"duration"` // display label, e.g. "35 min"
	Difficulty  Difficulty  `yaml:"difficulty" json:"difficulty"`
	Focus       string      `yaml:"focus" json:"focus"`
	Equipment   string      `yaml:"equipment,omitempty" json:"equipment,omitempty"`
	RestSeconds int         `yaml:"rest_seconds" json:"rest_seconds"` // between main sets and main exercises
	Warmup      []TimedItem `yaml:"warmup" json:"warmup"`
	Main        []MainItem  `yaml:"main" json:"main"`
	Cooldown    []TimedItem `yaml:"cooldown" json:"cooldown"`
}

// Exercise is a plan entry seen through its 1-based position across
// warm-up, main and cooldown.
type Exercise struct {
	Position    int
	Section     Section
	Name        string
	Sets        int
	Reps        int
	DurationSec int
}

func (p WorkoutPlan) Total() int {
	return len(p.Warmup) + len(p.Main) + len(p.Cooldown)
}

func (p WorkoutPlan) SectionOf(pos int) Section {
	switch {
	case pos < 1 || pos > p.Total():
		return SectionNone
	case pos <= len(p.Warmup):
		return SectionWarmup
	case pos <= len(p.Warmup)+len(p.Main):
		return SectionMain
	default:
		return SectionCooldown
	}
}

// SetsFor returns 1 for warm-up and cooldown positions, the configured
// set count for main positions and 0 outside the plan.
func (p WorkoutPlan) SetsFor(pos int) int {
	switch p.SectionOf(pos) {
	case SectionWarmup, SectionCooldown:
		return 1
	case SectionMain:
		if sets := p.Main[pos-len(p.Warmup)-1].Sets; sets > 1 {
			return sets
		}
		return 1
	default:
		return 0
	}
}

// LastMain is the position of the final main exercise, or 0 when the plan
// has none.
func (p WorkoutPlan) LastMain() int {
	if len(p.Main) == 0 {
		return 0
	}
	return len(p.Warmup) + len(p.Main)
}

func (p WorkoutPlan) ExerciseAt(pos int) (Exercise, bool) {
	section := p.SectionOf(pos)
	ex := Exercise{Position: pos, Section: section, Sets: p.SetsFor(pos)}

	switch section {
	case SectionWarmup:
		item := p.Warmup[pos-1]
		ex.Name, ex.DurationSec = item.Name, item.DurationSec
	case SectionMain:
		item := p.Main[pos-len(p.Warmup)-1]
		ex.Name, ex.Reps = item.Name, item.Reps
	case SectionCooldown:
		item := p.Cooldown[pos-len(p.Warmup)-len(p.Main)-1]
		ex.Name, ex.DurationSec = item.Name, item.DurationSec
	default:
		return Exercise{}, false
	}

	return ex, true
}

func (p WorkoutPlan) Exercises() []Exercise {
	exercises := make([]Exercise, 0, p.Total())
	for pos := 1; pos <= p.Total(); pos++ {
		ex, _ := p.ExerciseAt(pos)
		exercises = append(exercises, ex)
	}
	return exercises
}
