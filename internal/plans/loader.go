package plans

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/adibhanna/workoutsessions/internal/models"
)

// LoadDir reads every *.yaml and *.yml file in dir as a single workout plan
// and adds it to the catalog, replacing built-ins with the same id. A
// missing directory is not an error.
func (c *Catalog) LoadDir(dir string) (int, error) {
	if dir == "" {
		return 0, nil
	}
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return 0, nil
	}

	var files []string
	for _, pattern := range []string{"*.yaml", "*.yml"} {
		matches, err := filepath.Glob(filepath.Join(dir, pattern))
		if err != nil {
			return 0, fmt.Errorf("finding plan files: %w", err)
		}
		files = append(files, matches...)
	}

	loaded := 0
	for _, file := range files {
		plan, err := LoadFile(file)
		if err != nil {
			return loaded, fmt.Errorf("loading %s: %w", file, err)
		}
		c.Add(plan)
		loaded++
		logrus.WithFields(logrus.Fields{"plan": plan.ID, "file": file}).Debug("loaded workout plan")
	}

	return loaded, nil
}

// LoadFile parses and validates one plan file. A plan without an id takes
// the file name without its extension.
func LoadFile(path string) (models.WorkoutPlan, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.WorkoutPlan{}, err
	}

	var plan models.WorkoutPlan
	if err := yaml.Unmarshal(data, &plan); err != nil {
		return models.WorkoutPlan{}, fmt.Errorf("parsing plan: %w", err)
	}

	if plan.ID == "" {
		plan.ID = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if plan.Name == "" {
		plan.Name = plan.ID
	}

	if err := Validate(plan); err != nil {
		return models.WorkoutPlan{}, err
	}

	return plan, nil
}

func Validate(plan models.WorkoutPlan) error {
	if plan.Total() == 0 {
		return fmt.Errorf("plan %q has no exercises", plan.ID)
	}
	if plan.RestSeconds < 0 {
		return fmt.Errorf("plan %q: rest_seconds must not be negative", plan.ID)
	}
	for _, item := range plan.Main {
		if item.Name == "" {
			return fmt.Errorf("plan %q: main exercise without a name", plan.ID)
		}
		if item.Sets < 1 {
			return fmt.Errorf("plan %q: %s needs at least one set", plan.ID, item.Name)
		}
	}
	for _, item := range append(append([]models.TimedItem{}, plan.Warmup...), plan.Cooldown...) {
		if item.Name == "" {
			return fmt.Errorf("plan %q: timed exercise without a name", plan.ID)
		}
	}
	return nil
}
