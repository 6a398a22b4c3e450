package plans

import (
	"sort"
	"strings"

	"github.com/adibhanna/workoutsessions/internal/models"
)

// LibraryEntry is one distinct exercise name and where the catalog uses it.
type LibraryEntry struct {
	Name       string
	Sections   []models.Section
	Difficulty models.Difficulty // easiest plan that includes it
	PlanIDs    []string
}

var difficultyRank = map[models.Difficulty]int{
	models.Beginner:     0,
	models.Intermediate: 1,
	models.Advanced:     2,
}

// Library collects every exercise across the catalog, matched by name
// ignoring case, sorted by name.
func (c *Catalog) Library() []LibraryEntry {
	index := make(map[string]*LibraryEntry)

	for _, p := range c.List() {
		for _, ex := range p.Exercises() {
			k := strings.ToLower(ex.Name)
			e, ok := index[k]
			if !ok {
				e = &LibraryEntry{Name: ex.Name, Difficulty: p.Difficulty}
				index[k] = e
			}
			if !containsSection(e.Sections, ex.Section) {
				e.Sections = append(e.Sections, ex.Section)
			}
			if n := len(e.PlanIDs); n == 0 || e.PlanIDs[n-1] != p.ID {
				e.PlanIDs = append(e.PlanIDs, p.ID)
			}
			if rank, known := difficultyRank[p.Difficulty]; known && rank < difficultyRank[e.Difficulty] {
				e.Difficulty = p.Difficulty
			}
		}
	}

	out := make([]LibraryEntry, 0, len(index))
	for _, e := range index {
		sort.Slice(e.Sections, func(i, j int) bool { return e.Sections[i] < e.Sections[j] })
		out = append(out, *e)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

func containsSection(sections []models.Section, s models.Section) bool {
	for _, have := range sections {
		if have == s {
			return true
		}
	}
	return false
}
