package menu

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adibhanna/workoutsessions/internal/models"
	"github.com/adibhanna/workoutsessions/internal/plans"
	"github.com/adibhanna/workoutsessions/internal/storage"
)

func newMenu(t *testing.T) (Model, *storage.Storage) {
	t.Helper()
	store, err := storage.New(t.TempDir())
	require.NoError(t, err)

	m, err := New(plans.NewCatalog().List(), store)
	require.NoError(t, err)
	return m, store
}

func press(m Model, msgs ...tea.Msg) Model {
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

var (
	down  = tea.KeyMsg{Type: tea.KeyDown}
	up    = tea.KeyMsg{Type: tea.KeyUp}
	enter = tea.KeyMsg{Type: tea.KeyEnter}
)

func TestSelectPlan(t *testing.T) {
	m, _ := newMenu(t)

	m = press(m, down, enter)
	assert.Equal(t, StartWorkout, m.GetSelected())
	assert.Equal(t, "morning-strength", m.SelectedPlan())
	assert.False(t, m.ShouldQuit())
}

func TestSelectCustomize(t *testing.T) {
	m, _ := newMenu(t)

	for i := 0; i < 4; i++ {
		m = press(m, down)
	}
	m = press(m, enter)
	assert.Equal(t, Customize, m.GetSelected())
	assert.Empty(t, m.SelectedPlan())
}

func TestWrapAroundToExit(t *testing.T) {
	m, _ := newMenu(t)

	m = press(m, up, enter)
	assert.Equal(t, Exit, m.GetSelected())
	assert.True(t, m.ShouldQuit())

	m = press(m, down)
	assert.Equal(t, 0, m.cursor)
}

func TestQuitKey(t *testing.T) {
	m, _ := newMenu(t)
	m = press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.True(t, m.ShouldQuit())
}

func TestViewShowsTodayAndRecent(t *testing.T) {
	store, err := storage.New(t.TempDir())
	require.NoError(t, err)

	plan := plans.NewCatalog().Get("core-focus")
	r := storage.NewRecord(plan, time.Now())
	r.Status = models.StatusCompleted
	r.ElapsedSeconds = 900
	r.ExercisesCompleted = plan.Total()
	require.NoError(t, store.SaveRecord(r))
	require.NoError(t, store.SavePreferences(models.Preferences{RestSeconds: 45, IncludeWarmup: true}))

	m, err := New(plans.NewCatalog().List(), store)
	require.NoError(t, err)
	assert.Equal(t, "Loading...", m.View())

	m = press(m, tea.WindowSizeMsg{Width: 140, Height: 50})
	view := m.View()
	assert.Contains(t, view, "Today: 1 workouts | 15m 0s | 8 exercises")
	assert.Contains(t, view, "Upper Body Power")
	assert.Contains(t, view, "Customized: rest 45s • no cooldown")
	assert.Contains(t, view, "Core Focus • 15m 0s • 8/8 exercises")
}
