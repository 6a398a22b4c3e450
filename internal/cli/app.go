package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/adibhanna/workoutsessions/internal/plans"
	"github.com/adibhanna/workoutsessions/internal/ui/capture"
	"github.com/adibhanna/workoutsessions/internal/ui/customize"
	"github.com/adibhanna/workoutsessions/internal/ui/help"
	"github.com/adibhanna/workoutsessions/internal/ui/history"
	"github.com/adibhanna/workoutsessions/internal/ui/menu"
)

// runTUI is the main loop: the menu picks a screen, the screen runs as its
// own program, and control comes back to the menu until the user quits.
func (a *app) runTUI(ctx context.Context) error {
	for {
		menuModel, err := menu.New(a.catalog.List(), a.store)
		if err != nil {
			return err
		}

		p := tea.NewProgram(menuModel, tea.WithAltScreen(), tea.WithContext(ctx))
		finalModel, err := p.Run()
		if err != nil {
			return err
		}

		menuModel = finalModel.(menu.Model)
		if menuModel.ShouldQuit() {
			fmt.Println(">>> See you next workout!")
			return nil
		}

		switch menuModel.GetSelected() {
		case menu.StartWorkout:
			quit, err := a.runWorkout(ctx, menuModel.SelectedPlan(), nil)
			if err != nil {
				return err
			}
			if quit {
				fmt.Println(">>> See you next workout!")
				return nil
			}

		case menu.Customize:
			customizeModel, err := customize.New(a.store)
			if err != nil {
				return err
			}
			p := tea.NewProgram(customizeModel, tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil {
				return err
			}

		case menu.RecentWorkouts:
			historyModel, err := history.New(a.store)
			if err != nil {
				return err
			}
			p := tea.NewProgram(historyModel, tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil {
				return err
			}

		case menu.Help:
			p := tea.NewProgram(help.New(a.store.DataDir()), tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil {
				return err
			}
		}
	}
}

// runWorkout runs the capture screen for planID with the saved
// preferences applied. It reports whether the user asked to quit.
func (a *app) runWorkout(ctx context.Context, planID string, opts []capture.Option) (bool, error) {
	prefs, err := a.store.GetPreferences()
	if err != nil {
		return false, err
	}

	plan := plans.Customize(a.catalog.Get(planID), prefs)
	a.log.WithField("plan", plan.ID).WithField("exercises", plan.Total()).Info("starting workout")

	m, err := capture.Start(ctx, capture.New(plan, a.store, opts...))
	if err != nil {
		return false, err
	}

	snap := m.Snapshot()
	a.log.WithField("plan", plan.ID).
		WithField("complete", snap.Complete).
		WithField("elapsed", snap.Elapsed).
		WithField("reps", m.Reps()).
		Info("workout screen closed")

	return m.ShouldQuit(), nil
}
