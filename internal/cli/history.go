package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/adibhanna/workoutsessions/internal/storage"
)

var historyLimit int

// NewHistoryCommand creates the history command
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent workouts and today's totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			return printHistory(cmd.OutOrStdout(), a.store, historyLimit, time.Now())
		},
	}

	cmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of workouts to show (0 for all)")

	return cmd
}

func printHistory(w io.Writer, store *storage.Storage, limit int, now time.Time) error {
	today, err := store.GetDayStats(now.Format("2006-01-02"))
	if err != nil {
		return fmt.Errorf("failed to load today's stats: %w", err)
	}
	fmt.Fprintf(w, "Today: %d workouts | %s | %d exercises\n\n",
		today.WorkoutsCount, storage.FormatDuration(today.TotalSeconds), today.ExercisesCount)

	paused, err := store.GetPaused()
	if err != nil {
		return fmt.Errorf("failed to load paused workout: %w", err)
	}
	if paused != nil {
		fmt.Fprintf(w, "Unfinished: %s (%d/%d exercises) - resume with: workoutsessions run %s\n\n",
			paused.PlanName, paused.ExercisesCompleted, paused.ExercisesTotal, paused.PlanID)
	}

	records, err := store.GetRecent(limit)
	if err != nil {
		return fmt.Errorf("failed to load workouts: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(w, "No workouts yet")
		return nil
	}

	fmt.Fprintln(w, "Recent workouts:")
	fmt.Fprintln(w, "================")
	for _, r := range records {
		fmt.Fprintf(w, "%s  %-20s %-9s %d/%d exercises  %s\n",
			r.StartTime.Format("2006-01-02 15:04"),
			r.PlanName,
			r.Status,
			r.ExercisesCompleted,
			r.ExercisesTotal,
			storage.FormatDuration(r.ElapsedSeconds),
		)
	}
	return nil
}
