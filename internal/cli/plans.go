package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adibhanna/workoutsessions/internal/models"
	"github.com/adibhanna/workoutsessions/internal/plans"
)

var listExercises bool

// NewPlansCommand creates the plans command
func NewPlansCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plans [plan-id]",
		Short: "List workout plans, or show one in detail",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := setup()
			if err != nil {
				return err
			}
			if listExercises {
				printLibrary(cmd.OutOrStdout(), a.catalog)
				return nil
			}
			if len(args) == 1 {
				plan, ok := a.catalog.Lookup(args[0])
				if !ok {
					return fmt.Errorf("plan %q: %w", args[0], plans.ErrUnknownPlan)
				}
				printPlan(cmd.OutOrStdout(), plan)
				return nil
			}
			printPlans(cmd.OutOrStdout(), a.catalog)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&listExercises, "exercises", "e", false, "List every exercise used by the plans")

	return cmd
}

func printPlans(w io.Writer, catalog *plans.Catalog) {
	def := catalog.Default().ID

	fmt.Fprintln(w, "Plans:")
	fmt.Fprintln(w, "======")
	for i, p := range catalog.List() {
		marker := ""
		if p.ID == def {
			marker = " (default)"
		}
		fmt.Fprintf(w, "%d. %s%s\n", i+1, p.Name, marker)
		fmt.Fprintf(w, "   ID: %s\n", p.ID)
		fmt.Fprintf(w, "   %s • %s • %s\n", p.Duration, p.Difficulty, p.Focus)
		fmt.Fprintf(w, "   Exercises: %d\n", p.Total())
	}
}

func printPlan(w io.Writer, plan models.WorkoutPlan) {
	fmt.Fprintf(w, "%s (%s)\n", plan.Name, plan.ID)
	fmt.Fprintf(w, "%s • %s • %s\n", plan.Duration, plan.Difficulty, plan.Focus)
	if plan.Equipment != "" {
		fmt.Fprintf(w, "Equipment: %s\n", plan.Equipment)
	}
	fmt.Fprintf(w, "Rest: %ds\n\n", plan.RestSeconds)

	section := models.SectionNone
	for _, ex := range plan.Exercises() {
		if ex.Section != section {
			section = ex.Section
			fmt.Fprintf(w, "%s\n", section)
		}
		if ex.Section == models.SectionMain {
			fmt.Fprintf(w, "  %2d. %s  %d x %d\n", ex.Position, ex.Name, ex.Sets, ex.Reps)
		} else {
			fmt.Fprintf(w, "  %2d. %s  %ds\n", ex.Position, ex.Name, ex.DurationSec)
		}
	}
}

func printLibrary(w io.Writer, catalog *plans.Catalog) {
	fmt.Fprintln(w, "Exercises:")
	fmt.Fprintln(w, "==========")
	for _, e := range catalog.Library() {
		sections := make([]string, len(e.Sections))
		for i, s := range e.Sections {
			sections[i] = s.String()
		}
		fmt.Fprintf(w, "%-20s %-12s %-20s %s\n",
			e.Name, e.Difficulty, strings.Join(sections, ", "), strings.Join(e.PlanIDs, ", "))
	}
}
