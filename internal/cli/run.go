package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/adibhanna/workoutsessions/internal/models"
	"github.com/adibhanna/workoutsessions/internal/plans"
	"github.com/adibhanna/workoutsessions/internal/pose"
	"github.com/adibhanna/workoutsessions/internal/storage"
	"github.com/adibhanna/workoutsessions/internal/ui/capture"
	"github.com/adibhanna/workoutsessions/internal/workout"
)

var (
	headless      bool
	landmarksPath string
)

// NewRunCommand creates the run command
func NewRunCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [plan-id]",
		Short: "Start a workout straight away",
		Long: `Start a workout without going through the menu. Without a plan id the
default plan is used.

With --headless the workout runs on the terminal's standard input instead of
the full screen UI. Commands, one per line:
  c          complete the current set
  s          skip the rest countdown
  j <n>      jump to exercise n
  p / r      pause / resume
  reset      start the workout over
  q          save and quit`,
		Args: cobra.MaximumNArgs(1),
		RunE: runWorkoutCmd,
	}

	cmd.Flags().BoolVar(&headless, "headless", false, "Run on stdin/stdout without the full screen UI")
	cmd.Flags().StringVar(&landmarksPath, "landmarks", "", "File or FIFO of pose landmark frames (JSON lines) for rep counting in the full screen UI")

	return cmd
}

func runWorkoutCmd(cmd *cobra.Command, args []string) error {
	a, err := setup()
	if err != nil {
		return err
	}

	planID := ""
	if len(args) == 1 {
		planID = args[0]
		if _, ok := a.catalog.Lookup(planID); !ok {
			a.log.WithField("plan", planID).Warn("unknown plan, using the default")
			fmt.Fprintf(cmd.ErrOrStderr(), "Unknown plan %q, starting %s instead\n", planID, a.catalog.Default().Name)
		}
	}

	if headless {
		prefs, err := a.store.GetPreferences()
		if err != nil {
			return err
		}
		plan := plans.Customize(a.catalog.Get(planID), prefs)
		_, err = runHeadless(cmd.Context(), plan, a.store, cmd.InOrStdin(), cmd.OutOrStdout(), time.Second)
		return err
	}

	var opts []capture.Option
	if landmarksPath != "" {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		r, closeFn, err := openLandmarks(landmarksPath)
		if err != nil {
			// The workout does not depend on pose tracking.
			a.log.WithError(err).Warn("pose landmarks unavailable")
		} else {
			defer closeFn()
			frames, errs := pose.Stream(ctx, r)
			opts = append(opts, capture.WithLandmarks(frames, errs))
		}
	}

	_, err = a.runWorkout(cmd.Context(), planID, opts)
	return err
}

func openLandmarks(path string) (io.Reader, func(), error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening landmarks: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// syncWriter serialises writes from the ticker goroutine and the command
// loop.
type syncWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *syncWriter) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintf(s.w, format, args...)
}

// runHeadless drives plan with a Runner, reading commands from in until
// the workout completes, the input ends or ctx is cancelled. The record is
// saved when store is not nil and returned either way.
func runHeadless(ctx context.Context, plan models.WorkoutPlan, store *storage.Storage, in io.Reader, out io.Writer, period time.Duration) (models.WorkoutRecord, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	w := &syncWriter{w: out}
	record := storage.NewRecord(plan, time.Now())

	var last workout.Snapshot
	var lastMu sync.Mutex
	onChange := func(snap workout.Snapshot) {
		lastMu.Lock()
		changed := snap.Phase != last.Phase || snap.CurrentExercise != last.CurrentExercise
		last = snap
		lastMu.Unlock()
		if changed {
			w.printf("%s\n", describe(plan, snap))
		}
	}

	runner := workout.NewRunner(ctx, workout.NewSession(plan), period, onChange)
	defer runner.Close()

	last = runner.Snapshot()
	w.printf("Starting %s (%d exercises)\n%s\n", plan.Name, plan.Total(), describe(plan, last))
	runner.Start()

	// The reader goroutine stops on ctx only between lines. A Scan blocked
	// on a terminal stays blocked until in is closed or the process exits.
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	status := models.StatusPaused
loop:
	for {
		select {
		case <-ctx.Done():
			break loop

		case <-runner.Done():
			status = models.StatusCompleted
			break loop

		case line, ok := <-lines:
			if !ok {
				break loop
			}
			quit, err := applyCommand(runner, line)
			if err != nil {
				w.printf("%v\n", err)
				continue
			}
			if quit {
				break loop
			}
			snap := runner.Snapshot()
			lastMu.Lock()
			last = snap
			lastMu.Unlock()
			w.printf("%s\n", describe(plan, snap))
		}
	}

	runner.Close()
	snap := runner.Snapshot()
	if snap.Complete {
		status = models.StatusCompleted
	}

	record.Status = status
	record.ElapsedSeconds = snap.Elapsed
	record.ExercisesCompleted = snap.Completed
	record.Skipped = snap.Skipped
	if status == models.StatusCompleted {
		record.EndTime = time.Now()
		w.printf("*** Workout complete: %s in %s ***\n", plan.Name, storage.FormatDuration(snap.Elapsed))
	}

	if store != nil && (status == models.StatusCompleted || snap.Elapsed > 0 || snap.Completed > 0) {
		if err := store.SaveRecord(record); err != nil {
			return record, fmt.Errorf("saving workout: %w", err)
		}
	}
	return record, nil
}

func applyCommand(r *workout.Runner, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	switch fields[0] {
	case "c":
		r.CompleteSet(r.Snapshot().CurrentExercise)
	case "s":
		r.SkipRest()
	case "j":
		if len(fields) != 2 {
			return false, fmt.Errorf("usage: j <exercise>")
		}
		pos, err := strconv.Atoi(fields[1])
		if err != nil {
			return false, fmt.Errorf("exercise must be a number: %w", err)
		}
		r.Jump(pos)
	case "p":
		r.Pause()
	case "r":
		r.Resume()
	case "reset":
		r.Reset()
	case "q":
		return true, nil
	default:
		return false, fmt.Errorf("unknown command %q", fields[0])
	}
	return false, nil
}

func describe(plan models.WorkoutPlan, snap workout.Snapshot) string {
	if snap.Complete {
		return fmt.Sprintf("[%s] complete", formatClock(snap.Elapsed))
	}

	ex, _ := plan.ExerciseAt(snap.CurrentExercise)
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %d/%d %s", formatClock(snap.Elapsed), snap.CurrentExercise, snap.Total, ex.Name)
	if ex.Section == models.SectionMain {
		fmt.Fprintf(&b, " set %d/%d", snap.CurrentSet, snap.TotalSets)
	}
	switch snap.RestPhase {
	case workout.RestBetweenSets:
		fmt.Fprintf(&b, " | rest %ds before next set", snap.RestRemaining)
	case workout.RestBetweenExercises:
		next, _ := plan.ExerciseAt(snap.RestTarget)
		fmt.Fprintf(&b, " | rest %ds before %s", snap.RestRemaining, next.Name)
	}
	if !snap.Active {
		b.WriteString(" | paused")
	}
	return b.String()
}

func formatClock(seconds int) string {
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
