package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adibhanna/workoutsessions/internal/models"
)

type Storage struct {
	dataDir string
	now     func() time.Time
}

// New opens the data directory, creating it when needed. An empty dir
// means ~/.workoutsessions.
func New(dataDir string) (*Storage, error) {
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dataDir = filepath.Join(homeDir, ".workoutsessions")
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	return &Storage{dataDir: dataDir, now: time.Now}, nil
}

func (s *Storage) DataDir() string {
	return s.dataDir
}

func (s *Storage) workoutsFile() string {
	return filepath.Join(s.dataDir, "workouts.json")
}

func (s *Storage) preferencesFile() string {
	return filepath.Join(s.dataDir, "preferences.json")
}

// SaveRecord inserts the record or replaces the one with the same ID.
func (s *Storage) SaveRecord(record models.WorkoutRecord) error {
	records, err := s.GetAllRecords()
	if err != nil {
		return err
	}

	found := false
	for i, existing := range records {
		if existing.ID == record.ID {
			records[i] = record
			found = true
			break
		}
	}

	if !found {
		records = append(records, record)
	}

	if err := s.writeJSON(s.workoutsFile(), records); err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"id":     record.ID,
		"plan":   record.PlanID,
		"status": record.Status,
	}).Debug("workout record saved")
	return nil
}

func (s *Storage) GetAllRecords() ([]models.WorkoutRecord, error) {
	data, err := os.ReadFile(s.workoutsFile())
	if err != nil {
		if os.IsNotExist(err) {
			return []models.WorkoutRecord{}, nil
		}
		return nil, err
	}

	var records []models.WorkoutRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", s.workoutsFile(), err)
	}

	return records, nil
}

// GetRecent returns up to n records, newest first. n <= 0 returns all.
func (s *Storage) GetRecent(n int) ([]models.WorkoutRecord, error) {
	records, err := s.GetAllRecords()
	if err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].StartTime.After(records[j].StartTime)
	})

	if n > 0 && len(records) > n {
		records = records[:n]
	}
	return records, nil
}

// GetPaused returns the most recent paused workout, if any.
func (s *Storage) GetPaused() (*models.WorkoutRecord, error) {
	records, err := s.GetRecent(0)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		if record.Status == models.StatusPaused {
			return &record, nil
		}
	}

	return nil, nil
}

func (s *Storage) GetRecordsByDate(date string) ([]models.WorkoutRecord, error) {
	allRecords, err := s.GetAllRecords()
	if err != nil {
		return nil, err
	}

	var records []models.WorkoutRecord
	for _, record := range allRecords {
		if record.Date == date {
			records = append(records, record)
		}
	}

	return records, nil
}

func (s *Storage) GetWeekRecords(year int, week int) ([]models.WorkoutRecord, error) {
	allRecords, err := s.GetAllRecords()
	if err != nil {
		return nil, err
	}

	var records []models.WorkoutRecord
	for _, record := range allRecords {
		if record.Year == year && record.Week == week {
			records = append(records, record)
		}
	}

	return records, nil
}

// GetDayStats totals the completed workouts of one day. Paused and
// abandoned workouts are listed but not counted.
func (s *Storage) GetDayStats(date string) (models.DayStats, error) {
	records, err := s.GetRecordsByDate(date)
	if err != nil {
		return models.DayStats{}, err
	}

	stats := models.DayStats{
		Date:     date,
		Workouts: records,
	}
	for _, record := range records {
		if record.Status != models.StatusCompleted {
			continue
		}
		stats.WorkoutsCount++
		stats.TotalSeconds += record.ElapsedSeconds
		stats.ExercisesCount += record.ExercisesCompleted
	}

	return stats, nil
}

func (s *Storage) GetWeekStats(year int, week int) (models.WeekStats, error) {
	records, err := s.GetWeekRecords(year, week)
	if err != nil {
		return models.WeekStats{}, err
	}

	stats := models.WeekStats{
		Week: week,
		Year: year,
	}

	dateMap := make(map[string]*models.DayStats)
	var dates []string
	for _, record := range records {
		if record.Status != models.StatusCompleted {
			continue
		}
		stats.WorkoutsCount++
		stats.TotalSeconds += record.ElapsedSeconds

		day, ok := dateMap[record.Date]
		if !ok {
			day = &models.DayStats{Date: record.Date}
			dateMap[record.Date] = day
			dates = append(dates, record.Date)
		}
		day.WorkoutsCount++
		day.TotalSeconds += record.ElapsedSeconds
		day.ExercisesCount += record.ExercisesCompleted
		day.Workouts = append(day.Workouts, record)
	}

	sort.Strings(dates)
	for _, date := range dates {
		stats.DailyStats = append(stats.DailyStats, *dateMap[date])
	}

	return stats, nil
}

func (s *Storage) GetPreferences() (models.Preferences, error) {
	data, err := os.ReadFile(s.preferencesFile())
	if err != nil {
		if os.IsNotExist(err) {
			return models.DefaultPreferences(), nil
		}
		return models.Preferences{}, err
	}

	prefs := models.DefaultPreferences()
	if err := json.Unmarshal(data, &prefs); err != nil {
		return models.Preferences{}, fmt.Errorf("parsing %s: %w", s.preferencesFile(), err)
	}

	return prefs, nil
}

func (s *Storage) SavePreferences(prefs models.Preferences) error {
	return s.writeJSON(s.preferencesFile(), prefs)
}

func (s *Storage) ResetAllData() error {
	for _, file := range []string{s.workoutsFile(), s.preferencesFile()} {
		if err := os.Remove(file); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// ExportReport renders every stored workout as a plain-text report.
func (s *Storage) ExportReport() (string, error) {
	records, err := s.GetRecent(0)
	if err != nil {
		return "", err
	}

	now := s.now()
	var b strings.Builder
	b.WriteString("Workout Sessions - History Report\n")
	fmt.Fprintf(&b, "Generated: %s\n", now.Format("January 2, 2006 3:04 PM"))
	b.WriteString("=====================================\n\n")

	completed, totalSeconds := 0, 0
	for _, record := range records {
		if record.Status == models.StatusCompleted {
			completed++
			totalSeconds += record.ElapsedSeconds
		}
	}

	b.WriteString("OVERALL\n")
	b.WriteString("-------\n")
	fmt.Fprintf(&b, "Workouts Started: %d\n", len(records))
	fmt.Fprintf(&b, "Workouts Completed: %d\n", completed)
	fmt.Fprintf(&b, "Total Training Time: %s\n", FormatDuration(totalSeconds))
	if completed > 0 {
		fmt.Fprintf(&b, "Average Workout: %s\n", FormatDuration(totalSeconds/completed))
	}
	b.WriteString("\n")

	year, week := now.ISOWeek()
	weekStats, err := s.GetWeekStats(year, week)
	if err == nil && weekStats.WorkoutsCount > 0 {
		fmt.Fprintf(&b, "CURRENT WEEK (Week %d, %d)\n", weekStats.Week, weekStats.Year)
		b.WriteString("------------------------\n")
		for _, day := range weekStats.DailyStats {
			date, _ := time.Parse("2006-01-02", day.Date)
			fmt.Fprintf(&b, "  %s: %d workouts (%s)\n", date.Format("Monday"), day.WorkoutsCount, FormatDuration(day.TotalSeconds))
		}
		b.WriteString("\n")
	}

	if len(records) > 0 {
		b.WriteString("WORKOUTS\n")
		b.WriteString("--------\n")
		for _, record := range records {
			fmt.Fprintf(&b, "  %s  %-20s %-9s %d/%d exercises  %s\n",
				record.StartTime.Format("2006-01-02 15:04"),
				record.PlanName,
				record.Status,
				record.ExercisesCompleted,
				record.ExercisesTotal,
				FormatDuration(record.ElapsedSeconds),
			)
		}
	}

	return b.String(), nil
}

// FormatDuration renders seconds as "1h 5m", "12m 30s" or "45s".
func FormatDuration(seconds int) string {
	hours := seconds / 3600
	mins := (seconds % 3600) / 60
	secs := seconds % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, mins)
	case mins > 0:
		return fmt.Sprintf("%dm %ds", mins, secs)
	default:
		return fmt.Sprintf("%ds", secs)
	}
}

func (s *Storage) writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}
