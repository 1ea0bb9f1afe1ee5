package services

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/harshithkalluri/shiftweek/internal/config"
	"github.com/harshithkalluri/shiftweek/pkg/core/scheduling"
	"github.com/harshithkalluri/shiftweek/pkg/roster"
)

// GenerateScheduleResult contains the generated schedule and its run metadata
type GenerateScheduleResult struct {
	// RunID uniquely identifies this generation run
	RunID string

	// WeekStart is the Monday the schedule week begins on
	WeekStart time.Time

	// DayDates holds the calendar date for each day of the week,
	// indexed by scheduling.Day (Monday first)
	DayDates []time.Time

	// Schedule is the scheduler's output: the full grid, per-employee day
	// totals and dropped preferences
	Schedule *scheduling.ScheduleResult

	// Skipped lists roster preferences ignored as duplicates
	Skipped []roster.SkippedPreference
}

// GenerateSchedule builds a weekly schedule from a roster.
//
// weekStart is the Monday the week begins on (YYYY-MM-DD); empty falls back
// to the configured default, then to the next Monday from today. seed pins
// the random top-up selection for reproducible runs; empty means time-seeded.
func GenerateSchedule(
	ros *roster.Roster,
	cfg *config.Config,
	logger *zap.Logger,
	weekStart string,
	seed string,
) (*GenerateScheduleResult, error) {
	logger.Debug("Starting schedule generation",
		zap.Int("employees", len(ros.Employees)),
		zap.Int("min_per_shift", cfg.MinEmployeesPerShift),
		zap.Int("max_days_per_week", cfg.MaxDaysPerWeek),
		zap.String("seed", seed))

	// Resolve the week start date
	start, err := resolveWeekStart(weekStart, cfg)
	if err != nil {
		return nil, err
	}

	// Resolve the random seed
	seedValue, err := parseSeed(seed)
	if err != nil {
		return nil, err
	}

	// Load the roster into a fresh scheduler
	sched := scheduling.NewScheduler(scheduling.SchedulerConfig{
		MinEmployeesPerShift: cfg.MinEmployeesPerShift,
		MaxDaysPerWeek:       cfg.MaxDaysPerWeek,
		Seed:                 seedValue,
	})

	skipped, err := ros.Apply(sched)
	if err != nil {
		return nil, fmt.Errorf("failed to apply roster: %w", err)
	}
	for _, skip := range skipped {
		logger.Warn("Duplicate preference ignored (first wins)",
			zap.String("employee", skip.Employee),
			zap.String("day", skip.Day),
			zap.String("shift", skip.Shift))
	}

	// Run the scheduler
	schedule := sched.BuildSchedule()

	for _, drop := range schedule.Dropped {
		logger.Debug("Preference dropped",
			zap.String("employee", drop.Employee),
			zap.String("day", drop.Day.String()),
			zap.String("shift", drop.Shift.String()),
			zap.String("reason", string(drop.Reason)))
	}

	understaffed := schedule.UnderstaffedCells()
	if len(understaffed) > 0 {
		logger.Info("Schedule generated with understaffed shifts",
			zap.Int("understaffed_cells", len(understaffed)))
	} else {
		logger.Info("Schedule generated, all shifts fully staffed")
	}

	// Expand the week's calendar dates
	dates, err := weekDates(start)
	if err != nil {
		return nil, fmt.Errorf("failed to expand week dates: %w", err)
	}

	return &GenerateScheduleResult{
		RunID:     uuid.New().String(),
		WeekStart: start,
		DayDates:  dates,
		Schedule:  schedule,
		Skipped:   skipped,
	}, nil
}

// resolveWeekStart picks the effective week start date and requires it to
// fall on a Monday
func resolveWeekStart(weekStart string, cfg *config.Config) (time.Time, error) {
	if weekStart == "" {
		weekStart = cfg.WeekStart
	}
	if weekStart == "" {
		return nextMonday(time.Now()), nil
	}

	start, err := time.Parse("2006-01-02", weekStart)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid week start %q (expected YYYY-MM-DD): %w", weekStart, err)
	}
	if start.Weekday() != time.Monday {
		return time.Time{}, fmt.Errorf("week start %s is a %s, not a Monday", weekStart, start.Weekday())
	}
	return start, nil
}

// nextMonday returns the first Monday strictly after the given time,
// truncated to midnight UTC
func nextMonday(now time.Time) time.Time {
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	for {
		date = date.AddDate(0, 0, 1)
		if date.Weekday() == time.Monday {
			return date
		}
	}
}

// parseSeed parses the seed flag, or nil for a time-seeded run
func parseSeed(seed string) (*int64, error) {
	if seed == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(seed, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid seed %q (expected an integer): %w", seed, err)
	}
	return &n, nil
}

// weekDates expands the seven calendar dates of the week via a daily
// recurrence rule starting at the week's Monday
func weekDates(start time.Time) ([]time.Time, error) {
	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Count:   len(scheduling.Days),
		Dtstart: start,
	})
	if err != nil {
		return nil, err
	}
	return rule.All(), nil
}
