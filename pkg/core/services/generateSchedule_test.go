package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/harshithkalluri/shiftweek/internal/config"
	"github.com/harshithkalluri/shiftweek/pkg/core/scheduling"
	"github.com/harshithkalluri/shiftweek/pkg/roster"
)

func TestGenerateSchedule_SampleRoster(t *testing.T) {
	result, err := GenerateSchedule(roster.Sample(), config.Default(), zap.NewNop(), "2026-01-05", "42")
	require.NoError(t, err)

	// Run metadata
	_, err = uuid.Parse(result.RunID)
	assert.NoError(t, err)
	assert.Equal(t, time.Monday, result.WeekStart.Weekday())
	assert.Equal(t, "2026-01-05", result.WeekStart.Format("2006-01-02"))

	// Seven consecutive dates, Monday first
	require.Len(t, result.DayDates, 7)
	for i, date := range result.DayDates {
		assert.Equal(t, result.WeekStart.AddDate(0, 0, i), date)
	}

	// Schedule invariants
	require.NotNil(t, result.Schedule)
	assert.Len(t, result.Schedule.DaysWorked, 8)
	for employee, days := range result.Schedule.DaysWorked {
		assert.LessOrEqual(t, days, config.Default().MaxDaysPerWeek, "employee %s", employee)
	}
	assert.Empty(t, result.Skipped)
}

func TestGenerateSchedule_ReproducibleForFixedSeed(t *testing.T) {
	first, err := GenerateSchedule(roster.Sample(), config.Default(), zap.NewNop(), "2026-01-05", "7")
	require.NoError(t, err)

	second, err := GenerateSchedule(roster.Sample(), config.Default(), zap.NewNop(), "2026-01-05", "7")
	require.NoError(t, err)

	assert.Equal(t, first.Schedule, second.Schedule)
}

func TestGenerateSchedule_WeekStartNotMonday(t *testing.T) {
	_, err := GenerateSchedule(roster.Sample(), config.Default(), zap.NewNop(), "2026-01-06", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a Monday")
}

func TestGenerateSchedule_MalformedWeekStart(t *testing.T) {
	_, err := GenerateSchedule(roster.Sample(), config.Default(), zap.NewNop(), "Jan 5 2026", "")
	assert.Error(t, err)
}

func TestGenerateSchedule_InvalidSeed(t *testing.T) {
	_, err := GenerateSchedule(roster.Sample(), config.Default(), zap.NewNop(), "2026-01-05", "lucky")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid seed")
}

func TestGenerateSchedule_DefaultsToNextMonday(t *testing.T) {
	result, err := GenerateSchedule(roster.Sample(), config.Default(), zap.NewNop(), "", "1")
	require.NoError(t, err)

	assert.Equal(t, time.Monday, result.WeekStart.Weekday())
	assert.True(t, result.WeekStart.After(time.Now().AddDate(0, 0, -1)))
}

func TestGenerateSchedule_ConfiguredWeekStart(t *testing.T) {
	cfg := config.Default()
	cfg.WeekStart = "2026-02-02"

	result, err := GenerateSchedule(roster.Sample(), cfg, zap.NewNop(), "", "1")
	require.NoError(t, err)

	assert.Equal(t, "2026-02-02", result.WeekStart.Format("2006-01-02"))
}

func TestGenerateSchedule_InvalidRosterLabel(t *testing.T) {
	ros := &roster.Roster{Employees: []roster.Entry{
		{Name: "Alice", Preferences: map[string]string{"Monday": "Overnight"}},
	}}

	_, err := GenerateSchedule(ros, config.Default(), zap.NewNop(), "2026-01-05", "")
	require.Error(t, err)

	var invalidErr *scheduling.InvalidInputError
	assert.ErrorAs(t, err, &invalidErr)
}

func TestNextMonday(t *testing.T) {
	// A Wednesday rolls forward to the following Monday
	wednesday := time.Date(2026, 1, 7, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC), nextMonday(wednesday))

	// A Monday rolls forward a full week, never same-day
	monday := time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 1, 12, 0, 0, 0, 0, time.UTC), nextMonday(monday))
}

func TestRenderSchedule(t *testing.T) {
	result, err := GenerateSchedule(roster.Sample(), config.Default(), zap.NewNop(), "2026-01-05", "42")
	require.NoError(t, err)

	out := RenderSchedule(result)

	assert.Contains(t, out, "MONDAY 2026-01-05")
	assert.Contains(t, out, "SUNDAY 2026-01-11")
	assert.Contains(t, out, "Morning")
	assert.Contains(t, out, "Employee Work Summary")
	assert.Contains(t, out, "Alice")
	assert.Contains(t, out, result.RunID)
}
