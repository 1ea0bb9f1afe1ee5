package roster

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harshithkalluri/shiftweek/pkg/core/scheduling"
)

func TestParse_ValidRoster(t *testing.T) {
	data := []byte(`
employees:
  - name: Alice
    preferences:
      Monday: Morning
      Friday: Evening
  - name: Bob
`)

	ros, err := Parse(data)
	require.NoError(t, err)
	require.Len(t, ros.Employees, 2)

	assert.Equal(t, "Alice", ros.Employees[0].Name)
	assert.Equal(t, "Morning", ros.Employees[0].Preferences["Monday"])
	assert.Empty(t, ros.Employees[1].Preferences)
}

func TestParse_MissingName(t *testing.T) {
	data := []byte(`
employees:
  - preferences:
      Monday: Morning
`)

	_, err := Parse(data)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestParse_EmptyRoster(t *testing.T) {
	_, err := Parse([]byte(`employees: []`))
	assert.Error(t, err)
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := Parse([]byte(`employees: [`))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestApply_RecordsAllPreferences(t *testing.T) {
	ros := &Roster{Employees: []Entry{
		{Name: "Alice", Preferences: map[string]string{"Monday": "Morning", "Tuesday": "Evening"}},
		{Name: "Bob"},
	}}

	sched := scheduling.NewScheduler(scheduling.SchedulerConfig{})
	skipped, err := ros.Apply(sched)
	require.NoError(t, err)
	assert.Empty(t, skipped)

	assert.Equal(t, []string{"Alice", "Bob"}, sched.Employees())
	prefs := sched.Preferences("Alice")
	assert.Equal(t, scheduling.Morning, prefs[scheduling.Monday])
	assert.Equal(t, scheduling.Evening, prefs[scheduling.Tuesday])
}

func TestApply_InvalidShiftLabel(t *testing.T) {
	ros := &Roster{Employees: []Entry{
		{Name: "Alice", Preferences: map[string]string{"Monday": "Overnight"}},
	}}

	_, err := ros.Apply(scheduling.NewScheduler(scheduling.SchedulerConfig{}))
	require.Error(t, err)

	var invalidErr *scheduling.InvalidInputError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "shift", invalidErr.Field)
}

func TestApply_InvalidDayKey(t *testing.T) {
	ros := &Roster{Employees: []Entry{
		{Name: "Alice", Preferences: map[string]string{"Funday": "Morning"}},
	}}

	_, err := ros.Apply(scheduling.NewScheduler(scheduling.SchedulerConfig{}))
	require.Error(t, err)

	var invalidErr *scheduling.InvalidInputError
	require.ErrorAs(t, err, &invalidErr)
	assert.Equal(t, "day", invalidErr.Field)
}

func TestApply_DuplicateEmployeeFirstWins(t *testing.T) {
	ros := &Roster{Employees: []Entry{
		{Name: "Alice", Preferences: map[string]string{"Monday": "Morning"}},
		{Name: "Alice", Preferences: map[string]string{"Monday": "Evening", "Friday": "Morning"}},
	}}

	sched := scheduling.NewScheduler(scheduling.SchedulerConfig{})
	skipped, err := ros.Apply(sched)
	require.NoError(t, err)

	require.Len(t, skipped, 1)
	assert.Equal(t, "Alice", skipped[0].Employee)
	assert.Equal(t, "Monday", skipped[0].Day)
	assert.Equal(t, "Evening", skipped[0].Shift)

	prefs := sched.Preferences("Alice")
	assert.Equal(t, scheduling.Morning, prefs[scheduling.Monday])
	assert.Equal(t, scheduling.Morning, prefs[scheduling.Friday])
}

func TestSample_AppliesCleanly(t *testing.T) {
	ros := Sample()
	require.Len(t, ros.Employees, 8)

	sched := scheduling.NewScheduler(scheduling.SchedulerConfig{})
	skipped, err := ros.Apply(sched)
	require.NoError(t, err)
	assert.Empty(t, skipped)

	assert.Len(t, sched.Employees(), 8)
	assert.Len(t, sched.Preferences("Alice"), 5)
	assert.Len(t, sched.Preferences("Charlie"), 3)
}

func TestWriteSample_Roundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")

	require.NoError(t, WriteSample(path, false))

	ros, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, ros.Employees, 8)
}

func TestWriteSample_RefusesToOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	require.NoError(t, os.WriteFile(path, []byte("employees: []"), 0644))

	err := WriteSample(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	// Forced overwrite succeeds
	require.NoError(t, WriteSample(path, true))
	ros, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, ros.Employees, 8)
}
