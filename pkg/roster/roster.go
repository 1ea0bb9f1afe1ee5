package roster

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/harshithkalluri/shiftweek/pkg/core/scheduling"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Entry is one employee in a roster file, with their preferred shift per day.
// Preferences are keyed by day label (Monday..Sunday); days with no
// preference are simply absent.
type Entry struct {
	Name        string            `yaml:"name" validate:"required"`
	Preferences map[string]string `yaml:"preferences,omitempty"`
}

// Roster is the caller-supplied employee list the scheduler operates on
type Roster struct {
	Employees []Entry `yaml:"employees" validate:"required,min=1,dive"`
}

// SkippedPreference records a roster preference ignored during Apply
// because the employee already had one for that day (first wins)
type SkippedPreference struct {
	Employee string
	Day      string
	Shift    string
}

// Load reads and parses a roster file
func Load(path string) (*Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster file: %w", err)
	}
	ros, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("invalid roster file %s: %w", path, err)
	}
	return ros, nil
}

// Parse parses and validates roster YAML. Day and shift labels are not
// checked here; the scheduler validates them when the roster is applied.
func Parse(data []byte) (*Roster, error) {
	var ros Roster
	if err := yaml.Unmarshal(data, &ros); err != nil {
		return nil, fmt.Errorf("failed to parse roster: %w", err)
	}
	if err := validate.Struct(&ros); err != nil {
		return nil, fmt.Errorf("roster validation failed: %w", err)
	}
	return &ros, nil
}

// Apply registers every roster employee and preference with the scheduler.
// Preferences are applied in calendar day order per employee, so the
// scheduler sees the same sequence regardless of YAML map ordering.
//
// Returns the preferences skipped as duplicates (an employee listed twice
// with overlapping days), and an error on the first invalid label or name.
func (r *Roster) Apply(sched *scheduling.Scheduler) ([]SkippedPreference, error) {
	var skipped []SkippedPreference
	for _, entry := range r.Employees {
		if err := sched.AddEmployee(entry.Name); err != nil {
			return skipped, err
		}
		for _, day := range scheduling.Days {
			shift, ok := entry.Preferences[day.String()]
			if !ok {
				continue
			}
			err := sched.RecordPreference(entry.Name, day.String(), shift)
			if errors.Is(err, scheduling.ErrDuplicatePreference) {
				skipped = append(skipped, SkippedPreference{
					Employee: entry.Name,
					Day:      day.String(),
					Shift:    shift,
				})
				continue
			}
			if err != nil {
				return skipped, fmt.Errorf("employee %s: %w", entry.Name, err)
			}
		}
		// Reject preference keys that aren't real day labels; the loop
		// above would silently skip them otherwise.
		for label := range entry.Preferences {
			if _, err := scheduling.ParseDay(label); err != nil {
				return skipped, fmt.Errorf("employee %s: %w", entry.Name, err)
			}
		}
	}
	return skipped, nil
}
