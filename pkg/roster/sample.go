package roster

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sample returns the built-in demo roster: eight employees with a spread of
// morning, afternoon and evening preferences across the week
func Sample() *Roster {
	return &Roster{
		Employees: []Entry{
			{Name: "Alice", Preferences: map[string]string{
				"Monday": "Morning", "Tuesday": "Morning", "Wednesday": "Morning",
				"Thursday": "Morning", "Friday": "Morning",
			}},
			{Name: "Bob", Preferences: map[string]string{
				"Monday": "Afternoon", "Wednesday": "Afternoon",
				"Friday": "Afternoon", "Saturday": "Afternoon",
			}},
			{Name: "Charlie", Preferences: map[string]string{
				"Tuesday": "Evening", "Thursday": "Evening", "Saturday": "Evening",
			}},
			{Name: "Diana", Preferences: map[string]string{
				"Monday": "Morning", "Tuesday": "Afternoon",
				"Wednesday": "Evening", "Friday": "Morning",
			}},
			{Name: "Eva", Preferences: map[string]string{
				"Monday": "Evening", "Wednesday": "Morning",
				"Thursday": "Afternoon", "Sunday": "Evening",
			}},
			{Name: "Frank", Preferences: map[string]string{
				"Tuesday": "Morning", "Thursday": "Morning", "Saturday": "Morning",
			}},
			{Name: "Grace", Preferences: map[string]string{
				"Monday": "Afternoon", "Wednesday": "Afternoon",
				"Friday": "Evening", "Sunday": "Morning",
			}},
			{Name: "Henry", Preferences: map[string]string{
				"Tuesday": "Evening", "Thursday": "Evening", "Saturday": "Afternoon",
			}},
		},
	}
}

// WriteSample writes the built-in demo roster to a YAML file.
// Fails if the file already exists unless overwrite is set.
func WriteSample(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("file %s already exists (use --force to overwrite)", path)
		}
	}

	data, err := yaml.Marshal(Sample())
	if err != nil {
		return fmt.Errorf("failed to marshal sample roster: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write sample roster: %w", err)
	}
	return nil
}
