package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harshithkalluri/shiftweek/pkg/core/scheduling"
	"github.com/harshithkalluri/shiftweek/pkg/roster"
)

// ValidateRosterCmd creates the validateRoster command
func ValidateRosterCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validateRoster",
		Short: "Check a roster file for malformed names and labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rosterFlag, _ := cmd.Flags().GetString("roster")

			path := app.rosterPath(rosterFlag)
			if path == "" {
				return fmt.Errorf("no roster file given (use --roster or set rosterPath in shiftweek.yaml)")
			}

			ros, err := roster.Load(path)
			if err != nil {
				return err
			}

			// Apply to a throwaway scheduler to exercise label validation
			skipped, err := ros.Apply(scheduling.NewScheduler(scheduling.SchedulerConfig{}))
			if err != nil {
				return fmt.Errorf("roster %s is invalid: %w", path, err)
			}

			fmt.Printf("\n✅ Roster %s is valid (%d employees).\n", path, len(ros.Employees))
			if len(skipped) > 0 {
				fmt.Printf("\n⚠️  %d duplicate preferences will be ignored (first wins):\n", len(skipped))
				for _, skip := range skipped {
					fmt.Printf("  • %s: %s %s\n", skip.Employee, skip.Day, skip.Shift)
				}
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("roster", "", "Path to the roster YAML file")

	return cmd
}
