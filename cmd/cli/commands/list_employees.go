package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harshithkalluri/shiftweek/pkg/roster"
)

// ListEmployeesCmd creates the listEmployees command
func ListEmployeesCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "listEmployees",
		Short: "List all employees in the roster with their preference counts",
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

			fmt.Printf("\nFound %d employees:\n\n", len(ros.Employees))
			for _, entry := range ros.Employees {
				fmt.Printf("- %-20s %d preferences\n", entry.Name, len(entry.Preferences))
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("roster", "", "Path to the roster YAML file")

	return cmd
}
