package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harshithkalluri/shiftweek/pkg/roster"
)

// SampleRosterCmd creates the sampleRoster command
func SampleRosterCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sampleRoster [path]",
		Short: "Write the built-in sample roster to a YAML file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			force, _ := cmd.Flags().GetBool("force")

			path := "roster.yaml"
			if len(args) > 0 {
				path = args[0]
			}

			if err := roster.WriteSample(path, force); err != nil {
				return err
			}

			sample := roster.Sample()
			fmt.Printf("\n✅ Sample roster written to %s (%d employees).\n\n", path, len(sample.Employees))

			return nil
		},
	}

	cmd.Flags().Bool("force", false, "Overwrite the file if it exists")

	return cmd
}
