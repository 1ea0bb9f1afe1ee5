package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harshithkalluri/shiftweek/pkg/core/services"
	"github.com/harshithkalluri/shiftweek/pkg/roster"
)

// GenerateCmd creates the generate command
func GenerateCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [week_start]",
		Short: "Generate the weekly schedule from a roster file",
		Long: `Generate a weekly schedule: employees are first assigned to their
preferred shifts, then understaffed shifts are topped up with randomly
selected eligible employees. week_start is the Monday the week begins on
(YYYY-MM-DD); omitted, it defaults to the configured week start or the
next Monday.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rosterFlag, _ := cmd.Flags().GetString("roster")
			seed, _ := cmd.Flags().GetString("seed")

			var weekStart string
			if len(args) > 0 {
				weekStart = args[0]
			}

			path := app.rosterPath(rosterFlag)
			if path == "" {
				return fmt.Errorf("no roster file given (use --roster or set rosterPath in shiftweek.yaml)")
			}

			app.Logger.Debug("generate command",
				zap.String("roster", path),
				zap.String("week_start", weekStart),
				zap.String("seed", seed))

			ros, err := roster.Load(path)
			if err != nil {
				return err
			}

			result, err := services.GenerateSchedule(ros, app.Cfg, app.Logger, weekStart, seed)
			if err != nil {
				return fmt.Errorf("schedule generation failed: %w", err)
			}

			fmt.Print("\n" + services.RenderSchedule(result))

			understaffed := result.Schedule.UnderstaffedCells()
			if len(understaffed) > 0 {
				fmt.Printf("\n⚠️  %d shifts are understaffed:\n", len(understaffed))
				for _, cell := range understaffed {
					fmt.Printf("  • %s %s: %d/%d employees\n",
						cell.Day, cell.Shift, len(cell.Employees), cell.Required)
				}
			} else {
				fmt.Println("\n✅ All shifts met the staffing minimum.")
			}
			fmt.Println()

			return nil
		},
	}

	cmd.Flags().String("roster", "", "Path to the roster YAML file")
	cmd.Flags().String("seed", "", "Seed for random top-up decisions (reproducible runs)")

	return cmd
}
