package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harshithkalluri/shiftweek/cmd/cli/commands"
	"github.com/harshithkalluri/shiftweek/internal/config"
	"github.com/harshithkalluri/shiftweek/pkg/utils/logging"
)

var (
	configPath string
	verbose    bool
	app        *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shiftweek",
		Short: "Shiftweek - Weekly employee shift scheduling",
		Long: `A CLI tool for generating weekly employee schedules: three shifts a day,
seven days a week, honoring per-employee shift preferences within staffing
constraints.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil && app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: shiftweek.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show debug output on the console")

	app = &commands.AppContext{}
	rootCmd.AddCommand(commands.GenerateCmd(app))
	rootCmd.AddCommand(commands.ValidateRosterCmd(app))
	rootCmd.AddCommand(commands.ListEmployeesCmd(app))
	rootCmd.AddCommand(commands.SampleRosterCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp sets up the logger and configuration
func initApp() error {
	var err error

	app.Logger, err = logging.InitLogger(verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if configPath != "" {
		app.Cfg, err = config.LoadFromPath(configPath)
	} else {
		app.Cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	app.Logger.Debug("Configuration loaded",
		zap.Int("min_per_shift", app.Cfg.MinEmployeesPerShift),
		zap.Int("max_days_per_week", app.Cfg.MaxDaysPerWeek))

	return nil
}
