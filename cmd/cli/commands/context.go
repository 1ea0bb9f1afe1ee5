package commands

import (
	"go.uber.org/zap"

	"github.com/harshithkalluri/shiftweek/internal/config"
)

// AppContext holds the application dependencies shared across all commands
type AppContext struct {
	Cfg    *config.Config
	Logger *zap.Logger
}

// rosterPath resolves the roster file to use: the --roster flag if given,
// otherwise the configured default
func (app *AppContext) rosterPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	return app.Cfg.RosterPath
}
