// Package common holds helpers shared by the CLI actions.
package common

import (
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"sentencas/models"
)

// NewLogger builds the shared JSON logger. Quiet mode restricts output to
// errors so --format yaml/json stays pipeable.
func NewLogger(quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// LoadOptionalConfig loads the config file named by --config, or
// config.yaml from the working directory when present. Missing config is
// not an error; flags alone are enough to run.
func LoadOptionalConfig(c *cli.Context) (*models.Config, error) {
	if path := c.String("config"); path != "" {
		return models.LoadConfig(path)
	}
	if _, err := os.Stat("config.yaml"); err == nil {
		return models.LoadConfig("config.yaml")
	}
	return &models.Config{}, nil
}

// ResolveDBPath picks the database path: flag first, then config. An empty
// result means the default location next to the binary.
func ResolveDBPath(c *cli.Context, cfg *models.Config) string {
	if p := c.String("db"); p != "" {
		return p
	}
	return cfg.DBPath
}
