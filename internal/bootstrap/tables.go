package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/aldenjg/cornharvest/internal/config"
	"github.com/aldenjg/cornharvest/internal/night"
	"github.com/aldenjg/cornharvest/internal/validation"
)

// LoadNightTables reads the odds file named by the config, or returns the
// built-in tables when no path is set. The file is checked against the JSON
// schema before the bucket coverage rules run.
func LoadNightTables(cfg *config.Config, schemas validation.SchemaValidator) (night.Tables, error) {
	if cfg.NightTablesPath == "" {
		slog.Info(LogMsgNightTablesDefault)
		return night.DefaultTables(), nil
	}

	if schemas != nil {
		if err := schemas.ValidateFile(cfg.NightTablesPath, validation.SchemaPathNightTables); err != nil {
			return night.Tables{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadTables, err)
		}
	}

	tables, err := night.LoadTables(cfg.NightTablesPath)
	if err != nil {
		return night.Tables{}, fmt.Errorf("%s: %w", ErrMsgFailedLoadTables, err)
	}

	slog.Info(LogMsgNightTablesLoaded, "path", cfg.NightTablesPath)
	return tables, nil
}
