package commands

import (
	"fmt"

	"github.com/maksimkurb/spp-ctl/src/internal/config"
	"github.com/maksimkurb/spp-ctl/src/internal/log"
)

// AppContext holds the global flags shared by all commands.
type AppContext struct {
	ConfigPath string
	Verbose    bool
}

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// loadAndValidateConfigOrFail loads configuration from file and validates it.
// An empty path yields the defaults.
func loadAndValidateConfigOrFail(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := cfg.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// configureLogging applies the [log] section. --verbose wins over the
// configured level.
func configureLogging(cfg *config.Config, verbose bool) error {
	if err := log.SetLevel(cfg.Log.Level); err != nil {
		return err
	}
	if verbose {
		log.SetVerbose(true)
	}

	log.SetFile(log.FileOptions{
		Path:       cfg.GetAbsLogFile(),
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	})
	return nil
}
