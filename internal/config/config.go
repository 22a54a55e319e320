// Package config resolves runtime settings from defaults, an optional
// config file and AGENT_RECALL_* environment variables, in that order of
// increasing precedence. CLI flags override on top in the cli package.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. AGENT_RECALL_ROOT.
const EnvPrefix = "AGENT_RECALL"

// Config holds the resolved settings.
type Config struct {
	// Root is the storage root directory holding the record collections.
	Root string
	// UserID addresses the Memory record.
	UserID string
	// AgentID identifies the agent writing the record.
	AgentID string
	// DiaryRetentionDays caps the in-memory diary cache; zero = unlimited.
	DiaryRetentionDays int
	// Verbose enables debug logging.
	Verbose bool
}

// Load reads the optional config file at ~/.agent-recall/config.yaml and
// applies environment overrides.
func Load() (*Config, error) {
	v := viper.New()
	v.SetDefault("root", defaultRoot())
	v.SetDefault("user", "owner")
	v.SetDefault("agent", "agent_001")
	v.SetDefault("diary_retention_days", 0)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".agent-recall"))
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &Config{
		Root:               v.GetString("root"),
		UserID:             v.GetString("user"),
		AgentID:            v.GetString("agent"),
		DiaryRetentionDays: v.GetInt("diary_retention_days"),
		Verbose:            v.GetBool("verbose"),
	}, nil
}

func defaultRoot() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "1052"
	}
	return filepath.Join(home, ".agent-recall", "data")
}
