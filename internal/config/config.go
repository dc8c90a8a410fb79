// Package config loads runtime settings from built-in defaults, an
// optional config.yaml and SMARTFARM_* environment variables, in that
// order of increasing precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// EnvPrefix is prepended to every environment override, e.g.
// SMARTFARM_HISTORY_MAX_MESSAGES.
const EnvPrefix = "SMARTFARM"

// DirName is the per-user data directory under $HOME.
const DirName = ".smartfarm"

// Config is the fully resolved runtime configuration.
type Config struct {
	DataDir     string
	DBPath      string
	CatalogPath string // empty means the built-in catalog
	History     HistoryConfig
	Log         LogConfig
}

// HistoryConfig bounds the persisted chat transcript.
type HistoryConfig struct {
	MaxMessages   int
	TrimTo        int // applied when appending fails
	ReminderEvery int // 0 disables seasonal reminders
}

// LogConfig controls the zap logger built in main.
type LogConfig struct {
	Enabled bool
	Level   string
	Path    string // empty means stderr
}

func setDefaults(v *viper.Viper, dataDir string) {
	v.SetDefault("db_path", filepath.Join(dataDir, "smartfarm.db"))
	v.SetDefault("catalog_path", "")
	v.SetDefault("history.max_messages", 20)
	v.SetDefault("history.trim_to", 10)
	v.SetDefault("history.reminder_every", 10)
	v.SetDefault("log.enabled", false)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", "")
}

// DefaultDataDir returns ~/.smartfarm.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, DirName), nil
}

// Load resolves configuration for the current user. configFile, when
// non-empty, must exist; otherwise config.yaml in the data directory is
// read if present.
func Load(configFile string) (Config, error) {
	dataDir, err := DefaultDataDir()
	if err != nil {
		return Config{}, err
	}
	return LoadFrom(dataDir, configFile)
}

// LoadFrom is Load with an explicit data directory.
func LoadFrom(dataDir, configFile string) (Config, error) {
	v := viper.New()
	setDefaults(v, dataDir)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(dataDir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("reading config: %w", err)
		}
	}

	cfg := Config{
		DataDir:     dataDir,
		DBPath:      v.GetString("db_path"),
		CatalogPath: v.GetString("catalog_path"),
		History: HistoryConfig{
			MaxMessages:   v.GetInt("history.max_messages"),
			TrimTo:        v.GetInt("history.trim_to"),
			ReminderEvery: v.GetInt("history.reminder_every"),
		},
		Log: LogConfig{
			Enabled: v.GetBool("log.enabled"),
			Level:   v.GetString("log.level"),
			Path:    v.GetString("log.path"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	var errs []error
	if c.DBPath == "" {
		errs = append(errs, errors.New("db_path must not be empty"))
	}
	if c.History.MaxMessages <= 0 {
		errs = append(errs, fmt.Errorf("history.max_messages must be positive, got %d", c.History.MaxMessages))
	}
	if c.History.TrimTo <= 0 || c.History.TrimTo > c.History.MaxMessages {
		errs = append(errs, fmt.Errorf("history.trim_to must be in 1..%d, got %d", c.History.MaxMessages, c.History.TrimTo))
	}
	if c.History.ReminderEvery < 0 || c.History.ReminderEvery > c.History.MaxMessages {
		errs = append(errs, fmt.Errorf("history.reminder_every must be in 0..%d, got %d", c.History.MaxMessages, c.History.ReminderEvery))
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
