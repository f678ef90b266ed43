// Package config loads PathScout settings from YAML and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/csheth/pathscout/internal/workflow"
)

// Config holds all PathScout configuration.
type Config struct {
	// Directory the export stub writes into.
	DownloadDir string `yaml:"download_dir"`

	Logging  LoggingConfig  `yaml:"logging"`
	Catalog  CatalogConfig  `yaml:"catalog"`
	Progress ProgressConfig `yaml:"progress"`
	Export   ExportConfig   `yaml:"export"`
	UI       UIConfig       `yaml:"ui"`
}

// LoggingConfig configures the zap file logger.
type LoggingConfig struct {
	File  string `yaml:"file"`
	Level string `yaml:"level"` // debug, info, warn, error
}

// CatalogConfig points at an alternative course catalog. Empty uses the
// catalog compiled into the binary.
type CatalogConfig struct {
	Path string `yaml:"path"`
}

// ProgressConfig times the simulated processing stage.
type ProgressConfig struct {
	Duration time.Duration `yaml:"duration"`
	Interval time.Duration `yaml:"interval"`
	Grace    time.Duration `yaml:"grace"`
}

type ExportConfig struct {
	Delay time.Duration `yaml:"delay"`
}

// UIConfig tunes the interactive front end.
type UIConfig struct {
	AltScreen      bool          `yaml:"alt_screen"`
	NotifyTTL      time.Duration `yaml:"notify_ttl"`
	RecommendLimit int           `yaml:"recommend_limit"`
}

// ValidLogLevels lists the accepted logging levels.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		DownloadDir: defaultDownloadDir(),
		Logging: LoggingConfig{
			File:  defaultLogFile(),
			Level: "info",
		},
		Progress: ProgressConfig{
			Duration: workflow.ProgressDuration,
			Interval: workflow.ProgressInterval,
			Grace:    workflow.ProgressGrace,
		},
		Export: ExportConfig{Delay: time.Second},
		UI: UIConfig{
			AltScreen:      true,
			NotifyTTL:      4 * time.Second,
			RecommendLimit: 5,
		},
	}
}

// DefaultPath is where Load looks when no --config flag is given.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "pathscout", "config.yaml")
}

// Load reads path over the defaults and then applies environment overrides.
// A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg, nil
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	c.DownloadDir = getEnv("PATHSCOUT_DOWNLOAD_DIR", c.DownloadDir)
	c.Logging.File = getEnv("PATHSCOUT_LOG_FILE", c.Logging.File)
	c.Logging.Level = getEnv("PATHSCOUT_LOG_LEVEL", c.Logging.Level)
	c.Catalog.Path = getEnv("PATHSCOUT_CATALOG", c.Catalog.Path)
	c.Progress.Duration = getEnvAsDuration("PATHSCOUT_PROGRESS_DURATION", c.Progress.Duration)
	c.Progress.Interval = getEnvAsDuration("PATHSCOUT_PROGRESS_INTERVAL", c.Progress.Interval)
	c.Progress.Grace = getEnvAsDuration("PATHSCOUT_PROGRESS_GRACE", c.Progress.Grace)
	c.Export.Delay = getEnvAsDuration("PATHSCOUT_EXPORT_DELAY", c.Export.Delay)
	c.UI.NotifyTTL = getEnvAsDuration("PATHSCOUT_NOTIFY_TTL", c.UI.NotifyTTL)
	c.UI.RecommendLimit = getEnvAsInt("PATHSCOUT_RECOMMEND_LIMIT", c.UI.RecommendLimit)
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if c.Progress.Duration <= 0 {
		return fmt.Errorf("progress.duration must be positive, got %s", c.Progress.Duration)
	}
	if c.Progress.Interval <= 0 {
		return fmt.Errorf("progress.interval must be positive, got %s", c.Progress.Interval)
	}
	if c.Progress.Interval > c.Progress.Duration {
		return fmt.Errorf("progress.interval (%s) exceeds progress.duration (%s)", c.Progress.Interval, c.Progress.Duration)
	}
	if c.Progress.Grace < 0 {
		return fmt.Errorf("progress.grace must not be negative, got %s", c.Progress.Grace)
	}
	if c.Export.Delay < 0 {
		return fmt.Errorf("export.delay must not be negative, got %s", c.Export.Delay)
	}
	if c.UI.NotifyTTL <= 0 {
		return fmt.Errorf("ui.notify_ttl must be positive, got %s", c.UI.NotifyTTL)
	}
	if c.UI.RecommendLimit <= 0 {
		return fmt.Errorf("ui.recommend_limit must be positive, got %d", c.UI.RecommendLimit)
	}
	if strings.TrimSpace(c.DownloadDir) == "" {
		return errors.New("download_dir is required")
	}
	level := strings.ToLower(c.Logging.Level)
	for _, valid := range ValidLogLevels {
		if level == valid {
			return nil
		}
	}
	return fmt.Errorf("invalid logging.level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
}

// Timing converts the progress settings for the workflow package.
func (c *Config) Timing() workflow.Timing {
	return workflow.Timing{
		Duration: c.Progress.Duration,
		Interval: c.Progress.Interval,
		Grace:    c.Progress.Grace,
	}
}

func defaultDownloadDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, "Downloads")
}

func defaultLogFile() string {
	dir, err := os.UserCacheDir()
	if err != nil || dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "pathscout", "pathscout.log")
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
