// Package config loads usagemark configuration and model display names.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds all usagemark configuration.
type Config struct {
	General GeneralConfig `toml:"general"`
	Markers MarkersConfig `toml:"markers"`
	Badge   BadgeConfig   `toml:"badge"`
	Output  OutputConfig  `toml:"output"`
	Models  ModelsConfig  `toml:"models"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	Period       string `toml:"period"`
	DataDir      string `toml:"data_dir,omitempty"`
	MaxDailyRows int    `toml:"max_daily_rows"`
	Locale       string `toml:"locale"`
}

// MarkersConfig holds the document splice markers.
type MarkersConfig struct {
	Start string `toml:"start"`
	End   string `toml:"end"`
}

// BadgeConfig holds SVG badge settings.
type BadgeConfig struct {
	Label string `toml:"label"`
	Color string `toml:"color"`
	Value string `toml:"value"` // "tokens" or "cost"
}

// OutputConfig holds output file locations.
type OutputConfig struct {
	Document  string `toml:"document"`
	BadgeFile string `toml:"badge_file,omitempty"`
}

// ModelsConfig allows user-defined display names for specific models.
type ModelsConfig struct {
	ShortNames map[string]string `toml:"short_names,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			Period:       "all",
			MaxDailyRows: 10,
			Locale:       "en",
		},
		Markers: MarkersConfig{
			Start: "<!-- usagemark:start -->",
			End:   "<!-- usagemark:end -->",
		},
		Badge: BadgeConfig{
			Label: "token usage",
			Color: "#6E56CF",
			Value: "tokens",
		},
		Output: OutputConfig{
			Document: "README.md",
		},
	}
}

// ConfigDir returns the XDG-compliant config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "usagemark")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "usagemark")
}

// ConfigPath returns the full path to the config file.
func ConfigPath() string {
	return filepath.Join(ConfigDir(), "config.toml")
}

// Load reads the config file, returning defaults if it doesn't exist.
// A local .env is read first so env overrides work in project checkouts,
// then USAGEMARK_* variables override individual fields.
func Load() (Config, error) {
	cfg := DefaultConfig()

	_ = godotenv.Load() // missing .env is fine

	data, err := os.ReadFile(ConfigPath())
	if err != nil {
		if os.IsNotExist(err) {
			applyEnv(&cfg)
			applyModelOverrides(cfg.Models.ShortNames)
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	applyEnv(&cfg)
	applyModelOverrides(cfg.Models.ShortNames)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("USAGEMARK_DATA_DIR"); v != "" {
		cfg.General.DataDir = v
	}
	if v := os.Getenv("USAGEMARK_PERIOD"); v != "" {
		cfg.General.Period = v
	}
	if v := os.Getenv("USAGEMARK_LOCALE"); v != "" {
		cfg.General.Locale = v
	}
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := ConfigDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(ConfigPath(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(ConfigPath())
	return err == nil
}
