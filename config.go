package autolaunch

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config mirrors the Builder fields for host applications that declare their
// autostart identity in a YAML file. Feed it to Builder.FromConfig.
type Config struct {
	AppName        string   `yaml:"app_name"`
	AppPath        string   `yaml:"app_path"`
	Args           []string `yaml:"args"`
	Hidden         bool     `yaml:"hidden"`
	UseLaunchAgent bool     `yaml:"use_launch_agent"`
}

// LoadConfig reads a YAML config file. Precedence, lowest to highest: file
// values, a `.env` file next to the config (loaded into the environment when
// present, without clobbering variables already set), then AUTOLAUNCH_*
// environment variables.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	// A sibling .env supplies environment defaults; a missing file is fine.
	_ = godotenv.Load(filepath.Join(filepath.Dir(path), ".env"))

	applyEnvOverrides(cfg)
	return cfg, nil
}

// applyEnvOverrides applies AUTOLAUNCH_* environment variables, which take
// precedence over everything loaded from files.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("AUTOLAUNCH_APP_NAME"); v != "" {
		cfg.AppName = v
	}
	if v := os.Getenv("AUTOLAUNCH_APP_PATH"); v != "" {
		cfg.AppPath = v
	}
	if v := os.Getenv("AUTOLAUNCH_HIDDEN"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Hidden = b
		}
	}
	if v := os.Getenv("AUTOLAUNCH_USE_LAUNCH_AGENT"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.UseLaunchAgent = b
		}
	}
}
