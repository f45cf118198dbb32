// Package config assembles the run configuration from defaults, AIRNOW_*
// environment variables and an optional YAML file.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/robert-malhotra/go-airnow-client/pkg/client"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "AIRNOW"

// Keys understood in the config file. The matching environment variable is
// AIRNOW_<KEY> upper-cased, e.g. AIRNOW_API_KEY.
const (
	KeyAPIKey  = "api_key"
	KeyBaseURL = "base_url"
	KeyTimeout = "timeout"
	KeyDebug   = "debug"
	KeyFormat  = "format"
)

// Config is built once per process and passed to every component.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Debug   bool
	Format  string
	// File is the config file that was read, empty if none.
	File string
}

// DefaultFile returns $XDG_CONFIG_HOME/airnow/config.yaml (or the platform
// equivalent). It returns "" when no config directory can be determined.
func DefaultFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "airnow", "config.yaml")
}

// Load reads configuration. An explicit path must exist; the default file is
// optional.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetDefault(KeyAPIKey, "")
	v.SetDefault(KeyBaseURL, client.DefaultBaseURL)
	v.SetDefault(KeyTimeout, client.DefaultTimeout)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyFormat, "json")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	file := path
	if file == "" {
		file = DefaultFile()
		if file != "" {
			if _, err := os.Stat(file); err != nil {
				file = ""
			}
		}
	}
	if file != "" {
		v.SetConfigFile(file)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", file)
		}
	}

	timeout := v.GetDuration(KeyTimeout)
	if timeout < 0 {
		return nil, errors.Errorf("config: timeout must not be negative, got %s", timeout)
	}

	return &Config{
		APIKey:  strings.TrimSpace(v.GetString(KeyAPIKey)),
		BaseURL: v.GetString(KeyBaseURL),
		Timeout: timeout,
		Debug:   v.GetBool(KeyDebug),
		Format:  v.GetString(KeyFormat),
		File:    file,
	}, nil
}
