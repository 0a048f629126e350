package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	AppChat   = "chat"
	AppPoetry = "poetry"
)

type Config struct {
	App            string `mapstructure:"-"`
	OllamaURL      string `mapstructure:"OLLAMA_URL"`
	ServerHost     string `mapstructure:"SERVER_HOST"`
	AppPort        int    `mapstructure:"APP_PORT"`
	RootPath       string `mapstructure:"ROOT_PATH"`
	MaxConcurrency int    `mapstructure:"MAX_CONCURRENCY"`
	MaxQueue       int    `mapstructure:"MAX_QUEUE"`
	LogLevel       string `mapstructure:"LOG_LEVEL"`

	// ConfigFile is the file the values were read from, empty when only
	// defaults and the environment were used.
	ConfigFile string `mapstructure:"-"`
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.AppPort)
}

var appDefaults = map[string]map[string]interface{}{
	AppChat: {
		"SERVER_HOST":     "127.0.0.1",
		"APP_PORT":        7861,
		"ROOT_PATH":       "",
		"MAX_CONCURRENCY": 5,
	},
	AppPoetry: {
		"SERVER_HOST":     "0.0.0.0",
		"APP_PORT":        7866,
		"ROOT_PATH":       "/gradio-poetry",
		"MAX_CONCURRENCY": 1,
	},
}

// Load reads the configuration for app ("chat" or "poetry"). Values come from
// the defaults, then an optional <app>.env file, then <APP>_-prefixed
// environment variables.
func Load(app string) (*Config, error) {
	defaults, ok := appDefaults[app]
	if !ok {
		return nil, fmt.Errorf("unknown app %q", app)
	}

	v := viper.New()
	v.SetDefault("OLLAMA_URL", "http://localhost:11434/api")
	v.SetDefault("MAX_QUEUE", 100)
	v.SetDefault("LOG_LEVEL", "INFO")
	for key, val := range defaults {
		v.SetDefault(key, val)
	}

	v.SetConfigName(app)
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix(strings.ToUpper(app))
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("could not decode config: %w", err)
	}
	cfg.App = app
	cfg.ConfigFile = v.ConfigFileUsed()
	cfg.RootPath = normalizeRootPath(cfg.RootPath)

	if cfg.MaxConcurrency < 1 {
		return nil, fmt.Errorf("MAX_CONCURRENCY must be at least 1, got %d", cfg.MaxConcurrency)
	}
	if cfg.MaxQueue < 0 {
		return nil, fmt.Errorf("MAX_QUEUE must not be negative, got %d", cfg.MaxQueue)
	}

	return &cfg, nil
}

// normalizeRootPath turns "gradio-poetry/" into "/gradio-poetry" and "/" into "".
func normalizeRootPath(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}
