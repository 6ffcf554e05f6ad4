package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the top-level brandcheck configuration.
type Config struct {
	DBPath string `mapstructure:"db_path"`
	Log    Log    `mapstructure:"log"`
	Output Output `mapstructure:"output"`
	Notify Notify `mapstructure:"notify"`
	AI     AI     `mapstructure:"ai"`
}

// Log defines logging preferences.
type Log struct {
	Level string `mapstructure:"level"`
}

// Output defines output preferences.
type Output struct {
	Color bool `mapstructure:"color"`
	Width int  `mapstructure:"width"`
}

// Notify configures who is told about new submissions and how.
type Notify struct {
	// Operator is the address of the person reviewing submissions. Empty
	// disables the operator notice.
	Operator   string `mapstructure:"operator"`
	Desktop    bool   `mapstructure:"desktop"`
	Outbox     string `mapstructure:"outbox"`
	Respondent bool   `mapstructure:"respondent"`
	ResultURL  string `mapstructure:"result_url"`
}

// AI configures the remote report generator.
type AI struct {
	Provider    string        `mapstructure:"provider"`
	Model       string        `mapstructure:"model"`
	BaseURL     string        `mapstructure:"base_url"`
	MaxTokens   int           `mapstructure:"max_tokens"`
	Temperature float64       `mapstructure:"temperature"`
	Timeout     time.Duration `mapstructure:"timeout"`
	Retry       Retry         `mapstructure:"retry"`
}

// Retry configures backoff for remote generation.
type Retry struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	InitialWait time.Duration `mapstructure:"initial_wait"`
	MaxWait     time.Duration `mapstructure:"max_wait"`
	Multiplier  float64       `mapstructure:"multiplier"`
}

// ModelName returns the configured model or the provider default.
func (a AI) ModelName() string {
	if a.Model != "" {
		return a.Model
	}
	return DefaultModels[a.Provider]
}

// APIKey reads the provider's API key from the environment. Keys are never
// read from the config file.
func (a AI) APIKey() (string, error) {
	env, ok := APIKeyEnv[a.Provider]
	if !ok {
		return "", nil
	}
	key := os.Getenv(env)
	if key == "" {
		return "", fmt.Errorf("%s is not set", env)
	}
	return key, nil
}

// expandPath replaces a leading ~ with the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Load reads configuration from the given path (or the default location)
// and returns a Config with all defaults applied.
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("db_path", filepath.Join(DefaultConfigDir, DefaultDBName))
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("output.color", DefaultOutput.Color)
	v.SetDefault("output.width", DefaultOutput.Width)
	v.SetDefault("notify.operator", DefaultNotify.Operator)
	v.SetDefault("notify.desktop", DefaultNotify.Desktop)
	v.SetDefault("notify.outbox", filepath.Join(DefaultConfigDir, DefaultOutboxName))
	v.SetDefault("notify.respondent", DefaultNotify.Respondent)
	v.SetDefault("notify.result_url", DefaultNotify.ResultURL)
	v.SetDefault("ai.provider", DefaultAI.Provider)
	v.SetDefault("ai.model", DefaultAI.Model)
	v.SetDefault("ai.base_url", "")
	v.SetDefault("ai.max_tokens", DefaultAI.MaxTokens)
	v.SetDefault("ai.temperature", DefaultAI.Temperature)
	v.SetDefault("ai.timeout", DefaultAI.Timeout)
	v.SetDefault("ai.retry.max_attempts", DefaultAI.Retry.MaxAttempts)
	v.SetDefault("ai.retry.initial_wait", DefaultAI.Retry.InitialWait)
	v.SetDefault("ai.retry.max_wait", DefaultAI.Retry.MaxWait)
	v.SetDefault("ai.retry.multiplier", DefaultAI.Retry.Multiplier)

	v.SetEnvPrefix("BRANDCHECK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile != "" {
		v.SetConfigFile(expandPath(cfgFile))
	} else {
		v.AddConfigPath(expandPath(DefaultConfigDir))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	// Missing file is not an error.
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			if !os.IsNotExist(err) {
				return nil, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	cfg.DBPath = expandPath(cfg.DBPath)
	cfg.Notify.Outbox = expandPath(cfg.Notify.Outbox)
	cfg.AI.Provider = strings.ToLower(cfg.AI.Provider)

	return &cfg, nil
}

// ConfigDir returns the expanded configuration directory.
func ConfigDir() string {
	return expandPath(DefaultConfigDir)
}
