// Package config provides configuration loading and defaults for brandcheck.
package config

import "time"

// DefaultConfigDir is the default location for brandcheck configuration.
const DefaultConfigDir = "~/.config/brandcheck"

// DefaultDBName is the filename for the SQLite database.
const DefaultDBName = "brandcheck.db"

// DefaultOutboxName is the filename of the notification outbox.
const DefaultOutboxName = "outbox.jsonl"

// DefaultLogLevel is used when log.level is not configured.
const DefaultLogLevel = "info"

// DefaultOutput holds the default output preferences.
var DefaultOutput = Output{
	Color: true,
	Width: 80,
}

// DefaultNotify enables desktop and respondent notices; the operator notice
// is off until an operator address is configured.
var DefaultNotify = Notify{
	Desktop:    true,
	Respondent: true,
}

// DefaultAI holds the generation defaults for the AI report.
var DefaultAI = AI{
	Provider:    "anthropic",
	MaxTokens:   4000,
	Temperature: 0.7,
	Timeout:     60 * time.Second,
	Retry: Retry{
		MaxAttempts: 3,
		InitialWait: time.Second,
		MaxWait:     10 * time.Second,
		Multiplier:  2.0,
	},
}

// DefaultModels maps each provider to the model used when ai.model is unset.
var DefaultModels = map[string]string{
	"anthropic": "claude-sonnet-4-20250514",
	"openai":    "gpt-4o",
	"gemini":    "gemini-2.0-flash",
	"mock":      "mock",
}

// APIKeyEnv maps each remote provider to the environment variable holding
// its API key.
var APIKeyEnv = map[string]string{
	"anthropic": "ANTHROPIC_API_KEY",
	"openai":    "OPENAI_API_KEY",
	"gemini":    "GEMINI_API_KEY",
}
