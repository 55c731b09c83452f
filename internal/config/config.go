/*
Package config handles loading and saving promptcraft configuration.

Configuration is stored in ~/.promptcraft.json. Missing fields keep their
defaults, so a partial config file is valid.

Schema:

	{
	  "workerUrl": "https://prompt-worker.example.com",
	  "defaultModel": "gemini-3-flash-preview",
	  "timeoutSeconds": 25,
	  "scoreTimeoutSeconds": 8,
	  "strictPromptMode": true,
	  "minPromptLength": 150,
	  "fallbackToLocal": true,
	  "fallbackModels": ["gpt-4o-mini"]
	}
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the root configuration structure.
type Config struct {
	// WorkerURL is the base URL of the remote generation worker.
	WorkerURL string `json:"workerUrl"`

	// DefaultModel is used when no model is specified per request.
	DefaultModel string `json:"defaultModel,omitempty"`

	// TimeoutSeconds bounds each generation request.
	TimeoutSeconds int `json:"timeoutSeconds,omitempty"`

	// ScoreTimeoutSeconds bounds each scoring request.
	ScoreTimeoutSeconds int `json:"scoreTimeoutSeconds,omitempty"`

	// StrictPromptMode restricts models and enforces executable-prompt
	// validation on generated output.
	StrictPromptMode bool `json:"strictPromptMode"`

	// MinPromptLength is the minimum length of a valid generated prompt.
	MinPromptLength int `json:"minPromptLength,omitempty"`

	// FallbackToLocal enables the local template when all remote attempts fail.
	FallbackToLocal bool `json:"fallbackToLocal"`

	// FallbackModels are tried in order after the default model fails.
	FallbackModels []string `json:"fallbackModels,omitempty"`
}

// NewConfig creates a configuration with production defaults.
func NewConfig() *Config {
	return &Config{
		DefaultModel:        "gemini-3-flash-preview",
		TimeoutSeconds:      25,
		ScoreTimeoutSeconds: 8,
		StrictPromptMode:    true,
		MinPromptLength:     150,
		FallbackToLocal:     true,
		FallbackModels:      []string{"gpt-4o-mini"},
	}
}

// GetDefaultConfigPath returns the path to ~/.promptcraft.json
func GetDefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".promptcraft.json"), nil
}

// Load reads the configuration from the default path. A missing file is not
// an error; the defaults are returned so first runs work unconfigured.
func Load() (*Config, error) {
	configPath, err := GetDefaultConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := LoadFrom(configPath)
	if err != nil {
		if _, notFound := err.(*ConfigNotFoundError); notFound {
			return NewConfig(), nil
		}
		return nil, err
	}
	return cfg, nil
}
