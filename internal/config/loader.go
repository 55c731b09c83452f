package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"strings"
)

// LoadFrom reads config from a specific path with enhanced error handling.
// Fields absent from the file keep their defaults.
func LoadFrom(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, &ConfigNotFoundError{
				Path: path,
				Hint: "Run 'promptcraft config init' to create configuration",
			}
		}
		return nil, fmt.Errorf("failed to access config: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsPermission(err) {
			return nil, &PermissionError{
				Path:    path,
				Op:      "read",
				Fix:     getReadPermissionFix(path),
				Details: getPermissionDetails(path),
			}
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	// Unmarshal over the defaults so missing fields stay configured.
	cfg := NewConfig()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, &InvalidConfigError{
			Path:    path,
			Message: fmt.Sprintf("JSON parse error: %v", err),
			Hint:    "Restore from .bak file if available",
		}
	}

	if err := validate(cfg); err != nil {
		return nil, &InvalidConfigError{
			Path:    path,
			Message: err.Error(),
			Hint:    "Fix the field and try again",
		}
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.WorkerURL != "" && !strings.HasPrefix(cfg.WorkerURL, "http://") && !strings.HasPrefix(cfg.WorkerURL, "https://") {
		return fmt.Errorf("workerUrl must start with http:// or https://, got %q", cfg.WorkerURL)
	}
	if cfg.TimeoutSeconds < 0 {
		return fmt.Errorf("timeoutSeconds must not be negative")
	}
	if cfg.ScoreTimeoutSeconds < 0 {
		return fmt.Errorf("scoreTimeoutSeconds must not be negative")
	}
	if cfg.MinPromptLength < 0 {
		return fmt.Errorf("minPromptLength must not be negative")
	}
	return nil
}

// getReadPermissionFix returns platform-specific fix command
func getReadPermissionFix(path string) string {
	switch runtime.GOOS {
	case "windows":
		return fmt.Sprintf("Right-click %s → Properties → Security → Edit permissions", path)
	default: // unix-like
		return fmt.Sprintf("Run: chmod 644 %s", path)
	}
}

// getPermissionDetails checks file ownership and permissions
func getPermissionDetails(path string) string {
	if runtime.GOOS == "windows" {
		return "" // Not applicable on Windows
	}

	info, err := os.Stat(path)
	if err != nil {
		return ""
	}

	return fmt.Sprintf("Current permissions: %04o", info.Mode().Perm())
}
