package config

import "fmt"

// PermissionError reports a config file the process is not allowed to
// touch. Op is "read" or "write"; Fix is a shell command that repairs the
// file mode.
type PermissionError struct {
	Path    string
	Op      string
	Fix     string
	Details string
}

func (e *PermissionError) Error() string {
	msg := fmt.Sprintf("cannot %s config at %s: permission denied", e.Op, e.Path)
	if e.Details != "" {
		msg += "\n" + e.Details
	}
	if e.Fix != "" {
		msg += "\nFix: " + e.Fix
	}
	return msg
}

// ConfigNotFoundError reports a missing config file along with a hint for
// creating one.
type ConfigNotFoundError struct {
	Path string
	Hint string
}

func (e *ConfigNotFoundError) Error() string {
	msg := fmt.Sprintf("no config file at %s", e.Path)
	if e.Hint != "" {
		msg += "\nHint: " + e.Hint
	}
	return msg
}

// InvalidConfigError reports a config file that exists but cannot be used,
// either because it fails to parse or because a field fails validation.
type InvalidConfigError struct {
	Path    string
	Message string
	Hint    string
}

func (e *InvalidConfigError) Error() string {
	msg := "invalid config at " + e.Path
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Hint != "" {
		msg += "\nHint: " + e.Hint
	}
	return msg
}
