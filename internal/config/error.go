// internal/config/error.go
package config

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned by Discover when no candidate file exists.
	ErrNotFound = errors.New("config not found")
	// ErrExists is returned by WriteDefault when it would overwrite a file.
	ErrExists = errors.New("config already exists")
)

// ConfigError aggregates everything wrong with one config file so it can be
// fixed in a single pass.
type ConfigError struct {
	Path    string   // Config file path
	Missing []string // Unresolved environment variables, with their :? hint
	Errors  []string // Validation errors
}

func (e *ConfigError) Error() string {
	if !e.HasErrors() {
		return ""
	}

	var b strings.Builder
	if e.Path != "" {
		fmt.Fprintf(&b, "%s: ", e.Path)
	}
	fmt.Fprintf(&b, "%d problem(s)", len(e.Missing)+len(e.Errors))

	if len(e.Missing) > 0 {
		fmt.Fprintf(&b, "\nmissing environment variables: %s", strings.Join(e.Missing, ", "))
	}
	if len(e.Errors) > 0 {
		b.WriteString("\nvalidation failed:")
		for _, msg := range e.Errors {
			fmt.Fprintf(&b, "\n  - %s", msg)
		}
	}
	return b.String()
}

// HasErrors reports whether anything was recorded.
func (e *ConfigError) HasErrors() bool {
	return len(e.Missing) > 0 || len(e.Errors) > 0
}

// MissingNames returns the unresolved variable names without their hints.
func (e *ConfigError) MissingNames() []string {
	names := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		name, _, _ := strings.Cut(m, " ")
		names[i] = name
	}
	return names
}
