// Package config holds runtime configuration: defaults, flag/file/env
// loading, interactive prompting, and validation. Defaults match the legacy
// rename script so a bare invocation behaves the same way.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// --- Enum types for validated string fields ---

// FilterMode selects how the filter specification is interpreted.
type FilterMode string

const (
	FilterSubstring FilterMode = "substring" // "<substring> <index>" pairs, skip on match (default).
	FilterRegex     FilterMode = "regex"     // Whole-filename expression, rename only on match.
)

// ColorMode controls ANSI color output.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"   // Enable colors when stdout is a TTY (default).
	ColorAlways ColorMode = "always" // Force colors on.
	ColorNever  ColorMode = "never"  // Disable colors entirely.
)

// Default values shared by flags, the config file layer and the prompts.
const (
	DefaultDirectory     = "./files"
	DefaultSearchPattern = "*_*_*.pdf"
	DefaultTemplate      = "{2}_{0}_{1}.pdf"
	DefaultSeparator     = "_"
	DefaultFilterSpec    = "j 3"
	DefaultReportPath    = "result.json"

	// NoFilter disables filtering when given as the filter specification.
	NoFilter = "-"
)

// Config holds all runtime settings. It is populated by [DefaultConfig] and
// then overwritten by [Load] before being passed (by pointer) to packages
// that need it.
type Config struct {
	// Rename job.
	Directory     string     // Default: "./files".
	SearchPattern string     // Shell glob over direct children. Default: "*_*_*.pdf".
	Template      string     // Positional template, "{i}" zero-based. Default: "{2}_{0}_{1}.pdf".
	Separator     string     // Stem separator. Default: "_".
	FilterSpec    string     // Default: "j 3". "" or "-" disables filtering.
	FilterMode    FilterMode // Default: "substring".

	// Output.
	ReportPath string // JSON report, written only when something was renamed.

	// Behavior flags.
	DryRun      bool
	Interactive bool
	CheckOnly   bool

	// Display and logging.
	Verbose    bool
	ColorMode  ColorMode // Default: "auto".
	LogFile    string    // Optional log file path.
	ConfigFile string    // Explicit config file; empty searches . and $HOME.
}

// DefaultConfig returns a Config with all defaults. Used as the base before
// [Load] applies file, environment and flag overrides.
func DefaultConfig() Config {
	return Config{
		Directory:     DefaultDirectory,
		SearchPattern: DefaultSearchPattern,
		Template:      DefaultTemplate,
		Separator:     DefaultSeparator,
		FilterSpec:    DefaultFilterSpec,
		FilterMode:    FilterSubstring,
		ReportPath:    DefaultReportPath,
		ColorMode:     ColorAuto,
	}
}

// Error reports an invalid configuration value. Any Error aborts the batch
// before a single file is touched.
type Error struct {
	Field string
	Err   error
}

func (e *Error) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Errorf builds an *Error for field with a formatted cause.
func Errorf(field, format string, args ...interface{}) *Error {
	return &Error{Field: field, Err: fmt.Errorf(format, args...)}
}

// NormalizeDirArg strips trailing slashes from a directory path.
// The filesystem root "/" is returned unchanged so we don't produce an empty string.
func NormalizeDirArg(path string) string {
	if path == "/" {
		return "/"
	}
	return strings.TrimRight(path, "/")
}

// DefaultFilterFor returns the filter used when none is given. The
// substring default means nothing as a regular expression, so regex mode
// starts unfiltered.
func DefaultFilterFor(mode FilterMode) string {
	if mode == FilterRegex {
		return NoFilter
	}
	return DefaultFilterSpec
}

// FilterDisabled reports whether the filter specification turns filtering off.
func (c *Config) FilterDisabled() bool {
	s := strings.TrimSpace(c.FilterSpec)
	return s == "" || s == NoFilter
}

// Validate checks enum fields and the values every candidate depends on.
// Template, filter and glob syntax are compiled later by the pipeline, which
// reports problems with the same *Error type.
func (c *Config) Validate() error {
	switch c.FilterMode {
	case FilterSubstring, FilterRegex:
		// valid
	default:
		return Errorf("filter mode", "%q (use 'substring' or 'regex')", c.FilterMode)
	}

	switch c.ColorMode {
	case ColorAuto, ColorAlways, ColorNever:
		// valid
	default:
		return Errorf("color mode", "%q (use 'auto', 'always' or 'never')", c.ColorMode)
	}

	if strings.TrimSpace(c.Directory) == "" {
		return &Error{Field: "directory", Err: errors.New("must not be empty")}
	}
	if c.Separator == "" {
		return &Error{Field: "separator", Err: errors.New("must not be empty")}
	}
	if strings.TrimSpace(c.SearchPattern) == "" {
		return &Error{Field: "search pattern", Err: errors.New("must not be empty")}
	}
	if strings.TrimSpace(c.Template) == "" {
		return &Error{Field: "template", Err: errors.New("must not be empty")}
	}
	if c.CheckOnly || c.DryRun {
		return nil
	}
	if strings.TrimSpace(c.ReportPath) == "" {
		return &Error{Field: "report path", Err: errors.New("must not be empty")}
	}
	return nil
}
