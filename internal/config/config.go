// Package config holds the handful of cross-cutting knobs threaded from
// CLI flags into the analyzer and interpreter.
package config

import "github.com/bhasha-lang/bhasha/internal/errors"

// Config bundles the CLI flag values the run subcommand threads into the
// interpreter; check and ir do not build one.
type Config struct {
	// ErrorLanguage selects how diagnostics are rendered.
	ErrorLanguage errors.Language

	// MaxRecursionDepth overrides the interpreter's call-depth guard;
	// zero means "use the interpreter's built-in default".
	MaxRecursionDepth int

	// File is the path being compiled, used only for diagnostic headers.
	File string
}

// Default returns the configuration used when no flags override it:
// bilingual diagnostics and the interpreter's built-in recursion ceiling.
func Default() Config {
	return Config{ErrorLanguage: errors.Bilingual}
}
