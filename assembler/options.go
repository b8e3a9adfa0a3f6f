package assembler

import (
	"io/fs"

	"github.com/ezrec/rvasm/diag"
)

// Options control an assembly run. The zero value assembles with pseudo
// instructions enabled and no error limit.
type Options struct {
	ErrorLimit        int               `toml:"error_limit"`         // Stop a pass after this many errors, 0 for no limit.
	WarningsAreErrors bool              `toml:"warnings_are_errors"` // Report warnings as errors.
	BasicOnly         bool              `toml:"basic_only"`          // Reject pseudo instructions.
	StartAtMain       bool              `toml:"start_at_main"`       // Enter at the global 'main' symbol.
	Verbose           bool              `toml:"verbose"`             // Log the assembler actions.
	Equates           map[string]string `toml:"equates"`             // Predefined .eqv substitutions.

	Include fs.FS `toml:"-"` // File system for .include, if any.
}

// DefaultOptions returns the options used by the command line.
func DefaultOptions() Options {
	return Options{
		ErrorLimit: diag.DEFAULT_LIMIT,
	}
}
