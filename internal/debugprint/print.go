// Package debugprint gates a handful of verbose dumps behind an
// environment variable, so the CLI can be run with extra output during
// development without threading a --debug flag through every call site.
package debugprint

import (
	"fmt"
	"os"

	"github.com/alecthomas/repr"
)

var _, enabled = os.LookupEnv("SQLSANITIZE_DEBUG")

// Enabled reports whether SQLSANITIZE_DEBUG is set in the environment.
func Enabled() bool {
	return enabled
}

// Dump pretty-prints v to stderr via repr, prefixed with label, but only
// when SQLSANITIZE_DEBUG is set.
func Dump(label string, v any) {
	if !enabled {
		return
	}
	fmt.Fprintf(os.Stderr, "\033[0;31mDEBUG:\033[0m %s: %s\n", label, repr.String(v))
}
