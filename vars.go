package nanolog

import (
	"io"
	"os"
)

// NewExecutionBanner separates consecutive runs that share a destination.
// It precedes the first record of every logger, in the same write.
const NewExecutionBanner = "\n---------- NEW EXECUTION -----------\n\n"

// TimeFormat is the layout of record timestamps.
var TimeFormat = "2006-01-02 15:04:05"

// Destination writers, swappable in tests.
var (
	stdout io.Writer = os.Stdout
	diag   io.Writer = os.Stderr
)
