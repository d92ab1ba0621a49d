package cli

import (
	"errors"
	"fmt"
)

// Informational requests. They short-circuit resolution but are not failures.
var (
	ErrHelpRequested    = errors.New("help requested")
	ErrVersionRequested = errors.New("version requested")
)

// UsageError reports an argument vector that does not match the grammar.
// It satisfies urfave/cli's ExitCoder.
type UsageError struct {
	Err error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("usage error: %v", e.Err)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// ExitCode is the process status for usage errors.
func (e *UsageError) ExitCode() int {
	return ExitUsage
}
