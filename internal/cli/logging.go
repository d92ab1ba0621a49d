package cli

import (
	"io"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/rpn-samples/samplecli/internal/logger"
)

// newLogger builds the diagnostic logger from the --log-level and
// --log-format flags. Logs go to stderr to keep stdout clean for the report.
// Bad flag values are usage errors.
func newLogger(c *cli.Context, stderr io.Writer) (*slog.Logger, error) {
	log, err := logger.New(stderr, c.String(flagLogLevel), c.String(flagLogFormat))
	if err != nil {
		return nil, &UsageError{Err: err}
	}
	return log, nil
}
