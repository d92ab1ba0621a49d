// Package cli resolves the command line of the RPN sample program.
// It declares the argument grammar with urfave/cli and reports what was parsed.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/rpn-samples/samplecli/internal/logger"
	"github.com/rpn-samples/samplecli/internal/version"
)

// HelpName is the program name used in usage lines.
const HelpName = "samplecli"

// Synopsis is printed with every usage diagnostic.
const Synopsis = HelpName + " [FILE] [-v | --verbose] [-h | --help] [-V | --version] [--log-level LEVEL] [--log-format FORMAT]"

// Exit statuses returned by Run.
const (
	ExitOK      = 0
	ExitFailure = 1
	ExitUsage   = 2
)

const (
	flagVerbose   = "verbose"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
)

// ResolvedOptions is the result of resolving one argument vector.
type ResolvedOptions struct {
	// FormulaFile is the first positional argument, verbatim.
	FormulaFile    string
	HasFormulaFile bool
	Verbose        bool
}

// NewApp declares the command-line grammar. action receives the resolved
// options once parsing succeeds; it is not called for help or version.
func NewApp(info version.Info, stdout, stderr io.Writer, action func(*cli.Context, ResolvedOptions) error) *cli.App {
	// urfave/cli v2 only reads the version flag from this package variable.
	// Its default alias is -v, which belongs to --verbose here.
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Aliases:            []string{"V"},
		Usage:              "print the version",
		DisableDefaultText: true,
	}

	app := &cli.App{
		Name:            info.Name,
		HelpName:        HelpName,
		Usage:           info.About,
		Version:         info.Version,
		ArgsUsage:       "[FILE]",
		Description:     "FILE  Formulas written in RPN",
		HideHelpCommand: true,
		Writer:          stdout,
		ErrWriter:       stderr,
		Authors: []*cli.Author{
			{Name: info.Author},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:               flagVerbose,
				Aliases:            []string{"v"},
				Usage:              "Sets the level of verbosity",
				DisableDefaultText: true,
			},
			&cli.StringFlag{
				Name:    flagLogLevel,
				Value:   "warn",
				Usage:   "log level for diagnostics on stderr (" + strings.Join(logger.Levels, ", ") + ")",
				EnvVars: []string{"SAMPLECLI_LOG_LEVEL"},
			},
			&cli.StringFlag{
				Name:    flagLogFormat,
				Value:   "json",
				Usage:   "log format for diagnostics on stderr (" + strings.Join(logger.Formats, ", ") + ")",
				EnvVars: []string{"SAMPLECLI_LOG_FORMAT"},
			},
		},
		OnUsageError: func(_ *cli.Context, err error, _ bool) error {
			return &UsageError{Err: err}
		},
		// Exit statuses are decided by Run, never by the library.
		ExitErrHandler: func(*cli.Context, error) {},
		Action: func(c *cli.Context) error {
			if c.NArg() > 1 {
				return &UsageError{Err: fmt.Errorf("unexpected argument %q", c.Args().Get(1))}
			}
			opts := ResolvedOptions{Verbose: c.Bool(flagVerbose)}
			if c.NArg() == 1 {
				opts.FormulaFile = c.Args().First()
				opts.HasFormulaFile = true
			}
			return action(c, opts)
		},
	}
	return app
}

// Resolve parses args (without the program name) against the grammar.
// Help and version text is written to stdout and reported as
// ErrHelpRequested or ErrVersionRequested. Usage errors are diagnosed on
// stderr and returned as *UsageError.
func Resolve(ctx context.Context, args []string, stdout, stderr io.Writer) (ResolvedOptions, error) {
	info := version.Current
	if err := info.Validate(); err != nil {
		return ResolvedOptions{}, fmt.Errorf("invalid program metadata: %w", err)
	}

	var (
		resolved ResolvedOptions
		called   bool
	)
	app := NewApp(info, stdout, stderr, func(c *cli.Context, opts ResolvedOptions) error {
		log, err := newLogger(c, stderr)
		if err != nil {
			return err
		}
		log.Debug("resolved options",
			"formula_file", opts.FormulaFile,
			"has_formula_file", opts.HasFormulaFile,
			"verbose", opts.Verbose)
		resolved = opts
		called = true
		return nil
	})

	normalized, err := normalizeArgs(args, app.Flags)
	if err != nil {
		usageErr := &UsageError{Err: err}
		writeUsageDiagnostic(stderr, usageErr)
		return ResolvedOptions{}, usageErr
	}
	argv := append([]string{HelpName}, normalized...)
	infoFlag, request := informationalRequest(normalized)
	if request != nil {
		// Positionals next to -h would be taken as a help topic.
		argv = []string{HelpName, infoFlag}
	}

	if err := app.RunContext(ctx, argv); err != nil {
		var usageErr *UsageError
		if errors.As(err, &usageErr) {
			writeUsageDiagnostic(stderr, usageErr)
		}
		return ResolvedOptions{}, err
	}
	if !called {
		if request == nil {
			return ResolvedOptions{}, errors.New("arguments were not resolved")
		}
		return ResolvedOptions{}, request
	}
	return resolved, nil
}

// Report writes the two status lines for opts.
func Report(w io.Writer, opts ResolvedOptions) error {
	if opts.HasFormulaFile {
		if _, err := fmt.Fprintf(w, "File specified: %s\n", opts.FormulaFile); err != nil {
			return err
		}
	} else if _, err := fmt.Fprintln(w, "No file specified."); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "Is verbosity specified?: %t\n", opts.Verbose)
	return err
}

// Run resolves args, reports the result, and returns the process exit status.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts, err := Resolve(ctx, args, stdout, stderr)
	switch {
	case err == nil:
	case errors.Is(err, ErrHelpRequested), errors.Is(err, ErrVersionRequested):
		return ExitOK
	default:
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode()
		}
		fmt.Fprintln(stderr, "error:", err)
		return ExitFailure
	}

	if err := Report(stdout, opts); err != nil {
		fmt.Fprintln(stderr, "error: failed to write report:", err)
		return ExitFailure
	}
	return ExitOK
}

func writeUsageDiagnostic(w io.Writer, err *UsageError) {
	fmt.Fprintf(w, "error: %v\n\nUsage: %s\n\nFor more information, try '--help'.\n", err.Err, Synopsis)
}
