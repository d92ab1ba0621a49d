// Package version holds the program metadata shown in help and version output
package version

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// String constants for operations (used in ErrVersionParseFailed)
const (
	OpValidate = "validate"
	OpSemver   = "semver"
)

var (
	ErrNameRequired   = errors.New("program name is required")
	ErrInvalidVersion = errors.New("invalid version format")
)

// Current is the metadata of the RPN sample program.
var Current = Info{
	Name:    "My RPN program",
	Version: "1.0.0",
	Author:  "Your Name",
	About:   "Super awesome sample RPN calculator",
}

// Info is a constant configuration record consumed by help and version output.
// It has no effect on argument parsing.
type Info struct {
	Name    string
	Version string
	Author  string
	About   string
}

// ErrVersionParseFailed represents a version parsing error
type ErrVersionParseFailed struct {
	Version string
	Op      string
	Cause   error
}

func (e ErrVersionParseFailed) Error() string {
	return fmt.Sprintf("failed to parse version %q in operation %s: %v", e.Version, e.Op, e.Cause)
}

func (e ErrVersionParseFailed) Unwrap() error {
	return e.Cause
}

func (e ErrVersionParseFailed) Is(target error) bool {
	if target == ErrInvalidVersion {
		return true
	}
	var parseErr ErrVersionParseFailed
	return errors.As(target, &parseErr)
}

// Semver parses Version strictly (MAJOR.MINOR.PATCH, no "v" prefix).
func (i Info) Semver() (*semver.Version, error) {
	v, err := semver.StrictNewVersion(i.Version)
	if err != nil {
		return nil, ErrVersionParseFailed{
			Version: i.Version,
			Op:      OpSemver,
			Cause:   err,
		}
	}
	return v, nil
}

// Validate checks that the record can be rendered by the CLI.
func (i Info) Validate() error {
	if strings.TrimSpace(i.Name) == "" {
		return ErrNameRequired
	}
	if _, err := i.Semver(); err != nil {
		var parseErr ErrVersionParseFailed
		if errors.As(err, &parseErr) {
			parseErr.Op = OpValidate
			return parseErr
		}
		return err
	}
	return nil
}
