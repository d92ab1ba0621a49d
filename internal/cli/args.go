package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
)

const argTerminator = "--"

// normalizeArgs moves flag tokens ahead of positional tokens so flags given
// after FILE are still recognized. Tokens after "--" stay positional and keep
// their order. A value-taking flag written without "=" carries the next token
// along with it. Aliases are rewritten to the flag's primary name, since
// urfave/cli refuses two forms of the same flag in one invocation.
//
// Boolean flags are presence-only: "--verbose=false" is a usage error rather
// than a way to switch the flag back off.
func normalizeArgs(args []string, flags []cli.Flag) ([]string, error) {
	takesValue := valueFlagNames(flags)
	primary := primaryFlagNames(flags)

	var flagTokens, positional, rest []string
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == argTerminator {
			rest = args[i:]
			break
		}
		if !isFlagToken(arg) {
			positional = append(positional, arg)
			continue
		}
		name, value, hasValue := splitFlag(arg)
		p, known := primary[name]
		if !known {
			// Left for urfave/cli to diagnose.
			flagTokens = append(flagTokens, arg)
			continue
		}
		if !takesValue[name] {
			if hasValue {
				return nil, fmt.Errorf("flag --%s takes no value", p)
			}
			flagTokens = append(flagTokens, "--"+p)
			continue
		}
		if hasValue {
			flagTokens = append(flagTokens, "--"+p+"="+value)
			continue
		}
		if i+1 >= len(args) || args[i+1] == argTerminator {
			return nil, fmt.Errorf("flag needs an argument: --%s", p)
		}
		i++
		flagTokens = append(flagTokens, "--"+p, args[i])
	}

	out := make([]string, 0, len(args)+1)
	out = append(out, flagTokens...)
	if len(positional) > 0 || len(rest) > 0 {
		// Everything after "--" reaches the action untouched.
		out = append(out, argTerminator)
		out = append(out, positional...)
		if len(rest) > 0 {
			out = append(out, rest[1:]...)
		}
	}
	return out, nil
}

// informationalRequest reports which informational flag, if any, is present
// before "--", along with the flag to hand to urfave/cli. Help wins over
// version, as it does in urfave/cli.
func informationalRequest(args []string) (string, error) {
	var sawVersion bool
	for _, arg := range args {
		if arg == argTerminator {
			break
		}
		if !isFlagToken(arg) {
			continue
		}
		name, value, hasValue := splitFlag(arg)
		if hasValue {
			if on, err := strconv.ParseBool(value); err != nil || !on {
				continue
			}
		}
		switch name {
		case "h", "help":
			return "--help", ErrHelpRequested
		case "V", "version":
			sawVersion = true
		}
	}
	if sawVersion {
		return "--version", ErrVersionRequested
	}
	return "", nil
}

func isFlagToken(arg string) bool {
	return len(arg) > 1 && arg[0] == '-' && arg != argTerminator
}

// splitFlag strips one or two leading dashes and splits off an "=value".
func splitFlag(arg string) (name, value string, hasValue bool) {
	name = strings.TrimPrefix(arg, "-")
	name = strings.TrimPrefix(name, "-")
	name, value, hasValue = strings.Cut(name, "=")
	return name, value, hasValue
}

func valueFlagNames(flags []cli.Flag) map[string]bool {
	names := make(map[string]bool)
	for _, f := range flags {
		tv, ok := f.(interface{ TakesValue() bool })
		if !ok || !tv.TakesValue() {
			continue
		}
		for _, n := range f.Names() {
			names[n] = true
		}
	}
	return names
}

func primaryFlagNames(flags []cli.Flag) map[string]string {
	names := make(map[string]string)
	for _, f := range flags {
		all := f.Names()
		if len(all) == 0 {
			continue
		}
		for _, n := range all {
			names[n] = all[0]
		}
	}
	return names
}
