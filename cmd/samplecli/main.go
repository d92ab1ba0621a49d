// Package main provides the RPN sample CLI.
// It resolves the formula file and verbosity options and echoes them.
package main

import (
	"context"
	"os"

	"github.com/rpn-samples/samplecli/internal/cli"
)

func main() {
	os.Exit(cli.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}
