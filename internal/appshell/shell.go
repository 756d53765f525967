// Package appshell adapts a Run-style entry point to a process main.
package appshell

import (
	"io"
	"os"
)

// Main runs run with the process arguments and exits with its code.
func Main(run func([]string, io.Writer, io.Writer) int) {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
