// SPDX-License-Identifier: MIT

// Command gengraph reads an edge list (./map.txt by default) and prints C++
// statements that fill an adjacency-list array, ready to be redirected into
// a source file:
//
//	gengraph > graph.inc
package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
)

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr, nil))
}

// execute runs the root command and returns the process exit code.
// Every failure, including flag and argument errors cobra raises before
// the command runs, is printed to stderr.
func execute(args []string, stdout, stderr io.Writer, logger *zap.Logger) int {
	cmd := newRootCmd(stdout, logger)
	cmd.SetArgs(args)
	cmd.SetErr(stderr)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	return 0
}
