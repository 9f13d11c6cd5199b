package main

import (
	"os"

	"github.com/rvickers/renderlab/internal/cli"
	"github.com/rvickers/renderlab/pkg/version"
)

func main() {
	os.Exit(run())
}

// run executes the root command and maps the result to an exit code. Split
// from main so tests can exercise it without os.Exit.
func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		return 1
	}
	return 0
}
