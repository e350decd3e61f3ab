package main

import (
	"fmt"
	"os"

	"github.com/erauner12/homelab-renovate/cmd/cli"
)

const (
	exitErrorTemplateConstant = "%v\n"
)

// main executes the homelab-renovate command-line application.
func main() {
	if executionError := cli.Execute(os.Args[1:]); executionError != nil {
		fmt.Fprintf(os.Stderr, exitErrorTemplateConstant, executionError)
		os.Exit(1)
	}
}
