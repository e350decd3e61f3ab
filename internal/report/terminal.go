package report

import (
	"io"

	"github.com/mattn/go-isatty"

	"github.com/erauner12/homelab-renovate/internal/utils"
)

const (
	noColorEnvironmentVariableConstant  = "NO_COLOR"
	terminalEnvironmentVariableConstant = "TERM"
	dumbTerminalValueConstant           = "dumb"
)

// TerminalDetector reports whether output written to writer reaches an interactive terminal.
type TerminalDetector func(writer io.Writer) bool

type fileDescriptorWriter interface {
	io.Writer
	Fd() uintptr
}

func isTerminalWriter(writer io.Writer) bool {
	descriptorWriter, hasDescriptor := writer.(fileDescriptorWriter)
	if !hasDescriptor {
		return false
	}
	fileDescriptor := descriptorWriter.Fd()
	return isatty.IsTerminal(fileDescriptor) || isatty.IsCygwinTerminal(fileDescriptor)
}

// colorPermitted honours the NO_COLOR convention and dumb terminals.
func colorPermitted(environmentLookup utils.EnvironmentLookup) bool {
	lookup := utils.ResolveEnvironmentLookup(environmentLookup)
	if noColorValue, noColorSet := lookup(noColorEnvironmentVariableConstant); noColorSet && len(noColorValue) > 0 {
		return false
	}
	terminalValue, _ := lookup(terminalEnvironmentVariableConstant)
	return terminalValue != dumbTerminalValueConstant
}
