package report

import (
	"fmt"

	"github.com/erauner12/homelab-renovate/internal/selection"
)

const (
	notSetPlaceholderConstant             = "(not set)"
	branchDefaultPlaceholderTemplateConst = "(not set, defaulting to %s)"
)

// EnvironmentEntry is one raw environment input displayed by the report.
type EnvironmentEntry struct {
	Name     string
	Value    string
	Fallback string
}

// DisplayValue returns the raw value or its placeholder when empty.
func (entry EnvironmentEntry) DisplayValue() string {
	if len(entry.Value) > 0 {
		return entry.Value
	}
	if len(entry.Fallback) > 0 {
		return entry.Fallback
	}
	return notSetPlaceholderConstant
}

// Environment lists the selection inputs in display order.
type Environment struct {
	Branch    EnvironmentEntry
	Override  EnvironmentEntry
	SelectAll EnvironmentEntry
}

// Entries returns the inputs in display order.
func (environment Environment) Entries() []EnvironmentEntry {
	return []EnvironmentEntry{environment.Branch, environment.Override, environment.SelectAll}
}

// EnvironmentFromContext pairs the configured variable names with the raw values of the run.
func EnvironmentFromContext(configuration selection.Configuration, selectionContext selection.Context) Environment {
	sanitizedConfiguration := configuration.Sanitize()
	return Environment{
		Branch: EnvironmentEntry{
			Name:     sanitizedConfiguration.Environment.BranchVariable,
			Value:    selectionContext.BranchRaw,
			Fallback: fmt.Sprintf(branchDefaultPlaceholderTemplateConst, sanitizedConfiguration.DefaultBranch),
		},
		Override: EnvironmentEntry{
			Name:  sanitizedConfiguration.Environment.OverrideVariable,
			Value: selectionContext.OverrideRaw,
		},
		SelectAll: EnvironmentEntry{
			Name:  sanitizedConfiguration.Environment.SelectAllVariable,
			Value: selectionContext.SelectAllRaw,
		},
	}
}
