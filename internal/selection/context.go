package selection

import (
	"strings"

	"github.com/erauner12/homelab-renovate/internal/catalog"
	"github.com/erauner12/homelab-renovate/internal/utils"
)

const (
	overrideSeparatorConstant    = ","
	selectAllTruthyValueConstant = "true"
)

// Context captures the environment inputs of a single run.
type Context struct {
	OverrideRaw  string
	SelectAllRaw string
	// BranchRaw is the branch value as found in the environment, empty when unset.
	BranchRaw string
	// BranchName is BranchRaw with the default branch applied.
	BranchName string
}

// ContextFromEnvironment reads the selection inputs named by the configuration.
func ContextFromEnvironment(configuration Configuration, environmentLookup utils.EnvironmentLookup) Context {
	sanitizedConfiguration := configuration.Sanitize()
	lookup := utils.ResolveEnvironmentLookup(environmentLookup)

	selectionContext := Context{
		OverrideRaw:  lookupValue(lookup, sanitizedConfiguration.Environment.OverrideVariable),
		SelectAllRaw: lookupValue(lookup, sanitizedConfiguration.Environment.SelectAllVariable),
		BranchRaw:    lookupValue(lookup, sanitizedConfiguration.Environment.BranchVariable),
	}
	return selectionContext.WithDefaultBranch(sanitizedConfiguration.DefaultBranch)
}

// WithDefaultBranch resolves BranchName from BranchRaw, substituting the default branch when empty.
func (selectionContext Context) WithDefaultBranch(defaultBranch string) Context {
	resolved := selectionContext
	resolved.BranchName = selectionContext.BranchRaw
	if len(resolved.BranchName) == 0 {
		resolved.BranchName = defaultBranch
	}
	return resolved
}

// HasOverride reports whether an explicit repository list was supplied.
func (selectionContext Context) HasOverride() bool {
	return len(selectionContext.OverrideRaw) > 0
}

// OverrideRepositories splits the override list on commas and trims each entry.
// Order and duplicates are preserved and entries are not checked against the catalog.
func (selectionContext Context) OverrideRepositories() []catalog.RepositoryIdentifier {
	if !selectionContext.HasOverride() {
		return nil
	}

	rawEntries := strings.Split(selectionContext.OverrideRaw, overrideSeparatorConstant)
	repositories := make([]catalog.RepositoryIdentifier, 0, len(rawEntries))
	for _, rawEntry := range rawEntries {
		repositories = append(repositories, catalog.RepositoryIdentifier(strings.TrimSpace(rawEntry)))
	}
	return repositories
}

// SelectAllRequested reports whether the select-all switch holds the literal "true".
func (selectionContext Context) SelectAllRequested() bool {
	return selectionContext.SelectAllRaw == selectAllTruthyValueConstant
}

func lookupValue(lookup utils.EnvironmentLookup, variableName string) string {
	value, exists := lookup(variableName)
	if !exists {
		return ""
	}
	return value
}
