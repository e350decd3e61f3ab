package selection

import (
	"github.com/spf13/cobra"

	"github.com/erauner12/homelab-renovate/internal/utils/flags"
)

const (
	repositoryFlagNameConstant  = "repo"
	repositoryFlagUsageConstant = "Comma-separated repositories to process instead of the computed selection"
	allFlagNameConstant         = "all"
	allFlagUsageConstant        = "Process every catalog repository"
	branchFlagNameConstant      = "branch"
	branchFlagUsageConstant     = "Branch name used to pick the selection policy"
	selectAllDisabledValue      = "false"
)

// FlagValues stores selection flag values bound to a command.
type FlagValues struct {
	Repositories string
	All          bool
	Branch       string
}

// BindFlags attaches the selection override flags to the command.
func BindFlags(command *cobra.Command) *FlagValues {
	values := &FlagValues{}
	if command == nil {
		return values
	}

	command.Flags().StringVar(&values.Repositories, repositoryFlagNameConstant, "", repositoryFlagUsageConstant)
	flags.AddToggleFlag(command.Flags(), &values.All, allFlagNameConstant, false, allFlagUsageConstant)
	command.Flags().StringVar(&values.Branch, branchFlagNameConstant, "", branchFlagUsageConstant)

	return values
}

// ApplyFlags replaces environment inputs with explicitly provided flag values.
func (values *FlagValues) ApplyFlags(command *cobra.Command, selectionContext Context, defaultBranch string) Context {
	if values == nil || command == nil {
		return selectionContext
	}

	updated := selectionContext
	if command.Flags().Changed(repositoryFlagNameConstant) {
		updated.OverrideRaw = values.Repositories
	}
	if command.Flags().Changed(allFlagNameConstant) {
		updated.SelectAllRaw = selectAllDisabledValue
		if values.All {
			updated.SelectAllRaw = selectAllTruthyValueConstant
		}
	}
	if command.Flags().Changed(branchFlagNameConstant) {
		updated.BranchRaw = values.Branch
	}

	return updated.WithDefaultBranch(defaultBranch)
}
