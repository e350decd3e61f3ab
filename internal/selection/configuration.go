package selection

import "strings"

const (
	defaultOverrideVariableConstant  = "RENOVATE_REPO"
	defaultSelectAllVariableConstant = "RENOVATE_ALL"
	defaultBranchVariableConstant    = "BRANCH_NAME"
	defaultBranchNameConstant        = "master"
	alternatePrimaryBranchConstant   = "main"
	defaultMinimumBatchSizeConstant  = 5
)

// EnvironmentConfiguration names the environment variables that feed the selection.
type EnvironmentConfiguration struct {
	OverrideVariable  string `mapstructure:"override_variable"`
	SelectAllVariable string `mapstructure:"select_all_variable"`
	BranchVariable    string `mapstructure:"branch_variable"`
}

// Configuration stores selection policy settings.
type Configuration struct {
	Environment      EnvironmentConfiguration `mapstructure:"environment"`
	DefaultBranch    string                   `mapstructure:"default_branch"`
	PrimaryBranches  []string                 `mapstructure:"primary_branches"`
	MinimumBatchSize int                      `mapstructure:"minimum_batch_size"`
}

// DefaultConfiguration supplies baseline selection settings.
func DefaultConfiguration() Configuration {
	return Configuration{
		Environment: EnvironmentConfiguration{
			OverrideVariable:  defaultOverrideVariableConstant,
			SelectAllVariable: defaultSelectAllVariableConstant,
			BranchVariable:    defaultBranchVariableConstant,
		},
		DefaultBranch:    defaultBranchNameConstant,
		PrimaryBranches:  []string{defaultBranchNameConstant, alternatePrimaryBranchConstant},
		MinimumBatchSize: defaultMinimumBatchSizeConstant,
	}
}

// Sanitize trims configured values and falls back to defaults for missing entries.
func (configuration Configuration) Sanitize() Configuration {
	defaults := DefaultConfiguration()
	sanitized := configuration

	sanitized.Environment.OverrideVariable = fallbackString(configuration.Environment.OverrideVariable, defaults.Environment.OverrideVariable)
	sanitized.Environment.SelectAllVariable = fallbackString(configuration.Environment.SelectAllVariable, defaults.Environment.SelectAllVariable)
	sanitized.Environment.BranchVariable = fallbackString(configuration.Environment.BranchVariable, defaults.Environment.BranchVariable)
	sanitized.DefaultBranch = fallbackString(configuration.DefaultBranch, defaults.DefaultBranch)

	primaryBranches := make([]string, 0, len(configuration.PrimaryBranches))
	for _, branchName := range configuration.PrimaryBranches {
		trimmedBranchName := strings.TrimSpace(branchName)
		if len(trimmedBranchName) == 0 {
			continue
		}
		primaryBranches = append(primaryBranches, trimmedBranchName)
	}
	if len(primaryBranches) == 0 {
		primaryBranches = defaults.PrimaryBranches
	}
	sanitized.PrimaryBranches = primaryBranches

	if configuration.MinimumBatchSize <= 0 {
		sanitized.MinimumBatchSize = defaults.MinimumBatchSize
	}

	return sanitized
}

// IsPrimaryBranch reports whether the branch is one of the configured primary branches.
func (configuration Configuration) IsPrimaryBranch(branchName string) bool {
	for _, primaryBranch := range configuration.PrimaryBranches {
		if primaryBranch == branchName {
			return true
		}
	}
	return false
}

func fallbackString(value string, fallback string) string {
	trimmedValue := strings.TrimSpace(value)
	if len(trimmedValue) == 0 {
		return fallback
	}
	return trimmedValue
}
