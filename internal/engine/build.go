package engine

import (
	"strings"

	"github.com/erauner12/homelab-renovate/internal/catalog"
	"github.com/erauner12/homelab-renovate/internal/selection"
	"github.com/erauner12/homelab-renovate/internal/utils"
)

const (
	defaultLogLevelConstant         = "info"
	defaultLogLevelVariableConstant = "LOG_LEVEL"
)

// Build combines the policy tables with the selection of the run.
func Build(tables Tables, repositoryCatalog catalog.Catalog, result selection.Result, environmentLookup utils.EnvironmentLookup) Configuration {
	lookup := utils.ResolveEnvironmentLookup(environmentLookup)
	settings := tables.Settings

	return Configuration{
		Platform:        settings.Platform,
		Endpoint:        settings.Endpoint,
		Repositories:    catalog.Strings(result.Repositories),
		AllRepositories: catalog.Strings(repositoryCatalog.Repositories()),
		Autodiscover:    settings.Autodiscover,
		Onboarding:      settings.Onboarding,
		OnboardingConfig: OnboardingConfig{
			Schema:  settings.OnboardingConfig.Schema,
			Extends: settings.OnboardingConfig.Extends,
		},
		RequireConfig:             settings.RequireConfig,
		Timezone:                  settings.Timezone,
		Schedule:                  settings.Schedule,
		PRConcurrentLimit:         settings.PRConcurrentLimit,
		BranchConcurrentLimit:     settings.BranchConcurrentLimit,
		PRHourlyLimit:             settings.PRHourlyLimit,
		StabilityDays:             settings.StabilityDays,
		MinimumReleaseAge:         settings.MinimumReleaseAge,
		SemanticCommits:           settings.SemanticCommits,
		CommitMessagePrefix:       settings.CommitMessagePrefix,
		DependencyDashboard:       settings.DependencyDashboard.Enabled,
		DependencyDashboardTitle:  settings.DependencyDashboard.Title,
		DependencyDashboardHeader: settings.DependencyDashboard.Header,
		DependencyDashboardFooter: settings.DependencyDashboard.Footer,
		EnabledManagers:           settings.EnabledManagers,
		HostRules:                 buildHostRules(tables.HostRules, lookup),
		PackageRules:              buildPackageRules(tables.PackageRules),
		CustomManagers:            buildCustomManagers(tables.CustomManagers),
		PostUpgradeTasks: PostUpgradeTasks{
			Commands:      settings.PostUpgradeTasks.Commands,
			FileFilters:   settings.PostUpgradeTasks.FileFilters,
			ExecutionMode: settings.PostUpgradeTasks.ExecutionMode,
		},
		WebhookSecret: lookupVariable(lookup, settings.WebhookSecretVariable),
		LogLevel:      resolveLogLevel(settings, lookup),
	}
}

func buildHostRules(configurations []HostRuleConfiguration, lookup utils.EnvironmentLookup) []HostRule {
	hostRules := make([]HostRule, 0, len(configurations))
	for _, configuration := range configurations {
		hostRules = append(hostRules, HostRule{
			MatchHost: configuration.MatchHost,
			HostType:  configuration.HostType,
			Username:  lookupVariable(lookup, configuration.UsernameVariable),
			Password:  lookupVariable(lookup, configuration.PasswordVariable),
		})
	}
	return hostRules
}

func buildPackageRules(configurations []PackageRuleConfiguration) []PackageRule {
	packageRules := make([]PackageRule, 0, len(configurations))
	for _, configuration := range configurations {
		packageRule := PackageRule{
			Description:          configuration.Description,
			MatchPackagePatterns: configuration.MatchPackagePatterns,
			MatchUpdateTypes:     configuration.MatchUpdateTypes,
			MatchCurrentVersion:  configuration.MatchCurrentVersion,
			MatchManagers:        configuration.MatchManagers,
			MatchDatasources:     configuration.MatchDatasources,
			Automerge:            configuration.Automerge,
			AutomergeType:        configuration.AutomergeType,
		}
		switch {
		case configuration.Ungrouped:
			packageRule.GroupName = &GroupName{Null: true}
		case len(configuration.GroupName) > 0:
			packageRule.GroupName = &GroupName{Name: configuration.GroupName}
		}
		packageRules = append(packageRules, packageRule)
	}
	return packageRules
}

func buildCustomManagers(configurations []CustomManagerConfiguration) []CustomManager {
	customManagers := make([]CustomManager, 0, len(configurations))
	for _, configuration := range configurations {
		customManagers = append(customManagers, CustomManager{
			CustomType:         configuration.CustomType,
			Description:        configuration.Description,
			FileMatch:          configuration.FileMatch,
			MatchStrings:       configuration.MatchStrings,
			DatasourceTemplate: configuration.DatasourceTemplate,
			DepNameTemplate:    configuration.DepNameTemplate,
		})
	}
	return customManagers
}

func resolveLogLevel(settings Settings, lookup utils.EnvironmentLookup) string {
	variableName := strings.TrimSpace(settings.LogLevelVariable)
	if len(variableName) == 0 {
		variableName = defaultLogLevelVariableConstant
	}
	if logLevel := lookupVariable(lookup, variableName); len(logLevel) > 0 {
		return logLevel
	}
	if defaultLogLevel := strings.TrimSpace(settings.DefaultLogLevel); len(defaultLogLevel) > 0 {
		return defaultLogLevel
	}
	return defaultLogLevelConstant
}

func lookupVariable(lookup utils.EnvironmentLookup, variableName string) string {
	trimmedVariableName := strings.TrimSpace(variableName)
	if len(trimmedVariableName) == 0 {
		return ""
	}
	value, exists := lookup(trimmedVariableName)
	if !exists {
		return ""
	}
	return value
}
