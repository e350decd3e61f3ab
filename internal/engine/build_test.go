package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erauner12/homelab-renovate/internal/catalog"
	"github.com/erauner12/homelab-renovate/internal/engine"
	"github.com/erauner12/homelab-renovate/internal/selection"
	"github.com/erauner12/homelab-renovate/internal/utils"
)

func TestBuildCarriesSelectionAndCatalog(testInstance *testing.T) {
	result := selection.Result{
		Repositories: []catalog.RepositoryIdentifier{"erauner12/omni", "erauner12/dotfiles"},
		Policy:       selection.PolicyOverride,
	}

	configuration := engine.Build(testTables(), testCatalog(), result, utils.MapEnvironmentLookup(nil))

	require.Equal(testInstance, []string{"erauner12/omni", "erauner12/dotfiles"}, configuration.Repositories)
	require.Equal(testInstance, catalog.Strings(testRepositories), configuration.AllRepositories)
	require.Equal(testInstance, "github", configuration.Platform)
	require.Equal(testInstance, "https://api.github.com/", configuration.Endpoint)
	require.True(testInstance, configuration.Onboarding)
	require.False(testInstance, configuration.Autodiscover)
	require.Equal(testInstance, "🤖 Renovate Dashboard", configuration.DependencyDashboardTitle)
	require.Equal(testInstance, []string{"**/*"}, configuration.PostUpgradeTasks.FileFilters)
	require.Len(testInstance, configuration.PackageRules, 3)
	require.Len(testInstance, configuration.CustomManagers, 1)
}

func TestBuildHostRuleCredentials(testInstance *testing.T) {
	testCases := []struct {
		name             string
		environment      map[string]string
		expectedUsername string
		expectedPassword string
	}{
		{
			name: "credentials_passed_through",
			environment: map[string]string{
				testUsernameVariableConstant: "renovate",
				testPasswordVariableConstant: "s3cr3t value",
			},
			expectedUsername: "renovate",
			expectedPassword: "s3cr3t value",
		},
		{
			name:        "credentials_unset",
			environment: map[string]string{},
		},
		{
			name:             "password_unset",
			environment:      map[string]string{testUsernameVariableConstant: "renovate"},
			expectedUsername: "renovate",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			configuration := engine.Build(testTables(), testCatalog(), selection.Result{}, utils.MapEnvironmentLookup(testCase.environment))

			require.Len(subTest, configuration.HostRules, 2)
			require.Equal(subTest, testDockerHostConstant, configuration.HostRules[0].MatchHost)
			require.Equal(subTest, testCase.expectedUsername, configuration.HostRules[0].Username)
			require.Equal(subTest, testCase.expectedPassword, configuration.HostRules[0].Password)

			require.Equal(subTest, testGoProxyHostConstant, configuration.HostRules[1].MatchHost)
			require.Empty(subTest, configuration.HostRules[1].Username)
			require.Empty(subTest, configuration.HostRules[1].Password)
		})
	}
}

func TestBuildLogLevelAndWebhookSecret(testInstance *testing.T) {
	testCases := []struct {
		name             string
		defaultLogLevel  string
		environment      map[string]string
		expectedLogLevel string
		expectedSecret   string
	}{
		{
			name:             "defaults_to_info",
			environment:      map[string]string{},
			expectedLogLevel: "info",
		},
		{
			name:             "configured_default",
			defaultLogLevel:  "warn",
			environment:      map[string]string{},
			expectedLogLevel: "warn",
		},
		{
			name:            "environment_overrides_default",
			defaultLogLevel: "warn",
			environment: map[string]string{
				testLogLevelVariableConstant: "debug",
				testWebhookVariableConstant:  "hook-secret",
			},
			expectedLogLevel: "debug",
			expectedSecret:   "hook-secret",
		},
		{
			name:             "empty_environment_value_ignored",
			environment:      map[string]string{testLogLevelVariableConstant: ""},
			expectedLogLevel: "info",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			tables := testTables()
			tables.Settings.DefaultLogLevel = testCase.defaultLogLevel

			configuration := engine.Build(tables, testCatalog(), selection.Result{}, utils.MapEnvironmentLookup(testCase.environment))

			require.Equal(subTest, testCase.expectedLogLevel, configuration.LogLevel)
			require.Equal(subTest, testCase.expectedSecret, configuration.WebhookSecret)
		})
	}
}

func TestBuildPackageRuleGroupNames(testInstance *testing.T) {
	configuration := engine.Build(testTables(), testCatalog(), selection.Result{}, utils.MapEnvironmentLookup(nil))

	require.Equal(testInstance, &engine.GroupName{Name: "homelab-components"}, configuration.PackageRules[0].GroupName)
	require.Nil(testInstance, configuration.PackageRules[1].GroupName)
	require.Equal(testInstance, &engine.GroupName{Null: true}, configuration.PackageRules[2].GroupName)

	require.NotNil(testInstance, configuration.PackageRules[0].Automerge)
	require.False(testInstance, *configuration.PackageRules[0].Automerge)
	require.True(testInstance, *configuration.PackageRules[1].Automerge)
}
