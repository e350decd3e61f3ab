package engine_test

import (
	"github.com/erauner12/homelab-renovate/internal/catalog"
	"github.com/erauner12/homelab-renovate/internal/engine"
)

const (
	testSelfTestRepositoryConstant = "erauner12/homelab-renovate"
	testUsernameVariableConstant   = "NEXUS_USERNAME"
	testPasswordVariableConstant   = "NEXUS_PASSWORD"
	testWebhookVariableConstant    = "RENOVATE_WEBHOOK_SECRET"
	testLogLevelVariableConstant   = "LOG_LEVEL"
	testDockerHostConstant         = "docker.nexus.erauner.dev"
	testGoProxyHostConstant        = "athens.erauner.dev"
)

var testRepositories = []catalog.RepositoryIdentifier{
	"erauner12/homelab-k8s",
	"erauner12/omni",
	"erauner12/infrastructure",
	"erauner12/dotfiles",
	"erauner12/taskfiles",
	"erauner12/todoist-mcp",
	testSelfTestRepositoryConstant,
}

func testCatalog() catalog.Catalog {
	return catalog.New(testRepositories, testSelfTestRepositoryConstant)
}

func testCatalogConfiguration() catalog.Configuration {
	return catalog.Configuration{
		Repositories:       catalog.Strings(testRepositories),
		SelfTestRepository: testSelfTestRepositoryConstant,
	}
}

func boolPointer(value bool) *bool {
	return &value
}

func testTables() engine.Tables {
	return engine.Tables{
		Settings: engine.Settings{
			Platform:     "github",
			Endpoint:     "https://api.github.com/",
			Autodiscover: false,
			Onboarding:   true,
			OnboardingConfig: engine.OnboardingSettings{
				Schema:  "https://docs.renovatebot.com/renovate-schema.json",
				Extends: []string{"config:recommended", ":semanticCommits"},
			},
			RequireConfig:       "optional",
			Timezone:            "America/Chicago",
			Schedule:            []string{"at any time"},
			PRConcurrentLimit:   10,
			CommitMessagePrefix: "chore(deps):",
			DependencyDashboard: engine.DashboardSettings{
				Enabled: true,
				Title:   "🤖 Renovate Dashboard",
				Footer:  "Managed by [homelab-renovate](https://github.com/erauner12/homelab-renovate)",
			},
			PostUpgradeTasks: engine.PostUpgradeTasksSettings{
				Commands:      []string{"./scripts/sync-versions.sh || true"},
				FileFilters:   []string{"**/*"},
				ExecutionMode: "branch",
			},
			WebhookSecretVariable: testWebhookVariableConstant,
			LogLevelVariable:      testLogLevelVariableConstant,
		},
		HostRules: []engine.HostRuleConfiguration{
			{
				MatchHost:        testDockerHostConstant,
				HostType:         "docker",
				UsernameVariable: testUsernameVariableConstant,
				PasswordVariable: testPasswordVariableConstant,
			},
			{
				MatchHost: testGoProxyHostConstant,
				HostType:  "go",
			},
		},
		PackageRules: []engine.PackageRuleConfiguration{
			{
				Description:          "Group homelab decoupled components",
				MatchPackagePatterns: []string{"^erauner12/homelab-"},
				GroupName:            "homelab-components",
				Automerge:            boolPointer(false),
			},
			{
				Description:         "Automerge patch updates",
				MatchUpdateTypes:    []string{"patch"},
				MatchCurrentVersion: "!/^0/",
				Automerge:           boolPointer(true),
				AutomergeType:       "pr",
			},
			{
				Description:      "Security updates - immediate",
				MatchUpdateTypes: []string{"pin", "digest"},
				Ungrouped:        true,
				Automerge:        boolPointer(true),
			},
		},
		CustomManagers: []engine.CustomManagerConfiguration{
			{
				CustomType:         "regex",
				Description:        "Update Talos versions in omni configs",
				FileMatch:          []string{`\.yaml$`},
				MatchStrings:       []string{`talos\.dev/version:\s*(?<currentValue>v[0-9.]+)`},
				DepNameTemplate:    "siderolabs/talos",
				DatasourceTemplate: "github-releases",
			},
		},
	}
}
