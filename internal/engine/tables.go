package engine

// Tables holds the declarative policy data handed to the update engine.
type Tables struct {
	Settings       Settings                     `mapstructure:"settings"`
	HostRules      []HostRuleConfiguration      `mapstructure:"host_rules"`
	PackageRules   []PackageRuleConfiguration   `mapstructure:"package_rules"`
	CustomManagers []CustomManagerConfiguration `mapstructure:"custom_managers"`
}

// Settings stores scalar engine options.
type Settings struct {
	Platform              string                   `mapstructure:"platform"`
	Endpoint              string                   `mapstructure:"endpoint"`
	Autodiscover          bool                     `mapstructure:"autodiscover"`
	Onboarding            bool                     `mapstructure:"onboarding"`
	OnboardingConfig      OnboardingSettings       `mapstructure:"onboarding_config"`
	RequireConfig         string                   `mapstructure:"require_config"`
	Timezone              string                   `mapstructure:"timezone"`
	Schedule              []string                 `mapstructure:"schedule"`
	PRConcurrentLimit     int                      `mapstructure:"pr_concurrent_limit"`
	BranchConcurrentLimit int                      `mapstructure:"branch_concurrent_limit"`
	PRHourlyLimit         int                      `mapstructure:"pr_hourly_limit"`
	StabilityDays         int                      `mapstructure:"stability_days"`
	MinimumReleaseAge     string                   `mapstructure:"minimum_release_age"`
	SemanticCommits       string                   `mapstructure:"semantic_commits"`
	CommitMessagePrefix   string                   `mapstructure:"commit_message_prefix"`
	DependencyDashboard   DashboardSettings        `mapstructure:"dependency_dashboard"`
	EnabledManagers       []string                 `mapstructure:"enabled_managers"`
	PostUpgradeTasks      PostUpgradeTasksSettings `mapstructure:"post_upgrade_tasks"`
	WebhookSecretVariable string                   `mapstructure:"webhook_secret_env"`
	LogLevelVariable      string                   `mapstructure:"log_level_env"`
	DefaultLogLevel       string                   `mapstructure:"default_log_level"`
}

// OnboardingSettings configures the onboarding pull request contents.
type OnboardingSettings struct {
	Schema  string   `mapstructure:"schema"`
	Extends []string `mapstructure:"extends"`
}

// DashboardSettings configures the dependency dashboard issue.
type DashboardSettings struct {
	Enabled bool   `mapstructure:"enabled"`
	Title   string `mapstructure:"title"`
	Header  string `mapstructure:"header"`
	Footer  string `mapstructure:"footer"`
}

// PostUpgradeTasksSettings configures commands executed after an upgrade.
type PostUpgradeTasksSettings struct {
	Commands      []string `mapstructure:"commands"`
	FileFilters   []string `mapstructure:"file_filters"`
	ExecutionMode string   `mapstructure:"execution_mode"`
}

// HostRuleConfiguration describes a registry host and the environment variables holding its credentials.
type HostRuleConfiguration struct {
	MatchHost        string `mapstructure:"match_host"`
	HostType         string `mapstructure:"host_type"`
	UsernameVariable string `mapstructure:"username_env"`
	PasswordVariable string `mapstructure:"password_env"`
}

// PackageRuleConfiguration describes grouping and automerge behaviour for matching dependencies.
type PackageRuleConfiguration struct {
	Description          string   `mapstructure:"description"`
	MatchPackagePatterns []string `mapstructure:"match_package_patterns"`
	MatchUpdateTypes     []string `mapstructure:"match_update_types"`
	MatchCurrentVersion  string   `mapstructure:"match_current_version"`
	MatchManagers        []string `mapstructure:"match_managers"`
	MatchDatasources     []string `mapstructure:"match_datasources"`
	GroupName            string   `mapstructure:"group_name"`
	// Ungrouped emits an explicit null group name, disabling grouping inherited from presets.
	Ungrouped     bool   `mapstructure:"ungrouped"`
	Automerge     *bool  `mapstructure:"automerge"`
	AutomergeType string `mapstructure:"automerge_type"`
}

// CustomManagerConfiguration describes a regex-based version extractor for non-standard files.
type CustomManagerConfiguration struct {
	CustomType         string   `mapstructure:"custom_type"`
	Description        string   `mapstructure:"description"`
	FileMatch          []string `mapstructure:"file_match"`
	MatchStrings       []string `mapstructure:"match_strings"`
	DatasourceTemplate string   `mapstructure:"datasource_template"`
	DepNameTemplate    string   `mapstructure:"dep_name_template"`
}
