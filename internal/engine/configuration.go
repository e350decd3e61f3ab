package engine

import "encoding/json"

// Configuration is the object consumed by the update engine.
type Configuration struct {
	Platform                  string           `json:"platform" yaml:"platform"`
	Endpoint                  string           `json:"endpoint" yaml:"endpoint"`
	Repositories              []string         `json:"repositories" yaml:"repositories"`
	AllRepositories           []string         `json:"allRepositories" yaml:"allRepositories"`
	Autodiscover              bool             `json:"autodiscover" yaml:"autodiscover"`
	Onboarding                bool             `json:"onboarding" yaml:"onboarding"`
	OnboardingConfig          OnboardingConfig `json:"onboardingConfig" yaml:"onboardingConfig"`
	RequireConfig             string           `json:"requireConfig" yaml:"requireConfig"`
	Timezone                  string           `json:"timezone" yaml:"timezone"`
	Schedule                  []string         `json:"schedule" yaml:"schedule"`
	PRConcurrentLimit         int              `json:"prConcurrentLimit" yaml:"prConcurrentLimit"`
	BranchConcurrentLimit     int              `json:"branchConcurrentLimit" yaml:"branchConcurrentLimit"`
	PRHourlyLimit             int              `json:"prHourlyLimit" yaml:"prHourlyLimit"`
	StabilityDays             int              `json:"stabilityDays" yaml:"stabilityDays"`
	MinimumReleaseAge         string           `json:"minimumReleaseAge" yaml:"minimumReleaseAge"`
	SemanticCommits           string           `json:"semanticCommits" yaml:"semanticCommits"`
	CommitMessagePrefix       string           `json:"commitMessagePrefix" yaml:"commitMessagePrefix"`
	DependencyDashboard       bool             `json:"dependencyDashboard" yaml:"dependencyDashboard"`
	DependencyDashboardTitle  string           `json:"dependencyDashboardTitle" yaml:"dependencyDashboardTitle"`
	DependencyDashboardHeader string           `json:"dependencyDashboardHeader" yaml:"dependencyDashboardHeader"`
	DependencyDashboardFooter string           `json:"dependencyDashboardFooter" yaml:"dependencyDashboardFooter"`
	EnabledManagers           []string         `json:"enabledManagers" yaml:"enabledManagers"`
	HostRules                 []HostRule       `json:"hostRules" yaml:"hostRules"`
	PackageRules              []PackageRule    `json:"packageRules" yaml:"packageRules"`
	CustomManagers            []CustomManager  `json:"customManagers" yaml:"customManagers"`
	PostUpgradeTasks          PostUpgradeTasks `json:"postUpgradeTasks" yaml:"postUpgradeTasks"`
	WebhookSecret             string           `json:"webhookSecret,omitempty" yaml:"webhookSecret,omitempty"`
	LogLevel                  string           `json:"logLevel" yaml:"logLevel"`
}

// OnboardingConfig is written into onboarding pull requests.
type OnboardingConfig struct {
	Schema  string   `json:"$schema,omitempty" yaml:"$schema,omitempty"`
	Extends []string `json:"extends,omitempty" yaml:"extends,omitempty"`
}

// HostRule carries registry credentials. Credentials are passed through without inspection.
type HostRule struct {
	MatchHost string `json:"matchHost" yaml:"matchHost"`
	HostType  string `json:"hostType" yaml:"hostType"`
	Username  string `json:"username,omitempty" yaml:"username,omitempty"`
	Password  string `json:"password,omitempty" yaml:"password,omitempty"`
}

// PackageRule groups or automerges matching dependency updates.
type PackageRule struct {
	Description          string     `json:"description,omitempty" yaml:"description,omitempty"`
	MatchPackagePatterns []string   `json:"matchPackagePatterns,omitempty" yaml:"matchPackagePatterns,omitempty"`
	MatchUpdateTypes     []string   `json:"matchUpdateTypes,omitempty" yaml:"matchUpdateTypes,omitempty"`
	MatchCurrentVersion  string     `json:"matchCurrentVersion,omitempty" yaml:"matchCurrentVersion,omitempty"`
	MatchManagers        []string   `json:"matchManagers,omitempty" yaml:"matchManagers,omitempty"`
	MatchDatasources     []string   `json:"matchDatasources,omitempty" yaml:"matchDatasources,omitempty"`
	GroupName            *GroupName `json:"groupName,omitempty" yaml:"groupName,omitempty"`
	Automerge            *bool      `json:"automerge,omitempty" yaml:"automerge,omitempty"`
	AutomergeType        string     `json:"automergeType,omitempty" yaml:"automergeType,omitempty"`
}

// GroupName is a package rule group that can be explicitly null.
type GroupName struct {
	Name string
	Null bool
}

// MarshalJSON encodes the group name or null.
func (groupName GroupName) MarshalJSON() ([]byte, error) {
	if groupName.Null {
		return []byte("null"), nil
	}
	return json.Marshal(groupName.Name)
}

// MarshalYAML encodes the group name or null.
func (groupName GroupName) MarshalYAML() (any, error) {
	if groupName.Null {
		return nil, nil
	}
	return groupName.Name, nil
}

// CustomManager extracts dependency versions with regular expressions.
type CustomManager struct {
	CustomType         string   `json:"customType" yaml:"customType"`
	Description        string   `json:"description,omitempty" yaml:"description,omitempty"`
	FileMatch          []string `json:"fileMatch" yaml:"fileMatch"`
	MatchStrings       []string `json:"matchStrings" yaml:"matchStrings"`
	DatasourceTemplate string   `json:"datasourceTemplate,omitempty" yaml:"datasourceTemplate,omitempty"`
	DepNameTemplate    string   `json:"depNameTemplate,omitempty" yaml:"depNameTemplate,omitempty"`
}

// PostUpgradeTasks runs commands on upgrade branches.
type PostUpgradeTasks struct {
	Commands      []string `json:"commands" yaml:"commands"`
	FileFilters   []string `json:"fileFilters" yaml:"fileFilters"`
	ExecutionMode string   `json:"executionMode" yaml:"executionMode"`
}
