package engine

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/erauner12/homelab-renovate/internal/catalog"
)

const (
	validationErrorHeaderTemplateConstant   = "configuration has %d problem(s):"
	validationProblemPrefixConstant         = "\n  - "
	hostRuleMissingHostTemplateConstant     = "host rule %d: match host is empty"
	hostRuleMissingTypeTemplateConstant     = "host rule %d (%s): host type is empty"
	hostRuleHalfCredentialsTemplateConstant = "host rule %d (%s): username and password variables must be configured together"
	packageRulePatternTemplateConstant      = "package rule %d (%s): package pattern %q does not compile: %v"
	packageRuleVersionTemplateConstant      = "package rule %d (%s): current version pattern %q does not compile: %v"
	packageRuleConflictTemplateConstant     = "package rule %d (%s): group name and ungrouped are mutually exclusive"
	customManagerFileMatchTemplateConstant  = "custom manager %d (%s): file pattern %q does not compile: %v"
	customManagerMatchTemplateConstant      = "custom manager %d (%s): match string %q does not compile: %v"
	customManagerNoMatchTemplateConstant    = "custom manager %d (%s): no match strings configured"
	customManagerNoFileTemplateConstant     = "custom manager %d (%s): no file patterns configured"
	fileFilterTemplateConstant              = "post-upgrade file filter %q is not a valid glob"
	negatedPatternPrefixConstant            = "!"
	regexLiteralDelimiterConstant           = "/"
)

// ValidationError lists every problem found in the policy tables and catalog.
type ValidationError struct {
	Problems []string
}

// Error renders all problems on separate lines.
func (validationError *ValidationError) Error() string {
	return fmt.Sprintf(validationErrorHeaderTemplateConstant, len(validationError.Problems)) +
		validationProblemPrefixConstant + strings.Join(validationError.Problems, validationProblemPrefixConstant)
}

// Validate checks the catalog and policy tables, returning a *ValidationError when problems exist.
func Validate(tables Tables, repositoryCatalog catalog.Catalog) error {
	var problems []string

	for _, catalogProblem := range repositoryCatalog.Validate() {
		problems = append(problems, catalogProblem.Error())
	}
	problems = append(problems, validateHostRules(tables.HostRules)...)
	problems = append(problems, validatePackageRules(tables.PackageRules)...)
	problems = append(problems, validateCustomManagers(tables.CustomManagers)...)

	for _, fileFilter := range tables.Settings.PostUpgradeTasks.FileFilters {
		if !doublestar.ValidatePattern(fileFilter) {
			problems = append(problems, fmt.Sprintf(fileFilterTemplateConstant, fileFilter))
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{Problems: problems}
}

func validateHostRules(hostRules []HostRuleConfiguration) []string {
	var problems []string
	for ruleIndex, hostRule := range hostRules {
		ruleNumber := ruleIndex + 1
		if len(strings.TrimSpace(hostRule.MatchHost)) == 0 {
			problems = append(problems, fmt.Sprintf(hostRuleMissingHostTemplateConstant, ruleNumber))
			continue
		}
		if len(strings.TrimSpace(hostRule.HostType)) == 0 {
			problems = append(problems, fmt.Sprintf(hostRuleMissingTypeTemplateConstant, ruleNumber, hostRule.MatchHost))
		}
		hasUsername := len(strings.TrimSpace(hostRule.UsernameVariable)) > 0
		hasPassword := len(strings.TrimSpace(hostRule.PasswordVariable)) > 0
		if hasUsername != hasPassword {
			problems = append(problems, fmt.Sprintf(hostRuleHalfCredentialsTemplateConstant, ruleNumber, hostRule.MatchHost))
		}
	}
	return problems
}

func validatePackageRules(packageRules []PackageRuleConfiguration) []string {
	var problems []string
	for ruleIndex, packageRule := range packageRules {
		ruleNumber := ruleIndex + 1
		for _, packagePattern := range packageRule.MatchPackagePatterns {
			if _, compileError := regexp.Compile(packagePattern); compileError != nil {
				problems = append(problems, fmt.Sprintf(packageRulePatternTemplateConstant, ruleNumber, packageRule.Description, packagePattern, compileError))
			}
		}
		if versionPattern, isRegex := regexLiteralBody(packageRule.MatchCurrentVersion); isRegex {
			if _, compileError := regexp.Compile(versionPattern); compileError != nil {
				problems = append(problems, fmt.Sprintf(packageRuleVersionTemplateConstant, ruleNumber, packageRule.Description, packageRule.MatchCurrentVersion, compileError))
			}
		}
		if packageRule.Ungrouped && len(packageRule.GroupName) > 0 {
			problems = append(problems, fmt.Sprintf(packageRuleConflictTemplateConstant, ruleNumber, packageRule.Description))
		}
	}
	return problems
}

func validateCustomManagers(customManagers []CustomManagerConfiguration) []string {
	var problems []string
	for managerIndex, customManager := range customManagers {
		managerNumber := managerIndex + 1
		if len(customManager.FileMatch) == 0 {
			problems = append(problems, fmt.Sprintf(customManagerNoFileTemplateConstant, managerNumber, customManager.Description))
		}
		if len(customManager.MatchStrings) == 0 {
			problems = append(problems, fmt.Sprintf(customManagerNoMatchTemplateConstant, managerNumber, customManager.Description))
		}
		for _, filePattern := range customManager.FileMatch {
			if _, compileError := regexp.Compile(filePattern); compileError != nil {
				problems = append(problems, fmt.Sprintf(customManagerFileMatchTemplateConstant, managerNumber, customManager.Description, filePattern, compileError))
			}
		}
		for _, matchString := range customManager.MatchStrings {
			if _, compileError := regexp.Compile(matchString); compileError != nil {
				problems = append(problems, fmt.Sprintf(customManagerMatchTemplateConstant, managerNumber, customManager.Description, matchString, compileError))
			}
		}
	}
	return problems
}

// regexLiteralBody extracts the pattern from /pattern/ or !/pattern/ values.
// Other values are version ranges and are not checked.
func regexLiteralBody(value string) (string, bool) {
	trimmedValue := strings.TrimPrefix(strings.TrimSpace(value), negatedPatternPrefixConstant)
	if len(trimmedValue) < 2 {
		return "", false
	}
	if !strings.HasPrefix(trimmedValue, regexLiteralDelimiterConstant) || !strings.HasSuffix(trimmedValue, regexLiteralDelimiterConstant) {
		return "", false
	}
	return trimmedValue[1 : len(trimmedValue)-1], true
}
