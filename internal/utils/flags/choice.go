package flags

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

const (
	choicePlaceholderTemplateConstant = "<%s>"
	choiceSeparatorConstant           = "|"
	choiceUsageTemplateConstant       = "`%s` %s"
	choiceBareUsageTemplateConstant   = "`%s`"
	choiceValueTypeConstant           = "string"
	choiceRejectedTemplateConstant    = "must be one of %s"
)

// AddChoiceFlag registers a string flag restricted to choices. Values are matched
// case-insensitively and stored in lower case.
func AddChoiceFlag(flagSet *pflag.FlagSet, target *string, name string, defaultChoice string, choices []string, description string) {
	if flagSet == nil || len(name) == 0 {
		return
	}
	allowedChoices := normalizeChoices(choices)
	flagSet.Var(newChoiceValue(target, strings.ToLower(strings.TrimSpace(defaultChoice)), allowedChoices), name, FormatChoiceUsage(defaultChoice, choices, description))
}

// FormatChoiceUsage renders "`<JSON|yaml>` description" with the default choice upper-cased.
func FormatChoiceUsage(defaultChoice string, choices []string, description string) string {
	normalizedDefault := strings.ToLower(strings.TrimSpace(defaultChoice))
	displayedChoices := normalizeChoices(choices)
	for index, choice := range displayedChoices {
		if choice == normalizedDefault {
			displayedChoices[index] = strings.ToUpper(choice)
		}
	}

	placeholder := fmt.Sprintf(choicePlaceholderTemplateConstant, strings.Join(displayedChoices, choiceSeparatorConstant))
	trimmedDescription := strings.TrimSpace(description)
	if len(trimmedDescription) == 0 {
		return fmt.Sprintf(choiceBareUsageTemplateConstant, placeholder)
	}
	return fmt.Sprintf(choiceUsageTemplateConstant, placeholder, trimmedDescription)
}

// normalizeChoices lower-cases and trims choices, dropping blanks and duplicates.
func normalizeChoices(choices []string) []string {
	normalized := make([]string, 0, len(choices))
	seen := make(map[string]struct{}, len(choices))
	for _, choice := range choices {
		normalizedChoice := strings.ToLower(strings.TrimSpace(choice))
		if len(normalizedChoice) == 0 {
			continue
		}
		if _, duplicate := seen[normalizedChoice]; duplicate {
			continue
		}
		seen[normalizedChoice] = struct{}{}
		normalized = append(normalized, normalizedChoice)
	}
	return normalized
}

type choiceValue struct {
	target  *string
	choices []string
}

func newChoiceValue(target *string, defaultChoice string, choices []string) *choiceValue {
	if target == nil {
		target = new(string)
	}
	*target = defaultChoice
	return &choiceValue{target: target, choices: choices}
}

func (value *choiceValue) Set(rawValue string) error {
	normalizedValue := strings.ToLower(strings.TrimSpace(rawValue))
	for _, choice := range value.choices {
		if choice == normalizedValue {
			*value.target = normalizedValue
			return nil
		}
	}
	return fmt.Errorf(choiceRejectedTemplateConstant, strings.Join(value.choices, ", "))
}

func (value *choiceValue) String() string {
	if value == nil || value.target == nil {
		return ""
	}
	return *value.target
}

func (value *choiceValue) Type() string {
	return choiceValueTypeConstant
}
