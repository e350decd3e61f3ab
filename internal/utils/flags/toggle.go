package flags

import (
	"fmt"
	"strings"
	"sync"

	"github.com/spf13/pflag"
)

const (
	toggleTrueValueConstant           = "true"
	toggleFalseValueConstant          = "false"
	toggleLongPrefixConstant          = "--"
	toggleAssignmentConstant          = "="
	toggleArgumentsTerminatorConstant = "--"
	toggleValueTypeConstant           = "bool"
	toggleParseErrorTemplateConstant  = "invalid toggle value %q (expected yes, no, true, false, on, off, 1 or 0)"
	toggleEnabledPlaceholderConstant  = "<YES|no>"
	toggleDisabledPlaceholderConstant = "<yes|NO>"
)

var (
	toggleLiterals = map[string]bool{
		"true":  true,
		"yes":   true,
		"on":    true,
		"1":     true,
		"false": false,
		"no":    false,
		"off":   false,
		"0":     false,
	}

	registeredTogglesMutex sync.RWMutex
	registeredToggles      = map[string]struct{}{}
)

// AddToggleFlag registers a long boolean flag that also accepts yes/no style values.
// A bare "--name" sets the target to true.
func AddToggleFlag(flagSet *pflag.FlagSet, target *bool, name string, defaultValue bool, usage string) {
	if flagSet == nil || len(name) == 0 {
		return
	}

	flagSet.Var(newToggleValue(target, defaultValue), name, usage)
	registeredFlag := flagSet.Lookup(name)
	registeredFlag.NoOptDefVal = toggleTrueValueConstant
	registeredFlag.Usage = toggleUsage(usage, defaultValue)

	registeredTogglesMutex.Lock()
	registeredToggles[name] = struct{}{}
	registeredTogglesMutex.Unlock()
}

// NormalizeToggleArguments joins "--name value" into "--name=value" for registered toggles
// when value is a recognised toggle literal. Everything after "--" is left alone.
func NormalizeToggleArguments(arguments []string) []string {
	if len(arguments) == 0 {
		return nil
	}

	normalized := make([]string, 0, len(arguments))
	for index := 0; index < len(arguments); index++ {
		argument := arguments[index]
		if argument == toggleArgumentsTerminatorConstant {
			return append(normalized, arguments[index:]...)
		}
		if index+1 < len(arguments) && isBareToggle(argument) {
			if _, recognised := lookupToggleLiteral(arguments[index+1]); recognised {
				normalized = append(normalized, argument+toggleAssignmentConstant+arguments[index+1])
				index++
				continue
			}
		}
		normalized = append(normalized, argument)
	}
	return normalized
}

func isBareToggle(argument string) bool {
	name, isLong := strings.CutPrefix(argument, toggleLongPrefixConstant)
	if !isLong || len(name) == 0 || strings.Contains(name, toggleAssignmentConstant) {
		return false
	}
	registeredTogglesMutex.RLock()
	defer registeredTogglesMutex.RUnlock()
	_, registered := registeredToggles[name]
	return registered
}

func lookupToggleLiteral(rawValue string) (bool, bool) {
	parsedValue, recognised := toggleLiterals[strings.ToLower(strings.TrimSpace(rawValue))]
	return parsedValue, recognised
}

func toggleUsage(description string, defaultValue bool) string {
	placeholder := toggleDisabledPlaceholderConstant
	if defaultValue {
		placeholder = toggleEnabledPlaceholderConstant
	}
	trimmedDescription := strings.TrimSpace(description)
	if len(trimmedDescription) == 0 {
		return fmt.Sprintf("`%s`", placeholder)
	}
	return fmt.Sprintf("`%s` %s", placeholder, trimmedDescription)
}

type toggleValue struct {
	target *bool
}

func newToggleValue(target *bool, defaultValue bool) *toggleValue {
	if target == nil {
		target = new(bool)
	}
	*target = defaultValue
	return &toggleValue{target: target}
}

func (value *toggleValue) Set(rawValue string) error {
	parsedValue, recognised := lookupToggleLiteral(rawValue)
	if !recognised {
		return fmt.Errorf(toggleParseErrorTemplateConstant, rawValue)
	}
	*value.target = parsedValue
	return nil
}

func (value *toggleValue) String() string {
	if value == nil || value.target == nil || !*value.target {
		return toggleFalseValueConstant
	}
	return toggleTrueValueConstant
}

func (value *toggleValue) Type() string {
	return toggleValueTypeConstant
}
