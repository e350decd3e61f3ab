package pathutils

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	homeShortcutConstant        = "~"
	variableMarkerConstant      = "$"
	unresolvedVariablePrefix    = "${"
	unresolvedVariableSuffix    = "}"
	forwardSlashSeparatorString = "/"
)

// HomeDirectoryProvider resolves the current user's home directory path.
type HomeDirectoryProvider func() (string, error)

// VariableLookup resolves an environment variable referenced from a path.
type VariableLookup func(name string) (string, bool)

// Expander resolves environment variable references and a leading home shortcut in
// configuration paths such as "$XDG_CONFIG_HOME/homelab-renovate" or "~/.config/homelab-renovate".
type Expander struct {
	homeDirectoryProvider HomeDirectoryProvider
	variableLookup        VariableLookup
}

// NewExpander constructs an Expander backed by the process environment.
func NewExpander() *Expander {
	return NewExpanderWith(os.UserHomeDir, os.LookupEnv)
}

// NewExpanderWith constructs an Expander with explicit home and variable sources.
func NewExpanderWith(homeDirectoryProvider HomeDirectoryProvider, variableLookup VariableLookup) *Expander {
	if homeDirectoryProvider == nil {
		homeDirectoryProvider = os.UserHomeDir
	}
	if variableLookup == nil {
		variableLookup = os.LookupEnv
	}
	return &Expander{homeDirectoryProvider: homeDirectoryProvider, variableLookup: variableLookup}
}

// Expand substitutes $NAME and ${NAME}, then replaces a leading "~" with the home directory.
// Unset variables stay in the path as ${NAME}.
func (expander *Expander) Expand(candidatePath string) string {
	if expander == nil || len(candidatePath) == 0 {
		return candidatePath
	}

	expandedPath := candidatePath
	if strings.Contains(expandedPath, variableMarkerConstant) {
		expandedPath = os.Expand(expandedPath, expander.resolveVariable)
	}
	return expander.expandHome(expandedPath)
}

func (expander *Expander) resolveVariable(name string) string {
	if value, found := expander.variableLookup(name); found {
		return value
	}
	return unresolvedVariablePrefix + name + unresolvedVariableSuffix
}

func (expander *Expander) expandHome(candidatePath string) string {
	if !strings.HasPrefix(candidatePath, homeShortcutConstant) {
		return candidatePath
	}
	remainder := strings.TrimPrefix(candidatePath, homeShortcutConstant)
	if len(remainder) > 0 && !strings.HasPrefix(remainder, forwardSlashSeparatorString) && !strings.HasPrefix(remainder, string(os.PathSeparator)) {
		return candidatePath
	}

	homeDirectory, homeDirectoryError := expander.homeDirectoryProvider()
	if homeDirectoryError != nil || len(homeDirectory) == 0 {
		return candidatePath
	}
	return filepath.Join(homeDirectory, remainder)
}
