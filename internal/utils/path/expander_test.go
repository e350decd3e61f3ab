package pathutils_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	pathutils "github.com/erauner12/homelab-renovate/internal/utils/path"
)

const testHomeDirectoryConstant = "/home/renovate"

func newTestExpander(variables map[string]string) *pathutils.Expander {
	return pathutils.NewExpanderWith(
		func() (string, error) { return testHomeDirectoryConstant, nil },
		func(name string) (string, bool) {
			value, found := variables[name]
			return value, found
		},
	)
}

func TestExpanderExpand(testInstance *testing.T) {
	testCases := []struct {
		name          string
		variables     map[string]string
		candidatePath string
		expectedPath  string
	}{
		{name: "bare_tilde", candidatePath: "~", expectedPath: testHomeDirectoryConstant},
		{name: "tilde_prefix", candidatePath: "~/.config/homelab-renovate/config.yaml", expectedPath: filepath.Join(testHomeDirectoryConstant, ".config/homelab-renovate/config.yaml")},
		{name: "absolute_path", candidatePath: "/etc/homelab-renovate/config.yaml", expectedPath: "/etc/homelab-renovate/config.yaml"},
		{name: "other_user_home", candidatePath: "~operator/config.yaml", expectedPath: "~operator/config.yaml"},
		{name: "empty", candidatePath: "", expectedPath: ""},
		{
			name:          "braced_variable",
			variables:     map[string]string{"XDG_CONFIG_HOME": "/srv/config"},
			candidatePath: "${XDG_CONFIG_HOME}/homelab-renovate",
			expectedPath:  "/srv/config/homelab-renovate",
		},
		{
			name:          "plain_variable",
			variables:     map[string]string{"WORKSPACE": "/workspace"},
			candidatePath: "$WORKSPACE/renovate.yaml",
			expectedPath:  "/workspace/renovate.yaml",
		},
		{
			name:          "variable_expanding_to_tilde",
			variables:     map[string]string{"RENOVATE_CONFIG_DIR": "~/renovate"},
			candidatePath: "$RENOVATE_CONFIG_DIR/config.yaml",
			expectedPath:  filepath.Join(testHomeDirectoryConstant, "renovate/config.yaml"),
		},
		{
			name:          "unset_variable_kept",
			candidatePath: "$MISSING/config.yaml",
			expectedPath:  "${MISSING}/config.yaml",
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			require.Equal(subTest, testCase.expectedPath, newTestExpander(testCase.variables).Expand(testCase.candidatePath))
		})
	}
}

func TestExpanderHomeDirectoryFailure(testInstance *testing.T) {
	expander := pathutils.NewExpanderWith(
		func() (string, error) { return "", errors.New("home directory unavailable") },
		func(string) (string, bool) { return "", false },
	)
	require.Equal(testInstance, "~/config.yaml", expander.Expand("~/config.yaml"))
}

func TestNilExpanderReturnsInput(testInstance *testing.T) {
	var expander *pathutils.Expander
	require.Equal(testInstance, "~/config.yaml", expander.Expand("~/config.yaml"))
}
