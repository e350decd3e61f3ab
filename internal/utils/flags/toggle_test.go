package flags_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/erauner12/homelab-renovate/internal/utils/flags"
)

const (
	testAllFlagNameConstant  = "all"
	testAllFlagUsageConstant = "Select every repository in the catalog"
)

func newPickLikeCommand(target *bool) *cobra.Command {
	command := &cobra.Command{Use: "pick"}
	command.Flags().String("repo", "", "")
	flags.AddToggleFlag(command.Flags(), target, testAllFlagNameConstant, false, testAllFlagUsageConstant)
	return command
}

func TestAddToggleFlagParsesAllValues(testInstance *testing.T) {
	testCases := []struct {
		name            string
		arguments       []string
		expectedAll     bool
		expectedChanged bool
	}{
		{name: "absent", arguments: []string{}, expectedAll: false, expectedChanged: false},
		{name: "bare", arguments: []string{"--all"}, expectedAll: true, expectedChanged: true},
		{name: "separate_yes", arguments: []string{"--all", "yes"}, expectedAll: true, expectedChanged: true},
		{name: "separate_no", arguments: []string{"--all", "no"}, expectedAll: false, expectedChanged: true},
		{name: "separate_upper_case", arguments: []string{"--all", "ON"}, expectedAll: true, expectedChanged: true},
		{name: "assigned_false", arguments: []string{"--all=false"}, expectedAll: false, expectedChanged: true},
		{name: "assigned_one", arguments: []string{"--all=1"}, expectedAll: true, expectedChanged: true},
		{name: "bare_before_other_flag", arguments: []string{"--all", "--repo", "erauner12/foo"}, expectedAll: true, expectedChanged: true},
	}

	for _, testCase := range testCases {
		testCase := testCase
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			selectAll := true
			command := newPickLikeCommand(&selectAll)
			require.False(subTest, selectAll)

			require.NoError(subTest, command.ParseFlags(flags.NormalizeToggleArguments(testCase.arguments)))
			require.Equal(subTest, testCase.expectedAll, selectAll)
			require.Equal(subTest, testCase.expectedChanged, command.Flags().Changed(testAllFlagNameConstant))
		})
	}
}

func TestAddToggleFlagRejectsUnknownLiteral(testInstance *testing.T) {
	var selectAll bool
	command := newPickLikeCommand(&selectAll)

	parseError := command.ParseFlags(flags.NormalizeToggleArguments([]string{"--all=maybe"}))
	require.Error(testInstance, parseError)
	require.Contains(testInstance, parseError.Error(), "invalid toggle value \"maybe\"")
}

func TestAddToggleFlagUsageShowsDefault(testInstance *testing.T) {
	var selectAll bool
	command := newPickLikeCommand(&selectAll)

	allFlag := command.Flags().Lookup(testAllFlagNameConstant)
	require.NotNil(testInstance, allFlag)
	require.Equal(testInstance, "`<yes|NO>` "+testAllFlagUsageConstant, allFlag.Usage)
	require.Equal(testInstance, "true", allFlag.NoOptDefVal)
}

func TestNormalizeToggleArguments(testInstance *testing.T) {
	var selectAll bool
	newPickLikeCommand(&selectAll)

	testCases := []struct {
		name      string
		arguments []string
		expected  []string
	}{
		{name: "empty", arguments: nil, expected: nil},
		{name: "joins_literal", arguments: []string{"--all", "no", "--repo", "erauner12/foo"}, expected: []string{"--all=no", "--repo", "erauner12/foo"}},
		{name: "keeps_positional_after_toggle", arguments: []string{"--all", "unexpected"}, expected: []string{"--all", "unexpected"}},
		{name: "ignores_unregistered_flag", arguments: []string{"--repo", "yes"}, expected: []string{"--repo", "yes"}},
		{name: "keeps_assignment", arguments: []string{"--all=yes", "no"}, expected: []string{"--all=yes", "no"}},
		{name: "stops_at_terminator", arguments: []string{"--", "--all", "yes"}, expected: []string{"--", "--all", "yes"}},
		{name: "trailing_toggle", arguments: []string{"pick", "--all"}, expected: []string{"pick", "--all"}},
	}

	for _, testCase := range testCases {
		testCase := testCase
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			require.Equal(subTest, testCase.expected, flags.NormalizeToggleArguments(testCase.arguments))
		})
	}
}
