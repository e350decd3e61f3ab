package catalog_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erauner12/homelab-renovate/internal/catalog"
)

const (
	testSelfTestRepositoryConstant = "erauner12/homelab-renovate"
	testFirstRepositoryConstant    = "erauner12/homelab-k8s"
	testSecondRepositoryConstant   = "erauner12/omni"
)

func TestParseRepositoryIdentifier(testInstance *testing.T) {
	testInstance.Parallel()

	testCases := []struct {
		name        string
		input       string
		expected    catalog.RepositoryIdentifier
		expectError bool
	}{
		{name: "valid_identifier", input: testFirstRepositoryConstant, expected: testFirstRepositoryConstant},
		{name: "trims_whitespace", input: "  erauner12/omni ", expected: testSecondRepositoryConstant},
		{name: "rejects_empty", input: "   ", expectError: true},
		{name: "rejects_missing_separator", input: "homelab-k8s", expectError: true},
		{name: "rejects_extra_segments", input: "a/b/c", expectError: true},
		{name: "rejects_empty_owner", input: "/repo", expectError: true},
		{name: "rejects_empty_name", input: "owner/", expectError: true},
		{name: "rejects_inner_whitespace", input: "owner/re po", expectError: true},
	}

	for _, testCase := range testCases {
		testCase := testCase
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			subTest.Parallel()

			identifier, parseError := catalog.ParseRepositoryIdentifier(testCase.input)
			if testCase.expectError {
				var invalidIdentifierError catalog.InvalidIdentifierError
				require.ErrorAs(subTest, parseError, &invalidIdentifierError)
				require.Equal(subTest, testCase.input, invalidIdentifierError.Value)
				return
			}
			require.NoError(subTest, parseError)
			require.Equal(subTest, testCase.expected, identifier)
		})
	}
}

func TestCatalogDifferencePreservesCatalogOrder(testInstance *testing.T) {
	repositoryCatalog := catalog.New([]catalog.RepositoryIdentifier{"a/one", "a/two", "a/three", "a/four"}, "a/four")

	remaining := repositoryCatalog.Difference([]catalog.RepositoryIdentifier{"a/four", "a/two", "x/unknown"})

	require.Equal(testInstance, []catalog.RepositoryIdentifier{"a/one", "a/three"}, remaining)
}

func TestCatalogRepositoriesReturnsCopy(testInstance *testing.T) {
	repositoryCatalog := catalog.New([]catalog.RepositoryIdentifier{"a/one", "a/two"}, "a/one")

	repositories := repositoryCatalog.Repositories()
	repositories[0] = "mutated/value"

	require.Equal(testInstance, []catalog.RepositoryIdentifier{"a/one", "a/two"}, repositoryCatalog.Repositories())
}

func TestCatalogValidate(testInstance *testing.T) {
	testCases := []struct {
		name             string
		configuration    catalog.Configuration
		expectedProblems int
	}{
		{
			name: "valid_catalog",
			configuration: catalog.Configuration{
				Repositories:       []string{testFirstRepositoryConstant, testSelfTestRepositoryConstant},
				SelfTestRepository: testSelfTestRepositoryConstant,
			},
		},
		{
			name: "duplicate_and_malformed_entries",
			configuration: catalog.Configuration{
				Repositories:       []string{testFirstRepositoryConstant, testFirstRepositoryConstant, "malformed", testSelfTestRepositoryConstant},
				SelfTestRepository: testSelfTestRepositoryConstant,
			},
			expectedProblems: 2,
		},
		{
			name: "self_test_outside_catalog",
			configuration: catalog.Configuration{
				Repositories:       []string{testFirstRepositoryConstant},
				SelfTestRepository: testSelfTestRepositoryConstant,
			},
			expectedProblems: 1,
		},
		{
			name: "self_test_missing",
			configuration: catalog.Configuration{
				Repositories: []string{testFirstRepositoryConstant},
			},
			expectedProblems: 1,
		},
	}

	for _, testCase := range testCases {
		testCase := testCase
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			problems := catalog.FromConfiguration(testCase.configuration).Validate()
			require.Len(subTest, problems, testCase.expectedProblems)
		})
	}
}

func TestConfigurationSanitizeDropsBlankEntries(testInstance *testing.T) {
	sanitized := catalog.Configuration{
		Repositories:       []string{" erauner12/omni ", "", "   "},
		SelfTestRepository: " erauner12/omni",
	}.Sanitize()

	require.Equal(testInstance, []string{testSecondRepositoryConstant}, sanitized.Repositories)
	require.Equal(testInstance, testSecondRepositoryConstant, sanitized.SelfTestRepository)
}

func TestCatalogCommandListsRepositories(testInstance *testing.T) {
	builder := catalog.CommandBuilder{
		ConfigurationProvider: func() catalog.Configuration {
			return catalog.Configuration{
				Repositories:       []string{testFirstRepositoryConstant, testSelfTestRepositoryConstant},
				SelfTestRepository: testSelfTestRepositoryConstant,
			}
		},
	}

	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	outputBuffer := &bytes.Buffer{}
	command.SetOut(outputBuffer)
	command.SetArgs([]string{})
	require.NoError(testInstance, command.Execute())

	require.Equal(testInstance, " 1. erauner12/homelab-k8s\n 2. erauner12/homelab-renovate (self-test)\n", outputBuffer.String())
}

func TestCatalogCommandRejectsArgumentsWithoutUsage(testInstance *testing.T) {
	builder := catalog.CommandBuilder{}
	command, buildError := builder.Build()
	require.NoError(testInstance, buildError)

	outputBuffer := &bytes.Buffer{}
	command.SetOut(outputBuffer)
	command.SetErr(&bytes.Buffer{})
	command.SetArgs([]string{"unexpected"})
	require.Error(testInstance, command.Execute())
	require.Empty(testInstance, outputBuffer.String())
}
