package engine

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/erauner12/homelab-renovate/internal/catalog"
	"github.com/erauner12/homelab-renovate/internal/selection"
	"github.com/erauner12/homelab-renovate/internal/utils"
	"github.com/erauner12/homelab-renovate/internal/utils/flags"
)

const (
	renderCommandUseConstant                  = "render"
	renderCommandShortDescriptionConstant     = "Print the update engine configuration for this run"
	renderCommandLongDescriptionConstant      = "render selects the repositories for this run and prints the complete update engine configuration, including host rules, package rules, and custom managers."
	renderUnexpectedArgumentsMessageConstant  = "render does not accept positional arguments"
	formatFlagNameConstant                    = "format"
	formatFlagDescriptionConstant             = "Output encoding"
	formatParseErrorTemplateConstant          = "invalid --format value: %w"
	renderFailedErrorTemplateConstant         = "render failed: %w"
	configurationRenderedMessageConstant      = "engine configuration rendered"
	logFieldFormatConstant                    = "format"
	logFieldRepositoryCountConstant           = "repository_count"
	logFieldHostRuleCountConstant             = "host_rule_count"
	logFieldCredentialedHostRuleCountConstant = "credentialed_host_rule_count"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// TablesProvider returns the configured policy tables.
type TablesProvider func() Tables

// CatalogConfigurationProvider returns the current catalog configuration.
type CatalogConfigurationProvider func() catalog.Configuration

// SelectionConfigurationProvider returns the current selection configuration.
type SelectionConfigurationProvider func() selection.Configuration

// RenderCommandBuilder assembles the render command.
type RenderCommandBuilder struct {
	LoggerProvider                 LoggerProvider
	TablesProvider                 TablesProvider
	CatalogConfigurationProvider   CatalogConfigurationProvider
	SelectionConfigurationProvider SelectionConfigurationProvider
	EnvironmentLookup              utils.EnvironmentLookup
	RandomSource                   selection.RandomSource
}

// Build constructs the render command.
func (builder *RenderCommandBuilder) Build() (*cobra.Command, error) {
	var formatValue string

	renderCommand := &cobra.Command{
		Use:          renderCommandUseConstant,
		Short:        renderCommandShortDescriptionConstant,
		Long:         renderCommandLongDescriptionConstant,
		SilenceUsage: true,
	}

	flagValues := selection.BindFlags(renderCommand)
	flags.AddChoiceFlag(
		renderCommand.Flags(),
		&formatValue,
		formatFlagNameConstant,
		formatJSONValueConstant,
		SupportedFormats(),
		formatFlagDescriptionConstant,
	)

	renderCommand.RunE = func(command *cobra.Command, arguments []string) error {
		if len(arguments) > 0 {
			return errors.New(renderUnexpectedArgumentsMessageConstant)
		}
		outputFormat, formatError := ParseFormat(formatValue)
		if formatError != nil {
			return fmt.Errorf(formatParseErrorTemplateConstant, formatError)
		}
		return builder.run(command, flagValues, outputFormat)
	}

	return renderCommand, nil
}

func (builder *RenderCommandBuilder) run(command *cobra.Command, flagValues *selection.FlagValues, outputFormat Format) error {
	logger := resolveLogger(builder.LoggerProvider)
	repositoryCatalog := catalog.FromConfiguration(resolveCatalogConfiguration(builder.CatalogConfigurationProvider))
	selectionConfiguration := resolveSelectionConfiguration(builder.SelectionConfigurationProvider).Sanitize()

	selectionContext := selection.ContextFromEnvironment(selectionConfiguration, builder.EnvironmentLookup)
	selectionContext = flagValues.ApplyFlags(command, selectionContext, selectionConfiguration.DefaultBranch)

	result := selection.NewSelector(selectionConfiguration, builder.RandomSource, logger).Select(repositoryCatalog, selectionContext)
	configuration := Build(resolveTables(builder.TablesProvider), repositoryCatalog, result, builder.EnvironmentLookup)

	if encodeError := Encode(utils.NewFlushingWriter(command.OutOrStdout()), configuration, outputFormat); encodeError != nil {
		return fmt.Errorf(renderFailedErrorTemplateConstant, encodeError)
	}

	logger.Info(
		configurationRenderedMessageConstant,
		zap.String(logFieldFormatConstant, string(outputFormat)),
		zap.Int(logFieldRepositoryCountConstant, len(configuration.Repositories)),
		zap.Int(logFieldHostRuleCountConstant, len(configuration.HostRules)),
		zap.Int(logFieldCredentialedHostRuleCountConstant, countCredentialedHostRules(configuration.HostRules)),
	)
	return nil
}

func countCredentialedHostRules(hostRules []HostRule) int {
	credentialedCount := 0
	for _, hostRule := range hostRules {
		if len(hostRule.Username) > 0 || len(hostRule.Password) > 0 {
			credentialedCount++
		}
	}
	return credentialedCount
}

func resolveLogger(loggerProvider LoggerProvider) *zap.Logger {
	if loggerProvider == nil {
		return zap.NewNop()
	}
	logger := loggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func resolveTables(tablesProvider TablesProvider) Tables {
	if tablesProvider == nil {
		return Tables{}
	}
	return tablesProvider()
}

func resolveCatalogConfiguration(catalogProvider CatalogConfigurationProvider) catalog.Configuration {
	if catalogProvider == nil {
		return catalog.Configuration{}
	}
	return catalogProvider()
}

func resolveSelectionConfiguration(selectionProvider SelectionConfigurationProvider) selection.Configuration {
	if selectionProvider == nil {
		return selection.DefaultConfiguration()
	}
	return selectionProvider()
}

func trimmedOrPlaceholder(value string, placeholder string) string {
	trimmedValue := strings.TrimSpace(value)
	if len(trimmedValue) == 0 {
		return placeholder
	}
	return trimmedValue
}
