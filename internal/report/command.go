package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/erauner12/homelab-renovate/internal/catalog"
	"github.com/erauner12/homelab-renovate/internal/selection"
	"github.com/erauner12/homelab-renovate/internal/utils"
)

const (
	pickCommandUseConstant                  = "pick"
	pickCommandShortDescriptionConstant     = "Show which repositories the update engine processes this run"
	pickCommandLongDescriptionConstant      = "pick computes the repository selection from the environment (override list, select-all switch, branch name) and prints a summary of selected and skipped repositories."
	unexpectedArgumentsErrorMessageConstant = "pick does not accept positional arguments"
	reportWriteErrorTemplateConstant        = "unable to write selection report: %w"
	noColorFlagNameConstant                 = "no-color"
	noColorFlagUsageConstant                = "Disable coloured output"
	reportRenderedMessageConstant           = "selection report rendered"
	logFieldPolicyConstant                  = "policy"
	logFieldSelectedCountConstant           = "selected_count"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// CatalogConfigurationProvider returns the current catalog configuration.
type CatalogConfigurationProvider func() catalog.Configuration

// SelectionConfigurationProvider returns the current selection configuration.
type SelectionConfigurationProvider func() selection.Configuration

// CommandBuilder assembles the pick command.
type CommandBuilder struct {
	LoggerProvider                 LoggerProvider
	CatalogConfigurationProvider   CatalogConfigurationProvider
	SelectionConfigurationProvider SelectionConfigurationProvider
	EnvironmentLookup              utils.EnvironmentLookup
	RandomSource                   selection.RandomSource
	TerminalDetector               TerminalDetector
}

// Build constructs the pick command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	var noColor bool

	pickCommand := &cobra.Command{
		Use:          pickCommandUseConstant,
		Short:        pickCommandShortDescriptionConstant,
		Long:         pickCommandLongDescriptionConstant,
		SilenceUsage: true,
	}

	flagValues := selection.BindFlags(pickCommand)
	pickCommand.Flags().BoolVar(&noColor, noColorFlagNameConstant, false, noColorFlagUsageConstant)

	pickCommand.RunE = func(command *cobra.Command, arguments []string) error {
		if len(arguments) > 0 {
			return errors.New(unexpectedArgumentsErrorMessageConstant)
		}
		return builder.run(command, flagValues, !noColor && builder.colorEnabled(command.OutOrStdout()))
	}

	return pickCommand, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, flagValues *selection.FlagValues, colorEnabled bool) error {
	logger := builder.resolveLogger()
	repositoryCatalog := catalog.FromConfiguration(builder.resolveCatalogConfiguration())
	selectionConfiguration := builder.resolveSelectionConfiguration().Sanitize()

	selectionContext := selection.ContextFromEnvironment(selectionConfiguration, builder.EnvironmentLookup)
	selectionContext = flagValues.ApplyFlags(command, selectionContext, selectionConfiguration.DefaultBranch)

	selector := selection.NewSelector(selectionConfiguration, builder.RandomSource, logger)
	result := selector.Select(repositoryCatalog, selectionContext)

	outputWriter := utils.NewFlushingWriter(command.OutOrStdout())
	reporter := NewReporter(colorEnabled)
	if reportError := reporter.Report(outputWriter, repositoryCatalog, result, EnvironmentFromContext(selectionConfiguration, selectionContext)); reportError != nil {
		return fmt.Errorf(reportWriteErrorTemplateConstant, reportError)
	}

	logger.Debug(
		reportRenderedMessageConstant,
		zap.String(logFieldPolicyConstant, string(result.Policy)),
		zap.Int(logFieldSelectedCountConstant, len(result.Repositories)),
	)
	return nil
}

func (builder *CommandBuilder) colorEnabled(writer io.Writer) bool {
	if !colorPermitted(builder.EnvironmentLookup) {
		return false
	}
	terminalDetector := builder.TerminalDetector
	if terminalDetector == nil {
		terminalDetector = isTerminalWriter
	}
	return terminalDetector(writer)
}

func (builder *CommandBuilder) resolveLogger() *zap.Logger {
	if builder.LoggerProvider == nil {
		return zap.NewNop()
	}
	logger := builder.LoggerProvider()
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}

func (builder *CommandBuilder) resolveCatalogConfiguration() catalog.Configuration {
	if builder.CatalogConfigurationProvider == nil {
		return catalog.Configuration{}
	}
	return builder.CatalogConfigurationProvider()
}

func (builder *CommandBuilder) resolveSelectionConfiguration() selection.Configuration {
	if builder.SelectionConfigurationProvider == nil {
		return selection.DefaultConfiguration()
	}
	return builder.SelectionConfigurationProvider()
}
