package engine

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/erauner12/homelab-renovate/internal/catalog"
)

const (
	validateCommandUseConstant                 = "validate"
	validateCommandShortDescriptionConstant    = "Check the catalog and policy tables"
	validateCommandLongDescriptionConstant     = "validate checks repository identifiers, the self-test repository, host rule credentials, and every regular expression and glob in the policy tables."
	validateUnexpectedArgumentsMessageConstant = "validate does not accept positional arguments"
	validateSummaryTemplateConstant            = "configuration valid (%s): %d repositories, %d host rules, %d package rules, %d custom managers\n"
	validateWriteErrorTemplateConstant         = "unable to write validation summary: %w"
	embeddedConfigurationPlaceholderConstant   = "embedded defaults"
	validationFailedMessageConstant            = "configuration validation failed"
	logFieldProblemCountConstant               = "problem_count"
)

// ConfigurationFileProvider returns the configuration file that was loaded, or an empty
// string when only the embedded defaults apply.
type ConfigurationFileProvider func() string

// ValidateCommandBuilder assembles the validate command.
type ValidateCommandBuilder struct {
	LoggerProvider               LoggerProvider
	TablesProvider               TablesProvider
	CatalogConfigurationProvider CatalogConfigurationProvider
	ConfigurationFileProvider    ConfigurationFileProvider
}

// Build constructs the validate command.
func (builder *ValidateCommandBuilder) Build() (*cobra.Command, error) {
	return &cobra.Command{
		Use:          validateCommandUseConstant,
		Short:        validateCommandShortDescriptionConstant,
		Long:         validateCommandLongDescriptionConstant,
		SilenceUsage: true,
		RunE:         builder.run,
	}, nil
}

func (builder *ValidateCommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errors.New(validateUnexpectedArgumentsMessageConstant)
	}

	logger := resolveLogger(builder.LoggerProvider)
	tables := resolveTables(builder.TablesProvider)
	repositoryCatalog := catalog.FromConfiguration(resolveCatalogConfiguration(builder.CatalogConfigurationProvider))

	if validationError := Validate(tables, repositoryCatalog); validationError != nil {
		var detailedError *ValidationError
		if errors.As(validationError, &detailedError) {
			logger.Warn(validationFailedMessageConstant, zap.Int(logFieldProblemCountConstant, len(detailedError.Problems)))
		}
		return validationError
	}

	configurationFilePath := ""
	if builder.ConfigurationFileProvider != nil {
		configurationFilePath = builder.ConfigurationFileProvider()
	}
	_, writeError := fmt.Fprintf(
		command.OutOrStdout(),
		validateSummaryTemplateConstant,
		trimmedOrPlaceholder(configurationFilePath, embeddedConfigurationPlaceholderConstant),
		repositoryCatalog.Len(),
		len(tables.HostRules),
		len(tables.PackageRules),
		len(tables.CustomManagers),
	)
	if writeError != nil {
		return fmt.Errorf(validateWriteErrorTemplateConstant, writeError)
	}
	return nil
}
