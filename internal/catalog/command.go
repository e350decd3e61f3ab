package catalog

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	catalogCommandUseConstant               = "catalog"
	catalogCommandShortDescriptionConstant  = "List every repository managed by the update engine"
	catalogCommandLongDescriptionConstant   = "catalog prints the configured repository catalog in display order and marks the self-test repository."
	unexpectedArgumentsErrorMessageConstant = "catalog does not accept positional arguments"
	catalogEntryTemplateConstant            = "%2d. %s%s\n"
	selfTestMarkerConstant                  = " (self-test)"
	catalogWriteErrorTemplateConstant       = "unable to write catalog: %w"
	catalogListedMessageConstant            = "catalog listed"
	logFieldRepositoryCountConstant         = "repository_count"
)

// LoggerProvider supplies a zap logger instance.
type LoggerProvider func() *zap.Logger

// ConfigurationProvider returns the current catalog configuration.
type ConfigurationProvider func() Configuration

// CommandBuilder assembles the catalog command.
type CommandBuilder struct {
	LoggerProvider        LoggerProvider
	ConfigurationProvider ConfigurationProvider
}

// Build constructs the catalog command.
func (builder *CommandBuilder) Build() (*cobra.Command, error) {
	return &cobra.Command{
		Use:          catalogCommandUseConstant,
		Short:        catalogCommandShortDescriptionConstant,
		Long:         catalogCommandLongDescriptionConstant,
		SilenceUsage: true,
		RunE:         builder.run,
	}, nil
}

func (builder *CommandBuilder) run(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errors.New(unexpectedArgumentsErrorMessageConstant)
	}

	var configuration Configuration
	if builder.ConfigurationProvider != nil {
		configuration = builder.ConfigurationProvider()
	}
	repositoryCatalog := FromConfiguration(configuration)

	outputWriter := command.OutOrStdout()
	for repositoryIndex, repository := range repositoryCatalog.Repositories() {
		marker := ""
		if repository == repositoryCatalog.SelfTestRepository() {
			marker = selfTestMarkerConstant
		}
		if _, writeError := fmt.Fprintf(outputWriter, catalogEntryTemplateConstant, repositoryIndex+1, repository, marker); writeError != nil {
			return fmt.Errorf(catalogWriteErrorTemplateConstant, writeError)
		}
	}

	builder.resolveLogger().Debug(catalogListedMessageConstant, zap.Int(logFieldRepositoryCountConstant, repositoryCatalog.Len()))
	return nil
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
