package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/erauner12/homelab-renovate/internal/catalog"
	"github.com/erauner12/homelab-renovate/internal/engine"
	"github.com/erauner12/homelab-renovate/internal/report"
	"github.com/erauner12/homelab-renovate/internal/selection"
	"github.com/erauner12/homelab-renovate/internal/utils"
	"github.com/erauner12/homelab-renovate/internal/utils/flags"
)

const (
	applicationNameConstant                 = "homelab-renovate"
	applicationShortDescriptionConstant     = "Repository selection and update engine configuration for the homelab"
	applicationLongDescriptionConstant      = "homelab-renovate decides which repositories the dependency update engine processes on each run and renders the engine configuration."
	configFileFlagNameConstant              = "config"
	configFileFlagUsageConstant             = "Optional path to a configuration file (YAML or JSON)."
	logLevelFlagNameConstant                = "log-level"
	logLevelFlagUsageConstant               = "Override the configured log level."
	logFormatFlagNameConstant               = "log-format"
	logFormatFlagUsageConstant              = "Override the configured log format (structured or console)."
	commonConfigurationKeyConstant          = "common"
	commonLogLevelConfigKeyConstant         = commonConfigurationKeyConstant + ".log_level"
	commonLogFormatConfigKeyConstant        = commonConfigurationKeyConstant + ".log_format"
	environmentPrefixConstant               = "HOMELABRENOVATE"
	configurationNameConstant               = "config"
	configurationTypeConstant               = "yaml"
	configurationInitializedMessageConstant = "configuration initialized"
	configurationLogLevelFieldConstant      = "log_level"
	configurationLogFormatFieldConstant     = "log_format"
	configurationFileFieldConstant          = "config_file"
	configurationLoadErrorTemplateConstant  = "unable to load configuration: %w"
	loggerCreationErrorTemplateConstant     = "unable to create logger: %w"
	loggerSyncErrorTemplateConstant         = "unable to flush logger: %w"
)

// ApplicationConfiguration describes the persisted configuration for the CLI entrypoint.
type ApplicationConfiguration struct {
	Common    ApplicationCommonConfiguration `mapstructure:"common"`
	Catalog   catalog.Configuration          `mapstructure:"catalog"`
	Selection selection.Configuration        `mapstructure:"selection"`
	Engine    engine.Tables                  `mapstructure:"engine"`
}

// ApplicationCommonConfiguration stores logging configuration shared across commands.
type ApplicationCommonConfiguration struct {
	LogLevel  string `mapstructure:"log_level"`
	LogFormat string `mapstructure:"log_format"`
}

// Dependencies replaces process-level collaborators. Zero values select the process defaults.
type Dependencies struct {
	EnvironmentLookup utils.EnvironmentLookup
	RandomSource      selection.RandomSource
	LogOutput         io.Writer
}

// Application wires the Cobra root command, configuration loader, and structured logger.
type Application struct {
	rootCommand           *cobra.Command
	configurationLoader   *utils.ConfigurationLoader
	loggerFactory         *utils.LoggerFactory
	logger                *zap.Logger
	configuration         ApplicationConfiguration
	configurationMetadata utils.LoadedConfiguration
	configurationFilePath string
	logLevelFlagValue     string
	logFormatFlagValue    string
	dependencies          Dependencies
}

// NewApplication assembles a fully wired CLI application instance.
func NewApplication() *Application {
	return NewApplicationWithDependencies(Dependencies{})
}

// NewApplicationWithDependencies assembles an application using the provided collaborators.
func NewApplicationWithDependencies(dependencies Dependencies) *Application {
	configurationLoader := utils.NewConfigurationLoader(
		configurationNameConstant,
		configurationTypeConstant,
		environmentPrefixConstant,
		utils.DefaultConfigurationSearchPaths(applicationNameConstant),
	)
	configurationLoader.SetEmbeddedConfiguration(EmbeddedDefaultConfiguration())

	if dependencies.RandomSource == nil {
		dependencies.RandomSource = selection.NewRandomSource()
	}
	dependencies.EnvironmentLookup = utils.ResolveEnvironmentLookup(dependencies.EnvironmentLookup)

	loggerFactory := utils.NewLoggerFactory()
	if dependencies.LogOutput != nil {
		loggerFactory = utils.NewLoggerFactoryWithOutput(dependencies.LogOutput)
	}

	application := &Application{
		configurationLoader: configurationLoader,
		loggerFactory:       loggerFactory,
		logger:              zap.NewNop(),
		dependencies:        dependencies,
	}

	cobraCommand := &cobra.Command{
		Use:           applicationNameConstant,
		Short:         applicationShortDescriptionConstant,
		Long:          applicationLongDescriptionConstant,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(command *cobra.Command, arguments []string) error {
			return application.initializeConfiguration(command)
		},
		RunE: func(command *cobra.Command, arguments []string) error {
			return command.Help()
		},
	}

	cobraCommand.SetContext(context.Background())
	cobraCommand.PersistentFlags().StringVar(&application.configurationFilePath, configFileFlagNameConstant, "", configFileFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logLevelFlagValue, logLevelFlagNameConstant, "", logLevelFlagUsageConstant)
	cobraCommand.PersistentFlags().StringVar(&application.logFormatFlagValue, logFormatFlagNameConstant, "", logFormatFlagUsageConstant)

	application.rootCommand = cobraCommand
	application.registerCommands()

	return application
}

type commandBuilder interface {
	Build() (*cobra.Command, error)
}

func (application *Application) registerCommands() {
	commandBuilders := []commandBuilder{
		&report.CommandBuilder{
			LoggerProvider:                 application.loggerInstance,
			CatalogConfigurationProvider:   application.catalogConfiguration,
			SelectionConfigurationProvider: application.selectionConfiguration,
			EnvironmentLookup:              application.dependencies.EnvironmentLookup,
			RandomSource:                   application.dependencies.RandomSource,
		},
		&engine.RenderCommandBuilder{
			LoggerProvider:                 application.loggerInstance,
			TablesProvider:                 application.engineTables,
			CatalogConfigurationProvider:   application.catalogConfiguration,
			SelectionConfigurationProvider: application.selectionConfiguration,
			EnvironmentLookup:              application.dependencies.EnvironmentLookup,
			RandomSource:                   application.dependencies.RandomSource,
		},
		&engine.ValidateCommandBuilder{
			LoggerProvider:               application.loggerInstance,
			TablesProvider:               application.engineTables,
			CatalogConfigurationProvider: application.catalogConfiguration,
			ConfigurationFileProvider:    application.configurationFileUsed,
		},
		&catalog.CommandBuilder{
			LoggerProvider:        application.loggerInstance,
			ConfigurationProvider: application.catalogConfiguration,
		},
	}

	for _, builder := range commandBuilders {
		subcommand, buildError := builder.Build()
		if buildError == nil {
			application.rootCommand.AddCommand(subcommand)
		}
	}
}

// SetArguments replaces the command-line arguments used by Execute.
func (application *Application) SetArguments(arguments []string) {
	application.rootCommand.SetArgs(append([]string{}, flags.NormalizeToggleArguments(arguments)...))
}

// SetOutput redirects command output.
func (application *Application) SetOutput(writer io.Writer) {
	application.rootCommand.SetOut(writer)
	application.rootCommand.SetErr(writer)
}

// Configuration exposes the configuration loaded for the last execution.
func (application *Application) Configuration() ApplicationConfiguration {
	return application.configuration
}

// Execute runs the configured Cobra command hierarchy and ensures logger flushing.
func (application *Application) Execute() error {
	executionError := application.rootCommand.Execute()
	if syncError := application.flushLogger(); syncError != nil {
		return fmt.Errorf(loggerSyncErrorTemplateConstant, syncError)
	}
	return executionError
}

// Execute builds a fresh application instance and executes the root command hierarchy
// with the process arguments.
func Execute(arguments []string) error {
	application := NewApplication()
	application.SetArguments(arguments)
	return application.Execute()
}

func (application *Application) initializeConfiguration(command *cobra.Command) error {
	defaultValues := map[string]any{
		commonLogLevelConfigKeyConstant:  string(utils.LogLevelInfo),
		commonLogFormatConfigKeyConstant: string(utils.LogFormatConsole),
	}

	loadedConfiguration, loadError := application.configurationLoader.LoadConfiguration(application.configurationFilePath, defaultValues, &application.configuration)
	if loadError != nil {
		return fmt.Errorf(configurationLoadErrorTemplateConstant, loadError)
	}

	application.configurationMetadata = loadedConfiguration

	if application.persistentFlagChanged(command, logLevelFlagNameConstant) {
		application.configuration.Common.LogLevel = application.logLevelFlagValue
	}

	if application.persistentFlagChanged(command, logFormatFlagNameConstant) {
		application.configuration.Common.LogFormat = application.logFormatFlagValue
	}

	logger, loggerCreationError := application.loggerFactory.CreateLogger(
		utils.LogLevel(application.configuration.Common.LogLevel),
		utils.LogFormat(application.configuration.Common.LogFormat),
	)
	if loggerCreationError != nil {
		return fmt.Errorf(loggerCreationErrorTemplateConstant, loggerCreationError)
	}

	application.logger = logger

	application.logger.Debug(
		configurationInitializedMessageConstant,
		zap.String(configurationLogLevelFieldConstant, application.configuration.Common.LogLevel),
		zap.String(configurationLogFormatFieldConstant, application.configuration.Common.LogFormat),
		zap.String(configurationFileFieldConstant, application.configurationMetadata.ConfigFileUsed),
	)

	return nil
}

func (application *Application) loggerInstance() *zap.Logger {
	return application.logger
}

func (application *Application) configurationFileUsed() string {
	return application.configurationMetadata.ConfigFileUsed
}

func (application *Application) catalogConfiguration() catalog.Configuration {
	return application.configuration.Catalog.Sanitize()
}

func (application *Application) selectionConfiguration() selection.Configuration {
	return application.configuration.Selection.Sanitize()
}

func (application *Application) engineTables() engine.Tables {
	return application.configuration.Engine
}

func (application *Application) flushLogger() error {
	if application.logger == nil {
		return nil
	}

	syncError := application.logger.Sync()
	switch {
	case syncError == nil:
		return nil
	case errors.Is(syncError, syscall.ENOTSUP):
		return nil
	case errors.Is(syncError, syscall.EINVAL):
		return nil
	case errors.Is(syncError, syscall.ENOTTY):
		return nil
	default:
		return syncError
	}
}

func (application *Application) persistentFlagChanged(command *cobra.Command, flagName string) bool {
	if command == nil {
		return false
	}

	flagSetsToInspect := []*pflag.FlagSet{
		command.PersistentFlags(),
		command.InheritedFlags(),
	}

	if rootCommand := command.Root(); rootCommand != nil {
		flagSetsToInspect = append(flagSetsToInspect, rootCommand.PersistentFlags())
	}

	for _, flagSet := range flagSetsToInspect {
		if flagSet != nil && flagSet.Changed(flagName) {
			return true
		}
	}

	return false
}
