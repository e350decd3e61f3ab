// Package utils exposes reusable helpers consumed by multiple commands.
//
// It houses the Viper-backed ConfigurationLoader, the zap LoggerFactory,
// environment lookups used to read selection inputs, and small command
// plumbing such as the flushing writer and command context accessor.
package utils
