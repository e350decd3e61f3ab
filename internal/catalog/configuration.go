package catalog

import "strings"

// Configuration stores the catalog as read from configuration files.
type Configuration struct {
	Repositories       []string `mapstructure:"repositories"`
	SelfTestRepository string   `mapstructure:"self_test_repository"`
}

// Sanitize trims configured identifiers and removes empty entries.
func (configuration Configuration) Sanitize() Configuration {
	sanitized := configuration
	sanitized.SelfTestRepository = strings.TrimSpace(configuration.SelfTestRepository)

	sanitizedRepositories := make([]string, 0, len(configuration.Repositories))
	for _, repository := range configuration.Repositories {
		trimmedRepository := strings.TrimSpace(repository)
		if len(trimmedRepository) == 0 {
			continue
		}
		sanitizedRepositories = append(sanitizedRepositories, trimmedRepository)
	}
	sanitized.Repositories = sanitizedRepositories

	return sanitized
}
