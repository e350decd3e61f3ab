package utils

import "os"

// EnvironmentLookup obtains an environment variable value.
type EnvironmentLookup func(key string) (string, bool)

// ResolveEnvironmentLookup returns the provided lookup or os.LookupEnv when none is configured.
func ResolveEnvironmentLookup(environmentLookup EnvironmentLookup) EnvironmentLookup {
	if environmentLookup == nil {
		return os.LookupEnv
	}
	return environmentLookup
}

// MapEnvironmentLookup serves environment values from a fixed map.
func MapEnvironmentLookup(values map[string]string) EnvironmentLookup {
	return func(key string) (string, bool) {
		value, exists := values[key]
		return value, exists
	}
}
