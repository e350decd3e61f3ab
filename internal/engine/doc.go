// Package engine assembles the configuration object consumed by the
// dependency-update engine.
//
// Policy tables (host rules, package rules, custom managers, scheduling and
// dashboard settings) are loaded from configuration as Tables and combined
// with the repository selection of the run by Build. Credentials referenced
// by host rules are read from environment variables and passed through
// unchanged. Encode writes the result as JSON or YAML, and Validate checks
// the tables before they reach the engine.
package engine
