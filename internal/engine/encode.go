package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	formatJSONValueConstant           = "json"
	formatYAMLValueConstant           = "yaml"
	formatYMLAliasConstant            = "yml"
	encodedIndentConstant             = "  "
	encodedYAMLIndentNumber           = 2
	unsupportedFormatTemplateConstant = "unsupported output format %q"
	jsonEncodeErrorTemplateConstant   = "unable to encode configuration as JSON: %w"
	yamlEncodeErrorTemplateConstant   = "unable to encode configuration as YAML: %w"
	yamlFinalizeErrorTemplateConstant = "unable to finalize YAML output: %w"
)

// Format enumerates supported configuration encodings.
type Format string

// Supported output formats.
const (
	FormatJSON Format = Format(formatJSONValueConstant)
	FormatYAML Format = Format(formatYAMLValueConstant)
)

// SupportedFormats lists the accepted format names.
func SupportedFormats() []string {
	return []string{formatJSONValueConstant, formatYAMLValueConstant}
}

// ParseFormat normalizes a textual format name.
func ParseFormat(rawFormat string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(rawFormat)) {
	case "", formatJSONValueConstant:
		return FormatJSON, nil
	case formatYAMLValueConstant, formatYMLAliasConstant:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf(unsupportedFormatTemplateConstant, rawFormat)
	}
}

// Encode writes the configuration in the requested format.
func Encode(writer io.Writer, configuration Configuration, format Format) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", encodedIndentConstant)
		encoder.SetEscapeHTML(false)
		if encodeError := encoder.Encode(configuration); encodeError != nil {
			return fmt.Errorf(jsonEncodeErrorTemplateConstant, encodeError)
		}
		return nil
	case FormatYAML:
		encoder := yaml.NewEncoder(writer)
		encoder.SetIndent(encodedYAMLIndentNumber)
		if encodeError := encoder.Encode(configuration); encodeError != nil {
			return fmt.Errorf(yamlEncodeErrorTemplateConstant, encodeError)
		}
		if closeError := encoder.Close(); closeError != nil {
			return fmt.Errorf(yamlFinalizeErrorTemplateConstant, closeError)
		}
		return nil
	default:
		return fmt.Errorf(unsupportedFormatTemplateConstant, format)
	}
}
