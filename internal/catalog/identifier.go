package catalog

import (
	"fmt"
	"strings"
	"unicode"
)

const (
	repositoryIdentifierSeparatorConstant      = "/"
	emptyIdentifierReasonConstant              = "identifier is empty"
	missingSeparatorReasonConstant             = "identifier must have the owner/name shape"
	emptyOwnerReasonConstant                   = "owner segment is empty"
	emptyNameReasonConstant                    = "name segment is empty"
	whitespaceReasonConstant                   = "identifier contains whitespace"
	invalidIdentifierErrorTemplateConstant     = "invalid repository identifier %q: %s"
	repositoryIdentifierExpectedSegmentsNumber = 2
)

// RepositoryIdentifier is an opaque owner/name repository reference.
type RepositoryIdentifier string

// String returns the identifier text.
func (identifier RepositoryIdentifier) String() string {
	return string(identifier)
}

// InvalidIdentifierError reports a repository identifier that does not have the owner/name shape.
type InvalidIdentifierError struct {
	Value  string
	Reason string
}

// Error describes the invalid identifier.
func (invalidIdentifierError InvalidIdentifierError) Error() string {
	return fmt.Sprintf(invalidIdentifierErrorTemplateConstant, invalidIdentifierError.Value, invalidIdentifierError.Reason)
}

// ParseRepositoryIdentifier trims and validates an owner/name identifier.
func ParseRepositoryIdentifier(rawIdentifier string) (RepositoryIdentifier, error) {
	trimmedIdentifier := strings.TrimSpace(rawIdentifier)
	if len(trimmedIdentifier) == 0 {
		return "", InvalidIdentifierError{Value: rawIdentifier, Reason: emptyIdentifierReasonConstant}
	}

	if strings.IndexFunc(trimmedIdentifier, unicode.IsSpace) >= 0 {
		return "", InvalidIdentifierError{Value: rawIdentifier, Reason: whitespaceReasonConstant}
	}

	segments := strings.Split(trimmedIdentifier, repositoryIdentifierSeparatorConstant)
	if len(segments) != repositoryIdentifierExpectedSegmentsNumber {
		return "", InvalidIdentifierError{Value: rawIdentifier, Reason: missingSeparatorReasonConstant}
	}
	if len(segments[0]) == 0 {
		return "", InvalidIdentifierError{Value: rawIdentifier, Reason: emptyOwnerReasonConstant}
	}
	if len(segments[1]) == 0 {
		return "", InvalidIdentifierError{Value: rawIdentifier, Reason: emptyNameReasonConstant}
	}

	return RepositoryIdentifier(trimmedIdentifier), nil
}

// Strings converts identifiers to their textual form.
func Strings(identifiers []RepositoryIdentifier) []string {
	values := make([]string, 0, len(identifiers))
	for _, identifier := range identifiers {
		values = append(values, identifier.String())
	}
	return values
}
