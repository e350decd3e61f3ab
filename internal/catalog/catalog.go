package catalog

import (
	"errors"
	"fmt"
	"strings"
)

const (
	duplicateRepositoryReasonTemplateConstant = "repository %s is listed more than once"
	selfTestMissingReasonTemplateConstant     = "self-test repository %s is not part of the catalog"
	selfTestEmptyReasonConstant               = "self-test repository is not configured"
)

// Catalog is the ordered set of repositories known to the update engine.
type Catalog struct {
	repositories       []RepositoryIdentifier
	selfTestRepository RepositoryIdentifier
}

// New builds a Catalog from the provided identifiers in display order.
func New(repositories []RepositoryIdentifier, selfTestRepository RepositoryIdentifier) Catalog {
	duplicatedRepositories := make([]RepositoryIdentifier, len(repositories))
	copy(duplicatedRepositories, repositories)
	return Catalog{repositories: duplicatedRepositories, selfTestRepository: selfTestRepository}
}

// FromConfiguration builds a Catalog from sanitized configuration values.
func FromConfiguration(configuration Configuration) Catalog {
	sanitized := configuration.Sanitize()
	repositories := make([]RepositoryIdentifier, 0, len(sanitized.Repositories))
	for _, repository := range sanitized.Repositories {
		repositories = append(repositories, RepositoryIdentifier(repository))
	}
	return New(repositories, RepositoryIdentifier(sanitized.SelfTestRepository))
}

// Repositories returns a copy of the catalog in display order.
func (catalog Catalog) Repositories() []RepositoryIdentifier {
	duplicatedRepositories := make([]RepositoryIdentifier, len(catalog.repositories))
	copy(duplicatedRepositories, catalog.repositories)
	return duplicatedRepositories
}

// Len reports the number of catalog entries.
func (catalog Catalog) Len() int {
	return len(catalog.repositories)
}

// SelfTestRepository returns the repository used for validation runs on non-primary branches.
func (catalog Catalog) SelfTestRepository() RepositoryIdentifier {
	return catalog.selfTestRepository
}

// Contains reports whether the identifier is part of the catalog.
func (catalog Catalog) Contains(identifier RepositoryIdentifier) bool {
	for _, repository := range catalog.repositories {
		if repository == identifier {
			return true
		}
	}
	return false
}

// Difference returns catalog entries absent from the selection, preserving catalog order.
func (catalog Catalog) Difference(selection []RepositoryIdentifier) []RepositoryIdentifier {
	selected := make(map[RepositoryIdentifier]struct{}, len(selection))
	for _, identifier := range selection {
		selected[identifier] = struct{}{}
	}

	remaining := make([]RepositoryIdentifier, 0, len(catalog.repositories))
	for _, repository := range catalog.repositories {
		if _, isSelected := selected[repository]; isSelected {
			continue
		}
		remaining = append(remaining, repository)
	}
	return remaining
}

// Validate reports malformed identifiers, duplicates, and a missing self-test repository.
func (catalog Catalog) Validate() []error {
	var problems []error
	seen := make(map[RepositoryIdentifier]struct{}, len(catalog.repositories))

	for _, repository := range catalog.repositories {
		if _, parseError := ParseRepositoryIdentifier(repository.String()); parseError != nil {
			problems = append(problems, parseError)
		}
		if _, duplicate := seen[repository]; duplicate {
			problems = append(problems, fmt.Errorf(duplicateRepositoryReasonTemplateConstant, repository))
			continue
		}
		seen[repository] = struct{}{}
	}

	switch {
	case len(strings.TrimSpace(catalog.selfTestRepository.String())) == 0:
		problems = append(problems, errors.New(selfTestEmptyReasonConstant))
	case !catalog.Contains(catalog.selfTestRepository):
		problems = append(problems, fmt.Errorf(selfTestMissingReasonTemplateConstant, catalog.selfTestRepository))
	}

	return problems
}
