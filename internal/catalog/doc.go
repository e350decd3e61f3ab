// Package catalog holds the ordered list of repositories managed by the
// update engine together with the designated self-test repository.
//
// Catalog values are immutable once constructed; accessors return copies so
// callers can reorder or slice results freely.
package catalog
