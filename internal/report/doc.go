// Package report renders the repository selection of a run as a
// human-readable summary and wires the pick command that prints it.
package report
