// Package selection decides which catalog repositories take part in a run.
//
// The decision is driven by three environment inputs evaluated in priority
// order: an explicit override list, a select-all switch, and the current
// branch name. Primary branches process a shuffled subset of the catalog so
// each run stays short; other branches only exercise the self-test repository.
package selection
