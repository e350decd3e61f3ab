// Package cli constructs the homelab-renovate command-line interface. It wires
// the Cobra command hierarchy to the layered configuration loader, the zap
// logger factory, and the selection, report, engine, and catalog commands.
package cli
