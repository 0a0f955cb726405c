// Package cli defines the Cobra command tree for the upmkit CLI. Each file
// in this package builds one top-level command (create, plan, validate, etc.)
// and the root command wires them together. Command implementations delegate
// to internal packages for business logic and only handle flag parsing, I/O
// formatting, and user interaction.
package cli
