// Package cli defines the Cobra command tree for the studioutils CLI. Each
// file in this package registers one top-level command (dashboard, tools,
// open, serve, etc.) with the root command. Commands delegate to internal
// packages for catalog, filtering, launching and rendering, and only handle
// flag parsing, I/O formatting and user interaction.
package cli
