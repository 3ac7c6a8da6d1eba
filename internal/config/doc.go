// Package config loads the streamtabs configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/streamtabs/config.toml
//  3. If the file doesn't exist, use Default()
//  4. Keys that are absent or blank keep their defaults
//
// # TOML Format
//
//	capacity = 5000          # lines kept per tab
//	refresh_ms = 50          # render tick
//	theme = "Nightfox"       # Nightfox, Kanagawa or Slate
//	log_file = "~/.local/state/streamtabs.log"
//	log_level = "info"       # debug, info, warn or error
//	stop_pipeline = true     # interrupt the upstream pipeline on quit
//
// String values are trimmed and log_file gets tilde expansion. A non-positive
// capacity or refresh_ms is rejected rather than silently replaced.
//
// # Error Handling
//
// Load returns errors for path expansion failures, read errors other than
// os.ErrNotExist, TOML parse errors and out-of-range numbers. Command-line
// flags are applied on top of the loaded Config by the caller.
package config
