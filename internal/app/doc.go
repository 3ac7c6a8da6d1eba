// Package app wires configuration, logging, the input source, the state
// store and the UI into one streamtabs session.
//
// # Lifecycle
//
//  1. Load ~/.config/streamtabs/config.toml and apply command-line overrides
//  2. Open the zap logger (a no-op unless log_file is set)
//  3. Build the state.Store with one tab per filter
//  4. Open the input: standard input, or a followed file
//  5. Run Ingest and the UI in one errgroup; leaving the UI cancels ingestion
//  6. After an explicit quit, interrupt the upstream pipeline when
//     stop_pipeline is enabled
//
// End of input does not end the session. The store records it and the UI keeps
// the buffered lines on screen until the user quits.
package app
