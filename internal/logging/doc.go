// Package logging builds the zap logger used across streamtabs. Output goes
// to a file only, because the alternate screen owns the terminal.
package logging
