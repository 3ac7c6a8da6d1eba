// Package pipeline stops the producers feeding streamtabs when the user quits.
//
// With job control, a shell puts every command of a pipeline such as
//
//	tail -f app.log | grep -v health | streamtabs error warn
//
// into one process group distinct from the shell's. Closing the viewer alone
// would leave tail running until its next write fails, so on quit StopGroup
// sends SIGINT to the whole group. When the viewer shares its parent's group
// (no job control, or started from a script) nothing is sent.
package pipeline
