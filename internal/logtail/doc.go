// Package logtail provides the line sources streamtabs reads from.
//
// # Overview
//
// A Source hands out one text line per Next call. Two implementations exist:
//
//  1. ReaderSource: any io.Reader, normally standard input
//  2. FollowSource: a file followed like tail -F, with optional backfill
//
// Both strip one trailing "\n" and then one trailing "\r" from every line and
// keep a final line that has no newline.
//
// # Cancellation
//
// A blocking Read on a pipe cannot be interrupted. ReaderSource therefore runs
// the read loop on its own goroutine and feeds a bounded channel; Next selects
// on that channel, the context and Close. The pump goroutine may stay blocked
// in Read after Close until the writer goes away, which is harmless because
// the process is exiting by then.
//
// # Backfill
//
// Read extracts the last N complete lines of a file in one pass using a ring
// of N slots, and reports the offset right after the last newline:
//
//	lines, offset, err := logtail.Read("/var/log/app.log", 200)
//
// Follow delivers those lines first and then tails from offset, so no line is
// delivered twice and a half-written last line is delivered once complete.
//
// # Error Handling
//
// Read returns nil, 0, nil for a missing file; Follow then waits for it to
// appear. Other I/O errors are wrapped with the path. Next reports io.EOF at
// the end of the stream, ctx.Err() on cancellation and ErrClosed after Close.
package logtail
