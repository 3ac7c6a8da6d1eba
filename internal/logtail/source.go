package logtail

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

// ErrClosed is returned by Next after Close.
var ErrClosed = errors.New("source closed")

// Source yields text lines one at a time. Next blocks until a line is
// available, the stream ends (io.EOF), ctx is done or the source is closed.
type Source interface {
	Next(ctx context.Context) (string, error)
	Close() error
}

// TrimLine removes one trailing "\n" and then one trailing "\r".
func TrimLine(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

const pumpBuffer = 1024

type result struct {
	text string
	err  error
}

// ReaderSource reads lines from an io.Reader on its own goroutine so Next can
// honour cancellation even while the underlying Read blocks.
type ReaderSource struct {
	lines chan result
	stop  chan struct{}
	once  sync.Once
}

// NewReader starts pumping lines from r. A final line without a newline is
// still delivered before io.EOF.
func NewReader(r io.Reader) *ReaderSource {
	s := &ReaderSource{
		lines: make(chan result, pumpBuffer),
		stop:  make(chan struct{}),
	}
	go s.pump(bufio.NewReaderSize(r, 64*1024))
	return s
}

func (s *ReaderSource) pump(r *bufio.Reader) {
	defer close(s.lines)
	for {
		raw, err := r.ReadString('\n')
		if raw != "" {
			select {
			case s.lines <- result{text: TrimLine(raw)}:
			case <-s.stop:
				return
			}
		}
		if err == nil {
			continue
		}
		if !errors.Is(err, io.EOF) {
			select {
			case s.lines <- result{err: err}:
			case <-s.stop:
			}
		}
		return
	}
}

// Next returns the next line.
func (s *ReaderSource) Next(ctx context.Context) (string, error) {
	select {
	case <-s.stop:
		return "", ErrClosed
	default:
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-s.stop:
		return "", ErrClosed
	case r, ok := <-s.lines:
		if !ok {
			return "", io.EOF
		}
		if r.err != nil {
			return "", r.err
		}
		return r.text, nil
	}
}

// Close stops delivery. A Read already blocked in the pump is abandoned; it
// returns when the process exits or the writer closes the stream.
func (s *ReaderSource) Close() error {
	s.once.Do(func() { close(s.stop) })
	return nil
}
