package logtail

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/hpcloud/tail"
	"go.uber.org/zap"
)

// FollowOptions configure Follow.
type FollowOptions struct {
	// Backfill is how many existing lines to deliver before new ones.
	Backfill int
	// Poll watches the file by polling instead of inotify.
	Poll   bool
	Logger *zap.Logger
}

// FollowSource delivers the last lines of a file and then everything
// appended to it, reopening the file when it is rotated.
type FollowSource struct {
	backfill []string
	t        *tail.Tail
	once     sync.Once
	stop     chan struct{}
}

// Follow starts tailing path. A missing file is waited for.
func Follow(path string, opts FollowOptions) (*FollowSource, error) {
	lines, offset, err := Read(path, opts.Backfill)
	if err != nil {
		return nil, err
	}

	cfg := tail.Config{
		Location:  &tail.SeekInfo{Offset: offset, Whence: io.SeekStart},
		ReOpen:    true,
		MustExist: false,
		Follow:    true,
		Poll:      opts.Poll,
		Logger:    tail.DiscardingLogger,
	}
	if opts.Logger != nil {
		cfg.Logger = zap.NewStdLog(opts.Logger.Named("tail"))
	}

	t, err := tail.TailFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("follow %s: %w", path, err)
	}
	return &FollowSource{backfill: lines, t: t, stop: make(chan struct{})}, nil
}

// Next returns backfilled lines first, then new ones as they are written.
func (f *FollowSource) Next(ctx context.Context) (string, error) {
	select {
	case <-f.stop:
		return "", ErrClosed
	default:
	}
	if len(f.backfill) > 0 {
		line := f.backfill[0]
		f.backfill = f.backfill[1:]
		return line, nil
	}
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-f.stop:
		return "", ErrClosed
	case line, ok := <-f.t.Lines:
		if !ok {
			<-f.t.Dead()
			if err := f.t.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		if line.Err != nil {
			return "", line.Err
		}
		return TrimLine(line.Text), nil
	}
}

// Close stops the tailer and releases its watches.
func (f *FollowSource) Close() error {
	var err error
	f.once.Do(func() {
		close(f.stop)
		err = f.t.Stop()
		f.t.Cleanup()
	})
	return err
}
