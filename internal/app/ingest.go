package app

import (
	"context"
	"errors"
	"io"

	"go.uber.org/zap"

	"github.com/five82/streamtabs/internal/logtail"
	"github.com/five82/streamtabs/internal/state"
)

// Ingest feeds every line from src into the store until the stream ends or
// ctx is cancelled. End of stream and read failures are recorded on the store
// and are not returned: the buffered lines stay browsable either way.
func Ingest(ctx context.Context, store *state.Store, src logtail.Source, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	var count uint64
	for {
		line, err := src.Next(ctx)
		if err == nil {
			store.Ingest(line)
			count++
			continue
		}

		switch {
		case errors.Is(err, io.EOF):
			logger.Info("input ended", zap.Uint64("lines", count))
			store.MarkEnded(nil)
		case ctx.Err() != nil, errors.Is(err, logtail.ErrClosed):
			logger.Debug("ingest stopped", zap.Uint64("lines", count))
		default:
			logger.Warn("read input", zap.Uint64("lines", count), zap.Error(err))
			store.MarkEnded(err)
		}
		return nil
	}
}
