package stats

import (
	"context"
	"time"

	"github.com/sourcegraph/conc/pool"
	"go.uber.org/zap"

	"github.com/voxadev/voxa-assist-go/internal/storage"
)

// Recorder writes interaction records off the request path. Failures are
// logged and dropped; statistics never delay or break an answer.
type Recorder struct {
	store  *storage.PostgresStore
	pool   *pool.Pool
	logger *zap.Logger
}

func NewRecorder(store *storage.PostgresStore, logger *zap.Logger) *Recorder {
	return &Recorder{
		store:  store,
		pool:   pool.New().WithMaxGoroutines(4),
		logger: logger,
	}
}

// RecordAsync queues one interaction record.
func (r *Recorder) RecordAsync(rec storage.InteractionRecord) {
	if r.store == nil {
		return
	}
	r.pool.Go(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := r.store.RecordInteraction(ctx, rec); err != nil {
			r.logger.Warn("interaction record dropped",
				zap.String("command", rec.Command),
				zap.Error(err))
		}
	})
}

// Close drains the queue.
func (r *Recorder) Close() {
	r.pool.Wait()
}
