package tokens

import (
	"context"
	"time"

	"github.com/dmitrijs2005/gophauth/internal/logging"
)

// Sweeper periodically drops expired sessions from a Store.
type Sweeper struct {
	store    *Store
	interval time.Duration
	logger   logging.Logger
	now      func() time.Time
}

// NewSweeper returns a sweeper that visits store every interval.
func NewSweeper(store *Store, interval time.Duration, logger logging.Logger) *Sweeper {
	return &Sweeper{
		store:    store,
		interval: interval,
		logger:   logger.With("module", "tokens.sweeper"),
		now:      time.Now,
	}
}

// Run blocks until ctx is cancelled. It returns immediately when the store has
// no TTL or the interval is not positive.
func (w *Sweeper) Run(ctx context.Context) error {
	if w.store.TTL() <= 0 || w.interval <= 0 {
		w.logger.Debug(ctx, "session expiry disabled, sweeper not started")
		return nil
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if n := w.store.Sweep(w.now()); n > 0 {
				w.logger.Info(ctx, "expired sessions removed", "count", n)
			}
		}
	}
}
