package service

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/pfaswatch/zipcheck/internal/core/ports"
)

const defaultRefreshInterval = time.Hour

// Refresher periodically reloads the contamination dataset so a long-running
// process picks up new records without a restart. A failed reload logs and
// keeps the previous snapshot serving.
type Refresher struct {
	loader   ports.DatasetLoader
	clock    clockwork.Clock
	interval time.Duration
	log      zerolog.Logger
}

// NewRefresher builds a Refresher around the given loader. The clock is
// injectable so tests can drive ticks deterministically. If interval <= 0,
// defaultRefreshInterval is used.
func NewRefresher(loader ports.DatasetLoader, clock clockwork.Clock, interval time.Duration, log zerolog.Logger) *Refresher {
	if interval <= 0 {
		interval = defaultRefreshInterval
	}
	return &Refresher{loader: loader, clock: clock, interval: interval, log: log}
}

// Run reloads the dataset every interval until ctx is cancelled. Call it in
// its own goroutine after the initial Load has succeeded.
func (r *Refresher) Run(ctx context.Context) {
	ticker := r.clock.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			if err := r.loader.Load(ctx); err != nil {
				r.log.Error().Err(err).Msg("dataset refresh failed, keeping previous snapshot")
				continue
			}
			r.log.Debug().Msg("dataset refreshed")
		}
	}
}
