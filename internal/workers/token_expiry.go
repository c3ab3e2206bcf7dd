// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-edu-resources/internal/logger"
)

// DefaultTokenExpiryInterval is used for a zero or negative interval.
const DefaultTokenExpiryInterval = time.Minute

// TokenExpiryWorker invalidates the session as soon as its token's exp
// claim passed, so the front-end falls back to the login screen without
// waiting for a rejected request.
type TokenExpiryWorker struct {
	session  Expirer
	interval time.Duration
	logger   *logger.Logger
	now      func() time.Time
}

// NewTokenExpiryWorker constructs a TokenExpiryWorker checking every
// interval.
func NewTokenExpiryWorker(session Expirer, interval time.Duration, logger *logger.Logger) *TokenExpiryWorker {
	if interval <= 0 {
		interval = DefaultTokenExpiryInterval
	}

	return &TokenExpiryWorker{
		session:  session,
		interval: interval,
		logger:   logger,
		now:      time.Now,
	}
}

// Run implements [Worker]. It checks once right away and then on every tick
// until ctx is cancelled.
func (w *TokenExpiryWorker) Run(ctx context.Context) {
	t := time.NewTicker(w.interval)
	defer t.Stop()

	w.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			w.check(ctx)
		}
	}
}

func (w *TokenExpiryWorker) check(ctx context.Context) {
	expired, err := w.session.ExpireIfStale(ctx, w.now())
	if err != nil {
		w.logger.Err(err).Msg("token expiry check failed")
		return
	}
	if expired {
		w.logger.Info().Msg("session expired")
	}
}
