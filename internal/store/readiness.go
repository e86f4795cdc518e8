package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff"
	"go.uber.org/zap"
)

const pingTimeout = 3 * time.Second

var ErrStoreUnavailable = errors.New("store unavailable")

type Pinger interface {
	Ping(ctx context.Context) error
}

// WaitReady pings the store up to attempts times, waiting between probes as b says.
// It returns ErrStoreUnavailable when the store never answered.
func WaitReady(ctx context.Context, p Pinger, attempts int, b backoff.BackOff) error {
	if attempts < 1 {
		return fmt.Errorf("invalid attempts number: %d", attempts)
	}

	lg := zap.L().Named("store")

	var probes int
	op := func() error {
		probes++

		ctx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		return p.Ping(ctx)
	}
	notify := func(err error, next time.Duration) {
		lg.Warn("store is not ready",
			zap.Int("attempt", probes),
			zap.Int("attempts", attempts),
			zap.Duration("retry_in", next),
			zap.Error(err))
	}

	// WithMaxRetries treats zero as "no limit".
	if attempts == 1 {
		b = &backoff.StopBackOff{}
	} else {
		b = backoff.WithMaxRetries(b, uint64(attempts-1))
	}

	policy := backoff.WithContext(b, ctx)
	if err := backoff.RetryNotify(op, policy, notify); err != nil {
		return fmt.Errorf("%w after %d attempts: %v", ErrStoreUnavailable, probes, err)
	}

	lg.Info("store is ready", zap.Int("attempt", probes))
	return nil
}
