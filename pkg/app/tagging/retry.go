package tagging

import (
	"context"
	"errors"
	"math/rand/v2"
	"time"

	"github.com/NeuralTrust/TrustTag/pkg/domain"
)

// RetryPolicy re-runs a collaborator call that failed with
// domain.ErrCollaboratorUnavailable. Other errors are returned at once.
type RetryPolicy struct {
	MaxRetries int
	BaseDelay  time.Duration
}

func (p RetryPolicy) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	var err error
	for attempt := 0; ; attempt++ {
		err = fn(ctx)
		if err == nil || !errors.Is(err, domain.ErrCollaboratorUnavailable) || attempt >= p.MaxRetries {
			return err
		}

		timer := time.NewTimer(p.backoff(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return err
		case <-timer.C:
		}
	}
}

// backoff doubles the base delay per attempt and adds up to one base delay of jitter.
func (p RetryPolicy) backoff(attempt int) time.Duration {
	if p.BaseDelay <= 0 {
		return 0
	}
	delay := p.BaseDelay << attempt
	return delay + time.Duration(rand.Int64N(int64(p.BaseDelay)))
}
