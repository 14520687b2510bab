package assistant

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/dom/pickup-hoops/internal/balancing"
)

const (
	defaultRetryAttempts = 2
	defaultBackoff       = 200 * time.Millisecond
)

// retryingAssistant wraps an Assistant with retry/backoff behavior.
// Permanent status errors are returned without retrying.
type retryingAssistant struct {
	inner       balancing.Assistant
	maxAttempts int
	backoffFn   func(attempt int) time.Duration
}

// NewRetrying wraps the given assistant with retries. If maxAttempts/backoff are <= 0, defaults are used.
func NewRetrying(inner balancing.Assistant, maxAttempts int, backoff time.Duration) balancing.Assistant {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingAssistant{
		inner:       inner,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingAssistant) Propose(ctx context.Context, req balancing.AssistRequest) ([][]string, error) {
	var lastErr error

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		teams, err := r.inner.Propose(ctx, req)
		if err == nil {
			return teams, nil
		}
		lastErr = err

		var statusErr *StatusError
		if errors.As(err, &statusErr) && statusErr.Permanent() {
			log.Printf("WARN [assistant.Propose] %s rejected with status %d, not retrying", req.Strategy, statusErr.StatusCode)
			return nil, err
		}
		if attempt == r.maxAttempts {
			break
		}

		log.Printf("WARN [assistant.Propose] attempt %d/%d for %s failed: %v", attempt, r.maxAttempts, req.Strategy, err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(r.backoffFn(attempt)):
		}
	}

	return nil, lastErr
}
