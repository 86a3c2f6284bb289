package core

import (
	"context"
	"time"
)

// TimeProvider abstracts time operations so use cases and the session store
// can be tested against a pinned clock.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
	WithTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc)
}
