// Package ratelimit counts requests per key in Redis sliding windows.
package ratelimit

import (
	"context"
	"time"
)

// Window allows at most Limit requests within any Period.
type Window struct {
	Limit  int
	Period time.Duration
}

type Limiter interface {
	// Allow records one request for key and reports whether it fits every
	// window.
	Allow(ctx context.Context, key string) (bool, error)
}
