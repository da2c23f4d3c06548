package app

import (
	"context"
	"time"
)

// withTimeout runs fn under a derived deadline. A zero timeout keeps the
// parent deadline.
func withTimeout[T any](parent context.Context, timeout time.Duration, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T
	if err := parent.Err(); err != nil {
		return zero, err
	}
	if timeout <= 0 {
		return fn(parent)
	}
	ctx, cancel := context.WithTimeout(parent, timeout)
	defer cancel()
	return fn(ctx)
}
