// Package await adapts sigq.PopHandle to ordinary goroutine code. It plays
// the role of the external scheduler: Receive and ReceiveContext drive a
// handle's poll loop, parking the calling goroutine on a channel between
// wakeups instead of blocking inside the queue.
package await

import (
	"context"

	"github.com/xyhelper/sigq"
)

// Receive drives h until it yields an item and returns it. The calling
// goroutine parks between polls; it holds no queue lock while parked, so
// producers and other consumers proceed freely. Receive blocks indefinitely
// if nothing is ever pushed.
func Receive[T any](h *sigq.PopHandle[T]) T {
	for {
		wake := make(chan struct{}, 1)
		v, ok := h.Poll(func() {
			select {
			case wake <- struct{}{}:
			default:
			}
		})
		if ok {
			return v
		}
		<-wake
	}
}

// ReceiveContext is Receive with a bounded wait. When ctx is done before an
// item arrives, it returns the zero value and ctx.Err(). Only this call's
// wait is abandoned: the handle itself stays pending and may be driven again
// later (its queued wakeup remains registered until a push fires it).
func ReceiveContext[T any](ctx context.Context, h *sigq.PopHandle[T]) (T, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	for {
		wake := make(chan struct{}, 1)
		v, ok := h.Poll(func() {
			select {
			case wake <- struct{}{}:
			default:
			}
		})
		if ok {
			return v, nil
		}
		select {
		case <-wake:
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}
