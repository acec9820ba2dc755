package sigq

// Advanced: Driving PopHandle From a Scheduler
//
// PopHandle deliberately exposes only a poll step, so it can be embedded in
// any cooperative scheduling model: an event loop, a task executor, or a
// plain goroutine parked on a channel. The protocol is "wake hint,
// re-check":
//
//   - Poll with a wakeup callback. If an item is ready it is returned and
//     the handle is finished.
//   - If not, the callback is registered and Poll returns immediately; the
//     calling context is free to run other work.
//   - A later Push invokes the callback (at most once per registration).
//     The callback must only schedule a re-poll; it must not assume an item
//     is reserved, because a blocking Pop or another handle may take it
//     first. The re-poll either completes or registers a fresh wakeup.
//
// Design notes:
//   - Keep the callback cheap and non-blocking. It runs on the pusher's
//     goroutine, after the queue's lock is released.
//   - Re-polling a still-pending handle replaces its stored callback; a
//     handle never occupies more than one wakeup slot.
//   - Abandoning a pending handle leaks its registration until the next
//     push not claimed by a blocked Pop fires it. The fire is harmless (it
//     wakes nothing), but that one wake hint is spent; other pending
//     handles see it as an ordinary lost race and recover on their next
//     push.
//
// Minimal goroutine-based driver (see the await sub-package for a packaged
// version with context support):
//
//	h := q.APop()
//	for {
//		wake := make(chan struct{}, 1)
//		v, ok := h.Poll(func() {
//			select {
//			case wake <- struct{}{}:
//			default:
//			}
//		})
//		if ok {
//			// use v
//			break
//		}
//		<-wake
//	}
