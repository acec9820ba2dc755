package sigq

// PopHandle is a single-use, poll-based dequeue request created by
// Queue.APop. It is intended for cooperative schedulers that cannot afford
// to block a thread: each Poll either completes with an item or registers a
// wakeup callback and returns immediately.
//
// The wakeup is a hint, not a delivery. When the callback fires, the handle
// has not dequeued anything; the scheduler must poll again, and that poll may
// find the buffer empty because another consumer won the race. Stale or
// spurious wakes therefore cost extra poll cycles but never produce a wrong
// result.
//
// A handle completes exactly once. Polling after completion is a contract
// violation and panics. A handle must be driven from one scheduling context
// at a time; concurrent Poll calls on the same handle are not supported.
type PopHandle[T any] struct {
	q    *Queue[T]
	w    *waker // current registration, nil before the first empty poll
	done bool
}

// Poll attempts to dequeue the head item.
//
// If the buffer is non-empty, Poll removes the head and returns it with
// ok=true; this fast path allocates nothing and wake is not retained. If the
// buffer is empty, Poll records wake and returns ok=false; a later Push will
// invoke wake at most once, after which the scheduler should call Poll again.
//
// Re-polling while a previous registration is still pending replaces the
// stored callback rather than registering a second waker, so a handle holds
// at most one wakeup slot in the queue at any time.
func (h *PopHandle[T]) Poll(wake func()) (v T, ok bool) {
	if h.done {
		panic("sigq: Poll called on completed PopHandle")
	}
	q := h.q
	q.mu.Lock()
	if len(q.items) > 0 {
		v = q.items[0]
		q.items = q.items[1:]
		h.done = true
		if h.w != nil && h.w.queued {
			q.removeWakerLocked(h.w)
		}
		q.mu.Unlock()
		return v, true
	}
	if h.w != nil && h.w.queued {
		h.w.fn = wake
	} else {
		h.w = &waker{fn: wake, queued: true}
		q.wakers = append(q.wakers, h.w)
	}
	q.mu.Unlock()
	return v, false
}

// Done reports whether the handle has already yielded its item. Once true,
// the handle must not be polled again.
func (h *PopHandle[T]) Done() bool {
	return h.done
}

// removeWakerLocked drops w from the registration list. Completed handles
// deregister themselves so an obsolete waker cannot swallow a wake that a
// live waiter needs. O(n) in the number of pending registrations.
func (q *Queue[T]) removeWakerLocked(w *waker) {
	for i, x := range q.wakers {
		if x == w {
			copy(q.wakers[i:], q.wakers[i+1:])
			q.wakers[len(q.wakers)-1] = nil
			q.wakers = q.wakers[:len(q.wakers)-1]
			w.queued = false
			return
		}
	}
}
