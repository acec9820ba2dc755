package sigq

import (
	"sync"
)

// Queue is a generic, concurrency-safe, unbounded FIFO queue that can be
// consumed from both blocking and poll-driven contexts. Producers call Push;
// blocking consumers call Pop; poll-driven consumers obtain a PopHandle via
// APop and poll it from their scheduler. The two consumer styles can be mixed
// freely on the same queue.
//
// Each pushed item wakes at most one waiter. A woken waiter is not guaranteed
// to receive the item that woke it: any other consumer may win the race, so
// waiters always re-check the buffer after waking. Every item is delivered to
// exactly one consumer, in insertion order.
//
// The zero value is not ready for use; construct via New or NewWithCapacity.
type Queue[T any] struct {
	mu      sync.Mutex
	cv      *sync.Cond // signalled once per item, paired with mu
	items   []T
	waiting int      // goroutines currently blocked in Pop
	sigs    int      // cv signals delivered but not yet consumed by a waking Pop
	wakers  []*waker // pending PopHandle registrations, FIFO
}

// waker is a single registered wakeup for a pending PopHandle. It stays in
// the queue's waker list until a push hands it a wake or the owning handle
// completes and removes it.
type waker struct {
	fn     func()
	queued bool
}

// New creates a new empty queue.
//
// All exported methods are safe for concurrent use.
func New[T any]() *Queue[T] {
	q := &Queue[T]{
		items: make([]T, 0),
	}
	q.cv = sync.NewCond(&q.mu)
	return q
}

// NewWithCapacity creates a new queue with the given initial capacity.
// Capacity preallocates internal storage; behavior is otherwise identical to
// New.
func NewWithCapacity[T any](capacity int) *Queue[T] {
	if capacity < 0 {
		capacity = 0
	}
	q := &Queue[T]{
		items: make([]T, 0, capacity),
	}
	q.cv = sync.NewCond(&q.mu)
	return q
}

// Push appends v to the tail and wakes at most one waiter: a goroutine
// blocked in Pop if any exist, otherwise the oldest pending PopHandle
// registration. Push never blocks and never fails; the queue grows without
// bound if nothing consumes. Amortized complexity: O(1).
func (q *Queue[T]) Push(v T) {
	q.mu.Lock()
	q.items = append(q.items, v)
	wakes := q.wakeLocked(1)
	q.mu.Unlock()
	for _, fn := range wakes {
		fn()
	}
}

// PushMany appends items in order under a single lock acquisition and wakes
// up to one waiter per item appended. Amortized complexity: O(k) for k items.
func (q *Queue[T]) PushMany(items ...T) {
	if len(items) == 0 {
		return
	}
	q.mu.Lock()
	q.items = append(q.items, items...)
	wakes := q.wakeLocked(len(items))
	q.mu.Unlock()
	for _, fn := range wakes {
		fn()
	}
}

// wakeLocked distributes up to n wakes: goroutines blocked in Pop are
// signalled first, then pending PopHandle wakers are dequeued in FIFO order.
// The returned callbacks must be invoked after mu is released, since a woken
// handle may immediately re-poll.
//
// A popper that has already been signalled stays counted in waiting until it
// re-acquires mu, so signals are budgeted against waiting-sigs: only poppers
// with no signal in flight absorb one. Without that, a signal aimed at an
// already-woken popper would be a no-op and the wake would be lost instead of
// reaching a registered waker.
func (q *Queue[T]) wakeLocked(n int) []func() {
	var fns []func()
	for ; n > 0; n-- {
		if q.sigs < q.waiting {
			q.cv.Signal()
			q.sigs++
			continue
		}
		if len(q.wakers) == 0 {
			break
		}
		w := q.wakers[0]
		q.wakers[0] = nil
		q.wakers = q.wakers[1:]
		w.queued = false
		fns = append(fns, w.fn)
	}
	return fns
}

// Pop removes and returns the head item, blocking the calling goroutine until
// one is available. There is no timeout and no cancellation; Pop blocks
// indefinitely if nothing is ever pushed. The wait loop re-checks the buffer
// after every wake, so losing a race to another consumer simply means waiting
// again.
func (q *Queue[T]) Pop() T {
	q.mu.Lock()
	for len(q.items) == 0 {
		q.waiting++
		q.cv.Wait()
		q.waiting--
		// Wait only returns after a Signal here (this queue never
		// Broadcasts), so exactly one in-flight signal is consumed.
		q.sigs--
	}
	v := q.items[0]
	// Avoid O(n) element moves by reslicing; let GC reclaim older head when needed.
	q.items = q.items[1:]
	q.mu.Unlock()
	return v
}

// TryPop removes and returns the head item without blocking.
// ok is false when the queue is empty. Amortized complexity: O(1).
func (q *Queue[T]) TryPop() (v T, ok bool) {
	q.mu.Lock()
	if len(q.items) == 0 {
		q.mu.Unlock()
		return v, false
	}
	v = q.items[0]
	q.items = q.items[1:]
	q.mu.Unlock()
	return v, true
}

// Peek returns the head item without removing it.
// ok is false when the queue is empty. Complexity: O(1).
func (q *Queue[T]) Peek() (v T, ok bool) {
	q.mu.Lock()
	if len(q.items) == 0 {
		q.mu.Unlock()
		return v, false
	}
	v = q.items[0]
	q.mu.Unlock()
	return v, true
}

// Len returns the number of items currently queued.
// Complexity: O(1). Safe for concurrent use.
func (q *Queue[T]) Len() int {
	q.mu.Lock()
	n := len(q.items)
	q.mu.Unlock()
	return n
}

// WasEmpty reports whether the queue was empty at some instant during the
// call. The result carries no validity once returned if any concurrent
// pusher or popper exists; in particular it must not be used to predict
// whether a subsequent Pop will block. It is an advisory probe only.
func (q *Queue[T]) WasEmpty() bool {
	q.mu.Lock()
	empty := len(q.items) == 0
	q.mu.Unlock()
	return empty
}

// APop returns a new single-use PopHandle sharing this queue's buffer.
// Creating the handle has no side effect; nothing happens until the handle
// is polled.
func (q *Queue[T]) APop() *PopHandle[T] {
	return &PopHandle[T]{q: q}
}
