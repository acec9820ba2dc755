// Package sigq provides a generic, unbounded FIFO queue that bridges
// blocking and poll-driven consumers.
//
// The queue is concurrency-safe: all exported methods use internal locking
// and may be called from multiple goroutines. Construct a queue with New or
// NewWithCapacity. Producers Push; consumers either Pop (blocking the
// calling goroutine until an item arrives) or request a PopHandle via APop
// and poll it from a cooperative scheduler. Producers and consumers on the
// two sides mix freely without knowing which model the other uses.
//
// Each pushed item wakes at most one waiter, and every woken waiter
// re-checks the buffer before taking anything, so items are delivered to
// exactly one consumer each, in FIFO order, under any interleaving. The
// queue is unbounded and pushes never fail; flow control is the caller's
// concern.
package sigq
