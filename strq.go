// Package strq implements a string-valued FIFO/double-ended queue
// backed by an intrusive circular doubly linked list, together with a
// set of in-place algorithms over the same links: bounded
// insert/remove at both ends, middle-element deletion,
// adjacent-duplicate removal on sorted input, pairwise element swap,
// whole-queue reversal, and a stable ascending merge sort that runs
// without recursion.
//
// A Queue owns its elements through the link chain alone: removal
// operations unlink an element and transfer ownership to the caller,
// while delete operations release the element internally. Element
// storage is provided by a pluggable Allocator, which is also where
// allocation failures (ErrOutOfMemory) originate.
//
// Queues are single threaded. Callers sharing a queue between
// goroutines are responsible for their own concurrency control.
package strq

import "github.com/strq/strq/ers"

const (
	// ErrInvalidArgument is returned by operations that need a queue
	// but received a nil handle.
	ErrInvalidArgument ers.Error = "invalid argument"

	// ErrOutOfMemory is reported by allocators that cannot produce a
	// new element. Operations that encounter it unwind any partial
	// allocation and leave the queue unchanged.
	ErrOutOfMemory ers.Error = "out of memory"
)
