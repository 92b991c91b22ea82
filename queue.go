package strq

import "iter"

// Queue is a FIFO/double-ended queue of strings backed by a circular
// doubly linked list anchored at a payload-free sentinel. The zero
// value is an empty queue using the default heap allocator; New and
// NewWithAllocator exist for explicit lifecycle management.
//
// A Queue is not safe for concurrent use. Callers that share one
// between goroutines must serialize access externally, with one
// exclusive lock per queue.
type Queue struct {
	head  *Element
	alloc Allocator
}

// New creates an empty queue backed by the default allocator.
func New() *Queue { return &Queue{} }

// NewWithAllocator creates an empty queue whose element storage is
// managed by the provided allocator. A nil allocator behaves like
// New.
func NewWithAllocator(a Allocator) *Queue { return &Queue{alloc: a} }

// Destroy removes and releases every element in the queue and drops
// the sentinel. Destroying a nil queue is a no-op. The handle follows
// a single-owner discipline: do not call Destroy twice or use the
// queue afterward.
func (q *Queue) Destroy() {
	if q == nil {
		return
	}
	for e := q.RemoveHead(nil); e != nil; e = q.RemoveHead(nil) {
		q.Release(e)
	}
	q.head = nil
}

// InsertHead allocates an element holding a copy of s and links it at
// the front of the queue. Returns ErrInvalidArgument for a nil queue
// and the allocator's error when allocation fails; on failure nothing
// is linked and the queue is unchanged.
func (q *Queue) InsertHead(s string) error {
	if q == nil {
		return ErrInvalidArgument
	}

	e, err := q.allocator().Make(s)
	if err != nil {
		return err
	}

	q.root().uncheckedAppend(e)
	return nil
}

// InsertTail is InsertHead for the back of the queue.
func (q *Queue) InsertTail(s string) error {
	if q == nil {
		return ErrInvalidArgument
	}

	e, err := q.allocator().Make(s)
	if err != nil {
		return err
	}

	q.root().prev.uncheckedAppend(e)
	return nil
}

// RemoveHead unlinks and returns the element at the front of the
// queue, or nil when the queue is nil or empty. The element is not
// released: ownership transfers to the caller, who is responsible for
// eventually passing it to Release. If buf is non-nil, up to
// len(buf)-1 bytes of the value are copied into it followed by a NUL
// byte, truncating silently when the value is longer.
func (q *Queue) RemoveHead(buf []byte) *Element {
	if q.IsEmpty() {
		return nil
	}
	return q.detach(q.head.next, buf)
}

// RemoveTail is RemoveHead for the back of the queue.
func (q *Queue) RemoveTail(buf []byte) *Element {
	if q.IsEmpty() {
		return nil
	}
	return q.detach(q.head.prev, buf)
}

func (q *Queue) detach(e *Element, buf []byte) *Element {
	if len(buf) > 0 {
		n := copy(buf[:len(buf)-1], e.value)
		buf[n] = 0
	}
	e.uncheckedRemove()
	return e
}

// Release returns an element previously removed from the queue to the
// queue's allocator. Only call it for elements that are no longer
// linked; releasing a linked element corrupts the chain.
func (q *Queue) Release(e *Element) {
	if q == nil || e == nil {
		return
	}
	q.allocator().Release(e)
}

// Size counts the elements in the queue with one full traversal,
// O(n). Returns 0 for a nil or empty queue and never fails.
func (q *Queue) Size() int {
	if q == nil || q.head == nil {
		return 0
	}

	n := 0
	for e := q.head.next; e != q.head; e = e.next {
		n++
	}
	return n
}

// IsEmpty reports in O(1) whether the queue holds no elements. Nil
// queues are empty.
func (q *Queue) IsEmpty() bool {
	return q == nil || q.head == nil || q.head.next == q.head
}

// IsSingular reports in O(1) whether the queue holds exactly one
// element.
func (q *Queue) IsSingular() bool {
	return !q.IsEmpty() && q.head.next.next == q.head
}

// Front returns the first element of the queue. On an empty queue
// this is the sentinel, which reports Ok() false; on a nil queue it
// is nil. Use it for C-style iteration:
//
//	for e := q.Front(); e.Ok(); e = e.Next() {
//		// operate
//	}
func (q *Queue) Front() *Element {
	if q == nil {
		return nil
	}
	return q.root().next
}

// Back returns the last element of the queue, with the same empty and
// nil queue behavior as Front:
//
//	for e := q.Back(); e.Ok(); e = e.Previous() {
//		// operate
//	}
func (q *Queue) Back() *Element {
	if q == nil {
		return nil
	}
	return q.root().prev
}

// Extend moves every element from the front of other to the back of
// q by relinking, leaving other empty. No elements are allocated,
// released, or copied; the moved elements keep their identity.
func (q *Queue) Extend(other *Queue) {
	if q == nil {
		return
	}
	for e := other.RemoveHead(nil); e != nil; e = other.RemoveHead(nil) {
		q.Back().Append(e)
	}
}

// Copy produces a value-level duplicate of the queue using the same
// allocator. The elements of the copy are distinct from the
// originals. If any allocation fails the partial copy is destroyed
// and the error returned.
func (q *Queue) Copy() (*Queue, error) {
	if q == nil {
		return nil, ErrInvalidArgument
	}

	out := NewWithAllocator(q.alloc)
	for e := q.Front(); e.Ok(); e = e.Next() {
		if err := out.InsertTail(e.value); err != nil {
			out.Destroy()
			return nil, err
		}
	}
	return out, nil
}

// Slice exports the values of the queue to a slice, front to back.
func (q *Queue) Slice() []string {
	out := make([]string, 0, q.Size())
	for e := q.Front(); e.Ok(); e = e.Next() {
		out = append(out, e.value)
	}
	return out
}

// Values returns a native go iterator over the values in the queue,
// front to back. The iterator is not synchronized with mutations of
// the queue.
func (q *Queue) Values() iter.Seq[string] {
	return func(yield func(string) bool) {
		for e := q.Front(); e.Ok(); e = e.Next() {
			if !yield(e.value) {
				return
			}
		}
	}
}

func (q *Queue) allocator() Allocator {
	if q.alloc == nil {
		return HeapAllocator{}
	}
	return q.alloc
}

// root returns the sentinel, setting it up self-circular on first use
// so the zero value works.
func (q *Queue) root() *Element {
	if q.head == nil {
		q.head = &Element{}
		q.head.next = q.head
		q.head.prev = q.head
		q.head.list = q
	}
	return q.head
}
