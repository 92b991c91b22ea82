package strq

// Element is the unit of storage in a Queue. It owns a single string
// value and embeds the next/prev links of the circular doubly linked
// list, so moving an element between positions (or queues) never
// copies the value.
//
// Elements are produced by the queue's allocator during insert
// operations, or directly with NewElement for use with Append. An
// element returned by RemoveHead/RemoveTail has been unlinked and is
// owned by the caller until it is passed back to Release.
type Element struct {
	next  *Element
	prev  *Element
	list  *Queue
	ok    bool
	value string
}

// NewElement produces a detached Element that can be attached to a
// queue with Append.
func NewElement(value string) *Element { return &Element{value: value, ok: true} }

// String returns the element's value.
func (e *Element) String() string { return e.value }

// Value accesses the element's value.
func (e *Element) Value() string { return e.value }

// Ok checks that an element is valid. The sentinel at the root of a
// queue, a released element, and the nil results of operations on
// empty queues all report false.
func (e *Element) Ok() bool { return e != nil && e.ok }

// Next produces the following element. At the back of a queue this is
// the sentinel, which reports Ok() false.
func (e *Element) Next() *Element { return e.next }

// Previous produces the preceding element. At the front of a queue
// this is the sentinel, which reports Ok() false.
func (e *Element) Previous() *Element { return e.prev }

// In checks whether the element is a member of the specified
// queue. Because elements hold a pointer to their queue this is an
// O(1) operation. Returns false when the element is nil.
func (e *Element) In(q *Queue) bool { return e != nil && e.list != nil && e.list == q }

// Set changes the value of the element in place, reporting whether it
// did. The operation fails on nil elements and on a queue's sentinel.
func (e *Element) Set(v string) bool {
	if e == nil || (e.list != nil && e.list.head == e) {
		return false
	}

	e.ok = true
	e.value = v
	return true
}

// Append links val into the queue immediately after e, returning val
// when the insert happens. It returns e unchanged when val is not
// eligible (nil, invalid, or already a member of a queue) or when e
// is not itself linked.
func (e *Element) Append(val *Element) *Element {
	if !e.appendable(val) {
		return e
	}

	e.uncheckedAppend(val)
	return val
}

// Remove unlinks the element from its queue without releasing it,
// reporting whether the unlink happened. The sentinel cannot be
// removed, and an element can only be removed once.
func (e *Element) Remove() bool {
	if !e.removable() {
		return false
	}
	e.uncheckedRemove()
	return true
}

// Swap exchanges the positions of two elements of the same queue,
// reporting whether it did. Neither element may be the sentinel, and
// both must be members of the same queue.
func (e *Element) Swap(with *Element) bool {
	if !e.swappable(with) {
		return false
	}

	switch {
	case e.next == with:
		with.uncheckedRemove()
		e.prev.uncheckedAppend(with)
	case with.next == e:
		e.uncheckedRemove()
		with.prev.uncheckedAppend(e)
	default:
		anchor := e.prev
		e.uncheckedRemove()
		with.prev.uncheckedAppend(e)
		with.uncheckedRemove()
		anchor.uncheckedAppend(with)
	}
	return true
}

// membership and validity guards for the unchecked link primitives.
func (e *Element) appendable(val *Element) bool {
	return e != nil && e.list != nil && val != nil && val.ok && val.list == nil
}

func (e *Element) removable() bool {
	return e != nil && e.list != nil && e.list.head != e
}

func (e *Element) swappable(with *Element) bool {
	return e != nil && with != nil && e != with &&
		e.list != nil && e.list == with.list &&
		e.list.head != e && e.list.head != with
}

func (e *Element) uncheckedAppend(val *Element) {
	val.list = e.list
	val.prev = e
	val.next = e.next
	val.prev.next = val
	val.next.prev = val
}

func (e *Element) uncheckedRemove() {
	e.prev.next = e.next
	e.next.prev = e.prev
	e.list = nil
	// next/prev retained so that removal can interleave with
	// forward iteration
}
