package strq

// DeleteMiddle unlinks and releases the element at index n/2 (0-based,
// rounding down): on a six element queue the fourth element goes.
// Reports false when the queue is nil or empty. Unlike the remove
// operations the element is released internally and never returned.
//
// The target is found by walking one pointer forward from the front
// and one backward from the back until they meet or become adjacent,
// so no index arithmetic or second traversal is needed.
func (q *Queue) DeleteMiddle() bool {
	if q.IsEmpty() {
		return false
	}

	front, back := q.head.next, q.head.prev
	for front != back && front.next != back {
		front = front.next
		back = back.prev
	}

	// when the pointers meet (odd n) the meeting point is the
	// middle; when they end up adjacent (even n) the later of the
	// two is index n/2. Both cases are back.
	back.uncheckedRemove()
	q.Release(back)
	return true
}

// DeleteDuplicates removes every run of adjacent equal values,
// including the first member of each run, leaving only values that
// differ from both neighbors. On a queue that is already sorted
// ascending (the caller's contract, not checked) this deletes every
// value that occurs more than once. Single O(n) pass; elements are
// released as their run is found. Reports false only on a nil queue;
// an empty queue is a successful no-op.
func (q *Queue) DeleteDuplicates() bool {
	if q == nil {
		return false
	}
	if q.head == nil {
		return true
	}

	cur := q.head.next
	for cur != q.head {
		next := cur.next
		run := false
		for next != q.head && next.value == cur.value {
			run = true
			victim := next
			next = next.next
			victim.uncheckedRemove()
			q.Release(victim)
		}
		if run {
			cur.uncheckedRemove()
			q.Release(cur)
		}
		cur = next
	}
	return true
}

// SwapPairs exchanges the positions of each adjacent pair of elements
// (first with second, third with fourth, and so on) by relinking in
// place. A trailing unpaired element stays put. No-op on nil or empty
// queues.
func (q *Queue) SwapPairs() {
	if q.IsEmpty() {
		return
	}

	for e := q.head.next; e != q.head && e.next != q.head; e = e.next {
		partner := e.next
		e.uncheckedRemove()
		partner.uncheckedAppend(e)
	}
}

// Reverse reverses the order of the queue in place by swapping the
// next/prev links of every link in the circle, the sentinel included,
// visiting each exactly once. No elements are allocated, released, or
// copied: the post-condition order is the exact mirror of the
// pre-condition order with identical element identities.
func (q *Queue) Reverse() {
	if q.IsEmpty() {
		return
	}

	e := q.head
	for {
		next := e.next // capture before the links are overwritten
		e.next = e.prev
		e.prev = next
		e = next
		if e == q.head {
			return
		}
	}
}
