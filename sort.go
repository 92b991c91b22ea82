package strq

// Sort arranges the queue in ascending lexicographic order using a
// bottom-up merge sort driven by an explicit stack, so arbitrarily
// long queues sort without recursion. The sort is stable: equal
// values keep their relative order. Only the existing elements are
// relinked; no element is allocated or released, and the auxiliary
// storage is O(n) link pointers grown to fit the input. Nil, empty,
// and single-element queues are left unchanged, and the sentinel
// keeps its identity.
func (q *Queue) Sort() {
	if q.IsEmpty() || q.IsSingular() {
		return
	}

	size := q.Size()
	root := q.head

	// cut the circle into a nil-terminated forward chain
	first := root.next
	root.prev.next = nil

	// split down to single-element runs, collected in their original
	// order so that merging adjacent runs keeps equal values in
	// their input order
	stack := make([]*Element, 0, 64)
	runs := make([]*Element, 0, size)

	stack = append(stack, first)
	for len(stack) > 0 {
		head := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if head.next == nil {
			runs = append(runs, head)
			continue
		}

		slow := head
		for fast := head.next; fast != nil && fast.next != nil; fast = fast.next.next {
			slow = slow.next
		}
		right := slow.next
		slow.next = nil

		// right below left so the left half is split (and its runs
		// emitted) first
		stack = append(stack, right, head)
	}

	// merge adjacent runs pairwise, halving the run count each pass
	for len(runs) > 1 {
		out := runs[:0]
		for i := 0; i < len(runs); i += 2 {
			if i+1 < len(runs) {
				out = append(out, mergeAscending(runs[i], runs[i+1]))
			} else {
				out = append(out, runs[i])
			}
		}
		runs = out
	}

	// re-thread the prev links and close the circle at the sentinel
	root.next = runs[0]
	last := root
	for e := root.next; e != nil; e = e.next {
		e.prev = last
		last = e
	}
	root.prev = last
	last.next = root
}

// mergeAscending merges two ascending nil-terminated forward chains
// into one ascending chain. Ties take from a first, which is what
// makes Sort stable. When either chain runs out the remainder of the
// other is spliced in whole rather than walked element by element.
func mergeAscending(a, b *Element) *Element {
	var head *Element
	tail := &head

	for a != nil && b != nil {
		if a.value <= b.value {
			*tail = a
			a = a.next
		} else {
			*tail = b
			b = b.next
		}
		tail = &(*tail).next
	}

	if a != nil {
		*tail = a
	} else {
		*tail = b
	}
	return head
}

// SortQuick sorts the queue in ascending order with a recursive
// three-way-partition quicksort: the queue is split into less, equal,
// and greater sub-queues around the first element, the outer two are
// sorted recursively, and the four pieces are spliced back together.
// Fast on random input, but recursion and running time degrade on
// adversarial orderings, and equal values do not keep their relative
// order. Sort is the default; SortQuick is an independent alternative
// for non-adversarial data. Nil, empty, and single-element queues are
// left unchanged.
func (q *Queue) SortQuick() {
	if q.IsEmpty() || q.IsSingular() {
		return
	}

	var less, equal, greater Queue
	pivot := q.RemoveHead(nil)

	for e := q.RemoveHead(nil); e != nil; e = q.RemoveHead(nil) {
		switch {
		case e.value == pivot.value:
			equal.Back().Append(e)
		case e.value < pivot.value:
			less.Back().Append(e)
		default:
			greater.root().Append(e)
		}
	}

	less.SortQuick()
	greater.SortQuick()

	q.Extend(&less)
	q.Extend(&equal)
	q.Back().Append(pivot)
	q.Extend(&greater)
}
