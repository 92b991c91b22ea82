package strq

// Allocator is the single allocate/release capability a queue
// consumes for element storage. Make must return a detached, valid
// element holding a copy of value, or an error satisfying
// errors.Is(err, ErrOutOfMemory). Release reclaims an element that
// has already been unlinked from any queue.
type Allocator interface {
	Make(value string) (*Element, error)
	Release(*Element)
}

// HeapAllocator is the default allocator: elements live on the Go
// heap and Make never fails. Release clears the element so a stale
// handle surfaces as Ok() false instead of reading a released value.
type HeapAllocator struct{}

func (HeapAllocator) Make(value string) (*Element, error) { return NewElement(value), nil }

func (HeapAllocator) Release(e *Element) {
	if e == nil {
		return
	}
	e.value = ""
	e.ok = false
	e.next = nil
	e.prev = nil
	e.list = nil
}

// CountingAllocator wraps another allocator and tracks the number of
// live elements (successful Makes minus Releases), which makes leak
// checking possible without reaching into the queue's internals. A
// nil Next falls back to the heap allocator.
type CountingAllocator struct {
	Next Allocator
	live int
}

func (a *CountingAllocator) Make(value string) (*Element, error) {
	e, err := a.next().Make(value)
	if err == nil {
		a.live++
	}
	return e, err
}

func (a *CountingAllocator) Release(e *Element) {
	if e == nil {
		return
	}
	a.live--
	a.next().Release(e)
}

// Live reports the number of elements allocated and not yet released.
func (a *CountingAllocator) Live() int { return a.live }

func (a *CountingAllocator) next() Allocator {
	if a.Next == nil {
		return HeapAllocator{}
	}
	return a.Next
}

// FaultAllocator fails with ErrOutOfMemory once a budget of
// successful allocations is spent, exercising the allocation-failure
// unwinding paths. A nil Next falls back to the heap allocator.
type FaultAllocator struct {
	Next      Allocator
	Remaining int
}

func (a *FaultAllocator) Make(value string) (*Element, error) {
	if a.Remaining <= 0 {
		return nil, ErrOutOfMemory
	}
	a.Remaining--
	return a.next().Make(value)
}

func (a *FaultAllocator) Release(e *Element) { a.next().Release(e) }

func (a *FaultAllocator) next() Allocator {
	if a.Next == nil {
		return HeapAllocator{}
	}
	return a.Next
}
