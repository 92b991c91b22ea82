package strq

import "testing"

// chain builds a nil-terminated forward chain, the shape the merge
// engine and the split phase of Sort operate on.
func chain(vals ...string) *Element {
	var head *Element
	tail := &head
	for _, v := range vals {
		e := NewElement(v)
		*tail = e
		tail = &e.next
	}
	return head
}

func chainValues(head *Element) []string {
	out := []string{}
	for e := head; e != nil; e = e.next {
		out = append(out, e.value)
	}
	return out
}

func sameValues(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %q want %q", i, got[i], want[i])
		}
	}
}

func TestMergeAscending(t *testing.T) {
	t.Run("Interleaves", func(t *testing.T) {
		merged := mergeAscending(chain("a", "c", "e"), chain("b", "d", "f"))
		sameValues(t, chainValues(merged), "a", "b", "c", "d", "e", "f")
	})
	t.Run("EmptySides", func(t *testing.T) {
		merged := mergeAscending(nil, chain("a", "b"))
		sameValues(t, chainValues(merged), "a", "b")

		merged = mergeAscending(chain("a", "b"), nil)
		sameValues(t, chainValues(merged), "a", "b")

		if mergeAscending(nil, nil) != nil {
			t.Fatal("merging nothing yields nothing")
		}
	})
	t.Run("TiesTakeFirstArgument", func(t *testing.T) {
		first := chain("m", "m")
		second := chain("m", "m")
		fa, fb := first, first.next
		sa, sb := second, second.next

		merged := mergeAscending(first, second)

		want := []*Element{fa, fb, sa, sb}
		i := 0
		for e := merged; e != nil; e = e.next {
			if e != want[i] {
				t.Fatalf("position %d: tie broke toward the wrong source", i)
			}
			i++
		}
		if i != len(want) {
			t.Fatal("merged chain has the wrong length", i)
		}
	})
	t.Run("SplicesRemainder", func(t *testing.T) {
		rest := chain("x", "y", "z")
		restSecond := rest.next
		merged := mergeAscending(chain("a"), rest)

		sameValues(t, chainValues(merged), "a", "x", "y", "z")
		// the tail beyond the first comparison point is the original
		// chain, not a rebuilt one
		if merged.next != rest || rest.next != restSecond {
			t.Fatal("remainder was rewalked instead of spliced")
		}
	})
}
