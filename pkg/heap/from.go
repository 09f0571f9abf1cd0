package heap

import "github.com/barnowlsnest/go-ordset/pkg/compare"

// FromValues builds a new heap with the given comparator from values,
// using the O(n) heapify fast path (a bulk sift-down from the last
// internal node) rather than len(values) individual Push calls — the
// same optimization the teacher's HeapFromSlice applies (SPEC_FULL.md §3).
func FromValues[T any](cmp compare.Func[T], values []T) (*BH[T], error) {
	h, err := NewBH(cmp)
	if err != nil {
		return nil, err
	}
	h.data = make([]T, len(values))
	copy(h.data, values)
	h.heapify()
	return h, nil
}

// FromValuesMapped builds a new heap from a slice of a different source
// type S, applying mapFn(value, index) to each element and then building
// the heap with the same O(n) heapify as FromValues rather than with Push
// (§4.3 `from`, map case).
func FromValuesMapped[S, T any](cmp compare.Func[T], values []S, mapFn func(S, int) T) (*BH[T], error) {
	h, err := NewBH(cmp)
	if err != nil {
		return nil, err
	}
	h.data = make([]T, len(values))
	for i, v := range values {
		h.data[i] = mapFn(v, i)
	}
	h.heapify()
	return h, nil
}

// Clone copies source's underlying array as-is, preserving heap order
// and comparator, without re-pushing (§4.3 `from`, no cmp/map override).
func Clone[T any](source *BH[T]) *BH[T] {
	clone := &BH[T]{cmp: source.cmp}
	clone.data = make([]T, len(source.data))
	copy(clone.data, source.data)
	return clone
}

// Rebuild treats source as a sequence of its current elements (in heap,
// not sorted, order) and pushes them one by one into a fresh heap
// configured with cmp (§4.3 `from`, cmp override).
func Rebuild[T any](source *BH[T], cmp compare.Func[T]) (*BH[T], error) {
	h, err := NewBH(cmp)
	if err != nil {
		return nil, err
	}
	h.Push(source.data...)
	return h, nil
}
