// Package heap provides BH, an array-backed binary heap priority queue
// parameterized by a comparator (§4.3).
package heap

import (
	"iter"

	"github.com/barnowlsnest/go-ordset/pkg/compare"
)

// BH is a dense, zero-indexed array-backed binary heap. For index i>0,
// cmp(data[parent(i)], data[i]) <= 0, so the top holds the least element
// as cmp orders it. NewBH has no default comparator: with compare.Descend
// the natural-order maximum sits on top, with compare.Ascend the minimum.
//
// Thread Safety:
// BH is not thread-safe; a container is exclusively owned by one caller
// at a time (§5).
type BH[T any] struct {
	data []T
	cmp  compare.Func[T]
}

// NewBH constructs an empty heap using cmp to order elements. Returns
// compare.ErrInvalidComparator if cmp is nil.
func NewBH[T any](cmp compare.Func[T]) (*BH[T], error) {
	if err := compare.Require(cmp); err != nil {
		return nil, err
	}
	return &BH[T]{cmp: cmp}, nil
}

// Length returns the current number of elements. O(1).
func (h *BH[T]) Length() int { return len(h.data) }

// IsEmpty reports whether the heap holds no elements.
func (h *BH[T]) IsEmpty() bool { return len(h.data) == 0 }

// Clear resets the heap to empty.
func (h *BH[T]) Clear() { h.data = h.data[:0] }

// Peek returns the top element without removing it, or false if empty.
// O(1).
func (h *BH[T]) Peek() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}
	return h.data[0], true
}

// Push appends each of vs and sifts it up, swapping with its parent
// while cmp(child, parent) < 0. Returns the new length. Amortized O(1)
// per element, worst case O(log n) (§4.3).
func (h *BH[T]) Push(vs ...T) int {
	for _, v := range vs {
		h.data = append(h.data, v)
		h.siftUp(len(h.data) - 1)
	}
	return len(h.data)
}

// Pop removes and returns the top element, or false if the heap is
// empty. Swaps the root with the last element, pops the last slot as the
// result, then sifts the new root down. O(log n).
func (h *BH[T]) Pop() (T, bool) {
	if len(h.data) == 0 {
		var zero T
		return zero, false
	}

	last := len(h.data) - 1
	h.data[0], h.data[last] = h.data[last], h.data[0]

	result := h.data[last]
	h.data = h.data[:last]

	if len(h.data) > 0 {
		h.siftDown(0)
	}

	return result, true
}

// ToArray returns a shallow snapshot of the internal array in heap order
// (not sorted order).
func (h *BH[T]) ToArray() []T {
	out := make([]T, len(h.data))
	copy(out, h.data)
	return out
}

// Drain is a lazy, finite, single-pass sequence that pops the current top
// at each step, consuming the heap. O(1) auxiliary space.
func (h *BH[T]) Drain() iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := h.Pop()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}

func parentIdx(i int) int { return (i - 1) / 2 }
func leftIdx(i int) int   { return 2*i + 1 }
func rightIdx(i int) int  { return 2*i + 2 }

func (h *BH[T]) siftUp(i int) {
	for i > 0 {
		p := parentIdx(i)
		if h.cmp(h.data[i], h.data[p]) < 0 {
			h.data[i], h.data[p] = h.data[p], h.data[i]
			i = p
		} else {
			break
		}
	}
}

func (h *BH[T]) siftDown(i int) {
	n := len(h.data)
	for {
		smallest := i
		if l := leftIdx(i); l < n && h.cmp(h.data[l], h.data[smallest]) < 0 {
			smallest = l
		}
		if r := rightIdx(i); r < n && h.cmp(h.data[r], h.data[smallest]) < 0 {
			smallest = r
		}
		if smallest == i {
			break
		}
		h.data[i], h.data[smallest] = h.data[smallest], h.data[i]
		i = smallest
	}
}

// heapify converts the current (arbitrary-order) data slice into a valid
// heap in O(n), starting from the last internal node and sifting down.
func (h *BH[T]) heapify() {
	for i := len(h.data)/2 - 1; i >= 0; i-- {
		h.siftDown(i)
	}
}
