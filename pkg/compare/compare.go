// Package compare defines the comparator contract shared by pkg/tree and
// pkg/heap: a total ordering over an opaque value type T, expressed as a
// single function whose sign carries all the information the containers
// need (§6 of the ordered-set container specification).
package compare

import "golang.org/x/exp/constraints"

// Func is a pure total-ordering function over T.
//
// Contract:
//   - Func(a, a) == 0.
//   - Func(a, b) == 0 iff Func(b, a) == 0 (symmetry of equivalence).
//   - The sign of Func(a, b) is the opposite of Func(b, a) whenever nonzero.
//   - Func(a, b) <= 0 && Func(b, c) <= 0 implies Func(a, c) <= 0 (transitivity).
//
// Only the sign of the return value matters; magnitudes carry no meaning.
// The function is invoked synchronously, many times per container
// operation, on values currently stored in the container — it must be
// pure with respect to the ordering it induces and must never mutate the
// container that is calling it.
type Func[T any] func(a, b T) int

// Ascend is the standard ascending comparator over any ordered type:
// negative when a < b, positive when a > b, zero when equal. It is the
// usual comparator for BST and RBT; their constructors have no default
// and always take the comparator as an argument.
func Ascend[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Descend is the standard descending comparator over any ordered type:
// the mirror image of Ascend. It is the usual comparator for the binary
// heap (passed explicitly to heap.NewBH), so that the top of the heap
// holds the greatest value under natural order.
func Descend[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return 1
	case a > b:
		return -1
	default:
		return 0
	}
}
