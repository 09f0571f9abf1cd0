// Package tree provides a generic ordered-set container built around an
// unbalanced binary search tree (BST) and a red-black tree (RBT) that
// layers guaranteed logarithmic bounds on top of the same primitives.
// Values are unique per the supplied comparator (§1).
package tree

import (
	"iter"

	"github.com/barnowlsnest/go-ordset/pkg/compare"
)

// BST is an unbalanced binary search tree holding one value per
// equivalence class of the supplied comparator. All operations are
// iterative; traversals use an explicit Stack/Queue rather than
// recursion, so deep trees do not risk call-stack overflow.
//
// Average case O(log n) for Find/Insert/Remove/Min/Max; worst case O(n)
// — an adversarial insertion order degenerates a BST into a linked list.
// Use RBT instead when worst-case bounds matter (§4.1).
//
// Thread Safety:
// BST is not thread-safe; a container is exclusively owned by one caller
// at a time (§5).
type BST[T any] struct {
	e *engine[T]
}

// NewBST constructs an empty BST using cmp as the total ordering. Returns
// compare.ErrInvalidComparator if cmp is nil.
func NewBST[T any](cmp compare.Func[T]) (*BST[T], error) {
	if err := compare.Require(cmp); err != nil {
		return nil, err
	}
	return &BST[T]{e: newEngine(cmp)}, nil
}

// Size returns the number of values currently stored. O(1).
func (t *BST[T]) Size() int { return t.e.Size() }

// IsEmpty reports whether the tree holds no values.
func (t *BST[T]) IsEmpty() bool { return t.e.IsEmpty() }

// Clear drops the entire node graph, resetting the tree to empty.
func (t *BST[T]) Clear() { t.e.Clear() }

// Height returns the longest root-to-leaf path length; -1 for an empty
// tree, 0 for a tree holding only its root.
func (t *BST[T]) Height() int { return t.e.height() }

// Find returns the stored value equal to v under the comparator, and
// whether it was present. O(log n) average, O(n) worst case.
func (t *BST[T]) Find(v T) (T, bool) {
	n := t.e.findNode(v)
	if n == nil {
		var zero T
		return zero, false
	}
	return n.value, true
}

// Insert adds v if no equivalent value is already stored. Returns true
// if v was inserted, false if a duplicate was found (the tree is left
// unchanged).
func (t *BST[T]) Insert(v T) bool {
	_, inserted := t.e.insertNode(newBlackNode[T], v)
	return inserted
}

// Remove deletes the value equal to v, if present. Returns true if a
// value was removed, false if no equivalent value was found.
func (t *BST[T]) Remove(v T) bool {
	target := t.e.findNode(v)
	if target == nil {
		return false
	}
	t.e.removeNode(target)
	return true
}

// Min returns the least value under the comparator, or false if the tree
// is empty.
func (t *BST[T]) Min() (T, bool) {
	n := t.e.min()
	if n == nil {
		var zero T
		return zero, false
	}
	return n.value, true
}

// Max returns the greatest value under the comparator, or false if the
// tree is empty.
func (t *BST[T]) Max() (T, bool) {
	n := t.e.max()
	if n == nil {
		var zero T
		return zero, false
	}
	return n.value, true
}

// Lnr traverses values in-order (ascending comparator order).
func (t *BST[T]) Lnr() iter.Seq[T] { return lnrSeq(t.e.root) }

// Rnl traverses values in reverse in-order (descending comparator order).
func (t *BST[T]) Rnl() iter.Seq[T] { return rnlSeq(t.e.root) }

// Nlr traverses values pre-order (node, left, right).
func (t *BST[T]) Nlr() iter.Seq[T] { return nlrSeq(t.e.root) }

// Lrn traverses values post-order (left, right, node).
func (t *BST[T]) Lrn() iter.Seq[T] { return lrnSeq(t.e.root) }

// Lvl traverses values breadth-first, level by level.
func (t *BST[T]) Lvl() iter.Seq[T] { return lvlSeq(t.e.root) }

// All is the default iteration order, equivalent to Lnr, so a BST can be
// ranged over directly: `for v := range bst.All() { ... }`.
func (t *BST[T]) All() iter.Seq[T] { return t.Lnr() }
