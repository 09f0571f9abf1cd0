package tree

import (
	"errors"
	"fmt"
	"iter"

	"github.com/barnowlsnest/go-ordset/pkg/compare"
)

// RBT is a red-black tree: a BST that layers a recoloring-and-rotation
// fix-up on top of the same insert/remove primitives to guarantee
// O(log n) worst-case Find/Insert/Remove/Min/Max, at the cost of the
// extra bookkeeping in §4.2's invariants:
//
//  1. The root is black.
//  2. Every absent child counts as a black sentinel.
//  3. A red node's children are black.
//  4. Every root-to-absent-descendant path has the same black-height.
//
// RBT composes the same engine BST uses rather than embedding BST
// itself — it needs direct access to rotate/insert-node/remove-node so
// the fix-up can run as part of the same mutation, not as a second pass
// over a BST that already changed shape (§9).
//
// Thread Safety:
// RBT is not thread-safe; a container is exclusively owned by one caller
// at a time (§5).
type RBT[T any] struct {
	e *engine[T]
}

// NewRBT constructs an empty RBT using cmp as the total ordering. Returns
// compare.ErrInvalidComparator if cmp is nil.
func NewRBT[T any](cmp compare.Func[T]) (*RBT[T], error) {
	if err := compare.Require(cmp); err != nil {
		return nil, err
	}
	return &RBT[T]{e: newEngine(cmp)}, nil
}

func (t *RBT[T]) Size() int     { return t.e.Size() }
func (t *RBT[T]) IsEmpty() bool { return t.e.IsEmpty() }
func (t *RBT[T]) Clear()        { t.e.Clear() }
func (t *RBT[T]) Height() int   { return t.e.height() }

// Find returns the stored value equal to v under the comparator, and
// whether it was present. O(log n) worst case.
func (t *RBT[T]) Find(v T) (T, bool) {
	n := t.e.findNode(v)
	if n == nil {
		var zero T
		return zero, false
	}
	return n.value, true
}

// Min returns the least value under the comparator, or false if empty.
func (t *RBT[T]) Min() (T, bool) {
	n := t.e.min()
	if n == nil {
		var zero T
		return zero, false
	}
	return n.value, true
}

// Max returns the greatest value under the comparator, or false if empty.
func (t *RBT[T]) Max() (T, bool) {
	n := t.e.max()
	if n == nil {
		var zero T
		return zero, false
	}
	return n.value, true
}

func (t *RBT[T]) Lnr() iter.Seq[T] { return lnrSeq(t.e.root) }
func (t *RBT[T]) Rnl() iter.Seq[T] { return rnlSeq(t.e.root) }
func (t *RBT[T]) Nlr() iter.Seq[T] { return nlrSeq(t.e.root) }
func (t *RBT[T]) Lrn() iter.Seq[T] { return lrnSeq(t.e.root) }
func (t *RBT[T]) Lvl() iter.Seq[T] { return lvlSeq(t.e.root) }
func (t *RBT[T]) All() iter.Seq[T] { return t.Lnr() }

// Insert adds v, colored red, then runs the insert fix-up to restore the
// red-black invariants. Returns false on an equivalent-value duplicate,
// leaving the tree unchanged.
func (t *RBT[T]) Insert(v T) bool {
	n, inserted := t.e.insertNode(newRedNode[T], v)
	if !inserted {
		return false
	}
	t.insertFixup(n)
	setRed(t.e.root, false)
	return true
}

// insertFixup restores the red-black invariants after x was linked in as
// a red leaf (§4.2).
func (t *RBT[T]) insertFixup(x *node[T]) {
	for x.parent != nil && x.parent.red {
		p := x.parent
		g := p.parent // exists: p is red, so p cannot be the (always-black) root

		pd := dirFrom(g, p)
		ud := pd.opposite()
		u := g.child(ud)

		if isRed(u) {
			setRed(p, false)
			setRed(u, false)
			setRed(g, true)
			x = g
			continue
		}

		if x == p.child(ud) { // x is the inner grandchild: straighten the zig-zag first
			x = p
			_ = t.e.rotate(x, pd)
			p = x.parent
		}

		setRed(p, false)
		setRed(g, true)
		_ = t.e.rotate(g, ud)
	}
}

// Remove deletes the value equal to v, if present, running the delete
// fix-up when the physically removed node was black (§4.2).
func (t *RBT[T]) Remove(v T) bool {
	target := t.e.findNode(v)
	if target == nil {
		return false
	}

	res := t.e.removeNode(target)
	if !res.wasRed {
		t.deleteFixup(res.fixupParent, res.replacement)
	}
	setRed(t.e.root, false)

	return true
}

// deleteFixup restores the red-black invariants after a black node was
// spliced out, starting at (parent, current) — current may be nil, in
// which case it is treated as the black sentinel sitting in the slot
// removeNode just cleared (§4.2).
func (t *RBT[T]) deleteFixup(parent, current *node[T]) {
	for parent != nil && isBlack(current) {
		var d direction
		if parent.left == current {
			d = dirLeft
		} else {
			d = dirRight
		}
		sd := d.opposite()
		s := parent.child(sd)

		if isRed(s) {
			setRed(s, false)
			setRed(parent, true)
			_ = t.e.rotate(parent, d)
			s = parent.child(sd)
		}

		if s == nil {
			// Unreachable under the RBT invariants: a black-deficient
			// child always has a sibling with enough black-height to
			// donate. Bail rather than loop forever if that's violated.
			break
		}

		if isBlack(s.left) && isBlack(s.right) {
			setRed(s, true)
			current = parent
			parent = current.parent
			continue
		}

		if isBlack(s.child(sd)) {
			setRed(s.child(d), false)
			setRed(s, true)
			_ = t.e.rotate(s, sd)
			s = parent.child(sd)
		}

		setRed(s, parent.red)
		setRed(parent, false)
		setRed(s.child(sd), false)
		_ = t.e.rotate(parent, d)
		current = t.e.root
		parent = nil
	}
	setRed(current, false)
}

// Validate walks the tree and reports the first red-black or BST-order
// invariant it finds broken, or nil if the tree is valid. It is a
// diagnostic, not part of the container's steady-state API surface —
// useful in tests asserting §8's P2/P6/P7.
func (t *RBT[T]) Validate() error {
	if isRed(t.e.root) {
		return errors.New("root is red")
	}

	var blackHeight = -1
	var walk func(n *node[T], blacks int, lo, hi *node[T]) error
	walk = func(n *node[T], blacks int, lo, hi *node[T]) error {
		if n == nil {
			if blackHeight == -1 {
				blackHeight = blacks
			} else if blacks != blackHeight {
				return fmt.Errorf("black-height mismatch: got %d, want %d", blacks, blackHeight)
			}
			return nil
		}
		if isRed(n) && (isRed(n.left) || isRed(n.right)) {
			return fmt.Errorf("red node %v has a red child", n.value)
		}
		if (lo != nil && t.e.cmp(n.value, lo.value) <= 0) || (hi != nil && t.e.cmp(n.value, hi.value) >= 0) {
			return fmt.Errorf("node %v breaks BST order", n.value)
		}
		next := blacks
		if isBlack(n) {
			next++
		}
		if err := walk(n.left, next, lo, n); err != nil {
			return err
		}
		return walk(n.right, next, n, hi)
	}

	return walk(t.e.root, 0, nil, nil)
}
