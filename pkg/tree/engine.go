package tree

import "github.com/barnowlsnest/go-ordset/pkg/compare"

// engine holds the node graph, size counter, and comparator shared by
// BST and RBT, and implements the primitives the spec calls out as the
// "internal shared surface" exposed to the RBT only: root-get/set,
// compare-get, find-node, rotate-node, insert-node (parameterized by a
// node factory), and remove-node (§4.1). Both containers in this package
// hold one of these rather than duplicating descent/rotation logic.
type engine[T any] struct {
	root *node[T]
	size int
	cmp  compare.Func[T]
}

func newEngine[T any](cmp compare.Func[T]) *engine[T] {
	return &engine[T]{cmp: cmp}
}

func (e *engine[T]) Size() int {
	return e.size
}

func (e *engine[T]) IsEmpty() bool {
	return e.size == 0
}

func (e *engine[T]) Clear() {
	e.root = nil
	e.size = 0
}

// findNode descends from root comparing against value, returning the
// owning node or nil. Worst case O(n), average O(log n) (§4.1).
func (e *engine[T]) findNode(value T) *node[T] {
	cur := e.root
	for cur != nil {
		c := e.cmp(value, cur.value)
		switch {
		case c == 0:
			return cur
		case c < 0:
			cur = cur.left
		default:
			cur = cur.right
		}
	}
	return nil
}

func (e *engine[T]) subtreeMin(n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (e *engine[T]) subtreeMax(n *node[T]) *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

func (e *engine[T]) min() *node[T] {
	if e.root == nil {
		return nil
	}
	return e.subtreeMin(e.root)
}

func (e *engine[T]) max() *node[T] {
	if e.root == nil {
		return nil
	}
	return e.subtreeMax(e.root)
}

// insertNode descends to the leaf slot for value and attaches a node
// built by factory there. Returns (nil, false) on an equivalent-value
// duplicate with no change made. factory lets RBT build colored nodes
// without this descent logic knowing anything about color (§9 "node
// factory... models the language-neutral polymorphism").
func (e *engine[T]) insertNode(factory func(T) *node[T], value T) (*node[T], bool) {
	if e.root == nil {
		n := factory(value)
		e.root = n
		e.size++
		return n, true
	}

	cur := e.root
	for {
		c := e.cmp(value, cur.value)
		switch {
		case c == 0:
			return nil, false
		case c < 0:
			if cur.left == nil {
				n := factory(value)
				n.parent = cur
				cur.left = n
				e.size++
				return n, true
			}
			cur = cur.left
		default:
			if cur.right == nil {
				n := factory(value)
				n.parent = cur
				cur.right = n
				e.size++
				return n, true
			}
			cur = cur.right
		}
	}
}

// removeResult carries everything the RBT remove fix-up needs to resume
// from the point the physical splice left off (§4.2).
type removeResult[T any] struct {
	detached    *node[T] // Y: the node physically unlinked from the graph
	wasRed      bool     // Y's color before detachment
	fixupParent *node[T] // Y.parent, i.e. where the fix-up loop starts
	replacement *node[T] // R: Y's former child, now sitting in Y's old slot (may be nil)
	dir         direction
}

// removeNode locates the physical victim for target, a node already found
// in the tree (callers look it up with findNode and handle absence
// themselves), and splices it out. See §4.1 "Remove
// (splice-out)": if the logical target X has fewer than two children, the
// physical victim Y = X; otherwise Y is X's in-order successor, whose
// value is copied into X before Y itself is unlinked.
func (e *engine[T]) removeNode(target *node[T]) *removeResult[T] {
	y := target
	if target.left != nil && target.right != nil {
		y = e.subtreeMin(target.right)
	}

	var r *node[T]
	if y.left != nil {
		r = y.left
	} else {
		r = y.right
	}

	parent := y.parent
	if r != nil {
		r.parent = parent
	}

	var dir direction
	if parent == nil {
		e.root = r
	} else {
		dir = dirFrom(parent, y)
		parent.setChild(dir, r)
	}

	if y != target {
		target.value = y.value
	}

	e.size--

	return &removeResult[T]{
		detached:    y,
		wasRed:      y.red,
		fixupParent: parent,
		replacement: r,
		dir:         dir,
	}
}

// rotate pivots node p around its opp child (opp = dir's opposite),
// preserving BST order. Fails with ErrRotationPrecondition if that child
// is absent (§4.1).
func (e *engine[T]) rotate(p *node[T], dir direction) error {
	opp := dir.opposite()
	c := p.child(opp)
	if c == nil {
		return ErrRotationPrecondition
	}

	movedChild := c.child(dir)
	p.setChild(opp, movedChild)
	if movedChild != nil {
		movedChild.parent = p
	}

	c.parent = p.parent
	switch {
	case p.parent == nil:
		e.root = c
	case p.parent.left == p:
		p.parent.left = c
	default:
		p.parent.right = c
	}

	c.setChild(dir, p)
	p.parent = c

	return nil
}

// height returns the tree's height (longest root-to-leaf path); an empty
// tree has height -1, a tree with only a root has height 0. Iterative
// level-order walk, matching the teacher's own Height() (SPEC_FULL.md §3).
func (e *engine[T]) height() int {
	if e.root == nil {
		return -1
	}

	frontier := []*node[T]{e.root}
	height := -1
	for len(frontier) > 0 {
		height++
		next := make([]*node[T], 0, len(frontier)*2)
		for _, n := range frontier {
			if n.left != nil {
				next = append(next, n.left)
			}
			if n.right != nil {
				next = append(next, n.right)
			}
		}
		frontier = next
	}
	return height
}
