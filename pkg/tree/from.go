package tree

import "github.com/barnowlsnest/go-ordset/pkg/compare"

// This file implements §4.1's `from` construction contract. The dynamic
// "one function, three source shapes" API described there is spelled out
// in Go as a small family of named constructors, since an array, a
// finite sequence, and another tree are different static types here —
// there is no single parameter type that is naturally all three. `map`'s
// optional bound context is just a closure capture in Go, so there is no
// separate mapCtx parameter; callers who want one close over it.

// FromValues builds a new BST with the given comparator, inserting each
// element of values in order (§4.1 case 1, no map).
func FromValues[T any](cmp compare.Func[T], values []T) (*BST[T], error) {
	t, err := NewBST(cmp)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		t.Insert(v)
	}
	return t, nil
}

// FromValuesMapped builds a new BST[T] from a slice of a different
// source type S, applying mapFn(value, index) to each element before
// insertion (§4.1 case 1, with map).
func FromValuesMapped[S, T any](cmp compare.Func[T], values []S, mapFn func(S, int) T) (*BST[T], error) {
	t, err := NewBST(cmp)
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		t.Insert(mapFn(v, i))
	}
	return t, nil
}

// CloneBST deep-copies source's node graph, preserving its shape and
// comparator, without reinserting (§4.1 case 2). Size is copied
// directly — the "after any from, size equals the number of values
// reachable in the resulting container" contract (§9 open question) is
// satisfied here because the clone walks every source node exactly
// once.
func CloneBST[T any](source *BST[T]) *BST[T] {
	clone := &BST[T]{e: newEngine(source.e.cmp)}
	clone.e.root = cloneSubtree(source.e.root, nil)
	clone.e.size = source.e.size
	return clone
}

// RebuildBST treats source as an ordered sequence of its values (via its
// in-order traversal) and inserts them one by one into a fresh BST
// configured with cmp, discarding source's shape (§4.1 case 3).
func RebuildBST[T any](source *BST[T], cmp compare.Func[T]) (*BST[T], error) {
	t, err := NewBST(cmp)
	if err != nil {
		return nil, err
	}
	for v := range source.Lnr() {
		t.Insert(v)
	}
	return t, nil
}

// FromRBTValues builds a new RBT with the given comparator, inserting
// each element of values in order (§4.1 case 1, no map).
func FromRBTValues[T any](cmp compare.Func[T], values []T) (*RBT[T], error) {
	t, err := NewRBT(cmp)
	if err != nil {
		return nil, err
	}
	for _, v := range values {
		t.Insert(v)
	}
	return t, nil
}

// FromRBTValuesMapped builds a new RBT[T] from a slice of a different
// source type S, applying mapFn(value, index) before insertion.
func FromRBTValuesMapped[S, T any](cmp compare.Func[T], values []S, mapFn func(S, int) T) (*RBT[T], error) {
	t, err := NewRBT(cmp)
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		t.Insert(mapFn(v, i))
	}
	return t, nil
}

// CloneRBT deep-copies source's node graph, preserving shape and colors,
// without reinserting (§4.1 case 2). Size is copied directly.
func CloneRBT[T any](source *RBT[T]) *RBT[T] {
	clone := &RBT[T]{e: newEngine(source.e.cmp)}
	clone.e.root = cloneSubtree(source.e.root, nil)
	clone.e.size = source.e.size
	return clone
}

// RebuildRBT treats source as an ordered sequence of its values and
// inserts them one by one into a fresh RBT configured with cmp,
// discarding source's shape and colors (§4.1 case 3).
func RebuildRBT[T any](source *RBT[T], cmp compare.Func[T]) (*RBT[T], error) {
	t, err := NewRBT(cmp)
	if err != nil {
		return nil, err
	}
	for v := range source.Lnr() {
		t.Insert(v)
	}
	return t, nil
}

// cloneSubtree recursively copies a node subgraph, preserving value,
// color, and shape, and wiring the new parent back-links.
func cloneSubtree[T any](n, parent *node[T]) *node[T] {
	if n == nil {
		return nil
	}
	c := &node[T]{value: n.value, red: n.red, parent: parent}
	c.left = cloneSubtree(n.left, c)
	c.right = cloneSubtree(n.right, c)
	return c
}
