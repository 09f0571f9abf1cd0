package tree

import (
	"iter"

	"github.com/barnowlsnest/go-ordset/pkg/list"
)

// The five traversal orders are lazy, finite, single-pass sequences over
// values (not nodes): behavior is unspecified if the tree is mutated
// while one is being drained (§4.1). Depth-first orders use an explicit
// Stack in place of recursion: in-order, reverse in-order and pre-order
// need O(h) auxiliary space, while post-order stacks every node before it
// yields the first value (O(n) auxiliary space). Level order uses a Queue
// (O(w) auxiliary space) — the same iterative, stack-safe approach the
// teacher's BST traversals use.

// lnrSeq yields values in-order: left, node, right. For a BST/RBT this
// is ascending comparator order.
func lnrSeq[T any](root *node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		s := list.NewStack[*node[T]]()
		cur := root
		for cur != nil || !s.IsEmpty() {
			for cur != nil {
				s.Push(cur)
				cur = cur.left
			}
			n, _ := s.Pop()
			if !yield(n.value) {
				return
			}
			cur = n.right
		}
	}
}

// rnlSeq yields values in reverse in-order: right, node, left.
func rnlSeq[T any](root *node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		s := list.NewStack[*node[T]]()
		cur := root
		for cur != nil || !s.IsEmpty() {
			for cur != nil {
				s.Push(cur)
				cur = cur.right
			}
			n, _ := s.Pop()
			if !yield(n.value) {
				return
			}
			cur = n.left
		}
	}
}

// nlrSeq yields values pre-order: node, left, right.
func nlrSeq[T any](root *node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if root == nil {
			return
		}
		s := list.NewStack[*node[T]]()
		s.Push(root)
		for !s.IsEmpty() {
			n, _ := s.Pop()
			if !yield(n.value) {
				return
			}
			if n.right != nil {
				s.Push(n.right)
			}
			if n.left != nil {
				s.Push(n.left)
			}
		}
	}
}

// lrnSeq yields values post-order: left, right, node. Built with two
// stacks: the first produces a reverse post-order walk, the second
// replays it forwards, mirroring the teacher's PostOrder.
func lrnSeq[T any](root *node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if root == nil {
			return
		}
		s1 := list.NewStack[*node[T]]()
		s2 := list.NewStack[*node[T]]()
		s1.Push(root)

		for !s1.IsEmpty() {
			n, _ := s1.Pop()
			s2.Push(n)
			if n.left != nil {
				s1.Push(n.left)
			}
			if n.right != nil {
				s1.Push(n.right)
			}
		}

		for !s2.IsEmpty() {
			n, _ := s2.Pop()
			if !yield(n.value) {
				return
			}
		}
	}
}

// lvlSeq yields values breadth-first, level by level, left to right.
func lvlSeq[T any](root *node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if root == nil {
			return
		}
		q := list.NewQueue[*node[T]]()
		q.Enqueue(root)
		for !q.IsEmpty() {
			n, _ := q.Dequeue()
			if !yield(n.value) {
				return
			}
			if n.left != nil {
				q.Enqueue(n.left)
			}
			if n.right != nil {
				q.Enqueue(n.right)
			}
		}
	}
}
