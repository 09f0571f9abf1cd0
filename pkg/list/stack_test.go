package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStack(t *testing.T) {
	t.Run("should create empty stack", func(t *testing.T) {
		s := NewStack[int]()

		assert.NotNil(t, s)
		assert.Equal(t, 0, s.Size())
		assert.True(t, s.IsEmpty())
	})
}

func TestStackPush(t *testing.T) {
	t.Run("should push to empty stack", func(t *testing.T) {
		s := NewStack[int]()

		s.Push(1)

		assert.Equal(t, 1, s.Size())
		assert.False(t, s.IsEmpty())
	})

	t.Run("should push multiple elements", func(t *testing.T) {
		s := NewStack[int]()

		s.Push(1)
		s.Push(2)
		s.Push(3)

		assert.Equal(t, 3, s.Size())
		assert.False(t, s.IsEmpty())
	})
}

func TestStackPop(t *testing.T) {
	t.Run("should return false when popping from empty stack", func(t *testing.T) {
		s := NewStack[int]()

		_, ok := s.Pop()

		assert.False(t, ok)
		assert.Equal(t, 0, s.Size())
		assert.True(t, s.IsEmpty())
	})

	t.Run("should pop in LIFO order", func(t *testing.T) {
		s := NewStack[int]()
		s.Push(1)
		s.Push(2)
		s.Push(3)

		v, ok := s.Pop()
		assert.True(t, ok)
		assert.Equal(t, 3, v)

		v, ok = s.Pop()
		assert.True(t, ok)
		assert.Equal(t, 2, v)

		v, ok = s.Pop()
		assert.True(t, ok)
		assert.Equal(t, 1, v)

		assert.True(t, s.IsEmpty())
	})
}
