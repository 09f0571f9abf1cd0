package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinkedListPushPop(t *testing.T) {
	l := New[string]()

	assert.Equal(t, 0, l.Size())

	l.Push("a")
	l.Push("b")
	l.Push("c")
	assert.Equal(t, 3, l.Size())

	v, ok := l.Pop()
	assert.True(t, ok)
	assert.Equal(t, "c", v)
	assert.Equal(t, 2, l.Size())
}

func TestLinkedListUnshiftShift(t *testing.T) {
	l := New[int]()

	l.Unshift(1)
	l.Unshift(2)
	l.Unshift(3)

	v, ok := l.Shift()
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	v, ok = l.Shift()
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	v, ok = l.Shift()
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	_, ok = l.Shift()
	assert.False(t, ok)
}

func TestLinkedListEmpty(t *testing.T) {
	l := New[int]()

	_, ok := l.Pop()
	assert.False(t, ok)

	_, ok = l.Shift()
	assert.False(t, ok)

	assert.Equal(t, 0, l.Size())
}
