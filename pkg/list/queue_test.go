package list

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewQueue(t *testing.T) {
	t.Run("should create empty queue", func(t *testing.T) {
		q := NewQueue[int]()

		assert.NotNil(t, q)
		assert.Equal(t, 0, q.Size())
		assert.True(t, q.IsEmpty())
	})
}

func TestQueueEnqueueDequeue(t *testing.T) {
	t.Run("should dequeue in FIFO order", func(t *testing.T) {
		q := NewQueue[int]()
		q.Enqueue(1)
		q.Enqueue(2)
		q.Enqueue(3)

		assert.Equal(t, 3, q.Size())

		v, ok := q.Dequeue()
		assert.True(t, ok)
		assert.Equal(t, 1, v)

		v, ok = q.Dequeue()
		assert.True(t, ok)
		assert.Equal(t, 2, v)

		v, ok = q.Dequeue()
		assert.True(t, ok)
		assert.Equal(t, 3, v)

		assert.True(t, q.IsEmpty())
	})

	t.Run("should return false when dequeuing from empty queue", func(t *testing.T) {
		q := NewQueue[int]()

		_, ok := q.Dequeue()
		assert.False(t, ok)
	})
}
