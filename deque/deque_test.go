package deque

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var _ Deque = (*ArrDeque)(nil)

func TestArrDeque_AddLast(t *testing.T) {
	deque := NewArrDeque(3)
	for i := 0; i < 5; i++ {
		deque.AddLast(float64(i))
	}
	assert.True(t, deque.IsFull())
	assert.Equal(t, 3, deque.Size())
	assert.Equal(t, 0.0, deque.First())
	assert.Equal(t, 2.0, deque.Last())
}

func TestArrDeque_Sliding(t *testing.T) {
	deque := NewArrDeque(4)
	for i := 0; i < 10; i++ {
		if deque.IsFull() {
			deque.RemoveFirst()
		}
		deque.AddLast(float64(i))
	}

	var got []float64
	deque.Traverse(func(i int, val float64) {
		got = append(got, val)
	})
	assert.Equal(t, []float64{6, 7, 8, 9}, got)
}

func TestArrDeque_AddFirst(t *testing.T) {
	deque := NewArrDeque(4)
	deque.AddLast(2)
	deque.AddFirst(1)
	deque.AddFirst(0)
	deque.AddLast(3)

	assert.Equal(t, 0.0, deque.Get(0))
	assert.Equal(t, 1.0, deque.Get(1))
	assert.Equal(t, 2.0, deque.Get(2))
	assert.Equal(t, 3.0, deque.Get(3))

	deque.RemoveLast()
	deque.RemoveFirst()
	assert.Equal(t, 2, deque.Size())
	assert.Equal(t, 1.0, deque.First())
	assert.Equal(t, 2.0, deque.Last())
}

func TestArrDeque_Empty(t *testing.T) {
	deque := NewArrDeque(2)
	assert.True(t, deque.IsEmpty())
	deque.RemoveFirst()
	deque.RemoveLast()
	assert.Equal(t, 0, deque.Size())
	assert.Panics(t, func() { deque.First() })
}

func BenchmarkArrDeque_AddFirst(b *testing.B) {
	deque := NewArrDeque(4000)
	for i := 0; i < b.N; i++ {
		deque.AddFirst(1000)
		deque.RemoveFirst()
	}
}

func BenchmarkArrDeque_RemoveLast(b *testing.B) {
	deque := NewArrDeque(4000)
	for i := 0; i < b.N; i++ {
		deque.AddLast(1000)
		deque.RemoveLast()
	}
}
