package queue

import (
	"github.com/pkg/errors"
)

var ErrInvalidCapacity = errors.New("fixed queue capacity must be greater than zero")

// FixedQueue is a bounded FIFO ring buffer.
// Once the queue is full, Add evicts the oldest element to admit the new one.
type FixedQueue[T any] struct {
	buf []T

	// head is the physical slot of the oldest element
	head int
	size int
}

func NewFixedQueue[T any](capacity int) (*FixedQueue[T], error) {
	if capacity <= 0 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "capacity: %d", capacity)
	}

	return &FixedQueue[T]{
		buf: make([]T, capacity),
	}, nil
}

// Add appends v as the newest element, evicting the oldest one when the queue is full.
func (q *FixedQueue[T]) Add(v T) {
	c := len(q.buf)
	if q.size < c {
		q.buf[(q.head+q.size)%c] = v
		q.size++
		return
	}

	q.buf[q.head] = v
	q.head = (q.head + 1) % c
}

// At returns the element at the logical index i, 0 being the oldest retained element.
// ok is false when i is out of range.
func (q *FixedQueue[T]) At(i int) (v T, ok bool) {
	if i < 0 || i >= q.size {
		return v, false
	}

	return q.buf[(q.head+i)%len(q.buf)], true
}

func (q *FixedQueue[T]) Size() int {
	return q.size
}

func (q *FixedQueue[T]) Cap() int {
	return len(q.buf)
}

func (q *FixedQueue[T]) IsFull() bool {
	return q.size == len(q.buf)
}

// Clear drops all retained elements, the capacity is kept.
func (q *FixedQueue[T]) Clear() {
	clear(q.buf)
	q.head = 0
	q.size = 0
}

// Values returns a copy of the retained elements, oldest first.
func (q *FixedQueue[T]) Values() []T {
	values := make([]T, q.size)
	for i := range values {
		values[i] = q.buf[(q.head+i)%len(q.buf)]
	}
	return values
}
