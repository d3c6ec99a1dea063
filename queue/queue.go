package queue

import (
	"sync"

	"github.com/katalvlaran/socialverse/ledger"
)

type cell[T any] struct {
	value T
	next  *cell[T]
}

func reverse[T any](c *cell[T]) *cell[T] {
	var out *cell[T]
	for ; c != nil; c = c.next {
		out = &cell[T]{value: c.value, next: out}
	}

	return out
}

// state is one immutable queue version.
type state[T any] struct {
	front *cell[T]
	rear  *cell[T]
	size  int
}

// Queue is a versioned amortized queue. Every version's state is saved in a
// ledger.Ledger; the ledger's current id is the queue's version.
type Queue[T any] struct {
	mu       sync.Mutex // serializes writers
	ledger   *ledger.Ledger[state[T]]
	enqueued int
	rebuilds int
}

// New returns a queue holding only the empty version 0.
func New[T any]() *Queue[T] {
	q := &Queue[T]{ledger: ledger.New[state[T]]()}
	q.ledger.Save(0, state[T]{})

	return q
}

// head returns the current version id and its state.
func (q *Queue[T]) head() (int, state[T]) {
	v := q.ledger.Current()
	st, _ := q.ledger.Get(v)

	return v, st
}

// Enqueue appends value to the current version and returns the new version.
// Complexity: O(1).
func (q *Queue[T]) Enqueue(value T) int {
	q.mu.Lock()
	defer q.mu.Unlock()

	v, st := q.head()
	q.ledger.Save(v+1, state[T]{
		front: st.front,
		rear:  &cell[T]{value: value, next: st.rear},
		size:  st.size + 1,
	})
	q.enqueued++

	return v + 1
}

// Dequeue removes and returns the oldest value of the current version.
// On an empty queue it returns the zero value and false without creating a version.
// Complexity: O(1) amortized.
func (q *Queue[T]) Dequeue() (value T, ok bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	v, st := q.head()
	if st.size == 0 {
		return value, false
	}
	if st.front == nil {
		st.front, st.rear = reverse(st.rear), nil
		q.rebuilds++
	}
	value = st.front.value
	q.ledger.Save(v+1, state[T]{front: st.front.next, rear: st.rear, size: st.size - 1})

	return value, true
}

// Peek returns the oldest value of the current version without creating a version.
func (q *Queue[T]) Peek() (value T, ok bool) {
	_, st := q.head()

	switch {
	case st.front != nil:
		return st.front.value, true
	case st.rear != nil:
		c := st.rear
		for c.next != nil {
			c = c.next
		}
		return c.value, true
	default:
		return value, false
	}
}

// All returns the current version's values, oldest first.
func (q *Queue[T]) All() []T {
	_, st := q.head()

	return st.values()
}

// At returns the values of version, oldest first; ok is false for unknown versions.
func (q *Queue[T]) At(version int) ([]T, bool) {
	st, ok := q.ledger.Get(version)
	if !ok {
		return nil, false
	}

	return st.values(), true
}

func (st state[T]) values() []T {
	out := make([]T, 0, st.size)
	for c := st.front; c != nil; c = c.next {
		out = append(out, c.value)
	}
	tail := len(out)
	for c := st.rear; c != nil; c = c.next {
		out = append(out, c.value)
	}
	// rear is newest first; flip just that segment.
	for i, j := tail, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return out
}

// Size returns the number of values in version (0 for unknown versions).
func (q *Queue[T]) Size(version int) int {
	st, _ := q.ledger.Get(version)

	return st.size
}

// Version returns the current version.
func (q *Queue[T]) Version() int { return q.ledger.Current() }

// Versions returns every version id in ascending order.
func (q *Queue[T]) Versions() []int { return q.ledger.Versions() }

// Enqueued returns how many values were ever enqueued across all versions.
func (q *Queue[T]) Enqueued() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.enqueued
}

// Rebuilds returns how many times Dequeue reversed rear into front.
func (q *Queue[T]) Rebuilds() int {
	q.mu.Lock()
	defer q.mu.Unlock()

	return q.rebuilds
}
