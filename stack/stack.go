package stack

import (
	"sync"

	"github.com/katalvlaran/socialverse/ledger"
)

type node[T any] struct {
	value T
	next  *node[T]
	size  int
}

func (n *node[T]) len() int {
	if n == nil {
		return 0
	}

	return n.size
}

// Stack is a versioned, structurally shared stack. Every version's top node
// is saved in a ledger.Ledger; the ledger's current id is the stack's version.
type Stack[T any] struct {
	mu     sync.Mutex // serializes writers
	ledger *ledger.Ledger[*node[T]]
	pushes int
}

// New returns a stack holding only the empty version 0.
func New[T any]() *Stack[T] {
	s := &Stack[T]{ledger: ledger.New[*node[T]]()}
	s.ledger.Save(0, nil)

	return s
}

// top returns the current version id and its top node.
func (s *Stack[T]) top() (int, *node[T]) {
	v := s.ledger.Current()
	n, _ := s.ledger.Get(v)

	return v, n
}

// Push puts value on top of the current version and returns the new version.
// Complexity: O(1).
func (s *Stack[T]) Push(value T) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, top := s.top()
	s.ledger.Save(v+1, &node[T]{value: value, next: top, size: top.len() + 1})
	s.pushes++

	return v + 1
}

// Pop removes the top of the current version and returns it.
// On an empty top it returns the zero value and false without creating a version.
// Complexity: O(1).
func (s *Stack[T]) Pop() (value T, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	v, top := s.top()
	if top == nil {
		return value, false
	}
	s.ledger.Save(v+1, top.next)

	return top.value, true
}

// Peek returns the top of the current version without creating a version.
func (s *Stack[T]) Peek() (value T, ok bool) {
	if _, top := s.top(); top != nil {
		return top.value, true
	}

	return value, false
}

// All returns the current version's values, newest first.
func (s *Stack[T]) All() []T {
	_, top := s.top()

	return collect(top)
}

// At returns the values of version, newest first; ok is false for unknown versions.
func (s *Stack[T]) At(version int) ([]T, bool) {
	top, ok := s.ledger.Get(version)
	if !ok {
		return nil, false
	}

	return collect(top), true
}

// Size returns the number of values in version (0 for unknown versions).
func (s *Stack[T]) Size(version int) int {
	top, _ := s.ledger.Get(version)

	return top.len()
}

// Version returns the current version.
func (s *Stack[T]) Version() int { return s.ledger.Current() }

// Versions returns every version id in ascending order.
func (s *Stack[T]) Versions() []int { return s.ledger.Versions() }

// Pushes returns how many values were ever pushed across all versions.
func (s *Stack[T]) Pushes() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.pushes
}

func collect[T any](top *node[T]) []T {
	out := make([]T, 0, top.len())
	for n := top; n != nil; n = n.next {
		out = append(out, n.value)
	}

	return out
}
