package feed

import (
	"errors"
	"fmt"
	"iter"
	"sync"
)

// ErrVersionNotFound indicates a version index outside 0..Latest().
var ErrVersionNotFound = errors.New("feed: version not found")

// Notes recorded for versions that are not produced by Add.
const (
	NoteInitial     = "Initial version"
	NoteEmptyDelete = "Delete attempted on empty list"
)

// node is one immutable link of a chain; next is shared between versions.
type node[T any] struct {
	value T
	next  *node[T]
}

// version is one published state: a chain head and a human-readable note.
type version[T any] struct {
	head *node[T]
	note string
}

// List is a versioned, structurally shared linked list.
type List[T comparable] struct {
	mu       sync.RWMutex
	versions []version[T]
	undo     []int // source versions of past edits, most recent last
	redo     []int // versions left by Undo, most recent last
}

// New returns a list holding only the empty version 0.
func New[T comparable]() *List[T] {
	return &List[T]{versions: []version[T]{{note: NoteInitial}}}
}

// Latest returns the highest version index.
func (l *List[T]) Latest() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.versions) - 1
}

// Len returns the number of versions, including version 0.
func (l *List[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.versions)
}

// Add prepends value onto version v and returns the new version index.
// The edit is recorded for Undo and clears the redo history.
// Complexity: O(1); the source chain is shared, never copied.
func (l *List[T]) Add(v int, value T) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	src, err := l.get(v)
	if err != nil {
		return 0, err
	}

	return l.record(v, version[T]{
		head: &node[T]{value: value, next: src.head},
		note: fmt.Sprintf("Added '%v'", value),
	}), nil
}

// Append prepends value onto the latest version.
func (l *List[T]) Append(value T) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	v := len(l.versions) - 1

	return l.record(v, version[T]{
		head: &node[T]{value: value, next: l.versions[v].head},
		note: fmt.Sprintf("Added '%v'", value),
	})
}

// Delete drops the head of version v and returns the new version index.
// Deleting from an empty version still publishes a (still empty) version.
// Complexity: O(1).
func (l *List[T]) Delete(v int) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	src, err := l.get(v)
	if err != nil {
		return 0, err
	}

	return l.record(v, dropHead(src)), nil
}

// DeleteLatest drops the head of the latest version. The latest version is
// resolved under the write lock, so a concurrent Append is never lost.
// Complexity: O(1).
func (l *List[T]) DeleteLatest() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	v := len(l.versions) - 1

	return l.record(v, dropHead(l.versions[v]))
}

// dropHead returns the successor of src with its head removed.
func dropHead[T comparable](src version[T]) version[T] {
	if src.head == nil {
		return version[T]{note: NoteEmptyDelete}
	}

	return version[T]{head: src.head.next, note: fmt.Sprintf("Deleted '%v'", src.head.value)}
}

// record appends ver, remembers src for Undo and forgets redo history.
func (l *List[T]) record(src int, ver version[T]) int {
	l.versions = append(l.versions, ver)
	l.undo = append(l.undo, src)
	l.redo = l.redo[:0]

	return len(l.versions) - 1
}

// Undo appends a version equal to the most recent edit's source version.
// ok is false when there is nothing to undo; no version is created then.
//
// Steps:
//  1. Pop the source version of the most recent edit from the undo record.
//  2. Append a version sharing that source's head, noted "Undo → version N".
//  3. Push the version being left onto the redo record.
//
// History is never truncated: the undone version stays addressable.
//
// Complexity: O(1).
func (l *List[T]) Undo() (v int, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// 1. Nothing recorded means nothing to jump back to.
	if len(l.undo) == 0 {
		return 0, false
	}
	last := l.undo[len(l.undo)-1]
	l.undo = l.undo[:len(l.undo)-1]
	current := len(l.versions) - 1

	// 2. Re-publish the old head; the chain is shared, not copied.
	l.versions = append(l.versions, version[T]{
		head: l.versions[last].head,
		note: fmt.Sprintf("Undo → version %d", last),
	})
	// 3. Redo returns to the state we just left.
	l.redo = append(l.redo, current)

	return len(l.versions) - 1, true
}

// Redo appends a version equal to the version most recently left by Undo,
// and records the version it leaves so a following Undo returns to it.
// ok is false when there is nothing to redo.
//
// Steps:
//  1. Pop the target from the redo record.
//  2. Append a version sharing the target's head, noted "Redo → version N".
//  3. Push the version being left onto the undo record (mirror of Undo step 3).
//
// Complexity: O(1).
func (l *List[T]) Redo() (v int, ok bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	// 1. Redo is only possible directly after one or more undos.
	if len(l.redo) == 0 {
		return 0, false
	}
	target := l.redo[len(l.redo)-1]
	l.redo = l.redo[:len(l.redo)-1]
	current := len(l.versions) - 1

	// 2. Re-publish the undone head.
	l.versions = append(l.versions, version[T]{
		head: l.versions[target].head,
		note: fmt.Sprintf("Redo → version %d", target),
	})
	// 3. Record the version left, not the target, so Undo after Redo is a real step back.
	l.undo = append(l.undo, current)

	return len(l.versions) - 1, true
}

// CanUndo reports whether Undo would create a version.
func (l *List[T]) CanUndo() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.undo) > 0
}

// CanRedo reports whether Redo would create a version.
func (l *List[T]) CanRedo() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.redo) > 0
}

// View returns version v's values head-to-tail as a lazy sequence.
// The sequence is finite and can be ranged over any number of times.
func (l *List[T]) View(v int) (iter.Seq[T], error) {
	l.mu.RLock()
	src, err := l.get(v)
	l.mu.RUnlock()
	if err != nil {
		return nil, err
	}
	head := src.head

	return func(yield func(T) bool) {
		for n := head; n != nil; n = n.next {
			if !yield(n.value) {
				return
			}
		}
	}, nil
}

// Values collects version v's values head-to-tail.
func (l *List[T]) Values(v int) ([]T, error) {
	seq, err := l.View(v)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0)
	for x := range seq {
		out = append(out, x)
	}

	return out, nil
}

// Head returns the first value of version v; ok is false for an empty chain.
func (l *List[T]) Head(v int) (value T, ok bool, err error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	src, err := l.get(v)
	if err != nil || src.head == nil {
		return value, false, err
	}

	return src.head.value, true, nil
}

// Note returns the note recorded for version v.
func (l *List[T]) Note(v int) (string, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	src, err := l.get(v)
	if err != nil {
		return "", err
	}

	return src.note, nil
}

// SharesTail reports whether the chains of versions a and b meet at a common
// node, i.e. whether one stores no private copy of the other's tail.
func (l *List[T]) SharesTail(a, b int) (bool, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	va, err := l.get(a)
	if err != nil {
		return false, err
	}
	vb, err := l.get(b)
	if err != nil {
		return false, err
	}
	seen := make(map[*node[T]]struct{})
	for n := va.head; n != nil; n = n.next {
		seen[n] = struct{}{}
	}
	for m := vb.head; m != nil; m = m.next {
		if _, ok := seen[m]; ok {
			return true, nil
		}
	}

	return false, nil
}

// get returns version v; callers must hold mu.
func (l *List[T]) get(v int) (version[T], error) {
	if v < 0 || v >= len(l.versions) {
		return version[T]{}, fmt.Errorf("%w: %d (latest %d)", ErrVersionNotFound, v, len(l.versions)-1)
	}

	return l.versions[v], nil
}
