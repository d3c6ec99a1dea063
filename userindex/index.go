package userindex

import (
	"iter"
	"strconv"
)

// Entry is one indexed user.
type Entry struct {
	UID   int64
	Name  string
	Email string
}

type node struct {
	Entry
	left, right *node
}

// Index is a binary search tree ordered by UID.
type Index struct {
	root *node
	size int
}

// New returns an empty Index.
func New() *Index { return &Index{} }

// ParseUID reports whether s is the canonical base-10 spelling of an int64
// usable as an ordered key, i.e. strconv.FormatInt(uid, 10) == s.
// Non-canonical spellings of a number ("05", "+5", " 5", "-0") are rejected
// so that each key maps back to exactly one id string; letters, empty input
// and overflow are rejected too.
func ParseUID(s string) (uid int64, ok bool) {
	uid, err := strconv.ParseInt(s, 10, 64)
	if err != nil || strconv.FormatInt(uid, 10) != s {
		return 0, false
	}

	return uid, true
}

// Insert adds a user, or updates name and email when uid is already present.
// It reports whether a new node was created.
// Complexity: O(height).
func (x *Index) Insert(uid int64, name, email string) bool {
	link := &x.root
	for *link != nil {
		n := *link
		switch {
		case uid < n.UID:
			link = &n.left
		case uid > n.UID:
			link = &n.right
		default:
			n.Name, n.Email = name, email
			return false
		}
	}
	*link = &node{Entry: Entry{UID: uid, Name: name, Email: email}}
	x.size++

	return true
}

// Search returns the entry for uid.
// Complexity: O(height).
func (x *Index) Search(uid int64) (Entry, bool) {
	n := x.root
	for n != nil {
		switch {
		case uid < n.UID:
			n = n.left
		case uid > n.UID:
			n = n.right
		default:
			return n.Entry, true
		}
	}

	return Entry{}, false
}

// Delete removes uid and reports whether it was present.
// A node with two children takes its in-order successor's entry, and the
// successor node is unlinked from the right subtree.
// Complexity: O(height).
func (x *Index) Delete(uid int64) bool {
	link := &x.root
	for *link != nil && (*link).UID != uid {
		if uid < (*link).UID {
			link = &(*link).left
		} else {
			link = &(*link).right
		}
	}
	target := *link
	if target == nil {
		return false
	}

	switch {
	case target.left == nil:
		*link = target.right
	case target.right == nil:
		*link = target.left
	default:
		succ := &target.right
		for (*succ).left != nil {
			succ = &(*succ).left
		}
		target.Entry = (*succ).Entry
		*succ = (*succ).right
	}
	x.size--

	return true
}

// InOrder yields entries in ascending UID order.
// The sequence reflects the tree at the time each step runs; do not mutate
// the index while ranging over it.
func (x *Index) InOrder() iter.Seq[Entry] {
	return func(yield func(Entry) bool) {
		var stack []*node
		n := x.root
		for n != nil || len(stack) > 0 {
			for n != nil {
				stack = append(stack, n)
				n = n.left
			}
			n = stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if !yield(n.Entry) {
				return
			}
			n = n.right
		}
	}
}

// Entries collects InOrder into a slice.
func (x *Index) Entries() []Entry {
	out := make([]Entry, 0, x.size)
	for e := range x.InOrder() {
		out = append(out, e)
	}

	return out
}

// Len returns the number of entries.
func (x *Index) Len() int { return x.size }

// Height returns the number of nodes on the longest root-to-leaf path.
func (x *Index) Height() int {
	if x.root == nil {
		return 0
	}
	type frame struct {
		n     *node
		depth int
	}
	best := 0
	stack := []frame{{x.root, 1}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if f.depth > best {
			best = f.depth
		}
		if f.n.left != nil {
			stack = append(stack, frame{f.n.left, f.depth + 1})
		}
		if f.n.right != nil {
			stack = append(stack, frame{f.n.right, f.depth + 1})
		}
	}

	return best
}
