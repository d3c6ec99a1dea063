package graph

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for graph operations.
var (
	// ErrEmptyUserID indicates a zero-length user id.
	ErrEmptyUserID = errors.New("graph: user id is empty")

	// ErrDuplicateUser indicates AddUser was called with an id that already exists.
	ErrDuplicateUser = errors.New("graph: user already exists")

	// ErrMissingUser indicates an operation referenced a user that does not exist.
	ErrMissingUser = errors.New("graph: user not found")

	// ErrSelfFriendship indicates an attempt to befriend oneself.
	ErrSelfFriendship = errors.New("graph: user cannot befriend themselves")

	// ErrVersionNotFound indicates a version id that was never saved in the History.
	ErrVersionNotFound = errors.New("graph: version not found")

	// ErrOptionViolation is returned when an invalid Option is supplied to Reach.
	ErrOptionViolation = errors.New("graph: invalid option supplied")
)

// Community is one connected group of users.
type Community struct {
	// Root is the union-find representative of the group.
	Root string

	// Members lists the user ids of the group in ascending order.
	Members []string
}

// VersionInfo summarizes one saved snapshot for listing.
type VersionInfo struct {
	Version     int
	Users       int
	Friendships int
}

// Option configures Reach via functional arguments.
// Invalid options are recorded and surfaced as ErrOptionViolation by Reach.
type Option func(*ReachOptions)

// ReachOptions holds parameters for a Reach traversal.
type ReachOptions struct {
	// Ctx allows cancellation.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this many hops. 0 means no limit.
	MaxDepth int

	// FilterNeighbor can skip a friendship by returning false.
	FilterNeighbor func(curr, friend string) bool

	err error
}

// DefaultOptions returns ReachOptions with a background context, no depth
// limit and no filtering.
func DefaultOptions() ReachOptions {
	return ReachOptions{
		Ctx:            context.Background(),
		MaxDepth:       0,
		FilterNeighbor: func(_, _ string) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *ReachOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the traversal to d hops.
//
//	d > 0:  limit to depth d
//	d == 0: no limit
//	d < 0:  invalid → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *ReachOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips friends for which fn returns false.
func WithFilterNeighbor(fn func(curr, friend string) bool) Option {
	return func(o *ReachOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// ReachResult holds the outcome of a Reach traversal:
//   - Order: users visited, in visit sequence.
//   - Depth: hops from the start user.
//   - Parent: predecessor in the breadth-first tree.
type ReachResult struct {
	Order  []string
	Depth  map[string]int
	Parent map[string]string
}

// PathTo reconstructs the friendship chain from the start user to dest.
// ok is false when dest was not reached.
func (r *ReachResult) PathTo(dest string) (path []string, ok bool) {
	if _, ok = r.Depth[dest]; !ok {
		return nil, false
	}
	for cur := dest; ; {
		path = append(path, cur)
		prev, has := r.Parent[cur]
		if !has {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, true
}
