package graph

import "fmt"

// queueItem pairs a user id with its hop count and its parent's id.
type queueItem struct {
	id     string
	depth  int
	parent string // empty for the start user
}

// walker encapsulates mutable traversal state.
type walker struct {
	snap    *Snapshot
	opts    ReachOptions
	queue   []queueItem
	visited map[string]bool
	res     *ReachResult
}

// Reach runs a breadth-first traversal of friendships from start and reports
// each reachable user's degree of separation.
//
// Friends are expanded in ascending id order, so Order is deterministic.
// Returns ErrMissingUser for an unknown start, ErrOptionViolation for bad
// options, or the context error on cancellation.
//
// Complexity: O(V + E·log d).
func Reach(s *Snapshot, start string, opts ...Option) (*ReachResult, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !s.HasUser(start) {
		return nil, fmt.Errorf("%w: %q", ErrMissingUser, start)
	}

	n := s.UserCount()
	w := &walker{
		snap:    s,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[string]bool, n),
		res: &ReachResult{
			Order:  make([]string, 0, n),
			Depth:  make(map[string]int, n),
			Parent: make(map[string]string, n),
		},
	}
	w.enqueue(start, 0, "")

	return w.res, w.loop()
}

// enqueue marks id visited at depth d and records its parent.
func (w *walker) enqueue(id string, d int, parent string) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != "" {
		w.res.Parent[id] = parent
	}
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

// loop processes the queue until empty or cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.id)
		w.enqueueFriends(item)
	}

	return nil
}

// enqueueFriends applies filtering and MaxDepth and enqueues each unseen friend.
func (w *walker) enqueueFriends(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, friend := range w.snap.Friends(item.id) {
		if !w.opts.FilterNeighbor(item.id, friend) {
			continue
		}
		if !w.visited[friend] {
			w.enqueue(friend, nextDepth, item.id)
		}
	}
}
