// Package queue provides a persistent FIFO log with one version per mutation.
//
// Each version is a pair of immutable cons lists:
//
//	front: oldest first, consumed by Dequeue
//	rear:  newest first, extended by Enqueue
//
// and the logical order is front ++ reverse(rear). Enqueue conses onto rear in
// O(1). Dequeue takes the head of front; when front is empty it first rebuilds
// front by reversing rear and clears rear. A single Dequeue can cost O(n), but
// any sequence of operations from one version averages O(1) each.
//
// Versions share list cells, so publishing a version never copies a sequence.
// Dequeue on an empty queue reports ok == false and creates no version.
package queue
