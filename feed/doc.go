// Package feed provides a persistent singly-linked list of posts with undo/redo.
//
// Versions are indexed 0..N and version 0 is the empty list. Every mutation
// appends a version; nothing is ever truncated:
//
//   - Add(v, x) prepends x onto version v's chain. The new head points at v's
//     head, so the whole tail is shared, not copied.
//   - Delete(v) publishes a version whose head is v's second node.
//   - Undo() jumps back to the last recorded source version by appending a
//     version with that head; Redo() is the mirror. Both append, so undo
//     followed by redo restores the visible sequence and loses no history.
//
// Reads (View, Values, Note, Compare) take a read lock; writes are serialized.
package feed
