// Package socialverse wires the persistent structures of this module into a
// single social-network session.
//
// A Session owns:
//   - a graph.History of friendship snapshots with time travel,
//   - a feed.List of posts with undo and redo,
//   - a stack.Stack of Activity records (newest first),
//   - a queue.Queue of Notification records (oldest first),
//   - a userindex.Index ordering users with numeric ids.
//
// Communities are recomputed from the current snapshot on demand, so they
// always agree with the graph, including after TimeTravel.
//
// Ambient concerns follow one pattern: the caller hands in a validated Config,
// an optional *zap.Logger (default no-op) and an optional
// prometheus.Registerer (default a private registry). Nothing is exposed over
// the network.
//
// Concurrency: every structure serializes its own writers, so a Session may be
// shared between goroutines. Operations that touch several structures (for
// example AddFriendship recording an activity) are not atomic as a whole.
package socialverse
