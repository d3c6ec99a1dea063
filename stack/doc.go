// Package stack provides a persistent LIFO log with one version per mutation.
//
// Version 0 is the empty stack. Push links a new node onto the previous top,
// so every version shares the untouched remainder with its predecessor. Pop
// publishes a version whose top is the old top's next node.
//
// Popping an empty top is not an error: it reports ok == false and creates no
// version. Pushes() tells "never used" apart from "empty at this version".
//
// Versions live in a ledger.Ledger. Writers are serialized; any version may
// be read concurrently.
package stack
