// Command socialverse replays YAML scenarios against a socialverse.Session.
//
// Usage:
//
//	socialverse replay scenario.yaml [--config config.yaml] [--log-level debug] [--dev] [--strict]
//	socialverse version
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
