package main

import "github.com/picol-lang/picol"

// needsMore reports whether source should be extended with another line
// before evaluating, by delegating to picol.CheckComplete. Kept as its
// own file since a host REPL is the only caller that cares about partial
// input; the core evaluator never needs this (spec.md section 4.1).
func needsMore(source string) bool {
	return picol.CheckComplete(source) == picol.ParseIncomplete
}
