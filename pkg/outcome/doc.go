// Package outcome provides Outcome[T], the result of an operation that either
// succeeded with a value or failed with an error, and synchronous combinators
// for composing outcomes without branching at every step.
//
// An Outcome is always exactly one of two variants:
// - Success[T]: holds the value
// - Failure[T]: holds a non-nil error
//
// Highlights:
// - Succeed/Fail: construct an Outcome directly
// - Try/Catch/FromPair: evaluate a (T, error) computation eagerly
// - Map/TryMap/FlatMap: transform successful values
// - MapError/FlatMapError: recover a failure into a new outcome
// - Resolve/MustResolve: hand the value or the captured error back
// - DoubleMap/Fold/Match/Tee/TeeIf: reduce and inspect
// - Ensure/Validate/Collect/Join: check and combine
//
// For fluent left-to-right composition see package chain.
package outcome
