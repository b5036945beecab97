// Package chain provides a minimal fluent Chain[T] for synchronous
// composition of Outcome[T] values.
//
// It wraps the outcome combinators behind methods so a pipeline reads left
// to right:
// - Start/FromValue/FromTry: create a Chain
// - Then/ThenTry/Map: compose steps on the successful value
// - MapError/FlatMapError: recover from a failure
// - Or/And: pick the first success or the first failure among chains
// - While/WhileChain/RepeatUntil/RepeatChainUntil: repeat a step
// - Ensure: trigger side effects without changing the outcome
// - Resolve/Finally: leave the chain
//
// Every step is skipped once the chain holds a Failure. Steps that change
// the value type are package functions (To, ToTry) since methods cannot
// introduce type parameters.
package chain
