package chain

import "github.com/ib-77/outcome/pkg/outcome"

// Chain holds one outcome. The zero Chain, or one started from a nil
// outcome, behaves as a Failure reporting outcome.ErrNilFailure.
type Chain[T any] struct {
	out outcome.Outcome[T]
}

func Start[T any](o outcome.Outcome[T]) Chain[T] {
	return Chain[T]{out: o}
}

func FromValue[T any](v T) Chain[T] {
	return Start(outcome.Succeed(v))
}

// FromTry evaluates fn right away and starts the chain from its result.
func FromTry[T any](fn func() (T, error)) Chain[T] {
	return Start(outcome.Try(fn))
}

func (c Chain[T]) current() outcome.Outcome[T] {
	if c.out == nil {
		return outcome.Fail[T](outcome.ErrNilFailure)
	}
	return c.out
}

func (c Chain[T]) Outcome() outcome.Outcome[T] {
	return c.current()
}

func (c Chain[T]) Resolve() (T, error) {
	return c.current().Resolve()
}

// Then composes functions that already return outcome.Outcome[T]
func (c Chain[T]) Then(onSuccess func(v T) outcome.Outcome[T]) Chain[T] {
	return Chain[T]{out: outcome.FlatMap(c.current(), onSuccess)}
}

// ThenTry composes functions that return (T, error), like repo calls
func (c Chain[T]) ThenTry(try func(v T) (T, error)) Chain[T] {
	return Chain[T]{out: outcome.TryMap(c.current(), try)}
}

// Map transforms the successful value
func (c Chain[T]) Map(onSuccess func(v T) T) Chain[T] {
	return Chain[T]{out: outcome.Map(c.current(), onSuccess)}
}

// MapError replaces a failure with a successful value derived from its error
func (c Chain[T]) MapError(onFailure func(err error) T) Chain[T] {
	return Chain[T]{out: outcome.MapError(c.current(), onFailure)}
}

// FlatMapError replaces a failure with the outcome returned by onFailure
func (c Chain[T]) FlatMapError(onFailure func(err error) outcome.Outcome[T]) Chain[T] {
	return Chain[T]{out: outcome.FlatMapError(c.current(), onFailure)}
}

// RepeatUntil applies onSuccess at least once, then again for as long as
// until holds for the new value. It stops at the first failure.
func (c Chain[T]) RepeatUntil(onSuccess func(v T) outcome.Outcome[T],
	until func(v T) bool) Chain[T] {

	return c.RepeatChainUntil(func(v T) Chain[T] {
		return FromValue(v).Then(onSuccess)
	}, until)
}

// RepeatChainUntil is RepeatUntil for steps that are chains themselves.
func (c Chain[T]) RepeatChainUntil(inC func(v T) Chain[T], until func(v T) bool) Chain[T] {
	if c.current().IsFailure() {
		return c
	}

	for {
		c = Chain[T]{out: inC(c.current().MustResolve()).current()}

		out := c.current()
		if out.IsFailure() || !until(out.MustResolve()) {
			return c
		}
	}
}

// While applies onSuccess for as long as the chain succeeds and while holds
// for the current value.
func (c Chain[T]) While(onSuccess func(v T) outcome.Outcome[T], while func(v T) bool) Chain[T] {
	return c.WhileChain(func(v T) Chain[T] {
		return FromValue(v).Then(onSuccess)
	}, while)
}

// WhileChain is While for steps that are chains themselves.
func (c Chain[T]) WhileChain(inC func(v T) Chain[T], while func(v T) bool) Chain[T] {
	for c.current().IsSuccess() && while(c.current().MustResolve()) {
		c = Chain[T]{out: inC(c.current().MustResolve()).current()}
	}
	return c
}

// Or returns the first successful chain among c and alternatives. When none
// succeeded, the first failure wins.
func (c Chain[T]) Or(alternatives ...Chain[T]) Chain[T] {
	if c.current().IsSuccess() {
		return c
	}

	for _, alt := range alternatives {
		if alt.current().IsSuccess() {
			return alt
		}
	}
	return c
}

// And returns the first failed chain among c and required. When all of them
// succeeded, the last one wins.
func (c Chain[T]) And(required ...Chain[T]) Chain[T] {
	last := c
	for _, ch := range append([]Chain[T]{c}, required...) {
		if ch.current().IsFailure() {
			return ch
		}
		last = ch
	}
	return last
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(v T), onFailure func(err error)) Chain[T] {
	outcome.Match(c.current(), onSuccess, onFailure)
	return c
}

// Finally collapses the chain to a final value, delegating to outcome.Fold
func (c Chain[T]) Finally(onSuccess func(v T) T, onFailure func(err error) T) T {
	return outcome.Fold(c.current(), onSuccess, onFailure)
}

// To switches the chain to a new value type via a step returning an outcome
func To[T, U any](c Chain[T], onSuccess func(v T) outcome.Outcome[U]) Chain[U] {
	return Chain[U]{out: outcome.FlatMap(c.current(), onSuccess)}
}

// ToTry switches the chain to a new value type via a (U, error) step
func ToTry[T, U any](c Chain[T], try func(v T) (U, error)) Chain[U] {
	return Chain[U]{out: outcome.TryMap(c.current(), try)}
}
