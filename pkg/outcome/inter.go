package outcome

// Resolver is implemented by values that hold either a result or the error
// that prevented it.
type Resolver[T any] interface {
	// Resolve returns the value, or T's zero value and the captured error
	Resolve() (T, error)
	// MustResolve returns the value and panics with the captured error otherwise
	MustResolve() T
}

// Outcome is the result of an operation: a Success holding a value or a
// Failure holding an error. Success[T] and Failure[T] are its only
// implementations; use a type switch on them to inspect the active variant.
//
// A nil Outcome is not a valid outcome.
type Outcome[T any] interface {
	Resolver[T]
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
	// Err returns the error of a Failure, nil for a Success
	Err() error

	sealed()
}
