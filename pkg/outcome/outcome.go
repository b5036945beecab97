package outcome

import "fmt"

// Success is the variant of Outcome holding a value.
type Success[T any] struct {
	value T
}

// Failure is the variant of Outcome holding an error.
// Build it with Fail; the zero value reports ErrNilFailure.
type Failure[T any] struct {
	err error
}

var (
	_ Outcome[int] = Success[int]{}
	_ Outcome[int] = Failure[int]{}
)

// Succeed returns a successful outcome holding v.
func Succeed[T any](v T) Outcome[T] {
	return Success[T]{value: v}
}

// Fail returns a failed outcome holding err. A nil err (including a typed
// nil pointer) is replaced by ErrNilFailure so a Failure never reports nil.
func Fail[T any](err error) Outcome[T] {
	if IsNil(err) {
		err = ErrNilFailure
	}
	return Failure[T]{err: err}
}

// FromPair lifts a conventional (value, error) pair into an Outcome.
// The value is discarded when err is non-nil.
func FromPair[T any](v T, err error) Outcome[T] {
	if !IsNil(err) {
		return Failure[T]{err: err}
	}
	return Success[T]{value: v}
}

// Try evaluates fn once, immediately, and captures its result.
func Try[T any](fn func() (T, error)) Outcome[T] {
	return FromPair(fn())
}

// Catch is Try that also recovers a panic raised by fn and turns it into a
// Failure holding a *PanicError.
func Catch[T any](fn func() (T, error)) (out Outcome[T]) {
	defer func() {
		if r := recover(); r != nil {
			out = Failure[T]{err: newPanicError(r)}
		}
	}()

	return Try(fn)
}

func (s Success[T]) Value() T {
	return s.value
}

func (s Success[T]) Resolve() (T, error) {
	return s.value, nil
}

func (s Success[T]) MustResolve() T {
	return s.value
}

func (Success[T]) IsSuccess() bool {
	return true
}

func (Success[T]) IsFailure() bool {
	return false
}

func (Success[T]) Err() error {
	return nil
}

func (s Success[T]) String() string {
	return fmt.Sprintf("Success(%v)", s.value)
}

func (Success[T]) sealed() {}

func (f Failure[T]) Err() error {
	if f.err == nil {
		return ErrNilFailure
	}
	return f.err
}

func (f Failure[T]) Resolve() (T, error) {
	var zero T
	return zero, f.Err()
}

// MustResolve panics with the captured error itself, so a recover can match
// it with errors.Is.
func (f Failure[T]) MustResolve() T {
	panic(f.Err())
}

func (Failure[T]) IsSuccess() bool {
	return false
}

func (Failure[T]) IsFailure() bool {
	return true
}

func (f Failure[T]) String() string {
	return fmt.Sprintf("Failure(%v)", f.Err())
}

func (Failure[T]) sealed() {}
