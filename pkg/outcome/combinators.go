package outcome

import "errors"

// Map applies onSuccess to the value of a Success. A Failure is carried over
// with the same error and onSuccess is not called.
func Map[In, Out any](input Outcome[In], onSuccess func(v In) Out) Outcome[Out] {
	v, err := input.Resolve()
	if err != nil {
		return Failure[Out]{err: err}
	}
	return Success[Out]{value: onSuccess(v)}
}

// TryMap is Map for transforms that can fail: an error returned by
// onSuccess becomes the new Failure.
func TryMap[In, Out any](input Outcome[In], onSuccess func(v In) (Out, error)) Outcome[Out] {
	return FlatMap(input, func(v In) Outcome[Out] {
		return Try(func() (Out, error) { return onSuccess(v) })
	})
}

// MapError recovers a Failure into a Success holding onFailure(err).
// A Success is returned unchanged and onFailure is not called.
func MapError[T any](input Outcome[T], onFailure func(err error) T) Outcome[T] {
	if input.IsFailure() {
		return Success[T]{value: onFailure(input.Err())}
	}
	return input
}

// FlatMap passes the value of a Success to onSuccess and returns the outcome
// it produces. A Failure is carried over and onSuccess is not called.
func FlatMap[In, Out any](input Outcome[In], onSuccess func(v In) Outcome[Out]) Outcome[Out] {
	return flatten(Map(input, onSuccess))
}

// FlatMapError passes the error of a Failure to onFailure and returns the
// outcome it produces. A Success is returned unchanged and onFailure is not
// called.
func FlatMapError[T any](input Outcome[T], onFailure func(err error) Outcome[T]) Outcome[T] {
	return flatten(MapError(Map(input, Succeed[T]), onFailure))
}

// flatten collapses a nested outcome. A nil inner outcome is reported as
// ErrNilFailure.
func flatten[T any](input Outcome[Outcome[T]]) Outcome[T] {
	inner, err := input.Resolve()
	if err != nil {
		return Failure[T]{err: err}
	}
	return orNilFailure(inner)
}

func orNilFailure[T any](input Outcome[T]) Outcome[T] {
	if input == nil {
		return Failure[T]{err: ErrNilFailure}
	}
	return input
}

// DoubleMap maps a Success with onSuccess. For a Failure it calls onFailure
// with the error and carries the failure over.
func DoubleMap[In, Out any](input Outcome[In],
	onSuccess func(v In) Out,
	onFailure func(err error)) Outcome[Out] {

	if input.IsSuccess() {
		return Success[Out]{value: onSuccess(input.MustResolve())}
	}

	if onFailure != nil {
		onFailure(input.Err())
	}
	return Failure[Out]{err: input.Err()}
}

// Fold reduces the outcome to a plain value via the handler of the active
// variant.
func Fold[In, Out any](input Outcome[In],
	onSuccess func(v In) Out,
	onFailure func(err error) Out) Out {

	if v, err := input.Resolve(); err != nil {
		return onFailure(err)
	} else {
		return onSuccess(v)
	}
}

// Match calls the handler of the active variant. Nil handlers are skipped.
func Match[T any](input Outcome[T], onSuccess func(v T), onFailure func(err error)) {
	v, err := input.Resolve()
	if err != nil {
		if onFailure != nil {
			onFailure(err)
		}
		return
	}

	if onSuccess != nil {
		onSuccess(v)
	}
}

// Tee runs a side effect on the value of a Success and returns input as is.
func Tee[T any](input Outcome[T], onSuccess func(v T)) Outcome[T] {
	Match(input, onSuccess, nil)
	return input
}

// TeeIf runs a side effect on the value of a Success when condition holds,
// and returns input as is.
func TeeIf[T any](input Outcome[T],
	condition func(v T) bool,
	onSuccessAndCondition func(v T)) Outcome[T] {

	if input.IsSuccess() {
		if v := input.MustResolve(); condition(v) {
			onSuccessAndCondition(v)
		}
	}
	return input
}

// Ensure turns a Success into a Failure when check returns an error.
func Ensure[T any](input Outcome[T], check func(v T) error) Outcome[T] {
	if input.IsSuccess() {
		if err := check(input.MustResolve()); !IsNil(err) {
			return Failure[T]{err: err}
		}
	}
	return input
}

// Validate turns a Success into a Failure carrying errMsg when validate
// reports the value as invalid.
func Validate[T any](input Outcome[T], validate func(v T) (isValid bool, errMsg string)) Outcome[T] {
	return Ensure(input, func(v T) error {
		if isValid, errMsg := validate(v); !isValid {
			return errors.New(errMsg)
		}
		return nil
	})
}

// ValueOr returns the value of a Success, or fallback for a Failure.
func ValueOr[T any](input Outcome[T], fallback T) T {
	if v, err := input.Resolve(); err == nil {
		return v
	}
	return fallback
}

// Collect gathers the values of all outcomes, in order, into one Success.
// If any outcome failed the result is a Failure: a single failure keeps its
// error as is, several are joined with errors.Join (already joined errors
// are flattened first).
func Collect[T any](inputs ...Outcome[T]) Outcome[[]T] {
	values := make([]T, 0, len(inputs))
	var failed []error

	for _, in := range inputs {
		v, err := in.Resolve()
		if err != nil {
			failed = append(failed, err)
			continue
		}
		values = append(values, v)
	}

	switch len(failed) {
	case 0:
		return Success[[]T]{value: values}
	case 1:
		return Failure[[]T]{err: failed[0]}
	}

	var errs []error
	for _, err := range failed {
		errs = append(errs, GetErrors(err)...)
	}
	return Failure[[]T]{err: errors.Join(errs...)}
}

// Join feeds input through steps in order, passing every step's outcome
// through concat before it becomes the input of the next step. When
// breakOnError is set it stops at the first failed outcome; otherwise every
// step runs, failed inputs included. Without steps or concat, input is
// returned as is.
func Join[T any](input Outcome[T],
	breakOnError bool,
	concat func(current Outcome[T]) Outcome[T],
	steps ...func(in Outcome[T]) Outcome[T]) Outcome[T] {

	if len(steps) == 0 || concat == nil {
		return input
	}

	final := orNilFailure(concat(orNilFailure(steps[0](input))))
	if final.IsFailure() && breakOnError {
		return final
	}

	for _, step := range steps[1:] {
		final = orNilFailure(concat(orNilFailure(step(final))))
		if final.IsFailure() && breakOnError {
			return final
		}
	}
	return final
}
