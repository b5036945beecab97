package outcome_test

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/ib-77/outcome/pkg/outcome"
)

func ExampleTry() {
	port := outcome.Try(func() (int, error) { return strconv.Atoi("8080") })
	fmt.Println(port)

	bad := outcome.Try(func() (int, error) { return strconv.Atoi("http") })
	fmt.Println(bad.IsFailure())
	// Output:
	// Success(8080)
	// true
}

func ExampleMap() {
	out := outcome.Map(outcome.Succeed(42), func(x int) int { return x + 1 })
	v, err := out.Resolve()
	fmt.Println(v, err)
	// Output: 43 <nil>
}

func ExampleMapError() {
	missing := outcome.Fail[string](errors.New("no such key"))
	out := outcome.MapError(missing, func(err error) string { return "default" })
	fmt.Println(out)
	// Output: Success(default)
}

func ExampleFlatMap() {
	parse := func(s string) outcome.Outcome[int] {
		return outcome.Try(func() (int, error) { return strconv.Atoi(s) })
	}
	fmt.Println(outcome.FlatMap(outcome.Succeed("12"), parse))
	// Output: Success(12)
}

func ExampleOutcome_typeSwitch() {
	for _, o := range []outcome.Outcome[int]{outcome.Succeed(1), outcome.Fail[int](errors.New("lost"))} {
		switch v := o.(type) {
		case outcome.Success[int]:
			fmt.Println("value", v.Value())
		case outcome.Failure[int]:
			fmt.Println("error", v.Err())
		}
	}
	// Output:
	// value 1
	// error lost
}
