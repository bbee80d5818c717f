package parse

import (
	"fmt"
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"
)

// Converter is a fallible text-to-T rule: the Go counterpart of a type's own
// "parse from string" behavior.
type Converter[T any] func(s string) (T, error)

// Int converts base-10 signed integers, rejecting values that overflow T.
func Int[T constraints.Signed]() Converter[T] {
	return func(s string) (T, error) {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return 0, err
		}
		t := T(v)
		if int64(t) != v {
			return 0, fmt.Errorf("%s overflows %T", s, t)
		}
		return t, nil
	}
}

// Uint converts base-10 unsigned integers, rejecting values that overflow T.
func Uint[T constraints.Unsigned]() Converter[T] {
	return func(s string) (T, error) {
		v, err := strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, err
		}
		t := T(v)
		if uint64(t) != v {
			return 0, fmt.Errorf("%s overflows %T", s, t)
		}
		return t, nil
	}
}

// Float converts decimal floating point text at T's precision, so values
// out of range for a 32-bit T are rejected.
func Float[T constraints.Float]() Converter[T] {
	bits := 64
	if reflect.TypeFor[T]().Kind() == reflect.Float32 {
		bits = 32
	}
	return func(s string) (T, error) {
		v, err := strconv.ParseFloat(s, bits)
		if err != nil {
			return 0, err
		}
		return T(v), nil
	}
}

// String is the identity conversion.
func String() Converter[string] {
	return func(s string) (string, error) {
		return s, nil
	}
}
