package parse

import (
	"encoding"
	"strings"
)

// CSV returns a line parser that splits a line on "," and converts every
// token with conv. There is no quoting or escaping; tokens are not trimmed.
func CSV[T any](conv Converter[T]) LineParser[[]T] {
	return named[[]T]{name: "csv", parse: func(line string) ([]T, error) {
		tokens := strings.Split(line, ",")
		out := make([]T, 0, len(tokens))
		for _, tok := range tokens {
			v, err := conv(tok)
			if err != nil {
				return nil, Malformed("csv", tok, err)
			}
			out = append(out, v)
		}
		return out, nil
	}}
}

// FromString wraps conv as a line parser; a conversion failure is reported as
// ErrMalformedToken.
func FromString[T any](conv Converter[T]) LineParser[T] {
	return named[T]{name: "from-string", parse: conv}
}

// FromText wraps a type's own encoding.TextUnmarshaler as a line parser.
//
//	type Op byte
//	func (o *Op) UnmarshalText(b []byte) error { ... }
//	ops := parse.Lines(parse.FromText[Op]())
func FromText[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}]() LineParser[T] {
	return named[T]{name: "from-text", parse: func(line string) (T, error) {
		var v T
		if err := PT(&v).UnmarshalText([]byte(line)); err != nil {
			return v, err
		}
		return v, nil
	}}
}

// Pair holds the results of a DualSection parse.
type Pair[A, B any] struct {
	First  A
	Second B
}

// DualSection splits input at the first blank line. The text before the
// separator goes to first; the exact remainder after it, unsplit, goes to
// second. A blank line is "\n\n" or, for CRLF input, "\r\n\r\n"; the
// '\r' ending the first section is dropped. Input without a blank line fails
// with ErrMissingSeparator.
func DualSection[A, B any](first Parser[A], second Parser[B]) Parser[Pair[A, B]] {
	return dualSection[A, B]{first: first, second: second}
}

type dualSection[A, B any] struct {
	first  Parser[A]
	second Parser[B]
}

func (d dualSection[A, B]) Parse(input string) (Pair[A, B], error) {
	var out Pair[A, B]
	head, tail, ok := cutSection(input)
	if !ok {
		return out, &Error{Parser: "dual-section", Fragment: clip(input), Err: ErrMissingSeparator}
	}

	a, err := d.first.Parse(head)
	if err != nil {
		return out, err
	}
	b, err := d.second.Parse(tail)
	if err != nil {
		return out, err
	}
	out.First, out.Second = a, b

	return out, nil
}

// cutSection splits input around its first blank line.
func cutSection(input string) (head, tail string, ok bool) {
	i, width := strings.Index(input, "\n\n"), 2
	if j := strings.Index(input, "\n\r\n"); j >= 0 && (i < 0 || j < i) {
		i, width = j, 3
	}
	if i < 0 {
		return input, "", false
	}
	return strings.TrimSuffix(input[:i], "\r"), input[i+width:], true
}
