package parse

import (
	"errors"
	"strings"
)

// Parser converts a complete input blob into a T.
type Parser[T any] interface {
	Parse(input string) (T, error)
}

// LineParser converts one line of input into a T.
type LineParser[T any] interface {
	ParseLine(line string) (T, error)
}

// Func adapts an ordinary function to the Parser interface.
type Func[T any] func(input string) (T, error)

// Parse calls f(input).
func (f Func[T]) Parse(input string) (T, error) {
	return f(input)
}

// LineFunc adapts an ordinary function to the LineParser interface.
type LineFunc[T any] func(line string) (T, error)

// ParseLine calls f(line).
func (f LineFunc[T]) ParseLine(line string) (T, error) {
	return f(line)
}

// Lines lifts lp to a whole-input parser: the input is split with SplitLines,
// lp is applied to every line, and the results are returned in input order.
// The first failing line aborts parsing; its error carries the line number.
func Lines[T any](lp LineParser[T]) Parser[[]T] {
	return lines[T]{lp: lp}
}

type lines[T any] struct {
	lp LineParser[T]
}

func (l lines[T]) Parse(input string) ([]T, error) {
	rows := SplitLines(input)
	out := make([]T, 0, len(rows))
	for i, row := range rows {
		v, err := l.lp.ParseLine(row)
		if err != nil {
			return nil, atLine("lines", i+1, row, err)
		}
		out = append(out, v)
	}

	return out, nil
}

// SplitLines splits input on '\n', dropping a trailing '\r' from each line.
// A single trailing newline does not produce an extra empty line, and empty
// input yields no lines.
func SplitLines(input string) []string {
	if input == "" {
		return nil
	}
	rows := strings.Split(strings.TrimSuffix(input, "\n"), "\n")
	for i, row := range rows {
		rows[i] = strings.TrimSuffix(row, "\r")
	}

	return rows
}

// named is a LineParser whose failures are reported under a fixed name.
type named[T any] struct {
	name  string
	parse func(line string) (T, error)
}

func (n named[T]) ParseLine(line string) (T, error) {
	v, err := n.parse(line)
	if err != nil {
		var pe *Error
		if !errors.As(err, &pe) {
			err = Malformed(n.name, line, err)
		}
		return v, err
	}

	return v, nil
}
