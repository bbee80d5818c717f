package parse

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"golang.org/x/exp/constraints"
)

// InclusiveRange is the closed interval [Start, End]. A range whose Start is
// greater than its End is empty.
type InclusiveRange[T constraints.Integer] struct {
	Start, End T
}

// Contains reports whether Start <= v <= End.
func (r InclusiveRange[T]) Contains(v T) bool {
	return r.Start <= v && v <= r.End
}

// Empty reports whether the range holds no values.
func (r InclusiveRange[T]) Empty() bool {
	return r.Start > r.End
}

// Len returns the number of values in the range.
func (r InclusiveRange[T]) Len() uint64 {
	if r.Empty() {
		return 0
	}
	return uint64(r.End-r.Start) + 1
}

// All yields Start, Start+1, ..., End. It does not overflow when End is the
// maximum value of T.
func (r InclusiveRange[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.Empty() {
			return
		}
		for v := r.Start; ; v++ {
			if !yield(v) || v == r.End {
				return
			}
		}
	}
}

func (r InclusiveRange[T]) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}

var (
	errRangeSyntax = errors.New(`want "<start>-<end>"`)
	errNotDigits   = errors.New("endpoint must be decimal digits")
)

// RangeList returns a line parser for "<start>-<end>" tokens of non-negative
// integers. Start > End is accepted and yields an empty range.
func RangeList[T constraints.Unsigned]() LineParser[InclusiveRange[T]] {
	conv := Uint[T]()
	return named[InclusiveRange[T]]{name: "range", parse: func(line string) (InclusiveRange[T], error) {
		var r InclusiveRange[T]
		lo, hi, ok := strings.Cut(line, "-")
		if !ok {
			return r, Malformed("range", line, errRangeSyntax)
		}
		if !isDigits(lo) || !isDigits(hi) {
			return r, Malformed("range", line, errNotDigits)
		}
		start, err := conv(lo)
		if err != nil {
			return r, Malformed("range", line, err)
		}
		end, err := conv(hi)
		if err != nil {
			return r, Malformed("range", line, err)
		}
		r.Start, r.End = start, end

		return r, nil
	}}
}

// RangeCSV returns a whole-input parser for a single comma-separated list of
// range tokens, e.g. "11-22,95-115". Surrounding whitespace is ignored and
// empty input yields an empty list.
func RangeCSV[T constraints.Unsigned]() Parser[[]InclusiveRange[T]] {
	rl := RangeList[T]()
	return Func[[]InclusiveRange[T]](func(input string) ([]InclusiveRange[T], error) {
		input = strings.TrimSpace(input)
		if input == "" {
			return nil, nil
		}
		tokens := strings.Split(input, ",")
		out := make([]InclusiveRange[T], 0, len(tokens))
		for _, tok := range tokens {
			r, err := rl.ParseLine(tok)
			if err != nil {
				return nil, err
			}
			out = append(out, r)
		}
		return out, nil
	})
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
