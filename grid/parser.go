package grid

import (
	"errors"
	"unicode/utf8"

	"github.com/katalvlaran/lvlgrid/parse"
)

// DenseParser builds a grid with one cell per character. The first row fixes
// the width; every row must have the same number of characters.
// It implements parse.Parser[*Grid[T]].
type DenseParser[T any] struct {
	// Cell converts one character into a cell value.
	Cell func(r rune) (T, error)
}

// Dense returns a DenseParser using cell as its conversion rule.
func Dense[T any](cell func(r rune) (T, error)) DenseParser[T] {
	return DenseParser[T]{Cell: cell}
}

// Parse converts input into a grid. A rejected character is reported as
// parse.ErrMalformedToken; ragged rows, an empty first row or empty input as
// parse.ErrDimensionMismatch.
// Complexity: O(W×H).
func (dp DenseParser[T]) Parse(input string) (*Grid[T], error) {
	rows := parse.SplitLines(input)
	if len(rows) == 0 {
		return nil, parse.Mismatch("grid", 0, "no rows")
	}
	width := utf8.RuneCountInString(rows[0])
	if width == 0 {
		return nil, parse.Mismatch("grid", 1, "empty first row")
	}
	elements := make([]T, 0, width*len(rows))
	for y, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			return nil, parse.Mismatch("grid", y+1, "row has %d cells, want %d", n, width).WithFragment(row)
		}
		for _, r := range row {
			cell, err := dp.Cell(r)
			if err != nil {
				pe := parse.Malformed("grid", string(r), err)
				pe.Line = y + 1
				return nil, pe
			}
			elements = append(elements, cell)
		}
	}

	return FromElements(elements, width, len(rows))
}

// Runes is the identity cell rule for Grid[rune].
func Runes(r rune) (rune, error) {
	return r, nil
}

var errNotDigit = errors.New("not a decimal digit")

// Digits converts '0'..'9' into 0..9.
func Digits(r rune) (int, error) {
	if r < '0' || r > '9' {
		return 0, errNotDigit
	}
	return int(r - '0'), nil
}

// DefaultOperators are the operator symbols AlignedParser recognizes when
// Operators is empty.
var DefaultOperators = []string{"+", "-", "*", "/"}

var (
	errNoOperatorRow = errors.New("missing operator row")
	errBadOperator   = errors.New("unrecognized operator")
)

// AlignedParser builds a grid from column-aligned, whitespace-padded tokens.
// The final line is an operator row: each token is an operator symbol followed
// by its padding spaces, and the character span of each token fixes the span
// of its column. Every preceding line is sliced at those spans (the last
// column runs to the end of the line) and each slice, padding included, is
// converted with Cell. The operator tokens themselves form the last grid row.
//
//	123 328  51 64
//	 45 64  387 23
//	*   +   *   +
type AlignedParser[T any] struct {
	// Cell converts one column slice (or operator token) into a cell value.
	Cell func(token string) (T, error)
	// Operators lists the recognized operator symbols; empty means DefaultOperators.
	Operators []string
}

// Aligned returns an AlignedParser using cell and the given operator symbols.
func Aligned[T any](cell func(token string) (T, error), operators ...string) AlignedParser[T] {
	return AlignedParser[T]{Cell: cell, Operators: operators}
}

// span is a half-open range of character (rune) indices.
type span struct {
	start, end int
}

// Parse converts input into a grid whose last row holds the operators.
// Complexity: O(len(input)).
func (ap AlignedParser[T]) Parse(input string) (*Grid[T], error) {
	rows := parse.SplitLines(input)
	if len(rows) == 0 {
		return nil, parse.Malformed("aligned-grid", "", errNoOperatorRow)
	}
	opRow, valueRows := []rune(rows[len(rows)-1]), rows[:len(rows)-1]

	spans, err := ap.tokenize(opRow)
	if err != nil {
		err.Line = len(rows)
		return nil, err
	}

	width := len(spans)
	elements := make([]T, 0, width*len(rows))
	for y, row := range valueRows {
		chars := []rune(row)
		for i, s := range spans {
			tok := slice(chars, s, i == width-1)
			cell, err := ap.Cell(tok)
			if err != nil {
				pe := parse.Malformed("aligned-grid", tok, err)
				pe.Line = y + 1
				return nil, pe
			}
			elements = append(elements, cell)
		}
	}
	for _, s := range spans {
		tok := string(opRow[s.start:s.end])
		cell, err := ap.Cell(tok)
		if err != nil {
			pe := parse.Malformed("aligned-grid", tok, err)
			pe.Line = len(rows)
			return nil, pe
		}
		elements = append(elements, cell)
	}

	return FromElements(elements, width, len(rows))
}

// tokenize splits the operator row into operator-plus-padding spans.
func (ap AlignedParser[T]) tokenize(row []rune) ([]span, *parse.Error) {
	ops := ap.Operators
	if len(ops) == 0 {
		ops = DefaultOperators
	}
	var spans []span
	for pos := 0; pos < len(row); {
		n := 0
		for _, op := range ops {
			if k := utf8.RuneCountInString(op); k > n && hasPrefix(row[pos:], op) {
				n = k
			}
		}
		if n == 0 {
			return nil, parse.Malformed("aligned-grid", string(row[pos:]), errBadOperator)
		}
		end := pos + n
		for end < len(row) && row[end] == ' ' {
			end++
		}
		spans = append(spans, span{start: pos, end: end})
		pos = end
	}
	if len(spans) == 0 {
		return nil, parse.Malformed("aligned-grid", string(row), errNoOperatorRow)
	}

	return spans, nil
}

// hasPrefix reports whether row starts with the characters of op.
func hasPrefix(row []rune, op string) bool {
	i := 0
	for _, r := range op {
		if i >= len(row) || row[i] != r {
			return false
		}
		i++
	}
	return true
}

// slice cuts s out of row, clipping to the row length. The last column takes
// the rest of the row.
func slice(row []rune, s span, last bool) string {
	start, end := min(s.start, len(row)), min(s.end, len(row))
	if last {
		end = len(row)
	}
	return string(row[start:end])
}
