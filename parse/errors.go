package parse

import (
	"errors"
	"fmt"
	"strconv"
)

// Sentinel errors. Match them with errors.Is; the concrete value returned by a
// parser is a *Error wrapping one of these.
var (
	// ErrMalformedToken indicates a token could not be converted to its target type.
	ErrMalformedToken = errors.New("parse: malformed token")
	// ErrDimensionMismatch indicates rows of unequal length or a cell count
	// that disagrees with width*height.
	ErrDimensionMismatch = errors.New("parse: dimension mismatch")
	// ErrMissingSeparator indicates a dual-section input without a blank line.
	ErrMissingSeparator = errors.New("parse: missing blank-line separator")
)

// maxFragment bounds how much input an *Error quotes.
const maxFragment = 40

// Error describes a fatal parse failure.
type Error struct {
	Parser   string // name of the parser that failed, e.g. "csv"
	Line     int    // 1-based line number; 0 when not line-oriented
	Fragment string // offending input, clipped to maxFragment bytes
	Err      error  // wraps one of the sentinels above
}

func (e *Error) Error() string {
	msg := e.Parser
	if e.Line > 0 {
		msg += ": line " + strconv.Itoa(e.Line)
	}
	if e.Fragment != "" {
		msg += ": " + strconv.Quote(e.Fragment)
	}

	return msg + ": " + e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Malformed builds an ErrMalformedToken failure for parser on fragment.
// cause may be nil.
func Malformed(parser, fragment string, cause error) *Error {
	err := ErrMalformedToken
	if cause != nil {
		err = fmt.Errorf("%w: %w", ErrMalformedToken, cause)
	}

	return &Error{Parser: parser, Fragment: clip(fragment), Err: err}
}

// Mismatch builds an ErrDimensionMismatch failure for parser.
func Mismatch(parser string, line int, format string, args ...any) *Error {
	return &Error{
		Parser: parser,
		Line:   line,
		Err:    fmt.Errorf("%w: "+format, append([]any{ErrDimensionMismatch}, args...)...),
	}
}

// WithFragment records the offending input on e, clipped like every other
// fragment, and returns e.
func (e *Error) WithFragment(fragment string) *Error {
	e.Fragment = clip(fragment)
	return e
}

// atLine stamps a line number onto err. Errors that are not a *Error are
// treated as malformed tokens of the named parser.
func atLine(parser string, line int, text string, err error) error {
	var pe *Error
	if errors.As(err, &pe) {
		if pe.Line != 0 {
			return err
		}
		cp := *pe
		cp.Line = line
		if cp.Fragment == "" {
			cp.Fragment = clip(text)
		}
		return &cp
	}

	return &Error{
		Parser:   parser,
		Line:     line,
		Fragment: clip(text),
		Err:      fmt.Errorf("%w: %w", ErrMalformedToken, err),
	}
}

func clip(s string) string {
	if len(s) <= maxFragment {
		return s
	}
	return s[:maxFragment] + "..."
}
