// Package parse is a small composition framework that turns raw puzzle text
// into strongly-typed values.
//
// What:
//
//   - Parser[T] maps a whole input blob to a T.
//   - LineParser[T] maps a single line to a T. Lines lifts any LineParser into
//     a Parser[[]T] that applies it per line and keeps input order; it is the
//     one shared mechanism every line-oriented format is built on.
//   - DualSection splits an input at its first blank line and parses each
//     section with its own parser.
//   - CSV, RangeList, RangeCSV, FromString and FromText are ready-made line and
//     whole-input parsers built from Converter functions.
//
// Errors:
//
//   - ErrMalformedToken: a token cannot be converted to its target type.
//   - ErrDimensionMismatch: structured input (e.g. a grid) has inconsistent shape.
//   - ErrMissingSeparator: DualSection found no blank-line separator.
//
// Every failure is returned as a *Error naming the failing parser, the line
// (when known) and the offending fragment. It unwraps to the sentinel, so
// callers match with errors.Is.
//
// Example:
//
//	ingredients := parse.DualSection(
//		parse.Lines(parse.RangeList[uint64]()),
//		parse.Lines(parse.FromString(parse.Uint[uint64]())),
//	)
//	pair, err := ingredients.Parse(input)
package parse
