// Package solution is the run harness for puzzle solvers.
//
// A Problem binds a name to a whole-input parser; a Solution is a pure
// function over the parsed value. Solve drives one run through the phases
//
//	Idle → Parsing → Computing → Reported
//
// timing Parsing and Computing separately and logging the answer through a
// *slog.Logger. A parse failure aborts the run before Computing; there are no
// retries and no partial results.
//
// Several solutions may target the same problem (e.g. a fast one and a brute
// force one). SolveAll runs them all, each on a fresh parse, and reports
// ErrDisagreement when their answers differ.
//
// Bind erases the input and output types so problems of different shapes can
// live in one Registry, which is what the runbook package executes.
package solution
