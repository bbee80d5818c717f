package solution

import "errors"

// Sentinel errors for harness execution.
var (
	// ErrParse wraps any failure of a problem's parser.
	ErrParse = errors.New("solution: parse failed")

	// ErrDisagreement is returned by SolveAll when solutions produce
	// different answers for the same input.
	ErrDisagreement = errors.New("solution: solutions disagree")

	// ErrNoSolutions is returned when a problem is run with no solutions.
	ErrNoSolutions = errors.New("solution: no solutions")

	// ErrUnknownProblem is returned by Registry.Lookup for unregistered names.
	ErrUnknownProblem = errors.New("solution: unknown problem")

	// ErrDuplicateProblem is returned by Registry.Register when the name is taken.
	ErrDuplicateProblem = errors.New("solution: duplicate problem")
)
