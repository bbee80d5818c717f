package solution

import (
	"fmt"
)

// Solve parses input with p.Parser and, on success, computes the answer with s.
//
// Behavior:
//  1. Parsing: run the parser; on failure log it and return ErrParse wrapping
//     the parser error, with the report left in the Parsing phase.
//  2. Computing: call s.Solve on the parsed value.
//  3. Reported: log the answer and both durations at info level.
func Solve[In, Out any](p Problem[In, Out], s Solution[In, Out], input string, opts ...Option) (Report[Out], error) {
	o := buildOptions(opts)
	log := o.Logger.With("problem", p.Name, "solution", o.Name)
	rep := Report[Out]{Problem: p.Name, Solution: o.Name, Phase: Idle}

	rep.Phase = Parsing
	log.Debug("phase", "phase", rep.Phase.String())
	start := o.Clock()
	in, err := p.Parser.Parse(input)
	parsed := o.Clock()
	rep.ParseTime = parsed.Sub(start)
	if err != nil {
		log.Error("parse failed", "err", err)
		return rep, fmt.Errorf("%w: %s: %w", ErrParse, p.Name, err)
	}

	rep.Phase = Computing
	log.Debug("phase", "phase", rep.Phase.String(), "parse", rep.ParseTime)
	rep.Answer = s.Solve(in)
	rep.ComputeTime = o.Clock().Sub(parsed)

	rep.Phase = Reported
	log.Info("solved", "answer", rep.Answer, "parse", rep.ParseTime, "compute", rep.ComputeTime)

	return rep, nil
}

// SolveAll runs every variant against input, each on its own parse, and
// checks that they agree. Answers are compared by their fmt.Sprint text.
// Reports are returned in variant order, up to and including the first
// failure.
func SolveAll[In, Out any](p Problem[In, Out], input string, variants []Variant[In, Out], opts ...Option) ([]Report[Out], error) {
	if len(variants) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoSolutions, p.Name)
	}

	reports := make([]Report[Out], 0, len(variants))
	var want string
	for i, v := range variants {
		rep, err := Solve(p, v.Solution, input, append(opts[:len(opts):len(opts)], WithName(v.Name))...)
		reports = append(reports, rep)
		if err != nil {
			return reports, err
		}
		got := fmt.Sprint(rep.Answer)
		if i == 0 {
			want = got
			continue
		}
		if got != want {
			return reports, fmt.Errorf("%w: %s: %s=%s, %s=%s",
				ErrDisagreement, p.Name, variants[0].Name, want, v.Name, got)
		}
	}

	return reports, nil
}
