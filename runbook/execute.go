package runbook

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlgrid/solution"
)

// Outcome is the result of one check.
type Outcome struct {
	Check  string
	Result solution.Result
	Passed bool
	Err    error
}

// Execute runs every check of rb in order through reg. A failing check does
// not stop the others; the returned error joins all failures, and is nil when
// every check passed.
func Execute(rb *Runbook, reg *solution.Registry, opts ...solution.Option) ([]Outcome, error) {
	o := solution.DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.Logger

	outcomes := make([]Outcome, 0, len(rb.Checks))
	var errs []error
	for _, c := range rb.Checks {
		out := runCheck(rb.Dir, c, reg, opts)
		outcomes = append(outcomes, out)
		if out.Err != nil {
			log.Error("check failed", "check", c.Name, "problem", c.Problem, "err", out.Err)
			errs = append(errs, out.Err)
			continue
		}
		log.Info("check passed", "check", c.Name, "problem", c.Problem, "answer", out.Result.Answer)
	}

	return outcomes, errors.Join(errs...)
}

func runCheck(dir string, c Check, reg *solution.Registry, opts []solution.Option) Outcome {
	out := Outcome{Check: c.Name}
	fail := func(err error) Outcome {
		out.Err = fmt.Errorf("check %q: %w", c.Name, err)
		return out
	}

	run, err := reg.Lookup(c.Problem)
	if err != nil {
		return fail(err)
	}
	input, err := c.ReadInput(dir)
	if err != nil {
		return fail(err)
	}
	out.Result, err = run.Run(input, opts...)
	if err != nil {
		return fail(err)
	}
	if c.HasExpect && out.Result.Answer != c.Expect {
		return fail(fmt.Errorf("%w: got %s, want %s", ErrUnexpectedAnswer, out.Result.Answer, c.Expect))
	}
	out.Passed = true

	return out
}
