package solution

import (
	"fmt"
	"time"
)

// Result is the type-erased outcome of running every solution of a problem.
type Result struct {
	Problem     string
	Answer      string // fmt.Sprint of the agreed answer
	Solutions   int
	ParseTime   time.Duration // summed over all solutions
	ComputeTime time.Duration // summed over all solutions
}

// Runner runs a problem on raw input without exposing its types.
type Runner interface {
	Problem() string
	Run(input string, opts ...Option) (Result, error)
}

type bound[In, Out any] struct {
	problem  Problem[In, Out]
	variants []Variant[In, Out]
}

// Bind pairs p with its solutions as a Runner. Run fails with ErrNoSolutions
// when variants is empty.
func Bind[In, Out any](p Problem[In, Out], variants ...Variant[In, Out]) Runner {
	return &bound[In, Out]{problem: p, variants: variants}
}

func (b *bound[In, Out]) Problem() string {
	return b.problem.Name
}

func (b *bound[In, Out]) Run(input string, opts ...Option) (Result, error) {
	res := Result{Problem: b.problem.Name}
	reports, err := SolveAll(b.problem, input, b.variants, opts...)
	for _, rep := range reports {
		res.ParseTime += rep.ParseTime
		res.ComputeTime += rep.ComputeTime
	}
	if err != nil {
		return res, err
	}
	res.Solutions = len(reports)
	res.Answer = fmt.Sprint(reports[0].Answer)

	return res, nil
}

// Registry maps problem names to Runners. The zero value is ready to use.
// Not safe for concurrent registration.
type Registry struct {
	runners map[string]Runner
	order   []string
}

// NewRegistry registers each runner in order.
func NewRegistry(runners ...Runner) (*Registry, error) {
	r := &Registry{}
	for _, run := range runners {
		if err := r.Register(run); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds run under run.Problem().
func (r *Registry) Register(run Runner) error {
	name := run.Problem()
	if _, ok := r.runners[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateProblem, name)
	}
	if r.runners == nil {
		r.runners = make(map[string]Runner)
	}
	r.runners[name] = run
	r.order = append(r.order, name)

	return nil
}

// Lookup returns the runner registered as name.
func (r *Registry) Lookup(name string) (Runner, error) {
	run, ok := r.runners[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownProblem, name)
	}
	return run, nil
}

// Names lists registered problems in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}
