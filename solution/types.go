package solution

import (
	"time"

	"github.com/katalvlaran/lvlgrid/parse"
)

// Phase is the state of a single run.
type Phase uint8

// Run phases, in order.
const (
	Idle Phase = iota
	Parsing
	Computing
	Reported
)

var phaseNames = [...]string{"idle", "parsing", "computing", "reported"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "Phase(?)"
}

// Problem names a puzzle and the parser that turns its raw input into In.
type Problem[In, Out any] struct {
	Name   string
	Parser parse.Parser[In]
}

// Solution computes an answer from a parsed input.
// Implementations may mutate in; every run parses afresh.
type Solution[In, Out any] interface {
	Solve(in In) Out
}

// Func adapts a plain function to Solution.
type Func[In, Out any] func(In) Out

// Solve calls f(in).
func (f Func[In, Out]) Solve(in In) Out {
	return f(in)
}

// Variant is a named Solution, used when several solve one Problem.
type Variant[In, Out any] struct {
	Name     string
	Solution Solution[In, Out]
}

// NewVariant wraps fn as a named Solution.
func NewVariant[In, Out any](name string, fn func(In) Out) Variant[In, Out] {
	return Variant[In, Out]{Name: name, Solution: Func[In, Out](fn)}
}

// Report records one run. Phase is Reported on success and Parsing when the
// parser aborted the run, in which case Answer is the zero value.
type Report[Out any] struct {
	Problem     string
	Solution    string
	Phase       Phase
	Answer      Out
	ParseTime   time.Duration
	ComputeTime time.Duration
}
