package solution_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/parse"
	"github.com/katalvlaran/lvlgrid/solution"
)

// rowSums is a problem whose input is integer CSV rows.
var rowSums = solution.Problem[[][]int, int]{
	Name:   "row-sums",
	Parser: parse.Lines(parse.CSV(parse.Int[int]())),
}

func total(rows [][]int) int {
	sum := 0
	for _, row := range rows {
		for _, v := range row {
			sum += v
		}
	}
	return sum
}

// stepClock advances by step on every read.
func stepClock(step time.Duration) func() time.Time {
	t := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(step)
		return t
	}
}

func quiet() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// jsonLines decodes every log record written to buf.
func jsonLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		out = append(out, rec)
	}
	return out
}

//----------------------------------------------------------------------------//
// Solve
//----------------------------------------------------------------------------//

func TestSolve_Reported(t *testing.T) {
	rep, err := solution.Solve(rowSums, solution.Func[[][]int, int](total), "1,2,3\n4,5\n",
		solution.WithLogger(quiet()),
		solution.WithClock(stepClock(time.Millisecond)),
		solution.WithName("sum"),
	)
	require.NoError(t, err)
	assert.Equal(t, 15, rep.Answer)
	assert.Equal(t, solution.Reported, rep.Phase)
	assert.Equal(t, "row-sums", rep.Problem)
	assert.Equal(t, "sum", rep.Solution)
	assert.Equal(t, time.Millisecond, rep.ParseTime)
	assert.Equal(t, time.Millisecond, rep.ComputeTime)
}

func TestSolve_ParseFailureAborts(t *testing.T) {
	called := false
	compute := solution.Func[[][]int, int](func(rows [][]int) int {
		called = true
		return total(rows)
	})

	rep, err := solution.Solve(rowSums, compute, "1,2\n3,x\n", solution.WithLogger(quiet()))
	require.Error(t, err)
	assert.ErrorIs(t, err, solution.ErrParse)
	assert.ErrorIs(t, err, parse.ErrMalformedToken)

	var pe *parse.Error
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 2, pe.Line)

	assert.False(t, called, "Computing must not be entered")
	assert.Equal(t, solution.Parsing, rep.Phase)
	assert.Zero(t, rep.Answer)
}

func TestSolve_Logs(t *testing.T) {
	var buf bytes.Buffer
	logger := solution.NewLogger("debug", "json", &buf)

	_, err := solution.Solve(rowSums, solution.Func[[][]int, int](total), "7,8",
		solution.WithLogger(logger),
		solution.WithClock(stepClock(2*time.Millisecond)),
	)
	require.NoError(t, err)

	recs := jsonLines(t, &buf)
	require.Len(t, recs, 3)
	assert.Equal(t, "parsing", recs[0]["phase"])
	assert.Equal(t, "computing", recs[1]["phase"])

	final := recs[2]
	assert.Equal(t, "INFO", final["level"])
	assert.Equal(t, "solved", final["msg"])
	assert.Equal(t, "row-sums", final["problem"])
	assert.Equal(t, "default", final["solution"])
	assert.EqualValues(t, 15, final["answer"])
	assert.EqualValues(t, 2*time.Millisecond, final["parse"])
}

func TestSolve_LogsParseFailure(t *testing.T) {
	var buf bytes.Buffer
	logger := solution.NewLogger("info", "json", &buf)

	_, err := solution.Solve(rowSums, solution.Func[[][]int, int](total), "a", solution.WithLogger(logger))
	require.Error(t, err)

	recs := jsonLines(t, &buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "ERROR", recs[0]["level"])
	assert.Equal(t, "parse failed", recs[0]["msg"])
	assert.Contains(t, recs[0]["err"], "malformed token")
}

//----------------------------------------------------------------------------//
// SolveAll
//----------------------------------------------------------------------------//

func TestSolveAll_Agree(t *testing.T) {
	// the first variant destroys its input; the second must still see it intact
	destructive := solution.NewVariant("destructive", func(rows [][]int) int {
		sum := total(rows)
		for _, row := range rows {
			clear(row)
		}
		return sum
	})
	plain := solution.NewVariant("plain", total)

	reports, err := solution.SolveAll(rowSums, "1,2\n3\n", []solution.Variant[[][]int, int]{destructive, plain},
		solution.WithLogger(quiet()))
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "destructive", reports[0].Solution)
	assert.Equal(t, "plain", reports[1].Solution)
	assert.Equal(t, 6, reports[0].Answer)
	assert.Equal(t, 6, reports[1].Answer)
}

func TestSolveAll_Disagree(t *testing.T) {
	offByOne := solution.NewVariant("off-by-one", func(rows [][]int) int { return total(rows) + 1 })
	variants := []solution.Variant[[][]int, int]{solution.NewVariant("plain", total), offByOne}

	reports, err := solution.SolveAll(rowSums, "1,2", variants, solution.WithLogger(quiet()))
	require.ErrorIs(t, err, solution.ErrDisagreement)
	assert.Contains(t, err.Error(), "plain=3")
	assert.Contains(t, err.Error(), "off-by-one=4")
	assert.Len(t, reports, 2)
}

func TestSolveAll_Empty(t *testing.T) {
	_, err := solution.SolveAll(rowSums, "1", nil)
	assert.ErrorIs(t, err, solution.ErrNoSolutions)
}

func TestSolveAll_DoesNotMutateOptions(t *testing.T) {
	opts := make([]solution.Option, 1, 4)
	opts[0] = solution.WithLogger(quiet())
	variants := []solution.Variant[[][]int, int]{
		solution.NewVariant("a", total),
		solution.NewVariant("b", total),
	}
	reports, err := solution.SolveAll(rowSums, "1", variants, opts...)
	require.NoError(t, err)
	assert.Equal(t, "a", reports[0].Solution)
	assert.Equal(t, "b", reports[1].Solution)
	assert.Len(t, opts, 1)
}

//----------------------------------------------------------------------------//
// Registry
//----------------------------------------------------------------------------//

func TestRegistry(t *testing.T) {
	words := solution.Problem[[]string, int]{
		Name:   "words",
		Parser: parse.Lines(parse.FromString(parse.String())),
	}
	countWords := solution.NewVariant("count", func(ws []string) int { return len(ws) })

	reg, err := solution.NewRegistry(
		solution.Bind(rowSums, solution.NewVariant("sum", total)),
		solution.Bind(words, countWords),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"row-sums", "words"}, reg.Names())

	run, err := reg.Lookup("words")
	require.NoError(t, err)
	res, err := run.Run("a\nb\nc", solution.WithLogger(quiet()), solution.WithClock(stepClock(time.Second)))
	require.NoError(t, err)
	assert.Equal(t, "3", res.Answer)
	assert.Equal(t, 1, res.Solutions)
	assert.Equal(t, time.Second, res.ParseTime)

	_, err = reg.Lookup("nope")
	assert.ErrorIs(t, err, solution.ErrUnknownProblem)

	err = reg.Register(solution.Bind(words, countWords))
	assert.ErrorIs(t, err, solution.ErrDuplicateProblem)

	names := reg.Names()
	names[0] = "mutated"
	assert.True(t, slices.Equal([]string{"row-sums", "words"}, reg.Names()))
}

func TestBind_NoVariants(t *testing.T) {
	var reg solution.Registry
	require.NoError(t, reg.Register(solution.Bind(rowSums)))
	run, err := reg.Lookup("row-sums")
	require.NoError(t, err)
	_, err = run.Run("1")
	assert.ErrorIs(t, err, solution.ErrNoSolutions)
}

//----------------------------------------------------------------------------//
// Logger & phases
//----------------------------------------------------------------------------//

func TestNewLogger(t *testing.T) {
	cases := []struct {
		level, format string
		debug, warn   bool
	}{
		{"debug", "text", true, true},
		{"info", "text", false, true},
		{"warn", "json", false, true},
		{"error", "json", false, false},
		{"bogus", "bogus", false, true},
	}
	for _, tc := range cases {
		t.Run(tc.level+"/"+tc.format, func(t *testing.T) {
			var buf bytes.Buffer
			l := solution.NewLogger(tc.level, tc.format, &buf)
			l.Debug("d")
			assert.Equal(t, tc.debug, buf.Len() > 0)
			buf.Reset()
			l.Warn("w")
			assert.Equal(t, tc.warn, buf.Len() > 0)
			if tc.format == "json" && tc.warn {
				assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	for name, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, ok := solution.ParseLevel(name)
		assert.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}
	for _, name := range []string{"", "DEBUG", "loud"} {
		_, ok := solution.ParseLevel(name)
		assert.False(t, ok, name)
	}

	assert.True(t, solution.KnownFormat("text"))
	assert.True(t, solution.KnownFormat("json"))
	assert.False(t, solution.KnownFormat("xml"))
	assert.False(t, solution.KnownFormat(""))
}

func TestInitLogger_Once(t *testing.T) {
	first := solution.InitLogger("info", "text", io.Discard)
	second := solution.InitLogger("debug", "json", io.Discard)
	assert.Same(t, first, second)
	assert.Same(t, first, slog.Default())
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "idle", solution.Idle.String())
	assert.Equal(t, "parsing", solution.Parsing.String())
	assert.Equal(t, "computing", solution.Computing.String())
	assert.Equal(t, "reported", solution.Reported.String())
	assert.Equal(t, "Phase(?)", solution.Phase(9).String())
}
