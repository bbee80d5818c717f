package runbook_test

import (
	"bytes"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlgrid/geom"
	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/parse"
	"github.com/katalvlaran/lvlgrid/runbook"
	"github.com/katalvlaran/lvlgrid/solution"
)

const rolls = `..@@.@@@@.
@@@.@.@.@@
@@@@@.@.@@
@.@@@@..@.
@@.@@@@.@@
.@@@@@@@.@
.@.@.@.@@@
@.@@@.@@@@
.@@@@@@@@.
@.@.@@@.@.
`

const book = `
logging {
  level  = "debug"
  format = "json"
}

check "rolls" {
  problem = "paper-rolls"
  input   = "inputs/rolls.txt"
  expect  = 13
}

check "row-sums" {
  text   = "1,2\n3"
  expect = "6"
}

check "smoke" {
  problem = "row-sums"
  text    = "10"
}
`

// accessible counts '@' cells with fewer than four '@' among eight neighbours.
func accessible(g *grid.Grid[rune]) int {
	n := 0
	for p := range grid.Matching(g, '@') {
		if grid.Count2(grid.NeighboursMatching[geom.Ordinal](g, p, '@')) < 4 {
			n++
		}
	}
	return n
}

// accessibleSlow recounts by direct lookups.
func accessibleSlow(g *grid.Grid[rune]) int {
	n := 0
	for p, c := range g.Elements() {
		if c != '@' {
			continue
		}
		around := 0
		for d := range geom.Directions[geom.Ordinal]() {
			if v, ok := g.Get(p.Add(d.Delta())); ok && v == '@' {
				around++
			}
		}
		if around < 4 {
			n++
		}
	}
	return n
}

func sum(rows [][]int) int {
	s := 0
	for _, row := range rows {
		for _, v := range row {
			s += v
		}
	}
	return s
}

func registry(t *testing.T) *solution.Registry {
	t.Helper()
	paper := solution.Problem[*grid.Grid[rune], int]{Name: "paper-rolls", Parser: grid.Dense(grid.Runes)}
	rows := solution.Problem[[][]int, int]{Name: "row-sums", Parser: parse.Lines(parse.CSV(parse.Int[int]()))}
	reg, err := solution.NewRegistry(
		solution.Bind(paper,
			solution.NewVariant("neighbours", accessible),
			solution.NewVariant("lookups", accessibleSlow),
		),
		solution.Bind(rows, solution.NewVariant("sum", sum)),
	)
	require.NoError(t, err)
	return reg
}

// writeBook lays out a runbook and its inputs under a temp dir.
func writeBook(t *testing.T, src string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "inputs"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "inputs", "rolls.txt"), []byte(rolls), 0o644))
	path := filepath.Join(dir, "checks.hcl")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func quiet() solution.Option {
	return solution.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

//----------------------------------------------------------------------------//
// Decoding
//----------------------------------------------------------------------------//

func TestLoad(t *testing.T) {
	path := writeBook(t, book)
	rb, err := runbook.Load(path)
	require.NoError(t, err)

	assert.Equal(t, filepath.Dir(path), rb.Dir)
	assert.Equal(t, runbook.Logging{Level: "debug", Format: "json"}, rb.Logging)

	want := []runbook.Check{
		{Name: "rolls", Problem: "paper-rolls", Input: "inputs/rolls.txt", Expect: "13", HasExpect: true},
		{Name: "row-sums", Problem: "row-sums", Text: "1,2\n3", Expect: "6", HasExpect: true},
		{Name: "smoke", Problem: "row-sums", Text: "10"},
	}
	if diff := cmp.Diff(want, rb.Checks); diff != "" {
		t.Errorf("checks mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := runbook.Load(filepath.Join(t.TempDir(), "absent.hcl"))
	assert.ErrorIs(t, err, runbook.ErrDecode)
}

func TestParse_Expect(t *testing.T) {
	cases := []struct {
		name, expr, want string
	}{
		{"Int", "42", "42"},
		{"Negative", "-7", "-7"},
		{"Float", "1.5", "1.5"},
		{"Huge", "1180591620717411303424", "1180591620717411303424"},
		{"String", `"abc"`, "abc"},
		{"Bool", "true", "true"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			src := `check "c" {
  text   = "x"
  expect = ` + tc.expr + `
}`
			rb, err := runbook.Parse([]byte(src), "inline.hcl")
			require.NoError(t, err)
			require.Len(t, rb.Checks, 1)
			assert.True(t, rb.Checks[0].HasExpect)
			assert.Equal(t, tc.want, rb.Checks[0].Expect)
		})
	}
}

func TestParse_Errors(t *testing.T) {
	cases := map[string]string{
		"Syntax":  `check "a" {`,
		"NoInput": `check "a" { expect = 1 }`,
		"BothInputs": `check "a" {
  input = "f"
  text  = "x"
}`,
		"Duplicate": `check "a" { text = "x" }
check "a" { text = "y" }`,
		"UnknownField": `check "a" {
  text   = "x"
  answer = 1
}`,
		"BadLevel":  `logging { level = "loud" }`,
		"BadFormat": `logging { format = "xml" }`,
		"ListExpect": `check "a" {
  text   = "x"
  expect = [1, 2]
}`,
		"VariableExpect": `check "a" {
  text   = "x"
  expect = answer
}`,
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := runbook.Parse([]byte(src), "bad.hcl")
			assert.ErrorIs(t, err, runbook.ErrDecode)
		})
	}
}

func TestLogger(t *testing.T) {
	rb, err := runbook.Parse([]byte(`logging {
  level  = "warn"
  format = "json"
}`), "log.hcl")
	require.NoError(t, err)

	var buf bytes.Buffer
	l := rb.Logger(&buf)
	l.Info("hidden")
	assert.Zero(t, buf.Len())
	l.Warn("shown")
	assert.Contains(t, buf.String(), `"msg":"shown"`)
}

//----------------------------------------------------------------------------//
// Execution
//----------------------------------------------------------------------------//

func TestExecute_AllPass(t *testing.T) {
	rb, err := runbook.Load(writeBook(t, book))
	require.NoError(t, err)

	var buf bytes.Buffer
	outcomes, err := runbook.Execute(rb, registry(t), solution.WithLogger(rb.Logger(&buf)))
	require.NoError(t, err)
	require.Len(t, outcomes, 3)

	for _, o := range outcomes {
		assert.True(t, o.Passed, o.Check)
		assert.NoError(t, o.Err)
	}
	assert.Equal(t, "13", outcomes[0].Result.Answer)
	assert.Equal(t, 2, outcomes[0].Result.Solutions)
	assert.Equal(t, "6", outcomes[1].Result.Answer)
	assert.Equal(t, "10", outcomes[2].Result.Answer)

	assert.Equal(t, 3, strings.Count(buf.String(), `"msg":"check passed"`))
	assert.Contains(t, buf.String(), `"msg":"solved"`)
}

func TestExecute_Failures(t *testing.T) {
	src := `
check "wrong" {
  problem = "row-sums"
  text    = "1,1"
  expect  = 3
}

check "ghost" {
  text = "1"
}

check "missing-file" {
  problem = "row-sums"
  input   = "inputs/nope.txt"
}

check "garbage" {
  problem = "row-sums"
  text    = "1,x"
}

check "ok" {
  problem = "paper-rolls"
  input   = "inputs/rolls.txt"
  expect  = 13
}
`
	rb, err := runbook.Load(writeBook(t, src))
	require.NoError(t, err)

	outcomes, err := runbook.Execute(rb, registry(t), quiet())
	require.Error(t, err)
	require.Len(t, outcomes, 5, "a failing check does not stop the rest")

	assert.ErrorIs(t, outcomes[0].Err, runbook.ErrUnexpectedAnswer)
	assert.Equal(t, "2", outcomes[0].Result.Answer)
	assert.ErrorIs(t, outcomes[1].Err, solution.ErrUnknownProblem)
	assert.ErrorIs(t, outcomes[2].Err, fs.ErrNotExist)
	assert.ErrorIs(t, outcomes[3].Err, solution.ErrParse)
	assert.ErrorIs(t, outcomes[3].Err, parse.ErrMalformedToken)
	assert.True(t, outcomes[4].Passed)

	for _, sentinel := range []error{runbook.ErrUnexpectedAnswer, solution.ErrUnknownProblem, solution.ErrParse} {
		assert.ErrorIs(t, err, sentinel)
	}
	assert.Contains(t, err.Error(), `check "wrong"`)
}

func TestExecute_Empty(t *testing.T) {
	rb, err := runbook.Parse(nil, "empty.hcl")
	require.NoError(t, err)
	outcomes, err := runbook.Execute(rb, registry(t))
	require.NoError(t, err)
	assert.Empty(t, outcomes)
}
