// Package lvlgrid is a toolkit for text-puzzle solvers: typed grids, parser
// composition and a timed run harness.
//
// Everything is organized under five subpackages:
//
//	geom/       Point, Vector, Size, Rect; Cardinal and Ordinal direction sets
//	grid/       Grid[T] container, neighbour queries, dense & aligned parsers,
//	            connected regions and 0-1 BFS bridging
//	parse/      Parser / LineParser, the Lines lift, CSV, ranges, dual sections,
//	            typed *parse.Error with sentinel kinds
//	solution/   Problem, Solution, Solve / SolveAll, slog logging, Registry
//	runbook/    HCL runbooks: named checks executed against a Registry
//
// A typical solver parses with grid or parse, binds that parser to a
// solution.Problem and hands its solutions to solution.Solve:
//
//	rolls := solution.Problem[*grid.Grid[rune], int]{
//		Name:   "paper-rolls",
//		Parser: grid.Dense(grid.Runes),
//	}
//	rep, err := solution.Solve(rolls, solution.Func[*grid.Grid[rune], int](count), input)
//
// Out-of-bounds lookups are never errors; they return ok == false and are
// what neighbour iteration filters on. Parse failures are fatal and carry the
// parser name, line and offending fragment.
package lvlgrid
