// Package grid provides Grid[T], a dense rectangular container of typed cells
// with bounds-checked lookup and direction-aware neighbor queries, plus the
// text parsers that build grids from puzzle input.
//
// What:
//
//   - Grid[T] stores width×height cells in one row-major slice; the cell at
//     (x,y) lives at index x + width·y.
//   - Lookups outside [0,width)×[0,height) never fail loudly: Get and At
//     report ok=false, neighbor queries silently drop off-grid points.
//   - Points, Elements, Rows and Columns are range-over-func iterators; every
//     call returns a fresh, restartable sequence in row-major order.
//   - PointNeighbours[D], ElementNeighbours[D] and NeighboursMatching[D] are
//     parameterized by a geom.Set (geom.Cardinal or geom.Ordinal) and yield in
//     the set's fixed order.
//   - DenseParser reads one character per cell; AlignedParser reads
//     column-aligned multi-character tokens whose spans are fixed by a trailing
//     operator row.
//   - Regions and Bridge find connected regions and the cheapest way to join
//     two of them.
//
// Errors:
//
//   - parse.ErrMalformedToken: a character or token the cell rule rejects.
//   - parse.ErrDimensionMismatch: ragged rows, empty input, or a cell count
//     disagreeing with width×height.
//   - ErrEmptyRegion, ErrNoPath: invalid Bridge endpoints / unreachable region.
//
// Concurrency: a Grid is not safe for concurrent mutation.
//
// Complexity:
//
//   - Get/At/Set: O(1). Neighbor queries: O(|D|).
//   - Regions, Bridge: O(W·H·|D|) time, O(W·H) memory.
package grid
