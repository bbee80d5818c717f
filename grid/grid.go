package grid

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvlgrid/geom"
	"github.com/katalvlaran/lvlgrid/parse"
)

// maxPreview bounds how many cells an error fragment renders.
const maxPreview = 16

// Grid is a dense, rectangular, row-major container of cells.
// Invariant: len(elements) == width*height.
type Grid[T any] struct {
	elements []T
	width    int
	height   int
}

// New returns a width×height grid of zero-valued cells. Negative dimensions
// are treated as zero.
func New[T any](width, height int) *Grid[T] {
	width, height = max(width, 0), max(height, 0)
	return &Grid[T]{
		elements: make([]T, width*height),
		width:    width,
		height:   height,
	}
}

// FromElements wraps a row-major slice. The slice is used as-is, not copied.
// Returns parse.ErrDimensionMismatch if len(elements) != width*height.
func FromElements[T any](elements []T, width, height int) (*Grid[T], error) {
	if width < 0 || height < 0 || len(elements) != width*height {
		return nil, parse.Mismatch("grid", 0, "%d cells for a %dx%d grid", len(elements), width, height).
			WithFragment(fmt.Sprint(elements[:min(len(elements), maxPreview)]))
	}

	return &Grid[T]{elements: elements, width: width, height: height}, nil
}

// FromRows builds a grid from a non-empty rectangular 2D slice, copying the
// input. Ragged or empty input returns parse.ErrDimensionMismatch.
// Complexity: O(W×H) time and memory.
func FromRows[T any](rows [][]T) (*Grid[T], error) {
	if len(rows) == 0 {
		return nil, parse.Mismatch("grid", 0, "no rows")
	}
	h, w := len(rows), len(rows[0])
	elements := make([]T, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, parse.Mismatch("grid", y+1, "row has %d cells, want %d", len(row), w).
				WithFragment(fmt.Sprint(row[:min(len(row), maxPreview)]))
		}
		elements = append(elements, row...)
	}

	return &Grid[T]{elements: elements, width: w, height: h}, nil
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Size returns the grid dimensions.
func (g *Grid[T]) Size() geom.Size {
	return geom.Size{Width: g.width, Height: g.height}
}

// Rect returns the grid rectangle, anchored at the origin.
func (g *Grid[T]) Rect() geom.Rect {
	return g.Size().Rect()
}

// Contains reports whether p lies inside the grid.
func (g *Grid[T]) Contains(p geom.Point) bool {
	return g.Rect().Contains(p)
}

// index maps p to its row-major index: x + width*y.
func (g *Grid[T]) index(p geom.Point) (int, bool) {
	if !g.Contains(p) {
		return 0, false
	}
	return p.X + g.width*p.Y, true
}

// Get returns the cell at p. ok is false when p is outside the grid.
func (g *Grid[T]) Get(p geom.Point) (cell T, ok bool) {
	i, ok := g.index(p)
	if !ok {
		return cell, false
	}
	return g.elements[i], true
}

// At returns a pointer to the cell at p for in-place mutation, or nil and
// false when p is outside the grid.
func (g *Grid[T]) At(p geom.Point) (*T, bool) {
	i, ok := g.index(p)
	if !ok {
		return nil, false
	}
	return &g.elements[i], true
}

// Set stores v at p and reports whether p was inside the grid.
func (g *Grid[T]) Set(p geom.Point, v T) bool {
	i, ok := g.index(p)
	if ok {
		g.elements[i] = v
	}
	return ok
}

// Clone returns an independent copy of g. Cells are copied shallowly.
func (g *Grid[T]) Clone() *Grid[T] {
	elements := make([]T, len(g.elements))
	copy(elements, g.elements)
	return &Grid[T]{elements: elements, width: g.width, height: g.height}
}

// Points yields every coordinate in row-major order: y outer, x inner.
func (g *Grid[T]) Points() iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		for y := 0; y < g.height; y++ {
			for x := 0; x < g.width; x++ {
				if !yield(geom.Pt(x, y)) {
					return
				}
			}
		}
	}
}

// Elements yields every coordinate with its cell, in the order of Points.
func (g *Grid[T]) Elements() iter.Seq2[geom.Point, T] {
	return func(yield func(geom.Point, T) bool) {
		for p := range g.Points() {
			if !yield(p, g.elements[p.X+g.width*p.Y]) {
				return
			}
		}
	}
}

// Rows yields, top to bottom, a sequence of each row's coordinates left to right.
func (g *Grid[T]) Rows() iter.Seq[iter.Seq[geom.Point]] {
	return func(yield func(iter.Seq[geom.Point]) bool) {
		for y := 0; y < g.height; y++ {
			if !yield(line(geom.Pt(0, y), geom.Vec(1, 0), g.width)) {
				return
			}
		}
	}
}

// Columns yields, left to right, a sequence of each column's coordinates top
// to bottom. It is the natural way to read a grid as vertical equations.
func (g *Grid[T]) Columns() iter.Seq[iter.Seq[geom.Point]] {
	return func(yield func(iter.Seq[geom.Point]) bool) {
		for x := 0; x < g.width; x++ {
			if !yield(line(geom.Pt(x, 0), geom.Vec(0, 1), g.height)) {
				return
			}
		}
	}
}

// line yields n points starting at start and stepping by step.
func line(start geom.Point, step geom.Vector, n int) iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		p := start
		for i := 0; i < n; i++ {
			if !yield(p) {
				return
			}
			p = p.Add(step)
		}
	}
}
