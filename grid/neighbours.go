package grid

import (
	"iter"

	"github.com/katalvlaran/lvlgrid/geom"
)

// PointNeighbours yields p displaced by every direction of D, in D's order,
// keeping only points inside g. Off-grid neighbors are dropped, never errors.
//
//	for n := range grid.PointNeighbours[geom.Cardinal](g, p) { ... }
func PointNeighbours[D geom.Set, T any](g *Grid[T], p geom.Point) iter.Seq[geom.Point] {
	return func(yield func(geom.Point) bool) {
		for d := range geom.Directions[D]() {
			n := p.Add(d.Delta())
			if !g.Contains(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// ElementNeighbours pairs each point of PointNeighbours with its cell.
func ElementNeighbours[D geom.Set, T any](g *Grid[T], p geom.Point) iter.Seq2[geom.Point, T] {
	return func(yield func(geom.Point, T) bool) {
		for n := range PointNeighbours[D](g, p) {
			if !yield(n, g.elements[n.X+g.width*n.Y]) {
				return
			}
		}
	}
}

// NeighboursMatching restricts ElementNeighbours to cells equal to v.
func NeighboursMatching[D geom.Set, T comparable](g *Grid[T], p geom.Point, v T) iter.Seq2[geom.Point, T] {
	return func(yield func(geom.Point, T) bool) {
		for n, cell := range ElementNeighbours[D](g, p) {
			if cell != v {
				continue
			}
			if !yield(n, cell) {
				return
			}
		}
	}
}

// Matching restricts g.Elements to cells equal to v.
func Matching[T comparable](g *Grid[T], v T) iter.Seq2[geom.Point, T] {
	return func(yield func(geom.Point, T) bool) {
		for p, cell := range g.Elements() {
			if cell != v {
				continue
			}
			if !yield(p, cell) {
				return
			}
		}
	}
}

// Count drains seq and returns the number of items it produced.
func Count[V any](seq iter.Seq[V]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// Count2 drains seq and returns the number of pairs it produced.
func Count2[K, V any](seq iter.Seq2[K, V]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}
