package grid

import (
	"container/list"

	"github.com/katalvlaran/lvlgrid/geom"
)

// Regions finds all contiguous regions of cells for which keep returns true,
// where contiguity follows direction set D.
// Regions are ordered by the row-major position of their first cell; each
// region lists its points in breadth-first discovery order.
//
// Time:   O(W·H·|D|).
// Memory: O(W·H) for visited flags and output.
func Regions[D geom.Set, T any](g *Grid[T], keep func(T) bool) [][]geom.Point {
	seen := make([]bool, len(g.elements))
	var regions [][]geom.Point

	for p, cell := range g.Elements() {
		i0 := p.X + g.width*p.Y
		if seen[i0] || !keep(cell) {
			continue
		}
		// BFS to collect region
		queue := []geom.Point{p}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			for n, ncell := range ElementNeighbours[D](g, queue[qi]) {
				ni := n.X + g.width*n.Y
				if seen[ni] || !keep(ncell) {
					continue
				}
				seen[ni] = true
				queue = append(queue, n)
			}
		}
		regions = append(regions, queue)
	}

	return regions
}

// Bridge finds a cheapest path joining region from to region to, moving along
// direction set D. Entering a cell for which keep is true costs 0; entering
// any other cell costs 1 (the cell would have to be converted).
// It returns the path, both endpoints included, and its total cost.
//
// Behavior:
//  1. Validate that both regions are non-empty.
//  2. Multi-source 0-1 BFS from every point of from.
//  3. Stop at the first point of to popped from the deque.
//  4. Reconstruct the path via predecessor links.
//
// Points outside g are ignored. Returns ErrEmptyRegion for an empty region
// and ErrNoPath when to cannot be reached.
// Complexity: O(W·H·|D|) time, O(W·H) memory.
func Bridge[D geom.Set, T any](g *Grid[T], from, to []geom.Point, keep func(T) bool) (path []geom.Point, cost int, err error) {
	if len(from) == 0 || len(to) == 0 {
		return nil, 0, ErrEmptyRegion
	}
	n := len(g.elements)
	dst := make([]bool, n)
	for _, p := range to {
		if i, ok := g.index(p); ok {
			dst[i] = true
		}
	}

	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	// 0-1 BFS: cost-0 moves at the front, cost-1 moves at the back
	dq := list.New()
	for _, p := range from {
		if i, ok := g.index(p); ok {
			dist[i] = 0
			dq.PushFront(i)
		}
	}

	target := -1
	for dq.Len() > 0 {
		u := dq.Remove(dq.Front()).(int)
		if dst[u] {
			target = u
			break
		}
		up := geom.Pt(u%g.width, u/g.width)
		for v, vcell := range ElementNeighbours[D](g, up) {
			vi := v.X + g.width*v.Y
			step := 0
			if !keep(vcell) {
				step = 1
			}
			if nd := dist[u] + step; nd < dist[vi] {
				dist[vi] = nd
				prev[vi] = u
				if step == 0 {
					dq.PushFront(vi)
				} else {
					dq.PushBack(vi)
				}
			}
		}
	}

	if target < 0 {
		return nil, 0, ErrNoPath
	}
	for at := target; at >= 0; at = prev[at] {
		path = append(path, geom.Pt(at%g.width, at/g.width))
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path, dist[target], nil
}
