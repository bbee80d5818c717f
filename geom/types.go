package geom

import "fmt"

// Point is a location in grid space.
type Point struct {
	X, Y int
}

// Vector is a displacement in grid space.
type Vector struct {
	X, Y int
}

// Size is a width/height pair in grid space.
type Size struct {
	Width, Height int
}

// Rect is an axis-aligned rectangle: Origin inclusive, Origin+Size exclusive.
type Rect struct {
	Origin Point
	Size   Size
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Vec is shorthand for Vector{X: x, Y: y}.
func Vec(x, y int) Vector {
	return Vector{X: x, Y: y}
}

// Add returns p displaced by v.
func (p Point) Add(v Vector) Point {
	return Point{X: p.X + v.X, Y: p.Y + v.Y}
}

// Sub returns the vector that moves q onto p.
func (p Point) Sub(q Point) Vector {
	return Vector{X: p.X - q.X, Y: p.Y - q.Y}
}

// String renders p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Add returns the component-wise sum of v and w.
func (v Vector) Add(w Vector) Vector {
	return Vector{X: v.X + w.X, Y: v.Y + w.Y}
}

// Scale multiplies both components by k.
func (v Vector) Scale(k int) Vector {
	return Vector{X: v.X * k, Y: v.Y * k}
}

// Neg returns the opposite displacement.
func (v Vector) Neg() Vector {
	return Vector{X: -v.X, Y: -v.Y}
}

// Manhattan returns |x| + |y|.
func (v Vector) Manhattan() int {
	return abs(v.X) + abs(v.Y)
}

// Area returns Width*Height, or 0 for a degenerate size.
func (s Size) Area() int {
	if s.Width <= 0 || s.Height <= 0 {
		return 0
	}
	return s.Width * s.Height
}

// Rect returns the rectangle of size s anchored at the origin.
func (s Size) Rect() Rect {
	return Rect{Size: s}
}

// Contains reports whether p lies inside r.
// Complexity: O(1).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Origin.X && p.X < r.Origin.X+r.Size.Width &&
		p.Y >= r.Origin.Y && p.Y < r.Origin.Y+r.Size.Height
}

// Empty reports whether r covers no points.
func (r Rect) Empty() bool {
	return r.Size.Area() == 0
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
