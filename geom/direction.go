package geom

import "iter"

// Direction is a named unit displacement.
type Direction interface {
	// Delta returns the unit displacement of the direction.
	Delta() Vector
	String() string
}

// Set is the closed family of direction sets. Generic neighbor queries are
// parameterized by it, e.g. grid.PointNeighbours[geom.Ordinal](g, p).
type Set interface {
	Cardinal | Ordinal
	Direction
	count() int
}

// Directions yields every variant of D in its documented order.
// Each call returns a fresh, independent sequence.
func Directions[D Set]() iter.Seq[D] {
	return func(yield func(D) bool) {
		var zero D
		for i := 0; i < zero.count(); i++ {
			if !yield(D(i)) {
				return
			}
		}
	}
}

// Cardinal is a 4-way direction.
type Cardinal uint8

// Cardinal directions in iteration order.
const (
	North Cardinal = iota
	East
	South
	West
)

var cardinalDeltas = [...]Vector{
	North: {0, -1},
	East:  {1, 0},
	South: {0, 1},
	West:  {-1, 0},
}

var cardinalNames = [...]string{"N", "E", "S", "W"}

func (Cardinal) count() int { return len(cardinalDeltas) }

// Delta returns the unit displacement; an invalid value yields the zero vector.
func (d Cardinal) Delta() Vector {
	if int(d) >= len(cardinalDeltas) {
		return Vector{}
	}
	return cardinalDeltas[d]
}

// Rotate turns d a quarter turn clockwise.
func (d Cardinal) Rotate() Cardinal {
	return (d + 1) % Cardinal(len(cardinalDeltas))
}

// RotateCCW turns d a quarter turn counter-clockwise.
func (d Cardinal) RotateCCW() Cardinal {
	return (d + Cardinal(len(cardinalDeltas)) - 1) % Cardinal(len(cardinalDeltas))
}

// Opposite returns the direction pointing the other way.
func (d Cardinal) Opposite() Cardinal {
	return (d + 2) % Cardinal(len(cardinalDeltas))
}

func (d Cardinal) String() string {
	if int(d) >= len(cardinalNames) {
		return "Cardinal(?)"
	}
	return cardinalNames[d]
}

// Ordinal is an 8-way direction (compass points including diagonals).
type Ordinal uint8

// Ordinal directions in iteration order, clockwise from north.
const (
	OrdinalN Ordinal = iota
	OrdinalNE
	OrdinalE
	OrdinalSE
	OrdinalS
	OrdinalSW
	OrdinalW
	OrdinalNW
)

var ordinalDeltas = [...]Vector{
	OrdinalN:  {0, -1},
	OrdinalNE: {1, -1},
	OrdinalE:  {1, 0},
	OrdinalSE: {1, 1},
	OrdinalS:  {0, 1},
	OrdinalSW: {-1, 1},
	OrdinalW:  {-1, 0},
	OrdinalNW: {-1, -1},
}

var ordinalNames = [...]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func (Ordinal) count() int { return len(ordinalDeltas) }

// Delta returns the unit displacement; an invalid value yields the zero vector.
func (d Ordinal) Delta() Vector {
	if int(d) >= len(ordinalDeltas) {
		return Vector{}
	}
	return ordinalDeltas[d]
}

// Rotate turns d an eighth turn clockwise.
func (d Ordinal) Rotate() Ordinal {
	return (d + 1) % Ordinal(len(ordinalDeltas))
}

// Opposite returns the direction pointing the other way.
func (d Ordinal) Opposite() Ordinal {
	return (d + 4) % Ordinal(len(ordinalDeltas))
}

func (d Ordinal) String() string {
	if int(d) >= len(ordinalNames) {
		return "Ordinal(?)"
	}
	return ordinalNames[d]
}
