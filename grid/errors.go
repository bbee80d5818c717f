package grid

import "errors"

var (
	// ErrEmptyRegion indicates a Bridge endpoint region has no points.
	ErrEmptyRegion = errors.New("grid: region must contain at least one point")
	// ErrNoPath indicates no conversion path exists between two regions.
	ErrNoPath = errors.New("grid: no path between specified regions")
)
