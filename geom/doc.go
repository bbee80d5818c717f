// Package geom defines the integer coordinate space shared by every grid in
// lvlgrid, together with the closed direction sets used for neighbor queries.
//
// What:
//
//   - Point, Vector, Size and Rect are dedicated struct types for grid-local
//     coordinates. They are deliberately not aliases of [2]int or image.Point,
//     so mixing grid coordinates with another coordinate system is a compile
//     error rather than a silent bug.
//   - Cardinal (N, E, S, W) and Ordinal (N, NE, E, SE, S, SW, W, NW) are closed
//     enumerations. Each variant carries a constant unit displacement (Delta).
//   - Set is the union constraint Cardinal | Ordinal. Generic helpers such as
//     Directions[D] and grid.PointNeighbours[D] are parameterized by it.
//
// Conventions:
//
//   - x grows to the East, y grows to the South; North is (0,-1).
//   - Iteration order of a direction set is fixed and part of the API:
//     Cardinal yields N, E, S, W; Ordinal yields N, NE, E, SE, S, SW, W, NW.
//
// Complexity:
//
//   - All operations are O(1) except Directions, which is O(|D|).
package geom
