// Package geometry holds the small numeric helpers shared by the router.
// Values are nanometer integers unless stated otherwise.
package geometry

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/spatial/r2"
)

// Abs returns the absolute value of an integer.
func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1 following the sign of x.
func Sign(x int64) int64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// Clamp limits v to the closed range [lo, hi].
func Clamp(v, lo, hi int64) int64 {
	if lo > hi {
		lo, hi = hi, lo
	}
	return max(lo, min(v, hi))
}

// SnapToGrid rounds v to the nearest multiple of grid, halves away from zero.
func SnapToGrid(v, grid int64) int64 {
	if grid <= 0 {
		return v
	}
	half := grid / 2
	if v >= 0 {
		return (v + half) / grid * grid
	}
	return -((-v + half) / grid * grid)
}

// ManhattanDistance calculates the Manhattan distance between two points.
func ManhattanDistance(x1, y1, x2, y2 int64) int64 {
	return Abs(x2-x1) + Abs(y2-y1)
}

// Euclidean calculates the straight-line distance between two points.
func Euclidean(x1, y1, x2, y2 int64) float64 {
	a := r2.Vec{X: float64(x1), Y: float64(y1)}
	b := r2.Vec{X: float64(x2), Y: float64(y2)}
	return r2.Norm(r2.Sub(b, a))
}

// Sum adds up a slice of lengths or areas.
func Sum(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return floats.Sum(values)
}
