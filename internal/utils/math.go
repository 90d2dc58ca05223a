// internal/utils/math.go
package utils

import "math"

// Lerp performs standard linear interpolation.
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Distance returns the euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(bx-ax, by-ay)
}

// PointLineDistance returns the perpendicular distance from (px,py) to the
// infinite line through (ax,ay) and (bx,by). A degenerate line falls back to
// the point distance.
func PointLineDistance(px, py, ax, ay, bx, by float64) float64 {
	dx := bx - ax
	dy := by - ay
	length := math.Hypot(dx, dy)
	if length < 1e-12 {
		return Distance(px, py, ax, ay)
	}
	return math.Abs(dy*(px-ax)-dx*(py-ay)) / length
}
