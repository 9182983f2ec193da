package common

import "math"

// WrapFrac wraps x into [0,1). Unlike a bare math.Mod, negative inputs wrap
// up into range instead of staying negative.
func WrapFrac(x float64) float64 {
	f := math.Mod(x, 1.0)
	if f < 0 {
		f += 1.0
	}
	return f
}

// WrapAngle wraps an angle in radians into [0, 2π).
func WrapAngle(a float64) float64 {
	w := math.Mod(a, 2*math.Pi)
	if w < 0 {
		w += 2 * math.Pi
	}
	return w
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
