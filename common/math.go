package common

import (
	"math"

	"github.com/jakecoffman/cp"
)

// Vector is the 2D vector used for positions, speeds and forces.
type Vector = cp.Vector

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Approach moves cur toward target by at most step.
func Approach(cur, target, step float64) float64 {
	if cur < target {
		return math.Min(cur+step, target)
	}
	return math.Max(cur-step, target)
}

// DegToRad converts an angle in degrees, where 0 points right and 90 points
// down, to radians.
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// AngleTo returns the angle in degrees from a to b using screen axes.
func AngleTo(a, b Vector) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X) * 180 / math.Pi
}
