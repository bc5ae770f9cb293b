package game

import (
	"math"
	"math/rand"
)

// Edge is a side of the screen
type Edge int

const (
	EdgeTop Edge = iota
	EdgeRight
	EdgeBottom
	EdgeLeft
)

// PerimeterPoint places a footprint (w, h) just outside a (W, H) screen.
// r in [0, 2a+2b) picks the edge and the offset along it, u in [0,1) picks the
// heading inside a 0.6π window pointing into the screen.
func PerimeterPoint(screenW, screenH, w, h, r, u float64) (Position, Edge) {
	a := screenW + w
	b := screenH + h
	spread := u * 0.6 * math.Pi

	switch {
	case r < a:
		return Position{X: r, Y: -h / 2, Angle: spread + 0.7*math.Pi}, EdgeTop
	case r < a+b:
		return Position{X: screenW + w/2, Y: r - a, Angle: spread + 1.2*math.Pi}, EdgeRight
	case r < 2*a+b:
		return Position{X: r - a - b, Y: screenH + h/2, Angle: spread + 1.7*math.Pi}, EdgeBottom
	default:
		return Position{X: -w / 2, Y: r - 2*a - b, Angle: spread + 0.2*math.Pi}, EdgeLeft
	}
}

// RandomPerimeterPoint draws r and u from rng
func RandomPerimeterPoint(rng *rand.Rand, screenW, screenH, w, h float64) (Position, Edge) {
	perimeter := 2*(screenW+w) + 2*(screenH+h)
	return PerimeterPoint(screenW, screenH, w, h, rng.Float64()*perimeter, rng.Float64())
}
