package game

import "math"

// Velocity returns the per-tick displacement of moving along angle at speed
func Velocity(angle, speed float64) (float64, float64) {
	p := Position{}.Advance(angle, speed)
	return p.X, p.Y
}

// PredictiveAim returns the point a laser fired from (shooterX, shooterY) at
// laserSpeed should be aimed at to meet a target moving at (targetVX, targetVY).
// Speeds are per tick.
func PredictiveAim(shooterX, shooterY, targetX, targetY, targetVX, targetVY, laserSpeed float64) (float64, float64) {
	dx := targetX - shooterX
	dy := targetY - shooterY

	// Stationary target
	if math.Abs(targetVX) < 1e-3 && math.Abs(targetVY) < 1e-3 {
		return targetX, targetY
	}

	distance := math.Hypot(dx, dy)
	if distance < 1 || laserSpeed <= 0 {
		return targetX, targetY
	}

	// Refine the flight time t so the laser covers the distance to where the
	// target will be at t
	t := distance / laserSpeed
	for i := 0; i < 8; i++ {
		px := targetX + targetVX*t
		py := targetY + targetVY*t
		next := math.Hypot(px-shooterX, py-shooterY) / laserSpeed
		if math.Abs(next-t) < 1e-3 {
			t = next
			break
		}
		t = next
	}

	return targetX + targetVX*t, targetY + targetVY*t
}
