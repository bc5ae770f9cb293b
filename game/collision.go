package game

// AABB is an axis-aligned bounding box with its origin at the top-left corner
type AABB struct {
	X, Y, W, H float64
}

// Intersects reports open-interval overlap, touching edges do not collide
func Intersects(a, b AABB) bool {
	return a.X+a.W > b.X &&
		a.X < b.X+b.W &&
		a.Y+a.H > b.Y &&
		a.Y < b.Y+b.H
}

// IsOffscreen reports whether box lies entirely outside the screen grown by margin
func IsOffscreen(box AABB, screenW, screenH, margin float64) bool {
	return box.X+box.W < -margin ||
		box.X > screenW+margin ||
		box.Y+box.H < -margin ||
		box.Y > screenH+margin
}

// PointOffscreen reports whether a point lies outside [0,w]x[0,h]
func PointOffscreen(x, y, screenW, screenH float64) bool {
	return x > screenW || x < 0 || y > screenH || y < 0
}

// collides checks a visual against another, a missing visual never collides
func collides(scene Scene, a, b VisualID) bool {
	boxA, ok := scene.BoundsOf(a)
	if !ok {
		return false
	}
	boxB, ok := scene.BoundsOf(b)
	if !ok {
		return false
	}
	return Intersects(boxA, boxB)
}

// firstHit returns the first visual tagged tag that overlaps self
func firstHit(scene Scene, self VisualID, tag Tag) (VisualID, bool) {
	for _, id := range scene.FindByTag(tag) {
		if collides(scene, self, id) {
			return id, true
		}
	}
	return 0, false
}
