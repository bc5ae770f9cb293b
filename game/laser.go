package game

import "time"

// Laser flies straight until it leaves the screen or its visual is taken by a hit
type Laser struct {
	Body

	Origin LaserOrigin
	Color  LaserColor
	speed  float64
}

// newLaser creates a laser travelling along pos.Angle
func newLaser(ctx *Context, origin LaserOrigin, c LaserColor, pos Position) *Laser {
	originCfg := GetOriginConfig(origin, ctx.Config.Laser)
	return &Laser{
		Body:   newBody(ctx, Sprite{Kind: SpriteLaser, Variant: int(c), Scale: 0.25}, pos, originCfg.Tag),
		Origin: originCfg.Origin,
		Color:  c,
		speed:  originCfg.Speed,
	}
}

// Kind returns KindLaser
func (l *Laser) Kind() EntityKind {
	return KindLaser
}

// Finish removes the laser's visual if the hit side has not already
func (l *Laser) Finish() {
	l.finish()
}

// Update moves the laser and finishes it off screen or once its visual is gone
func (l *Laser) Update(now time.Time) {
	if l.finished {
		return
	}
	if !l.ctx.Scene.Attached(l.Visual) {
		l.Finish()
		return
	}
	l.Pos = l.Pos.Advance(l.Pos.Angle, l.speed)
	l.sync()
	w, h := l.ctx.Scene.Size()
	if PointOffscreen(l.Pos.X, l.Pos.Y, w, h) {
		l.Finish()
	}
}
