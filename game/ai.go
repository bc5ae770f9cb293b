package game

import (
	"math"
)

// Controller is an Input that also produces pointer messages once per tick
type Controller interface {
	Input

	// Update polls the device and broadcasts pointer messages on bus
	Update(bus *Bus)
}

// Autopilot plays the game without a human. It dodges the nearest threat,
// drifts back to the start position when nothing is close, and keeps firing
// at the nearest enemy with predictive lead.
type Autopilot struct {
	// DodgeRadius is how close a threat has to be before the autopilot moves away
	DodgeRadius float64

	// HomeSlack is how far from the start position the autopilot may idle
	HomeSlack float64

	ctx  *Context
	held [KeyEscape + 1]bool
}

// NewAutopilot creates an autopilot, bind it to a session before the first tick
func NewAutopilot() *Autopilot {
	return &Autopilot{
		DodgeRadius: 220,
		HomeSlack:   40,
	}
}

// Bind attaches the autopilot to a session's collaborators
func (a *Autopilot) Bind(ctx *Context) {
	a.ctx = ctx
}

// IsHeld reports the keys chosen by the last Update
func (a *Autopilot) IsHeld(key Key) bool {
	if key < 0 || int(key) >= len(a.held) {
		return false
	}
	return a.held[key]
}

// target is something the autopilot shoots at or runs from
type target struct {
	x, y   float64
	vx, vy float64
}

// Update decides the held keys and sends pointer messages for this tick
func (a *Autopilot) Update(bus *Bus) {
	a.held = [KeyEscape + 1]bool{}
	if a.ctx == nil {
		return
	}
	player := a.ctx.World.Player()
	if player == nil {
		return
	}

	aim, hasAim := a.nearestEnemy(player)
	if hasAim {
		x, y := PredictiveAim(player.Pos.X, player.Pos.Y, aim.x, aim.y, aim.vx, aim.vy, a.ctx.Config.Laser.PlayerSpeed)
		bus.Broadcast(Message{Action: ActionPointerMove, X: x, Y: y})
		if !player.Firing() {
			bus.Broadcast(Message{Action: ActionPointerDown, X: x, Y: y})
		}
	} else if player.Firing() {
		bus.Broadcast(Message{Action: ActionPointerUp})
	}

	if threat, ok := a.nearestThreat(player); ok {
		a.steer(player.Pos.X-threat.x, player.Pos.Y-threat.y)
		return
	}
	cfg := a.ctx.Config.Player
	dx, dy := cfg.StartX-player.Pos.X, cfg.StartY-player.Pos.Y
	if math.Hypot(dx, dy) > a.HomeSlack {
		a.steer(dx, dy)
	}
}

// steer holds the keys that move along (dx, dy)
func (a *Autopilot) steer(dx, dy float64) {
	switch {
	case dx < 0:
		a.held[KeyLeft] = true
	case dx > 0:
		a.held[KeyRight] = true
	}
	switch {
	case dy < 0:
		a.held[KeyUp] = true
	case dy > 0:
		a.held[KeyDown] = true
	}
}

// nearestEnemy returns the closest enemy, or the closest meteorite when no enemy is alive
func (a *Autopilot) nearestEnemy(player *Player) (target, bool) {
	var enemy, rock target
	enemyDist, rockDist := math.Inf(1), math.Inf(1)

	cfg := a.ctx.Config
	a.ctx.World.Each(func(e Entity) {
		switch v := e.(type) {
		case *Enemy:
			if d := math.Hypot(v.Pos.X-player.Pos.X, v.Pos.Y-player.Pos.Y); d < enemyDist {
				vx, vy := Velocity(v.Heading, cfg.Enemy.Speed)
				enemy, enemyDist = target{x: v.Pos.X, y: v.Pos.Y, vx: vx, vy: vy}, d
			}
		case *Meteorite:
			if d := math.Hypot(v.Pos.X-player.Pos.X, v.Pos.Y-player.Pos.Y); d < rockDist {
				vx, vy := Velocity(v.Pos.Angle, cfg.Meteorite.Speed)
				rock, rockDist = target{x: v.Pos.X, y: v.Pos.Y, vx: vx, vy: vy}, d
			}
		}
	})
	if !math.IsInf(enemyDist, 1) {
		return enemy, true
	}
	return rock, !math.IsInf(rockDist, 1)
}

// nearestThreat returns the closest body that could cost a life, within DodgeRadius
func (a *Autopilot) nearestThreat(player *Player) (target, bool) {
	var best target
	bestDist := a.DodgeRadius
	found := false

	a.ctx.World.Each(func(e Entity) {
		var t target
		switch v := e.(type) {
		case *Enemy:
			t = target{x: v.Pos.X, y: v.Pos.Y}
		case *Meteorite:
			t = target{x: v.Pos.X, y: v.Pos.Y}
		case *Laser:
			if v.Origin != OriginEnemy {
				return
			}
			t = target{x: v.Pos.X, y: v.Pos.Y}
		default:
			return
		}
		if d := math.Hypot(t.x-player.Pos.X, t.y-player.Pos.Y); d < bestDist {
			best, bestDist, found = t, d, true
		}
	})
	return best, found
}
