package game

import "time"

// GameStats aggregates score, lives and laser level for one session and runs
// the invulnerability windows. It only reacts to bus messages.
type GameStats struct {
	Score      int
	Lives      int
	LaserLevel int
	Immortal   bool

	// FinalScore is frozen when the last life is lost
	FinalScore int

	ctx  *Context
	subs []Subscription

	// Flashing invulnerability after a respawn
	flashing    bool
	flashStart  time.Time
	flashVisual VisualID

	// Shield invulnerability
	shielded    bool
	shieldUntil time.Time

	gameOverScheduled bool
}

// NewGameStats creates the stats for a new session, shows the starting lives and subscribes
func NewGameStats(ctx *Context) *GameStats {
	cfg := ctx.Config.Stats
	gs := &GameStats{
		Lives:      cfg.StartingLives,
		LaserLevel: cfg.StartingLaserLevel,
		ctx:        ctx,
	}
	for i := 1; i <= gs.Lives; i++ {
		ctx.HUD.ShowLife(i)
	}
	ctx.HUD.SetScore(gs.Score)

	gs.subs = append(gs.subs,
		ctx.Bus.Subscribe(ActionAddLife, func(Message) { gs.addLife() }),
		ctx.Bus.Subscribe(ActionRemoveLife, func(Message) { gs.removeLife() }),
		ctx.Bus.Subscribe(ActionAddScore, func(msg Message) { gs.addScore(msg.Amount) }),
		ctx.Bus.Subscribe(ActionImmortalityOn, func(Message) { gs.startFlashing(ctx.Clock.Now()) }),
		ctx.Bus.Subscribe(ActionShieldOn, func(Message) { gs.startShield(ctx.Clock.Now()) }),
		ctx.Bus.Subscribe(ActionIncreaseLaserLevel, func(Message) { gs.increaseLaserLevel() }),
		ctx.Bus.Subscribe(ActionShieldOff, func(Message) { gs.shieldDropped() }),
	)
	return gs
}

// Close drops the stats' bus subscriptions
func (gs *GameStats) Close() {
	for _, sub := range gs.subs {
		gs.ctx.Bus.Unsubscribe(sub)
	}
	gs.subs = nil
}

// GameOverScheduled reports whether the last life has been lost
func (gs *GameStats) GameOverScheduled() bool {
	return gs.gameOverScheduled
}

// Flashing reports whether the respawn flash sequence is running
func (gs *GameStats) Flashing() bool {
	return gs.flashing
}

// Shielded reports whether the shield window is running
func (gs *GameStats) Shielded() bool {
	return gs.shielded
}

func (gs *GameStats) addLife() {
	if gs.Lives >= gs.ctx.Config.Stats.MaxLives {
		return
	}
	gs.Lives++
	gs.ctx.HUD.ShowLife(gs.Lives)
}

func (gs *GameStats) removeLife() {
	if gs.Lives > 0 {
		gs.ctx.HUD.HideLife(gs.Lives)
		gs.Lives--
		// the respawned player starts over at the first level
		gs.LaserLevel = gs.ctx.Config.Stats.StartingLaserLevel
	}
	if gs.Lives == 0 && !gs.gameOverScheduled {
		gs.gameOverScheduled = true
		gs.FinalScore = gs.Score
	}
}

func (gs *GameStats) addScore(amount int) {
	if amount <= 0 {
		return
	}
	gs.Score += amount
	gs.ctx.HUD.SetScore(gs.Score)
}

func (gs *GameStats) increaseLaserLevel() {
	if gs.LaserLevel < gs.ctx.Config.Stats.MaxLaserLevel {
		gs.LaserLevel++
	}
}

// startFlashing makes the current player immortal and starts the flash sequence
func (gs *GameStats) startFlashing(now time.Time) {
	player := gs.ctx.World.Player()
	if player == nil {
		return
	}
	gs.Immortal = true
	gs.flashing = true
	gs.flashStart = now
	gs.flashVisual = player.Visual
	gs.ctx.Scene.SetAlpha(gs.flashVisual, 0.3)
}

// startShield makes the player immortal until the shield deadline
func (gs *GameStats) startShield(now time.Time) {
	if gs.ctx.World.Player() == nil {
		return
	}
	gs.Immortal = true
	gs.shielded = true
	gs.shieldUntil = now.Add(Seconds(gs.ctx.Config.Stats.ShieldDuration))
}

// Update checks the invulnerability deadlines
func (gs *GameStats) Update(now time.Time) {
	if gs.flashing {
		gs.updateFlash(now)
	}
	if gs.shielded && !now.Before(gs.shieldUntil) {
		gs.shielded = false
		// a running flash sequence clears the flag when it ends
		if !gs.flashing {
			gs.endImmortality()
		}
	}
}

// updateFlash alternates the player's alpha and ends the sequence after the last flash
func (gs *GameStats) updateFlash(now time.Time) {
	cfg := gs.ctx.Config.Stats
	flashes := cfg.ImmortalityFlashes
	phase := 2 * flashes
	if flashes > 0 {
		if half := Seconds(cfg.ImmortalityDuration) / time.Duration(flashes*2); half > 0 {
			phase = int(now.Sub(gs.flashStart) / half)
		}
	}

	if phase < 2*flashes {
		if phase%2 == 0 {
			gs.ctx.Scene.SetAlpha(gs.flashVisual, 0.3)
		} else {
			gs.ctx.Scene.SetAlpha(gs.flashVisual, 1)
		}
		return
	}

	gs.ctx.Scene.SetAlpha(gs.flashVisual, 1)
	gs.flashing = false
	if gs.shielded {
		return
	}
	if player := gs.ctx.World.Player(); player != nil && player.ShieldActive() {
		return
	}
	gs.endImmortality()
}

// shieldDropped ends immortality a flash sequence deferred to the player's shield
func (gs *GameStats) shieldDropped() {
	if gs.Immortal && !gs.flashing && !gs.shielded {
		gs.endImmortality()
	}
}

func (gs *GameStats) endImmortality() {
	gs.ctx.Bus.Send(ActionImmortalityOff)
	gs.Immortal = false
}
