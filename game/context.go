package game

import (
	"log"
	"math/rand"
)

// Key is a logical input key
type Key int

const (
	KeyLeft Key = iota
	KeyUp
	KeyRight
	KeyDown
	KeyEscape
)

// Input answers "is this key held right now"
type Input interface {
	IsHeld(key Key) bool
}

// Effect is a sound the simulation asks for
type Effect int

const (
	EffectLaser Effect = iota
	EffectExplosion
	EffectPickup
)

// Audio plays sound effects, fire and forget
type Audio interface {
	Play(effect Effect)
}

// HUD shows lives, score and the game over screen
type HUD interface {
	ShowLife(n int)
	HideLife(n int)
	SetScore(score int)
	GameOver(score int)
}

// NopAudio discards sound requests
type NopAudio struct{}

// Play does nothing
func (NopAudio) Play(Effect) {}

// NopHUD discards display requests
type NopHUD struct{}

func (NopHUD) ShowLife(int) {}
func (NopHUD) HideLife(int) {}
func (NopHUD) SetScore(int) {}
func (NopHUD) GameOver(int) {}

// NoInput never reports a held key
type NoInput struct{}

// IsHeld always returns false
func (NoInput) IsHeld(Key) bool { return false }

// Context carries the collaborators of one session. It is passed to every
// entity and spawner at construction.
type Context struct {
	Config Config

	Scene Scene
	Bus   *Bus
	Clock Clock
	World *World
	Stats *GameStats

	Input Input
	Audio Audio
	HUD   HUD

	Rand      *rand.Rand
	Intervals *IntervalGenerator
	Factory   *Factory
	Logger    *log.Logger
}

// immortal reports the stats flag, false before stats exist
func (c *Context) immortal() bool {
	return c.Stats != nil && c.Stats.Immortal
}
