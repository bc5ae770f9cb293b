package game

import (
	"math/rand"
	"testing"
	"time"
)

type recordingHUD struct {
	shown     []int
	hidden    []int
	scores    []int
	gameOvers []int
}

func (h *recordingHUD) ShowLife(n int) { h.shown = append(h.shown, n) }
func (h *recordingHUD) HideLife(n int) { h.hidden = append(h.hidden, n) }
func (h *recordingHUD) SetScore(score int) { h.scores = append(h.scores, score) }
func (h *recordingHUD) GameOver(score int) { h.gameOvers = append(h.gameOvers, score) }

type recordingAudio struct {
	played []Effect
}

func (a *recordingAudio) Play(effect Effect) { a.played = append(a.played, effect) }

func (a *recordingAudio) count(effect Effect) int {
	n := 0
	for _, e := range a.played {
		if e == effect {
			n++
		}
	}
	return n
}

type heldKeys map[Key]bool

func (k heldKeys) IsHeld(key Key) bool { return k[key] }

// quietConfig disables every spawner so tests place entities by hand
func quietConfig() Config {
	cfg := DefaultConfig()
	cfg.Spawner.EnemyIntensity = 0
	cfg.Spawner.MeteoriteIntensity = 0
	cfg.Spawner.DifficultyInterval = 0
	cfg.Collectable.SpawnerEnabled = false
	cfg.Meteorite.CollectableChance = 0
	return cfg
}

type harness struct {
	t       *testing.T
	session *Session
	ctx     *Context
	stage   *Stage
	clock   *StepClock
	hud     *recordingHUD
	audio   *recordingAudio
	keys    heldKeys
	msgs    []Message
}

var testEpoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newHarness(t *testing.T, cfg Config) *harness {
	t.Helper()
	h := &harness{
		t:     t,
		stage: NewStage(cfg.Screen.Width, cfg.Screen.Height),
		clock: NewStepClock(testEpoch),
		hud:   &recordingHUD{},
		audio: &recordingAudio{},
		keys:  heldKeys{},
	}
	h.session = NewSession(cfg, Dependencies{
		Scene: h.stage,
		Input: h.keys,
		Audio: h.audio,
		HUD:   h.hud,
		Clock: h.clock,
		Rand:  rand.New(rand.NewSource(12345)),
	})
	h.ctx = h.session.Context()
	h.ctx.Bus.SubscribeAll(func(msg Message) { h.msgs = append(h.msgs, msg) },
		ActionAddLife, ActionRemoveLife, ActionAddScore, ActionImmortalityOn, ActionImmortalityOff,
		ActionShieldOn, ActionShieldOff, ActionIncreaseLaserLevel, ActionGameOver)
	return h
}

// step advances the clock by one tick and runs the session
func (h *harness) step(n int) {
	for i := 0; i < n; i++ {
		h.clock.Advance(h.ctx.Config.TickDuration())
		h.session.Tick()
	}
}

// advance moves the clock without ticking
func (h *harness) advance(d time.Duration) {
	h.clock.Advance(d)
}

func (h *harness) player() *Player {
	return h.ctx.World.Player()
}

// settle activates pending spawns
func (h *harness) settle() {
	h.ctx.World.Sweep()
}

func (h *harness) actions() []Action {
	out := make([]Action, 0, len(h.msgs))
	for _, m := range h.msgs {
		out = append(out, m.Action)
	}
	return out
}

func (h *harness) countAction(action Action) int {
	n := 0
	for _, m := range h.msgs {
		if m.Action == action {
			n++
		}
	}
	return n
}

func (h *harness) meteorites() []*Meteorite {
	var out []*Meteorite
	h.ctx.World.Each(func(e Entity) {
		if m, ok := e.(*Meteorite); ok {
			out = append(out, m)
		}
	})
	return out
}

// movePlayer teleports the live player
func (h *harness) movePlayer(x, y float64) *Player {
	p := h.player()
	p.Pos.X, p.Pos.Y = x, y
	p.sync()
	return p
}
