package game

import (
	"io"
	"log"
	"math/rand"
	"time"
)

// SessionState is where a session is in its lifecycle
type SessionState int

const (
	SessionRunning SessionState = iota
	SessionOver
	SessionQuit
)

// Dependencies are the collaborators a session is built from. Nil fields get
// harmless defaults.
type Dependencies struct {
	Scene  Scene
	Input  Input
	Audio  Audio
	HUD    HUD
	Clock  Clock
	Rand   *rand.Rand
	Logger *log.Logger

	// Bus may be shared with a frontend that outlives sessions
	Bus *Bus
}

// Snapshot is a read-only view of a session for observers
type Snapshot struct {
	Tick       uint64         `json:"tick"`
	Score      int            `json:"score"`
	Lives      int            `json:"lives"`
	LaserLevel int            `json:"laser_level"`
	Immortal   bool           `json:"immortal"`
	GameOver   bool           `json:"game_over"`
	Entities   map[string]int `json:"entities"`
}

// Session is one run from the first life to game over
type Session struct {
	ctx      *Context
	enemies  *EnemySpawner
	spawners []Updater
	state    SessionState
	tick     uint64
}

// NewSession wires a context, spawns the player and starts the spawners
func NewSession(cfg Config, deps Dependencies) *Session {
	if deps.Scene == nil {
		deps.Scene = NewStage(cfg.Screen.Width, cfg.Screen.Height)
	}
	if deps.Input == nil {
		deps.Input = NoInput{}
	}
	if deps.Audio == nil {
		deps.Audio = NopAudio{}
	}
	if deps.HUD == nil {
		deps.HUD = NopHUD{}
	}
	if deps.Clock == nil {
		deps.Clock = RealClock{}
	}
	if deps.Rand == nil {
		deps.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard, "", 0)
	}
	if deps.Bus == nil {
		deps.Bus = NewBus()
	}

	ctx := &Context{
		Config:    cfg,
		Scene:     deps.Scene,
		Bus:       deps.Bus,
		Clock:     deps.Clock,
		World:     NewWorld(),
		Input:     deps.Input,
		Audio:     deps.Audio,
		HUD:       deps.HUD,
		Rand:      deps.Rand,
		Intervals: NewIntervalGenerator(deps.Rand),
		Logger:    deps.Logger,
	}
	ctx.Factory = NewFactory(ctx)
	ctx.Stats = NewGameStats(ctx)

	s := &Session{ctx: ctx}
	s.enemies = NewEnemySpawner(ctx)
	s.spawners = []Updater{s.enemies, NewMeteoriteSpawner(ctx)}
	if cfg.Collectable.SpawnerEnabled {
		s.spawners = append(s.spawners, NewCollectableSpawner(ctx))
	}
	ctx.Factory.SpawnPlayer()
	ctx.World.Sweep()

	ctx.Logger.Printf("session started: %d lives, enemy intensity %.1f/min", ctx.Stats.Lives, s.enemies.Intensity)
	return s
}

// Tick advances the simulation by one fixed step
func (s *Session) Tick() {
	if s.state != SessionRunning {
		return
	}
	if s.ctx.Stats.GameOverScheduled() {
		s.gameOver()
		return
	}
	if s.ctx.Input.IsHeld(KeyEscape) {
		s.Quit()
		return
	}

	now := s.ctx.Clock.Now()
	s.ctx.Stats.Update(now)
	s.ctx.World.Update(now)
	for _, sp := range s.spawners {
		sp.Update(now)
	}
	s.ctx.World.Sweep()
	s.tick++
}

// gameOver clears the session and shows the final score
func (s *Session) gameOver() {
	final := s.ctx.Stats.FinalScore
	s.teardown()
	s.state = SessionOver
	s.ctx.HUD.GameOver(final)
	s.ctx.Bus.Broadcast(Message{Action: ActionGameOver, Amount: final})
	s.ctx.Logger.Printf("game over after %d ticks, final score %d", s.tick, final)
}

// Quit abandons a running session
func (s *Session) Quit() {
	if s.state != SessionRunning {
		return
	}
	s.teardown()
	s.state = SessionQuit
	s.ctx.Logger.Printf("session quit after %d ticks, score %d", s.tick, s.ctx.Stats.Score)
}

// teardown drops subscriptions and every entity
func (s *Session) teardown() {
	s.ctx.Stats.Close()
	s.ctx.World.Clear()
}

// State returns the session state
func (s *Session) State() SessionState {
	return s.state
}

// Ticks returns the number of completed ticks
func (s *Session) Ticks() uint64 {
	return s.tick
}

// Context returns the session's collaborators
func (s *Session) Context() *Context {
	return s.ctx
}

// Stats returns the session's game stats
func (s *Session) Stats() *GameStats {
	return s.ctx.Stats
}

// World returns the entity arena
func (s *Session) World() *World {
	return s.ctx.World
}

// Bus returns the message bus
func (s *Session) Bus() *Bus {
	return s.ctx.Bus
}

// EnemySpawner returns the ramping enemy spawner
func (s *Session) EnemySpawner() *EnemySpawner {
	return s.enemies
}

// Snapshot returns the current stats and entity counts
func (s *Session) Snapshot() Snapshot {
	st := s.ctx.Stats
	counts := make(map[string]int)
	for kind, n := range s.ctx.World.Counts() {
		counts[kind.String()] = n
	}
	snap := Snapshot{
		Tick:       s.tick,
		Score:      st.Score,
		Lives:      st.Lives,
		LaserLevel: st.LaserLevel,
		Immortal:   st.Immortal,
		GameOver:   s.state == SessionOver,
		Entities:   counts,
	}
	if snap.GameOver {
		snap.Score = st.FinalScore
	}
	return snap
}
