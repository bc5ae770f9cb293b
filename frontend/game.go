package frontend

import (
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"warped/game"
)

// Screen is the frontend's current page
type Screen int

const (
	ScreenTitle Screen = iota
	ScreenPlaying
	ScreenGameOver
)

// GameOptions are the collaborators a frontend passes to NewGame
type GameOptions struct {
	Audio  game.Audio
	Logger *log.Logger

	// Autopilot plays the sessions instead of the keyboard and mouse
	Autopilot bool

	// OnSession is called with every new session before its first tick
	OnSession func(s *game.Session)
}

// Game is the ebiten frontend: a title screen, running sessions and the game over screen
type Game struct {
	config  game.Config
	options GameOptions

	stage    *game.Stage
	hud      *game.ScreenHUD
	renderer *Renderer
	input    *EbitenInput
	pilot    *game.Autopilot

	screen  Screen
	session *game.Session

	// Performance profiling
	profiler *game.Profiler
}

// NewGame creates a new game instance showing the title screen
func NewGame(config game.Config, options GameOptions) *Game {
	if options.Audio == nil {
		options.Audio = game.NopAudio{}
	}
	if options.Logger == nil {
		options.Logger = log.New(io.Discard, "", 0)
	}
	stage := game.NewStage(config.Screen.Width, config.Screen.Height)
	hud := game.NewScreenHUD(config.Stats.MaxLives)

	g := &Game{
		config:   config,
		options:  options,
		stage:    stage,
		hud:      hud,
		renderer: NewRenderer(stage, hud),
		input:    NewEbitenInput(),
		screen:   ScreenTitle,
	}
	if options.Autopilot {
		g.pilot = game.NewAutopilot()
	}
	if config.Profiler.Enabled {
		g.profiler = game.NewProfiler(config.Profiler, options.Logger)
	}
	return g
}

// controller returns the active input source
func (g *Game) controller() game.Controller {
	if g.pilot != nil {
		return g.pilot
	}
	return g.input
}

// StartSession clears the stage and starts a fresh session
func (g *Game) StartSession() {
	g.stage.Clear()
	g.hud.Reset()
	g.input.Reset()
	g.renderer.Reset()

	g.session = game.NewSession(g.config, game.Dependencies{
		Scene:  g.stage,
		Input:  g.controller(),
		Audio:  g.options.Audio,
		HUD:    g.hud,
		Clock:  game.RealClock{},
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		Logger: g.options.Logger,
	})
	if g.pilot != nil {
		g.pilot.Bind(g.session.Context())
	}
	if g.options.OnSession != nil {
		g.options.OnSession(g.session)
	}
	g.screen = ScreenPlaying
}

// Session returns the current or last session, nil before the first start
func (g *Game) Session() *game.Session {
	return g.session
}

// Screen returns the current page
func (g *Game) Screen() Screen {
	return g.screen
}

// Update runs one fixed tick
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debug := GetDebugState()
		debug.ShowBounds = !debug.ShowBounds
		debug.ShowCounts = debug.ShowBounds
	}
	g.renderer.Update(1 / float64(ebiten.TPS()))

	switch g.screen {
	case ScreenTitle:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			return ebiten.Termination
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.StartSession()
		}

	case ScreenPlaying:
		start := time.Now()
		g.controller().Update(g.session.Bus())
		if g.pilot != nil && inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.session.Quit()
		}
		g.session.Tick()
		if g.profiler != nil {
			g.profiler.Observe(time.Since(start), time.Now())
		}

		switch g.session.State() {
		case game.SessionOver:
			g.screen = ScreenGameOver
		case game.SessionQuit:
			g.stage.Clear()
			g.screen = ScreenTitle
		}

	case ScreenGameOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.screen = ScreenTitle
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
			g.StartSession()
		}
	}
	return nil
}

// Draw renders the current page
func (g *Game) Draw(screen *ebiten.Image) {
	if g.screen == ScreenTitle {
		g.renderer.RenderTitle(screen)
		return
	}
	g.renderer.Render(screen)
}

// Layout keeps the logical screen at the scene size, the window scales it
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.config.Screen.Width), int(g.config.Screen.Height)
}
