package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"warped/game"
	"warped/sound"
)

type terminal struct {
	screen tcell.Screen
	config game.Config

	stage   *game.Stage
	hud     *game.ScreenHUD
	input   *termInput
	pilot   *game.Autopilot
	audio   game.Audio
	logger  *log.Logger
	session *game.Session

	cols, rows int
}

func newTerminal(config game.Config, autopilot bool, audio game.Audio, logger *log.Logger) (*terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()
	screen.HideCursor()

	t := &terminal{
		screen: screen,
		config: config,
		stage:  game.NewStage(config.Screen.Width, config.Screen.Height),
		hud:    game.NewScreenHUD(config.Stats.MaxLives),
		input:  newTermInput(),
		audio:  audio,
		logger: logger,
	}
	if autopilot {
		t.pilot = game.NewAutopilot()
	}
	t.handleResize()
	return t, nil
}

func (t *terminal) controller() game.Controller {
	if t.pilot != nil {
		return t.pilot
	}
	return t.input
}

func (t *terminal) startSession() {
	t.stage.Clear()
	t.hud.Reset()
	t.input.reset()
	t.session = game.NewSession(t.config, game.Dependencies{
		Scene:  t.stage,
		Input:  t.controller(),
		Audio:  t.audio,
		HUD:    t.hud,
		Clock:  game.RealClock{},
		Rand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		Logger: t.logger,
	})
	if t.pilot != nil {
		t.pilot.Bind(t.session.Context())
	}
}

func (t *terminal) handleResize() {
	t.cols, t.rows = t.screen.Size()
	// Keep the last row for the HUD
	t.input.resize(t.cols, t.rows-1, t.config.Screen.Width, t.config.Screen.Height)
}

// handleEvent returns false when the program should exit
func (t *terminal) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyEnter && t.session.State() == game.SessionOver {
			t.startSession()
			return true
		}
		if ev.Key() == tcell.KeyEscape && (t.pilot != nil || t.session.State() != game.SessionRunning) {
			return false
		}
	case *tcell.EventResize:
		t.screen.Sync()
		t.handleResize()
	}
	t.input.handle(ev, now)
	return true
}

func (t *terminal) update(now time.Time) bool {
	if t.session.State() != game.SessionRunning {
		return true
	}
	t.input.tick(now)
	t.controller().Update(t.session.Bus())
	t.session.Tick()
	return t.session.State() != game.SessionQuit
}

func (t *terminal) draw() {
	t.screen.Clear()
	rows := t.rows - 1
	if t.cols <= 0 || rows <= 0 {
		t.screen.Show()
		return
	}
	w, h := t.stage.Size()
	cellW, cellH := w/float64(t.cols), h/float64(rows)

	for _, v := range t.stage.Visuals() {
		r, style := glyph(v)
		if r == 0 {
			continue
		}
		x, y := int(v.X/cellW), int(v.Y/cellH)
		if x < 0 || x >= t.cols || y < 0 || y >= rows {
			continue
		}
		t.screen.SetContent(x, y, r, nil, style)
	}

	// HUD on the last row: score left, hearts right
	hudStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	t.drawString(0, rows, fmt.Sprintf("SCORE %d", t.hud.Score), hudStyle)
	for i, on := range t.hud.Lives {
		style := tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
		if on {
			style = tcell.StyleDefault.Foreground(tcell.ColorRed)
		}
		t.screen.SetContent(t.cols-2*(len(t.hud.Lives)-i), rows, '♥', nil, style)
	}

	if t.hud.Over {
		lines := []string{
			"GAME OVER",
			fmt.Sprintf("FINAL SCORE %d", t.hud.FinalScore),
			"ENTER TO PLAY AGAIN, ESC TO QUIT",
		}
		for i, line := range lines {
			t.drawString((t.cols-len(line))/2, rows/2-1+i, line, hudStyle.Bold(true))
		}
	}
	t.screen.Show()
}

func (t *terminal) drawString(x, y int, s string, style tcell.Style) {
	for i, r := range s {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}

// glyph picks the cell for a visual
func glyph(v *game.Visual) (rune, tcell.Style) {
	if v.Alpha < 0.5 {
		// Flashing player, skip the dim half of the cycle
		return 0, tcell.StyleDefault
	}
	fg := func(r, g, b uint8) tcell.Style {
		return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	}
	switch v.Sprite.Kind {
	case game.SpritePlayer:
		return 'A', fg(80, 170, 255).Bold(true)
	case game.SpriteEnemy:
		c, variant := game.EnemySpriteParts(v.Sprite.Variant)
		rgba := game.GetEnemyColorConfig(c).RGBA
		return []rune("vwWM")[variant%4], fg(rgba.R, rgba.G, rgba.B)
	case game.SpriteMeteorite:
		rgba := game.GetMeteoriteColor(game.MeteoriteColor(v.Sprite.Variant))
		r := 'o'
		if v.W > 80 {
			r = 'O'
		}
		return r, fg(rgba.R, rgba.G, rgba.B)
	case game.SpriteLaser:
		rgba := game.GetLaserColor(game.LaserColor(v.Sprite.Variant))
		return '|', fg(rgba.R, rgba.G, rgba.B)
	case game.SpriteCollectable:
		rgba := game.GetCollectableTypeConfig(game.CollectableType(v.Sprite.Variant)).RGBA
		return '+', fg(rgba.R, rgba.G, rgba.B)
	case game.SpriteExplosion:
		return '*', fg(255, 170, 60)
	default:
		// The shield is drawn by the player's color alone
		return 0, tcell.StyleDefault
	}
}

func (t *terminal) run() {
	ticker := time.NewTicker(t.config.TickDuration())
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := t.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case ev := <-eventChan:
			if !t.handleEvent(ev, time.Now()) {
				return
			}
		case now := <-ticker.C:
			if !t.update(now) {
				return
			}
			t.draw()
		}
	}
}

func (t *terminal) cleanup() {
	t.screen.Fini()
}

func main() {
	configPath := flag.String("config", "", "TOML config file")
	autopilot := flag.Bool("autopilot", false, "Let the autopilot play")
	logPath := flag.String("log", "", "Write the log to this file")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Llongfile)
	config := game.DefaultConfig()
	if *configPath != "" {
		var err error
		if config, err = game.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	// The terminal owns stdout, log to a file or nowhere
	logger := log.New(io.Discard, "", 0)
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logger = log.New(f, "termshooter ", log.LstdFlags)
	}

	player := sound.NewPlayer(config.Audio)
	if err := player.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		logger.Printf("audio initialization failed: %v", err)
	}
	defer player.Close()

	t, err := newTerminal(config, *autopilot, player, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer t.cleanup()

	t.startSession()
	t.run()
}
