package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"

	"warped/frontend"
	"warped/game"
	"warped/sound"
	"warped/spectator"
)

func main() {
	configPath := flag.String("config", "", "TOML config file")
	autopilot := flag.Bool("autopilot", false, "Let the autopilot play")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Llongfile)
	logger := log.New(os.Stderr, "warped ", log.LstdFlags)

	config := game.DefaultConfig()
	if *configPath != "" {
		var err error
		if config, err = game.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}

	player := sound.NewPlayer(config.Audio)
	if err := player.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		logger.Printf("audio initialization failed: %v", err)
	}
	defer player.Close()

	options := frontend.GameOptions{
		Audio:     player,
		Logger:    logger,
		Autopilot: *autopilot,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if config.Spectator.Addr != "" {
		feed := spectator.NewServer(config.Spectator, logger)
		options.OnSession = feed.Watch
		go func() {
			if err := spectator.Run(ctx, config.Spectator.Addr, feed, logger); err != nil {
				logger.Printf("spectator: %v", err)
			}
		}()
	}

	g := frontend.NewGame(config, options)

	scale := config.Screen.WindowScale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(int(config.Screen.Width*scale), int(config.Screen.Height*scale))
	ebiten.SetWindowTitle("Warped")
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(config.Screen.TicksPerSecond)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
