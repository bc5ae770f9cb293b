package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"warped/game"
	"warped/spectator"
)

func main() {
	configPath := flag.String("config", "", "TOML config file")
	ticks := flag.Int("ticks", 0, "Ticks to simulate, 0 uses the config")
	seed := flag.Int64("seed", 0, "Random seed, 0 uses the config")
	realtime := flag.Bool("realtime", false, "Pace ticks against the wall clock")
	spectate := flag.String("spectate", "", "Serve the spectator feed on this address")
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Llongfile)
	logger := log.New(os.Stderr, "headless ", log.LstdFlags)

	config := game.DefaultConfig()
	if *configPath != "" {
		var err error
		if config, err = game.LoadConfig(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *ticks > 0 {
		config.Headless.Ticks = *ticks
	}
	if *seed != 0 {
		config.Headless.Seed = *seed
	}
	if *realtime {
		config.Headless.Realtime = true
	}
	if *spectate != "" {
		config.Spectator.Addr = *spectate
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	clock := game.NewStepClock(time.Now())
	pilot := game.NewAutopilot()
	session := game.NewSession(config, game.Dependencies{
		Input:  pilot,
		Clock:  clock,
		Rand:   rand.New(rand.NewSource(config.Headless.Seed)),
		Logger: logger,
	})
	pilot.Bind(session.Context())

	if config.Spectator.Addr != "" {
		feed := spectator.NewServer(config.Spectator, logger)
		feed.Watch(session)
		go func() {
			if err := spectator.Run(ctx, config.Spectator.Addr, feed, logger); err != nil {
				logger.Printf("spectator: %v", err)
			}
		}()
	}

	var profiler *game.Profiler
	if config.Profiler.Enabled {
		profiler = game.NewProfiler(config.Profiler, logger)
	}

	step := config.TickDuration()
	pace := time.NewTicker(step)
	defer pace.Stop()

	for i := 0; i < config.Headless.Ticks && session.State() == game.SessionRunning; i++ {
		if config.Headless.Realtime {
			select {
			case <-pace.C:
			case <-ctx.Done():
				session.Quit()
				continue
			}
		} else if ctx.Err() != nil {
			session.Quit()
			continue
		}

		start := time.Now()
		pilot.Update(session.Bus())
		clock.Advance(step)
		session.Tick()
		if profiler != nil {
			profiler.Observe(time.Since(start), time.Now())
		}
	}
	if profiler != nil {
		profiler.Wait()
	}

	snap := session.Snapshot()
	logger.Printf("finished after %d ticks: score %d, lives %d, laser level %d, game over %v",
		snap.Tick, snap.Score, snap.Lives, snap.LaserLevel, snap.GameOver)
}
