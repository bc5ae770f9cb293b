package game

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"

	"github.com/pkg/errors"
)

// Profiler captures a CPU profile and an execution trace when ticks run over budget
type Profiler struct {
	mu              sync.Mutex
	wg              sync.WaitGroup
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	profilesDir     string
	captureDuration time.Duration

	// Ticks over budget are ignored until warmUp ticks have been observed
	budget   time.Duration
	warmUp   int
	observed int

	logger *log.Logger
}

// NewProfiler creates a profiler writing into cfg.Dir
func NewProfiler(cfg ProfilerConfig, logger *log.Logger) *Profiler {
	if logger == nil {
		logger = log.Default()
	}
	return &Profiler{
		captureCooldown: 10 * time.Second, // Don't capture more than once every 10 seconds
		profilesDir:     cfg.Dir,
		captureDuration: 5 * time.Second,
		budget:          time.Duration(cfg.TickBudget * float64(time.Millisecond)),
		warmUp:          120,
		logger:          logger,
	}
}

// Observe records one tick's duration and starts a capture when it ran over
// budget. It reports whether a capture was started.
func (p *Profiler) Observe(elapsed time.Duration, now time.Time) bool {
	p.observed++
	if p.budget <= 0 || p.observed <= p.warmUp || elapsed <= p.budget {
		return false
	}
	reason := fmt.Sprintf("tick-%dms", elapsed.Milliseconds())
	if err := p.CaptureProfile(reason, now); err != nil {
		return false
	}
	p.logger.Printf("tick took %v (budget %v), capturing profile", elapsed, p.budget)
	return true
}

// CaptureProfile starts an asynchronous CPU profile and trace capture
func (p *Profiler) CaptureProfile(reason string, now time.Time) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.isProfiling {
		return errors.New("already profiling")
	}
	if !p.lastCaptureTime.IsZero() && now.Sub(p.lastCaptureTime) < p.captureCooldown {
		return errors.Errorf("capture on cooldown (last capture was %v ago)", now.Sub(p.lastCaptureTime))
	}
	if err := os.MkdirAll(p.profilesDir, 0755); err != nil {
		return errors.Wrap(err, "create profiles dir")
	}

	p.isProfiling = true
	p.lastCaptureTime = now
	baseName := fmt.Sprintf("slow-tick-%s-%s", now.Format("20060102-150405"), reason)

	// Capture in a goroutine to avoid blocking the game
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.captureCPUProfile(baseName); err != nil {
				p.logger.Printf("cpu profile: %v", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.captureTrace(baseName); err != nil {
				p.logger.Printf("trace: %v", err)
			}
		}()
		wg.Wait()

		p.analyzeProfile(baseName)
	}()

	return nil
}

// captureCPUProfile captures a CPU profile
func (p *Profiler) captureCPUProfile(baseName string) error {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	file, err := os.Create(profilePath)
	if err != nil {
		return errors.Wrap(err, "create profile file")
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return errors.Wrap(err, "start cpu profile")
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	p.logger.Printf("cpu profile saved to %s", profilePath)
	return nil
}

// captureTrace captures an execution trace
func (p *Profiler) captureTrace(baseName string) error {
	tracePath := filepath.Join(p.profilesDir, baseName+".trace")

	file, err := os.Create(tracePath)
	if err != nil {
		return errors.Wrap(err, "create trace file")
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return errors.Wrap(err, "start trace")
	}
	time.Sleep(p.captureDuration)
	trace.Stop()

	p.logger.Printf("trace saved to %s", tracePath)
	return nil
}

// analyzeProfile logs where the capture went and the heap at capture time
func (p *Profiler) analyzeProfile(baseName string) {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	info, err := os.Stat(profilePath)
	if err != nil {
		p.logger.Printf("could not analyze profile: %v", err)
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	p.logger.Printf("profile %s (%.2f KB), view with: go tool pprof -http=:8080 %s",
		baseName, float64(info.Size())/1024, profilePath)
	p.logger.Printf("memory at capture: alloc %d KB, sys %d KB, gc %d, heap objects %d",
		m.Alloc/1024, m.Sys/1024, m.NumGC, m.HeapObjects)
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}

// Wait blocks until a running capture has finished
func (p *Profiler) Wait() {
	p.wg.Wait()
}
