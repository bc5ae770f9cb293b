package game

import (
	"math"
	"os"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

// ScreenConfig describes the playfield and the tick rate
type ScreenConfig struct {
	// Width and Height of the scene in pixels
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`

	// TicksPerSecond is the fixed simulation rate
	TicksPerSecond int `toml:"ticks_per_second"`

	// WindowScale shrinks the window relative to the scene
	WindowScale float64 `toml:"window_scale"`
}

// PlayerConfig holds player movement and weapon settings
type PlayerConfig struct {
	// Speed is the step per tick for each held direction
	Speed float64 `toml:"speed"`

	// StartX, StartY is where every fresh player appears
	StartX float64 `toml:"start_x"`
	StartY float64 `toml:"start_y"`

	// LaserCooldown is the minimum time between volleys in seconds
	LaserCooldown float64 `toml:"laser_cooldown"`

	// SideLaserOffset is the sideways offset of the level 2 pair
	SideLaserOffset float64 `toml:"side_laser_offset"`
}

// EnemyConfig holds enemy behaviour settings
type EnemyConfig struct {
	Speed float64 `toml:"speed"`

	// ShootingIntensity is shots per minute
	ShootingIntensity float64 `toml:"shooting_intensity"`

	// DirectionChangeIntensity is heading changes per minute
	DirectionChangeIntensity float64 `toml:"direction_change_intensity"`
}

// MeteoriteConfig holds meteorite settings
type MeteoriteConfig struct {
	Speed float64 `toml:"speed"`

	// OffscreenMargin keeps meteorites alive until they are fully clear of the edge
	OffscreenMargin float64 `toml:"offscreen_margin"`

	// ShatterAngle is the heading offset of each child in radians
	ShatterAngle float64 `toml:"shatter_angle"`

	// CollectableChance is the probability of a drop when shot
	CollectableChance float64 `toml:"collectable_chance"`
}

// LaserConfig holds laser speeds per origin
type LaserConfig struct {
	PlayerSpeed float64 `toml:"player_speed"`
	EnemySpeed  float64 `toml:"enemy_speed"`
}

// CollectableConfig holds drop weights and the optional spawner
type CollectableConfig struct {
	// Weights for the drop draw, they need not sum to 100
	LifeWeight   float64 `toml:"life_weight"`
	LaserWeight  float64 `toml:"laser_weight"`
	ShieldWeight float64 `toml:"shield_weight"`

	// SpawnerEnabled turns on the on-screen collectable spawner
	SpawnerEnabled bool `toml:"spawner_enabled"`

	// SpawnerIntensity is spawns per minute
	SpawnerIntensity float64 `toml:"spawner_intensity"`
}

// StatsConfig holds the starting values and invulnerability timings
type StatsConfig struct {
	StartingLives      int `toml:"starting_lives"`
	MaxLives           int `toml:"max_lives"`
	StartingLaserLevel int `toml:"starting_laser_level"`
	MaxLaserLevel      int `toml:"max_laser_level"`

	// ImmortalityDuration is the flashing window in seconds
	ImmortalityDuration float64 `toml:"immortality_duration"`
	ImmortalityFlashes  int     `toml:"immortality_flashes"`

	// ShieldDuration in seconds
	ShieldDuration float64 `toml:"shield_duration"`
}

// SpawnerConfig holds the spawn intensities and the difficulty ramp
type SpawnerConfig struct {
	EnemyIntensity     float64 `toml:"enemy_intensity"`
	MeteoriteIntensity float64 `toml:"meteorite_intensity"`

	// DifficultyInterval is the seconds between intensity increases
	DifficultyInterval   float64 `toml:"difficulty_interval"`
	DifficultyMultiplier float64 `toml:"difficulty_multiplier"`

	// DifficultyMaxIntensity caps the ramp, 0 means unbounded
	DifficultyMaxIntensity float64 `toml:"difficulty_max_intensity"`
}

// AudioConfig controls sound effects
type AudioConfig struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

// SpectatorConfig controls the websocket stats feed
type SpectatorConfig struct {
	// Addr to listen on, empty disables the feed
	Addr           string   `toml:"addr"`
	OriginPatterns []string `toml:"origin_patterns"`
}

// HeadlessConfig controls cmd/headless
type HeadlessConfig struct {
	Ticks int   `toml:"ticks"`
	Seed  int64 `toml:"seed"`

	// Realtime paces ticks against the wall clock
	Realtime bool `toml:"realtime"`
}

// ProfilerConfig controls tick-overrun captures
type ProfilerConfig struct {
	Enabled bool   `toml:"enabled"`
	Dir     string `toml:"dir"`

	// TickBudget in milliseconds, a slower tick triggers a capture
	TickBudget float64 `toml:"tick_budget"`
}

// Config holds game configuration
type Config struct {
	Screen      ScreenConfig      `toml:"screen"`
	Player      PlayerConfig      `toml:"player"`
	Enemy       EnemyConfig       `toml:"enemy"`
	Meteorite   MeteoriteConfig   `toml:"meteorite"`
	Laser       LaserConfig       `toml:"laser"`
	Collectable CollectableConfig `toml:"collectable"`
	Stats       StatsConfig       `toml:"stats"`
	Spawner     SpawnerConfig     `toml:"spawner"`
	Audio       AudioConfig       `toml:"audio"`
	Spectator   SpectatorConfig   `toml:"spectator"`
	Headless    HeadlessConfig    `toml:"headless"`
	Profiler    ProfilerConfig    `toml:"profiler"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		Screen: ScreenConfig{
			Width:          1440,
			Height:         900,
			TicksPerSecond: 60,
			WindowScale:    0.9,
		},
		Player: PlayerConfig{
			Speed:           7,
			StartX:          720,
			StartY:          700,
			LaserCooldown:   0.25,
			SideLaserOffset: 15,
		},
		Enemy: EnemyConfig{
			Speed:                    2,
			ShootingIntensity:        20,
			DirectionChangeIntensity: 30,
		},
		Meteorite: MeteoriteConfig{
			Speed:             3,
			OffscreenMargin:   100,
			ShatterAngle:      math.Pi / 6,
			CollectableChance: 0.1,
		},
		Laser: LaserConfig{
			PlayerSpeed: 12,
			EnemySpeed:  8,
		},
		Collectable: CollectableConfig{
			LifeWeight:       33,
			LaserWeight:      33,
			ShieldWeight:     33,
			SpawnerEnabled:   false,
			SpawnerIntensity: 4,
		},
		Stats: StatsConfig{
			StartingLives:       3,
			MaxLives:            5,
			StartingLaserLevel:  1,
			MaxLaserLevel:       3,
			ImmortalityDuration: 3,
			ImmortalityFlashes:  6,
			ShieldDuration:      8,
		},
		Spawner: SpawnerConfig{
			EnemyIntensity:       20,
			MeteoriteIntensity:   15,
			DifficultyInterval:   10,
			DifficultyMultiplier: 1.1,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Spectator: SpectatorConfig{
			OriginPatterns: []string{"localhost:*", "127.0.0.1:*"},
		},
		Headless: HeadlessConfig{
			Ticks: 3600,
			Seed:  1,
		},
		Profiler: ProfilerConfig{
			Enabled:    false,
			Dir:        "profiles",
			TickBudget: 12,
		},
	}
}

// LoadConfig reads a TOML file on top of DefaultConfig
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "read config %s", path)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with
func (c Config) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return errors.Errorf("screen size must be positive, got %vx%v", c.Screen.Width, c.Screen.Height)
	}
	if c.Screen.TicksPerSecond <= 0 {
		return errors.Errorf("ticks_per_second must be positive, got %d", c.Screen.TicksPerSecond)
	}
	if c.Stats.MaxLives <= 0 || c.Stats.StartingLives < 0 || c.Stats.StartingLives > c.Stats.MaxLives {
		return errors.Errorf("starting_lives %d outside [0,%d]", c.Stats.StartingLives, c.Stats.MaxLives)
	}
	if c.Stats.StartingLaserLevel < 1 || c.Stats.StartingLaserLevel > c.Stats.MaxLaserLevel || c.Stats.MaxLaserLevel > 3 {
		return errors.Errorf("laser levels must satisfy 1 <= start <= max <= 3, got %d/%d",
			c.Stats.StartingLaserLevel, c.Stats.MaxLaserLevel)
	}
	if c.Stats.ImmortalityFlashes <= 0 {
		return errors.New("immortality_flashes must be positive")
	}
	if c.Spawner.DifficultyMultiplier < 1 {
		return errors.Errorf("difficulty_multiplier must be >= 1, got %v", c.Spawner.DifficultyMultiplier)
	}
	return nil
}

// TickDuration returns the length of one simulation step
func (c Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.Screen.TicksPerSecond)
}

// Seconds converts a config value in seconds to a duration
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
