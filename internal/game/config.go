package game

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Tuning constants for the physics and locomotion model.
const (
	defaultGravity    = 9.81
	defaultFPS        = 60
	defaultBallRadius = 10

	// MaxFallDistance caps the fall counters (they clamp at MaxFallDistance+1).
	MaxFallDistance = 62
)

// Config holds everything the windowed game and the headless harness need
// to build a GameState. Zero values are replaced by DefaultConfig.
type Config struct {
	Title        string `yaml:"title"`
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`

	TerrainImage string `yaml:"terrain_image"` // empty = generated terrain
	BombImage    string `yaml:"bomb_image"`    // empty = circle stencil
	CannonImage  string `yaml:"cannon_image"`  // empty = drawn placeholder

	TerrainSeed   int64 `yaml:"terrain_seed"`
	CraterRadius  int   `yaml:"crater_radius"` // used when BombImage is empty
	DigHalfSize   int   `yaml:"dig_half_size"`
	PlayerStartX  int   `yaml:"player_start_x"`
	PlayerStartY  int   `yaml:"player_start_y"`
	PlayerWidth   int   `yaml:"player_width"`
	PlayerHeight  int   `yaml:"player_height"`
	BallRadius    int   `yaml:"ball_radius"`
	EventFeedSize int   `yaml:"event_feed_size"`

	Gravity float64 `yaml:"gravity"`
	FPS     int     `yaml:"fps"`
}

// DefaultConfig returns the stock 1024x768 setup.
func DefaultConfig() Config {
	return Config{
		Title:         "Cannons",
		ScreenWidth:   1024,
		ScreenHeight:  768,
		TerrainImage:  "resources/demoBg.png",
		BombImage:     "resources/bombmask.png",
		CannonImage:   "resources/cannon.png",
		TerrainSeed:   1,
		CraterRadius:  24,
		DigHalfSize:   5,
		PlayerStartX:  334,
		PlayerStartY:  288,
		PlayerWidth:   32,
		PlayerHeight:  32,
		BallRadius:    defaultBallRadius,
		EventFeedSize: 12,
		Gravity:       defaultGravity,
		FPS:           defaultFPS,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. An empty path
// returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with.
func (c Config) Validate() error {
	var errs []error
	if c.ScreenWidth <= 0 || c.ScreenHeight <= 0 {
		errs = append(errs, fmt.Errorf("screen size must be positive, got %dx%d", c.ScreenWidth, c.ScreenHeight))
	}
	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.FPS))
	}
	if c.BallRadius < 0 {
		errs = append(errs, fmt.Errorf("ball_radius must not be negative, got %d", c.BallRadius))
	}
	if c.CraterRadius <= 0 {
		errs = append(errs, errors.New("crater_radius must be positive"))
	}
	if c.EventFeedSize <= 0 {
		errs = append(errs, fmt.Errorf("event_feed_size must be positive, got %d", c.EventFeedSize))
	}
	return errors.Join(errs...)
}
