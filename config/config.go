// Package config loads the match configuration from TOML, falling back to the reference constants
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-pong/core"
	"github.com/lixenwraith/vi-pong/parameter"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every externally supplied simulation constant
type Config struct {
	Area     AreaConfig     `toml:"area"`
	Paddle   PaddleConfig   `toml:"paddle"`
	Ball     BallConfig     `toml:"ball"`
	Rules    RulesConfig    `toml:"rules"`
	Bindings BindingsConfig `toml:"bindings"`
	Audio    AudioConfig    `toml:"audio"`
}

// AreaConfig is the play-area rectangle
type AreaConfig struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

// PaddleConfig sizes both paddles
type PaddleConfig struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
	Speed  float32 `toml:"speed"`
}

// BallConfig sets the spawned ball
type BallConfig struct {
	Radius    float32 `toml:"radius"`
	VelocityX float32 `toml:"velocity_x"`
	VelocityY float32 `toml:"velocity_y"`
}

// RulesConfig holds timers and limits, durations in seconds
type RulesConfig struct {
	BounceCooldown       float32 `toml:"bounce_cooldown"`
	BounceSpeedIncrement float32 `toml:"bounce_speed_increment"`
	RespawnDelay         float32 `toml:"respawn_delay"`
	MaxScore             int     `toml:"max_score"`
}

// BindingsConfig names the input axes and actions the systems read
type BindingsConfig struct {
	LeftPaddle  string `toml:"left_paddle"`
	RightPaddle string `toml:"right_paddle"`
	Quit        string `toml:"quit"`
	Mute        string `toml:"mute"`
}

// AudioConfig toggles sound output
type AudioConfig struct {
	Enabled bool `toml:"enabled"`
	Music   bool `toml:"music"`
}

// Default returns the reference configuration
func Default() *Config {
	return &Config{
		Area: AreaConfig{
			Width:  parameter.AreaWidth,
			Height: parameter.AreaHeight,
		},
		Paddle: PaddleConfig{
			Width:  parameter.PaddleWidth,
			Height: parameter.PaddleHeight,
			Speed:  parameter.PaddleSpeed,
		},
		Ball: BallConfig{
			Radius:    parameter.BallRadius,
			VelocityX: parameter.BallVelocityX,
			VelocityY: parameter.BallVelocityY,
		},
		Rules: RulesConfig{
			BounceCooldown:       parameter.BounceCooldown,
			BounceSpeedIncrement: parameter.BounceSpeedIncrement,
			RespawnDelay:         parameter.RespawnDelay,
			MaxScore:             parameter.MaxScore,
		},
		Bindings: BindingsConfig{
			LeftPaddle:  parameter.AxisLeftPaddle,
			RightPaddle: parameter.AxisRightPaddle,
			Quit:        parameter.ActionQuit,
			Mute:        parameter.ActionMute,
		},
		Audio: AudioConfig{
			Enabled: true,
			Music:   false,
		},
	}
}

// Load reads a TOML file over the defaults
// An empty path or a missing file yields the defaults; unknown keys are rejected
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q in %s", ErrInvalidConfig, undecoded[0].String(), path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the invariants the simulation relies on
func (c *Config) Validate() error {
	switch {
	case c.Area.Width <= 0 || c.Area.Height <= 0:
		return fmt.Errorf("%w: area must be positive, got %gx%g", ErrInvalidConfig, c.Area.Width, c.Area.Height)
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle must be positive, got %gx%g", ErrInvalidConfig, c.Paddle.Width, c.Paddle.Height)
	case c.Paddle.Height > c.Area.Height:
		return fmt.Errorf("%w: paddle height %g exceeds area height %g", ErrInvalidConfig, c.Paddle.Height, c.Area.Height)
	case c.Paddle.Speed < 0:
		return fmt.Errorf("%w: paddle speed must not be negative", ErrInvalidConfig)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball radius must be positive", ErrInvalidConfig)
	case c.Ball.VelocityX < 0 || c.Ball.VelocityY < 0:
		return fmt.Errorf("%w: ball base velocity must not be negative, got (%g, %g)", ErrInvalidConfig, c.Ball.VelocityX, c.Ball.VelocityY)
	case c.Ball.VelocityX == 0 && c.Ball.VelocityY == 0:
		return fmt.Errorf("%w: ball velocity must not be zero on both axes", ErrInvalidConfig)
	case c.Rules.BounceCooldown < 0 || c.Rules.RespawnDelay < 0:
		return fmt.Errorf("%w: timers must not be negative", ErrInvalidConfig)
	case c.Rules.MaxScore < 1:
		return fmt.Errorf("%w: max score must be at least 1", ErrInvalidConfig)
	case c.Bindings.LeftPaddle == "" || c.Bindings.RightPaddle == "" || c.Bindings.Quit == "" || c.Bindings.Mute == "":
		return fmt.Errorf("%w: bindings must not be empty", ErrInvalidConfig)
	}
	return nil
}

// AxisFor returns the input axis name bound to a paddle side
func (c *Config) AxisFor(side core.Side) string {
	if side == core.SideLeft {
		return c.Bindings.LeftPaddle
	}
	return c.Bindings.RightPaddle
}
