// Package config loads front-end settings from an optional TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// ErrInvalid is returned when a loaded setting is out of range.
var ErrInvalid = errors.New("config: invalid setting")

// Config holds everything the front-ends read at startup.
type Config struct {
	Window Window `toml:"window"`
	Camera Camera `toml:"camera"`
	Cube   Cube   `toml:"cube"`
	Log    Log    `toml:"log"`
}

// Window describes the viewer window.
type Window struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	TPS    int    `toml:"tps"`
}

// Camera describes the viewer's projection and starting pose.
type Camera struct {
	FOV         float32    `toml:"fov"`
	Near        float32    `toml:"near"`
	Far         float32    `toml:"far"`
	Position    [3]float32 `toml:"position"`
	Yaw         float32    `toml:"yaw"`
	Pitch       float32    `toml:"pitch"`
	Sensitivity float32    `toml:"sensitivity"`
}

// Cube holds the cube options the front-ends expose. The turn duration is
// not among them; every front-end animates a turn over cube.DefaultDuration.
type Cube struct {
	Permute bool   `toml:"permute"`
	Easing  string `toml:"easing"`
	Outline bool   `toml:"outline"`
}

// Log configures the slog handler.
type Log struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Window: Window{
			Title:  "Rubiks Cube Explore",
			Width:  1000,
			Height: 562,
			TPS:    60,
		},
		Camera: Camera{
			FOV:         45,
			Near:        0.1,
			Far:         50,
			Position:    [3]float32{0, -1, -10},
			Yaw:         30,
			Pitch:       25,
			Sensitivity: 0.2,
		},
		Cube: Cube{
			Permute: true,
			Easing:  "linear",
			Outline: true,
		},
		Log: Log{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads path on top of the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("load %s: %w", path, err)
	}
	return cfg, nil
}

// Decode parses TOML into cfg, keeping fields the document omits, and
// validates the result. Unknown keys are rejected.
func Decode(b []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(b))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	return cfg.Validate()
}

// Encode writes cfg as TOML, in the layout Load reads.
func Encode(cfg Config) ([]byte, error) {
	return toml.Marshal(cfg)
}

// Validate checks ranges the front-ends rely on.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("window size %dx%d: %w", c.Window.Width, c.Window.Height, ErrInvalid)
	case c.Window.TPS <= 0:
		return fmt.Errorf("tps %d: %w", c.Window.TPS, ErrInvalid)
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return fmt.Errorf("fov %g: %w", c.Camera.FOV, ErrInvalid)
	case c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near:
		return fmt.Errorf("clip planes %g..%g: %w", c.Camera.Near, c.Camera.Far, ErrInvalid)
	}
	if _, ok := Easings[c.Cube.Easing]; !ok {
		return fmt.Errorf("easing %q: %w", c.Cube.Easing, ErrInvalid)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}
