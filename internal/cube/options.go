package cube

import (
	"log/slog"
	"time"

	"github.com/tanema/gween/ease"

	"github.com/SeamusWaldron/gocube3d/internal/geom"
)

// Defaults for a cube built without options.
const (
	DefaultEdgeLength float32       = 1.0
	DefaultSpacing    float32       = 1.1
	DefaultDuration   time.Duration = 500 * time.Millisecond
)

// Option configures a Cube.
type Option func(*config)

type config struct {
	edge     float32
	spacing  float32
	gap      float32
	duration time.Duration
	clock    func() time.Time
	easing   ease.TweenFunc
	permute  bool
	logger   *slog.Logger
}

func defaultConfig() *config {
	return &config{
		edge:     DefaultEdgeLength,
		spacing:  DefaultSpacing,
		gap:      geom.DefaultGap,
		duration: DefaultDuration,
		clock:    time.Now,
		easing:   ease.Linear,
		permute:  false,
		logger:   slog.New(slog.DiscardHandler),
	}
}

func (c *config) validate() error {
	switch {
	case c.edge <= 0:
		return ErrInvalidOption
	case c.spacing < 1:
		return ErrInvalidOption
	case c.gap <= 0 || c.gap > 1:
		return ErrInvalidOption
	case c.duration <= 0:
		return ErrInvalidOption
	case c.clock == nil || c.easing == nil || c.logger == nil:
		return ErrInvalidOption
	}
	return nil
}

// WithEdgeLength sets the edge length of a single piece.
func WithEdgeLength(edge float32) Option {
	return func(c *config) {
		c.edge = edge
	}
}

// WithSpacing sets the distance between piece centers as a multiple of the
// edge length. Values below 1 would make pieces overlap.
func WithSpacing(factor float32) Option {
	return func(c *config) {
		c.spacing = factor
	}
}

// WithGap sets the factor vertices are shrunk toward their piece center when
// drawn. 1 draws pieces flush.
func WithGap(factor float32) Option {
	return func(c *config) {
		c.gap = factor
	}
}

// WithDuration sets how long one turn animates. Front-ends leave it at
// DefaultDuration; tests shorten it alongside WithClock.
func WithDuration(d time.Duration) Option {
	return func(c *config) {
		c.duration = d
	}
}

// WithClock replaces the monotonic wall clock used to time turns.
// Tests use it to sample a turn at exact points.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.clock = now
	}
}

// WithEasing sets the interpolation curve of a turn. The default is linear.
// Whatever the curve, a drawn turn never runs backward or past its target.
func WithEasing(fn ease.TweenFunc) Option {
	return func(c *config) {
		c.easing = fn
	}
}

// WithPermutation enables the logical permutation step: once a turn
// completes, the turned pieces are moved to their new grid slots and their
// stickers re-oriented. Disabled, turns are animation only and the pieces
// keep their slots and colors.
func WithPermutation(enabled bool) Option {
	return func(c *config) {
		c.permute = enabled
	}
}

// WithLogger sets the logger used for debug output about turns.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		c.logger = l
	}
}
