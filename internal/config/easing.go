package config

import "github.com/tanema/gween/ease"

// Easings maps the names accepted in [cube] easing to tween functions.
// Only curves that rise monotonically from 0 to 1 and pass through the
// midpoint at half time are listed.
var Easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-out-quad":  ease.InOutQuad,
	"in-out-cubic": ease.InOutCubic,
	"in-out-sine":  ease.InOutSine,
}

// TweenFunc returns the configured easing, falling back to linear.
func (c Cube) TweenFunc() ease.TweenFunc {
	if fn, ok := Easings[c.Easing]; ok {
		return fn
	}
	return ease.Linear
}
