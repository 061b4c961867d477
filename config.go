package smolder

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tidwall/jsonc"
)

// ErrInvalidProfile reports a profile document that could not be parsed.
// Malformed individual values inside a parseable profile do not produce
// this error; they fall back to defaults when the config is applied.
var ErrInvalidProfile = errors.New("smolder: invalid profile")

// Built-in defaults, used directly and as the fallback for malformed
// configuration values.
const (
	defaultPadding     = 4.0
	defaultLayoutDelay = 100 * time.Millisecond
	defaultGlowDelay   = 200 * time.Millisecond
)

// Config is the runtime configuration the HUD consumes at init and on
// change notification (ApplyConfig). Debounce delays are per refresh kind;
// changing one affects only tasks scheduled after the change, never a task
// already pending.
type Config struct {
	// Padding is the gap inserted between adjacent visible icons, in
	// viewer units.
	Padding float64

	// StrideAxis selects horizontal or vertical icon flow.
	StrideAxis StrideAxis

	// GlowSuppressed hides the native glow sub-element on every managed
	// icon when true.
	GlowSuppressed bool

	// LayoutDelay is the debounce window for layout-affecting triggers.
	LayoutDelay time.Duration

	// GlowDelay is the debounce window for glow-suppression triggers.
	GlowDelay time.Duration
}

// DefaultConfig returns the built-in defaults: 4-unit padding, horizontal
// stride, glow suppressed, 100ms layout debounce, 200ms glow debounce.
func DefaultConfig() Config {
	return Config{
		Padding:        defaultPadding,
		StrideAxis:     StrideHorizontal,
		GlowSuppressed: true,
		LayoutDelay:    defaultLayoutDelay,
		GlowDelay:      defaultGlowDelay,
	}
}

// sanitize replaces malformed values with the built-in defaults. Each
// replacement is reported through warn once per field, not per pass.
func (c Config) sanitize(warn func(format string, args ...any)) Config {
	if c.Padding < 0 {
		warn("padding %v out of range, using default %v", c.Padding, defaultPadding)
		c.Padding = defaultPadding
	}
	if c.StrideAxis != StrideHorizontal && c.StrideAxis != StrideVertical {
		warn("unknown stride axis %d, using horizontal", c.StrideAxis)
		c.StrideAxis = StrideHorizontal
	}
	if c.LayoutDelay < 0 {
		warn("layout debounce %v out of range, using default %v", c.LayoutDelay, defaultLayoutDelay)
		c.LayoutDelay = defaultLayoutDelay
	}
	if c.GlowDelay < 0 {
		warn("glow debounce %v out of range, using default %v", c.GlowDelay, defaultGlowDelay)
		c.GlowDelay = defaultGlowDelay
	}
	return c
}

// delayFor returns the kind's debounce window in seconds of HUD time.
func (c Config) delayFor(kind RefreshKind) float64 {
	switch kind {
	case RefreshGlow:
		return c.GlowDelay.Seconds()
	default:
		return c.LayoutDelay.Seconds()
	}
}

// profile is the on-disk shape of a HUD profile. All fields are optional;
// absent fields keep their defaults.
type profile struct {
	Padding        *float64           `json:"padding"`
	StrideAxis     string             `json:"strideAxis"`
	DebounceMs     map[string]float64 `json:"debounceDelayMs"`
	GlowSuppressed *bool              `json:"glowSuppressed"`
}

// LoadProfile parses a JSONC profile document into a Config. Comments and
// trailing commas are permitted (profiles are hand-edited). Unknown
// debounceDelayMs keys are rejected; all other malformed values fall back
// to defaults when the config is applied.
//
//	{
//	  // gap between icons, in pixels
//	  "padding": 6,
//	  "strideAxis": "vertical",
//	  "debounceDelayMs": { "layout": 100, "glow": 200 },
//	  "glowSuppressed": true,
//	}
func LoadProfile(data []byte) (Config, error) {
	var p profile
	if err := json.Unmarshal(jsonc.ToJSON(data), &p); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidProfile, err)
	}

	cfg := DefaultConfig()
	if p.Padding != nil {
		cfg.Padding = *p.Padding
	}
	switch p.StrideAxis {
	case "", "horizontal":
		cfg.StrideAxis = StrideHorizontal
	case "vertical":
		cfg.StrideAxis = StrideVertical
	default:
		return Config{}, fmt.Errorf("%w: unknown strideAxis %q", ErrInvalidProfile, p.StrideAxis)
	}
	for key, ms := range p.DebounceMs {
		d := time.Duration(ms * float64(time.Millisecond))
		switch key {
		case "layout":
			cfg.LayoutDelay = d
		case "glow":
			cfg.GlowDelay = d
		default:
			return Config{}, fmt.Errorf("%w: unknown refresh kind %q", ErrInvalidProfile, key)
		}
	}
	if p.GlowSuppressed != nil {
		cfg.GlowSuppressed = *p.GlowSuppressed
	}
	return cfg, nil
}
