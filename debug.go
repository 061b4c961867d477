package smolder

import (
	"fmt"
	"os"
)

// Stats holds the HUD's validation counters. Counters accumulate from HUD
// creation; profiling tools snapshot and diff them.
type Stats struct {
	LayoutPasses   int // per-viewer layout recomputes performed
	SkippedViewers int // recomputes skipped on an unchanged signature
	GeometryWrites int // SetExtents calls that reached the host
	GlowPasses     int // debounced glow-suppression passes
	GlowElements   int // elements touched across all glow passes
	VisibleTotal   int // sum of visible-child counts over layout passes
}

// AvgVisiblePerPass returns the mean visible-icon count per layout pass.
func (s Stats) AvgVisiblePerPass() float64 {
	if s.LayoutPasses == 0 {
		return 0
	}
	return float64(s.VisibleTotal) / float64(s.LayoutPasses)
}

// Stats returns a snapshot of the HUD's counters.
func (h *HUD) Stats() Stats {
	return h.stats
}

// SetDebugMode enables or disables periodic stats logging to stderr.
func (h *HUD) SetDebugMode(enabled bool) {
	h.debug = enabled
}

// statsLogInterval is how often debug mode logs counters, in HUD seconds.
const statsLogInterval = 5.0

// debugLog prints pass rates and counters to stderr.
func (h *HUD) debugLog() {
	minutes := h.statsClock / 60
	if minutes <= 0 {
		return
	}
	s := h.stats
	_, _ = fmt.Fprintf(os.Stderr,
		"[smolder] layout: %d passes (%.1f/min, %.1f avg visible, %d skipped) | glow: %d passes, %d elements | writes: %d\n",
		s.LayoutPasses, float64(s.LayoutPasses)/minutes, s.AvgVisiblePerPass(),
		s.SkippedViewers, s.GlowPasses, s.GlowElements, s.GeometryWrites)
}

// warnf reports a recoverable configuration problem on stderr. Called once
// per offending field when a config is applied, never per pass.
func warnf(format string, args ...any) {
	_, _ = fmt.Fprintf(os.Stderr, "[smolder] warning: "+format+"\n", args...)
}
