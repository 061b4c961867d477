package smolder

// HUD is the top-level object that owns the layout scheduler, effect
// debouncer, hook registry, and scratch buffers for one overlay. Create
// one per host UI engine with NewHUD and call Update once per tick on the
// host's update pump.
//
// Everything runs single-threaded and cooperatively: no operation blocks,
// no goroutines or locks exist, and a scheduled pass runs to completion
// once started. HUD methods must only be called from the update pump.
type HUD struct {
	host Host
	cfg  Config

	viewers map[ViewerID]*viewerState
	pool    scratchPool
	reg     hookRegistry
	deb     debouncer

	debug      bool
	stats      Stats
	statsClock float64
	statsSince float64
}

// NewHUD creates a HUD driving the given host. Malformed config values
// fall back to the built-in defaults, each reported once on stderr.
func NewHUD(host Host, cfg Config) *HUD {
	h := &HUD{host: host}
	h.cfg = cfg.sanitize(warnf)
	return h
}

// Update advances the HUD clock by dt seconds and fires every due
// debounce task. Call once per tick from the host's update loop.
func (h *HUD) Update(dt float64) {
	h.deb.advance(dt, h.runPass)
	h.statsClock += dt
	if h.debug && h.statsClock-h.statsSince >= statsLogInterval {
		h.debugLog()
		h.statsSince = h.statsClock
	}
}

// runPass dispatches one drained dirty set to the kind's processing
// routine. The debouncer has already cleared the pending task, so a
// Trigger issued from inside the pass schedules a fresh one.
func (h *HUD) runPass(kind RefreshKind, viewers map[ViewerID]struct{}) {
	switch kind {
	case RefreshGlow:
		h.flushGlow(viewers)
	default:
		h.flushLayout(viewers)
	}
}

// Trigger marks the affected viewers stale under the given refresh kind
// and ensures one debounce task is pending for that kind. K triggers of
// one kind within the kind's delay window produce exactly one pass.
// Event producers (host child events, cooldown-state changes from the
// aura scanner) call this; it never blocks and never does work inline.
func (h *HUD) Trigger(kind RefreshKind, viewers ...ViewerID) {
	if kind >= refreshKindCount {
		return
	}
	h.deb.trigger(kind, h.cfg.delayFor(kind), viewers)
}

// MarkDirty records the viewer as stale under the given kind without
// scheduling anything. The mark is answered by the next pass of that
// kind, whenever one is triggered. O(1), idempotent.
func (h *HUD) MarkDirty(viewer ViewerID, kind RefreshKind) {
	if kind >= refreshKindCount {
		return
	}
	h.deb.markDirty(kind, viewer)
}

// ApplyConfig installs a new configuration (change notification from the
// configuration store). Layout parameters refresh on every viewer that
// has no SetViewerLayout override, and all known viewers are re-triggered
// under both kinds. A task already pending keeps its original due time;
// new delays apply from the next scheduled task onward.
func (h *HUD) ApplyConfig(cfg Config) {
	h.cfg = cfg.sanitize(warnf)
	for id, st := range h.viewers {
		if !st.overridden {
			st.padding = h.cfg.Padding
			st.axis = h.cfg.StrideAxis
		}
		// Spacing changes relayout even when the child set didn't move.
		st.hasSig = false
		h.Trigger(RefreshLayout, id)
		h.Trigger(RefreshGlow, id)
	}
}

// Config returns the active (sanitized) configuration.
func (h *HUD) Config() Config {
	return h.cfg
}
