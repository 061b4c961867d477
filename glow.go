package smolder

// flushGlow services one glow-suppression pass for every viewer in the
// drained dirty set.
func (h *HUD) flushGlow(viewers map[ViewerID]struct{}) {
	for id := range viewers {
		h.glowViewer(id)
	}
	h.stats.GlowPasses++
}

// glowViewer walks the viewer's visible elements, registering any the
// registry has not seen, and pushes the configured glow state to each.
// Vanished elements are skipped; the pass never aborts.
func (h *HUD) glowViewer(id ViewerID) {
	buf := h.pool.get(id)
	buf.handles = h.host.EnumerateChildren(id, buf.handles)
	for _, handle := range buf.handles {
		info, ok := h.host.ElementInfo(handle)
		if !ok || !info.Visible {
			continue
		}
		e := h.reg.lookup(info.ID)
		if e == nil || !e.attached {
			// First sighting: the registrar attaches hooks and applies
			// the initial glow state in one step.
			if err := h.Setup(id, handle); err == nil {
				h.stats.GlowElements++
			}
			continue
		}
		h.applyGlowState(handle)
		h.stats.GlowElements++
	}
}
