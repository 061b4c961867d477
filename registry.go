package smolder

// hookEntry records that an element has its hooks attached. Entries are
// keyed by ElementID, so they survive handle churn within one element
// lifetime.
type hookEntry struct {
	attached bool
}

// hookRegistry is the per-element idempotent record of hook attachment.
// attached is monotonic within an element lifetime: once true, the
// registrar never reattaches. Entries leave the registry only when the
// host reports permanent destruction (via the Destroyed hook) or when a
// lookup finds them stale.
type hookRegistry struct {
	entries map[ElementID]*hookEntry
}

func (r *hookRegistry) lookup(id ElementID) *hookEntry {
	return r.entries[id]
}

func (r *hookRegistry) insert(id ElementID) {
	if r.entries == nil {
		r.entries = make(map[ElementID]*hookEntry)
	}
	r.entries[id] = &hookEntry{attached: true}
}

func (r *hookRegistry) remove(id ElementID) {
	delete(r.entries, id)
}

func (r *hookRegistry) size() int {
	return len(r.entries)
}

// Setup performs one-time registration of an icon element: it attaches the
// required hooks exactly once, records the registry entry, and applies the
// element's initial glow state. Idempotent — if the element's identity is
// already registered, Setup returns immediately.
//
// A stale or destroyed handle yields a *MissingElementError; the caller
// skips the element and the enclosing pass continues.
func (h *HUD) Setup(viewer ViewerID, handle ElementHandle) error {
	info, ok := h.host.ElementInfo(handle)
	if !ok {
		return &MissingElementError{Handle: handle}
	}
	if e := h.reg.lookup(info.ID); e != nil && e.attached {
		return nil
	}

	id := info.ID
	hooks := ElementHooks{
		VisibilityChanged: func() {
			h.Trigger(RefreshLayout, viewer)
		},
		GlowShown: func() {
			h.Trigger(RefreshGlow, viewer)
		},
		Destroyed: func() {
			h.reg.remove(id)
		},
	}
	if !h.host.HookElement(handle, hooks) {
		return &MissingElementError{Handle: handle}
	}

	h.reg.insert(id)
	h.applyGlowState(handle)
	return nil
}

// applyGlowState pushes the configured suppression state to the element's
// native glow sub-element. Always reapplied, never cached: the game can
// re-show a glow at any time without the HUD seeing a state change.
func (h *HUD) applyGlowState(handle ElementHandle) {
	h.host.SetGlowShown(handle, !h.cfg.GlowSuppressed)
}
