package smolder

// viewerState is the per-viewer layout bookkeeping: spacing parameters and
// the child signature recorded by the last recompute. Allocated lazily on
// first use of a ViewerID and kept for the session.
type viewerState struct {
	padding    float64
	axis       StrideAxis
	overridden bool // layout params pinned by SetViewerLayout

	lastSig uint64
	hasSig  bool
}

// viewer returns the state record for the given ID, creating it with the
// current config's layout parameters on first use.
func (h *HUD) viewer(id ViewerID) *viewerState {
	if h.viewers == nil {
		h.viewers = make(map[ViewerID]*viewerState)
	}
	st := h.viewers[id]
	if st == nil {
		st = &viewerState{padding: h.cfg.Padding, axis: h.cfg.StrideAxis}
		h.viewers[id] = st
	}
	return st
}

// SetViewerLayout overrides the spacing parameters for one viewer. The
// override survives config changes; clear it by recreating the HUD.
// Marks the viewer dirty so the new spacing applies on the next pass.
func (h *HUD) SetViewerLayout(id ViewerID, padding float64, axis StrideAxis) {
	st := h.viewer(id)
	st.padding = padding
	st.axis = axis
	st.overridden = true
	st.hasSig = false
	h.Trigger(RefreshLayout, id)
}

// LayoutSignature returns the viewer's last recorded child signature.
// ok is false if no layout pass has completed for the viewer yet.
// Intended for diagnostics and validation counters.
func (h *HUD) LayoutSignature(id ViewerID) (sig uint64, ok bool) {
	st := h.viewers[id]
	if st == nil || !st.hasSig {
		return 0, false
	}
	return st.lastSig, true
}

// flushLayout services one layout pass for every viewer in the drained
// dirty set. Per-pass cost is proportional to the children of dirty
// viewers only; failures inside one viewer never spill into the others.
func (h *HUD) flushLayout(viewers map[ViewerID]struct{}) {
	for id := range viewers {
		h.flushViewer(id)
	}
}

// flushViewer recomputes one viewer's layout: enumerate children into the
// viewer's scratch buffer, digest their identities, skip everything if the
// signature is unchanged, otherwise assign stride slots 0..k-1 to the
// visible children in attachment order and write geometry back.
func (h *HUD) flushViewer(id ViewerID) {
	st := h.viewer(id)
	buf := h.pool.get(id)
	buf.handles = h.host.EnumerateChildren(id, buf.handles)

	var acc sigAccum
	for _, handle := range buf.handles {
		info, ok := h.host.ElementInfo(handle)
		if !ok {
			// Vanished between mark-dirty and flush. Dropped from this
			// pass's visible set; the pass itself continues.
			continue
		}
		acc.add(info.ID, info.Visible)
		if !info.Visible {
			buf.hidden = append(buf.hidden, handle)
			continue
		}
		g, ok := h.host.Extents(handle)
		if !ok {
			continue
		}
		buf.visible = append(buf.visible, layoutSlot{handle: handle, geom: g})
	}

	sig := acc.digest()
	if st.hasSig && sig == st.lastSig {
		h.stats.SkippedViewers++
		return
	}

	raceLost := false
	cursor := 0.0
	for i := range buf.visible {
		slot := &buf.visible[i]
		g := slot.geom
		switch st.axis {
		case StrideVertical:
			g.X = 0
			g.Y = cursor
			cursor += g.Height + st.padding
		default:
			g.X = cursor
			g.Y = 0
			cursor += g.Width + st.padding
		}
		if !h.host.SetExtents(slot.handle, g) {
			// Host mutated the child list mid-pass. Recompute once more
			// on the next dirty cycle instead of retrying in place.
			raceLost = true
			continue
		}
		h.stats.GeometryWrites++
	}

	h.zeroSlots(buf.hidden)

	st.lastSig = sig
	st.hasSig = true
	h.stats.LayoutPasses++
	h.stats.VisibleTotal += len(buf.visible)

	if raceLost {
		h.Trigger(RefreshLayout, id)
	}
}

// RemovePadding collapses the viewer's hidden slots to zero size so no
// visual gap remains between the remaining visible icons. Idempotent:
// applying it twice with no intervening child change produces identical
// geometry. Runs immediately rather than through the debouncer.
func (h *HUD) RemovePadding(id ViewerID) {
	buf := h.pool.get(id)
	buf.handles = h.host.EnumerateChildren(id, buf.handles)
	for _, handle := range buf.handles {
		info, ok := h.host.ElementInfo(handle)
		if !ok || info.Visible {
			continue
		}
		buf.hidden = append(buf.hidden, handle)
	}
	h.zeroSlots(buf.hidden)
}

// zeroSlots writes zero-size geometry to each handle so hidden elements
// consume no stride space. Hosts restore an element's intrinsic extents
// when it is shown again.
func (h *HUD) zeroSlots(handles []ElementHandle) {
	for _, handle := range handles {
		if h.host.SetExtents(handle, Geometry{}) {
			h.stats.GeometryWrites++
		}
	}
}
