package smolder

// scratchBuffer is the reusable working storage for one viewer's passes.
// Slices are truncated between passes, never freed, so after warmup a
// flush performs no per-pass allocation.
type scratchBuffer struct {
	handles []ElementHandle // raw enumeration result
	visible []layoutSlot    // visible subset, attachment order
	hidden  []ElementHandle // hidden/vanished subset for RemovePadding
}

// layoutSlot pairs a visible element with the geometry staged for it.
type layoutSlot struct {
	handle ElementHandle
	geom   Geometry
}

func (b *scratchBuffer) reset() {
	b.handles = b.handles[:0]
	b.visible = b.visible[:0]
	b.hidden = b.hidden[:0]
}

// scratchPool hands out one long-lived scratchBuffer per viewer.
// Buffers are allocated on first use and live for the session.
type scratchPool struct {
	buffers map[ViewerID]*scratchBuffer
}

// get returns the viewer's buffer, reset and ready for a pass.
func (p *scratchPool) get(viewer ViewerID) *scratchBuffer {
	if p.buffers == nil {
		p.buffers = make(map[ViewerID]*scratchBuffer)
	}
	buf := p.buffers[viewer]
	if buf == nil {
		buf = &scratchBuffer{}
		p.buffers[viewer] = buf
	}
	buf.reset()
	return buf
}
