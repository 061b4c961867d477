package smolder

import "testing"

func TestScratchBufferReusedPerViewer(t *testing.T) {
	var p scratchPool
	buf := p.get(ViewerID(1))
	buf.handles = append(buf.handles, 1, 2, 3)
	buf.visible = append(buf.visible, layoutSlot{handle: 1})

	again := p.get(ViewerID(1))
	if again != buf {
		t.Fatal("pool returned a different buffer for the same viewer")
	}
	if len(again.handles) != 0 || len(again.visible) != 0 || len(again.hidden) != 0 {
		t.Error("buffer not reset between passes")
	}
	if cap(again.handles) < 3 {
		t.Error("reset discarded the backing storage")
	}
}

func TestScratchBuffersIndependentAcrossViewers(t *testing.T) {
	var p scratchPool
	a := p.get(ViewerID(1))
	a.handles = append(a.handles, 1)
	b := p.get(ViewerID(2))
	if a == b {
		t.Fatal("viewers share a scratch buffer")
	}
	if len(a.handles) != 1 {
		t.Error("getting one viewer's buffer disturbed another's")
	}
}

func TestFlushDoesNotGrowScratchAfterWarmup(t *testing.T) {
	hud, host := newTestHUD(DefaultConfig())
	const v = ViewerID(1)
	for i := 0; i < 16; i++ {
		host.addElement(v, true, testIconSize)
	}

	hud.flushViewer(v)
	warm := hud.pool.buffers[v]
	handlesCap, visibleCap := cap(warm.handles), cap(warm.visible)

	host.setVisible(ElementHandle(1), false)
	hud.flushViewer(v)

	if cap(warm.handles) != handlesCap || cap(warm.visible) != visibleCap {
		t.Error("repeat flush reallocated scratch storage")
	}
}
