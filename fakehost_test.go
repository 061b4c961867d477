package smolder

// fakeHost is a deterministic, pure in-memory Host for exercising the
// scheduler without a game loop. It mirrors SpriteHost's semantics and
// adds instrumentation: per-call counters and injectable failures.
type fakeHost struct {
	order    map[ViewerID][]*fakeElement
	byHandle map[ElementHandle]*fakeElement
	next     uint64

	enumerations int
	onEnumerate  func(viewer ViewerID) // runs inside EnumerateChildren

	failSetExtents map[ElementHandle]bool
}

type fakeElement struct {
	id      ElementID
	visible bool
	size    float64
	geom    Geometry
	gone    bool

	glowShown bool
	glowSets  int
	geomSets  int

	hooked    bool
	hookCount int
	hooks     ElementHooks
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		order:          make(map[ViewerID][]*fakeElement),
		byHandle:       make(map[ElementHandle]*fakeElement),
		failSetExtents: make(map[ElementHandle]bool),
	}
}

func (f *fakeHost) addElement(viewer ViewerID, visible bool, size float64) ElementHandle {
	f.next++
	el := &fakeElement{
		id:      ElementID(f.next),
		visible: visible,
		size:    size,
		geom:    Geometry{Width: size, Height: size},
	}
	f.order[viewer] = append(f.order[viewer], el)
	h := ElementHandle(f.next)
	f.byHandle[h] = el
	return h
}

// destroy removes the element the way a host tears a widget down: lookups
// fail afterwards and the Destroyed hook fires.
func (f *fakeHost) destroy(h ElementHandle) {
	el := f.byHandle[h]
	if el == nil {
		return
	}
	delete(f.byHandle, h)
	el.gone = true
	for v, list := range f.order {
		for i, c := range list {
			if c == el {
				f.order[v] = append(list[:i], list[i+1:]...)
				break
			}
		}
	}
	if el.hooks.Destroyed != nil {
		el.hooks.Destroyed()
	}
}

// vanish makes lookups fail but leaves the element in the enumeration
// order, simulating a referent dying between mark-dirty and flush.
func (f *fakeHost) vanish(h ElementHandle) {
	if el := f.byHandle[h]; el != nil {
		el.gone = true
	}
}

func (f *fakeHost) setVisible(h ElementHandle, visible bool) {
	el := f.byHandle[h]
	if el == nil || el.visible == visible {
		return
	}
	el.visible = visible
	if visible {
		el.geom.Width = el.size
		el.geom.Height = el.size
	}
	if el.hooks.VisibilityChanged != nil {
		el.hooks.VisibilityChanged()
	}
}

func (f *fakeHost) proc(h ElementHandle) {
	el := f.byHandle[h]
	if el == nil {
		return
	}
	el.glowShown = true
	if el.hooks.GlowShown != nil {
		el.hooks.GlowShown()
	}
}

// --- Host interface ---

func (f *fakeHost) EnumerateChildren(viewer ViewerID, buf []ElementHandle) []ElementHandle {
	f.enumerations++
	if f.onEnumerate != nil {
		f.onEnumerate(viewer)
	}
	for _, el := range f.order[viewer] {
		buf = append(buf, ElementHandle(el.id))
	}
	return buf
}

func (f *fakeHost) ElementInfo(h ElementHandle) (ElementInfo, bool) {
	el := f.byHandle[h]
	if el == nil || el.gone {
		return ElementInfo{}, false
	}
	return ElementInfo{ID: el.id, Visible: el.visible}, true
}

func (f *fakeHost) Extents(h ElementHandle) (Geometry, bool) {
	el := f.byHandle[h]
	if el == nil || el.gone {
		return Geometry{}, false
	}
	return el.geom, true
}

func (f *fakeHost) SetExtents(h ElementHandle, g Geometry) bool {
	el := f.byHandle[h]
	if el == nil || el.gone || f.failSetExtents[h] {
		return false
	}
	el.geom = g
	el.geomSets++
	return true
}

func (f *fakeHost) SetGlowShown(h ElementHandle, shown bool) bool {
	el := f.byHandle[h]
	if el == nil || el.gone {
		return false
	}
	el.glowShown = shown
	el.glowSets++
	return true
}

func (f *fakeHost) HookElement(h ElementHandle, hooks ElementHooks) bool {
	el := f.byHandle[h]
	if el == nil || el.gone {
		return false
	}
	el.hookCount++
	if !el.hooked {
		el.hooks = hooks
		el.hooked = true
	}
	return true
}
