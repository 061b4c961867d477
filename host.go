package smolder

// Host is the narrow accessor capability the HUD consumes from the UI
// engine that owns the actual icon widgets. The HUD holds no owning
// references into the host's object graph; every per-element call can
// report "gone" and callers must treat that as routine.
//
// All Host methods are invoked from the single update-pump goroutine.
type Host interface {
	// EnumerateChildren appends the viewer's current live children to buf
	// in attachment order and returns the extended slice. Destroyed
	// elements may be omitted. Implementations must not retain buf.
	EnumerateChildren(viewer ViewerID, buf []ElementHandle) []ElementHandle

	// ElementInfo returns the element's identity and visibility.
	// ok is false if the element no longer exists.
	ElementInfo(h ElementHandle) (info ElementInfo, ok bool)

	// Extents returns the element's current geometry.
	// ok is false if the element no longer exists.
	Extents(h ElementHandle) (g Geometry, ok bool)

	// SetExtents writes the element's geometry. Returns false if the
	// element vanished since enumeration; the write is then dropped.
	SetExtents(h ElementHandle, g Geometry) bool

	// SetGlowShown shows or hides the element's native glow sub-element.
	// Returns false if the element no longer exists.
	SetGlowShown(h ElementHandle, shown bool) bool

	// HookElement attaches the given hooks to the element. Called at most
	// once per element lifetime (the registrar guarantees deduplication).
	// Returns false if the element no longer exists.
	HookElement(h ElementHandle, hooks ElementHooks) bool
}

// ElementInfo is the per-element state the scheduler reads during a pass.
type ElementInfo struct {
	ID      ElementID
	Visible bool
}

// ElementHooks are the callbacks the registrar attaches to each element,
// exactly once per element lifetime. Hosts invoke them from the update
// pump when the corresponding native event occurs. Any field may be nil.
type ElementHooks struct {
	// VisibilityChanged fires when the element is shown or hidden.
	VisibilityChanged func()
	// GlowShown fires when native code turns the element's glow on,
	// giving the HUD a chance to re-suppress it.
	GlowShown func()
	// Destroyed fires when the host permanently destroys the element.
	// This is the only signal that removes a registry entry eagerly;
	// otherwise stale entries are pruned lazily on lookup.
	Destroyed func()
}
