package smolder

import "fmt"

// ViewerID identifies a viewer container for the session. Hosts assign
// viewer IDs at creation time and they stay stable; the HUD allocates its
// per-viewer bookkeeping lazily on first use of an ID.
type ViewerID uint32

// ElementID is the stable identity of an icon element for its current
// lifetime, supplied by the host. Registration state is keyed by ElementID,
// never by handle or memory address, so repeated setup calls across passes
// are deduplicated even if the host hands out fresh handles.
type ElementID uint64

// ElementHandle is a non-owning reference to a host-owned icon element.
// Every lookup through the host may fail: the referent can vanish between
// a dirty mark and the flush that services it, and that is a normal,
// non-exceptional outcome.
type ElementHandle uint64

// Geometry is an element's extents within its viewer. The coordinate system
// has its origin at the viewer's top-left, with Y increasing downward.
type Geometry struct {
	X, Y, Width, Height float64
}

// StrideAxis selects the direction icons are laid out along.
type StrideAxis uint8

const (
	StrideHorizontal StrideAxis = iota // icons advance left to right
	StrideVertical                     // icons advance top to bottom
)

// RefreshKind is a coalescing key for debounced work. Every trigger source
// (host child events, cooldown-state changes from the aura scanner, config
// changes) maps to one of these; triggers of the same kind within the
// kind's debounce window collapse into a single processing pass.
type RefreshKind uint8

const (
	// RefreshLayout recomputes visible-child order and spacing.
	RefreshLayout RefreshKind = iota
	// RefreshGlow reapplies the configured glow suppression state.
	RefreshGlow

	refreshKindCount
)

// String returns the kind's name for diagnostics.
func (k RefreshKind) String() string {
	switch k {
	case RefreshLayout:
		return "layout"
	case RefreshGlow:
		return "glow"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// MissingElementError reports that a referenced element no longer existed
// at enumeration or registration time. It is always recovered locally by
// skipping the element; it never aborts the enclosing pass.
type MissingElementError struct {
	Handle ElementHandle
}

func (e *MissingElementError) Error() string {
	return fmt.Sprintf("smolder: element %d no longer exists", uint64(e.Handle))
}
