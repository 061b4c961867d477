package smolder

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// SpriteHost is an ebiten-backed Host implementation for games that do not
// already have a widget tree: viewers are screen-anchored strips, icons
// are images drawn at their assigned extents, and the native glow is an
// additive overlay with a tween-driven pulse. Games embedding the HUD in
// an existing UI framework implement Host against their own tree instead.
//
// Like the HUD, SpriteHost is single-threaded: call Update from the
// game's Update and Draw from its Draw.
type SpriteHost struct {
	viewers []*spriteViewer
	icons   map[ElementHandle]*iconSprite

	nextViewer  ViewerID
	nextElement uint64
}

type spriteViewer struct {
	id    ViewerID
	x, y  float64
	order []*iconSprite // attachment order
}

type iconSprite struct {
	id    ElementID
	image *ebiten.Image
	size  float64 // intrinsic edge length, restored on show

	geom    Geometry
	visible bool

	glowShown bool
	pulse     glowPulse

	hooked bool
	hooks  ElementHooks
}

// NewSpriteHost creates an empty host.
func NewSpriteHost() *SpriteHost {
	return &SpriteHost{icons: make(map[ElementHandle]*iconSprite)}
}

// NewViewer creates a viewer anchored at (x, y) in screen space and
// returns its ID.
func (s *SpriteHost) NewViewer(x, y float64) ViewerID {
	s.nextViewer++
	v := &spriteViewer{id: s.nextViewer, x: x, y: y}
	s.viewers = append(s.viewers, v)
	return v.id
}

// AddIcon attaches a new icon element to the viewer and returns its
// handle. The icon starts visible at its intrinsic size.
func (s *SpriteHost) AddIcon(viewer ViewerID, image *ebiten.Image, size float64) ElementHandle {
	v := s.viewerByID(viewer)
	if v == nil {
		return 0
	}
	s.nextElement++
	icon := &iconSprite{
		id:      ElementID(s.nextElement),
		image:   image,
		size:    size,
		geom:    Geometry{Width: size, Height: size},
		visible: true,
		pulse:   newGlowPulse(),
	}
	v.order = append(v.order, icon)
	handle := ElementHandle(s.nextElement)
	s.icons[handle] = icon
	return handle
}

// SetIconVisible shows or hides an icon. Showing restores the icon's
// intrinsic extents (a hidden icon's slot may have been collapsed to
// zero by the layout). Fires the element's VisibilityChanged hook.
func (s *SpriteHost) SetIconVisible(h ElementHandle, visible bool) {
	icon := s.icons[h]
	if icon == nil || icon.visible == visible {
		return
	}
	icon.visible = visible
	if visible {
		icon.geom.Width = icon.size
		icon.geom.Height = icon.size
	}
	if icon.hooks.VisibilityChanged != nil {
		icon.hooks.VisibilityChanged()
	}
}

// ShowNativeGlow turns the icon's glow overlay on, the way the game
// engine does when an ability procs, and fires the GlowShown hook so the
// HUD can re-suppress it.
func (s *SpriteHost) ShowNativeGlow(h ElementHandle) {
	icon := s.icons[h]
	if icon == nil {
		return
	}
	icon.glowShown = true
	icon.pulse = newGlowPulse()
	if icon.hooks.GlowShown != nil {
		icon.hooks.GlowShown()
	}
}

// DestroyIcon permanently destroys an icon element. Subsequent lookups
// through any retained handle fail; fires the Destroyed hook.
func (s *SpriteHost) DestroyIcon(h ElementHandle) {
	icon := s.icons[h]
	if icon == nil {
		return
	}
	delete(s.icons, h)
	for _, v := range s.viewers {
		v.removeIcon(icon)
	}
	if icon.hooks.Destroyed != nil {
		icon.hooks.Destroyed()
	}
}

// removeIcon drops icon from the attachment order. Uses copy+nil to avoid
// retaining a dangling pointer in the backing array.
func (v *spriteViewer) removeIcon(icon *iconSprite) {
	for i, c := range v.order {
		if c == icon {
			copy(v.order[i:], v.order[i+1:])
			v.order[len(v.order)-1] = nil
			v.order = v.order[:len(v.order)-1]
			return
		}
	}
}

func (s *SpriteHost) viewerByID(id ViewerID) *spriteViewer {
	for _, v := range s.viewers {
		if v.id == id {
			return v
		}
	}
	return nil
}

// --- Host interface ---

// EnumerateChildren appends the viewer's live icons in attachment order.
func (s *SpriteHost) EnumerateChildren(viewer ViewerID, buf []ElementHandle) []ElementHandle {
	v := s.viewerByID(viewer)
	if v == nil {
		return buf
	}
	for _, icon := range v.order {
		buf = append(buf, ElementHandle(icon.id))
	}
	return buf
}

// ElementInfo returns the icon's identity and visibility.
func (s *SpriteHost) ElementInfo(h ElementHandle) (ElementInfo, bool) {
	icon := s.icons[h]
	if icon == nil {
		return ElementInfo{}, false
	}
	return ElementInfo{ID: icon.id, Visible: icon.visible}, true
}

// Extents returns the icon's current geometry.
func (s *SpriteHost) Extents(h ElementHandle) (Geometry, bool) {
	icon := s.icons[h]
	if icon == nil {
		return Geometry{}, false
	}
	return icon.geom, true
}

// SetExtents writes the icon's geometry.
func (s *SpriteHost) SetExtents(h ElementHandle, g Geometry) bool {
	icon := s.icons[h]
	if icon == nil {
		return false
	}
	icon.geom = g
	return true
}

// SetGlowShown shows or hides the icon's glow overlay.
func (s *SpriteHost) SetGlowShown(h ElementHandle, shown bool) bool {
	icon := s.icons[h]
	if icon == nil {
		return false
	}
	if shown && !icon.glowShown {
		icon.pulse = newGlowPulse()
	}
	icon.glowShown = shown
	return true
}

// HookElement stores the hooks for the icon's lifetime.
func (s *SpriteHost) HookElement(h ElementHandle, hooks ElementHooks) bool {
	icon := s.icons[h]
	if icon == nil {
		return false
	}
	if !icon.hooked {
		icon.hooks = hooks
		icon.hooked = true
	}
	return true
}

// --- Rendering ---

// Update advances the glow pulse tweens by dt seconds.
func (s *SpriteHost) Update(dt float64) {
	for _, v := range s.viewers {
		for _, icon := range v.order {
			if icon.glowShown {
				icon.pulse.update(float32(dt))
			}
		}
	}
}

// Draw renders every viewer's visible icons at their assigned extents,
// then any shown glow overlays additively on top.
func (s *SpriteHost) Draw(screen *ebiten.Image) {
	for _, v := range s.viewers {
		for _, icon := range v.order {
			if !icon.visible || icon.geom.Width <= 0 || icon.geom.Height <= 0 {
				continue
			}
			icon.draw(screen, v.x, v.y)
		}
	}
}

func (icon *iconSprite) draw(screen *ebiten.Image, originX, originY float64) {
	img := icon.image
	if img == nil {
		img = ensureWhiteImage()
	}
	b := img.Bounds()

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(icon.geom.Width/float64(b.Dx()), icon.geom.Height/float64(b.Dy()))
	opts.GeoM.Translate(originX+icon.geom.X, originY+icon.geom.Y)
	screen.DrawImage(img, opts)

	if !icon.glowShown {
		return
	}
	glow := ensureWhiteImage()
	gb := glow.Bounds()
	opts = &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(
		(icon.geom.Width+glowMargin*2)/float64(gb.Dx()),
		(icon.geom.Height+glowMargin*2)/float64(gb.Dy()),
	)
	opts.GeoM.Translate(originX+icon.geom.X-glowMargin, originY+icon.geom.Y-glowMargin)
	opts.Blend = ebiten.BlendLighter
	opts.ColorScale.Scale(glowR*icon.pulse.alpha, glowG*icon.pulse.alpha, glowB*icon.pulse.alpha, icon.pulse.alpha)
	screen.DrawImage(glow, opts)
}

// Glow overlay appearance.
const (
	glowMargin = 3.0
	glowR      = 1.0
	glowG      = 0.82
	glowB      = 0.25
)

// white pixel singleton (no sync.Once — smolder is single-threaded)
var whiteImage *ebiten.Image

func ensureWhiteImage() *ebiten.Image {
	if whiteImage == nil {
		whiteImage = ebiten.NewImage(1, 1)
		whiteImage.Fill(color.White)
	}
	return whiteImage
}

// --- Glow pulse ---

const (
	glowAlphaMin  = 0.55
	glowAlphaMax  = 1.0
	glowPulseHalf = 0.4 // seconds per half cycle
)

// glowPulse ping-pongs the overlay alpha between glowAlphaMin and
// glowAlphaMax with an eased tween.
type glowPulse struct {
	up, down *gween.Tween
	rising   bool
	alpha    float32
}

func newGlowPulse() glowPulse {
	return glowPulse{
		up:     gween.New(glowAlphaMin, glowAlphaMax, glowPulseHalf, ease.InOutQuad),
		down:   gween.New(glowAlphaMax, glowAlphaMin, glowPulseHalf, ease.InOutQuad),
		rising: false,
		alpha:  glowAlphaMax,
	}
}

func (p *glowPulse) update(dt float32) {
	t := p.down
	if p.rising {
		t = p.up
	}
	v, done := t.Update(dt)
	p.alpha = v
	if done {
		if p.rising {
			p.down.Reset()
		} else {
			p.up.Reset()
		}
		p.rising = !p.rising
	}
}
