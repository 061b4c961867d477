// Package smolder is the layout-and-effects runtime for in-game
// cooldown-icon overlays, built for [Ebitengine] but usable with any UI
// engine that can implement the narrow [Host] accessor.
//
// Smolder keeps viewer containers populated with correctly ordered,
// correctly spaced icons and suppresses (or reapplies) the native glow
// overlay on them, while absorbing bursts of unrelated game events —
// login, zone change, ability procs — without doing redundant work on
// every burst member.
//
// # Quick start
//
//	host := smolder.NewSpriteHost()
//	hud := smolder.NewHUD(host, smolder.DefaultConfig())
//
//	bar := host.NewViewer(16, 16)
//	fireball := host.AddIcon(bar, fireballImage, 40)
//	hud.Trigger(smolder.RefreshLayout, bar)
//
// Then, inside the game loop:
//
//	func (g *Game) Update() error {
//		dt := 1.0 / float64(ebiten.TPS())
//		hud.Update(dt)
//		host.Update(dt)
//		return nil
//	}
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//		host.Draw(screen)
//	}
//
// # How work is scheduled
//
// Nothing happens inline when an event arrives. [HUD.Trigger] marks the
// affected viewers dirty under a [RefreshKind] and schedules at most one
// debounce task per kind; when the task comes due, a single pass services
// every viewer marked under that kind. A pass recomputes a viewer's
// layout only when its child signature — a cheap digest of the children's
// identities and visibility — actually changed, so a burst of five procs
// in one frame costs one pass, and an unchanged viewer costs nothing.
//
// Hook attachment is idempotent: each element is registered exactly once
// per lifetime, keyed by the stable identity the host supplies, no matter
// how many passes see it.
//
// All of it runs single-threaded on the host game's update pump. There
// are no goroutines, locks, or blocking operations; HUD and SpriteHost
// methods must only be called from the update loop.
//
// [Ebitengine]: https://ebitengine.org
package smolder
