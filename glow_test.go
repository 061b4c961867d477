package smolder

import (
	"testing"
	"time"
)

// The spec scenario: five glow triggers inside 100ms with a 200ms window
// yield exactly one suppression pass that touches each visible element
// exactly once.
func TestGlowBurstScenario(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GlowDelay = 200 * time.Millisecond
	cfg.GlowSuppressed = true
	hud, host := newTestHUD(cfg)
	const v = ViewerID(1)
	a := host.addElement(v, true, testIconSize)
	b := host.addElement(v, true, testIconSize)
	hidden := host.addElement(v, false, testIconSize)

	for i := 0; i < 5; i++ {
		hud.Trigger(RefreshGlow, v)
		hud.Update(0.02)
	}
	hud.Update(0.15)

	if got := hud.Stats().GlowPasses; got != 1 {
		t.Errorf("GlowPasses = %d, want 1", got)
	}
	if got := host.byHandle[a].glowSets; got != 1 {
		t.Errorf("element a touched %d times, want 1", got)
	}
	if got := host.byHandle[b].glowSets; got != 1 {
		t.Errorf("element b touched %d times, want 1", got)
	}
	if got := host.byHandle[hidden].glowSets; got != 0 {
		t.Errorf("hidden element touched %d times, want 0", got)
	}
}

func TestGlowPassRegistersUnknownElements(t *testing.T) {
	hud, host := newTestHUD(DefaultConfig())
	const v = ViewerID(1)
	h := host.addElement(v, true, testIconSize)

	hud.Trigger(RefreshGlow, v)
	hud.Update(defaultGlowDelay.Seconds() + 0.01)

	if hud.reg.size() != 1 {
		t.Errorf("registry size = %d, want 1 (pass must delegate to the registrar)", hud.reg.size())
	}
	if got := host.byHandle[h].hookCount; got != 1 {
		t.Errorf("hooks attached %d times, want 1", got)
	}
}

func TestNativeGlowReSuppressedAfterProc(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GlowSuppressed = true
	hud, host := newTestHUD(cfg)
	const v = ViewerID(1)
	h := host.addElement(v, true, testIconSize)
	if err := hud.Setup(v, h); err != nil {
		t.Fatal(err)
	}

	host.proc(h)
	if !host.byHandle[h].glowShown {
		t.Fatal("proc did not show the native glow")
	}

	hud.Update(cfg.GlowDelay.Seconds() + 0.01)
	if host.byHandle[h].glowShown {
		t.Error("glow still shown after the suppression pass")
	}
}

func TestGlowNotSuppressedWhenConfigured(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GlowSuppressed = false
	hud, host := newTestHUD(cfg)
	const v = ViewerID(1)
	h := host.addElement(v, true, testIconSize)

	hud.Trigger(RefreshGlow, v)
	hud.Update(cfg.GlowDelay.Seconds() + 0.01)

	if !host.byHandle[h].glowShown {
		t.Error("glow hidden despite GlowSuppressed=false")
	}
}

func TestGlowPassSurvivesVanishedElement(t *testing.T) {
	hud, host := newTestHUD(DefaultConfig())
	const v = ViewerID(1)
	a := host.addElement(v, true, testIconSize)
	b := host.addElement(v, true, testIconSize)
	host.vanish(a)

	hud.Trigger(RefreshGlow, v)
	hud.Update(defaultGlowDelay.Seconds() + 0.01)

	if got := host.byHandle[b].glowSets; got != 1 {
		t.Errorf("survivor touched %d times, want 1", got)
	}
}
