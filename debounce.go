package smolder

// The debouncer coalesces bursts of refresh triggers into one processing
// pass per refresh kind. Each kind owns an independent coalescing key: at
// most one task is pending per kind at any time, and a trigger that finds
// a task already pending only adds dirty marks to it.
//
// Time is the HUD's own accumulated clock, advanced by Update(dt) on the
// host's update pump. A task is a due time checked each tick, not a timer
// goroutine (no goroutines — smolder is single-threaded).

// kindState is the per-kind dirty set and pending task.
type kindState struct {
	dirty    map[ViewerID]struct{}
	draining map[ViewerID]struct{} // swapped with dirty while a pass runs
	pending  bool
	due      float64
}

type debouncer struct {
	kinds [refreshKindCount]kindState
	now   float64
}

// markDirty records the viewer as stale under the given kind. O(1),
// idempotent, never schedules anything.
func (d *debouncer) markDirty(kind RefreshKind, viewer ViewerID) {
	ks := &d.kinds[kind]
	if ks.dirty == nil {
		ks.dirty = make(map[ViewerID]struct{})
	}
	ks.dirty[viewer] = struct{}{}
}

// trigger marks the viewers dirty and ensures a task is pending for the
// kind. If one already is, the existing due time stands (coalescing); the
// delay is read only when a new task is created, so config changes affect
// future tasks only.
func (d *debouncer) trigger(kind RefreshKind, delay float64, viewers []ViewerID) {
	for _, v := range viewers {
		d.markDirty(kind, v)
	}
	ks := &d.kinds[kind]
	if ks.pending {
		return
	}
	ks.pending = true
	ks.due = d.now + delay
}

// advance moves the clock forward and fires every due task. The pending
// flag clears and the dirty set swaps out before run executes, so a pass
// is atomic with respect to the marks it drains: a markDirty or trigger
// landing during run goes to the fresh set and is answered by the next
// scheduled pass, never merged into the in-flight one.
func (d *debouncer) advance(dt float64, run func(kind RefreshKind, viewers map[ViewerID]struct{})) {
	d.now += dt
	for k := range d.kinds {
		ks := &d.kinds[k]
		if !ks.pending || d.now < ks.due {
			continue
		}
		ks.pending = false
		ks.dirty, ks.draining = ks.draining, ks.dirty
		if len(ks.draining) > 0 {
			run(RefreshKind(k), ks.draining)
			clear(ks.draining)
		}
	}
}
