package ascent

import "time"

// DeferredKind is a world mutation that happens some ticks after it is
// scheduled.
type DeferredKind int

const (
	DeferredRemovePlatform DeferredKind = iota
	DeferredResetCompression
)

// DeferredAction targets one platform of one field generation.
type DeferredAction struct {
	Kind       DeferredKind
	Platform   PlatformID
	Generation uint64
	Due        uint64 // simulated tick
}

// Deferred is a queue of pending world mutations. Actions fire on
// simulated ticks, so paused time never brings them closer.
type Deferred struct {
	pending []DeferredAction
}

// Schedule queues an action.
func (d *Deferred) Schedule(a DeferredAction) {
	d.pending = append(d.pending, a)
}

// Drain fires every action due at or before tick, in scheduling order.
// Actions tagged with a generation other than gen are dropped without
// firing. It returns how many were fired and dropped.
func (d *Deferred) Drain(tick, gen uint64, fire func(DeferredAction)) (fired, dropped int) {
	kept := d.pending[:0]
	var due []DeferredAction
	for _, a := range d.pending {
		if a.Due > tick {
			kept = append(kept, a)
			continue
		}
		if a.Generation != gen {
			dropped++
			continue
		}
		due = append(due, a)
	}
	d.pending = kept

	for _, a := range due {
		fire(a)
		fired++
	}
	return fired, dropped
}

// Len returns the number of pending actions.
func (d *Deferred) Len() int {
	return len(d.pending)
}

// TicksFor converts a real-time delay into whole ticks at the given rate,
// rounding up.
func TicksFor(delay time.Duration, tickRate int) uint64 {
	if delay <= 0 || tickRate <= 0 {
		return 0
	}
	n := int64(delay) * int64(tickRate)
	return uint64((n + int64(time.Second) - 1) / int64(time.Second))
}
