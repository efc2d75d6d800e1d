package tui

import "time"

// HoldTracker derives a held-key state from key events. Terminals report
// presses and autorepeats but no releases, so a key counts as held while
// events keep arriving: for the initial window after a fresh press (covering
// the autorepeat delay), then within the repeat window of the last event.
//
// An event that arrives while held but after a gap longer than the repeat
// window is either a second tap or the first autorepeat. It stays pending
// until the repeat window passes: a following event within the window marks
// it as autorepeat, silence confirms it as a tap.
type HoldTracker struct {
	initial time.Duration
	repeat  time.Duration

	active  bool
	last    time.Time
	repeats int
	pending bool
}

// NewHoldTracker creates a tracker with the given windows.
func NewHoldTracker(initial, repeat time.Duration) *HoldTracker {
	return &HoldTracker{initial: initial, repeat: repeat}
}

// Press records a key event at now and reports whether it is a fresh press
// of a released key. Second taps during a hold are reported later by Tapped.
func (h *HoldTracker) Press(now time.Time) bool {
	if !h.Held(now) {
		h.active = true
		h.last = now
		h.repeats = 0
		h.pending = false
		return true
	}

	gap := now.Sub(h.last)
	switch {
	case gap <= h.repeat:
		h.pending = false
		h.repeats++
	default:
		h.pending = true
	}
	h.last = now
	return false
}

// Tapped reports, once, a pending event confirmed as a second tap at now.
func (h *HoldTracker) Tapped(now time.Time) bool {
	if !h.pending || now.Sub(h.last) <= h.repeat {
		return false
	}
	h.pending = false
	return true
}

// Held reports whether the key still counts as down at now.
func (h *HoldTracker) Held(now time.Time) bool {
	if !h.active {
		return false
	}
	window := h.repeat
	if h.repeats == 0 {
		window = h.initial
	}
	if now.Sub(h.last) > window {
		h.active = false
	}
	return h.active
}
