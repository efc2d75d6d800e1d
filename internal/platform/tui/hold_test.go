package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func newTestHold() *HoldTracker {
	return NewHoldTracker(550*time.Millisecond, 120*time.Millisecond)
}

func TestHoldTrackerTap(t *testing.T) {
	h := newTestHold()
	t0 := time.Unix(0, 0)

	assert.False(t, h.Held(t0))
	assert.True(t, h.Press(t0))
	assert.True(t, h.Held(t0.Add(500*time.Millisecond)), "initial window covers the autorepeat delay")
	assert.False(t, h.Held(t0.Add(600*time.Millisecond)))
	assert.False(t, h.Tapped(t0.Add(600*time.Millisecond)))
}

func TestHoldTrackerAutorepeat(t *testing.T) {
	h := newTestHold()
	t0 := time.Unix(0, 0)

	assert.True(t, h.Press(t0))
	// First autorepeat after the OS delay is held back, then cancelled by
	// the next repeat.
	now := t0.Add(500 * time.Millisecond)
	assert.False(t, h.Press(now))
	assert.False(t, h.Tapped(now.Add(16*time.Millisecond)))

	for i := 0; i < 10; i++ {
		now = now.Add(30 * time.Millisecond)
		assert.False(t, h.Press(now), "repeat %d", i)
		assert.True(t, h.Held(now))
		assert.False(t, h.Tapped(now.Add(16*time.Millisecond)))
	}
	assert.False(t, h.Tapped(now.Add(200*time.Millisecond)), "a confirmed repeat never becomes a tap")

	// Once repeats have started, the short window applies.
	assert.True(t, h.Held(now.Add(100*time.Millisecond)))
	assert.False(t, h.Held(now.Add(200*time.Millisecond)))
}

func TestHoldTrackerSecondTap(t *testing.T) {
	h := newTestHold()
	t0 := time.Unix(0, 0)

	assert.True(t, h.Press(t0))
	second := t0.Add(300 * time.Millisecond)
	assert.False(t, h.Press(second))

	assert.False(t, h.Tapped(second.Add(100*time.Millisecond)), "still inside the repeat window")
	assert.True(t, h.Tapped(second.Add(130*time.Millisecond)))
	assert.False(t, h.Tapped(second.Add(150*time.Millisecond)), "reported once")
	assert.True(t, h.Held(second.Add(500*time.Millisecond)), "the tap restarts the initial window")
}

func TestHoldTrackerPressAfterExpiry(t *testing.T) {
	h := newTestHold()
	t0 := time.Unix(0, 0)

	h.Press(t0)
	assert.True(t, h.Press(t0.Add(time.Second)))
}
