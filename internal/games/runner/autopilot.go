package runner

// Autopilot plays a session without a keyboard, for headless runs and soak
// tests. It jumps near the end of the current platform, holds the jump while
// climbing and spends the air boost when it is about to drop below the next
// platform.
type Autopilot struct {
	held bool
}

// Next returns the input for the coming tick.
func (a *Autopilot) Next(s *Session) Input {
	a.held = a.decide(s)
	return Input{JumpHeld: a.held}
}

func (a *Autopilot) decide(s *Session) bool {
	if s.Phase() != PhaseRunning {
		// Alternate so the session sees a press edge.
		return !a.held
	}

	p := s.Player()
	box := p.Box()
	var under, next *Platform
	for _, pl := range s.Platforms() {
		switch {
		case pl.X <= box.Right() && pl.Right() >= box.X:
			under = pl
		case pl.X > box.Right() && (next == nil || pl.X < next.X):
			next = pl
		}
	}

	switch {
	case p.OnGround():
		if under == nil {
			return false
		}
		return box.Right() >= under.Right()-2*box.W
	case p.Velocity() < 0:
		return a.held
	case p.CanBoost() && next != nil && box.Bottom() > next.Y:
		// Release first if still held, so the next tick is a fresh press.
		return !a.held
	}
	return false
}
