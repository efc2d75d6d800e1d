package runner

import (
	"github.com/vovakirdan/rapid-runner/internal/config"
	"github.com/vovakirdan/rapid-runner/internal/core"
)

// MotionState is the player's coarse physics state.
type MotionState int

const (
	Grounded MotionState = iota
	Ascending
	Descending
)

// String returns the state name.
func (s MotionState) String() string {
	switch s {
	case Grounded:
		return "grounded"
	case Ascending:
		return "ascending"
	case Descending:
		return "descending"
	default:
		return "unknown"
	}
}

// Player is the runner. Its horizontal position never changes; the world
// scrolls past it. Negative vertical velocity is upward.
type Player struct {
	box core.Box
	vy  float64

	onGround    bool
	holdingJump bool
	canBoost    bool
	hasBoosted  bool
	dashing     bool
	dashTimer   int

	pose       PoseName
	frame      int
	frameTimer int

	physics   config.RunnerPhysics
	animSpeed int
	padX      float64
	padY      float64
	poses     *PoseTable
}

// NewPlayer creates a player at the configured start position, airborne and
// at rest.
func NewPlayer(cfg config.RunnerConfig, poses *PoseTable) *Player {
	return &Player{
		box: core.Box{
			X: cfg.Player.StartX,
			Y: cfg.Player.StartY,
			W: cfg.Player.Width,
			H: cfg.Player.Height,
		},
		pose:      PoseRun,
		physics:   cfg.Physics,
		animSpeed: cfg.Player.AnimSpeed,
		padX:      cfg.Player.DrawPadX,
		padY:      cfg.Player.DrawPadY,
		poses:     poses,
	}
}

// Jump starts a jump when grounded, or fires the one-time air boost.
// It reports whether the press had any effect.
func (p *Player) Jump() bool {
	if p.onGround {
		p.vy = p.physics.JumpStrength
		p.onGround = false
		p.holdingJump = true
		p.canBoost = true
		p.hasBoosted = false
		p.dashing = false
		p.dashTimer = 0
		return true
	}

	if p.canBoost && !p.hasBoosted {
		p.vy = p.physics.BoostStrength
		p.hasBoosted = true
		p.canBoost = false
		p.holdingJump = true
		p.dashing = true
		p.dashTimer = p.physics.DashDurationFrames
		return true
	}

	return false
}

// ReleaseJump ends a held jump so gravity cuts the ascent short.
func (p *Player) ReleaseJump() {
	if !p.onGround {
		p.holdingJump = false
	}
}

// Update advances one tick: dash timer, gravity, movement, collision and pose.
func (p *Player) Update(platforms []*Platform) {
	if p.dashing {
		p.dashTimer--
		if p.dashTimer <= 0 {
			p.dashing = false
			p.dashTimer = 0
		}
	}

	g := p.physics.Gravity
	if p.vy < 0 && !p.holdingJump {
		g *= p.physics.JumpCutoffMultiplier
	}
	p.vy += g
	if p.vy > p.physics.MaxFallSpeed {
		p.vy = p.physics.MaxFallSpeed
	}
	p.box.Y += p.vy

	p.onGround = false
	p.collide(platforms)
	p.choosePose()
}

// collide resolves the first platform the player overlaps, using the
// previous vertical extent to tell a landing from a head bonk.
func (p *Player) collide(platforms []*Platform) {
	for _, plat := range platforms {
		pb := plat.Box()
		if !p.box.Overlaps(pb) {
			continue
		}

		if p.vy >= 0 && p.box.Bottom()-p.vy <= pb.Y+1 {
			p.land(pb.Y)
			return
		}
		if p.vy < 0 && p.box.Y-p.vy >= pb.Bottom()-1 {
			p.box.Y = pb.Bottom()
			p.vy = 0
			p.holdingJump = false
			return
		}
	}
}

func (p *Player) land(top float64) {
	p.box.Y = top - p.box.H
	p.vy = 0
	p.onGround = true
	p.hasBoosted = false
	p.canBoost = true
	p.holdingJump = false
	p.dashing = false
	p.dashTimer = 0
}

// PlaceOn stands the player on top of the platform at rest.
func (p *Player) PlaceOn(plat *Platform) {
	p.land(plat.Y)
	p.SetPose(PoseRun)
}

func (p *Player) choosePose() {
	switch {
	case p.dashing:
		p.SetPose(PoseDash)
	case !p.onGround && p.vy < 0:
		p.SetPose(PoseJumpAscend)
	case !p.onGround:
		p.SetPose(PoseJumpDescend)
	default:
		p.SetPose(PoseRun)
		p.frameTimer++
		if p.frameTimer >= p.animSpeed {
			p.frameTimer = 0
			if n := p.poses.Frames(PoseRun); n > 0 {
				p.frame = (p.frame + 1) % n
			}
		}
	}
}

// SetPose switches animation, restarting it only when the name changes.
func (p *Player) SetPose(name PoseName) {
	if p.pose == name {
		return
	}
	p.pose = name
	p.frame = 0
	p.frameTimer = 0
}

// Box returns the collision box.
func (p *Player) Box() core.Box { return p.box }

// Velocity returns the vertical velocity in px per tick.
func (p *Player) Velocity() float64 { return p.vy }

// OnGround reports whether the player stands on a platform.
func (p *Player) OnGround() bool { return p.onGround }

// Dashing reports whether the dash pose is showing.
func (p *Player) Dashing() bool { return p.dashing }

// DashTimer returns the ticks left in the dash pose.
func (p *Player) DashTimer() int { return p.dashTimer }

// CanBoost reports whether the air boost is still available.
func (p *Player) CanBoost() bool { return p.canBoost }

// HasBoosted reports whether the boost was spent this airtime.
func (p *Player) HasBoosted() bool { return p.hasBoosted }

// HoldingJump reports whether the jump is held since takeoff.
func (p *Player) HoldingJump() bool { return p.holdingJump }

// PoseName returns the current animation pose.
func (p *Player) PoseName() PoseName { return p.pose }

// Frame returns the current animation frame index.
func (p *Player) Frame() int { return p.frame }

// Pose returns the current animation frame's polygons.
func (p *Player) Pose() Pose {
	pose, _ := p.poses.Lookup(p.pose, p.frame)
	return pose
}

// MotionState derives the coarse state from the flags and velocity.
func (p *Player) MotionState() MotionState {
	switch {
	case p.onGround:
		return Grounded
	case p.vy < 0:
		return Ascending
	default:
		return Descending
	}
}

// DrawOrigin returns the top-left of the drawing surface, which is centred
// on the collision box.
func (p *Player) DrawOrigin() core.Point {
	return core.Pt(p.box.X-p.padX/2, p.box.Y-p.padY/2)
}
