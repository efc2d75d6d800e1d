package runner

import (
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rapid-runner/internal/config"
	"github.com/vovakirdan/rapid-runner/internal/core"
)

// MaxFrameDelta caps the elapsed time fed to one tick, in seconds.
const MaxFrameDelta = 1.0 / 30.0

const (
	initialOverflow = 5  // Extra platforms the initial population may add past max_on_screen
	minInitialCount = 3  // Below this a failed placement is replaced by a safe platform
	safeGapMargin   = 50 // Safe platform gap beyond min_gap_x
	safeWidthMargin = 30 // Safe platform width beyond min_width
)

// Phase is the session's top-level state.
type Phase int

const (
	PhaseTitle Phase = iota
	PhaseRunning
	PhaseOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseTitle:
		return "title"
	case PhaseRunning:
		return "running"
	case PhaseOver:
		return "over"
	default:
		return "unknown"
	}
}

// Input is the level-triggered input state for one tick.
type Input struct {
	JumpHeld bool
}

// PlayerView is a snapshot of the player for rendering.
type PlayerView struct {
	Box      core.Box
	Origin   core.Point
	Pose     Pose
	PoseName PoseName
	Frame    int
	Dashing  bool
	State    MotionState
	Velocity float64
}

// Frame is a read-only snapshot of the session after a tick.
type Frame struct {
	Phase     Phase
	Paused    bool
	Score     int
	Speed     float64 // Effective scroll speed, including the dash bonus
	Player    PlayerView
	Platforms []Platform
}

// DisplayScore returns the score as shown to the player.
func (f Frame) DisplayScore() int {
	return f.Score / 10
}

// Option configures a Session.
type Option func(*Session)

// WithSeed fixes the RNG seed. Zero means seed from the clock.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.seed = seed }
}

// WithLogger sets the logger for reset and generator diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithDifficulty replaces the difficulty manager built from the config.
func WithDifficulty(dm *config.DifficultyManager) Option {
	return func(s *Session) {
		if dm != nil {
			s.difficulty = dm
		}
	}
}

// Session owns all mutable game state: the player, the platform set, the
// generator and the score. It is not safe for concurrent use.
type Session struct {
	cfg        config.RunnerConfig
	log        *log.Logger
	seed       int64
	rng        *rand.Rand
	poses      *PoseTable
	gen        *Generator
	difficulty *config.DifficultyManager

	player    *Player
	platforms []*Platform
	last      *Platform

	phase      Phase
	paused     bool
	score      int
	ticks      int
	baseSpeed  float64
	speed      float64
	maxAir     float64
	wasPressed bool
	resets     int
}

// NewSession validates cfg and builds a session on the title screen.
func NewSession(cfg config.RunnerConfig, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{
		cfg:        cfg,
		log:        log.New(io.Discard),
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.seed == 0 {
		s.seed = time.Now().UnixNano()
	}
	s.rng = rand.New(rand.NewSource(s.seed))
	s.poses = BuildPoseTable(BodyProportions{
		Width:      cfg.Player.Width,
		Height:     cfg.Player.Height,
		DrawWidth:  cfg.Player.Width + cfg.Player.DrawPadX,
		DrawHeight: cfg.Player.Height + cfg.Player.DrawPadY,
	})
	s.gen = NewGenerator(cfg, s.rng)
	s.maxAir = MaxAirTime(cfg.Physics, cfg.Platforms)

	s.build()
	s.phase = PhaseTitle
	return s, nil
}

// Reset starts a new run: fresh player, starting platform and initial
// platform population.
func (s *Session) Reset() {
	s.build()
	s.phase = PhaseRunning
	s.resets++
	s.log.Debug("session reset",
		"run", s.resets,
		"platforms", len(s.platforms),
		"max_air", s.maxAir,
		"speed", s.baseSpeed)
}

// build lays out the world for a new run.
func (s *Session) build() {
	cfg := s.cfg
	s.score = 0
	s.ticks = 0
	s.paused = false
	s.wasPressed = false
	s.baseSpeed = s.difficulty.StartSpeed(cfg.Platforms.StartSpeed)
	s.speed = s.baseSpeed
	s.platforms = s.platforms[:0]

	s.player = NewPlayer(cfg, s.poses)
	pb := s.player.Box()
	startW := cfg.Platforms.StartWidth
	start := NewPlatform(pb.X+pb.W/2-startW/2, cfg.Player.StartY+cfg.Player.StartDrop, startW, cfg, s.rng)
	s.add(start)
	s.player.PlaceOn(start)

	limit := cfg.Screen.Width + cfg.Platforms.MaxGapX*1.5
	for s.last.Right() < limit {
		pl := s.gen.Next(s.last, s.baseSpeed, s.maxAir)
		switch {
		case s.accept(pl):
			s.add(NewPlatform(pl.X, pl.Y, pl.Width, cfg, s.rng))
		case len(s.platforms) < minInitialCount:
			s.log.Debug("initial placement rejected, adding safe platform", "x", pl.X)
			s.add(NewPlatform(
				s.last.Right()+cfg.Platforms.MinGapX+safeGapMargin,
				s.gen.clampY(s.last.Y),
				cfg.Platforms.MinWidth+safeWidthMargin,
				cfg, s.rng))
		default:
			s.log.Debug("initial population stopped early", "platforms", len(s.platforms))
			return
		}
		if len(s.platforms) > cfg.Platforms.MaxOnScreen+initialOverflow {
			return
		}
	}
}

// accept applies the sanity check on a placement's horizontal position.
func (s *Session) accept(pl Placement) bool {
	return pl.X > s.last.Right()+s.cfg.Platforms.MinGapX/2
}

func (s *Session) add(p *Platform) {
	s.platforms = append(s.platforms, p)
	s.last = p
}

// Tick advances the session by one frame. dt is the elapsed time in seconds
// and is capped at MaxFrameDelta. It reports whether the world changed.
func (s *Session) Tick(in Input, dt float64) (Frame, bool) {
	if math.IsNaN(dt) || dt < 0 {
		dt = 0
	}
	dt = math.Min(dt, MaxFrameDelta)

	pressed := in.JumpHeld && !s.wasPressed
	s.wasPressed = in.JumpHeld

	if s.phase != PhaseRunning {
		if pressed {
			s.Reset()
			s.wasPressed = true
			return s.Frame(), true
		}
		return s.Frame(), false
	}
	if s.paused {
		return s.Frame(), false
	}

	if pressed {
		s.player.Jump()
	}
	if !in.JumpHeld && s.player.HoldingJump() {
		s.player.ReleaseJump()
	}

	pc := s.cfg.Platforms
	s.baseSpeed += s.difficulty.SpeedIncrease(pc.SpeedIncrease, s.score, s.ticks) * dt * ReachTickRate
	s.speed = s.baseSpeed
	if s.player.Dashing() {
		s.speed += s.cfg.Physics.DashSpeedBonus
	}

	s.player.Update(s.platforms)
	for _, p := range s.platforms {
		p.Update(s.speed)
	}
	s.removeOffscreen()
	s.spawn()

	s.score++
	s.ticks++

	if s.player.Box().Y > s.cfg.Screen.Height+s.cfg.Player.Height {
		s.phase = PhaseOver
		s.log.Debug("player fell", "score", s.score/10, "ticks", s.ticks)
	}

	return s.Frame(), true
}

func (s *Session) removeOffscreen() {
	kept := s.platforms[:0]
	for _, p := range s.platforms {
		if !p.ShouldRemove() {
			kept = append(kept, p)
		}
	}
	for i := len(kept); i < len(s.platforms); i++ {
		s.platforms[i] = nil
	}
	s.platforms = kept
}

func (s *Session) spawn() {
	pc := s.cfg.Platforms
	if s.last == nil || s.last.X >= s.cfg.Screen.Width+pc.MaxGapX || len(s.platforms) >= pc.MaxOnScreen {
		return
	}

	pl := s.gen.Next(s.last, s.speed, s.maxAir)
	if pl.Fallback {
		s.log.Debug("generator fallback", "err", s.gen.LastError(), "x", pl.X, "y", pl.Y)
	} else if pl.Recovered {
		s.log.Debug("generator recovered empty window", "y", pl.Y)
	}
	if s.accept(pl) {
		s.add(NewPlatform(pl.X, pl.Y, pl.Width, s.cfg, s.rng))
	}
}

// TogglePause pauses or resumes a running session.
func (s *Session) TogglePause() {
	if s.phase == PhaseRunning {
		s.paused = !s.paused
	}
}

// Frame returns a snapshot of the current state.
func (s *Session) Frame() Frame {
	plats := make([]Platform, len(s.platforms))
	for i, p := range s.platforms {
		plats[i] = *p
	}
	return Frame{
		Phase:     s.phase,
		Paused:    s.paused,
		Score:     s.score,
		Speed:     s.speed,
		Player:    s.playerView(),
		Platforms: plats,
	}
}

func (s *Session) playerView() PlayerView {
	p := s.player
	return PlayerView{
		Box:      p.Box(),
		Origin:   p.DrawOrigin(),
		Pose:     p.Pose(),
		PoseName: p.PoseName(),
		Frame:    p.Frame(),
		Dashing:  p.Dashing(),
		State:    p.MotionState(),
		Velocity: p.Velocity(),
	}
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Paused reports whether a running session is paused.
func (s *Session) Paused() bool { return s.paused }

// Seed returns the RNG seed in use.
func (s *Session) Seed() int64 { return s.seed }

// MaxAirTime returns the air-time estimate the generator uses.
func (s *Session) MaxAirTime() float64 { return s.maxAir }

// BaseSpeed returns the scroll speed without the dash bonus.
func (s *Session) BaseSpeed() float64 { return s.baseSpeed }

// Config returns the session's configuration.
func (s *Session) Config() config.RunnerConfig { return s.cfg }

// Stats returns the generator's outcome counters.
func (s *Session) Stats() GeneratorStats { return s.gen.Stats() }

// Player returns the live player. Callers must not mutate it.
func (s *Session) Player() *Player { return s.player }

// Platforms returns the live platform set in creation order.
// Callers must not mutate it.
func (s *Session) Platforms() []*Platform { return s.platforms }
