package runner

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rapid-runner/internal/config"
)

func testConfig() config.RunnerConfig {
	return config.DefaultRunnerConfig()
}

func testPoses(cfg config.RunnerConfig) *PoseTable {
	return BuildPoseTable(BodyProportions{
		Width:      cfg.Player.Width,
		Height:     cfg.Player.Height,
		DrawWidth:  cfg.Player.Width + cfg.Player.DrawPadX,
		DrawHeight: cfg.Player.Height + cfg.Player.DrawPadY,
	})
}

func testPlatform(cfg config.RunnerConfig, x, y, w float64) *Platform {
	return NewPlatform(x, y, w, cfg, rand.New(rand.NewSource(1)))
}

// groundedPlayer returns a player standing on a wide floor under its start x.
func groundedPlayer(t *testing.T) (*Player, *Platform) {
	t.Helper()
	cfg := testConfig()
	p := NewPlayer(cfg, testPoses(cfg))
	floor := testPlatform(cfg, 100, 300, 200)
	p.PlaceOn(floor)
	require.True(t, p.OnGround())
	return p, floor
}

func assertBoostInvariant(t *testing.T, p *Player) {
	t.Helper()
	assert.False(t, p.CanBoost() && p.HasBoosted(), "canBoost and hasBoosted both true")
	if p.Dashing() {
		assert.Positive(t, p.DashTimer(), "dashing with an empty timer")
	}
}

func TestPlayerJumpFromGround(t *testing.T) {
	p, _ := groundedPlayer(t)

	require.True(t, p.Jump())
	assert.Equal(t, -14.0, p.Velocity())
	assert.False(t, p.OnGround())
	assert.True(t, p.HoldingJump())
	assert.True(t, p.CanBoost())
	assert.False(t, p.HasBoosted())
	assert.False(t, p.Dashing())
	assertBoostInvariant(t, p)
}

func TestPlayerAirBoost(t *testing.T) {
	p, _ := groundedPlayer(t)
	require.True(t, p.Jump())
	p.ReleaseJump()

	require.True(t, p.Jump(), "boost while airborne")
	assert.Equal(t, -7.0, p.Velocity())
	assert.True(t, p.HasBoosted())
	assert.False(t, p.CanBoost())
	assert.True(t, p.HoldingJump(), "boost counts as a held jump")
	assert.True(t, p.Dashing())
	assert.Equal(t, 20, p.DashTimer())
	assertBoostInvariant(t, p)

	// A second boost is ignored and changes nothing.
	before := *p
	assert.False(t, p.Jump())
	assert.Equal(t, before, *p)
}

func TestPlayerDashLastsConfiguredTicks(t *testing.T) {
	p, _ := groundedPlayer(t)
	p.Jump()
	p.Jump()

	for i := 1; i < 20; i++ {
		p.Update(nil)
		require.True(t, p.Dashing(), "tick %d", i)
		assert.Equal(t, 20-i, p.DashTimer())
		assert.Equal(t, PoseDash, p.PoseName())
		assertBoostInvariant(t, p)
	}
	p.Update(nil)
	assert.False(t, p.Dashing())
	assert.Equal(t, 0, p.DashTimer())
}

func TestPlayerJumpCutoff(t *testing.T) {
	held, _ := groundedPlayer(t)
	held.Jump()
	held.Update(nil)
	assert.InDelta(t, -13.4, held.Velocity(), 1e-9)

	released, _ := groundedPlayer(t)
	released.Jump()
	released.ReleaseJump()
	assert.False(t, released.HoldingJump())
	released.Update(nil)
	assert.InDelta(t, -14+0.6*3, released.Velocity(), 1e-9)
}

func TestPlayerFallSpeedClamped(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg, testPoses(cfg))
	for i := 0; i < 100; i++ {
		p.Update(nil)
		assert.LessOrEqual(t, p.Velocity(), cfg.Physics.MaxFallSpeed)
	}
	assert.Equal(t, cfg.Physics.MaxFallSpeed, p.Velocity())
	assert.Equal(t, Descending, p.MotionState())
}

func TestPlayerLandsExactlyOnTop(t *testing.T) {
	cfg := testConfig()
	cfg.Player.StartY = 250
	p := NewPlayer(cfg, testPoses(cfg))
	floor := testPlatform(cfg, 100, 300, 200)
	platforms := []*Platform{floor}

	for i := 0; i < 30 && !p.OnGround(); i++ {
		p.Update(platforms)
	}
	require.True(t, p.OnGround())
	assert.Equal(t, 300.0, p.Box().Bottom())
	assert.Equal(t, 0.0, p.Velocity())
	assert.True(t, p.CanBoost())
	assert.False(t, p.HasBoosted())
	assert.Equal(t, Grounded, p.MotionState())

	// Standing still keeps the player snapped to the surface.
	for i := 0; i < 10; i++ {
		p.Update(platforms)
		assert.True(t, p.OnGround())
		assert.Equal(t, 300.0, p.Box().Bottom())
	}
}

func TestPlayerLandingClearsDash(t *testing.T) {
	p, floor := groundedPlayer(t)
	p.Jump()
	p.Jump()
	require.True(t, p.Dashing())

	for i := 0; i < 200 && !p.OnGround(); i++ {
		p.Update([]*Platform{floor})
	}
	require.True(t, p.OnGround())
	assert.False(t, p.Dashing())
	assert.Equal(t, 0, p.DashTimer())
	assert.False(t, p.HoldingJump())
	assert.True(t, p.CanBoost())
	assertBoostInvariant(t, p)
}

func TestPlayerHeadBonk(t *testing.T) {
	cfg := testConfig()
	p := NewPlayer(cfg, testPoses(cfg))
	floor := testPlatform(cfg, 100, 175, 200)
	ceiling := testPlatform(cfg, 100, 100, 200)
	p.PlaceOn(floor)
	require.Equal(t, 130.0, p.Box().Y)

	p.Jump()
	p.Update([]*Platform{floor, ceiling})

	assert.Equal(t, ceiling.Box().Bottom(), p.Box().Y, "top snapped to the ceiling's bottom")
	assert.Equal(t, 0.0, p.Velocity())
	assert.False(t, p.HoldingJump())
	assert.False(t, p.OnGround())
}

func TestPlayerReleaseOnGroundIsNoop(t *testing.T) {
	p, _ := groundedPlayer(t)
	before := *p
	p.ReleaseJump()
	assert.Equal(t, before, *p)
}

func TestPlayerPoseSelection(t *testing.T) {
	p, floor := groundedPlayer(t)
	platforms := []*Platform{floor}

	p.Update(platforms)
	assert.Equal(t, PoseRun, p.PoseName())

	p.Jump()
	p.Update(platforms)
	assert.Equal(t, PoseJumpAscend, p.PoseName())
	assert.Equal(t, Ascending, p.MotionState())

	for i := 0; i < 100 && p.Velocity() < 0; i++ {
		p.Update(nil)
	}
	assert.Equal(t, PoseJumpDescend, p.PoseName())

	p.Jump()
	p.Update(nil)
	assert.Equal(t, PoseDash, p.PoseName())
}

func TestPlayerRunCycle(t *testing.T) {
	p, floor := groundedPlayer(t)
	platforms := []*Platform{floor}

	for i := 0; i < 4; i++ {
		p.Update(platforms)
	}
	assert.Equal(t, 0, p.Frame())
	p.Update(platforms)
	assert.Equal(t, 1, p.Frame())

	for i := 0; i < 15; i++ {
		p.Update(platforms)
	}
	assert.Equal(t, 0, p.Frame(), "cycle wraps after four frames")

	p.SetPose(PoseRun)
	assert.Equal(t, 0, p.Frame())
	assert.Equal(t, 12, p.Pose().Len())
}

func TestPlayerDrawOrigin(t *testing.T) {
	p, _ := groundedPlayer(t)
	o := p.DrawOrigin()
	assert.Equal(t, p.Box().X-5, o.X)
	assert.Equal(t, p.Box().Y-5, o.Y)
}

func TestMotionStateString(t *testing.T) {
	assert.Equal(t, "grounded", Grounded.String())
	assert.Equal(t, "ascending", Ascending.String())
	assert.Equal(t, "descending", Descending.String())
	assert.Equal(t, "unknown", MotionState(9).String())
}
