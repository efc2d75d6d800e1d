package runner

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGenerator(seed int64) *Generator {
	return NewGenerator(testConfig(), rand.New(rand.NewSource(seed)))
}

func TestGeneratorReachableScenario(t *testing.T) {
	cfg := testConfig()
	ref := testPlatform(cfg, 100, 300, 150)

	for seed := int64(1); seed <= 200; seed++ {
		pl := newTestGenerator(seed).Next(ref, 4, 1.2)

		require.False(t, pl.Fallback, "seed %d", seed)
		assert.GreaterOrEqual(t, pl.X, 335.0, "seed %d", seed)
		assert.LessOrEqual(t, pl.X, 250.0+220.0, "seed %d", seed)
		assert.GreaterOrEqual(t, pl.Y, 50.0, "seed %d", seed)
		assert.LessOrEqual(t, pl.Y, 525.0, "seed %d", seed)
		assert.GreaterOrEqual(t, pl.Width, 90.0)
		assert.LessOrEqual(t, pl.Width, 160.0)
	}
}

func TestGeneratorChainStaysInBand(t *testing.T) {
	cfg := testConfig()
	gen := newTestGenerator(99)
	rng := rand.New(rand.NewSource(3))
	ref := testPlatform(cfg, 65, 320, 200)
	lo, hi := gen.ScreenBand()
	air := MaxAirTime(cfg.Physics, cfg.Platforms)

	for i := 0; i < 2000; i++ {
		speed := 4 + float64(i)*0.01
		pl := gen.Next(ref, speed, air)

		require.GreaterOrEqual(t, pl.X, ref.Right()+cfg.Platforms.MinGapX, "step %d", i)
		require.GreaterOrEqual(t, pl.Y, lo, "step %d", i)
		require.LessOrEqual(t, pl.Y, hi, "step %d", i)
		require.False(t, pl.Fallback)

		ref = NewPlatform(pl.X, pl.Y, pl.Width, cfg, rng)
	}
	assert.Equal(t, 2000, gen.Stats().Generated)
	assert.Zero(t, gen.Stats().Fallbacks)
}

func TestGeneratorDegenerateInputFallsBack(t *testing.T) {
	cfg := testConfig()
	ref := testPlatform(cfg, 100, 300, 150)

	tests := []struct {
		name   string
		speed  float64
		maxAir float64
	}{
		{"nan speed", math.NaN(), 1.2},
		{"zero speed", 0, 1.2},
		{"negative speed", -3, 1.2},
		{"infinite speed", math.Inf(1), 1.2},
		{"nan air time", 4, math.NaN()},
		{"zero air time", 4, 0},
		{"negative air time", 4, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gen := newTestGenerator(1)
			pl := gen.Next(ref, tc.speed, tc.maxAir)

			assert.True(t, pl.Fallback)
			assert.Equal(t, 250.0+85+20, pl.X)
			assert.Equal(t, 300.0, pl.Y)
			assert.Equal(t, 110.0, pl.Width)
			assert.ErrorIs(t, gen.LastError(), errDegenerate)
			assert.Equal(t, 1, gen.Stats().Fallbacks)
		})
	}
}

func TestGeneratorFallbackClampsY(t *testing.T) {
	cfg := testConfig()
	ref := testPlatform(cfg, 0, 590, 100)
	pl := newTestGenerator(1).Next(ref, math.NaN(), 1)
	assert.True(t, pl.Fallback)
	assert.Equal(t, 525.0, pl.Y)

	ref = testPlatform(cfg, 0, math.Inf(-1), 100)
	pl = newTestGenerator(1).Next(ref, 4, 1)
	assert.True(t, pl.Fallback)
	assert.Equal(t, 50.0, pl.Y)
}

func TestGeneratorNilReference(t *testing.T) {
	gen := newTestGenerator(1)
	pl := gen.Next(nil, 4, 1)
	assert.True(t, pl.Fallback)
	assert.Equal(t, 800.0, pl.X)
	assert.Equal(t, 300.0, pl.Y)
	assert.Error(t, gen.LastError())
}

func TestGeneratorInfiniteAirTime(t *testing.T) {
	cfg := testConfig()
	ref := testPlatform(cfg, 100, 300, 150)
	gen := newTestGenerator(5)

	for i := 0; i < 100; i++ {
		pl := gen.Next(ref, 4, math.Inf(1))
		assert.False(t, pl.Fallback)
		assert.LessOrEqual(t, pl.X-ref.Right(), cfg.Platforms.MaxGapX)
	}
	assert.NoError(t, gen.LastError())
}

func TestGeneratorShortReachWidensGap(t *testing.T) {
	cfg := testConfig()
	ref := testPlatform(cfg, 100, 300, 150)
	gen := newTestGenerator(8)

	// Reach 0.1 * 4 * 60 * 1.1 = 26.4 < min gap, so the gap range becomes [85, 102].
	for i := 0; i < 100; i++ {
		pl := gen.Next(ref, 4, 0.1)
		gap := pl.X - ref.Right()
		assert.GreaterOrEqual(t, gap, 85.0)
		assert.LessOrEqual(t, gap, 102.0)
	}
}

func TestGeneratorRecoversEmptyWindow(t *testing.T) {
	cfg := testConfig()

	t.Run("band around reference", func(t *testing.T) {
		ref := testPlatform(cfg, 100, 500, 150)
		gen := newTestGenerator(2)
		for i := 0; i < 50; i++ {
			pl := gen.Next(ref, 4, 1.2)
			require.True(t, pl.Recovered)
			assert.False(t, pl.Fallback)
			assert.GreaterOrEqual(t, pl.Y, 470.0)
			assert.LessOrEqual(t, pl.Y, 525.0)
		}
		assert.Equal(t, 50, gen.Stats().Recovered)
	})

	t.Run("mid screen last resort", func(t *testing.T) {
		ref := testPlatform(cfg, 100, 560, 150)
		gen := newTestGenerator(2)
		for i := 0; i < 50; i++ {
			pl := gen.Next(ref, 4, 1.2)
			require.True(t, pl.Recovered)
			assert.GreaterOrEqual(t, pl.Y, 250.0)
			assert.LessOrEqual(t, pl.Y, 350.0)
		}
	})
}

func TestGeneratorDeterministic(t *testing.T) {
	cfg := testConfig()
	ref := testPlatform(cfg, 100, 300, 150)
	a := newTestGenerator(11)
	b := newTestGenerator(11)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Next(ref, 4, 1.2), b.Next(ref, 4, 1.2))
	}
}

func TestMaxAirTime(t *testing.T) {
	cfg := testConfig()

	// Jump apex after 24 ticks, boost apex after 12, then a fall of
	// 6.94 + 135 + 25 px.
	assert.InDelta(t, 21.77, MaxAirTime(cfg.Physics, cfg.Platforms), 0.01)

	cfg.Physics.Gravity = 0
	assert.True(t, math.IsInf(MaxAirTime(cfg.Physics, cfg.Platforms), 1))

	cfg.Physics.Gravity = -1
	assert.True(t, math.IsInf(MaxAirTime(cfg.Physics, cfg.Platforms), 1))
}

func TestScreenBand(t *testing.T) {
	lo, hi := newTestGenerator(1).ScreenBand()
	assert.Equal(t, 50.0, lo)
	assert.Equal(t, 525.0, hi)
}
