package tui

import (
	"sort"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/rapid-runner/internal/core"
	"github.com/vovakirdan/rapid-runner/internal/games/runner"
)

type timedMsg struct {
	at  time.Duration
	msg tea.Msg
}

// heldSpace schedules one space press at zero, OS autorepeat every 30ms
// from 500ms, and ticks every 16ms, all up to length.
func heldSpace(t0 time.Time, length time.Duration) []timedMsg {
	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	msgs := []timedMsg{{0, space}}
	for at := 500 * time.Millisecond; at < length; at += 30 * time.Millisecond {
		msgs = append(msgs, timedMsg{at, space})
	}
	for at := 16 * time.Millisecond; at < length; at += 16 * time.Millisecond {
		msgs = append(msgs, timedMsg{at, TickMsg(t0.Add(at))})
	}
	sort.SliceStable(msgs, func(i, j int) bool { return msgs[i].at < msgs[j].at })
	return msgs
}

func TestModelHeldStartKeyNeverJumps(t *testing.T) {
	g := runner.New()
	m := NewModel(g, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 42}, Options{})
	m.Init()
	t0 := time.Unix(100, 0)

	over := false
	for _, tm := range heldSpace(t0, 3*time.Second) {
		switch msg := tm.msg.(type) {
		case tea.KeyMsg:
			m, _ = m.handleKeyModel(t, msg, t0.Add(tm.at))
		default:
			m = update(t, m, msg)
			s := g.Session()
			require.NotNil(t, s)
			require.NotEqual(t, runner.PhaseTitle, s.Phase(), "at %v", tm.at)
			if over {
				// Holding the key through game over does not restart.
				require.Equal(t, runner.PhaseOver, s.Phase(), "at %v", tm.at)
			}
			over = s.Phase() == runner.PhaseOver

			p := s.Player()
			assert.GreaterOrEqual(t, p.Velocity(), 0.0, "held start key produced a jump at %v", tm.at)
			assert.False(t, p.HasBoosted(), "at %v", tm.at)
		}
	}
}

func TestModelHoldSurvivesGameOver(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g)
	t0 := time.Unix(100, 0)

	ticks := 0
	for _, tm := range heldSpace(t0, 1500*time.Millisecond) {
		switch msg := tm.msg.(type) {
		case tea.KeyMsg:
			m, _ = m.handleKeyModel(t, msg, t0.Add(tm.at))
		default:
			if ticks == 20 {
				g.state.GameOver = true
			}
			m = update(t, m, msg)
			ticks++
		}
	}

	require.NotEmpty(t, g.held)
	assert.NotContains(t, g.held, false, "a key held through game over stays one press")
}
