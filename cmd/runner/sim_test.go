package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimReportsMaxAirInSeconds(t *testing.T) {
	// Keep user and local config files out of the run.
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	flagSeed, flagTicks, flagFPS = 42, 30, 60
	flagConfig, flagDifficulty = "", ""

	var buf bytes.Buffer
	simCmd.SetOut(&buf)
	t.Cleanup(func() { simCmd.SetOut(nil) })

	require.NoError(t, runSim(simCmd, nil))

	out := buf.String()
	assert.Contains(t, out, "seed:       42\n")
	assert.Regexp(t, `max air:    \d+\.\d{2}s at 60 ticks/s\n`, out)
	assert.NotContains(t, out, " ticks\n")
}
