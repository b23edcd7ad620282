package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/san-kum/kinetic/internal/config"
)

func TestRunRealtime_StopsAtDurationCap(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.FrameRate = 120
	cfg.MaxDuration = 0.05

	eng, rec, err := runRealtime(cfg, zap.NewNop())
	require.NoError(t, err)

	maxFrames := int(cfg.MaxDuration*float64(cfg.FrameRate)*cfg.TimeScale) + 1
	assert.True(t, rec.Stopped())
	assert.False(t, rec.Settled(), "the cap must cut the run before the spring settles")
	assert.Equal(t, maxFrames, len(rec.Samples()))
	assert.Greater(t, eng.State().T, 0.0)
}

func TestRunHeadless_RecordsAndStops(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.MaxDuration = 2

	eng, rec, err := runHeadless(cfg, zap.NewNop())
	require.NoError(t, err)

	assert.True(t, rec.Stopped())
	assert.True(t, rec.Settled(), "the default spring settles well within two seconds")
	assert.NotEmpty(t, rec.Samples())
	assert.Less(t, eng.State().X.Magnitude(), 1.0)
}
