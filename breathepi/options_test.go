//go:build linux && !tinygo

package main

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harveysanders/picobreathe/breathe/breathing"
)

func TestParseOptionsDefaults(t *testing.T) {
	opts, err := parseOptions("breathepi", nil)
	require.NoError(t, err)

	assert.Equal(t, breathing.DefaultConfig(), opts.breathe)
	assert.Equal(t, defaultBlinkPin, opts.pins.BlinkPin)
	assert.Equal(t, defaultBreathePin, opts.pins.BreathePin)
	assert.False(t, opts.pins.BlinkActiveLow)
	assert.Equal(t, slog.LevelInfo, opts.logLevel)
}

func TestParseOptionsOverrides(t *testing.T) {
	opts, err := parseOptions("breathepi", []string{
		"--blink-pin", "17",
		"--breathe-pin=27",
		"--blink-active-low",
		"--cycle-us", "1000",
		"--update-every", "5",
		"--step", "3",
		"-l", "debug",
	})
	require.NoError(t, err)

	assert.Equal(t, 17, opts.pins.BlinkPin)
	assert.Equal(t, 27, opts.pins.BreathePin)
	assert.True(t, opts.pins.BlinkActiveLow)
	assert.Equal(t, uint32(1000), opts.breathe.CycleLength)
	assert.Equal(t, 5, opts.breathe.UpdateEvery)
	assert.Equal(t, 3, opts.breathe.Step)
	assert.Equal(t, 255, opts.breathe.MaxBrightness)
	assert.Equal(t, slog.LevelDebug, opts.logLevel)
}

func TestParseOptionsRejects(t *testing.T) {
	cases := [][]string{
		{"--level", "loud"},
		{"--blink-pin", "5", "--breathe-pin", "5"},
		{"--step", "0"},
		{"--cycle-us", "0"},
		{"--no-such-flag"},
	}
	for _, args := range cases {
		_, err := parseOptions("breathepi", args)
		assert.Error(t, err, "args %v", args)
	}
}
