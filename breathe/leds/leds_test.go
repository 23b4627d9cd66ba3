package leds

import (
	"testing"

	"github.com/harveysanders/picobreathe/breathe/breathing"
	"github.com/stretchr/testify/assert"
)

type fakeLine struct {
	configured bool
	levels     []bool
}

func (f *fakeLine) ConfigureOutput(active bool) {
	f.configured = true
	f.levels = append(f.levels, active)
}

func (f *fakeLine) Set(active bool) { f.levels = append(f.levels, active) }

func TestActiveLowInverts(t *testing.T) {
	raw := &fakeLine{}
	l := ActiveLow(raw)

	l.ConfigureOutput(false)
	l.Set(true)
	l.Set(false)

	assert.True(t, raw.configured)
	assert.Equal(t, []bool{true, false, true}, raw.levels)
}

func TestPairInitOutputsDrivesBothDark(t *testing.T) {
	blink, breathe := &fakeLine{}, &fakeLine{}
	p := Pair{Blink: ActiveLow(blink), Breathe: breathe}

	p.InitOutputs()

	assert.True(t, blink.configured)
	assert.True(t, breathe.configured)
	// The blink LED is active-low, so dark is a high pin.
	assert.Equal(t, []bool{true}, blink.levels)
	assert.Equal(t, []bool{false}, breathe.levels)
}

func TestPairRoutesLines(t *testing.T) {
	blink, breathe := &fakeLine{}, &fakeLine{}
	p := Pair{Blink: blink, Breathe: breathe}

	p.SetBreathe(true)
	p.SetBlink(true)
	p.SetBreathe(false)
	p.Off()

	assert.Equal(t, []bool{true, false}, blink.levels)
	assert.Equal(t, []bool{true, false, false}, breathe.levels)
}

var _ breathing.Outputs = Pair{}
