package breathing

import (
	"errors"
	"time"
)

// Config holds the fixed timing constants of the breathing effect.
type Config struct {
	// CycleLength is the software PWM period in microseconds.
	CycleLength uint32
	// MaxBrightness is the duty-cycle denominator and the upper brightness bound.
	MaxBrightness int
	// UpdateEvery is the number of PWM cycles between brightness steps.
	UpdateEvery int
	// Step is the brightness change per update.
	Step int
}

// DefaultConfig returns a 500µs PWM cycle with 256 brightness levels,
// stepping by one level every 15 cycles.
func DefaultConfig() Config {
	return Config{
		CycleLength:   500,
		MaxBrightness: 255,
		UpdateEvery:   15,
		Step:          1,
	}
}

// Validate reports the first field that cannot drive the loop.
func (c Config) Validate() error {
	switch {
	case c.CycleLength == 0:
		return errors.New("breathing: cycle length must be positive")
	case c.MaxBrightness <= 0:
		return errors.New("breathing: max brightness must be positive")
	case c.UpdateEvery <= 0:
		return errors.New("breathing: update period must be positive")
	case c.Step <= 0:
		return errors.New("breathing: step must be positive")
	case c.Step > c.MaxBrightness:
		return errors.New("breathing: step exceeds max brightness")
	}
	return nil
}

// Duty splits one PWM cycle into on and off times for brightness b.
// b is clamped to [0, MaxBrightness]; on+off always equals CycleLength.
func (c Config) Duty(b int) (on, off uint32) {
	b = clampBrightness(b, c.MaxBrightness)
	on = uint32(uint64(b) * uint64(c.CycleLength) / uint64(c.MaxBrightness))
	return on, c.CycleLength - on
}

// HalfPeriod is the time one ramp from a bound to the other takes.
func (c Config) HalfPeriod() time.Duration {
	updates := c.MaxBrightness / c.Step
	if c.MaxBrightness%c.Step != 0 {
		// The last step is clamped onto the bound.
		updates++
	}
	return time.Duration(updates*c.UpdateEvery) * time.Duration(c.CycleLength) * time.Microsecond
}

// BlinkPeriod is the period of the blink LED: it toggles once at each
// brightness extremum, so it is lit for one half period and dark for the
// next.
func (c Config) BlinkPeriod() time.Duration {
	return 2 * c.HalfPeriod()
}
