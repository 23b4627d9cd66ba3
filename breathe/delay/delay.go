// Package delay provides blocking microsecond, millisecond and second delays
// built on a hardware countdown timer.
//
// A delay busy-waits on the timer's expired flag, so the caller is
// unavailable for any other work until it returns. Millisecond and second
// delays are composed from repeated 1000µs waits rather than one long
// countdown, trading a little cumulative drift for a counter that never
// needs more than a millisecond of range.
//
// A Provider owns its Timer exclusively and is not reentrant. Nothing else
// may reprogram the timer while a delay is in progress.
package delay

import (
	"github.com/harveysanders/picobreathe/breathe/internal/mathx"
)

// Timer is a countdown counter that decrements from a loaded value at a
// fixed tick rate and raises a flag when it reaches zero.
type Timer interface {
	// Start loads ticks as the reload value, clears the current count and
	// enables counting.
	Start(ticks uint32)
	// Expired reports whether the count has reached zero since Start.
	Expired() bool
	// Stop disables the counter.
	Stop()
}

// Provider blocks the caller for calibrated durations using a Timer.
type Provider struct {
	timer         Timer
	ticksPerMicro uint32
	maxTicks      uint32
}

// New returns a Provider over t. ticksPerMicro is the timer's tick rate in
// ticks per microsecond; 0 means the clock is unknown and is treated as 1,
// which leaves every delay off by a fixed factor instead of failing.
// maxTicks is the largest value the counter can be loaded with.
func New(t Timer, ticksPerMicro, maxTicks uint32) *Provider {
	if ticksPerMicro == 0 {
		ticksPerMicro = 1
	}
	return &Provider{
		timer:         t,
		ticksPerMicro: ticksPerMicro,
		maxTicks:      maxTicks,
	}
}

// Ticks returns the counter value a request for us microseconds loads,
// clamped to the counter's range.
func (p *Provider) Ticks(us uint32) uint32 {
	ticks := uint64(us) * uint64(p.ticksPerMicro)
	return uint32(mathx.Min(ticks, uint64(p.maxTicks)))
}

// MaxMicroseconds is the longest request that is not clamped.
func (p *Provider) MaxMicroseconds() uint32 {
	return p.maxTicks / p.ticksPerMicro
}

// Microseconds blocks for us microseconds. Requests longer than
// MaxMicroseconds are silently shortened to the counter's maximum.
// A zero request returns without touching the timer.
func (p *Provider) Microseconds(us uint32) {
	ticks := p.Ticks(us)
	if ticks == 0 {
		return
	}
	p.timer.Start(ticks)
	for !p.timer.Expired() {
	}
	p.timer.Stop()
}

// Milliseconds blocks for ms milliseconds.
func (p *Provider) Milliseconds(ms uint32) {
	for ; ms > 0; ms-- {
		p.Microseconds(1000)
	}
}

// Seconds blocks for s seconds.
func (p *Provider) Seconds(s uint32) {
	for ; s > 0; s-- {
		p.Milliseconds(1000)
	}
}
