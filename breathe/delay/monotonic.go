package delay

import (
	"math"
	"time"
)

// HostTicksPerMicrosecond is the tick rate of Monotonic: one tick per
// nanosecond.
const HostTicksPerMicrosecond = 1000

// Monotonic emulates a countdown timer on the Go monotonic clock. Expired
// spins on time.Now, so a waiting goroutine keeps its thread busy exactly
// like the hardware poll does.
type Monotonic struct {
	deadline time.Time
	running  bool
}

func (m *Monotonic) Start(ticks uint32) {
	m.deadline = time.Now().Add(time.Duration(ticks) * time.Nanosecond)
	m.running = true
}

func (m *Monotonic) Expired() bool {
	return !m.running || !time.Now().Before(m.deadline)
}

func (m *Monotonic) Stop() { m.running = false }

// NewHost returns a Provider backed by the monotonic clock, for running the
// breathing loop on a Linux board or in tests.
func NewHost() *Provider {
	return New(&Monotonic{}, HostTicksPerMicrosecond, math.MaxUint32)
}
