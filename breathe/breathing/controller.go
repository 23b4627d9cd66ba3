// Package breathing runs the two-LED breathing loop: a software PWM on the
// breathe line whose duty ramps linearly between dark and full, and a blink
// line that switches at each end of the ramp.
//
// With DefaultConfig a ramp takes 255 × 15 × 500µs ≈ 1.91s, so the blink
// line is a square wave of about 3.83s, lit while the breathe LED dims.
// The blink period follows from the constants (see Config.BlinkPeriod); it
// is not a fixed one second.
package breathing

import (
	"log/slog"
)

// Outputs is the pair of digital lines the controller drives.
//
// Implementations differ in atomicity: a set/clear register write (RP2 SIO,
// STM32 BSRR) leaves other pins of the port untouched, while a
// read-modify-write of the output register does not. This only matters if
// a second execution context ever writes the same port.
type Outputs interface {
	// InitOutputs makes both lines outputs, driven inactive. It is called
	// once before the loop starts.
	InitOutputs()
	SetBlink(active bool)
	SetBreathe(active bool)
}

// Delayer blocks the caller for a number of microseconds.
type Delayer interface {
	Microseconds(us uint32)
}

// Controller owns the breathing state and is the only thing that mutates it.
type Controller struct {
	cfg   Config
	out   Outputs
	delay Delayer
	state State

	// OnReverse, when set, is called after the blink line has been switched
	// at a brightness extremum. It runs inside the PWM loop, so anything
	// slow here stretches one PWM cycle.
	OnReverse func(Event)
	// Logger receives a debug record at each reversal. Nil disables logging.
	Logger *slog.Logger
}

// New returns a Controller in the initial state.
func New(cfg Config, out Outputs, delay Delayer) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controller{
		cfg:   cfg,
		out:   out,
		delay: delay,
		state: InitialState(),
	}, nil
}

// State returns a copy of the current state.
func (c *Controller) State() State { return c.state }

// Config returns the controller's timing constants.
func (c *Controller) Config() Config { return c.cfg }

// Cycle emits one PWM cycle at the current brightness and then advances the
// state. A zero-length on or off phase is skipped entirely.
func (c *Controller) Cycle() Event {
	on, off := c.cfg.Duty(c.state.Brightness)
	if on > 0 {
		c.out.SetBreathe(true)
		c.delay.Microseconds(on)
	}
	if off > 0 {
		c.out.SetBreathe(false)
		c.delay.Microseconds(off)
	}

	var ev Event
	c.state, ev = c.state.Advance(c.cfg)
	if ev.Reversed {
		c.reverse(ev)
	}
	return ev
}

func (c *Controller) reverse(ev Event) {
	// Lit at the top, dark at the bottom.
	c.out.SetBlink(ev.State.Direction == Decreasing)
	if c.Logger != nil {
		c.Logger.Debug("breathe:reverse",
			slog.Int("brightness", ev.State.Brightness),
			slog.String("direction", ev.State.Direction.String()),
		)
	}
	if c.OnReverse != nil {
		c.OnReverse(ev)
	}
}

// Run initializes the outputs and cycles until done is closed. A nil done
// never fires, so Run(nil) never returns.
func (c *Controller) Run(done <-chan struct{}) {
	c.out.InitOutputs()
	for {
		select {
		case <-done:
			return
		default:
		}
		c.Cycle()
	}
}
