package breathing

import "github.com/harveysanders/picobreathe/breathe/internal/mathx"

// Direction is the sign of the next brightness step.
type Direction int8

const (
	Increasing Direction = 1
	Decreasing Direction = -1
)

func (d Direction) String() string {
	switch d {
	case Increasing:
		return "increasing"
	case Decreasing:
		return "decreasing"
	default:
		return "unknown"
	}
}

// State is the complete mutable state of the breathing loop.
type State struct {
	Brightness int
	Direction  Direction
	// Counter counts PWM cycles since the last brightness step.
	Counter int
}

// InitialState is the state at power-on: dark and rising.
func InitialState() State {
	return State{Brightness: 0, Direction: Increasing, Counter: 0}
}

// Event describes what one Advance did.
type Event struct {
	// Updated is set when the brightness was stepped.
	Updated bool
	// Reversed is set when the step hit a bound and flipped the direction.
	Reversed bool
	State    State
}

// Advance accounts for one emitted PWM cycle. Every UpdateEvery cycles the
// brightness moves one step; reaching MaxBrightness clamps and turns
// Decreasing, reaching 0 clamps and turns Increasing.
func (s State) Advance(c Config) (State, Event) {
	s.Counter++
	if s.Counter < c.UpdateEvery {
		return s, Event{State: s}
	}
	s.Counter = 0
	s.Brightness += int(s.Direction) * c.Step

	ev := Event{Updated: true}
	if s.Brightness >= c.MaxBrightness {
		s.Brightness = c.MaxBrightness
		s.Direction = Decreasing
		ev.Reversed = true
	} else if s.Brightness <= 0 {
		s.Brightness = 0
		s.Direction = Increasing
		ev.Reversed = true
	}
	ev.State = s
	return s, ev
}

func clampBrightness(b, hi int) int {
	return mathx.Clamp(b, 0, hi)
}
