// Package leds adapts digital output lines to the blink/breathe pair driven
// by the breathing controller.
//
// Back-ends are selected by build tags:
//
//   - rp2040, rp2350: Pin wraps a TinyGo machine.Pin. Set writes the SIO
//     GPIO_OUT_SET/CLR alias registers and is atomic.
//   - pico_w: WirelessLED drives the onboard LED behind the CYW43439 chip.
//     Each write is a bus transaction and is not atomic against a second
//     writer.
//   - linux: OpenLinux opens sysfs GPIO lines through ecc1/gpio. Each write
//     touches only that line's value file.
package leds

// Line is a single digital output. true means active (LED lit).
// Physical pins are taken as active-high; wrap with ActiveLow to invert.
type Line interface {
	// ConfigureOutput makes the line an output at the given level.
	ConfigureOutput(active bool)
	Set(active bool)
}

type activeLow struct{ l Line }

// ActiveLow returns a Line that is active when l is driven low.
func ActiveLow(l Line) Line { return activeLow{l: l} }

func (a activeLow) ConfigureOutput(active bool) { a.l.ConfigureOutput(!active) }
func (a activeLow) Set(active bool)             { a.l.Set(!active) }

// Pair is the blink and breathe lines as one set of outputs.
type Pair struct {
	Blink   Line
	Breathe Line
}

// InitOutputs configures both lines as outputs with both LEDs dark.
func (p Pair) InitOutputs() {
	p.Blink.ConfigureOutput(false)
	p.Breathe.ConfigureOutput(false)
}

func (p Pair) SetBlink(active bool)   { p.Blink.Set(active) }
func (p Pair) SetBreathe(active bool) { p.Breathe.Set(active) }

// Off turns both LEDs dark.
func (p Pair) Off() {
	p.Blink.Set(false)
	p.Breathe.Set(false)
}
