//go:build rp2040 || rp2350

package leds

import "machine"

// Pin is an RP2 GPIO pin.
type Pin struct {
	machine.Pin
}

func (p Pin) ConfigureOutput(active bool) {
	p.Pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	p.Pin.Set(active)
}

func (p Pin) Set(active bool) { p.Pin.Set(active) }
