//go:build pico_w

package main

import (
	"log/slog"

	"github.com/harveysanders/picobreathe/breathe/leds"
)

// On the Pico W the blink LED is the onboard one behind the wireless chip.
func blinkLine(logger *slog.Logger) (leds.Line, error) {
	led, err := leds.NewWirelessLED(logger)
	if err != nil {
		return nil, err
	}
	return led, nil
}
