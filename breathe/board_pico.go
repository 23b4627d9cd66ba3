//go:build (rp2040 || rp2350) && !pico_w

package main

import (
	"log/slog"

	"github.com/harveysanders/picobreathe/breathe/leds"
)

func blinkLine(*slog.Logger) (leds.Line, error) {
	return leds.Pin{Pin: blinkPin}, nil
}
