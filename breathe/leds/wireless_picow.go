//go:build pico_w

package leds

import (
	"errors"
	"log/slog"

	"github.com/soypat/cyw43439"
)

// onboardLEDGPIO is the CYW43439 GPIO wired to the Pico W's green LED.
const onboardLEDGPIO = 0

// WirelessLED is the Pico W onboard LED. It hangs off the wireless chip, not
// the RP2040, so every write goes over the chip's bus.
type WirelessLED struct {
	dev    *cyw43439.Device
	logger *slog.Logger
}

// NewWirelessLED brings up the CYW43439 so its GPIO can be driven.
func NewWirelessLED(logger *slog.Logger) (*WirelessLED, error) {
	dev := cyw43439.NewPicoWDevice()
	dev.SetLogger(logger)

	logger.Info("initializing pico W device...")
	if err := dev.Init(cyw43439.DefaultWifiConfig()); err != nil {
		return nil, errors.New("cyw43439 init:" + err.Error())
	}
	return &WirelessLED{dev: dev, logger: logger}, nil
}

func (w *WirelessLED) ConfigureOutput(active bool) { w.Set(active) }

// Set drives the LED. Bus errors are logged; the breathing loop has no error
// path to return them to.
func (w *WirelessLED) Set(active bool) {
	if err := w.dev.GPIOSet(onboardLEDGPIO, active); err != nil {
		w.logger.Error("led:gpio-set-failed", slog.String("err", err.Error()))
	}
}
