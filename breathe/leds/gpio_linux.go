//go:build linux && !tinygo

package leds

import (
	"log/slog"

	"github.com/ecc1/gpio"
	"github.com/pkg/errors"
)

// sysfsLine is a sysfs GPIO output. Polarity is handled by the kernel, so
// the level written is already the logical one.
type sysfsLine struct {
	name   string
	pin    gpio.OutputPin
	logger *slog.Logger
}

func (l *sysfsLine) ConfigureOutput(active bool) { l.Set(active) }

func (l *sysfsLine) Set(active bool) {
	if err := l.pin.Write(active); err != nil {
		l.logger.Error("led:write-failed", slog.String("line", l.name), slog.String("err", err.Error()))
	}
}

// LinuxConfig selects the GPIO numbers and polarity of the two lines.
type LinuxConfig struct {
	BlinkPin         int
	BreathePin       int
	BlinkActiveLow   bool
	BreatheActiveLow bool
}

// OpenLinux exports and configures both lines as dark outputs.
func OpenLinux(cfg LinuxConfig, logger *slog.Logger) (Pair, error) {
	blink, err := gpio.Output(cfg.BlinkPin, cfg.BlinkActiveLow, false)
	if err != nil {
		return Pair{}, errors.Wrap(err, "Output[blink] failed")
	}
	breathe, err := gpio.Output(cfg.BreathePin, cfg.BreatheActiveLow, false)
	if err != nil {
		return Pair{}, errors.Wrap(err, "Output[breathe] failed")
	}
	return Pair{
		Blink:   &sysfsLine{name: "blink", pin: blink, logger: logger},
		Breathe: &sysfsLine{name: "breathe", pin: breathe, logger: logger},
	}, nil
}
