//go:build linux && !tinygo

package main

import (
	"log/slog"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/harveysanders/picobreathe/breathe/breathing"
	"github.com/harveysanders/picobreathe/breathe/leds"
)

const (
	defaultBlinkPin   = 23
	defaultBreathePin = 24
)

type options struct {
	pins     leds.LinuxConfig
	breathe  breathing.Config
	logLevel slog.Level
}

// parseOptions reads the command line into options and validates the
// breathing constants.
func parseOptions(name string, args []string) (options, error) {
	var opts options
	var levelFlag string
	var cycleUs uint32

	defaults := breathing.DefaultConfig()
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringVarP(&levelFlag, "level", "l", "info", "Set log level (debug|info|warn|error)")
	fs.IntVar(&opts.pins.BlinkPin, "blink-pin", defaultBlinkPin, "GPIO number of the blink LED")
	fs.IntVar(&opts.pins.BreathePin, "breathe-pin", defaultBreathePin, "GPIO number of the breathing LED")
	fs.BoolVar(&opts.pins.BlinkActiveLow, "blink-active-low", false, "Blink LED lights when the pin is low")
	fs.BoolVar(&opts.pins.BreatheActiveLow, "breathe-active-low", false, "Breathing LED lights when the pin is low")
	fs.Uint32Var(&cycleUs, "cycle-us", defaults.CycleLength, "Software PWM period in microseconds")
	fs.IntVar(&opts.breathe.UpdateEvery, "update-every", defaults.UpdateEvery, "PWM cycles between brightness steps")
	fs.IntVar(&opts.breathe.Step, "step", defaults.Step, "Brightness change per step")
	fs.IntVar(&opts.breathe.MaxBrightness, "max-brightness", defaults.MaxBrightness, "Number of brightness levels minus one")
	if err := fs.Parse(args); err != nil {
		return options{}, errors.WithStack(err)
	}
	opts.breathe.CycleLength = cycleUs

	if err := opts.logLevel.UnmarshalText([]byte(levelFlag)); err != nil {
		return options{}, errors.Wrapf(err, "invalid level %q", levelFlag)
	}
	if opts.pins.BlinkPin == opts.pins.BreathePin {
		return options{}, errors.Errorf("blink and breathe share GPIO %d", opts.pins.BlinkPin)
	}
	if err := opts.breathe.Validate(); err != nil {
		return options{}, errors.WithStack(err)
	}
	return opts, nil
}
