//go:build linux && !tinygo

// Command breathepi runs the breathing LED loop on a Linux board through
// sysfs GPIO. Timing is a busy-wait on the monotonic clock, so it keeps one
// core fully occupied while running.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/harveysanders/picobreathe/breathe/breathing"
	"github.com/harveysanders/picobreathe/breathe/delay"
	"github.com/harveysanders/picobreathe/breathe/leds"
)

func main() {
	opts, err := parseOptions(os.Args[0], os.Args[1:])
	if err != nil {
		Exitf("Invalid options: %v\n", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: opts.logLevel,
	}))

	out, err := leds.OpenLinux(opts.pins, logger)
	if err != nil {
		Exitf("Failed to open GPIO lines: %v\n", err)
	}

	controller, err := breathing.New(opts.breathe, out, delay.NewHost())
	if err != nil {
		Exitf("Failed to configure breathing: %v\n", err)
	}
	controller.Logger = logger
	controller.OnReverse = func(ev breathing.Event) {
		logger.Info("breathe:reverse",
			slog.Int("brightness", ev.State.Brightness),
			slog.String("direction", ev.State.Direction.String()),
		)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("breathe:start",
		slog.Int("blink_pin", opts.pins.BlinkPin),
		slog.Int("breathe_pin", opts.pins.BreathePin),
		slog.Duration("blink_period", opts.breathe.BlinkPeriod()),
	)
	controller.Run(ctx.Done())

	out.Off()
	logger.Info("breathe:stopped", slog.Int("brightness", controller.State().Brightness))
}

// Exitf prints the given error message and exits with code 1.
func Exitf(message string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, message, args...)
	os.Exit(1)
}
