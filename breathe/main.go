//go:build rp2040 || rp2350

package main

import (
	"log/slog"
	"machine"
	"time"

	"github.com/harveysanders/picobreathe/breathe/breathing"
	"github.com/harveysanders/picobreathe/breathe/delay"
	"github.com/harveysanders/picobreathe/breathe/lcd"
	"github.com/harveysanders/picobreathe/breathe/leds"
)

const (
	breathePin = machine.GP15
	blinkPin   = machine.GP21
)

func main() {
	logger := slog.New(slog.NewTextHandler(machine.Serial, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	blink, err := blinkLine(logger)
	if err != nil {
		printErrForever(logger, "configure blink LED", slog.Any("reason", err))
	}
	out := leds.Pair{
		Blink:   blink,
		Breathe: leds.Pin{Pin: breathePin},
	}

	cfg := breathing.DefaultConfig()
	controller, err := breathing.New(cfg, out, delay.NewSysTick())
	if err != nil {
		printErrForever(logger, "configure breathing", slog.Any("reason", err))
	}
	controller.Logger = logger

	// The status display is optional; breathe without it.
	display := setupDisplay(logger)
	printBuf := make([]byte, 0, 40)
	controller.OnReverse = func(ev breathing.Event) {
		logger.Info("breathe:reverse",
			slog.Int("brightness", ev.State.Brightness),
			slog.String("direction", ev.State.Direction.String()),
		)
		if display != nil {
			display.Show(lcd.StateMessage(printBuf, ev, cfg.MaxBrightness))
		}
	}

	logger.Info("breathe:start",
		slog.Duration("half_period", cfg.HalfPeriod()),
		slog.Duration("blink_period", cfg.BlinkPeriod()),
	)
	controller.Run(nil)
}

func setupDisplay(logger *slog.Logger) *lcd.Handler {
	err := machine.I2C0.Configure(machine.I2CConfig{
		SDA: machine.GP4,
		SCL: machine.GP5,
	})
	if err != nil {
		logger.Warn("lcd:i2c-configure-failed", slog.Any("reason", err))
		return nil
	}
	dev, err := lcd.Configure(machine.I2C0)
	if err != nil {
		logger.Info("lcd:not-found", slog.Any("reason", err))
		return nil
	}
	return lcd.NewHandler(dev)
}

// printErrForever logs msg @ 1hz in case the serial monitor is not ready
// for the first messages. It blocks forever.
func printErrForever(logger *slog.Logger, msg string, args ...any) {
	for {
		logger.Error(msg, args...)
		time.Sleep(time.Second)
	}
}
