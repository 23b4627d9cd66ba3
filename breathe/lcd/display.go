// Package lcd shows the breathing state on a 16x2 HD44780 display behind a
// PCF8574 I2C backpack.
//
// Writes are synchronous. TinyGo schedules goroutines cooperatively and the
// breathing loop never yields, so a display goroutine would never run; the
// controller calls Show directly at each reversal instead. One update takes
// a few milliseconds of I2C traffic, which stretches that one PWM cycle.
package lcd

import (
	"errors"
	"strconv"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/hd44780i2c"

	"github.com/harveysanders/picobreathe/breathe/breathing"
)

// Common PCF8574 backpack addresses, probed in order.
var probeAddrs = []uint8{0x27, 0x3F}

// Device is the subset of hd44780i2c.Device the handler uses.
type Device interface {
	ClearDisplay()
	SetCursor(x, y uint8)
	Print(data []byte)
}

// Message is a two-line LCD message.
type Message struct {
	Line1 []byte
	Line2 []byte
}

// Handler writes messages to the display.
type Handler struct {
	device  Device
	columns int
}

// NewHandler returns a handler for a 16x2 display.
func NewHandler(device Device) *Handler {
	return &Handler{device: device, columns: 16}
}

// Show clears the display and prints msg, truncating lines to the display
// width.
func (h *Handler) Show(msg Message) {
	h.device.ClearDisplay()
	h.device.SetCursor(0, 0)
	h.device.Print(h.truncate(msg.Line1))
	h.device.SetCursor(0, 1)
	h.device.Print(h.truncate(msg.Line2))
}

// truncate in place, no allocation
func (h *Handler) truncate(line []byte) []byte {
	if len(line) > h.columns {
		return line[:h.columns]
	}
	return line
}

// StateMessage formats ev into buf without allocating once buf has grown to
// fit, as in
//
//	Level 255/255
//	falling blink:on
func StateMessage(buf []byte, ev breathing.Event, maxBrightness int) Message {
	buf = buf[:0]
	buf = append(buf, "Level "...)
	buf = strconv.AppendInt(buf, int64(ev.State.Brightness), 10)
	buf = append(buf, '/')
	buf = strconv.AppendInt(buf, int64(maxBrightness), 10)
	n := len(buf)

	if ev.State.Direction == breathing.Decreasing {
		buf = append(buf, "falling blink:on"...)
	} else {
		buf = append(buf, "rising blink:off"...)
	}
	return Message{Line1: buf[:n], Line2: buf[n:]}
}

// Configure probes the usual backpack addresses on bus and initializes the
// first display that acknowledges.
func Configure(bus drivers.I2C) (*hd44780i2c.Device, error) {
	for _, a := range probeAddrs {
		// A single zero byte only clears the expander outputs.
		if err := bus.Tx(uint16(a), []byte{0}, nil); err != nil {
			continue
		}
		dev := hd44780i2c.New(bus, a)
		dev.Configure(hd44780i2c.Config{
			Width:  16,
			Height: 2,
		})
		return &dev, nil
	}
	return nil, errors.New("LCD not found on addresses: 0x27, 0x3f")
}
