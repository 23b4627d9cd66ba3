package lcd

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harveysanders/picobreathe/breathe/breathing"
)

type fakeDevice struct {
	clears int
	rows   map[uint8]string
	row    uint8
}

func (f *fakeDevice) ClearDisplay() {
	f.clears++
	f.rows = map[uint8]string{}
}

func (f *fakeDevice) SetCursor(_, y uint8) { f.row = y }

func (f *fakeDevice) Print(data []byte) { f.rows[f.row] += string(data) }

func TestStateMessage(t *testing.T) {
	buf := make([]byte, 0, 40)

	msg := StateMessage(buf, breathing.Event{State: breathing.State{
		Brightness: 255,
		Direction:  breathing.Decreasing,
	}}, 255)
	assert.Equal(t, "Level 255/255", string(msg.Line1))
	assert.Equal(t, "falling blink:on", string(msg.Line2))

	msg = StateMessage(buf, breathing.Event{State: breathing.InitialState()}, 255)
	assert.Equal(t, "Level 0/255", string(msg.Line1))
	assert.Equal(t, "rising blink:off", string(msg.Line2))
}

func TestShowTruncatesToWidth(t *testing.T) {
	dev := &fakeDevice{}
	h := NewHandler(dev)

	h.Show(Message{
		Line1: []byte("0123456789abcdefXYZ"),
		Line2: []byte("ok"),
	})

	assert.Equal(t, 1, dev.clears)
	assert.Equal(t, "0123456789abcdef", dev.rows[0])
	assert.Equal(t, "ok", dev.rows[1])
}

// nackBus acknowledges no address.
type nackBus struct{ tried []uint16 }

func (b *nackBus) Tx(addr uint16, w, r []byte) error {
	b.tried = append(b.tried, addr)
	return errors.New("nack")
}

func TestConfigureReportsMissingDisplay(t *testing.T) {
	bus := &nackBus{}

	dev, err := Configure(bus)

	require.Error(t, err)
	assert.Nil(t, dev)
	assert.Equal(t, []uint16{0x27, 0x3F}, bus.tried)
}
