package lcd

import (
	"errors"
	"strconv"
	"strings"
)

// fakeDevice emulates an HD44780 character grid. Like the hd44780i2c driver
// it wraps to the start of the next row after the last column.
type fakeDevice struct {
	width, height int
	grid          [][]byte
	x, y          int
	backlight     bool
	clears        int
	calls         []string
	// overflow is set when a write lands past the last column of the row it
	// started on.
	overflow bool
}

func newFakeDevice(width, height int) *fakeDevice {
	f := &fakeDevice{width: width, height: height}
	f.reset()
	return f
}

func (f *fakeDevice) reset() {
	f.grid = make([][]byte, f.height)
	for i := range f.grid {
		f.grid[i] = []byte(strings.Repeat(" ", f.width))
	}
	f.x, f.y = 0, 0
}

// fill puts c in every cell, simulating stale content.
func (f *fakeDevice) fill(c byte) {
	for _, row := range f.grid {
		for i := range row {
			row[i] = c
		}
	}
}

func (f *fakeDevice) SetCursor(x, y uint8) {
	f.calls = append(f.calls, "cursor "+strconv.Itoa(int(x))+","+strconv.Itoa(int(y)))
	f.x, f.y = int(x), int(y)
}

func (f *fakeDevice) Print(data []byte) {
	f.calls = append(f.calls, "print "+string(data))
	startRow := f.y
	for _, c := range data {
		if f.x >= f.width {
			f.x = 0
			f.y = (f.y + 1) % f.height
		}
		if f.y != startRow {
			f.overflow = true
		}
		f.grid[f.y][f.x] = c
		f.x++
	}
}

func (f *fakeDevice) ClearDisplay() {
	f.calls = append(f.calls, "clear")
	f.clears++
	f.reset()
}

func (f *fakeDevice) BacklightOn(on bool) {
	f.backlight = on
}

func (f *fakeDevice) row(y int) string {
	return string(f.grid[y])
}

var errNack = errors.New("i2c nack")

// fakeBus acknowledges writes to the addresses in acks only.
type fakeBus struct {
	acks    map[uint16]bool
	written []uint16
}

func newFakeBus(acks ...uint8) *fakeBus {
	b := &fakeBus{acks: map[uint16]bool{}}
	for _, a := range acks {
		b.acks[uint16(a)] = true
	}
	return b
}

func (b *fakeBus) Tx(addr uint16, w, r []byte) error {
	if !b.acks[addr] {
		return errNack
	}
	b.written = append(b.written, addr)
	return nil
}
