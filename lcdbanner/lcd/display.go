// Package lcd owns an HD44780 character display attached through a PCF8574
// I2C backpack and writes centered rows to it.
//
// Example usage:
//
//	disp, err := lcd.Open(machine.I2C0, lcd.DefaultConfig(), logger)
//	if err != nil {
//	    // handle err
//	}
//	disp.PrintCentered(0, "OmSehat")
package lcd

import (
	"io"
	"log/slog"

	"github.com/harveysanders/omsehat/lcdbanner/layout"
)

// Device is the subset of the HD44780 driver the display needs.
// *hd44780i2c.Device satisfies it.
type Device interface {
	SetCursor(x, y uint8)
	Print(data []byte)
	ClearDisplay()
	BacklightOn(on bool)
}

// Display is a configured character display. It is not safe for concurrent use.
type Display struct {
	dev      Device
	logger   *slog.Logger
	width    uint8
	height   uint8
	addr     uint8
	strategy Strategy

	// blanks holds width spaces. Slices of it are written as padding so
	// centering never allocates.
	blanks []byte
	// buf is reused for string to byte conversion.
	buf []byte
}

// New wraps an already configured device. Zero Width or Height in cfg fall
// back to DefaultConfig values. A nil logger discards output.
func New(dev Device, cfg Config, logger *slog.Logger) *Display {
	cfg = cfg.withDefaults()
	if logger == nil {
		logger = nopLogger()
	}

	blanks := make([]byte, cfg.Width)
	for i := range blanks {
		blanks[i] = ' '
	}

	return &Display{
		dev:      dev,
		logger:   logger.With("component", "lcd"),
		width:    cfg.Width,
		height:   cfg.Height,
		strategy: cfg.Strategy,
		blanks:   blanks,
		buf:      make([]byte, 0, cfg.Width),
	}
}

// Width returns the number of columns.
func (d *Display) Width() uint8 { return d.width }

// Height returns the number of rows.
func (d *Display) Height() uint8 { return d.height }

// Address returns the I2C address the display answered on. It is zero for
// displays created with New.
func (d *Display) Address() uint8 { return d.addr }

// SetCursor positions the next write. Columns and rows are zero based.
func (d *Display) SetCursor(column, row uint8) {
	d.dev.SetCursor(column, row)
}

// WriteChar writes a single character at the cursor.
func (d *Display) WriteChar(c byte) {
	d.buf = append(d.buf[:0], c)
	d.dev.Print(d.buf)
}

// WriteText writes s at the cursor. Text running past the last column is
// handled by the driver, which wraps to the next row.
func (d *Display) WriteText(s string) {
	if len(s) == 0 {
		return
	}
	// reslice the buffer to zero-length so append reuses it
	d.buf = append(d.buf[:0], s...)
	d.dev.Print(d.buf)
}

// Clear blanks the whole display and homes the cursor.
func (d *Display) Clear() {
	d.dev.ClearDisplay()
}

// BacklightOn turns the backlight on.
func (d *Display) BacklightOn() {
	d.dev.BacklightOn(true)
}

// PrintCentered writes text centered on row using the configured strategy.
func (d *Display) PrintCentered(row uint8, text string) {
	d.PrintCenteredWith(d.strategy, row, text)
}

// PrintCenteredWith writes text centered on row using s. Text wider than the
// display is truncated and starts at column 0. Rows past the last one are
// ignored.
func (d *Display) PrintCenteredWith(s Strategy, row uint8, text string) {
	if row >= d.height {
		d.logger.Warn("row out of range",
			slog.Int("row", int(row)),
			slog.Int("height", int(d.height)),
		)
		return
	}

	r := layout.Compute(text, int(d.width))
	d.logger.Debug("print centered",
		slog.Int("row", int(row)),
		slog.String("strategy", s.String()),
		slog.Int("left", r.LeftPad),
		slog.Int("right", r.RightPad),
	)

	switch s {
	case PaddedWrite:
		d.paddedWrite(row, r)
	default:
		d.clearThenOverwrite(row, r)
	}
}

// clearThenOverwrite blanks the whole row, then writes the text at its
// centered column.
func (d *Display) clearThenOverwrite(row uint8, r layout.Row) {
	d.dev.SetCursor(0, row)
	d.writeBlanks(int(d.width))

	d.dev.SetCursor(uint8(r.LeftPad), row)
	d.WriteText(r.Text)
}

// paddedWrite writes left padding, text and right padding in one sweep from
// column 0. Right padding stops at the last column.
func (d *Display) paddedWrite(row uint8, r layout.Row) {
	d.dev.SetCursor(0, row)
	d.writeBlanks(r.LeftPad)
	d.WriteText(r.Text)

	col := r.LeftPad + len(r.Text)
	if col >= int(d.width) {
		return
	}
	n := r.RightPad
	if room := int(d.width) - col; n > room {
		n = room
	}
	d.writeBlanks(n)
}

func nopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(127), // Make temporary logger that does no logging.
	}))
}

func (d *Display) writeBlanks(n int) {
	if n <= 0 {
		return
	}
	if n > len(d.blanks) {
		n = len(d.blanks)
	}
	d.dev.Print(d.blanks[:n])
}
