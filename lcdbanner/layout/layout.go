// Package layout computes where a string sits on one row of a fixed-width
// character display.
//
// Lengths are counted in bytes. HD44780 controllers map one byte to one cell,
// so callers should pass text already encoded for the display's character ROM.
package layout

// Row is the placement of a string within a row of Width cells.
type Row struct {
	LeftPad  int    // Blank cells before Text.
	Text     string // Visible text. Never longer than the row.
	RightPad int    // Blank cells after Text.
}

// Width returns the number of cells the row covers when written left to right.
func (r Row) Width() int {
	return r.LeftPad + len(r.Text) + r.RightPad
}

// Compute centers text in a row of width cells.
//
// Text that fits leaves the odd blank cell, if any, on the right. Text that
// does not fit is truncated to width and starts at column 0 with no padding.
// A negative width is treated as zero.
func Compute(text string, width int) Row {
	if width < 0 {
		width = 0
	}

	n := len(text)
	if n >= width {
		return Row{Text: text[:width]}
	}

	left := (width - n) / 2
	right := width - n - left
	return Row{
		LeftPad:  clamp(left),
		Text:     text,
		RightPad: clamp(right),
	}
}

func clamp(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
