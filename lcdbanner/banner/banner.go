// Package banner holds the fixed OmSehat greeting shown at boot.
package banner

import "github.com/harveysanders/omsehat/lcdbanner/lcd"

// Line is a piece of text and the row it is centered on.
type Line struct {
	Text string
	Row  uint8
}

// Lines returns the greeting, one line per row of a 20x4 display.
// The second line is "Hadirkan Kesehatan" shortened to keep a margin.
func Lines() []Line {
	return []Line{
		{Text: "OmSehat", Row: 0},
		{Text: "Hadirkan Sehat", Row: 1},
		{Text: "Cerdas ke", Row: 2},
		{Text: "Pelosok Indonesia", Row: 3},
	}
}

// Render centers each line on its row.
func Render(d *lcd.Display, lines []Line) {
	for _, l := range lines {
		d.PrintCentered(l.Row, l.Text)
	}
}
