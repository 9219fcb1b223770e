package lcd

// Strategy selects how a centered row is written to the display.
type Strategy uint8

const (
	// ClearThenOverwrite blanks the whole row, then writes the text at its
	// centered column. No stale characters survive regardless of padding.
	ClearThenOverwrite Strategy = iota
	// PaddedWrite writes left padding, text and right padding in a single
	// left to right sweep.
	PaddedWrite
)

func (s Strategy) String() string {
	switch s {
	case ClearThenOverwrite:
		return "clear-then-overwrite"
	case PaddedWrite:
		return "padded-write"
	default:
		return "unknown"
	}
}

// Common PCF8574 backpack addresses. PCF8574A boards answer on 0x3F.
const (
	AddrPCF8574  uint8 = 0x27
	AddrPCF8574A uint8 = 0x3F
)

// Config describes the display geometry and how to find it on the bus.
type Config struct {
	Width  uint8 // Columns. Defaults to 20.
	Height uint8 // Rows. Defaults to 4.
	// Addresses are probed in order. The first one that acknowledges is used.
	// Defaults to 0x27 then 0x3F.
	Addresses []uint8
	Strategy  Strategy
}

// DefaultConfig returns the configuration for a 20x4 display on a PCF8574 or
// PCF8574A backpack.
func DefaultConfig() Config {
	return Config{
		Width:     20,
		Height:    4,
		Addresses: []uint8{AddrPCF8574, AddrPCF8574A},
		Strategy:  ClearThenOverwrite,
	}
}

func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Width == 0 {
		c.Width = def.Width
	}
	if c.Height == 0 {
		c.Height = def.Height
	}
	if len(c.Addresses) == 0 {
		c.Addresses = def.Addresses
	}
	return c
}
