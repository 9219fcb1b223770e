package lcd

import (
	"errors"
	"log/slog"
	"strconv"

	"tinygo.org/x/drivers"
	"tinygo.org/x/drivers/hd44780i2c"
)

// ErrNotFound is returned by Open when no configured address acknowledges.
var ErrNotFound = errors.New("lcd not found")

// Open finds the display on bus, configures it, turns the backlight on and
// clears it. The bus must already be configured. Open should be called once.
func Open(bus drivers.I2C, cfg Config, logger *slog.Logger) (*Display, error) {
	cfg = cfg.withDefaults()
	if logger == nil {
		logger = nopLogger()
	}

	addr, err := probe(bus, cfg.Addresses, logger)
	if err != nil {
		return nil, err
	}

	dev := hd44780i2c.New(bus, addr)
	err = dev.Configure(hd44780i2c.Config{
		Width:  cfg.Width,
		Height: cfg.Height,
	})
	if err != nil {
		return nil, errors.New("lcd configure:" + err.Error())
	}

	d := New(&dev, cfg, logger)
	d.addr = addr
	d.BacklightOn()
	d.Clear()
	return d, nil
}

// probe returns the first address in addrs that acknowledges a write.
// The byte sent drives every expander pin low, which the HD44780 ignores
// while EN is low.
func probe(bus drivers.I2C, addrs []uint8, logger *slog.Logger) (uint8, error) {
	for _, a := range addrs {
		logger.Info("checking I2C address", slog.String("addr", hexAddr(a)))
		if err := bus.Tx(uint16(a), []byte{0}, nil); err != nil {
			continue
		}
		return a, nil
	}
	return 0, ErrNotFound
}

func hexAddr(a uint8) string {
	return "0x" + strconv.FormatUint(uint64(a), 16)
}
