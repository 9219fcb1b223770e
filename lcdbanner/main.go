//go:build tinygo

package main

import (
	"log/slog"
	"machine"
	"time"

	"github.com/harveysanders/omsehat/lcdbanner/banner"
	"github.com/harveysanders/omsehat/lcdbanner/lcd"
)

const (
	lcdWidth  uint8 = 20 // Columns on the 2004 module.
	lcdHeight uint8 = 4  // Rows on the 2004 module.
	lcdAddr   uint8 = lcd.AddrPCF8574
)

func main() {
	logger := slog.New(slog.NewTextHandler(machine.Serial, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	logger.Info("omsehat display starting",
		slog.Int("width", int(lcdWidth)),
		slog.Int("height", int(lcdHeight)),
	)

	// Setup LCD display over I2C
	err := machine.I2C0.Configure(machine.I2CConfig{
		SDA: machine.GP4,
		SCL: machine.GP5,
	})
	if err != nil {
		printErrForever(logger, "configure I2C", slog.Any("reason", err))
	}

	disp, err := lcd.Open(machine.I2C0, lcd.Config{
		Width:  lcdWidth,
		Height: lcdHeight,
		// Fall back to the PCF8574A address used by some backpacks.
		Addresses: []uint8{lcdAddr, lcd.AddrPCF8574A},
		Strategy:  lcd.ClearThenOverwrite,
	}, logger)
	if err != nil {
		printErrForever(logger, "open LCD", slog.Any("reason", err))
	}
	logger.Info("lcd initialized", slog.Int("addr", int(disp.Address())))

	banner.Render(disp, banner.Lines())
	logger.Info("message displayed")

	// Keep main() running
	for {
		time.Sleep(time.Second)
	}
}

// printErrForever prints a string to serial @ 1hz. It
// blocks forever.
func printErrForever(logger *slog.Logger, msg string, args ...any) {
	for {
		logger.Error(msg, args...)
		time.Sleep(time.Second)
	}
}
