// Package sn74hc595 drives a chain of two cascaded 74HC595 serial-in /
// parallel-out shift registers as one 16-bit output image.
//
//	d := sn74hc595.New(ser, srclk, rclk)
//	_ = d.Configure()      // outputs low, image cleared and latched
//	d.SetBit(3, true)      // memory only
//	d.Update()             // shift 16 bits and latch
//
// Bits are shifted most-significant first: bit 15 enters the chain first and
// ends on the far register's QH output, bit 0 on the near register's QA.
// Reversing the order would permute every output, so both transmit paths
// (bit-banged GPIO and hardware SPI) keep it.
//
// All operations run to completion on the caller's goroutine. There is no
// internal locking; one caller context owns a Device.
package sn74hc595

import (
	"tinygo.org/x/drivers"

	"seqsurface-go/errcode"
)

// Width is the number of outputs in the chain.
const Width = 16

// Pin is the output line capability the driver needs.
type Pin interface {
	ConfigureOutput(initial bool) error
	Set(high bool)
}

// Device holds the register image and the lines it is clocked out on.
type Device struct {
	ser   Pin // serial data (SER)
	srclk Pin // shift clock (SRCLK)
	rclk  Pin // latch / storage clock (RCLK)

	spi    drivers.SPI // when non-nil, SER/SRCLK are driven by the SPI peripheral
	txbuf  [2]byte
	errors uint32

	state      uint16
	configured bool
}

// New returns a bit-banged device on three GPIO lines. It does not touch the
// hardware; call Configure.
func New(ser, srclk, rclk Pin) *Device {
	return &Device{ser: ser, srclk: srclk, rclk: rclk}
}

// Configure sets all lines as outputs driven low, zeroes the image and
// transmits it so the outputs start in a known state.
func (d *Device) Configure() error {
	lines := []Pin{d.ser, d.srclk, d.rclk}
	if d.spi != nil {
		lines = []Pin{d.rclk}
	}
	for _, p := range lines {
		if p == nil {
			return &errcode.E{C: errcode.PinConfig, Op: "sn74hc595.Configure", Msg: "missing line"}
		}
		if err := p.ConfigureOutput(false); err != nil {
			return errcode.Wrap(errcode.PinConfig, "sn74hc595.Configure", err)
		}
	}
	d.configured = true
	d.Clear()
	return nil
}

// SetBit sets or clears one bit of the image. No hardware side effect.
// Bits >= Width are ignored.
func (d *Device) SetBit(bit uint8, on bool) {
	if bit >= Width {
		return
	}
	if on {
		d.state |= 1 << bit
	} else {
		d.state &^= 1 << bit
	}
}

// GetBit reports one bit of the image; bits >= Width read false.
func (d *Device) GetBit(bit uint8) bool {
	if bit >= Width {
		return false
	}
	return d.state>>bit&1 != 0
}

// Update transmits the current image.
func (d *Device) Update() {
	if !d.configured {
		return
	}
	if d.spi != nil {
		d.shiftSPI(d.state)
	} else {
		d.shiftOut(d.state)
	}
	d.latch()
}

// Clear zeroes the image and transmits it.
func (d *Device) Clear() {
	d.state = 0
	d.Update()
}

// SetAll replaces the whole image and transmits it.
func (d *Device) SetAll(v uint16) {
	d.state = v
	d.Update()
}

// State returns the image as last written (not necessarily transmitted).
func (d *Device) State() uint16 { return d.state }

// Errors returns the number of failed SPI transfers since New.
func (d *Device) Errors() uint32 { return d.errors }

// shiftOut clocks 16 bits MSB first: data, SRCLK high, SRCLK low.
func (d *Device) shiftOut(v uint16) {
	for i := Width - 1; i >= 0; i-- {
		d.ser.Set(v>>uint(i)&1 != 0)
		d.srclk.Set(true)
		d.srclk.Set(false)
	}
}

// latch moves the shift stage to the output latches in one pulse.
func (d *Device) latch() {
	d.rclk.Set(true)
	d.rclk.Set(false)
}
