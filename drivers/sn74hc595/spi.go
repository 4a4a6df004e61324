package sn74hc595

import "tinygo.org/x/drivers"

// NewSPI returns a device whose shift stage is clocked by a hardware SPI
// peripheral (MOSI wired to SER, SCK to SRCLK). The bus must already be
// configured for mode 0, MSB first. rclk remains a plain GPIO line.
//
// The chain sees the same waveform as the bit-banged path: the high byte is
// sent first, so bit 15 is the first bit shifted in.
func NewSPI(bus drivers.SPI, rclk Pin) *Device {
	return &Device{spi: bus, rclk: rclk}
}

func (d *Device) shiftSPI(v uint16) {
	d.txbuf[0] = byte(v >> 8)
	d.txbuf[1] = byte(v)
	if err := d.spi.Tx(d.txbuf[:], nil); err != nil {
		d.errors++
	}
}
