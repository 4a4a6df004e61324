//go:build rp2040 || rp2350

package platform

import (
	"io"
	"machine"

	"github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers"

	"seqsurface-go/drivers/cd74hc4067"
	"seqsurface-go/errcode"
	"seqsurface-go/internal/platform/setups"
)

const defaultSPIHz = 4_000_000

// DefaultFactory maps GPIO numbers directly to machine.Pin(n), matching
// Pico / Pico 2 GP numbering.
func DefaultFactory() Factory { return rp2Factory{} }

type rp2Factory struct{}

func (rp2Factory) Pin(n int) (Pin, bool) {
	// User GPIOs GP0..GP28.
	if n < 0 || n > 28 {
		return nil, false
	}
	return rp2Pin{p: machine.Pin(n)}, true
}

func (rp2Factory) ADC(n int) (cd74hc4067.Sampler, bool) {
	// ADC0..ADC3 are GP26..GP29.
	if n < 26 || n > 29 {
		return nil, false
	}
	return &rp2ADC{a: machine.ADC{Pin: machine.Pin(n)}}, true
}

func (rp2Factory) SPI(p setups.SPIPlan) (drivers.SPI, error) {
	var hw *machine.SPI
	switch p.ID {
	case "spi0":
		hw = machine.SPI0
	case "spi1":
		hw = machine.SPI1
	default:
		return nil, errcode.Unsupported
	}
	hz := p.Hz
	if hz == 0 {
		hz = defaultSPIHz
	}
	err := hw.Configure(machine.SPIConfig{
		Frequency: hz,
		SCK:       machine.Pin(p.SCK),
		SDO:       machine.Pin(p.SDO),
		SDI:       machine.NoPin,
		Mode:      0,
	})
	if err != nil {
		return nil, err
	}
	return hw, nil
}

type rp2Pin struct{ p machine.Pin }

func (r rp2Pin) ConfigureOutput(initial bool) error {
	r.p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	r.p.Set(initial)
	return nil
}

func (r rp2Pin) Set(level bool) { r.p.Set(level) }

type rp2ADC struct{ a machine.ADC }

func (r *rp2ADC) Configure() error {
	machine.InitADC()
	return r.a.Configure(machine.ADCConfig{})
}

// Sample returns a 12-bit reading; machine.ADC scales to 16 bits.
func (r *rp2ADC) Sample() uint16 { return r.a.Get() >> 4 }

// Console opens the debug UART described by p.
func Console(p *setups.UARTPlan) (io.Writer, error) {
	if p == nil {
		return nil, errcode.Unsupported
	}
	var hw *uartx.UART
	switch p.ID {
	case "uart0":
		hw = uartx.UART0
	case "uart1":
		hw = uartx.UART1
	default:
		return nil, errcode.Unsupported
	}
	err := hw.Configure(uartx.UARTConfig{
		BaudRate: p.Baud,
		TX:       machine.Pin(p.TX),
		RX:       machine.Pin(p.RX),
	})
	if err != nil {
		return nil, errcode.Wrap(errcode.BusConfig, "platform: console", err)
	}
	return hw, nil
}
