// Package cd74hc4067 drives a 74HC4067 / CD74HC4067 16-channel analog
// multiplexer whose common pin feeds one ADC input.
//
// Select lines S0..S3 carry the channel address, S0 being the least
// significant bit. After the address changes the driver busy-waits for the
// configured settle time before sampling. The select lines may be shared
// with other multiplexers (e.g. a button mux); the driver only ever drives
// them, it never reads them back.
package cd74hc4067

import (
	"time"

	"seqsurface-go/errcode"
	"seqsurface-go/x/timex"
)

// Channels is the number of inputs behind the multiplexer.
const Channels = 16

// DefaultSettle covers the mux propagation delay (~200ns) with margin for the
// ADC sample-and-hold to charge through the channel resistance.
const DefaultSettle = 10 * time.Microsecond

// Pin is a select line.
type Pin interface {
	ConfigureOutput(initial bool) error
	Set(high bool)
}

// Sampler is the ADC input on the common pin. Sample returns a native
// 12-bit code (0..4095).
type Sampler interface {
	Configure() error
	Sample() uint16
}

// Config controls non-hardware behaviour. All fields are optional.
type Config struct {
	// Settle is the wait between driving the select lines and sampling.
	// Default 10µs.
	Settle time.Duration
	// Delay performs the wait. Defaults to timex.BusyWait.
	Delay func(time.Duration)
}

// Device is one multiplexer.
type Device struct {
	sel [4]Pin
	com Sampler
	cfg Config

	selected   int8
	configured bool
}

// New creates the device. It does not touch the hardware; call Configure.
func New(s0, s1, s2, s3 Pin, com Sampler, cfg Config) *Device {
	if cfg.Settle <= 0 {
		cfg.Settle = DefaultSettle
	}
	if cfg.Delay == nil {
		cfg.Delay = timex.BusyWait
	}
	return &Device{sel: [4]Pin{s0, s1, s2, s3}, com: com, cfg: cfg, selected: -1}
}

// Configure sets the select lines as outputs (channel 0) and prepares the ADC.
func (d *Device) Configure() error {
	for _, p := range d.sel {
		if p == nil {
			return &errcode.E{C: errcode.PinConfig, Op: "cd74hc4067.Configure", Msg: "missing select line"}
		}
		if err := p.ConfigureOutput(false); err != nil {
			return errcode.Wrap(errcode.PinConfig, "cd74hc4067.Configure", err)
		}
	}
	if d.com == nil {
		return &errcode.E{C: errcode.PinConfig, Op: "cd74hc4067.Configure", Msg: "missing adc"}
	}
	if err := d.com.Configure(); err != nil {
		return errcode.Wrap(errcode.PinConfig, "cd74hc4067.Configure", err)
	}
	d.selected = 0
	d.configured = true
	return nil
}

// Select drives the address of ch onto S0..S3 and waits for the output to
// settle. Channels >= 16 are ignored.
func (d *Device) Select(ch uint8) {
	if ch >= Channels || !d.configured {
		return
	}
	for i, p := range d.sel {
		p.Set(ch>>uint(i)&1 != 0)
	}
	d.selected = int8(ch)
	d.cfg.Delay(d.cfg.Settle)
}

// Read selects ch and takes one sample. Out-of-range channels and reads
// before Configure return 0 without touching the hardware.
func (d *Device) Read(ch uint8) uint16 {
	if ch >= Channels || !d.configured {
		return 0
	}
	d.Select(ch)
	return d.com.Sample()
}

// Selected returns the channel last addressed, or -1 before Configure.
func (d *Device) Selected() int { return int(d.selected) }
