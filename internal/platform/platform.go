// Package platform turns a board wiring plan into surface hardware: LED
// array, knob reader and the drivers under them. Board-specific factories
// live in build-tagged files; host builds use fakes.
package platform

import (
	"tinygo.org/x/drivers"

	"seqsurface-go/drivers/cd74hc4067"
	"seqsurface-go/drivers/sn74hc595"
	"seqsurface-go/errcode"
	"seqsurface-go/internal/platform/setups"
	"seqsurface-go/surface/knobs"
	"seqsurface-go/surface/leds"
	"seqsurface-go/x/conv"
)

// Pin is a push-pull output line.
type Pin interface {
	ConfigureOutput(initial bool) error
	Set(high bool)
}

// Factory hands out board resources by GPIO number.
type Factory interface {
	Pin(n int) (Pin, bool)
	ADC(n int) (cd74hc4067.Sampler, bool)
	SPI(p setups.SPIPlan) (drivers.SPI, error)
}

// Options carries the non-wiring configuration of the built parts.
type Options struct {
	LEDs  leds.Config
	Knobs knobs.Config
	Mux   cd74hc4067.Config
}

// Surface is the hardware built from a plan. Knobs and Mux are nil when the
// plan has no multiplexer.
type Surface struct {
	Backend  leds.Backend
	LEDs     leds.Array
	Knobs    *knobs.Reader
	Register *sn74hc595.Device
	Mux      *cd74hc4067.Device
}

// Build wires the parts of plan needed by backend. A backend whose wiring is
// absent from the plan yields the disabled array.
func Build(f Factory, plan setups.ResourcePlan, backend leds.Backend, opt Options) (*Surface, error) {
	s := &Surface{}
	var res leds.Resources

	switch backend {
	case leds.BackendShiftRegister:
		dev, err := buildRegister(f, plan)
		if err != nil {
			return nil, err
		}
		s.Register = dev
		res.ShiftRegister = dev
	case leds.BackendGPIO:
		for _, n := range plan.LEDPins {
			p, err := pin(f, n)
			if err != nil {
				return nil, err
			}
			res.Pins = append(res.Pins, p)
		}
	}
	s.LEDs = leds.New(backend, res, opt.LEDs)
	s.Backend = leds.BackendOf(s.LEDs)

	if m := plan.Mux; m != nil {
		var sel [4]Pin
		for i, n := range [4]int{m.S0, m.S1, m.S2, m.S3} {
			p, err := pin(f, n)
			if err != nil {
				return nil, err
			}
			sel[i] = p
		}
		com, ok := f.ADC(m.COM)
		if !ok {
			return nil, unknownPin("platform: adc", m.COM)
		}
		s.Mux = cd74hc4067.New(sel[0], sel[1], sel[2], sel[3], com, opt.Mux)
		s.Knobs = knobs.New(s.Mux, opt.Knobs)
	}
	return s, nil
}

func buildRegister(f Factory, plan setups.ResourcePlan) (*sn74hc595.Device, error) {
	sr := plan.ShiftRegister
	if sr == nil {
		return nil, nil
	}
	rclk, err := pin(f, sr.RCLK)
	if err != nil {
		return nil, err
	}
	if plan.ShiftSPI != nil {
		bus, err := f.SPI(*plan.ShiftSPI)
		if err != nil {
			return nil, errcode.Wrap(errcode.BusConfig, "platform: spi", err)
		}
		return sn74hc595.NewSPI(bus, rclk), nil
	}
	ser, err := pin(f, sr.SER)
	if err != nil {
		return nil, err
	}
	srclk, err := pin(f, sr.SRCLK)
	if err != nil {
		return nil, err
	}
	return sn74hc595.New(ser, srclk, rclk), nil
}

func pin(f Factory, n int) (Pin, error) {
	p, ok := f.Pin(n)
	if !ok {
		return nil, unknownPin("platform: pin", n)
	}
	return p, nil
}

func unknownPin(op string, n int) error {
	var buf [20]byte
	return &errcode.E{C: errcode.UnknownPin, Op: op, Msg: "GP" + string(conv.Itoa(buf[:], int64(n)))}
}
