package leds

import "seqsurface-go/drivers/sn74hc595"

// Backend names an LED output strategy.
type Backend uint8

const (
	BackendGPIO Backend = iota
	BackendShiftRegister
	BackendDisabled
)

func (b Backend) String() string {
	switch b {
	case BackendGPIO:
		return "gpio"
	case BackendShiftRegister:
		return "shift_register"
	case BackendDisabled:
		return "disabled"
	}
	return "unknown"
}

// Resources carries the hardware a backend may need. Only the part used by
// the chosen backend has to be populated.
type Resources struct {
	ShiftRegister *sn74hc595.Device
	Pins          []Pin
}

// NewSelected builds the backend chosen at build time (see Selected).
func NewSelected(res Resources, cfg Config) Array { return New(Selected, res, cfg) }

// New builds backend b. A backend whose resources are missing degrades to
// Disabled.
func New(b Backend, res Resources, cfg Config) Array {
	switch b {
	case BackendShiftRegister:
		if res.ShiftRegister != nil {
			return NewShiftRegister(res.ShiftRegister, cfg)
		}
	case BackendGPIO:
		if len(res.Pins) > 0 {
			return NewGPIO(res.Pins, cfg)
		}
	}
	return Disabled{}
}

// BackendOf reports which backend a implements.
func BackendOf(a Array) Backend {
	switch a.(type) {
	case *ShiftRegister:
		return BackendShiftRegister
	case *GPIO:
		return BackendGPIO
	}
	return BackendDisabled
}
