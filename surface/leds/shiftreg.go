package leds

import (
	"seqsurface-go/drivers/sn74hc595"
	"seqsurface-go/surface/ledmap"
)

// ShiftRegister drives 16 LEDs through a 74HC595 chain. Each Update writes
// all 16 bits into the register image (memory only) and then transmits once.
type ShiftRegister struct {
	table
	dev   *sn74hc595.Device
	ready bool
}

func NewShiftRegister(dev *sn74hc595.Device, cfg Config) *ShiftRegister {
	return &ShiftRegister{table: newTable(ledmap.Count, cfg), dev: dev}
}

// Init configures the register lines (outputs cleared) and zeroes all levels.
func (s *ShiftRegister) Init() error {
	s.reset()
	if err := s.dev.Configure(); err != nil {
		s.ready = false
		return err
	}
	s.ready = true
	return nil
}

func (s *ShiftRegister) Update() {
	if !s.ready {
		return
	}
	d := s.tick()
	for i, v := range s.level {
		s.dev.SetBit(ledmap.LogicalToBit(i), d < v)
	}
	s.dev.Update()
}

// DirectTest bypasses PWM: it blanks the chain and lights only step LED i
// (i < 8). Other indices leave the chain blank. The next Update resumes PWM.
func (s *ShiftRegister) DirectTest(i int) {
	if !s.ready {
		return
	}
	s.dev.Clear()
	if i >= 0 && i < 8 {
		s.dev.SetBit(ledmap.LogicalToBit(i), true)
	}
	s.dev.Update()
}
