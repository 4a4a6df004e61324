// Package setups holds board wiring plans: which GPIO numbers the surface
// hardware is attached to. Plans carry wiring only; the platform package
// turns them into pins and buses.
package setups

// ShiftRegisterPlan wires the 74HC595 chain.
type ShiftRegisterPlan struct {
	SER, SRCLK, RCLK int
}

// SPIPlan clocks the chain from a hardware SPI controller instead of
// bit-banging SER and SRCLK. SCK must sit on SRCLK and SDO on SER.
type SPIPlan struct {
	ID  string // "spi0" or "spi1"
	SCK int
	SDO int
	Hz  uint32
}

// MuxPlan wires the 74HC4067. COM must be an ADC-capable pin.
type MuxPlan struct {
	S0, S1, S2, S3 int
	COM            int
}

type UARTPlan struct {
	ID   string // "uart0" or "uart1"
	TX   int
	RX   int
	Baud uint32
}

type ResourcePlan struct {
	Name          string
	ShiftRegister *ShiftRegisterPlan
	ShiftSPI      *SPIPlan
	LEDPins       []int // direct GPIO backend, at most 8 used
	Mux           *MuxPlan
	Console       *UARTPlan
}

func (m *MuxPlan) pins() []int { return []int{m.S0, m.S1, m.S2, m.S3, m.COM} }

// DirectLEDConflicts lists direct LED pins that are also mux lines. The
// legacy direct-GPIO wiring shares GP14..GP17 with the mux select lines.
func (p ResourcePlan) DirectLEDConflicts() []int {
	if p.Mux == nil {
		return nil
	}
	var out []int
	for _, led := range p.LEDPins {
		for _, m := range p.Mux.pins() {
			if led == m {
				out = append(out, led)
				break
			}
		}
	}
	return out
}
