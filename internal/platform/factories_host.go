//go:build !rp2040 && !rp2350

package platform

import (
	"io"
	"os"
	"sync"

	"tinygo.org/x/drivers"

	"seqsurface-go/drivers/cd74hc4067"
	"seqsurface-go/errcode"
	"seqsurface-go/internal/platform/setups"
)

// ----------------------------- GPIO (host) -----------------------------------

// FakePin records its level and the number of Set calls.
type FakePin struct {
	mu      sync.Mutex
	number  int
	level   bool
	modeOut bool
	sets    int
}

func (p *FakePin) ConfigureOutput(initial bool) error {
	p.mu.Lock()
	p.modeOut = true
	p.level = initial
	p.mu.Unlock()
	return nil
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	p.level = level
	p.sets++
	p.mu.Unlock()
}

func (p *FakePin) Level() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

func (p *FakePin) Output() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.modeOut
}

func (p *FakePin) Sets() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sets
}

func (p *FakePin) Number() int { return p.number }

// ----------------------------- ADC (host) ------------------------------------

// FakeADC returns a settable 12-bit value.
type FakeADC struct {
	mu         sync.Mutex
	value      uint16
	samples    int
	configured bool
}

func (a *FakeADC) Configure() error {
	a.mu.Lock()
	a.configured = true
	a.mu.Unlock()
	return nil
}

func (a *FakeADC) Sample() uint16 {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.samples++
	return a.value
}

func (a *FakeADC) SetValue(v uint16) {
	a.mu.Lock()
	a.value = v & 0x0FFF
	a.mu.Unlock()
}

func (a *FakeADC) Samples() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.samples
}

// ----------------------------- SPI (host) ------------------------------------

// HostSPI implements tinygo drivers.SPI and records every write.
type HostSPI struct {
	mu     sync.Mutex
	frames [][]byte
}

func (h *HostSPI) Tx(w, r []byte) error {
	h.mu.Lock()
	h.frames = append(h.frames, append([]byte(nil), w...))
	h.mu.Unlock()
	for i := range r {
		r[i] = 0
	}
	return nil
}

func (h *HostSPI) Transfer(b byte) (byte, error) {
	return 0, h.Tx([]byte{b}, nil)
}

func (h *HostSPI) Frames() [][]byte {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([][]byte(nil), h.frames...)
}

// ----------------------------- Factory (host) --------------------------------

// HostFactory returns stable fakes per number: pins GP0..GP28, ADC on
// GP26..GP29 and one SPI bus per controller id.
type HostFactory struct {
	mu   sync.Mutex
	pins map[int]*FakePin
	adcs map[int]*FakeADC
	spis map[string]*HostSPI
}

func NewHostFactory() *HostFactory {
	return &HostFactory{
		pins: make(map[int]*FakePin),
		adcs: make(map[int]*FakeADC),
		spis: make(map[string]*HostSPI),
	}
}

// DefaultFactory provides host fakes.
func DefaultFactory() Factory { return NewHostFactory() }

func (f *HostFactory) Pin(n int) (Pin, bool) {
	p, ok := f.FakePin(n)
	if !ok {
		return nil, false
	}
	return p, true
}

// FakePin exposes the underlying fake for tests.
func (f *HostFactory) FakePin(n int) (*FakePin, bool) {
	if n < 0 || n > 28 {
		return nil, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.pins[n]
	if !ok {
		p = &FakePin{number: n}
		f.pins[n] = p
	}
	return p, true
}

func (f *HostFactory) ADC(n int) (cd74hc4067.Sampler, bool) {
	a, ok := f.FakeADC(n)
	if !ok {
		return nil, false
	}
	return a, true
}

func (f *HostFactory) FakeADC(n int) (*FakeADC, bool) {
	if n < 26 || n > 29 {
		return nil, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	a, ok := f.adcs[n]
	if !ok {
		a = &FakeADC{}
		f.adcs[n] = a
	}
	return a, true
}

func (f *HostFactory) SPI(p setups.SPIPlan) (drivers.SPI, error) {
	s, ok := f.HostSPI(p.ID)
	if !ok {
		return nil, errcode.Unsupported
	}
	return s, nil
}

func (f *HostFactory) HostSPI(id string) (*HostSPI, bool) {
	if id != "spi0" && id != "spi1" {
		return nil, false
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.spis[id]
	if !ok {
		s = &HostSPI{}
		f.spis[id] = s
	}
	return s, true
}

// Console on the host is standard output.
func Console(_ *setups.UARTPlan) (io.Writer, error) { return os.Stdout, nil }
