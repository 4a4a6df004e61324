// Package leds is the surface LED output engine: per-LED brightness intent
// rendered by software PWM onto one of three build-selected backends.
//
// Callers write intents on a uniform 0..1000 scale at any rate and call
// Update once per output refresh. Each Update advances a free-running 8-bit
// duty counter and drives every LED on while counter < level, so the PWM
// frame rate is the rate at which Update is called.
//
// Out-of-range LED indices are ignored everywhere; there is no error return
// on the hot path. Use CheckIndex when a caller wants to know.
package leds

import (
	"seqsurface-go/x/fmtx"
	"seqsurface-go/x/mathx"
)

const (
	// MaxIntent is full brightness on the caller scale.
	MaxIntent = 1000
	// MaxLevel is full brightness on the internal duty scale.
	MaxLevel = 255
	// MaxGPIO is the number of LEDs the direct-GPIO backend drives.
	MaxGPIO = 8

	defaultContinueEvery = 1000
	defaultTraceEvery    = 20000
)

// Array is the LED capability shared by all backends.
type Array interface {
	Init() error
	Update()
	// Continue reports true once every ContinueEvery calls; it lets the
	// caller run slower work against the PWM tick rate.
	Continue() bool
	Set(i int, v uint16)
	Add(i int, v uint16)
	SetAll(v uint16)
	SetBinary(b uint8)
	On(i int)
	Clear()
	Len() int
	// Level returns the stored duty (0..255) of LED i, 0 when out of range.
	Level(i int) uint8
}

// Pin is an output line for the direct-GPIO backend.
type Pin interface {
	ConfigureOutput(initial bool) error
	Set(high bool)
}

// Config controls non-hardware behaviour. All fields are optional.
type Config struct {
	// ContinueEvery is the Continue cadence. Default 1000.
	ContinueEvery uint16
	// Debug receives a state trace line every TraceEvery updates. Nil disables it.
	Debug func(msg string)
	// TraceEvery defaults to 20000 (about one second at 20kHz).
	TraceEvery uint32
}

func (c Config) withDefaults() Config {
	if c.ContinueEvery == 0 {
		c.ContinueEvery = defaultContinueEvery
	}
	if c.TraceEvery == 0 {
		c.TraceEvery = defaultTraceEvery
	}
	return c
}

// Cadence is a call divider: Next is true on every Every-th call.
type Cadence struct {
	Every uint16
	n     uint16
}

// Next counts one call and reports whether it completes a period.
func (c *Cadence) Next() bool {
	c.n++
	if c.n >= c.Every {
		c.n = 0
		return true
	}
	return false
}

// Reset restarts the current period.
func (c *Cadence) Reset() { c.n = 0 }

// Scale converts a 0..1000 intent to a 0..255 duty, clamping above 1000.
func Scale(v uint16) uint8 {
	return uint8(mathx.MapU16(v, 0, MaxIntent, 0, MaxLevel))
}

// table is the brightness state and duty counter common to the PWM backends.
type table struct {
	level   []uint8
	duty    uint8
	cadence Cadence

	debug      func(string)
	traceEvery uint32
	traced     uint32
}

func newTable(n int, cfg Config) table {
	cfg = cfg.withDefaults()
	return table{
		level:      make([]uint8, n),
		cadence:    Cadence{Every: cfg.ContinueEvery},
		debug:      cfg.Debug,
		traceEvery: cfg.TraceEvery,
	}
}

func (t *table) reset() {
	t.Clear()
	t.duty = 0
	t.traced = 0
	t.cadence.Reset()
}

func (t *table) valid(i int) bool { return i >= 0 && i < len(t.level) }

func (t *table) Len() int { return len(t.level) }

func (t *table) Level(i int) uint8 {
	if !t.valid(i) {
		return 0
	}
	return t.level[i]
}

func (t *table) Continue() bool { return t.cadence.Next() }

// Set stores a 0..1000 intent for LED i.
func (t *table) Set(i int, v uint16) {
	if !t.valid(i) {
		return
	}
	t.level[i] = Scale(v)
}

// Add raises LED i by a 0..1000 delta, saturating at full brightness.
func (t *table) Add(i int, v uint16) {
	if !t.valid(i) {
		return
	}
	t.level[i] = mathx.AddSatU8(t.level[i], Scale(v))
}

// SetAll spreads one 0..1000 intent over the whole bank as a level meter:
// LEDs fill to full in index order and the remainder lands on the next one.
// The budget is 255 per LED, so total light for a given intent is the same
// fraction of the bank regardless of its size.
func (t *table) SetAll(v uint16) {
	n := uint32(len(t.level))
	budget := uint32(mathx.Min(v, MaxIntent)) * MaxLevel * n / MaxIntent
	for i := range t.level {
		if budget > MaxLevel {
			t.level[i] = MaxLevel
			budget -= MaxLevel
		} else {
			t.level[i] = uint8(budget)
			budget = 0
		}
	}
}

// SetBinary shows b on the first eight LEDs, bit 7 on LED 0, full on or off.
func (t *table) SetBinary(b uint8) {
	for j := 0; j < 8 && j < len(t.level); j++ {
		if b&(0x80>>uint(j)) != 0 {
			t.level[j] = MaxLevel
		} else {
			t.level[j] = 0
		}
	}
}

// On lights LED i fully and turns every other LED off.
func (t *table) On(i int) {
	if !t.valid(i) {
		return
	}
	for j := range t.level {
		if j == i {
			t.level[j] = MaxLevel
		} else {
			t.level[j] = 0
		}
	}
}

// Clear zeroes all levels. Outputs follow on the next Update.
func (t *table) Clear() {
	for i := range t.level {
		t.level[i] = 0
	}
}

// tick advances the duty counter and emits the periodic trace.
func (t *table) tick() uint8 {
	t.duty++
	if t.debug != nil {
		t.traced++
		if t.traced >= t.traceEvery {
			t.traced = 0
			t.debug(fmtx.Sprintf("[leds] update dim=%d v0=%d v1=%d v7=%d",
				t.duty, t.Level(0), t.Level(1), t.Level(7)))
		}
	}
	return t.duty
}
