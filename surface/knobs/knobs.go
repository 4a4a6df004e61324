// Package knobs reads the surface potentiometers through an analog
// multiplexer and reports per-channel values with change detection.
//
// Each Read takes one sample, inverts it (the pots are wired so the maximum
// ADC code is the minimum knob position) and compares it with the last
// *reported* value. Only a move larger than the threshold marks the channel
// changed and updates the reported value.
//
// After Init (and after Reset) each channel ignores its first StartupPolls
// Changed calls while the analog rail and the multiplexer settle.
package knobs

import (
	"seqsurface-go/x/mathx"
)

const (
	// Channels is the number of knobs behind the multiplexer.
	Channels = 16
	// Max is the largest value a knob reports.
	Max = 4095

	DefaultThreshold    = 100
	DefaultStartupPolls = 800
	DefaultSmoothing    = 200
)

// Mux selects a channel and returns one raw 12-bit sample.
type Mux interface {
	Configure() error
	Read(ch uint8) uint16
}

// Config controls change detection. Zero fields select the defaults, so a
// threshold or startup window of zero cannot be configured; use 1 for the
// most sensitive threshold and the shortest window.
type Config struct {
	// Threshold is the absolute difference a sample must exceed. Default 100.
	Threshold uint16
	// StartupPolls is the number of Changed polls suppressed after Init or
	// Reset. Default 800.
	StartupPolls uint16
}

type channel struct {
	current uint16 // latest sample
	last    uint16 // last reported value
	startup uint16 // remaining suppressed polls
	changed bool
}

// Reader owns the state of all channels.
type Reader struct {
	mux   Mux
	cfg   Config
	alpha uint16
	ch    [Channels]channel
	ready bool
}

func New(mux Mux, cfg Config) *Reader {
	if cfg.Threshold == 0 {
		cfg.Threshold = DefaultThreshold
	}
	if cfg.StartupPolls == 0 {
		cfg.StartupPolls = DefaultStartupPolls
	}
	return &Reader{mux: mux, cfg: cfg}
}

// Init configures the multiplexer and arms startup suppression on every
// channel. alpha is the smoothing factor (0..1024) kept for callers; samples
// are currently used unfiltered.
func (r *Reader) Init(alpha uint16) error {
	r.alpha = alpha
	for i := range r.ch {
		r.ch[i] = channel{startup: r.cfg.StartupPolls}
	}
	if err := r.mux.Configure(); err != nil {
		r.ready = false
		return err
	}
	r.ready = true
	return nil
}

func valid(ch int) bool { return ch >= 0 && ch < Channels }

// Read samples one channel. Out-of-range channels and reads before Init are
// ignored.
func (r *Reader) Read(ch int) {
	if !r.ready || !valid(ch) {
		return
	}
	raw := mathx.Min(r.mux.Read(uint8(ch)), Max)
	c := &r.ch[ch]
	c.current = Max - raw
	c.changed = mathx.Abs(int32(c.current)-int32(c.last)) > int32(r.cfg.Threshold)
	if c.changed {
		c.last = c.current
	}
}

// ReadAll reads channels 0..15 in order.
func (r *Reader) ReadAll() {
	for ch := 0; ch < Channels; ch++ {
		r.Read(ch)
	}
}

// Value returns the last reported value (0..4095).
func (r *Reader) Value(ch int) uint16 {
	if !valid(ch) {
		return 0
	}
	return r.ch[ch].last
}

// Current returns the latest sample, whether or not it was reported.
func (r *Reader) Current(ch int) uint16 {
	if !valid(ch) {
		return 0
	}
	return r.ch[ch].current
}

// Changed reports the change flag of the most recent Read. While the
// startup window is open it consumes one poll and reports false. Reading the
// flag does not clear it.
func (r *Reader) Changed(ch int) bool {
	if !valid(ch) {
		return false
	}
	c := &r.ch[ch]
	if c.startup > 0 {
		c.startup--
		return false
	}
	return c.changed
}

// Reset re-arms startup suppression for one channel.
func (r *Reader) Reset(ch int) {
	if !valid(ch) {
		return
	}
	r.ch[ch].startup = r.cfg.StartupPolls
}

func (r *Reader) ResetAll() {
	for ch := 0; ch < Channels; ch++ {
		r.Reset(ch)
	}
}

func (r *Reader) ValueMax() uint16  { return Max }
func (r *Reader) NumChannels() int  { return Channels }
func (r *Reader) Smoothing() uint16 { return r.alpha }
