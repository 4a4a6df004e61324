// Package surface runs the control surface: it refreshes the LED array at
// the PWM tick rate, scans the knobs on the array's Continue cadence and
// bridges both to the bus.
//
// Topics:
//
//	surface/state            retained SurfaceState
//	surface/knob/<ch>        retained KnobValue, one per changed read
//	surface/knob/reset       KnobReset
//	surface/led/<method>     LED commands (types.LEDSet, LEDAdd, ...)
//
// All array and reader access happens on the service goroutine.
package surface

import (
	"context"
	"sync/atomic"
	"time"

	"seqsurface-go/bus"
	"seqsurface-go/errcode"
	"seqsurface-go/surface/knobs"
	"seqsurface-go/surface/ledmap"
	"seqsurface-go/surface/leds"
	"seqsurface-go/types"
	"seqsurface-go/x/mathx"
	"seqsurface-go/x/ramp"
	"seqsurface-go/x/timex"
)

var (
	topicState     = bus.T("surface", "state")
	topicKnob      = bus.T("surface", "knob")
	topicKnobReset = bus.T("surface", "knob", "reset")
	topicLEDCmd    = bus.T("surface", "led", bus.MultiWild)
)

const (
	defaultTickHz     = 20000
	defaultScanEvery  = 1000
	defaultMaxPending = 4
)

// Config for the service. Zero values select defaults.
type Config struct {
	// TickPeriod between PWM updates. Default 50µs (20kHz).
	TickPeriod time.Duration
	// ScanEvery is the knob cadence used when the array has no LEDs and
	// therefore no Continue cadence of its own. Default 1000 ticks.
	//
	// The knob reader's startup window counts Changed polls, and the service
	// polls each channel once per scan: at 20kHz with a 1000-tick cadence
	// that is 20 polls/s, so the default 800-poll window hides knob changes
	// for about 40s after Init or a reset.
	ScanEvery uint16
	// Smoothing is handed to the knob reader. Default knobs.DefaultSmoothing.
	Smoothing uint16
	// Strict reports range violations in command replies instead of
	// silently ignoring them.
	Strict bool
	// MaxPending bounds the commands applied per tick. Default 4.
	MaxPending int
}

func (c Config) withDefaults() Config {
	if c.TickPeriod <= 0 {
		c.TickPeriod = time.Duration(timex.PeriodFromHz(defaultTickHz))
	}
	if c.ScanEvery == 0 {
		c.ScanEvery = defaultScanEvery
	}
	if c.Smoothing == 0 {
		c.Smoothing = knobs.DefaultSmoothing
	}
	if c.MaxPending <= 0 {
		c.MaxPending = defaultMaxPending
	}
	return c
}

// Service owns the LED array and knob reader and runs them on one goroutine.
type Service struct {
	cfg   Config
	leds  leds.Array
	knobs *knobs.Reader // nil when the board has no knobs

	conn   *bus.Connection
	ledSub *bus.Subscription
	rstSub *bus.Subscription

	scan  leds.Cadence
	fades [ledmap.Count]fade
	ticks atomic.Uint32
}

type fade struct {
	r      ramp.Linear
	active bool
}

// New builds a service over an LED array and an optional knob reader.
func New(a leds.Array, k *knobs.Reader, cfg Config) *Service {
	if a == nil {
		a = leds.Disabled{}
	}
	cfg = cfg.withDefaults()
	return &Service{
		cfg:   cfg,
		leds:  a,
		knobs: k,
		scan:  leds.Cadence{Every: cfg.ScanEvery},
	}
}

// Init brings up the hardware, subscribes to commands and publishes the
// retained state. Start calls it; tests may call it and drive Tick directly.
func (s *Service) Init(conn *bus.Connection) error {
	if err := s.leds.Init(); err != nil {
		return errcode.Wrap(errcode.PinConfig, "surface: leds", err)
	}
	if s.knobs != nil {
		if err := s.knobs.Init(s.cfg.Smoothing); err != nil {
			return errcode.Wrap(errcode.PinConfig, "surface: knobs", err)
		}
	}
	s.conn = conn
	s.ledSub = conn.Subscribe(topicLEDCmd)
	s.rstSub = conn.Subscribe(topicKnobReset)
	s.publishState()
	return nil
}

// Start initialises the service and runs its loop until ctx is cancelled.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	if err := s.Init(conn); err != nil {
		return err
	}
	go s.serviceLoop(ctx)
	return nil
}

func (s *Service) serviceLoop(ctx context.Context) {
	defer s.close()

	tick := time.NewTicker(s.cfg.TickPeriod)
	defer tick.Stop()

	println("[surface] running backend=" + leds.BackendOf(s.leds).String())
	for {
		select {
		case <-ctx.Done():
			println("[surface] stopping")
			return
		case <-tick.C:
			s.Tick()
		}
	}
}

func (s *Service) close() {
	s.conn.Unsubscribe(s.ledSub)
	s.conn.Unsubscribe(s.rstSub)
}

// Tick runs one loop iteration: pending commands, one PWM update and, on
// the scan cadence, a knob scan.
func (s *Service) Tick() {
	s.ticks.Add(1)
	s.drain()
	s.leds.Update()

	var scan bool
	if s.leds.Len() > 0 {
		scan = s.leds.Continue()
	} else {
		scan = s.scan.Next()
	}
	if scan {
		s.stepFades()
		s.scanKnobs()
	}
}

// Ticks returns the number of Tick calls so far.
func (s *Service) Ticks() uint32 { return s.ticks.Load() }

func (s *Service) drain() {
	for i := 0; i < s.cfg.MaxPending; i++ {
		select {
		case msg, ok := <-s.ledSub.Channel():
			if ok {
				s.reply(msg, s.handleLED(msg))
			}
		case msg, ok := <-s.rstSub.Channel():
			if ok {
				s.reply(msg, s.handleKnobReset(msg))
			}
		default:
			return
		}
	}
}

func (s *Service) scanKnobs() {
	if s.knobs == nil {
		return
	}
	s.knobs.ReadAll()
	for ch := 0; ch < s.knobs.NumChannels(); ch++ {
		if !s.knobs.Changed(ch) {
			continue
		}
		s.conn.Publish(s.conn.NewMessage(topicKnob.Append(ch), types.KnobValue{
			Channel: ch,
			Value:   s.knobs.Value(ch),
			Max:     s.knobs.ValueMax(),
			TS:      timex.NowMs(),
		}, true))
	}
}

func (s *Service) stepFades() {
	for i := range s.fades {
		f := &s.fades[i]
		if !f.active {
			continue
		}
		v, _ := f.r.Next()
		s.leds.Set(i, v)
		f.active = !f.r.Done()
	}
}

func (s *Service) startFade(i int, to, steps uint16) {
	if i < 0 || i >= s.leds.Len() || i >= len(s.fades) {
		return
	}
	// Start from the stored level expressed as an intent.
	cur := mathx.MapU16(uint16(s.leds.Level(i)), 0, leds.MaxLevel, 0, leds.MaxIntent)
	s.fades[i] = fade{r: ramp.NewLinear(cur, mathx.Min(to, leds.MaxIntent), steps), active: true}
}

func (s *Service) cancelFade(i int) {
	if i >= 0 && i < len(s.fades) {
		s.fades[i].active = false
	}
}

func (s *Service) cancelFades() {
	for i := range s.fades {
		s.fades[i].active = false
	}
}

func (s *Service) publishState() {
	n := 0
	if s.knobs != nil {
		n = s.knobs.NumChannels()
	}
	s.conn.Publish(s.conn.NewMessage(topicState, types.SurfaceState{
		Backend: leds.BackendOf(s.leds).String(),
		LEDs:    s.leds.Len(),
		Knobs:   n,
		TS:      timex.NowMs(),
	}, true))
}

// ---- commands ----

func (s *Service) handleLED(msg *bus.Message) error {
	switch p := msg.Payload.(type) {
	case types.LEDSet:
		if err := s.checkLED(p.Index, p.Value); err != nil {
			return err
		}
		s.cancelFade(p.Index)
		s.leds.Set(p.Index, p.Value)
	case types.LEDAdd:
		if err := s.checkLED(p.Index, p.Value); err != nil {
			return err
		}
		s.cancelFade(p.Index)
		s.leds.Add(p.Index, p.Value)
	case types.LEDSetAll:
		if err := s.checkIntent(p.Value); err != nil {
			return err
		}
		s.cancelFades()
		s.leds.SetAll(p.Value)
	case types.LEDBinary:
		s.cancelFades()
		s.leds.SetBinary(p.Value)
	case types.LEDOn:
		if err := s.checkLED(p.Index, 0); err != nil {
			return err
		}
		s.cancelFades()
		s.leds.On(p.Index)
	case types.LEDRamp:
		if err := s.checkLED(p.Index, p.To); err != nil {
			return err
		}
		s.startFade(p.Index, p.To, p.Steps)
	case types.LEDParam:
		if s.cfg.Strict && !mathx.Between(p.Y, 0, 3) {
			return &errcode.E{C: errcode.OutOfRange, Op: "surface: param", Msg: "y must be 0..3"}
		}
		if err := s.checkIntent(p.Value); err != nil {
			return err
		}
		s.cancelFade(ledmap.Y1 + p.Y)
		leds.SetParam(s.leds, p.Y, p.Value)
	case types.LEDClear, nil:
		s.cancelFades()
		s.leds.Clear()
	default:
		return errcode.InvalidPayload
	}
	return nil
}

func (s *Service) handleKnobReset(msg *bus.Message) error {
	if s.knobs == nil {
		return errcode.Unsupported
	}
	switch p := msg.Payload.(type) {
	case types.KnobReset:
		if p.All {
			s.knobs.ResetAll()
			return nil
		}
		if s.cfg.Strict && !mathx.Between(p.Channel, 0, s.knobs.NumChannels()-1) {
			return errcode.OutOfRange
		}
		s.knobs.Reset(p.Channel)
	case nil:
		s.knobs.ResetAll()
	default:
		return errcode.InvalidPayload
	}
	return nil
}

func (s *Service) checkLED(i int, v uint16) error {
	if !s.cfg.Strict {
		return nil
	}
	if err := leds.CheckIndex(s.leds, i); err != nil {
		return err
	}
	return s.checkIntent(v)
}

func (s *Service) checkIntent(v uint16) error {
	if s.cfg.Strict && v > leds.MaxIntent {
		return errcode.OutOfRange
	}
	return nil
}

func (s *Service) reply(req *bus.Message, err error) {
	if len(req.ReplyTo) == 0 {
		if err != nil {
			println("[surface] command rejected:", err.Error())
		}
		return
	}
	if err != nil {
		s.conn.Reply(req, types.ErrorReply{OK: false, Error: string(errcode.Of(err))}, false)
		return
	}
	s.conn.Reply(req, types.OKReply{OK: true}, false)
}
