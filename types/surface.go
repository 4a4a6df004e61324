package types

// ---- Surface state (retained on surface/state) ----

type SurfaceState struct {
	Backend string `json:"backend"` // "gpio", "shift_register" or "disabled"
	LEDs    int    `json:"leds"`
	Knobs   int    `json:"knobs"`
	TS      int64  `json:"ts_ms"`
}

// ---- Knob events (retained on surface/knob/<ch>) ----

type KnobValue struct {
	Channel int    `json:"channel"`
	Value   uint16 `json:"value"` // 0..Max
	Max     uint16 `json:"max"`
	TS      int64  `json:"ts_ms"`
}

// KnobReset re-arms startup suppression. All selects every channel.
type KnobReset struct {
	Channel int  `json:"channel"`
	All     bool `json:"all,omitempty"`
}

// ---- LED commands (surface/led/<method>) ----

// Brightness values are intents in 0..1000.

type LEDSet struct {
	Index int    `json:"index"`
	Value uint16 `json:"value"`
}

type LEDAdd struct {
	Index int    `json:"index"`
	Value uint16 `json:"value"`
}

type LEDSetAll struct {
	Value uint16 `json:"value"`
}

// LEDBinary lights LEDs 0..7 from the bits of Value, MSB first.
type LEDBinary struct {
	Value uint8 `json:"value"`
}

type LEDOn struct {
	Index int `json:"index"`
}

type LEDClear struct{}

// LEDParam sets one of the four parameter LEDs (Y1..Y4).
type LEDParam struct {
	Y     int    `json:"y"`
	Value uint16 `json:"value"`
}

// LEDRamp fades LED Index to To over Steps knob-scan periods (about 50ms
// each at the default rates). Any other command touching the LED cancels it.
type LEDRamp struct {
	Index int    `json:"index"`
	To    uint16 `json:"to"`
	Steps uint16 `json:"steps"`
}

// ---- Generic replies ----

type OKReply struct {
	OK bool `json:"ok"`
}

type ErrorReply struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}
