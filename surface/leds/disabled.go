package leds

// Disabled is the backend for builds where the LED pins are claimed by the
// audio output. Every operation is a no-op.
type Disabled struct{}

func (Disabled) Init() error     { return nil }
func (Disabled) Update()         {}
func (Disabled) Continue() bool  { return false }
func (Disabled) Set(int, uint16) {}
func (Disabled) Add(int, uint16) {}
func (Disabled) SetAll(uint16)   {}
func (Disabled) SetBinary(uint8) {}
func (Disabled) On(int)          {}
func (Disabled) Clear()          {}
func (Disabled) Len() int        { return 0 }
func (Disabled) Level(int) uint8 { return 0 }
