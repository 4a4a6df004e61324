package leds

// GPIO drives up to eight LEDs, one output line each. There is no batching:
// every Update sets each line independently.
type GPIO struct {
	table
	pins  []Pin
	ready bool
}

// NewGPIO uses at most the first MaxGPIO pins.
func NewGPIO(pins []Pin, cfg Config) *GPIO {
	if len(pins) > MaxGPIO {
		pins = pins[:MaxGPIO]
	}
	return &GPIO{table: newTable(len(pins), cfg), pins: pins}
}

func (g *GPIO) Init() error {
	g.reset()
	for _, p := range g.pins {
		if err := p.ConfigureOutput(false); err != nil {
			g.ready = false
			return err
		}
	}
	g.ready = true
	return nil
}

func (g *GPIO) Update() {
	if !g.ready {
		return
	}
	d := g.tick()
	for i, p := range g.pins {
		p.Set(d < g.level[i])
	}
}
