package leds

import "testing"

func newGPIO(t *testing.T, n int) (*GPIO, []*countPin) {
	t.Helper()
	cps := make([]*countPin, n)
	pins := make([]Pin, n)
	for i := range cps {
		cps[i] = &countPin{}
		pins[i] = cps[i]
	}
	g := NewGPIO(pins, Config{})
	if err := g.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	return g, cps
}

func TestGPIOIsCappedAtEight(t *testing.T) {
	g, _ := newGPIO(t, 12)
	if g.Len() != MaxGPIO {
		t.Fatalf("Len = %d, want %d", g.Len(), MaxGPIO)
	}
}

func TestGPIOPWM(t *testing.T) {
	g, pins := newGPIO(t, 8)
	g.Set(0, 1000)
	g.Set(1, 100)

	var on0, on1, on2 int
	for n := 0; n < 256; n++ {
		g.Update()
		if pins[0].level {
			on0++
		}
		if pins[1].level {
			on1++
		}
		if pins[2].level {
			on2++
		}
	}
	if on0 != 255 || on1 != 25 || on2 != 0 {
		t.Fatalf("on-frames %d %d %d, want 255 25 0", on0, on1, on2)
	}
	if pins[5].sets != 256 {
		t.Fatalf("each pin should be driven every update, got %d", pins[5].sets)
	}
}

func TestGPIOSetAllBudget(t *testing.T) {
	g, _ := newGPIO(t, 8)
	g.SetAll(1000) // 2040 = 8 * 255
	for i := 0; i < 8; i++ {
		if g.Level(i) != MaxLevel {
			t.Fatalf("LED %d level %d", i, g.Level(i))
		}
	}
	g.SetAll(250) // 510 = 255 + 255
	if g.Level(0) != 255 || g.Level(1) != 255 || g.Level(2) != 0 {
		t.Fatalf("SetAll(250) levels %d %d %d", g.Level(0), g.Level(1), g.Level(2))
	}
}

func TestGPIOSharedSemantics(t *testing.T) {
	g, _ := newGPIO(t, 8)

	g.SetBinary(0b10110000)
	want := []uint8{255, 0, 255, 255, 0, 0, 0, 0}
	for i, w := range want {
		if g.Level(i) != w {
			t.Fatalf("SetBinary: LED %d level %d, want %d", i, g.Level(i), w)
		}
	}

	g.Set(1, 400)
	g.Add(1, 400)
	if g.Level(1) != 102+102 {
		t.Fatalf("Add level %d, want 204", g.Level(1))
	}

	g.Set(9, 1000) // beyond the bank
	g.On(8)
	if g.Level(1) != 204 {
		t.Fatal("out-of-range calls changed state")
	}
	g.Clear()
	for i := 0; i < 8; i++ {
		if g.Level(i) != 0 {
			t.Fatal("Clear left a level set")
		}
	}
}
