package cd74hc4067

import (
	"testing"
	"time"
)

type order struct{ log []string }

type selPin struct {
	bit   int
	level bool
	o     *order
}

func (p *selPin) ConfigureOutput(initial bool) error { p.level = initial; return nil }
func (p *selPin) Set(high bool) {
	p.level = high
	p.o.log = append(p.o.log, "sel")
}

type adc struct {
	o     *order
	value uint16
	calls int
}

func (a *adc) Configure() error { return nil }
func (a *adc) Sample() uint16 {
	a.calls++
	a.o.log = append(a.o.log, "sample")
	return a.value
}

func newMux(t *testing.T) (*Device, [4]*selPin, *adc, *[]time.Duration, *order) {
	t.Helper()
	o := &order{}
	var pins [4]*selPin
	for i := range pins {
		pins[i] = &selPin{bit: i, o: o}
	}
	a := &adc{o: o, value: 1234}
	var waits []time.Duration
	d := New(pins[0], pins[1], pins[2], pins[3], a, Config{
		Delay: func(dd time.Duration) {
			waits = append(waits, dd)
			o.log = append(o.log, "wait")
		},
	})
	if err := d.Configure(); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	return d, pins, a, &waits, o
}

func TestSelectDrivesAddressBits(t *testing.T) {
	d, pins, _, _, _ := newMux(t)

	for ch := uint8(0); ch < Channels; ch++ {
		d.Select(ch)
		for i, p := range pins {
			want := ch>>uint(i)&1 != 0
			if p.level != want {
				t.Fatalf("channel %d: S%d = %v, want %v", ch, i, p.level, want)
			}
		}
		if d.Selected() != int(ch) {
			t.Fatalf("Selected() = %d, want %d", d.Selected(), ch)
		}
	}
}

func TestReadSettlesBeforeSampling(t *testing.T) {
	d, _, a, waits, o := newMux(t)

	if got := d.Read(11); got != 1234 {
		t.Fatalf("Read = %d, want 1234", got)
	}
	if a.calls != 1 {
		t.Fatalf("expected one sample, got %d", a.calls)
	}
	if len(*waits) != 1 || (*waits)[0] != DefaultSettle {
		t.Fatalf("waits = %v, want [%v]", *waits, DefaultSettle)
	}
	want := []string{"sel", "sel", "sel", "sel", "wait", "sample"}
	if len(o.log) != len(want) {
		t.Fatalf("sequence %v, want %v", o.log, want)
	}
	for i := range want {
		if o.log[i] != want[i] {
			t.Fatalf("sequence %v, want %v", o.log, want)
		}
	}
}

func TestOutOfRangeChannelIgnored(t *testing.T) {
	d, _, a, waits, o := newMux(t)
	d.Select(3)
	o.log = nil
	*waits = nil

	if got := d.Read(16); got != 0 {
		t.Fatalf("Read(16) = %d, want 0", got)
	}
	if a.calls != 0 || len(o.log) != 0 || len(*waits) != 0 {
		t.Fatal("out-of-range read touched the hardware")
	}
	if d.Selected() != 3 {
		t.Fatal("out-of-range read changed the selected channel")
	}
}

func TestReadBeforeConfigure(t *testing.T) {
	o := &order{}
	a := &adc{o: o, value: 99}
	d := New(&selPin{o: o}, &selPin{o: o}, &selPin{o: o}, &selPin{o: o}, a, Config{})
	if d.Read(0) != 0 || a.calls != 0 {
		t.Fatal("read before Configure should be inert")
	}
	if d.Selected() != -1 {
		t.Fatalf("Selected() = %d before Configure", d.Selected())
	}
}

func TestMissingADC(t *testing.T) {
	o := &order{}
	d := New(&selPin{o: o}, &selPin{o: o}, &selPin{o: o}, &selPin{o: o}, nil, Config{})
	if err := d.Configure(); err == nil {
		t.Fatal("expected error for missing adc")
	}
}
