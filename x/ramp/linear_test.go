package ramp

import "testing"

func collect(l Linear) []uint16 {
	var out []uint16
	for {
		v, more := l.Next()
		out = append(out, v)
		if !more {
			return out
		}
	}
}

func TestLinearUp(t *testing.T) {
	got := collect(NewLinear(0, 1000, 4))
	want := []uint16{250, 500, 750, 1000}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestLinearDownCarriesRemainder(t *testing.T) {
	got := collect(NewLinear(10, 0, 3))
	// -10/3 per step: -3, -3 (acc carries), last lands on 0.
	want := []uint16{7, 4, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestLinearMonotonic(t *testing.T) {
	prev := uint16(0)
	for _, v := range collect(NewLinear(0, 999, 37)) {
		if v < prev {
			t.Fatalf("ramp went backwards at %d", v)
		}
		prev = v
	}
	if prev != 999 {
		t.Fatalf("ended at %d", prev)
	}
}

func TestLinearStaysWithinEndpoints(t *testing.T) {
	for _, c := range [][3]uint16{{0, 7, 3}, {7, 0, 3}, {500, 501, 9}, {1000, 0, 7}} {
		lo, hi := c[0], c[1]
		if lo > hi {
			lo, hi = hi, lo
		}
		l := NewLinear(c[0], c[1], c[2])
		for !l.Done() {
			if v, _ := l.Next(); v < lo || v > hi {
				t.Fatalf("ramp %v produced %d outside [%d,%d]", c, v, lo, hi)
			}
		}
	}
}

func TestLinearSnapAndDone(t *testing.T) {
	l := NewLinear(100, 600, 0)
	if l.Done() {
		t.Fatal("fresh ramp reported done")
	}
	if v, more := l.Next(); v != 600 || more {
		t.Fatalf("snap = %d,%v", v, more)
	}
	if !l.Done() {
		t.Fatal("expected done")
	}
	if v, _ := l.Next(); v != 600 {
		t.Fatalf("after done = %d", v)
	}
}
