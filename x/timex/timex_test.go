package timex

import (
	"testing"
	"time"
)

func TestPeriodFromHz(t *testing.T) {
	if PeriodFromHz(20000) != 50_000 {
		t.Fatalf("20kHz period = %d", PeriodFromHz(20000))
	}
	if PeriodFromHz(0) != 1_000_000_000 {
		t.Fatal("zero frequency not coerced to 1Hz")
	}
}

func TestBusyWaitWaitsAtLeast(t *testing.T) {
	start := time.Now()
	BusyWait(200 * time.Microsecond)
	if time.Since(start) < 200*time.Microsecond {
		t.Fatal("BusyWait returned early")
	}
	BusyWait(-1) // must return immediately
}
