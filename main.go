package main

import (
	"context"
	"time"

	"seqsurface-go/bus"
	"seqsurface-go/internal/platform"
	"seqsurface-go/internal/platform/setups"
	"seqsurface-go/services/surface"
	"seqsurface-go/surface/leds"
	"seqsurface-go/types"
	"seqsurface-go/x/fmtx"
)

func main() {
	// Allow USB CDC to enumerate before we print.
	time.Sleep(2 * time.Second)

	plan := setups.SelectedPlan
	if w, err := platform.Console(plan.Console); err == nil {
		fmtx.DefaultOutput = w
	} else {
		println("[main] console unavailable:", err.Error())
	}
	println("[main] boot plan=" + plan.Name + " leds=" + leds.Selected.String())

	if leds.Selected == leds.BackendGPIO && len(plan.DirectLEDConflicts()) > 0 {
		println("[main] warning: direct LED pins share the mux select lines")
	}

	surf, err := platform.Build(platform.DefaultFactory(), plan, leds.Selected, platform.Options{
		LEDs: leds.Config{Debug: func(s string) { fmtx.Println(s) }},
	})
	if err != nil {
		halt("build", err)
	}

	b := bus.NewBus(16)
	ctx := context.Background()

	svc := surface.New(surf.LEDs, surf.Knobs, surface.Config{})
	if err := svc.Start(ctx, b.NewConnection("surface")); err != nil {
		halt("surface", err)
	}

	// Console monitor for knob movement.
	mon := b.NewConnection("monitor")
	knobSub := mon.Subscribe(bus.T("surface", "knob", bus.SingleWild))
	for msg := range knobSub.Channel() {
		if kv, ok := msg.Payload.(types.KnobValue); ok {
			fmtx.Printf("[knob] ch=%d value=%d\n", kv.Channel, kv.Value)
		}
	}
}

func halt(stage string, err error) {
	println("[main] " + stage + " failed: " + err.Error())
	for {
		time.Sleep(time.Second)
	}
}
