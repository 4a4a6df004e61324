//go:build !pico

package setups

// SelectedPlan without a board tag is the Pico wiring without a console, for
// host runs against fake pins.
var SelectedPlan = ResourcePlan{
	Name:          "sim",
	ShiftRegister: Pico.ShiftRegister,
	LEDPins:       Pico.LEDPins,
	Mux:           Pico.Mux,
}
