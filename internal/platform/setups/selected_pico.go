//go:build pico

package setups

var SelectedPlan = Pico
