//go:build shift_register

package leds

// Selected is the backend compiled into this build.
const Selected = BackendShiftRegister
