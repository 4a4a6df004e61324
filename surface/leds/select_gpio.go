//go:build !shift_register && !i2s_audio

package leds

// Selected is the backend compiled into this build.
const Selected = BackendGPIO
