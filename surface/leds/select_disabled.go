//go:build !shift_register && i2s_audio

package leds

// Selected is the backend compiled into this build. The I2S audio output
// uses GPIO 18-19, which the direct-GPIO LED bank also needs.
const Selected = BackendDisabled
