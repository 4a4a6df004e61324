package setups

// Pico is the surface wired to a Raspberry Pi Pico.
var Pico = ResourcePlan{
	Name:          "pico",
	ShiftRegister: &ShiftRegisterPlan{SER: 22, SRCLK: 27, RCLK: 28},
	LEDPins:       []int{12, 13, 14, 15, 16, 17, 18, 19},
	Mux:           &MuxPlan{S0: 14, S1: 15, S2: 16, S3: 17, COM: 26},
	Console:       &UARTPlan{ID: "uart0", TX: 0, RX: 1, Baud: 115200},
}
