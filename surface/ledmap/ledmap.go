// Package ledmap translates logical surface LEDs to output bits of the
// 16-bit shift-register image.
//
// The table follows the board wiring and is data, not logic: the step LEDs
// sit on the first register in interleaved order, the parameter and
// transport LEDs on the second.
package ledmap

// Count is the number of logical LEDs.
const Count = 16

// Logical LED indices.
const (
	Step1 = iota
	Step2
	Step3
	Step4
	Step5
	Step6
	Step7
	Step8
	Y1
	Y2
	Y3
	Y4
	PlayStop
	SeqRec
	SeqErase
	SeqOnOff
)

var logicalToBit = [Count]uint8{
	1,  // Step1    -> first QB
	3,  // Step2    -> first QD
	5,  // Step3    -> first QF
	7,  // Step4    -> first QH
	2,  // Step5    -> first QC
	4,  // Step6    -> first QE
	6,  // Step7    -> first QG
	0,  // Step8    -> first QA
	10, // Y1       -> second QC
	12, // Y2       -> second QE
	14, // Y3       -> second QG
	8,  // Y4       -> second QA
	9,  // PlayStop -> second QB
	11, // SeqRec   -> second QD
	13, // SeqErase -> second QF
	15, // SeqOnOff -> second QH
}

// LogicalToBit returns the register bit for a logical LED. Indices outside
// [0, Count) map to bit 0.
func LogicalToBit(i int) uint8 {
	if i < 0 || i >= Count {
		return 0
	}
	return logicalToBit[i]
}
