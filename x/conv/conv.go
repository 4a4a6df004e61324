// Package conv writes integers into caller-provided buffers without fmt or
// strconv, for MCU builds where those packages are too large.
package conv

const hexLower = "0123456789abcdef"
const hexUpper = "0123456789ABCDEF"

// Utoa writes base-10 representation of n into buf and returns the used slice.
// buf should be length >= 20 for uint64.
func Utoa(buf []byte, n uint64) []byte {
	i := len(buf)
	if i == 0 {
		return buf[:0]
	}
	if n == 0 {
		i--
		buf[i] = '0'
		return buf[i:]
	}
	for n > 0 && i > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return buf[i:]
}

// Itoa is Utoa for signed values; buf should be length >= 20.
func Itoa(buf []byte, n int64) []byte {
	if n >= 0 {
		return Utoa(buf, uint64(n))
	}
	s := Utoa(buf, uint64(-n))
	i := len(buf) - len(s)
	if i == 0 {
		return s
	}
	buf[i-1] = '-'
	return buf[i-1:]
}

// Hex writes n in base 16 without prefix or padding.
func Hex(buf []byte, n uint64, upper bool) []byte {
	digits := hexLower
	if upper {
		digits = hexUpper
	}
	i := len(buf)
	if i == 0 {
		return buf[:0]
	}
	if n == 0 {
		i--
		buf[i] = '0'
		return buf[i:]
	}
	for n > 0 && i > 0 {
		i--
		buf[i] = digits[n&0xF]
		n >>= 4
	}
	return buf[i:]
}
