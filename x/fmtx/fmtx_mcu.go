//go:build rp2040 || rp2350

package fmtx

import (
	"io"

	"seqsurface-go/x/conv"
)

// DefaultOutput is used by Print/Printf on MCU builds.
// Set this from your platform bootstrap (e.g. a UART writer).
var DefaultOutput io.Writer = discard{}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func Sprintf(format string, a ...any) string {
	var b builder
	b.format(format, a...)
	return string(b.buf)
}

func Printf(format string, a ...any) (int, error) {
	return Fprintf(DefaultOutput, format, a...)
}

func Fprintf(w io.Writer, format string, a ...any) (int, error) {
	var b builder
	b.format(format, a...)
	return w.Write(b.buf)
}

func Errorf(format string, a ...any) error {
	return &stringError{Sprintf(format, a...)}
}

// Println writes operands separated by spaces and a trailing newline.
func Println(a ...any) (int, error) {
	var b builder
	for i, v := range a {
		if i > 0 {
			b.byte(' ')
		}
		b.value(v, 'v')
	}
	b.byte('\n')
	return DefaultOutput.Write(b.buf)
}

// --- Internals: tiny formatter subset ---
// Supports: %s %d %x %X %v %t %%. No width, precision or flags.

type stringError struct{ s string }

func (e *stringError) Error() string { return e.s }

type builder struct {
	buf []byte
	num [20]byte
}

func (b *builder) byte(c byte)  { b.buf = append(b.buf, c) }
func (b *builder) str(s string) { b.buf = append(b.buf, s...) }

func (b *builder) value(v any, verb rune) {
	if s, ok := v.(string); ok {
		b.str(s)
		return
	}
	if p, ok := v.([]byte); ok {
		b.buf = append(b.buf, p...)
		return
	}
	if x, ok := v.(bool); ok {
		if x {
			b.str("true")
		} else {
			b.str("false")
		}
		return
	}
	if e, ok := v.(error); ok {
		b.str(e.Error())
		return
	}
	u, neg, ok := integer(v)
	if !ok {
		b.str("<unk>")
		return
	}
	switch verb {
	case 'x', 'X':
		b.buf = append(b.buf, conv.Hex(b.num[:], u, verb == 'X')...)
	default:
		if neg {
			b.buf = append(b.buf, conv.Itoa(b.num[:], -int64(u))...)
		} else {
			b.buf = append(b.buf, conv.Utoa(b.num[:], u)...)
		}
	}
}

// integer returns the magnitude of v and whether it was negative.
func integer(v any) (uint64, bool, bool) {
	var s int64
	switch t := v.(type) {
	case int:
		s = int64(t)
	case int8:
		s = int64(t)
	case int16:
		s = int64(t)
	case int32:
		s = int64(t)
	case int64:
		s = t
	case uint:
		return uint64(t), false, true
	case uint8:
		return uint64(t), false, true
	case uint16:
		return uint64(t), false, true
	case uint32:
		return uint64(t), false, true
	case uint64:
		return t, false, true
	default:
		return 0, false, false
	}
	if s < 0 {
		return uint64(-s), true, true
	}
	return uint64(s), false, true
}

func (b *builder) format(format string, args ...any) {
	ai := 0
	for i := 0; i < len(format); i++ {
		c := format[i]
		if c != '%' {
			b.byte(c)
			continue
		}
		i++
		if i >= len(format) {
			b.byte('%')
			return
		}
		verb := rune(format[i])
		if verb == '%' {
			b.byte('%')
			continue
		}
		if ai >= len(args) {
			b.str("%!")
			b.byte(byte(verb))
			continue
		}
		arg := args[ai]
		ai++
		switch verb {
		case 's', 'd', 'v', 't', 'x', 'X':
			b.value(arg, verb)
		default:
			b.byte('%')
			b.byte(byte(verb))
		}
	}
}
