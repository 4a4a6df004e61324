package ramp

import "seqsurface-go/x/mathx"

// Linear steps an integer level towards a target in a fixed number of
// increments. The remainder is carried between steps so the path is even
// and the last step lands exactly on the target.
type Linear struct {
	cur, d, acc, steps int32
	lo, hi             int32
	to                 uint16
	left               uint16
}

// NewLinear prepares a ramp from cur to to in steps calls to Next.
// steps == 0 snaps to the target on the first Next.
func NewLinear(cur, to, steps uint16) Linear {
	if steps == 0 {
		steps = 1
	}
	return Linear{
		cur:   int32(cur),
		d:     int32(to) - int32(cur),
		lo:    int32(mathx.Min(cur, to)),
		hi:    int32(mathx.Max(cur, to)),
		steps: int32(steps),
		to:    to,
		left:  steps,
	}
}

// Next returns the next level and whether further steps remain. After the
// ramp finishes it keeps returning the target.
func (l *Linear) Next() (uint16, bool) {
	if l.left <= 1 {
		l.left = 0
		l.cur = int32(l.to)
		return l.to, false
	}
	l.left--
	l.acc += l.d
	if inc := l.acc / l.steps; inc != 0 {
		l.acc -= inc * l.steps
		l.cur = mathx.Clamp(l.cur+inc, l.lo, l.hi)
	}
	return uint16(l.cur), true
}

// Done reports whether the target has been reached.
func (l *Linear) Done() bool { return l.left == 0 }
