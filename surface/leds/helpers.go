package leds

import (
	"seqsurface-go/errcode"
	"seqsurface-go/surface/ledmap"
)

// SetParam sets parameter LED Y1..Y4 (y = 0..3) to a 0..1000 intent.
func SetParam(a Array, y int, v uint16) {
	if y < 0 || y > 3 {
		return
	}
	a.Set(ledmap.Y1+y, v)
}

func SetPlayStop(a Array, on bool) { a.Set(ledmap.PlayStop, full(on)) }
func SetSeqRec(a Array, on bool)   { a.Set(ledmap.SeqRec, full(on)) }
func SetSeqErase(a Array, on bool) { a.Set(ledmap.SeqErase, full(on)) }
func SetSeqOnOff(a Array, on bool) { a.Set(ledmap.SeqOnOff, full(on)) }

func full(on bool) uint16 {
	if on {
		return MaxIntent
	}
	return 0
}

// CheckIndex reports errcode.OutOfRange for an index a would ignore. It is a
// validation aid only; array behaviour is the same whether or not it is used.
func CheckIndex(a Array, i int) error {
	if i < 0 || i >= a.Len() {
		return errcode.OutOfRange
	}
	return nil
}
