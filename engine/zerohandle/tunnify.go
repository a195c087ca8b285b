package zerohandle

import (
	"github.com/npillmayer/arithm"
	"github.com/npillmayer/fixzero/core/geom"
)

// Classification is the result of inspecting a segment for zero handles.
type Classification int

// Classifications of a cubic segment
const (
	NotApplicable Classification = iota // no zero handle
	ZeroHandle                          // exactly one zero handle
	Degenerate                          // both handles are zero handles
)

func (c Classification) String() string {
	switch c {
	case NotApplicable:
		return "not-applicable"
	case ZeroHandle:
		return "zero-handle"
	case Degenerate:
		return "degenerate"
	}
	return "unknown"
}

// Handles are the two control points of a cubic segment.
type Handles struct {
	First, Second arithm.Pair
}

// Classify inspects the four points of a cubic segment.
func Classify(seg [4]arithm.Pair) Classification {
	startZero := geom.Equal(seg[0], seg[1])
	endZero := geom.Equal(seg[2], seg[3])
	switch {
	case startZero && endZero:
		return Degenerate
	case startZero || endZero:
		return ZeroHandle
	}
	return NotApplicable
}

// Tunnify computes new handles for a segment with a single zero handle. The
// surviving handle is taken as the intersection of the tangents at both
// anchors; the new handles are placed on the lines from the anchors to that
// intersection, at ratio TunnifyLo on the side of the zero handle and
// TunnifyHi on the other side.
//
// Handles are only valid if the classification returned is ZeroHandle.
func Tunnify(seg [4]arithm.Pair) (Handles, Classification) {
	var x arithm.Pair
	var first, second float64
	switch c := Classify(seg); c {
	case Degenerate, NotApplicable:
		return Handles{}, c
	}
	if geom.Equal(seg[0], seg[1]) {
		x = seg[2]
		first, second = TunnifyLo, TunnifyHi
	} else {
		x = seg[1]
		first, second = TunnifyHi, TunnifyLo
	}
	return Handles{
		First:  geom.Lerp(seg[0], x, first),
		Second: geom.Lerp(seg[3], x, second),
	}, ZeroHandle
}
