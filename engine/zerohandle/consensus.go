package zerohandle

import (
	"github.com/npillmayer/arithm"
	"github.com/npillmayer/fixzero/core"
	"github.com/npillmayer/fixzero/core/outline"
)

// Action is the repair decided for a segment.
type Action int

// Repair actions
const (
	Keep      Action = iota // nothing to do
	Reshape                 // install tunnified handles
	QuasiLine               // install near-straight handles
	Flatten                 // remove the handles in all compatible layers
)

func (a Action) String() string {
	switch a {
	case Keep:
		return "keep"
	case Reshape:
		return "reshape"
	case QuasiLine:
		return "quasi-line"
	case Flatten:
		return "flatten"
	}
	return "unknown"
}

// Decision is the outcome of inspecting one segment. Handles are set for
// actions Reshape and QuasiLine.
type Decision struct {
	Action  Action
	Window  Window
	Handles Handles
}

// Decide inspects segment seg, read from window w of a contour. siblings
// delivers the homologous segments of every compatible layer, including the
// segment's own layer; it is called only for degenerate segments.
func Decide(w Window, seg [4]arithm.Pair, siblings func() ([]Segment, error)) (Decision, error) {
	d := Decision{Window: w}
	h, class := Tunnify(seg)
	switch class {
	case NotApplicable:
		return d, nil
	case ZeroHandle:
		d.Action, d.Handles = Reshape, h
		return d, nil
	}
	segs, err := siblings()
	if err != nil {
		return d, err
	}
	if allLineLike(segs) {
		d.Action = Flatten
		return d, nil
	}
	d.Action, d.Handles = QuasiLine, QuasiLineHandles(seg[0], seg[3])
	return d, nil
}

func allLineLike(segs []Segment) bool {
	for _, s := range segs {
		if !IsLineOrShouldBeLine(s) {
			return false
		}
	}
	return true
}

// homologousSegments reads the segment at window w of path j from every
// layer. The points are copied, so the result is a snapshot independent of
// later edits.
func homologousSegments(layers []*outline.Layer, j int, w Window) ([]Segment, error) {
	segs := make([]Segment, 0, len(layers))
	for _, l := range layers {
		p, err := l.Path(j)
		if err != nil {
			return nil, core.WrapError(err, core.EINCOMPATIBLE,
				"layer %q has no path %d", l.Name, j)
		}
		if p.Len() <= maxIndex(w) {
			return nil, core.Error(core.EINCOMPATIBLE,
				"layer %q path %d has only %d nodes, segment is %s", l.Name, j, p.Len(), w)
		}
		segs = append(segs, HomologousSegment(p, w))
	}
	return segs, nil
}

func maxIndex(w Window) int {
	m := w[0]
	for _, i := range w[1:] {
		if i > m {
			m = i
		}
	}
	return m
}
