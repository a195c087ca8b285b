package zerohandle

import (
	"fmt"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/fixzero/core/geom"
	"github.com/npillmayer/fixzero/core/outline"
)

// NodeReader is the read capability the segment extractor needs from a
// contour. Node must accept any integer index and wrap it.
type NodeReader interface {
	Len() int
	Node(i int) outline.Node
}

// Window holds the node indices of a cubic segment:
// start anchor, first handle, second handle, end anchor.
type Window [4]int

func (w Window) String() string {
	return fmt.Sprintf("[%d %d %d %d]", w[0], w[1], w[2], w[3])
}

// Segment is the list of points read off a contour for a window. It has
// either 4 points (a cubic Bézier segment) or 2 points (a straight line).
type Segment []arithm.Pair

// SegmentWindow determines the window of the segment governing the off-curve
// node at index i. If the node before i is off-curve as well, i is the
// second handle of its segment. All indices are wrapped to the contour.
func SegmentWindow(c NodeReader, i int) Window {
	var w Window
	if c.Node(i-1).Type == outline.OffCurve {
		w = Window{i - 2, i - 1, i, i + 1}
	} else {
		w = Window{i - 1, i, i + 1, i + 2}
	}
	n := c.Len()
	for k := range w {
		w[k] %= n
		if w[k] < 0 {
			w[k] += n
		}
	}
	return w
}

// ExtractSegment returns the window and the four points of the segment
// governing the off-curve node at index i.
func ExtractSegment(c NodeReader, i int) (Window, [4]arithm.Pair) {
	w := SegmentWindow(c, i)
	var pts [4]arithm.Pair
	for k, idx := range w {
		pts[k] = c.Node(idx).Pos
	}
	return w, pts
}

// HomologousSegment reads the segment at window w from a contour of a
// sibling layer. If the sibling does not have two handles at the window's
// inner positions, the sibling segment is a straight line from w[0] to w[3].
func HomologousSegment(c NodeReader, w Window) Segment {
	if c.Node(w[1]).Type != outline.OffCurve || c.Node(w[2]).Type != outline.OffCurve {
		return Segment{c.Node(w[0]).Pos, c.Node(w[3]).Pos}
	}
	return Segment{c.Node(w[0]).Pos, c.Node(w[1]).Pos, c.Node(w[2]).Pos, c.Node(w[3]).Pos}
}

// IsLineOrShouldBeLine is true for straight segments and for cubic segments
// where both handles are zero handles.
func IsLineOrShouldBeLine(seg Segment) bool {
	switch len(seg) {
	case 2:
		return true
	case 4:
		return geom.Equal(seg[0], seg[1]) && geom.Equal(seg[2], seg[3])
	}
	return false
}
