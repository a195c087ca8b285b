/*
Package zerohandle repairs zero handles in glyph outlines.

A zero handle is a Bézier control point which coincides exactly with the
on-curve point it belongs to. Curvature is undefined at such a point, which
shows up as rendering and interpolation artifacts. The repair works per
segment:

▪︎ If exactly one handle of a segment is a zero handle, both handles are
re-computed from the implied tangent intersection ("tunnify"), using
empirically balanced curvature ratios.

▪︎ If both handles are zero handles, the segment is really a straight line.
If the homologous segment is line-like in every compatible layer of the
glyph, the control points are removed from all of these layers. Otherwise
the segment keeps its control points, but they are moved to about a third of
the way along the line, at positions which survive rounding to the integer
grid with minimal change of direction ("quasi-line" handles).

Handle positions are written immediately. Removals change the topology of a
contour and are therefore collected while scanning and applied in one batch,
highest index first, after the contour has been scanned completely.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package zerohandle

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fixzero.engine'
func tracer() tracing.Trace {
	return tracing.Select("fixzero.engine")
}

// Tuning values. These are empirical; changing them changes the visual
// result of a repair.
const (
	TunnifyLo         = 0.43  // handle ratio at the side of the zero handle
	TunnifyHi         = 0.73  // handle ratio at the side of the surviving handle
	QuasiLineFirst    = 1.0 / 3.0
	QuasiLineSecond   = 2.0 / 3.0
	HandleLengthError = 0.075 // allowed deviation of quasi-line handle length
)
