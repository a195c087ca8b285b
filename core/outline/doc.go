/*
Package outline holds the glyph outline model the repair engine works on.

A Font owns Glyphs, a Glyph owns Layers, and a Layer owns closed Paths, each
of which is a cyclic sequence of Nodes. Nodes are either on-curve (line or
curve end points) or off-curve (Bézier control points). Two layers of a glyph
are compatible if their structural signatures are identical; only then may
nodes be compared or edited by index across layers.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package outline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fixzero.outline'
func tracer() tracing.Trace {
	return tracing.Select("fixzero.outline")
}
