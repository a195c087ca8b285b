/*
Package font loads compiled fonts and converts their glyphs to outlines.

Compiled fonts (OpenType/CFF and TrueType) only carry a single master, and
they are never written back. They are used to scan for zero handles, e.g.
to check the output of a font build. TrueType outlines consist of quadratic
segments; these are degree-elevated to cubic segments, which keeps zero
handles (a quadratic control point on top of an end point) detectable.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package font

import (
	"fmt"
	"os"
	"sync"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/arithm"
	"github.com/npillmayer/fixzero/core"
	"github.com/npillmayer/fixzero/core/geom"
	"github.com/npillmayer/fixzero/core/outline"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// tracer writes to trace with key 'fixzero.font'
func tracer() tracing.Trace {
	return tracing.Select("fixzero.font")
}

// ScalableFont is a parsed font binary.
type ScalableFont struct {
	Fontname string
	Filepath string     // file path
	Binary   []byte     // raw data
	SFNT     *sfnt.Font // the font's container
}

// Locate resolves a font by file path or, if no such file exists, by name
// among the fonts installed on the system.
func Locate(name string) (string, error) {
	if fi, err := os.Stat(name); err == nil && !fi.IsDir() {
		return name, nil
	}
	fpath, err := findfont.Find(name)
	if err != nil || fpath == "" {
		return "", core.WrapError(err, core.EMISSING, "font not found: %s", name)
	}
	tracer().Debugf("%s is a system font at %s", name, fpath)
	return fpath, nil
}

// LoadOpenTypeFont loads and parses a font file.
func LoadOpenTypeFont(fontfile string) (*ScalableFont, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read font %s", fontfile)
	}
	f, err := ParseOpenTypeFont(bytez)
	if err != nil {
		return nil, err
	}
	f.Filepath = fontfile
	return f, nil
}

// ParseOpenTypeFont parses a font binary.
func ParseOpenTypeFont(fbytes []byte) (f *ScalableFont, err error) {
	f = &ScalableFont{Binary: fbytes}
	f.SFNT, err = sfnt.Parse(f.Binary)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse font")
	}
	f.Fontname, _ = f.SFNT.Name(nil, sfnt.NameIDFull)
	return
}

// --- Fallback font ---------------------------------------------------------

// FallbackFont returns a font which is always present. Currently we use
// Go Sans.
func FallbackFont() *ScalableFont {
	fallbackFontLoading.Do(func() {
		fallbackFont = loadFallbackFont()
	})
	return fallbackFont
}

var fallbackFontLoading sync.Once

var fallbackFont *ScalableFont

func loadFallbackFont() *ScalableFont {
	var err error
	gofont := &ScalableFont{
		Fontname: "Go Sans",
		Filepath: "internal",
		Binary:   goregular.TTF,
	}
	gofont.SFNT, err = sfnt.Parse(gofont.Binary)
	if err != nil {
		panic("cannot load default font") // this cannot happen
	}
	return gofont
}

// --- Outlines --------------------------------------------------------------

// Outlines converts every glyph of sf to an outline glyph with a single
// master layer, in font units. Glyphs which cannot be loaded are skipped
// and counted in the second return value.
func (sf *ScalableFont) Outlines() (*outline.Font, int, error) {
	if sf == nil || sf.SFNT == nil {
		return nil, 0, core.Error(core.EINVALID, "font not parsed")
	}
	var b sfnt.Buffer
	upem := fixed.I(int(sf.SFNT.UnitsPerEm()))
	n := sf.SFNT.NumGlyphs()
	font := &outline.Font{Name: sf.Fontname, Glyphs: make([]*outline.Glyph, 0, n)}
	skipped := 0
	for i := 0; i < n; i++ {
		gid := sfnt.GlyphIndex(i)
		segs, err := sf.SFNT.LoadGlyph(&b, gid, upem, nil)
		if err != nil {
			tracer().Debugf("glyph %d of %s: %v", i, sf.Fontname, err)
			skipped++
			continue
		}
		name, err := sf.SFNT.GlyphName(&b, gid)
		if err != nil || name == "" {
			name = fmt.Sprintf("gid%d", i)
		}
		layer := outline.NewLayer("Regular", outline.Master, PathsFromSegments(segs)...)
		font.Glyphs = append(font.Glyphs, outline.NewGlyph(name, layer))
	}
	tracer().Infof("font %s: %d glyph outlines, %d skipped", sf.Fontname, len(font.Glyphs), skipped)
	return font, skipped, nil
}

// PathsFromSegments converts sfnt outline segments to closed paths. The
// y axis is flipped back to font orientation (y pointing up).
func PathsFromSegments(segs sfnt.Segments) []*outline.Path {
	var paths []*outline.Path
	var nodes []outline.Node
	var start, cur arithm.Pair
	closePath := func() {
		if len(nodes) == 0 {
			return
		}
		if !geom.Equal(nodes[len(nodes)-1].Pos, start) {
			nodes = append(nodes, outline.Node{Pos: start, Type: outline.Line})
		}
		paths = append(paths, outline.NewPath(nodes...))
		nodes = nil
	}
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			closePath()
			start = toPair(seg.Args[0])
			cur = start
		case sfnt.SegmentOpLineTo:
			cur = toPair(seg.Args[0])
			nodes = append(nodes, outline.Node{Pos: cur, Type: outline.Line})
		case sfnt.SegmentOpQuadTo:
			q, end := toPair(seg.Args[0]), toPair(seg.Args[1])
			nodes = append(nodes,
				outline.Node{Pos: geom.Lerp(cur, q, 2.0/3.0), Type: outline.OffCurve},
				outline.Node{Pos: geom.Lerp(end, q, 2.0/3.0), Type: outline.OffCurve},
				outline.Node{Pos: end, Type: outline.Curve},
			)
			cur = end
		case sfnt.SegmentOpCubeTo:
			cur = toPair(seg.Args[2])
			nodes = append(nodes,
				outline.Node{Pos: toPair(seg.Args[0]), Type: outline.OffCurve},
				outline.Node{Pos: toPair(seg.Args[1]), Type: outline.OffCurve},
				outline.Node{Pos: cur, Type: outline.Curve},
			)
		}
	}
	closePath()
	return paths
}

func toPair(p fixed.Point26_6) arithm.Pair {
	return arithm.P(float64(p.X)/64, -float64(p.Y)/64)
}
