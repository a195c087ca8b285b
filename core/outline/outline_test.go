package outline

import (
	"errors"
	"testing"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func square(offset float64) *Path {
	return NewPath(
		N(offset, offset, Line),
		N(offset+100, offset, Line),
		N(offset+100, offset+100, Line),
		N(offset, offset+100, Line),
	)
}

func bowl() *Path {
	return NewPath(
		N(0, 0, Line),
		N(0, 0, OffCurve),
		N(5, 5, OffCurve),
		N(10, 0, Curve),
	)
}

func TestPathWrapsIndices(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fixzero.outline")
	defer teardown()
	//
	p := bowl()
	assert.Equal(t, 3, p.Index(-1))
	assert.Equal(t, 1, p.Index(5))
	assert.Equal(t, 2, p.Index(-6))
	assert.Equal(t, Curve, p.Node(-1).Type)
	assert.Equal(t, arithm.P(0, 0), p.Node(4).Pos)
	assert.Equal(t, -1, NewPath().Index(3))
}

func TestPathMutation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fixzero.outline")
	defer teardown()
	//
	p := bowl()
	p.SetPos(-3, arithm.P(2, 2))
	assert.Equal(t, arithm.P(2, 2), p.Node(1).Pos)
	p.SetType(3, Line)
	require.NoError(t, p.Remove(2))
	require.NoError(t, p.Remove(1))
	assert.Equal(t, "ll", p.Signature())
	err := p.Remove(2)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
}

func TestLayerSignature(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fixzero.outline")
	defer teardown()
	//
	l := NewLayer("Regular", Master, bowl(), square(0))
	assert.Equal(t, "looc|llll", l.Signature())
	c := l.Clone()
	assert.True(t, l.CompatibleWith(c))
	c.Paths[0].SetPos(1, arithm.P(9, 9))
	assert.True(t, l.CompatibleWith(c), "positions must not affect compatibility")
	require.NoError(t, c.Paths[1].Remove(0))
	assert.False(t, l.CompatibleWith(c))
	assert.Equal(t, arithm.P(0, 0), l.Paths[0].Node(1).Pos, "clone must be deep")
}

func TestCompatibleLayers(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fixzero.outline")
	defer teardown()
	//
	light := NewLayer("Light", Master, bowl())
	bold := NewLayer("Bold", Master, bowl())
	brace := NewLayer("{150}", Special, bowl())
	backup := NewLayer("Light backup", Backup, bowl())
	other := NewLayer("Broken", Master, square(0))
	g := NewGlyph("a", light, bold, backup, brace, other)
	//
	compat := g.CompatibleLayers(bold)
	assert.Equal(t, []*Layer{light, bold, brace}, compat)
	compat = g.CompatibleLayers(backup)
	assert.Equal(t, []*Layer{light, bold, backup, brace}, compat)
	assert.Same(t, g, light.Glyph())
	assert.Len(t, g.InterpolatingLayers(), 4)
	//
	l, ok := g.Layer("{150}")
	assert.True(t, ok)
	assert.Same(t, brace, l)
}

func TestSelectionAndParsing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fixzero.outline")
	defer teardown()
	//
	p := bowl()
	l := NewLayer("Regular", Master, p)
	assert.False(t, l.HasSelection())
	p.nodes[2].Selected = true
	assert.True(t, l.HasSelection())
	//
	typ, err := ParseNodeType("OffCurve")
	assert.NoError(t, err)
	assert.Equal(t, OffCurve, typ)
	_, err = ParseNodeType("qcurve")
	assert.True(t, errors.Is(err, ErrUnknownNodeType))
	k, err := ParseLayerKind("")
	assert.NoError(t, err)
	assert.Equal(t, Master, k)
	//
	f := &Font{Name: "Demo", Glyphs: []*Glyph{NewGlyph("a"), NewGlyph("b")}}
	assert.Equal(t, []string{"a", "b"}, f.GlyphNames())
	_, ok := f.Glyph("c")
	assert.False(t, ok)
}
