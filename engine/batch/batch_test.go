package batch

import (
	"errors"
	"testing"

	"github.com/npillmayer/fixzero/core"
	"github.com/npillmayer/fixzero/core/outline"
	"github.com/npillmayer/fixzero/engine/zerohandle"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zeroHandleGlyph(name string) *outline.Glyph {
	return outline.NewGlyph(name, outline.NewLayer("Regular", outline.Master, outline.NewPath(
		outline.N(0, 0, outline.Line),
		outline.N(0, 0, outline.OffCurve),
		outline.N(5, 5, outline.OffCurve),
		outline.N(10, 0, outline.Curve),
	)))
}

func testFont() *outline.Font {
	return &outline.Font{
		Name: "Demo",
		Glyphs: []*outline.Glyph{
			zeroHandleGlyph("a"),
			zeroHandleGlyph("b"),
			zeroHandleGlyph("c"),
			zeroHandleGlyph("e\u0301"), // decomposed e-acute
		},
	}
}

func names(glyphs []*outline.Glyph) []string {
	var ns []string
	for _, g := range glyphs {
		ns = append(ns, g.Name)
	}
	return ns
}

func TestParseFilter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fixzero.batch")
	defer teardown()
	//
	f, err := ParseFilter("exclude: a, b ,,c")
	require.NoError(t, err)
	assert.Equal(t, Exclude, f.Mode)
	assert.Equal(t, []string{"a", "b", "c"}, f.Names)
	assert.Equal(t, "exclude:a,b,c", f.String())
	//
	_, err = ParseFilter("only:a")
	assert.True(t, errors.Is(err, ErrFilterSyntax))
	assert.Equal(t, core.EINVALID, core.Code(err))
	_, err = ParseFilter("a,b")
	assert.True(t, errors.Is(err, ErrFilterSyntax))
	_, err = ParseFilters([]string{"include:a", "bogus"})
	assert.Error(t, err)
}

func TestSelect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fixzero.batch")
	defer teardown()
	//
	font := testFont()
	glyphs, err := Select(font, nil)
	require.NoError(t, err)
	assert.Len(t, glyphs, 4)
	//
	filters, err := ParseFilters([]string{"exclude:b"})
	require.NoError(t, err)
	glyphs, err = Select(font, filters)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c", "e\u0301"}, names(glyphs))
	//
	filters, err = ParseFilters([]string{"include:c,a"})
	require.NoError(t, err)
	glyphs, err = Select(font, filters)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, names(glyphs), "font order is kept")
	//
	filters, err = ParseFilters([]string{"include:a,b,c", "exclude:a"})
	require.NoError(t, err)
	glyphs, err = Select(font, filters)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c"}, names(glyphs))
	//
	filters, err = ParseFilters([]string{"include:\u00e9"}) // precomposed e-acute
	require.NoError(t, err)
	glyphs, err = Select(font, filters)
	require.NoError(t, err)
	assert.Equal(t, []string{"e\u0301"}, names(glyphs))
}

func TestUnknownGlyphFailsBatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fixzero.batch")
	defer teardown()
	//
	font := testFont()
	filters, err := ParseFilters([]string{"exclude:a,zz"})
	require.NoError(t, err)
	report, err := Run(font, filters, zerohandle.Options{})
	assert.Nil(t, report)
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.Contains(t, core.UserMessage(err), "zz")
	// nothing has been touched
	l := font.Glyphs[0].Layers()[0]
	assert.Len(t, zerohandle.Scan(l), 1)
}

func TestRunContinuesAfterFailure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fixzero.batch")
	defer teardown()
	//
	font := testFont()
	broken := outline.NewGlyph("broken", outline.NewLayer("Regular", outline.Master, (*outline.Path)(nil)))
	font.Glyphs = append(font.Glyphs[:1], append([]*outline.Glyph{broken}, font.Glyphs[1:]...)...)
	forwarded := &core.Collector{}
	report, err := Run(font, nil, zerohandle.Options{Reporter: forwarded})
	require.NoError(t, err)
	assert.Equal(t, []string{"broken"}, report.Failed())
	assert.Equal(t, []string{"a", "b", "c", "e\u0301"}, report.Changed())
	assert.Equal(t, 4, report.Total.Reshaped)
	require.Len(t, report.Diagnostics, 1)
	assert.Equal(t, "broken", report.Diagnostics[0].Glyph)
	assert.Equal(t, core.EINTERNAL, report.Diagnostics[0].Code)
	assert.Equal(t, 1, forwarded.Len())
}
