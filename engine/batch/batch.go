/*
Package batch runs the zero-handle repair over the glyphs of a font.

Glyphs are selected by an ordered list of include/exclude filters. Each
glyph is repaired on its own: if the repair of a glyph fails, a diagnostic
is reported and the batch continues with the next glyph. Only a malformed
filter list fails the batch as a whole.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package batch

import (
	"github.com/npillmayer/fixzero/core"
	"github.com/npillmayer/fixzero/core/outline"
	"github.com/npillmayer/fixzero/engine/zerohandle"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fixzero.batch'
func tracer() tracing.Trace {
	return tracing.Select("fixzero.batch")
}

// GlyphReport is the outcome of repairing one glyph.
type GlyphReport struct {
	Glyph  string
	Result zerohandle.Result
	Err    error
}

// Report is the outcome of a batch run.
type Report struct {
	Glyphs      []GlyphReport
	Total       zerohandle.Result
	Diagnostics []core.Diagnostic
}

// Failed returns the names of the glyphs whose repair failed.
func (r *Report) Failed() []string {
	var names []string
	for _, g := range r.Glyphs {
		if g.Err != nil {
			names = append(names, g.Glyph)
		}
	}
	return names
}

// Changed returns the names of the glyphs which have been modified.
func (r *Report) Changed() []string {
	var names []string
	for _, g := range r.Glyphs {
		if g.Result.Changed() {
			names = append(names, g.Glyph)
		}
	}
	return names
}

// Run repairs the glyphs of font selected by filters. Diagnostics are
// collected into the report and forwarded to opts.Reporter, if set.
// Run returns an error only if the filters cannot be applied.
func Run(font *outline.Font, filters []Filter, opts zerohandle.Options) (*Report, error) {
	glyphs, err := Select(font, filters)
	if err != nil {
		tracer().Errorf("batch for font %s: %v", font.Name, err)
		return nil, err
	}
	collector := &core.Collector{Next: opts.Reporter}
	opts.Reporter = collector
	report := &Report{Glyphs: make([]GlyphReport, 0, len(glyphs))}
	for _, g := range glyphs {
		res, err := zerohandle.FixGlyph(g, opts)
		if err != nil {
			collector.Report(core.DiagnosticFromError(g.Name, err))
		}
		report.Total.Add(res)
		report.Glyphs = append(report.Glyphs, GlyphReport{Glyph: g.Name, Result: res, Err: err})
	}
	report.Diagnostics = collector.Diagnostics()
	tracer().Infof("batch for font %s: %d glyph(s), %s, %d diagnostic(s)",
		font.Name, len(glyphs), report.Total, len(report.Diagnostics))
	return report, nil
}
