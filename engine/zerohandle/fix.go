package zerohandle

import (
	"fmt"

	"github.com/npillmayer/fixzero/core"
	"github.com/npillmayer/fixzero/core/geom"
	"github.com/npillmayer/fixzero/core/outline"
)

// Options configure a repair run.
type Options struct {
	// SelectedOnly restricts the repair to selected off-curve nodes. It has no
	// effect on layers without any selected node.
	SelectedOnly bool
	// Reporter receives diagnostics. Defaults to core.TraceReporter.
	Reporter core.Reporter
}

func (o Options) reporter() core.Reporter {
	if o.Reporter == nil {
		return core.TraceReporter
	}
	return o.Reporter
}

// Result counts the repairs of a run.
type Result struct {
	Reshaped   int // segments with one zero handle, re-computed
	QuasiLines int // degenerate segments which received near-straight handles
	Flattened  int // degenerate segments whose handles were removed
	Skipped    int // removals skipped in a layer because of structural drift
}

// Changed is true if any repair has been applied.
func (r Result) Changed() bool {
	return r.Reshaped+r.QuasiLines+r.Flattened > 0
}

// Add accumulates the counts of o into r.
func (r *Result) Add(o Result) {
	r.Reshaped += o.Reshaped
	r.QuasiLines += o.QuasiLines
	r.Flattened += o.Flattened
	r.Skipped += o.Skipped
}

func (r Result) String() string {
	return fmt.Sprintf("reshaped=%d quasi-lines=%d flattened=%d skipped=%d",
		r.Reshaped, r.QuasiLines, r.Flattened, r.Skipped)
}

// FixGlyph repairs every master and special layer of g, in layer order.
// An unexpected failure aborts the glyph; the error carries code
// core.EINTERNAL unless a more specific one applies.
func FixGlyph(g *outline.Glyph, opts Options) (res Result, err error) {
	defer guard("fix zero handles", g.Name, &err)
	for _, l := range g.InterpolatingLayers() {
		r, err := fixLayer(l, opts)
		res.Add(r)
		if err != nil {
			return res, err
		}
	}
	tracer().Infof("glyph %s: %s", g.Name, res)
	return res, nil
}

// FixLayer repairs a single layer. Removals are still applied to every
// layer of the glyph compatible with l.
func FixLayer(l *outline.Layer, opts Options) (res Result, err error) {
	defer guard("fix zero handles", glyphName(l), &err)
	return fixLayer(l, opts)
}

func fixLayer(l *outline.Layer, opts Options) (Result, error) {
	var res Result
	rep := opts.reporter()
	selectedOnly := opts.SelectedOnly && l.HasSelection()
	for j, p := range l.Paths {
		compat := compatibleLayers(l)
		wl := newWorklist()
		for i := 0; i < p.Len(); i++ {
			n := p.Node(i)
			if n.Type != outline.OffCurve || (selectedOnly && !n.Selected) {
				continue
			}
			w, seg := ExtractSegment(p, i)
			d, err := Decide(w, seg, func() ([]Segment, error) {
				return homologousSegments(compat, j, w)
			})
			if err != nil {
				return res, err
			}
			if d.Action != Keep {
				tracer().Debugf("layer %q path %d segment %s: %s", l.Name, j, w, d.Action)
			}
			switch d.Action {
			case Reshape:
				setHandles(p, w, d.Handles)
				res.Reshaped++
			case QuasiLine:
				setHandles(p, w, d.Handles)
				res.QuasiLines++
			case Flatten:
				wl.mark(w)
			}
		}
		if wl.empty() {
			continue
		}
		res.Flattened += wl.keys.Size()
		skipped, err := wl.flatten(j, compat, glyphName(l), rep)
		res.Skipped += skipped
		if err != nil {
			return res, err
		}
	}
	return res, nil
}

func setHandles(p *outline.Path, w Window, h Handles) {
	tracer().Debugf("handles %s, %s -> %s, %s",
		geom.Format(p.Node(w[1]).Pos), geom.Format(p.Node(w[2]).Pos),
		geom.Format(h.First), geom.Format(h.Second))
	p.SetPos(w[1], h.First)
	p.SetPos(w[2], h.Second)
}

func compatibleLayers(l *outline.Layer) []*outline.Layer {
	if g := l.Glyph(); g != nil {
		return g.CompatibleLayers(l)
	}
	return []*outline.Layer{l}
}

func glyphName(l *outline.Layer) string {
	if g := l.Glyph(); g != nil {
		return g.Name
	}
	return ""
}

// guard converts a panic during a repair into an EINTERNAL error. Internal
// errors are wrapped with the operation name.
func guard(op, glyph string, err *error) {
	if r := recover(); r != nil {
		tracer().Errorf("%s: glyph %s: recovered from %v", op, glyph, r)
		*err = core.WrapError(fmt.Errorf("%v", r), core.EINTERNAL, "%s failed for glyph %s", op, glyph)
		return
	}
	if *err != nil && core.Code(*err) == core.EINTERNAL {
		*err = core.WrapError(*err, core.EINTERNAL, "%s failed for glyph %s", op, glyph)
	}
}
