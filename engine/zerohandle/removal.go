package zerohandle

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/fixzero/core"
	"github.com/npillmayer/fixzero/core/outline"
)

// worklist collects the segments of one contour which are to be flattened.
// Segments are keyed by the index of their first handle, so a segment
// visited twice (once per handle) is recorded only once.
type worklist struct {
	keys    *treeset.Set
	windows map[int]Window
}

func newWorklist() *worklist {
	return &worklist{
		keys:    treeset.NewWithIntComparator(),
		windows: make(map[int]Window),
	}
}

func (wl *worklist) mark(w Window) {
	wl.keys.Add(w[1])
	wl.windows[w[1]] = w
}

func (wl *worklist) empty() bool {
	return wl.keys.Empty()
}

// descending returns the recorded windows, highest first handle first.
func (wl *worklist) descending() []Window {
	ws := make([]Window, 0, wl.keys.Size())
	it := wl.keys.Iterator()
	for it.End(); it.Prev(); {
		ws = append(ws, wl.windows[it.Value().(int)])
	}
	return ws
}

// flatten removes the handles of all recorded segments from path j of
// every layer in layers. A layer whose nodes at a window do not match the
// expected structure is skipped for that window, and a diagnostic is
// reported. flatten returns the number of (layer, segment) pairs skipped.
func (wl *worklist) flatten(j int, layers []*outline.Layer, glyph string, rep core.Reporter) (int, error) {
	skipped := 0
	for _, l := range layers {
		p, err := l.Path(j)
		if err != nil {
			rep.Report(removalDiagnostic(glyph, l, err.Error()))
			skipped += wl.keys.Size()
			continue
		}
		removals := treeset.NewWithIntComparator()
		for _, w := range wl.descending() {
			if reason := checkFlattenable(p, w); reason != "" {
				rep.Report(removalDiagnostic(glyph, l, fmt.Sprintf("path %d, segment %s: %s", j, w, reason)))
				skipped++
				continue
			}
			p.SetType(w[3], outline.Line)
			removals.Add(w[1], w[2])
		}
		if err := removeDescending(p, removals); err != nil {
			return skipped, core.WrapError(err, core.EINTERNAL,
				"cannot remove handles from layer %q path %d", l.Name, j)
		}
		tracer().Debugf("layer %q path %d: removed %d handle(s)", l.Name, j, removals.Size())
	}
	return skipped, nil
}

func checkFlattenable(p *outline.Path, w Window) string {
	for _, idx := range w {
		if idx >= p.Len() {
			return fmt.Sprintf("node %d does not exist", idx)
		}
	}
	if t := p.Node(w[1]).Type; t != outline.OffCurve {
		return fmt.Sprintf("node %d is not off-curve but %s", w[1], t)
	}
	if t := p.Node(w[2]).Type; t != outline.OffCurve {
		return fmt.Sprintf("node %d is not off-curve but %s", w[2], t)
	}
	return ""
}

// removeDescending deletes a set of node indices from p, highest index
// first, so no removal shifts an index still to be removed.
func removeDescending(p *outline.Path, indices *treeset.Set) error {
	it := indices.Iterator()
	for it.End(); it.Prev(); {
		if err := p.Remove(it.Value().(int)); err != nil {
			return err
		}
	}
	return nil
}

func removalDiagnostic(glyph string, l *outline.Layer, detail string) core.Diagnostic {
	return core.Diagnostic{
		Title:  "Could not convert into straight segment",
		Detail: fmt.Sprintf("layer %q: %s", l.Name, detail),
		Glyph:  glyph,
		Code:   core.EINCOMPATIBLE,
	}
}
