package zerohandle

import (
	"github.com/npillmayer/fixzero/core/outline"
)

// Finding reports a segment with zero handles.
type Finding struct {
	Glyph  string
	Layer  string
	Path   int
	Window Window
	Kind   Classification
}

// Scan finds all segments of l with at least one zero handle, without
// changing anything. Each segment is reported once.
func Scan(l *outline.Layer) []Finding {
	var findings []Finding
	for j, p := range l.Paths {
		seen := make(map[int]bool)
		for i := 0; i < p.Len(); i++ {
			if p.Node(i).Type != outline.OffCurve {
				continue
			}
			w, seg := ExtractSegment(p, i)
			if seen[w[1]] {
				continue
			}
			seen[w[1]] = true
			if c := Classify(seg); c != NotApplicable {
				findings = append(findings, Finding{
					Glyph:  glyphName(l),
					Layer:  l.Name,
					Path:   j,
					Window: w,
					Kind:   c,
				})
			}
		}
	}
	return findings
}
