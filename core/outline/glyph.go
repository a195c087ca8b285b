package outline

import (
	"fmt"
	"strings"
)

// LayerKind distinguishes master layers and intermediate ("special") layers
// from layers which do not take part in interpolation.
type LayerKind int8

// Layer kinds
const (
	Master LayerKind = iota
	Special
	Backup
)

func (k LayerKind) String() string {
	switch k {
	case Master:
		return "master"
	case Special:
		return "special"
	case Backup:
		return "backup"
	}
	return "unknown"
}

// ParseLayerKind parses the textual form of a layer kind. The empty string
// denotes a master layer.
func ParseLayerKind(s string) (LayerKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "master":
		return Master, nil
	case "special", "brace", "bracket":
		return Special, nil
	case "backup":
		return Backup, nil
	}
	return Backup, fmt.Errorf("unknown layer kind %q", s)
}

// Interpolating is true for layers which have to stay compatible with
// the other interpolating layers of their glyph.
func (k LayerKind) Interpolating() bool {
	return k == Master || k == Special
}

// Layer is one outline variant of a glyph.
type Layer struct {
	Name  string
	Kind  LayerKind
	Paths []*Path
	glyph *Glyph
}

// NewLayer creates a layer with the given paths.
func NewLayer(name string, kind LayerKind, paths ...*Path) *Layer {
	return &Layer{Name: name, Kind: kind, Paths: paths}
}

// Glyph returns the glyph owning l, or nil for a free-standing layer.
func (l *Layer) Glyph() *Glyph {
	return l.glyph
}

// Signature summarizes the node structure of the layer: one role letter
// per node, paths separated by '|'. It is computed on every call, thus
// always reflects the current structure.
func (l *Layer) Signature() string {
	sigs := make([]string, len(l.Paths))
	for i, p := range l.Paths {
		sigs[i] = p.Signature()
	}
	return strings.Join(sigs, "|")
}

// CompatibleWith is true if l and other have identical signatures.
func (l *Layer) CompatibleWith(other *Layer) bool {
	if other == nil {
		return false
	}
	return l == other || l.Signature() == other.Signature()
}

// HasSelection is true if at least one node of l is selected.
func (l *Layer) HasSelection() bool {
	for _, p := range l.Paths {
		for _, n := range p.nodes {
			if n.Selected {
				return true
			}
		}
	}
	return false
}

// Path returns path j of the layer.
func (l *Layer) Path(j int) (*Path, error) {
	if j < 0 || j >= len(l.Paths) {
		return nil, fmt.Errorf("%w: path %d of layer %q", ErrIndexOutOfRange, j, l.Name)
	}
	return l.Paths[j], nil
}

// Clone returns a deep copy of l, detached from any glyph.
func (l *Layer) Clone() *Layer {
	c := &Layer{Name: l.Name, Kind: l.Kind, Paths: make([]*Path, len(l.Paths))}
	for i, p := range l.Paths {
		c.Paths[i] = p.Clone()
	}
	return c
}

// Glyph owns a set of layers which are expected to stay structurally
// compatible with each other.
type Glyph struct {
	Name   string
	layers []*Layer
}

// NewGlyph creates a glyph and adopts the given layers.
func NewGlyph(name string, layers ...*Layer) *Glyph {
	g := &Glyph{Name: name}
	for _, l := range layers {
		g.AddLayer(l)
	}
	return g
}

// AddLayer appends l to g's layers and makes g its owner.
func (g *Glyph) AddLayer(l *Layer) {
	l.glyph = g
	g.layers = append(g.layers, l)
}

// Layers returns the layers of g in order.
func (g *Glyph) Layers() []*Layer {
	return append([]*Layer(nil), g.layers...)
}

// Layer finds a layer by name.
func (g *Glyph) Layer(name string) (*Layer, bool) {
	for _, l := range g.layers {
		if l.Name == name {
			return l, true
		}
	}
	return nil, false
}

// InterpolatingLayers returns all master and special layers of g.
func (g *Glyph) InterpolatingLayers() []*Layer {
	var ls []*Layer
	for _, l := range g.layers {
		if l.Kind.Interpolating() {
			ls = append(ls, l)
		}
	}
	return ls
}

// CompatibleLayers returns every interpolating layer of g with the same
// signature as l, in layer order. l itself is always part of the result,
// even if it is not an interpolating layer.
func (g *Glyph) CompatibleLayers(l *Layer) []*Layer {
	sig := l.Signature()
	var ls []*Layer
	seen := false
	for _, other := range g.layers {
		if other == l {
			seen = true
			ls = append(ls, l)
			continue
		}
		if other.Kind.Interpolating() && other.Signature() == sig {
			ls = append(ls, other)
		}
	}
	if !seen {
		ls = append([]*Layer{l}, ls...)
	}
	tracer().Debugf("glyph %s: %d layer(s) compatible with %q", g.Name, len(ls), l.Name)
	return ls
}

// Font is a named, ordered collection of glyphs.
type Font struct {
	Name   string
	Glyphs []*Glyph
}

// Glyph finds a glyph by name.
func (f *Font) Glyph(name string) (*Glyph, bool) {
	for _, g := range f.Glyphs {
		if g.Name == name {
			return g, true
		}
	}
	return nil, false
}

// GlyphNames returns the names of all glyphs in font order.
func (f *Font) GlyphNames() []string {
	names := make([]string, len(f.Glyphs))
	for i, g := range f.Glyphs {
		names[i] = g.Name
	}
	return names
}
