/*
Package fontsource reads and writes font source documents in YAML.

A document lists glyphs, their layers, and the closed paths of each layer.
Nodes are written as flow sequences of x, y, role and an optional
"selected" marker:

	name: Demo Sans
	glyphs:
	  - name: a
	    layers:
	      - name: Regular
	        kind: master
	        paths:
	          - nodes:
	              - [0, 0, line]
	              - [0, 0, offcurve]
	              - [5, 5, offcurve]
	              - [10, 0, curve, selected]

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontsource

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/fixzero/core"
	"github.com/npillmayer/fixzero/core/outline"
	"github.com/npillmayer/schuko/tracing"
	"gopkg.in/yaml.v3"
)

// tracer writes to trace with key 'fixzero.font'
func tracer() tracing.Trace {
	return tracing.Select("fixzero.font")
}

type document struct {
	Name   string     `yaml:"name"`
	Glyphs []glyphDoc `yaml:"glyphs"`
}

type glyphDoc struct {
	Name   string     `yaml:"name"`
	Layers []layerDoc `yaml:"layers"`
}

type layerDoc struct {
	Name  string    `yaml:"name"`
	Kind  string    `yaml:"kind,omitempty"`
	Paths []pathDoc `yaml:"paths"`
}

type pathDoc struct {
	Nodes []nodeDoc `yaml:"nodes"`
}

type nodeDoc outline.Node

// UnmarshalYAML decodes a node from a sequence [x, y, role(, selected)].
func (n *nodeDoc) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode || len(value.Content) < 3 || len(value.Content) > 4 {
		return fmt.Errorf("line %d: node must be [x, y, role] or [x, y, role, selected]", value.Line)
	}
	x, err := strconv.ParseFloat(value.Content[0].Value, 64)
	if err != nil {
		return fmt.Errorf("line %d: x coordinate: %w", value.Line, err)
	}
	y, err := strconv.ParseFloat(value.Content[1].Value, 64)
	if err != nil {
		return fmt.Errorf("line %d: y coordinate: %w", value.Line, err)
	}
	t, err := outline.ParseNodeType(value.Content[2].Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	n.Pos, n.Type, n.Selected = arithm.P(x, y), t, false
	if len(value.Content) == 4 {
		if value.Content[3].Value != "selected" {
			return fmt.Errorf("line %d: unknown node flag %q", value.Line, value.Content[3].Value)
		}
		n.Selected = true
	}
	return nil
}

// MarshalYAML encodes a node as a flow sequence.
func (n nodeDoc) MarshalYAML() (interface{}, error) {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	seq.Content = append(seq.Content,
		scalar(strconv.FormatFloat(n.Pos.X(), 'g', -1, 64), ""),
		scalar(strconv.FormatFloat(n.Pos.Y(), 'g', -1, 64), ""),
		scalar(n.Type.String(), "!!str"),
	)
	if n.Selected {
		seq.Content = append(seq.Content, scalar("selected", "!!str"))
	}
	return seq, nil
}

func scalar(v, tag string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: v, Tag: tag}
}

// Read decodes a font source document.
func Read(r io.Reader) (*outline.Font, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot decode font source")
	}
	font := &outline.Font{Name: doc.Name, Glyphs: make([]*outline.Glyph, 0, len(doc.Glyphs))}
	for _, gd := range doc.Glyphs {
		if gd.Name == "" {
			return nil, core.Error(core.EINVALID, "font source contains a glyph without name")
		}
		g := outline.NewGlyph(gd.Name)
		for _, ld := range gd.Layers {
			kind, err := outline.ParseLayerKind(ld.Kind)
			if err != nil {
				return nil, core.WrapError(err, core.EINVALID, "glyph %s, layer %q", gd.Name, ld.Name)
			}
			l := outline.NewLayer(ld.Name, kind)
			for _, pd := range ld.Paths {
				nodes := make([]outline.Node, len(pd.Nodes))
				for i, nd := range pd.Nodes {
					nodes[i] = outline.Node(nd)
				}
				l.Paths = append(l.Paths, outline.NewPath(nodes...))
			}
			g.AddLayer(l)
		}
		font.Glyphs = append(font.Glyphs, g)
	}
	tracer().Infof("font source %q: %d glyph(s)", font.Name, len(font.Glyphs))
	return font, nil
}

// Write encodes font as a font source document.
func Write(w io.Writer, font *outline.Font) error {
	doc := document{Name: font.Name, Glyphs: make([]glyphDoc, 0, len(font.Glyphs))}
	for _, g := range font.Glyphs {
		gd := glyphDoc{Name: g.Name}
		for _, l := range g.Layers() {
			ld := layerDoc{Name: l.Name, Kind: l.Kind.String()}
			for _, p := range l.Paths {
				var pd pathDoc
				for _, n := range p.Nodes() {
					pd.Nodes = append(pd.Nodes, nodeDoc(n))
				}
				ld.Paths = append(ld.Paths, pd)
			}
			gd.Layers = append(gd.Layers, ld)
		}
		doc.Glyphs = append(doc.Glyphs, gd)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot encode font source")
	}
	return enc.Close()
}

// Load reads a font source document from a file.
func Load(filename string) (*outline.Font, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot open font source %s", filename)
	}
	defer f.Close()
	return Read(f)
}

// Save writes a font source document to a file.
func Save(filename string, font *outline.Font) error {
	f, err := os.Create(filename)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot create %s", filename)
	}
	if err := Write(f, font); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
