package outline

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/arithm"
)

// ErrIndexOutOfRange is returned when a node index does not address a node
// of a path.
var ErrIndexOutOfRange = errors.New("node index out of range")

// ErrUnknownNodeType is returned when parsing an unknown node role.
var ErrUnknownNodeType = errors.New("unknown node type")

// NodeType is the role of a node within a path.
type NodeType int8

// Node roles
const (
	Line     NodeType = iota // on-curve, ends a straight segment
	Curve                    // on-curve, ends a Bézier segment
	OffCurve                 // Bézier control point
)

func (t NodeType) String() string {
	switch t {
	case Line:
		return "line"
	case Curve:
		return "curve"
	case OffCurve:
		return "offcurve"
	}
	return "unknown"
}

// Letter is the one-letter code of t used in structural signatures.
func (t NodeType) Letter() byte {
	switch t {
	case Line:
		return 'l'
	case Curve:
		return 'c'
	case OffCurve:
		return 'o'
	}
	return '?'
}

// ParseNodeType parses the textual form of a node role, as produced by
// NodeType.String.
func ParseNodeType(s string) (NodeType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "line":
		return Line, nil
	case "curve":
		return Curve, nil
	case "offcurve", "off":
		return OffCurve, nil
	}
	return Line, fmt.Errorf("%w: %q", ErrUnknownNodeType, s)
}

// Node is a point of a path together with its role.
type Node struct {
	Pos      arithm.Pair
	Type     NodeType
	Selected bool
}

// N creates an unselected node at (x, y).
func N(x, y float64, t NodeType) Node {
	return Node{Pos: arithm.P(x, y), Type: t}
}

// OnCurve is true for line and curve nodes.
func (n Node) OnCurve() bool {
	return n.Type != OffCurve
}

func (n Node) String() string {
	return fmt.Sprintf("(%g, %g) %s", n.Pos.X(), n.Pos.Y(), n.Type)
}

// Path is a closed contour. Node indices wrap around, i.e. they are taken
// modulo the number of nodes.
type Path struct {
	nodes []Node
}

// NewPath creates a closed path from a sequence of nodes.
func NewPath(nodes ...Node) *Path {
	p := &Path{nodes: make([]Node, len(nodes))}
	copy(p.nodes, nodes)
	return p
}

// Len returns the number of nodes of the path.
func (p *Path) Len() int {
	return len(p.nodes)
}

// Index maps any integer to a valid node index, wrapping cyclically.
// For an empty path it returns -1.
func (p *Path) Index(i int) int {
	n := len(p.nodes)
	if n == 0 {
		return -1
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// Node returns the node at wrapped index i. Node panics on an empty path.
func (p *Path) Node(i int) Node {
	return p.nodes[p.Index(i)]
}

// Nodes returns a copy of the path's nodes.
func (p *Path) Nodes() []Node {
	return append([]Node(nil), p.nodes...)
}

// SetPos moves the node at wrapped index i.
func (p *Path) SetPos(i int, pos arithm.Pair) {
	p.nodes[p.Index(i)].Pos = pos
}

// SetType changes the role of the node at wrapped index i.
func (p *Path) SetType(i int, t NodeType) {
	p.nodes[p.Index(i)].Type = t
}

// Remove deletes the node at index i. Other than the accessors, Remove does
// not wrap i, as removing shifts all subsequent indices.
func (p *Path) Remove(i int) error {
	if i < 0 || i >= len(p.nodes) {
		return fmt.Errorf("%w: %d (path has %d nodes)", ErrIndexOutOfRange, i, len(p.nodes))
	}
	p.nodes = append(p.nodes[:i], p.nodes[i+1:]...)
	return nil
}

// Signature returns the role letters of the path's nodes.
func (p *Path) Signature() string {
	b := make([]byte, len(p.nodes))
	for i, n := range p.nodes {
		b[i] = n.Type.Letter()
	}
	return string(b)
}

// Clone returns a deep copy of p.
func (p *Path) Clone() *Path {
	return NewPath(p.nodes...)
}

func (p *Path) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, n := range p.nodes {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(n.String())
	}
	sb.WriteByte(']')
	return sb.String()
}
