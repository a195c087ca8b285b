package batch

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/fixzero/core"
	"github.com/npillmayer/fixzero/core/outline"
	"golang.org/x/text/unicode/norm"
)

// ErrFilterSyntax is wrapped by errors about malformed glyph filters.
var ErrFilterSyntax = errors.New("malformed glyph filter")

// Mode tells whether a filter keeps or drops the glyphs it names.
type Mode int8

// Filter modes
const (
	Include Mode = iota
	Exclude
)

func (m Mode) String() string {
	if m == Exclude {
		return "exclude"
	}
	return "include"
}

// Filter is a single glyph-name filter, written as "include:a,b,c" or
// "exclude:a,b,c".
type Filter struct {
	Mode  Mode
	Names []string
}

func (f Filter) String() string {
	return f.Mode.String() + ":" + strings.Join(f.Names, ",")
}

// ParseFilter parses one filter. Glyph names are trimmed and normalized
// to Unicode NFC; empty names are dropped.
func ParseFilter(s string) (Filter, error) {
	var f Filter
	mode, list, ok := strings.Cut(s, ":")
	if !ok {
		return f, core.WrapError(fmt.Errorf("%w: %q", ErrFilterSyntax, s), core.EINVALID,
			"glyph filter %q has no mode, expected include: or exclude:", s)
	}
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "include":
		f.Mode = Include
	case "exclude":
		f.Mode = Exclude
	default:
		return f, core.WrapError(fmt.Errorf("%w: %q", ErrFilterSyntax, s), core.EINVALID,
			"unknown glyph filter mode %q", mode)
	}
	for _, name := range strings.Split(list, ",") {
		if name = normalize(name); name != "" {
			f.Names = append(f.Names, name)
		}
	}
	return f, nil
}

// ParseFilters parses an ordered list of filters.
func ParseFilters(ss []string) ([]Filter, error) {
	filters := make([]Filter, 0, len(ss))
	for _, s := range ss {
		f, err := ParseFilter(s)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}
	return filters, nil
}

// Select applies filters in order to the glyphs of font, starting with all
// glyphs. An exclude filter drops the named glyphs, an include filter keeps
// only the named glyphs. Naming a glyph which is not in the font is an error
// (code core.EMISSING). The result keeps font order.
func Select(font *outline.Font, filters []Filter) ([]*outline.Glyph, error) {
	index := make(map[string]*outline.Glyph, len(font.Glyphs))
	selected := make(map[*outline.Glyph]bool, len(font.Glyphs))
	for _, g := range font.Glyphs {
		index[normalize(g.Name)] = g
		selected[g] = true
	}
	for _, f := range filters {
		named := make(map[*outline.Glyph]bool, len(f.Names))
		for _, name := range f.Names {
			g, ok := index[normalize(name)]
			if !ok {
				return nil, core.Error(core.EMISSING, "filter %s references unknown glyph %q", f.Mode, name)
			}
			named[g] = true
		}
		for g := range selected {
			if named[g] == (f.Mode == Exclude) {
				delete(selected, g)
			}
		}
		tracer().Debugf("after filter %s: %d glyph(s) selected", f, len(selected))
	}
	glyphs := make([]*outline.Glyph, 0, len(selected))
	for _, g := range font.Glyphs {
		if selected[g] {
			glyphs = append(glyphs, g)
		}
	}
	return glyphs, nil
}

func normalize(name string) string {
	return norm.NFC.String(strings.TrimSpace(name))
}
