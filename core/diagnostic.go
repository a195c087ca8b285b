package core

import (
	"fmt"
	"sync"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'fixzero.core'
func tracer() tracing.Trace {
	return tracing.Select("fixzero.core")
}

// Diagnostic is a structured message about a recoverable failure. Title is
// a short human-readable headline, Detail carries the free text. Glyph names
// the glyph concerned, if any.
type Diagnostic struct {
	Title  string
	Detail string
	Glyph  string
	Code   int
}

func (d Diagnostic) String() string {
	if d.Glyph == "" {
		return fmt.Sprintf("%s: %s", d.Title, d.Detail)
	}
	return fmt.Sprintf("%s [%s]: %s", d.Title, d.Glyph, d.Detail)
}

// DiagnosticFromError creates a diagnostic for an error, using the error's
// user message as title.
func DiagnosticFromError(glyph string, err error) Diagnostic {
	return Diagnostic{
		Title:  UserMessage(err),
		Detail: err.Error(),
		Glyph:  glyph,
		Code:   Code(err),
	}
}

// Reporter is the surface diagnostics are delivered to.
type Reporter interface {
	Report(Diagnostic)
}

// ReporterFunc adapts a function to interface Reporter.
type ReporterFunc func(Diagnostic)

// Report calls f(d).
func (f ReporterFunc) Report(d Diagnostic) {
	f(d)
}

// TraceReporter reports diagnostics to the core tracer at level Error.
var TraceReporter Reporter = ReporterFunc(func(d Diagnostic) {
	tracer().Errorf("%s", d.String())
})

// Collector records diagnostics for later inspection. It is safe for
// concurrent use. If Next is set, every diagnostic is forwarded to it.
type Collector struct {
	sync.Mutex
	Next  Reporter
	diags []Diagnostic
}

// Report appends d to the collected diagnostics.
func (c *Collector) Report(d Diagnostic) {
	c.Lock()
	c.diags = append(c.diags, d)
	c.Unlock()
	if c.Next != nil {
		c.Next.Report(d)
	}
}

// Diagnostics returns a copy of all diagnostics collected so far.
func (c *Collector) Diagnostics() []Diagnostic {
	c.Lock()
	defer c.Unlock()
	return append([]Diagnostic(nil), c.diags...)
}

// Len returns the number of diagnostics collected.
func (c *Collector) Len() int {
	c.Lock()
	defer c.Unlock()
	return len(c.diags)
}
