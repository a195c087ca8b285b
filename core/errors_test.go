package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestErrorCodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fixzero.core")
	defer teardown()
	//
	err := Error(EMISSING, "glyph %q not in font", "a.alt")
	assert.Equal(t, EMISSING, Code(err))
	assert.Equal(t, `glyph "a.alt" not in font`, UserMessage(err))
	//
	wrapped := fmt.Errorf("batch: %w", err)
	assert.Equal(t, EMISSING, Code(wrapped), "code should survive wrapping")
	//
	assert.Equal(t, NOERROR, Code(nil))
	assert.Equal(t, EINTERNAL, Code(errors.New("boom")))
	assert.Equal(t, "", UserMessage(nil))
}

func TestWrapError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fixzero.core")
	defer teardown()
	//
	cause := errors.New("index 7 out of range")
	err := WrapError(cause, EINTERNAL, "tunnify failed")
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "tunnify failed", UserMessage(err))
	assert.Contains(t, err.Error(), "index 7 out of range")
	//
	err = ErrorWithCode(nil, EINVALID)
	assert.Equal(t, EINVALID, Code(err))
	assert.Equal(t, "invalid", UserMessage(err))
}

func TestCollector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fixzero.core")
	defer teardown()
	//
	forwarded := 0
	c := &Collector{Next: ReporterFunc(func(Diagnostic) { forwarded++ })}
	c.Report(Diagnostic{Title: "skip", Detail: "node 3 is not off-curve", Glyph: "o"})
	c.Report(DiagnosticFromError("n", Error(EINCOMPATIBLE, "layer drift")))
	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 2, forwarded)
	diags := c.Diagnostics()
	assert.Equal(t, "skip [o]: node 3 is not off-curve", diags[0].String())
	assert.Equal(t, EINCOMPATIBLE, diags[1].Code)
	assert.Equal(t, "layer drift", diags[1].Title)
}
