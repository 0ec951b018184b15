package cssprefix

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// countingProbe wraps a MemProbe and records how often the surface is
// touched, so tests can assert that memoized resolutions stop probing.
type countingProbe struct {
	*MemProbe
	hasCalls int
	setCalls int
}

func (c *countingProbe) Has(key string) bool {
	c.hasCalls++
	return c.MemProbe.Has(key)
}

func (c *countingProbe) Set(key, value string) {
	c.setCalls++
	c.MemProbe.Set(key, value)
}

func mozEnv(probe StyleProbe) Environment {
	return NewEnvironment(probe, []string{"color", "-moz-box-sizing"})
}

func plainEnv(probe StyleProbe) Environment {
	return NewEnvironment(probe, []string{"color", "display"})
}

func TestResolvePropertyMemoized(t *testing.T) {
	probe := &countingProbe{MemProbe: NewMemProbe("display")}
	p := New(plainEnv(probe))

	key, ok := p.resolveProperty("display")
	require.True(t, ok)
	assert.Equal(t, "display", key)

	probes := probe.hasCalls
	key, ok = p.resolveProperty("display")
	require.True(t, ok)
	assert.Equal(t, "display", key)
	assert.Equal(t, probes, probe.hasCalls, "second resolution must hit the memo")
}

func TestResolvePropertyPrefixedSpellingWins(t *testing.T) {
	// Both spellings are present; the prefixed one must win because some
	// engines expose both keys but only honor the prefixed one.
	probe := NewMemProbe("MozTransform", "transform")
	p := New(mozEnv(probe))

	key, ok := p.resolveProperty("transform")
	require.True(t, ok)
	assert.Equal(t, "MozTransform", key)
}

func TestResolvePropertyAlternativeFallback(t *testing.T) {
	// Neither the prefixed nor the unprefixed spelling exists; the table
	// alternative must be found.
	probe := NewMemProbe("MozBoxFlex")
	p := New(mozEnv(probe))

	key, ok := p.resolveProperty("flex")
	require.True(t, ok)
	assert.Equal(t, "MozBoxFlex", key)
}

func TestResolvePropertyUnsupported(t *testing.T) {
	probe := &countingProbe{MemProbe: NewMemProbe()}
	p := New(plainEnv(probe))

	_, ok := p.resolveProperty("bogusProperty")
	require.False(t, ok)

	probes := probe.hasCalls
	_, ok = p.resolveProperty("bogusProperty")
	require.False(t, ok)
	assert.Equal(t, probes, probe.hasCalls, "missing support must be memoized too")
}

func TestResolveValueFallbackChain(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	probe := NewMemProbe("display").Accept(func(key, value string) bool {
		return value == "-moz-box"
	})
	p := New(mozEnv(probe), WithLogger(zap.New(core)))

	got := p.resolveValue("display", "display", "flex", "")
	assert.Equal(t, "-moz-box", got)
	assert.Equal(t, 0, logs.Len(), "success via fallback is not a warning condition")
}

func TestResolveValueSequenceAcceptsLast(t *testing.T) {
	probe := NewMemProbe("transform").Accept(func(key, value string) bool {
		return value == "c"
	})
	p := New(plainEnv(probe))

	got := p.resolveValue("transform", "transform", []any{"a", "b", "c"}, "")
	assert.Equal(t, "c", got)
}

func TestResolveValueFailureWarnsOnce(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	probe := NewMemProbe("display").Accept(func(key, value string) bool {
		return false
	})
	p := New(mozEnv(probe), WithLogger(zap.New(core)))

	got := p.resolveValue("display", "display", "flex", "header")
	assert.Equal(t, "flex", got, "original value passes through on failure")
	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "display", entry.ContextMap()["property"])
	assert.Equal(t, "header", entry.ContextMap()["context"])

	// The failed resolution is memoized; no second warning.
	got = p.resolveValue("display", "display", "flex", "header")
	assert.Equal(t, "flex", got)
	assert.Equal(t, 1, logs.Len())
}

func TestResolveValueNumericShortcut(t *testing.T) {
	probe := &countingProbe{MemProbe: NewMemProbe("opacity", "marginTop")}
	p := New(plainEnv(probe))

	got := p.resolveValue("opacity", "opacity", 0.5, "")
	assert.Equal(t, 0.5, got, "unitless numbers pass through unchanged")
	got = p.resolveValue("marginTop", "marginTop", 10, "")
	assert.Equal(t, "10px", got)
	assert.Equal(t, 0, probe.setCalls, "numeric values are never probed")
}

func TestResolveValueStringShortcut(t *testing.T) {
	probe := &countingProbe{MemProbe: NewMemProbe("marginTop")}
	p := New(plainEnv(probe))

	got := p.resolveValue("marginTop", "marginTop", "10em", "")
	assert.Equal(t, "10em", got)
	assert.Equal(t, 0, probe.setCalls, "explicit numeric-with-unit forms are never probed")
}

func TestResolveValueNilPassesThrough(t *testing.T) {
	probe := NewMemProbe("display")
	p := New(plainEnv(probe))
	assert.Nil(t, p.resolveValue("display", "display", nil, ""))
}

func TestAppendPxIfNeeded(t *testing.T) {
	tests := []struct {
		property string
		value    any
		want     any
	}{
		{"marginTop", 10, "10px"},
		{"marginTop", 0, 0},
		{"width", 2.5, "2.5px"},
		{"opacity", 0.5, 0.5},
		{"zIndex", 3, 3},
		{"lineHeight", 1.5, 1.5},
		{"boxFlex", 2, 2},
		{"marginTop", "10", "10"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, appendPxIfNeeded(tc.property, tc.value), "property %s value %v", tc.property, tc.value)
	}
}

func TestUnprefixedName(t *testing.T) {
	tests := map[string]string{
		"MozBoxFlex":  "boxFlex",
		"msFlexOrder": "flexOrder",
		"WebkitOrder": "order",
		"OTransform":  "transform",
		"marginTop":   "marginTop",
		"opacity":     "opacity",
	}
	for in, want := range tests {
		assert.Equal(t, want, unprefixedName(in), "input %s", in)
	}
}
