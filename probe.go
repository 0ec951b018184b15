package cssprefix

// StyleProbe is a live, assignable style surface used to empirically test
// support. It mirrors the subset of a style object's behaviour the prefixer
// relies on: key membership, assignment and read-back. Assigning the empty
// string must reset the property.
type StyleProbe interface {
	Has(key string) bool
	Get(key string) string
	Set(key, value string)
}

// Environment supplies the two runtime capabilities the prefixer needs: a
// style probe and the computed style names of a reference element, which are
// scanned once for a vendor-prefix marker. A nil Environment means no live
// style surface exists.
type Environment interface {
	Probe() StyleProbe
	ComputedStyleNames() []string
}

// NewEnvironment wraps a style probe and a computed style name list.
func NewEnvironment(probe StyleProbe, computedNames []string) Environment {
	return &environment{probe: probe, names: computedNames}
}

type environment struct {
	probe StyleProbe
	names []string
}

func (e *environment) Probe() StyleProbe            { return e.probe }
func (e *environment) ComputedStyleNames() []string { return e.names }

// MemProbe is an in-memory style surface. Only keys named at construction
// are settable, and an optional accept function decides which values stick;
// rejected values reset the property to the empty string, mirroring how
// browser engines discard unsupported values.
type MemProbe struct {
	keys   map[string]struct{}
	values map[string]string
	accept func(key, value string) bool
}

// NewMemProbe returns a probe whose settable key set is keys. Without an
// accept function every assignment to a settable key sticks.
func NewMemProbe(keys ...string) *MemProbe {
	m := &MemProbe{
		keys:   make(map[string]struct{}, len(keys)),
		values: make(map[string]string),
	}
	for _, k := range keys {
		m.keys[k] = struct{}{}
	}
	return m
}

// Accept installs a value filter and returns the probe.
func (m *MemProbe) Accept(fn func(key, value string) bool) *MemProbe {
	m.accept = fn
	return m
}

// Has reports whether key is settable on this surface.
func (m *MemProbe) Has(key string) bool {
	_, ok := m.keys[key]
	return ok
}

// Get returns the current value for key, or "" if unset.
func (m *MemProbe) Get(key string) string {
	return m.values[key]
}

// Set assigns value to key. Assignments to unknown keys are ignored and
// rejected values leave the property empty.
func (m *MemProbe) Set(key, value string) {
	if _, ok := m.keys[key]; !ok {
		return
	}
	if value == "" || m.accept == nil || m.accept(key, value) {
		m.values[key] = value
		return
	}
	m.values[key] = ""
}
