package cssprefix

import "go.uber.org/zap"

// Prefixer translates style declarations for one detected vendor prefix.
// The prefix is detected once, in New, and never re-detected, even if the
// environment changes afterwards; callers relying on stable resolutions get
// the same answer for the lifetime of the Prefixer.
//
// A Prefixer is not safe for concurrent use: probing writes to a shared
// style surface and both resolution caches are unsynchronized.
type Prefixer struct {
	info  prefixInfo
	probe StyleProbe
	log   *zap.Logger

	// propCache maps canonical names to resolved style-surface keys, with
	// "" recording an unsupported property. Both caches are append-only and
	// bounded by the small set of CSS properties, so they are never evicted.
	propCache  map[string]string
	valueCache map[string]any
}

// Option configures a Prefixer.
type Option func(*Prefixer)

// WithLogger directs diagnostics to log. Without it, warnings about
// unsupported properties and values are discarded, which is the intended
// production setting; the translation result is the same either way.
func WithLogger(log *zap.Logger) Option {
	return func(p *Prefixer) {
		if log != nil {
			p.log = log
		}
	}
}

// New detects the active vendor prefix from env and returns a Prefixer
// bound to it. A nil env selects the degraded mode: Translate passes keys
// through verbatim and collapses fallback sequences to their first entry.
func New(env Environment, opts ...Option) *Prefixer {
	p := &Prefixer{
		log:        zap.NewNop(),
		propCache:  make(map[string]string),
		valueCache: make(map[string]any),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.Named("cssprefix")
	p.info = detectPrefix(env)
	if env != nil {
		p.probe = env.Probe()
	}
	return p
}

// CSSPrefix returns the detected prefix in CSS syntax, e.g. "-moz-", or ""
// for an unprefixed engine. Useful for branding markup or class names.
func (p *Prefixer) CSSPrefix() string { return p.info.cssPrefix }

// JSPrefix returns the detected prefix in style-surface key syntax, e.g.
// "Moz", or "" for an unprefixed engine.
func (p *Prefixer) JSPrefix() string { return p.info.jsPrefix }

// trySet empirically tests whether the style surface accepts value for key.
// The property is reset first; engines reject unsupported values by leaving
// the property empty, and may canonicalize accepted ones to a different
// string, so a non-empty read-back is the only success signal.
func (p *Prefixer) trySet(key, value string) bool {
	p.probe.Set(key, "")
	p.probe.Set(key, value)
	return p.probe.Get(key) != ""
}
