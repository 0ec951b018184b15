package cssprefix

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// resolveProperty returns the style-surface key the runtime supports for a
// canonical property name. The prefixed spelling is tried before the
// unprefixed one: some engines expose both keys but only honor the prefixed
// one, so presence of the unprefixed key alone is not enough to prefer it.
// The historical alternatives from the prefix table come last, in table
// order. Results, including misses, are memoized.
func (p *Prefixer) resolveProperty(name string) (string, bool) {
	if key, ok := p.propCache[name]; ok {
		return key, key != ""
	}
	for _, cand := range p.propertyCandidates(name) {
		if p.probe.Has(cand) {
			p.propCache[name] = cand
			return cand, true
		}
	}
	p.propCache[name] = ""
	return "", false
}

func (p *Prefixer) propertyCandidates(name string) []string {
	cands := make([]string, 0, 2+len(p.info.alternativeProperties[name]))
	if p.info.jsPrefix != "" {
		cands = append(cands, p.info.jsPrefix+capitalize(name))
	}
	cands = append(cands, name)
	return append(cands, p.info.alternativeProperties[name]...)
}

// resolveValue returns the first value spelling the style surface accepts
// for key. value may be a scalar or an ordered sequence of fallback
// scalars. If every candidate is rejected, the original value is passed
// through as a best effort and a single warning is emitted; an unsupported
// value is routine, not an error.
func (p *Prefixer) resolveValue(key, property string, value any, context string) any {
	unprefixed := unprefixedName(property)

	// Bare numbers only need the px normalization, no probing.
	if _, ok := numericValue(value); ok {
		return appendPxIfNeeded(unprefixed, value)
	}

	var candidates []string
	switch v := value.(type) {
	case nil:
		return nil
	case []string:
		candidates = p.sequenceCandidates(stringsToAny(v), unprefixed)
	case []any:
		candidates = p.sequenceCandidates(v, unprefixed)
	default:
		s := formatScalar(v)
		if hasLeadingInt(s) {
			// Already carries an explicit numeric form such as "10em".
			return s
		}
		candidates = p.scalarCandidates(s, property)
	}

	cacheKey := key + "\x00" + strings.Join(candidates, ",")
	if cached, ok := p.valueCache[cacheKey]; ok {
		return cached
	}
	for _, cand := range candidates {
		if p.trySet(key, cand) {
			p.valueCache[cacheKey] = cand
			return cand
		}
	}
	p.log.Warn("unsupported CSS value",
		zap.String("property", property),
		zap.Any("value", value),
		zap.String("context", context))
	p.valueCache[cacheKey] = value
	return value
}

// scalarCandidates builds the fallback chain for a single value token: the
// token itself, its prefixed form, then the legacy spellings from the
// prefix table, keyed by the original property name and value.
func (p *Prefixer) scalarCandidates(value, property string) []string {
	cands := []string{value}
	if p.info.cssPrefix != "" {
		cands = append(cands, p.info.cssPrefix+value)
	}
	if alts, ok := p.info.alternativeValues[property]; ok {
		cands = append(cands, alts[value]...)
	}
	return cands
}

// sequenceCandidates maps every element of a fallback sequence through the
// px normalization and appends, for the numeric elements, their prefixed
// form.
func (p *Prefixer) sequenceCandidates(values []any, unprefixed string) []string {
	cands := make([]string, 0, len(values)*2)
	for _, v := range values {
		cands = append(cands, formatScalar(appendPxIfNeeded(unprefixed, v)))
	}
	if p.info.cssPrefix != "" {
		for _, v := range values {
			if _, ok := numericValue(v); ok {
				cands = append(cands, p.info.cssPrefix+formatScalar(appendPxIfNeeded(unprefixed, v)))
			}
		}
	}
	return cands
}

// appendPxIfNeeded suffixes bare nonzero numbers with the px length unit
// unless the property is unitless (opacity, z-index, flex counts and
// friends). Non-numbers and zero pass through unchanged.
func appendPxIfNeeded(property string, v any) any {
	n, ok := numericValue(v)
	if !ok || n == 0 || unitlessProperties[property] {
		return v
	}
	return formatScalar(v) + "px"
}

// numericValue reports whether v is a Go number and returns it as float64.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	}
	return 0, false
}

// formatScalar renders a scalar the way a style surface expects it.
func formatScalar(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case int:
		return strconv.Itoa(s)
	case int32:
		return strconv.FormatInt(int64(s), 10)
	case int64:
		return strconv.FormatInt(s, 10)
	case uint:
		return strconv.FormatUint(uint64(s), 10)
	case float32:
		return strconv.FormatFloat(float64(s), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// hasLeadingInt reports whether s starts with an integer, i.e. is already a
// numeric-with-unit form such as "10em" or "-2px".
func hasLeadingInt(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '+' || s[0] == '-' {
		i = 1
	}
	return i < len(s) && s[i] >= '0' && s[i] <= '9'
}

func stringsToAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
