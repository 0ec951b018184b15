package cssprefix

import (
	"fmt"

	"go.uber.org/zap"
)

// Style is a style declaration: canonical property names mapped to scalar
// values (strings, Go numbers or nil) or ordered sequences of scalar
// fallback values.
type Style map[string]any

// Translate rewrites a style declaration into the form the detected engine
// honors. Properties no candidate spelling resolves for are dropped from
// the result with a warning; values no spelling is accepted for are passed
// through unchanged with a warning. The optional context labels the
// diagnostics with the caller.
//
// Values outside the documented shapes are a precondition violation and
// fail fast with an error.
func (p *Prefixer) Translate(style Style, context ...string) (Style, error) {
	ctx := ""
	if len(context) > 0 {
		ctx = context[0]
	}
	if err := checkShapes(style); err != nil {
		return nil, err
	}
	if p.probe == nil {
		return degrade(style), nil
	}
	out := make(Style, len(style))
	for property, value := range style {
		key, ok := p.resolveProperty(property)
		if !ok {
			p.log.Warn("unsupported CSS property",
				zap.String("property", property),
				zap.String("context", ctx))
			continue
		}
		out[key] = p.resolveValue(key, property, value, ctx)
	}
	return out, nil
}

// degrade handles the no-environment mode: nothing can be probed, so keys
// pass through verbatim and fallback sequences collapse to their first
// entry. No caching happens here.
func degrade(style Style) Style {
	out := make(Style, len(style))
	for property, value := range style {
		switch v := value.(type) {
		case []any:
			if len(v) > 0 {
				out[property] = v[0]
			} else {
				out[property] = nil
			}
		case []string:
			if len(v) > 0 {
				out[property] = v[0]
			} else {
				out[property] = nil
			}
		default:
			out[property] = value
		}
	}
	return out
}

// checkShapes rejects style values outside the documented shapes before any
// probing happens.
func checkShapes(style Style) error {
	for property, value := range style {
		switch v := value.(type) {
		case nil, string, []string:
			// ok
		case []any:
			for _, e := range v {
				if !isScalar(e) {
					return fmt.Errorf("cssprefix: property %q: sequence element %v (%T) is not a scalar", property, e, e)
				}
			}
		default:
			if !isScalar(value) {
				return fmt.Errorf("cssprefix: property %q: unsupported value type %T", property, value)
			}
		}
	}
	return nil
}

func isScalar(v any) bool {
	if _, ok := v.(string); ok {
		return true
	}
	_, ok := numericValue(v)
	return ok
}
