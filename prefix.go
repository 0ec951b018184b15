package cssprefix

import "regexp"

// prefixInfo describes one vendor prefix: how property keys are spelled on a
// style surface (jsPrefix) and in CSS value syntax (cssPrefix), together
// with the legacy fallback spellings this engine family has used over time.
type prefixInfo struct {
	cssPrefix string
	jsPrefix  string
	// alternativeProperties maps a canonical property name to historical
	// style-surface keys, in the order they should be tried.
	alternativeProperties map[string][]string
	// alternativeValues maps a canonical property name to legacy spellings
	// of individual value tokens.
	alternativeValues map[string]map[string][]string
}

// noPrefix is the neutral entry used when no vendor prefix is detected or no
// environment is available.
var noPrefix = prefixInfo{}

// jsPrefixes lists the known style-surface key prefixes.
var jsPrefixes = []string{"Moz", "Webkit", "ms", "O"}

var prefixTable = map[string]prefixInfo{
	"-moz-": {
		cssPrefix: "-moz-",
		jsPrefix:  "Moz",
		alternativeProperties: map[string][]string{
			// old flexbox spellings, Firefox 21 and earlier
			"alignItems":     {"MozBoxAlign"},
			"flex":           {"MozBoxFlex"},
			"justifyContent": {"MozBoxPack"},
			"order":          {"MozBoxOrdinalGroup"},
		},
		alternativeValues: map[string]map[string][]string{
			"display": {
				"flex":        {"-moz-box"},
				"inline-flex": {"-moz-inline-box"},
			},
			"cursor": {
				"grab":     {"-moz-grab"},
				"grabbing": {"-moz-grabbing"},
				"zoom-in":  {"-moz-zoom-in"},
				"zoom-out": {"-moz-zoom-out"},
			},
		},
	},
	"-ms-": {
		cssPrefix: "-ms-",
		jsPrefix:  "ms",
		alternativeProperties: map[string][]string{
			// tweener flexbox spellings, IE 10
			"alignContent":   {"msFlexLinePack"},
			"alignItems":     {"msFlexAlign"},
			"alignSelf":      {"msFlexItemAlign"},
			"flex":           {"msFlex"},
			"flexBasis":      {"msFlexPreferredSize"},
			"flexDirection":  {"msFlexDirection"},
			"flexGrow":       {"msFlexPositive"},
			"flexShrink":     {"msFlexNegative"},
			"flexWrap":       {"msFlexWrap"},
			"justifyContent": {"msFlexPack"},
			"order":          {"msFlexOrder"},
		},
		alternativeValues: map[string]map[string][]string{
			"display": {
				"flex":        {"-ms-flexbox"},
				"inline-flex": {"-ms-inline-flexbox"},
				"grid":        {"-ms-grid"},
			},
		},
	},
	"-o-": {
		cssPrefix: "-o-",
		jsPrefix:  "O",
	},
	"-webkit-": {
		cssPrefix: "-webkit-",
		jsPrefix:  "Webkit",
		alternativeValues: map[string]map[string][]string{
			"display": {
				// old flexbox spellings, iOS 6 and Safari 6 and earlier
				"flex":        {"-webkit-box"},
				"inline-flex": {"-webkit-inline-box"},
			},
			"cursor": {
				"grab":     {"-webkit-grab"},
				"grabbing": {"-webkit-grabbing"},
				"zoom-in":  {"-webkit-zoom-in"},
				"zoom-out": {"-webkit-zoom-out"},
			},
		},
	},
}

// unitlessProperties are the canonical property names that take bare
// numbers; they must not receive an automatic px suffix.
var unitlessProperties = map[string]bool{
	"animationIterationCount": true,
	"boxFlex":                 true,
	"boxFlexGroup":            true,
	"boxOrdinalGroup":         true,
	"columnCount":             true,
	"fillOpacity":             true,
	"flex":                    true,
	"flexGrow":                true,
	"flexNegative":            true,
	"flexOrder":               true,
	"flexPositive":            true,
	"flexShrink":              true,
	"fontWeight":              true,
	"gridColumn":              true,
	"gridRow":                 true,
	"lineClamp":               true,
	"lineHeight":              true,
	"opacity":                 true,
	"order":                   true,
	"orphans":                 true,
	"stopOpacity":             true,
	"strokeOpacity":           true,
	"tabSize":                 true,
	"widows":                  true,
	"zIndex":                  true,
	"zoom":                    true,
}

var prefixMarker = regexp.MustCompile(`^-(moz|webkit|ms|o)-`)

// detectPrefix scans the environment's computed style names, in order, for
// the first name carrying a vendor-prefix marker and selects the matching
// table entry. A nil environment or the absence of a marker is a normal
// outcome (unprefixed engine) and yields the neutral entry.
func detectPrefix(env Environment) prefixInfo {
	if env == nil {
		return noPrefix
	}
	for _, name := range env.ComputedStyleNames() {
		marker := prefixMarker.FindString(name)
		if marker == "" {
			continue
		}
		if info, ok := prefixTable[marker]; ok {
			return info
		}
		return noPrefix
	}
	return noPrefix
}
