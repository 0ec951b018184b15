package cssprefix

import "strings"

// Property names are ASCII, so byte-wise case changes are fine here.

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// unprefixedName strips a leading vendor prefix from a style-surface key:
// "MozBoxFlex" becomes "boxFlex", "msFlexOrder" becomes "flexOrder". Names
// without a known prefix are returned unchanged.
func unprefixedName(name string) string {
	for _, js := range jsPrefixes {
		rest, ok := strings.CutPrefix(name, js)
		if !ok || rest == "" {
			continue
		}
		if rest[0] >= 'A' && rest[0] <= 'Z' {
			return lowerFirst(rest)
		}
	}
	return name
}

// camelize converts a CSS property name to its style-surface key:
// "margin-top" becomes "marginTop" and "-moz-box-flex" becomes
// "MozBoxFlex". The Microsoft prefix keeps a lower-case head ("-ms-flex"
// becomes "msFlex"), matching the CSSOM convention.
func camelize(name string) string {
	prefixed := strings.HasPrefix(name, "-")
	var b strings.Builder
	for i, part := range strings.Split(strings.Trim(name, "-"), "-") {
		if part == "" {
			continue
		}
		if i == 0 {
			if prefixed && part != "ms" {
				part = capitalize(part)
			}
			b.WriteString(part)
			continue
		}
		b.WriteString(capitalize(part))
	}
	return b.String()
}

// hyphenate converts a style-surface key back to CSS syntax: "marginTop"
// becomes "margin-top", "MozBoxFlex" becomes "-moz-box-flex" and "msFlex"
// becomes "-ms-flex".
func hyphenate(key string) string {
	var b strings.Builder
	if strings.HasPrefix(key, "ms") && len(key) > 2 && key[2] >= 'A' && key[2] <= 'Z' {
		b.WriteByte('-')
	}
	for i := 0; i < len(key); i++ {
		c := key[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteByte('-')
			b.WriteByte(c - 'A' + 'a')
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}
