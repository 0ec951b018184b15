package cssprefix

import (
	"fmt"
	"sort"
	"strings"

	"github.com/speedata/css/scanner"
)

// tokenstream is a list of CSS tokens
type tokenstream []*scanner.Token

func (t tokenstream) String() string {
	ret := []string{}
	for _, tok := range t {
		ret = append(ret, tok.Value)
	}
	return strings.Join(ret, "")
}

func tokenizeCSSString(contents string) tokenstream {
	var toks tokenstream
	s := scanner.New(contents)
	for {
		tok := s.Next()
		if tok.Type == scanner.EOF || tok.Type == scanner.Error {
			break
		}
		switch tok.Type {
		case scanner.Comment:
			// ignore
		default:
			toks = append(toks, tok)
		}
	}
	return toks
}

func trimSpace(toks tokenstream) tokenstream {
	i := 0
	for {
		if i == len(toks) {
			break
		}
		if t := toks[i]; t.Type == scanner.S {
			i++
		} else {
			break
		}
	}
	return toks[i:]
}

// ParseDeclarations parses inline declaration text, such as the contents of
// a style attribute ("display: flex; margin-top: 10px"), into a Style. CSS
// property names are converted to their style-surface keys ("margin-top"
// becomes "marginTop"); values are kept as raw strings.
func ParseDeclarations(text string) (Style, error) {
	toks := trimSpace(tokenizeCSSString(text))
	style := Style{}
	start := 0
	colon := -1
	flush := func(end int) error {
		seg := trimSpace(toks[start:end])
		if len(seg) == 0 {
			return nil
		}
		if colon < 0 {
			return fmt.Errorf("cssprefix: declaration %q has no colon", seg.String())
		}
		key := strings.TrimSpace(toks[start:colon].String())
		value := strings.TrimSpace(toks[colon+1 : end].String())
		if key == "" || value == "" {
			return fmt.Errorf("cssprefix: incomplete declaration %q", seg.String())
		}
		style[camelize(key)] = value
		return nil
	}
	for i, t := range toks {
		if t.Type != scanner.Delim {
			continue
		}
		switch t.Value {
		case ":":
			if colon < start {
				colon = i
			}
		case ";":
			if err := flush(i); err != nil {
				return nil, err
			}
			start = i + 1
			colon = -1
		}
	}
	if err := flush(len(toks)); err != nil {
		return nil, err
	}
	return style, nil
}

// FormatDeclarations renders a style as CSS declaration text with dash-case
// property names ("MozBoxFlex" becomes "-moz-box-flex"). Properties are
// sorted for deterministic output; fallback sequences collapse to their
// first entry, matching the no-environment translation mode.
func FormatDeclarations(style Style) string {
	names := make([]string, 0, len(style))
	for name := range style {
		names = append(names, name)
	}
	sort.Strings(names)
	var b strings.Builder
	for i, name := range names {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(hyphenate(name))
		b.WriteString(": ")
		b.WriteString(scalarText(style[name]))
	}
	return b.String()
}

// String renders the style as CSS declaration text.
func (s Style) String() string {
	return FormatDeclarations(s)
}

func scalarText(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case []any:
		if len(s) == 0 {
			return ""
		}
		return formatScalar(s[0])
	case []string:
		if len(s) == 0 {
			return ""
		}
		return s[0]
	default:
		return formatScalar(v)
	}
}

// TranslateDeclarations parses declaration text, translates it and renders
// the result, ready to be written back into a style attribute.
func (p *Prefixer) TranslateDeclarations(text string, context ...string) (string, error) {
	style, err := ParseDeclarations(text)
	if err != nil {
		return "", err
	}
	translated, err := p.Translate(style, context...)
	if err != nil {
		return "", err
	}
	return FormatDeclarations(translated), nil
}
