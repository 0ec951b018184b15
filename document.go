package cssprefix

import (
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"go.uber.org/multierr"
	"golang.org/x/net/html"
)

// RewriteDocument translates the style attribute of every element in doc
// that carries one, in place. Elements whose declarations do not parse are
// left untouched; their errors are collected and returned combined.
func (p *Prefixer) RewriteDocument(doc *goquery.Document, context ...string) error {
	var errs error
	doc.Find("[style]").Each(func(i int, sel *goquery.Selection) {
		raw, exists := sel.Attr("style")
		if !exists {
			return
		}
		translated, err := p.TranslateDeclarations(raw, context...)
		if err != nil {
			errs = multierr.Append(errs, err)
			return
		}
		sel.SetAttr("style", translated)
	})
	return errs
}

// RewriteMatching is the node-level variant of RewriteDocument: it rewrites
// the style attributes of the elements under root that match selector.
func (p *Prefixer) RewriteMatching(root *html.Node, selector string, context ...string) error {
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return fmt.Errorf("cssprefix: selector %q: %w", selector, err)
	}
	var errs error
	for _, n := range matcher.MatchAll(root) {
		for i, attr := range n.Attr {
			if attr.Key != "style" {
				continue
			}
			translated, err := p.TranslateDeclarations(attr.Val, context...)
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			n.Attr[i].Val = translated
		}
	}
	return errs
}
