// Package goquery implements the orgscrape extraction core on top of
// goquery: HTML parsing, the field extractors and the record assembler.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/orgscrape"
	"golang.org/x/net/html"
)

// Document is a parsed page supporting CSS selector lookup and visible
// text extraction. The served markup is inspected as is; no scripts run.
type Document struct {
	doc *goquery.Document
}

// Parse parses raw HTML into a Document.
// Returns EPARSE if the markup cannot be read.
func Parse(raw string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return nil, orgscrape.Errorf(orgscrape.EPARSE, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc}, nil
}

// SelectFirst returns the first element matching selector in document
// order, or nil. An invalid selector matches nothing.
func (d *Document) SelectFirst(selector string) *Element {
	sel := d.doc.Find(selector).First()
	if sel.Length() == 0 {
		return nil
	}
	return &Element{sel: sel}
}

// SelectAll returns every element matching selector in document order.
func (d *Document) SelectAll(selector string) []*Element {
	var elems []*Element
	d.doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		elems = append(elems, &Element{sel: sel})
	})
	return elems
}

// FullText returns the visible text of the whole document, normalized.
// The title is included; scripts, styles and templates are not.
func (d *Document) FullText() string {
	return visibleText(d.doc.Nodes)
}

// Element is a single node of a Document.
type Element struct {
	sel *goquery.Selection
}

// Text returns the visible text below the element, normalized.
func (e *Element) Text() string {
	return visibleText(e.sel.Nodes)
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	return e.sel.Attr(name)
}

// hiddenElements never contribute visible text.
var hiddenElements = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

// blockElements separate their text from the surrounding text.
var blockElements = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"br": true, "dd": true, "div": true, "dl": true, "dt": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "option": true, "p": true, "section": true, "table": true,
	"td": true, "th": true, "title": true, "tr": true, "ul": true,
}

func visibleText(nodes []*html.Node) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
			return
		case html.ElementNode:
			if hiddenElements[n.Data] {
				return
			}
			if blockElements[n.Data] {
				b.WriteByte(' ')
				defer b.WriteByte(' ')
			}
		case html.CommentNode, html.DoctypeNode:
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range nodes {
		walk(n)
	}
	return orgscrape.Normalize(b.String())
}
