package svgdom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/svgdom/style"
)

// Parse reads an XML document into a Document. Presentation attributes of
// declared properties are staged at the presentation tier, "style" text is
// parsed and staged at the inline tier, unrecognized attributes go into the
// custom store, and ids register with the document's identifier registry
// (auto-uniquified). All staged styles are flushed before the document is
// returned, so effective values are resolvable immediately.
func Parse(r io.Reader) (*Document, error) {
	dec := xml.NewDecoder(r)
	doc := NewDocument()
	var stack []*Element
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("svgdom: cannot parse document: %w", err)
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var el *Element
			if len(stack) == 0 {
				el = &doc.Element
				el.name = t.Name.Local
				if t.Name.Space != "" {
					el.nsuri = t.Name.Space
					doc.defaultNS = t.Name.Space
				}
			} else {
				el = NewElementNS(t.Name.Local, t.Name.Space)
				stack[len(stack)-1].AppendChild(el)
			}
			if err := applyParsedAttrs(el, doc, t.Attr); err != nil {
				return nil, err
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) == 0 {
				continue
			}
			if s := string(t); strings.TrimSpace(s) != "" {
				stack[len(stack)-1].AppendText(s)
			}
		}
	}
	doc.FlushStyles(true)
	return doc, nil
}

func applyParsedAttrs(el *Element, doc *Document, attrs []xml.Attr) error {
	var id string
	for _, a := range attrs {
		switch {
		case a.Name.Space == "xmlns":
			el.DeclareNamespace(a.Name.Local, a.Value)
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			el.DeclareNamespace("", a.Value)
		case a.Name.Local == "style" && a.Name.Space == "":
			if err := el.StageStyleText(a.Value); err != nil {
				return err
			}
		case a.Name.Local == "id" && a.Name.Space == "":
			id = a.Value
		default:
			if _, declared := style.DescriptorOf(a.Name.Local); declared &&
				(a.Name.Space == "" || a.Name.Space == doc.defaultNS) {
				el.StageStyle(a.Name.Local, style.Property(a.Value), style.PresentationTier)
				continue
			}
			el.SetCustomAttribute(customKey(el, a.Name), a.Value)
		}
	}
	if id != "" {
		if err := el.SetIDForceUnique(id, nil); err != nil {
			return err
		}
	}
	return nil
}

// customKey rebuilds the qualified "prefix:local" form for a foreign
// attribute, if one of the declared prefixes in scope covers its namespace.
// With several candidate prefixes on one element the lexicographically
// smallest wins, keeping the stored key stable.
func customKey(el *Element, name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	for e := el; e != nil; e = e.ParentElement() {
		best := ""
		for prefix, uri := range e.nsdecl {
			if uri == name.Space && prefix != "" && (best == "" || prefix < best) {
				best = prefix
			}
		}
		if best != "" {
			return best + ":" + name.Local
		}
	}
	if name.Space == XLinkNamespace {
		el.DeclareNamespace("xlink", XLinkNamespace)
		return "xlink:" + name.Local
	}
	return name.Local
}
