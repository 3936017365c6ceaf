package svgdom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/svgdom/style"
	"github.com/npillmayer/svgdom/xmlw"
)

// WriteXML serializes the subtree rooted at e through a Writer. Attribute
// reads during serialization resolve with ModeLocal: only what this element
// actually holds is emitted, never inherited values, so defaults are not
// baked into every descendant.
func (e *Element) WriteXML(w xmlw.Writer) error {
	defaultNS := SVGNamespace
	if doc := e.OwnerDocument(); doc != nil {
		defaultNS = doc.defaultNS
	}
	return e.writeElement(w, defaultNS)
}

// WriteDocument serializes a whole document as XML text.
func (d *Document) WriteDocument(w io.Writer) error {
	dw := xmlw.NewDocWriter(w)
	if err := d.Element.writeElement(dw, d.defaultNS); err != nil {
		return err
	}
	return dw.Flush()
}

func (e *Element) writeElement(w xmlw.Writer, defaultNS string) error {
	e.startTag(w, defaultNS)
	if err := e.writeAttributes(w); err != nil {
		return err
	}
	if err := e.writeContent(w, defaultNS); err != nil {
		return err
	}
	w.EndElement()
	return nil
}

// startTag decides between the unprefixed, explicitly-namespaced and
// prefixed form of the element's own tag: an existing writer prefix wins;
// otherwise a namespace differing from the document default may be served
// by one of the element's own namespace declarations.
func (e *Element) startTag(w xmlw.Writer, defaultNS string) {
	ns := e.nsuri
	if prefix, bound := w.LookupPrefix(ns); bound {
		w.StartElement(e.name, ns, prefix)
		return
	}
	if ns != "" && ns != defaultNS {
		if prefix := e.prefixForURI(ns); prefix != "" {
			w.StartElement(e.name, ns, prefix)
			return
		}
	}
	w.StartElement(e.name, ns, "")
}

func (e *Element) writeAttributes(w xmlw.Writer) error {
	if id := e.ID(); id != "" {
		w.Attribute("id", "", id)
	}
	hasParent := e.ParentElement() != nil
	var styleParts []string
	derived := map[string]float64{} // "<name>-opacity" -> alpha-based factor

	for _, d := range style.Descriptors() {
		if !d.Conv.CanConvert() {
			continue
		}
		if d.Deferred {
			continue // composed in the second pass below
		}
		box, ok := e.attrs.Get(d.Name)
		if !ok {
			continue // never set locally; read path inherits
		}
		val := box.Raw()
		forceWrite := false
		paintProp := d.Name == "fill" || d.Name == "stroke"
		if paintProp && hasParent {
			if p, isPaint := val.(style.Paint); isPaint && p.IsUnset() {
				continue
			}
			if ancestor, found := e.ResolveParentAttribute(d.Name); found {
				if style.ValueOf(val).Equal(style.ValueOf(ancestor)) {
					continue // matches resolved ancestor value
				}
				forceWrite = true // diverges from ancestor, bypass default elision
			}
		}
		str, err := d.Conv.ToString(val)
		if err != nil {
			return fmt.Errorf("svgdom: cannot serialize %s: %w", d.Name, err)
		}
		if p, isPaint := val.(style.Paint); isPaint && p.IsColor() && p.Alpha() < 0xff {
			derived[d.Name+"-opacity"] = float64(p.Alpha()) / 255
		}
		nullFill := d.Name == "fill" && val == nil
		if nullFill {
			str = "none" // the one null that serializes to a literal
		}
		if str == "" && !forceWrite {
			continue
		}
		if d.Foldable {
			styleParts = append(styleParts, d.Name+":"+str)
		} else {
			w.Attribute(d.Name, d.Namespace, str)
		}
	}

	// Second pass: the deferred opacity properties compose an alpha-derived
	// factor with any explicitly set local opacity value.
	for _, d := range style.Descriptors() {
		if !d.Deferred {
			continue
		}
		effective := 1.0
		present := false
		if factor, ok := derived[d.Name]; ok {
			effective = factor
			present = true
		}
		if box, ok := e.attrs.Get(d.Name); ok {
			if f, isFloat := box.Raw().(float64); isFloat {
				effective *= f
				present = true
			}
		}
		if !present {
			continue
		}
		if str := formatOpacity(effective); str != "" {
			w.Attribute(d.Name, d.Namespace, str)
		}
	}

	// Custom (unrecognized) attributes go out verbatim, namespace-qualified
	// by the last ':' in their stored key. A custom "style" is merged into
	// the generated style value rather than overwriting it.
	e.custom.Each(func(name, value string) {
		if name == "style" {
			styleParts = append(styleParts, splitDeclarations(value)...)
			return
		}
		if i := strings.LastIndex(name, ":"); i >= 0 {
			prefix, local := name[:i], name[i+1:]
			if uri, ok := e.lookupNamespaceURI(prefix); ok {
				w.Attribute(local, uri, value)
				return
			}
		}
		w.Attribute(name, "", value)
	})

	// Staged declarations that never applied (unrecognized properties,
	// inconvertible values, cascade keywords) survive the round trip
	// inside the style attribute.
	for _, kv := range e.styles.Declarations() {
		if kv.Value.IsEmpty() || e.attrs.Contains(kv.Key) || e.custom.Contains(kv.Key) {
			continue
		}
		styleParts = append(styleParts, kv.Key+":"+kv.Value.String())
	}

	if len(styleParts) > 0 {
		w.Attribute("style", "", strings.Join(styleParts, ";"))
	}
	return nil
}

func (e *Element) writeContent(w xmlw.Writer, defaultNS string) error {
	if len(e.content) > 0 {
		for _, cn := range e.content {
			if child, ok := cn.AsElement(); ok {
				if err := child.writeElement(w, defaultNS); err != nil {
					return err
				}
				continue
			}
			if text, ok := cn.AsText(); ok {
				w.Text(text)
			}
		}
		return nil
	}
	w.Text(e.Content)
	for _, child := range e.ChildElements() {
		if err := child.writeElement(w, defaultNS); err != nil {
			return err
		}
	}
	return nil
}

// formatOpacity rounds to 2 decimal places, half away from zero.
func formatOpacity(v float64) string {
	rounded := math.Round(v*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64)
}

// splitDeclarations splits raw "a:b;c:d" style text into its declarations.
func splitDeclarations(text string) []string {
	var parts []string
	for _, p := range strings.Split(text, ";") {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}
