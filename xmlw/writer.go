package xmlw

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Writer is the abstract document-emission contract the element model
// serializes through. Attribute calls must follow the StartElement call for
// their element, before any Text or child StartElement. Implementations
// must preserve the exact attribute and element order they are handed;
// round-trip fidelity depends on it.
type Writer interface {
	StartElement(name, nsuri, prefix string)
	Attribute(name, nsuri, value string)
	Text(s string)
	EndElement()
	LookupPrefix(nsuri string) (string, bool)
}

// DocWriter is a Writer emitting XML text to an io.Writer. Namespace
// prefixes may be pre-bound with Bind; prefixes for unknown attribute
// namespaces are invented on the fly (ns1, ns2, …).
type DocWriter struct {
	w       *bufio.Writer
	ctx     *nsContext // innermost namespace binding context
	stack   []string   // qualified names of open elements
	openTag bool       // start tag still open for attributes
	gen     int        // generated prefix counter
	err     error      // sticky first error
}

// Track namespace bindings. Each element level inherits the bindings of its
// parent; the map goes namespace URI -> prefix.
type nsContext struct {
	pfxmap map[string]string
	parent *nsContext
}

func (ctx *nsContext) lookup(uri string) (string, bool) {
	for c := ctx; c != nil; c = c.parent {
		if p, ok := c.pfxmap[uri]; ok {
			return p, true
		}
	}
	return "", false
}

func (ctx *nsContext) bind(uri, prefix string) {
	if ctx.pfxmap == nil {
		ctx.pfxmap = make(map[string]string)
	}
	ctx.pfxmap[uri] = prefix
}

// NewDocWriter creates a DocWriter emitting to w.
func NewDocWriter(w io.Writer) *DocWriter {
	return &DocWriter{
		w:   bufio.NewWriter(w),
		ctx: &nsContext{},
	}
}

// Bind pre-declares a namespace prefix for a URI, scoped to the current
// element (or the whole document when called before the first element).
func (dw *DocWriter) Bind(prefix, uri string) {
	dw.ctx.bind(uri, prefix)
}

// LookupPrefix returns the prefix currently bound to a namespace URI.
func (dw *DocWriter) LookupPrefix(nsuri string) (string, bool) {
	return dw.ctx.lookup(nsuri)
}

// StartElement opens an element. With a non-empty prefix the tag is emitted
// prefixed, binding the prefix to nsuri if it isn't already; with only
// nsuri set, the element carries an explicit default-namespace declaration.
func (dw *DocWriter) StartElement(name, nsuri, prefix string) {
	dw.closeStartTag()
	dw.ctx = &nsContext{parent: dw.ctx}
	qname := name
	var nsdecl string
	if prefix != "" {
		qname = prefix + ":" + name
		if bound, ok := dw.ctx.lookup(nsuri); !ok || bound != prefix {
			dw.ctx.bind(nsuri, prefix)
			nsdecl = fmt.Sprintf(` xmlns:%s="%s"`, prefix, escapeAttr(nsuri))
		}
	} else if nsuri != "" {
		if _, ok := dw.ctx.lookup(nsuri); !ok {
			dw.ctx.bind(nsuri, "")
			nsdecl = fmt.Sprintf(` xmlns="%s"`, escapeAttr(nsuri))
		}
	}
	dw.print("<" + qname + nsdecl)
	dw.stack = append(dw.stack, qname)
	dw.openTag = true
}

// Attribute emits an attribute on the currently open start tag. A non-empty
// nsuri qualifies the attribute with the bound prefix, inventing and
// declaring one if the URI is unbound.
func (dw *DocWriter) Attribute(name, nsuri, value string) {
	if !dw.openTag {
		dw.fail(fmt.Errorf("xmlw: attribute %q outside of start tag", name))
		return
	}
	qname := name
	if nsuri != "" {
		prefix, ok := dw.ctx.lookup(nsuri)
		if !ok || prefix == "" {
			dw.gen++
			prefix = fmt.Sprintf("ns%d", dw.gen)
			dw.ctx.bind(nsuri, prefix)
			dw.print(fmt.Sprintf(` xmlns:%s="%s"`, prefix, escapeAttr(nsuri)))
		}
		qname = prefix + ":" + name
	}
	dw.print(fmt.Sprintf(` %s="%s"`, qname, escapeAttr(value)))
}

// Text emits escaped character data.
func (dw *DocWriter) Text(s string) {
	if s == "" {
		return
	}
	dw.closeStartTag()
	dw.print(escapeText(s))
}

// EndElement closes the innermost open element.
func (dw *DocWriter) EndElement() {
	if len(dw.stack) == 0 {
		dw.fail(fmt.Errorf("xmlw: end element without start"))
		return
	}
	qname := dw.stack[len(dw.stack)-1]
	dw.stack = dw.stack[:len(dw.stack)-1]
	if dw.openTag {
		dw.print("/>")
		dw.openTag = false
	} else {
		dw.print("</" + qname + ">")
	}
	dw.ctx = dw.ctx.parent
}

// Flush flushes buffered output and reports the first error encountered.
func (dw *DocWriter) Flush() error {
	if dw.err != nil {
		return dw.err
	}
	return dw.w.Flush()
}

func (dw *DocWriter) closeStartTag() {
	if dw.openTag {
		dw.print(">")
		dw.openTag = false
	}
}

func (dw *DocWriter) print(s string) {
	if dw.err != nil {
		return
	}
	if _, err := dw.w.WriteString(s); err != nil {
		dw.err = err
	}
}

func (dw *DocWriter) fail(err error) {
	if dw.err == nil {
		dw.err = err
	}
}

var _ Writer = &DocWriter{}

// --- Escaping ---------------------------------------------------------

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	`"`, "&quot;",
	"\n", "&#xA;",
	"\t", "&#x9;",
)

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
