package svgdom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"

	"github.com/npillmayer/svgdom/style"
	"github.com/npillmayer/svgdom/tree"
)

// SVGNamespace is the default namespace of our documents.
const SVGNamespace = "http://www.w3.org/2000/svg"

// XLinkNamespace qualifies linking attributes.
const XLinkNamespace = "http://www.w3.org/1999/xlink"

// Element is a node in a document tree. It owns an ordered attribute store,
// a staging table for style declarations, a store for unrecognized
// attributes, and an ordered sequence of content nodes interleaving child
// elements and text fragments.
//
// The parent link is a non-owning back-reference; parents own children
// through the child collection.
type Element struct {
	tree.Node[*Element]
	name    string
	nsuri   string
	nsdecl  map[string]string // prefix -> namespace URI, declared on this element
	Content string            // literal text content, used when content nodes are not materialized

	attrs   AttributeStore
	custom  CustomAttributes
	styles  style.Table
	content []ContentNode

	attrListeners  []AttributeListener
	childListeners []ChildListener
	hooks          ChildHooks
	handlers       map[EventSlot]EventHandler

	doc     *Document // non-nil only on a document's own root element
	owner   *Document // cached owner, resolved lazily by climbing to the root
	session uint32    // change-notification session counter
}

// NewElement creates a default-constructed element with a given tag name,
// placed in the default document namespace.
func NewElement(name string) *Element {
	e := &Element{name: name, nsuri: SVGNamespace}
	e.Payload = e // Payload will always reference the node itself
	return e
}

// NewElementNS creates an element with a tag name in an explicit namespace.
func NewElementNS(name, nsuri string) *Element {
	e := NewElement(name)
	e.nsuri = nsuri
	return e
}

func (e *Element) String() string {
	return fmt.Sprintf("<%s #attrs=%d #ch=%d>", e.name, e.attrs.Len(), e.ChildCount())
}

// Name returns the element's tag name.
func (e *Element) Name() string {
	return e.name
}

// Namespace returns the element's namespace URI.
func (e *Element) Namespace() string {
	return e.nsuri
}

// DeclareNamespace declares a prefix binding on this element, visible to
// this element and its descendants during serialization.
func (e *Element) DeclareNamespace(prefix, nsuri string) {
	if e.nsdecl == nil {
		e.nsdecl = make(map[string]string)
	}
	e.nsdecl[prefix] = nsuri
}

// prefixForURI searches this element's namespace declarations for a
// non-empty prefix bound to uri. With several candidates the
// lexicographically smallest wins, keeping serialized output stable.
func (e *Element) prefixForURI(uri string) string {
	best := ""
	for p, u := range e.nsdecl {
		if u == uri && p != "" && (best == "" || p < best) {
			best = p
		}
	}
	return best
}

// lookupNamespaceURI resolves a declared prefix, climbing the ancestor
// chain.
func (e *Element) lookupNamespaceURI(prefix string) (string, bool) {
	for el := e; el != nil; el = el.ParentElement() {
		if uri, ok := el.nsdecl[prefix]; ok {
			return uri, true
		}
	}
	return "", false
}

// ParentElement returns the parent element, or nil for a root.
func (e *Element) ParentElement() *Element {
	p := e.Parent()
	if p == nil {
		return nil
	}
	return p.Payload
}

// --- Attribute mutation ----------------------------------------------------

// AttributeChange is fired synchronously on any attribute or
// custom-attribute mutation. It is the sole channel through which
// tree-external listeners (identifier registry, undo systems) observe
// mutation.
type AttributeChange struct {
	Name    string
	Value   style.Value
	Session uint32
}

// AttributeListener observes attribute mutations on one element.
type AttributeListener func(e *Element, change AttributeChange)

// OnAttributeChange registers a mutation listener. Listeners are invoked in
// registration order, synchronously, before the mutating call returns.
func (e *Element) OnAttributeChange(l AttributeListener) {
	e.attrListeners = append(e.attrListeners, l)
}

// SetAttribute sets a typed attribute value, overwriting any previous value,
// and fires the change notification exactly once before returning.
func (e *Element) SetAttribute(name string, value interface{}) {
	e.setAttrValue(name, style.ValueOf(value))
}

func (e *Element) setAttrValue(name string, v style.Value) {
	e.attrs.put(name, v)
	e.notifyAttr(name, v)
}

// SetCustomAttribute records an unrecognized/foreign attribute verbatim.
// Custom mutations share the attribute change-notification channel.
func (e *Element) SetCustomAttribute(name, value string) {
	e.custom.put(name, value)
	e.notifyAttr(name, style.ValueOf(value))
}

// Attributes exposes the element's attribute store.
func (e *Element) Attributes() *AttributeStore {
	return &e.attrs
}

// CustomAttrs exposes the element's custom attribute store.
func (e *Element) CustomAttrs() *CustomAttributes {
	return &e.custom
}

// Styles exposes the element's style staging table.
func (e *Element) Styles() *style.Table {
	return &e.styles
}

func (e *Element) notifyAttr(name string, v style.Value) {
	e.session++
	change := AttributeChange{Name: name, Value: v, Session: e.session}
	for _, l := range e.attrListeners {
		l(e, change)
	}
}

// --- Content nodes ---------------------------------------------------------

// ContentNode is an ordered entry representing either a child element or a
// literal text fragment, defining serialization interleaving.
type ContentNode struct {
	el   *Element
	text string
}

// ElementContent creates a content node referencing a child element.
func ElementContent(e *Element) ContentNode {
	return ContentNode{el: e}
}

// TextContent creates a literal text fragment.
func TextContent(s string) ContentNode {
	return ContentNode{text: s}
}

// AsElement returns the referenced element, if this is an element node.
func (c ContentNode) AsElement() (*Element, bool) {
	return c.el, c.el != nil
}

// AsText returns the text fragment, if this is a text node.
func (c ContentNode) AsText() (string, bool) {
	if c.el != nil {
		return "", false
	}
	return c.text, true
}

// ContentNodes returns the ordered content-node sequence. An empty sequence
// means children serialize in child-collection order after any literal
// Content text.
func (e *Element) ContentNodes() []ContentNode {
	nodes := make([]ContentNode, len(e.content))
	copy(nodes, e.content)
	return nodes
}

// AppendText appends a text fragment to the element's content. As long as
// the element has no children and no materialized content nodes the text
// accumulates in Content; interleaving with children materializes the
// content-node sequence.
func (e *Element) AppendText(s string) {
	if s == "" {
		return
	}
	if len(e.content) == 0 && e.ChildCount() == 0 {
		e.Content += s
		return
	}
	e.materializeContent()
	e.content = append(e.content, TextContent(s))
}

// materializeContent backfills the content-node sequence from Content text
// and the existing child collection. Every child appears exactly once.
func (e *Element) materializeContent() {
	if len(e.content) > 0 {
		return
	}
	if e.Content != "" {
		e.content = append(e.content, TextContent(e.Content))
		e.Content = ""
	}
	for _, ch := range e.ChildElements() {
		e.content = append(e.content, ElementContent(ch))
	}
}

// ChildElements returns the element-typed children in order.
func (e *Element) ChildElements() []*Element {
	nodes := e.Children()
	children := make([]*Element, 0, len(nodes))
	for _, n := range nodes {
		if n != nil {
			children = append(children, n.Payload)
		}
	}
	return children
}

// --- Child mutation --------------------------------------------------------

// ChildHooks is the capability interface for per-element-kind add/remove
// behaviour, dispatched instead of deep inheritance. Hooks run before the
// corresponding child-change notification fires.
type ChildHooks interface {
	ChildAdded(parent, child *Element)
	ChildRemoved(parent, child *Element)
}

// SetChildHooks attaches per-kind add/remove behaviour to this element.
func (e *Element) SetChildHooks(h ChildHooks) {
	e.hooks = h
}

// ChildChange notifies tree-external listeners of child insertion/removal.
// NextSibling carries the following sibling at insertion time, for
// ordering-aware listeners.
type ChildChange struct {
	Parent      *Element
	Child       *Element
	NextSibling *Element
	Added       bool
}

// ChildListener observes child insertions and removals below one element.
type ChildListener func(change ChildChange)

// OnChildChange registers a child-change listener, invoked in registration
// order.
func (e *Element) OnChildChange(l ChildListener) {
	e.childListeners = append(e.childListeners, l)
}

// AppendChild adds child as the last child element.
func (e *Element) AppendChild(child *Element) {
	e.InsertChild(e.ChildCount(), child)
}

// InsertChild inserts child into the child collection at index, keeping the
// content-node sequence consistent, then invokes the add hook and fires the
// child-added notification carrying the next sibling (if any).
func (e *Element) InsertChild(index int, child *Element) {
	if child == nil {
		return
	}
	if index < 0 {
		index = 0
	}
	if index > e.ChildCount() {
		index = e.ChildCount()
	}
	hadContent := len(e.content) > 0
	e.InsertChildAt(index, &child.Node)
	child.invalidateOwner()
	if hadContent {
		// child order inside the content sequence follows sibling order
		pos := len(e.content)
		for i, cn := range e.content {
			if sib, ok := cn.AsElement(); ok && e.IndexOfChild(&sib.Node) >= index {
				pos = i
				break
			}
		}
		e.content = append(e.content, ContentNode{})
		copy(e.content[pos+1:], e.content[pos:])
		e.content[pos] = ElementContent(child)
	}
	if e.hooks != nil {
		e.hooks.ChildAdded(e, child)
	}
	var next *Element
	if n, ok := e.Child(index + 1); ok {
		next = n.Payload
	}
	e.notifyChild(ChildChange{Parent: e, Child: child, NextSibling: next, Added: true})
}

// RemoveChild detaches child from this element: the remove hook runs, the
// parent back-reference is cleared, the content-node sequence drops its
// reference, and the child-removed notification fires. The identifier
// registry is left untouched; a detached subtree keeps its ids until
// re-attached or explicitly re-registered.
func (e *Element) RemoveChild(child *Element) {
	if child == nil || child.ParentElement() != e {
		return
	}
	if e.hooks != nil {
		e.hooks.ChildRemoved(e, child)
	}
	child.Isolate()
	child.invalidateOwner()
	for i, cn := range e.content {
		if el, ok := cn.AsElement(); ok && el == child {
			e.content = append(e.content[:i], e.content[i+1:]...)
			break
		}
	}
	e.notifyChild(ChildChange{Parent: e, Child: child, Added: false})
}

func (e *Element) notifyChild(change ChildChange) {
	for _, l := range e.childListeners {
		l(change)
	}
}

// invalidateOwner drops cached owner-document references in the subtree
// below (and including) e. Called on attach and detach.
func (e *Element) invalidateOwner() {
	_ = tree.TopDown(&e.Node, func(n *tree.Node[*Element], _ *tree.Node[*Element], _ int) error {
		n.Payload.owner = nil
		return nil
	})
}
