package svgdom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/npillmayer/svgdom/tree"
)

// ErrIDCollision is returned when an identifier is already in use elsewhere
// in the document and auto-uniquifying is disabled. The assignment is
// aborted; the attribute is not written.
var ErrIDCollision = errors.New("id already in use in this document")

// RenameFunc is the audit callback invoked when the identifier registry
// mutates a requested id to keep it unique.
type RenameFunc func(e *Element, oldID, newID string)

// IDManager is the document-wide identifier registry contract. It
// guarantees document-scoped uniqueness of ids. With autoForceUnique set,
// a colliding desired id is silently mutated to a free variant, reported
// through onRename; without it, a collision is an error.
type IDManager interface {
	Remove(e *Element)
	AddForceUnique(e *Element, desired string, autoForceUnique bool, onRename RenameFunc) (string, error)
}

// Document is the root of an element tree. A document is its own owner.
type Document struct {
	Element
	ids       IDManager
	defaultNS string
}

// DocumentOption configures a new document.
type DocumentOption func(*Document)

// WithIDManager replaces the default identifier registry.
func WithIDManager(ids IDManager) DocumentOption {
	return func(d *Document) {
		d.ids = ids
	}
}

// NewDocument creates an empty document with an "svg" root element in the
// default document namespace and a fresh identifier registry.
func NewDocument(opts ...DocumentOption) *Document {
	d := &Document{}
	d.Element.name = "svg"
	d.Element.nsuri = SVGNamespace
	d.Element.Payload = &d.Element
	d.Element.doc = d
	d.defaultNS = SVGNamespace
	d.ids = NewRegistry()
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// IDs returns the document's identifier registry.
func (d *Document) IDs() IDManager {
	return d.ids
}

// DefaultNamespace returns the document's default namespace URI.
func (d *Document) DefaultNamespace() string {
	return d.defaultNS
}

// OwnerDocument resolves the document owning this element, lazily, by
// climbing parent references to the root. The result is cached; attach and
// detach invalidate the cache for the moved subtree. Returns nil for a
// detached tree without a document root.
func (e *Element) OwnerDocument() *Document {
	if e.owner != nil {
		return e.owner
	}
	root := tree.Root(&e.Node)
	if root == nil || root.Payload.doc == nil {
		return nil
	}
	e.owner = root.Payload.doc
	return e.owner
}

// --- Identifier management -------------------------------------------------

// ID returns the element's identifier, or the empty string.
func (e *Element) ID() string {
	if v, ok := e.attrs.Get("id"); ok {
		if s, isStr := v.Raw().(string); isStr {
			return s
		}
	}
	return ""
}

// SetID assigns the element's identifier. Setting the current id again is a
// complete no-op: no registry calls, no change notification. When the
// element is attached to a document, the old id is released and the new one
// registered; a collision aborts the assignment with ErrIDCollision and the
// attribute is left unwritten.
func (e *Element) SetID(id string) error {
	return e.setID(id, false, nil)
}

// SetIDForceUnique assigns an identifier like SetID, but a colliding id is
// silently mutated to a free variant; onRename (optional) is told about the
// mutation.
func (e *Element) SetIDForceUnique(id string, onRename RenameFunc) error {
	return e.setID(id, true, onRename)
}

func (e *Element) setID(id string, autoForce bool, onRename RenameFunc) error {
	if id == e.ID() {
		return nil
	}
	doc := e.OwnerDocument()
	if doc == nil {
		e.SetAttribute("id", id)
		return nil
	}
	doc.ids.Remove(e)
	assigned, err := doc.ids.AddForceUnique(e, id, autoForce, onRename)
	if err != nil {
		// restore the old registration, keep the attribute untouched
		if old := e.ID(); old != "" {
			_, _ = doc.ids.AddForceUnique(e, old, true, nil)
		}
		return err
	}
	e.SetAttribute("id", assigned)
	return nil
}

// --- Default identifier registry -------------------------------------------

// Registry is the default document-scoped IDManager: a plain map from id to
// element with counting-suffix uniquification ("name" -> "name-2").
type Registry struct {
	byID map[string]*Element
	byEl map[*Element]string
}

// NewRegistry creates an empty identifier registry.
func NewRegistry() *Registry {
	return &Registry{
		byID: make(map[string]*Element),
		byEl: make(map[*Element]string),
	}
}

// Remove releases the id held by an element, if any.
func (r *Registry) Remove(e *Element) {
	if id, ok := r.byEl[e]; ok {
		delete(r.byID, id)
		delete(r.byEl, e)
	}
}

// AddForceUnique registers an element under a desired id. On collision with
// another element, the id is either mutated to a free counting variant
// (autoForceUnique) or the registration fails with ErrIDCollision.
func (r *Registry) AddForceUnique(e *Element, desired string, autoForceUnique bool, onRename RenameFunc) (string, error) {
	if desired == "" {
		r.Remove(e)
		return "", nil
	}
	holder, taken := r.byID[desired]
	if taken && holder != e {
		if !autoForceUnique {
			return "", fmt.Errorf("%w: %q", ErrIDCollision, desired)
		}
		assigned := r.probe(desired)
		r.register(e, assigned)
		tracer().P("id", desired).Infof("id collision, renamed to %q", assigned)
		if onRename != nil {
			onRename(e, desired, assigned)
		}
		return assigned, nil
	}
	r.register(e, desired)
	return desired, nil
}

func (r *Registry) register(e *Element, id string) {
	r.Remove(e)
	r.byID[id] = e
	r.byEl[e] = id
}

func (r *Registry) probe(desired string) string {
	for n := 2; ; n++ {
		candidate := fmt.Sprintf("%s-%d", desired, n)
		if _, taken := r.byID[candidate]; !taken {
			return candidate
		}
	}
}

// Lookup finds the element registered under an id.
func (r *Registry) Lookup(id string) (*Element, bool) {
	e, ok := r.byID[id]
	return e, ok
}

var _ IDManager = &Registry{}
