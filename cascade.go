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
)

// Mode selects the resolution semantics of an attribute read. Serialization
// reads with ModeLocal to emit only what an element actually holds;
// application and render code reads with ModeInherited to respect the
// cascade. An explicit parameter instead of an ambient element flag keeps
// nested serialization re-entrant.
type Mode uint8

const (
	// ModeLocal resolves against the local attribute store only,
	// never climbing ancestors.
	ModeLocal Mode = iota
	// ModeInherited additionally consults staged styles and, for
	// inheritable properties, walks the ancestor chain.
	ModeInherited
)

// AttributeValue resolves an attribute's effective value.
//
// With ModeLocal the local store decides: the locally set value or dflt.
// With ModeInherited, a miss in the local store falls through to the
// collapsed staged style value; if the property is inheritable the search
// then climbs parent references until an ancestor holds the attribute or
// the root is reached. Staged style values are converted through the
// property's converter where one is declared, and surface as raw strings
// otherwise.
func (e *Element) AttributeValue(name string, mode Mode, dflt interface{}) interface{} {
	if v, ok := e.attrs.Get(name); ok {
		return v.Raw()
	}
	if mode == ModeLocal {
		return dflt
	}
	staged, hasStaged := e.styles.Collapsed(name)
	if hasStaged {
		if staged.IsInitial() {
			return dflt
		}
		if !staged.IsInherit() {
			return convertStaged(name, staged)
		}
	}
	// an explicit "inherit" keyword forces the climb even for
	// properties that do not inherit by default
	if style.IsInherited(name) || (hasStaged && staged.IsInherit()) {
		for anc := e.ParentElement(); anc != nil; anc = anc.ParentElement() {
			if v, ok := anc.attrs.Get(name); ok {
				return v.Raw()
			}
			if p, ok := anc.styles.Collapsed(name); ok {
				return convertStaged(name, p)
			}
		}
	}
	return dflt
}

// convertStaged narrows a staged raw value through the declared property's
// converter, falling back to the raw string for unrecognized properties.
func convertStaged(name string, p style.Property) interface{} {
	if d, ok := style.DescriptorOf(name); ok && d.Conv.CanConvert() {
		if v, err := d.Conv.FromString(p.String()); err == nil {
			return v
		}
	}
	return p.String()
}

// ResolveParentAttribute walks the ancestor chain starting at the parent
// (not self), returning the nearest ancestor-held value for an attribute.
// An ancestor whose store contains the key but holds a nil value does not
// stop the climb; only a non-nil value does. This is deliberately
// asymmetric with TryGetAttribute's stop-on-first-hit behaviour, as it
// decides which ancestor's value counts as "the" inherited default during
// serialization suppression.
func (e *Element) ResolveParentAttribute(name string) (interface{}, bool) {
	for anc := e.ParentElement(); anc != nil; anc = anc.ParentElement() {
		if v, ok := anc.attrs.Get(name); ok && !v.IsNil() {
			return v.Raw(), true
		}
	}
	return nil, false
}

// ContainsAttribute checks if an attribute is present on this element in
// any of its three stores: the attribute store, the custom store, or the
// style table with an entry in the inline-style or presentation-attribute
// tier.
func (e *Element) ContainsAttribute(name string) bool {
	if e.attrs.Contains(name) || e.custom.Contains(name) {
		return true
	}
	if _, ok := e.styles.InTier(name, style.InlineTier); ok {
		return true
	}
	_, ok := e.styles.InTier(name, style.PresentationTier)
	return ok
}

// TryGetAttribute returns the serialized form of an attribute, consulting
// the attribute store, then the custom store, then the style table (inline
// tier before presentation tier). First hit wins; this ordering is
// load-bearing for cascade correctness.
func (e *Element) TryGetAttribute(name string) (string, bool) {
	if v, ok := e.attrs.Get(name); ok {
		if d, found := style.DescriptorOf(name); found && d.Conv.CanConvert() {
			if s, err := d.Conv.ToString(v.Raw()); err == nil {
				return s, true
			}
		}
		return fmt.Sprint(v.Raw()), true
	}
	if s, ok := e.custom.Get(name); ok {
		return s, true
	}
	if p, ok := e.styles.InTier(name, style.InlineTier); ok {
		return p.String(), true
	}
	if p, ok := e.styles.InTier(name, style.PresentationTier); ok {
		return p.String(), true
	}
	return "", false
}
