package svgdom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "github.com/npillmayer/svgdom/style"

// Clone produces a structurally independent deep copy of the subtree rooted
// at e. Attribute values supporting duplication are cloned, others are
// shared by reference. Handler presence on the interactive event slots is
// mirrored with placeholder subscriptions; handler identities are not
// copied. Content nodes keep their index correspondence: an element
// reference in the copy points at the already-cloned child at the same
// structural position, never at a fresh clone. Staged style declarations
// are replayed at their original specificities.
//
// The clone is detached: it has no parent and no owner document.
func (e *Element) Clone() *Element {
	c := NewElement(e.name)
	c.nsuri = e.nsuri
	c.Content = e.Content
	if e.nsdecl != nil {
		c.nsdecl = make(map[string]string, len(e.nsdecl))
		for p, u := range e.nsdecl {
			c.nsdecl[p] = u
		}
	}

	e.attrs.Each(func(name string, v style.Value) {
		c.attrs.put(name, v.Clone())
	})

	children := e.ChildElements()
	cloned := make([]*Element, len(children))
	for i, ch := range children {
		cloned[i] = ch.Clone()
		c.AddChild(&cloned[i].Node)
	}

	for slot := EventSlot(0); slot < numEventSlots; slot++ {
		if e.HasHandler(slot) {
			c.AttachHandler(slot, placeholderHandler)
		}
	}

	e.custom.Each(func(name, value string) {
		c.custom.put(name, value)
	})

	for _, cn := range e.content {
		if el, ok := cn.AsElement(); ok {
			if i := indexOfElement(children, el); i >= 0 {
				c.content = append(c.content, ElementContent(cloned[i]))
			} else {
				// unmatched reference: copy independently rather than drop
				orphan := el.Clone()
				c.AddChild(&orphan.Node)
				c.content = append(c.content, ElementContent(orphan))
			}
			continue
		}
		if text, ok := cn.AsText(); ok {
			c.content = append(c.content, TextContent(text))
		}
	}

	for _, name := range e.styles.Names() {
		n := name
		e.styles.Each(n, func(spec style.Specificity, value style.Property) {
			c.styles.Add(n, value, spec)
		})
	}
	return c
}

func indexOfElement(children []*Element, el *Element) int {
	for i, ch := range children {
		if ch == el {
			return i
		}
	}
	return -1
}
