package svgdom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/svgdom/style"
)

// AttributeStore is the ordered mapping from attribute name to boxed value
// for one element. Enumeration order is first-set-wins: overwriting an
// existing attribute keeps its original position.
//
// The store performs no type validation; declared-property accessors narrow
// and convert. Change notification is the owning element's job, not the
// store's.
type AttributeStore struct {
	entries []attrEntry
}

type attrEntry struct {
	name  string
	value style.Value
}

// Get returns the boxed value for an attribute name.
func (as *AttributeStore) Get(name string) (style.Value, bool) {
	for _, e := range as.entries {
		if e.name == name {
			return e.value, true
		}
	}
	return style.Value{}, false
}

// Contains checks if an attribute is set.
func (as *AttributeStore) Contains(name string) bool {
	_, ok := as.Get(name)
	return ok
}

// Len returns the number of attributes.
func (as *AttributeStore) Len() int {
	return len(as.entries)
}

// Each enumerates (name, value) pairs in insertion order.
func (as *AttributeStore) Each(f func(name string, v style.Value)) {
	for _, e := range as.entries {
		f(e.name, e.value)
	}
}

// put sets an attribute, overwriting in place or appending.
func (as *AttributeStore) put(name string, v style.Value) {
	for i := range as.entries {
		if as.entries[i].name == name {
			as.entries[i].value = v
			return
		}
	}
	as.entries = append(as.entries, attrEntry{name: name, value: v})
}

// CustomAttributes holds unrecognized/foreign attributes as raw strings,
// in insertion order.
type CustomAttributes struct {
	entries []customEntry
}

type customEntry struct {
	name, value string
}

// Get returns the raw value for a custom attribute name.
func (ca *CustomAttributes) Get(name string) (string, bool) {
	for _, e := range ca.entries {
		if e.name == name {
			return e.value, true
		}
	}
	return "", false
}

// Contains checks if a custom attribute is set.
func (ca *CustomAttributes) Contains(name string) bool {
	_, ok := ca.Get(name)
	return ok
}

// Len returns the number of custom attributes.
func (ca *CustomAttributes) Len() int {
	return len(ca.entries)
}

// Each enumerates (name, value) pairs in insertion order.
func (ca *CustomAttributes) Each(f func(name, value string)) {
	for _, e := range ca.entries {
		f(e.name, e.value)
	}
}

func (ca *CustomAttributes) put(name, value string) {
	for i := range ca.entries {
		if ca.entries[i].name == name {
			ca.entries[i].value = value
			return
		}
	}
	ca.entries = append(ca.entries, customEntry{name: name, value: value})
}
