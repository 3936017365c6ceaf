package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "strings"

// Property is a raw value for a style property. For example, with
//
//     fill: black
//
// a property value of "black" is staged. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial".
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit".
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// IsInherited returns wether the standard behaviour for a property is to be
// inherited or not, i.e., a call to retrieve its value may cascade to an
// ancestor element. The list covers the inheritable subset of the declared
// properties (see Descriptors).
func IsInherited(key string) bool {
	if strings.HasPrefix(key, "font") {
		return true
	}
	switch key {
	case "fill", "stroke", "stroke-width", "color", "visibility":
		return true
	case "fill-opacity", "stroke-opacity":
		return true
	}
	return false
}
