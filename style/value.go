package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// Equaler is implemented by attribute value types which define structural
// equality. Values without it compare by identity only.
type Equaler interface {
	Equals(other interface{}) bool
}

// Cloner is implemented by attribute value types which support explicit
// duplication. Values without it are shared by reference on deep copy.
type Cloner interface {
	CloneValue() interface{}
}

// Value is an opaque box around a typed attribute value. Attribute stores
// hold Values; the concrete type contract (paint, length, transform list, …)
// stays with the value itself.
//
// The zero Value is a boxed nil.
type Value struct {
	v interface{}
}

// ValueOf boxes a typed attribute value.
func ValueOf(v interface{}) Value {
	return Value{v: v}
}

// Raw returns the boxed value.
func (b Value) Raw() interface{} {
	return b.v
}

// IsNil checks for a boxed nil.
func (b Value) IsNil() bool {
	return b.v == nil
}

func (b Value) String() string {
	return fmt.Sprintf("<%v>", b.v)
}

// Same compares two boxes by identity of the boxed values.
func (b Value) Same(other Value) bool {
	return b.v == other.v
}

// Equal compares two boxes, using structural equality where the boxed value
// provides it, identity otherwise.
func (b Value) Equal(other Value) bool {
	if b.v == nil || other.v == nil {
		return b.v == other.v
	}
	if eq, ok := b.v.(Equaler); ok {
		return eq.Equals(other.v)
	}
	return b.v == other.v
}

// Clone duplicates a box. Boxed values supporting Cloner are duplicated,
// all others are shared by reference.
func (b Value) Clone() Value {
	if c, ok := b.v.(Cloner); ok {
		return Value{v: c.CloneValue()}
	}
	return b
}
