package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"
)

// Converter turns typed attribute values into their serialized string form
// and back. It is the per-property string-conversion contract used during
// serialization and style flushing. Properties whose type has no sensible
// string form answer CanConvert with false and are skipped by the
// serializer.
type Converter interface {
	CanConvert() bool
	ToString(v interface{}) (string, error)
	FromString(s string) (interface{}, error)
}

// Descriptor describes one declared property of the element model:
// its attribute name, XML namespace (usually unqualified), inheritance
// behaviour, whether serialization folds it into the collapsed "style"
// attribute, whether its emission is deferred to the opacity-composition
// pass, and its string converter.
//
// The descriptor table replaces runtime type inspection: it is built once
// and iterated in declaration order by the serializer.
type Descriptor struct {
	Name      string
	Namespace string
	Inherited bool
	Foldable  bool
	Deferred  bool
	Conv      Converter
}

// Declared properties in declaration order. Serialization emits candidates
// in exactly this order.
var descriptors = []Descriptor{
	{Name: "fill", Inherited: true, Foldable: true, Conv: paintConverter{}},
	{Name: "stroke", Inherited: true, Foldable: true, Conv: paintConverter{}},
	{Name: "fill-opacity", Inherited: true, Deferred: true, Conv: floatConverter{}},
	{Name: "stroke-opacity", Inherited: true, Deferred: true, Conv: floatConverter{}},
	{Name: "stroke-width", Inherited: true, Conv: lengthConverter{}},
	{Name: "color", Inherited: true, Conv: paintConverter{}},
	{Name: "font-family", Inherited: true, Conv: stringConverter{}},
	{Name: "font-size", Inherited: true, Conv: lengthConverter{}},
	{Name: "display", Conv: stringConverter{}},
	{Name: "visibility", Inherited: true, Conv: stringConverter{}},
	{Name: "transform", Conv: opaqueConverter{}},
}

var descriptorIndex = func() map[string]int {
	idx := make(map[string]int, len(descriptors))
	for i, d := range descriptors {
		idx[d.Name] = i
	}
	return idx
}()

// Descriptors returns the declared properties in declaration order.
func Descriptors() []Descriptor {
	return descriptors
}

// DescriptorOf looks up the descriptor for an attribute name.
func DescriptorOf(name string) (Descriptor, bool) {
	i, ok := descriptorIndex[name]
	if !ok {
		return Descriptor{}, false
	}
	return descriptors[i], true
}

// --- Converters ------------------------------------------------------------

type paintConverter struct{}

func (paintConverter) CanConvert() bool { return true }

func (paintConverter) ToString(v interface{}) (string, error) {
	if v == nil {
		return "", nil
	}
	p, ok := v.(Paint)
	if !ok {
		return "", fmt.Errorf("style: not a paint value: %v", v)
	}
	return p.String(), nil
}

func (paintConverter) FromString(s string) (interface{}, error) {
	return ParsePaint(s)
}

type lengthConverter struct{}

func (lengthConverter) CanConvert() bool { return true }

func (lengthConverter) ToString(v interface{}) (string, error) {
	if v == nil {
		return "", nil
	}
	l, ok := v.(Length)
	if !ok {
		return "", fmt.Errorf("style: not a length value: %v", v)
	}
	return l.String(), nil
}

func (lengthConverter) FromString(s string) (interface{}, error) {
	return ParseLength(s)
}

type floatConverter struct{}

func (floatConverter) CanConvert() bool { return true }

func (floatConverter) ToString(v interface{}) (string, error) {
	if v == nil {
		return "", nil
	}
	f, ok := v.(float64)
	if !ok {
		return "", fmt.Errorf("style: not a number: %v", v)
	}
	return strconv.FormatFloat(f, 'f', -1, 64), nil
}

func (floatConverter) FromString(s string) (interface{}, error) {
	return strconv.ParseFloat(s, 64)
}

type stringConverter struct{}

func (stringConverter) CanConvert() bool { return true }

func (stringConverter) ToString(v interface{}) (string, error) {
	if v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("style: not a string value: %v", v)
	}
	return s, nil
}

func (stringConverter) FromString(s string) (interface{}, error) {
	return s, nil
}

// opaqueConverter marks properties whose value type declares no string
// form; the serializer skips them.
type opaqueConverter struct{}

func (opaqueConverter) CanConvert() bool { return false }

func (opaqueConverter) ToString(v interface{}) (string, error) {
	return "", fmt.Errorf("style: value type declares no string form")
}

func (opaqueConverter) FromString(s string) (interface{}, error) {
	return nil, fmt.Errorf("style: value type declares no string form")
}
