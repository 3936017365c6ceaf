package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// TransformList is an opaque ordered list of transform steps. Parsing the
// transform mini-language is not our business; clients hand us the steps
// pre-split. Transform lists carry their own equality and cloning contract
// and declare no string form, so serialization skips them.
//
// Box transform lists as pointers: the type is slice-backed.
type TransformList struct {
	steps []string
}

// NewTransformList creates a transform list from pre-split steps.
func NewTransformList(steps ...string) *TransformList {
	t := &TransformList{steps: make([]string, len(steps))}
	copy(t.steps, steps)
	return t
}

// Steps returns the transform steps in application order.
func (t *TransformList) Steps() []string {
	steps := make([]string, len(t.steps))
	copy(steps, t.steps)
	return steps
}

// Equals is structural equality on transform lists.
func (t *TransformList) Equals(other interface{}) bool {
	o, ok := other.(*TransformList)
	if !ok || o == nil || len(t.steps) != len(o.steps) {
		return false
	}
	for i, s := range t.steps {
		if o.steps[i] != s {
			return false
		}
	}
	return true
}

// CloneValue duplicates a transform list; deep copy calls this through the
// Cloner capability.
func (t *TransformList) CloneValue() interface{} {
	return NewTransformList(t.steps...)
}
