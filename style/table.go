package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "sort"

// Specificity is the integer rank used to pick a winner among multiple
// staged values for the same property name on one element; higher wins.
type Specificity int

// Specificity tiers. A property expressed as a plain presentation attribute
// is staged at PresentationTier, one expressed inside an inline-style
// declaration block at InlineTier. Collisions within a tier are resolved by
// incrementing, so tier membership is a range, not a single value.
const (
	PresentationTier Specificity = 0
	InlineTier       Specificity = 1 << 16
)

// InPresentationTier checks if a specificity ranks as a presentation
// attribute.
func (s Specificity) InPresentationTier() bool {
	return s >= PresentationTier && s < InlineTier
}

// InInlineTier checks if a specificity ranks as an inline-style declaration.
func (s Specificity) InInlineTier() bool {
	return s >= InlineTier
}

// Table is a per-element staging area for style declarations. Each property
// name maps to a set of raw values ranked by specificity. Entries are
// populated during parsing/construction and consumed when an element
// flushes its styles; entries for unrecognized properties stay staged
// indefinitely and remain queryable.
//
// The zero Table is empty and ready for use.
type Table struct {
	rules map[string]*ruleSet
	order []string // property names in first-staged order
}

// A ruleSet holds the staged values for one property name. specs is kept
// sorted ascending.
type ruleSet struct {
	specs []Specificity
	vals  map[Specificity]Property
}

// Add stages a raw value for a property at the given specificity. If the
// specificity is already occupied for this name, it is incremented until
// free, so staging never overwrites: the later arrival ends up ranked
// directly above the earlier one.
func (t *Table) Add(name string, value Property, spec Specificity) {
	if t.rules == nil {
		t.rules = make(map[string]*ruleSet)
	}
	rs, ok := t.rules[name]
	if !ok {
		rs = &ruleSet{vals: make(map[Specificity]Property)}
		t.rules[name] = rs
		t.order = append(t.order, name)
	}
	for {
		if _, occupied := rs.vals[spec]; !occupied {
			break
		}
		spec++
	}
	rs.vals[spec] = value
	rs.specs = append(rs.specs, spec)
	sort.Slice(rs.specs, func(i, j int) bool { return rs.specs[i] < rs.specs[j] })
	tracer().P("key", name).Debugf("staged %q with specificity %d", value, spec)
}

// Collapsed returns the effective staged value for a property: the value at
// the highest specificity present.
func (t *Table) Collapsed(name string) (Property, bool) {
	rs := t.rules[name]
	if rs == nil || len(rs.specs) == 0 {
		return NullStyle, false
	}
	return rs.vals[rs.specs[len(rs.specs)-1]], true
}

// InTier checks if a property has a staged value ranking in the given tier.
// Pass PresentationTier or InlineTier.
func (t *Table) InTier(name string, tier Specificity) (Property, bool) {
	rs := t.rules[name]
	if rs == nil {
		return NullStyle, false
	}
	// highest-ranking entry of the tier wins
	for i := len(rs.specs) - 1; i >= 0; i-- {
		s := rs.specs[i]
		if tier == InlineTier && s.InInlineTier() {
			return rs.vals[s], true
		}
		if tier == PresentationTier && s.InPresentationTier() {
			return rs.vals[s], true
		}
	}
	return NullStyle, false
}

// Contains checks if any value is staged for a property.
func (t *Table) Contains(name string) bool {
	rs := t.rules[name]
	return rs != nil && len(rs.specs) > 0
}

// Remove drops all staged values for a property.
func (t *Table) Remove(name string) {
	if t.rules == nil {
		return
	}
	if _, ok := t.rules[name]; !ok {
		return
	}
	delete(t.rules, name)
	for i, n := range t.order {
		if n == name {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Names returns the staged property names in first-staged order.
func (t *Table) Names() []string {
	names := make([]string, len(t.order))
	copy(names, t.order)
	return names
}

// Size returns the number of staged property names.
func (t *Table) Size() int {
	return len(t.order)
}

// Declarations returns the collapsed (name, value) pair for every staged
// property, in first-staged order.
func (t *Table) Declarations() []KeyValue {
	kvs := make([]KeyValue, 0, len(t.order))
	for _, name := range t.order {
		if v, ok := t.Collapsed(name); ok {
			kvs = append(kvs, KeyValue{Key: name, Value: v})
		}
	}
	return kvs
}

// Each calls f for every staged value of a property, in ascending
// specificity order.
func (t *Table) Each(name string, f func(spec Specificity, value Property)) {
	rs := t.rules[name]
	if rs == nil {
		return
	}
	for _, s := range rs.specs {
		f(s, rs.vals[s])
	}
}
