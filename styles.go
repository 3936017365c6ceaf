package svgdom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/svgdom/style"
	"github.com/npillmayer/svgdom/tree"
)

// StageStyle stages a raw style declaration for later flushing. Presentation
// attributes stage at style.PresentationTier, inline-style declarations at
// style.InlineTier; stylesheet machinery may stage at arbitrary
// specificities in between.
func (e *Element) StageStyle(name string, value style.Property, spec style.Specificity) {
	e.styles.Add(name, value, spec)
}

// StageStyleText parses raw inline-style text (the value of a "style"
// attribute) and stages every declaration at the inline tier, in source
// order.
func (e *Element) StageStyleText(css string) error {
	css = strings.TrimSpace(css)
	if css != "" && !strings.HasSuffix(css, ";") {
		css += ";" // douceur drops the value of an unterminated final declaration
	}
	decls, err := parser.ParseDeclarations(css)
	if err != nil {
		return fmt.Errorf("svgdom: cannot parse style text: %w", err)
	}
	for _, d := range decls {
		name := strings.TrimSpace(d.Property)
		if name == "" {
			continue
		}
		e.styles.Add(name, style.Property(strings.TrimSpace(d.Value)), style.InlineTier)
	}
	return nil
}

// FlushStyles collapses and applies the staged style declarations: for each
// staged property the value at the highest specificity is applied through
// the declared-property write path, and the entry is consumed. Entries that
// fail to apply (unrecognized property, inconvertible value) remain staged
// for later resolution via ContainsAttribute/TryGetAttribute; flushing
// twice is therefore idempotent.
//
// With recurse set, every descendant flushes too, depth-first, pre-order.
func (e *Element) FlushStyles(recurse bool) {
	if !recurse {
		e.flushLocal()
		return
	}
	_ = tree.TopDown(&e.Node, func(n *tree.Node[*Element], _ *tree.Node[*Element], _ int) error {
		n.Payload.flushLocal()
		return nil
	})
}

func (e *Element) flushLocal() {
	for _, name := range e.styles.Names() {
		collapsed, ok := e.styles.Collapsed(name)
		if !ok {
			continue
		}
		if collapsed.IsInherit() || collapsed.IsInitial() {
			continue // cascade keywords resolve at read time, stay staged
		}
		d, declared := style.DescriptorOf(name)
		if !declared || !d.Conv.CanConvert() {
			tracer().P("key", name).Debugf("unrecognized property stays staged")
			continue
		}
		v, err := d.Conv.FromString(collapsed.String())
		if err != nil {
			tracer().P("key", name).Debugf("staged value %q does not convert: %v", collapsed, err)
			continue
		}
		e.SetAttribute(name, v)
		e.styles.Remove(name)
	}
}
