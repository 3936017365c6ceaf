package svgdom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/svgdom/style"
)

func TestCloneIsIndependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom")
	defer teardown()
	d := NewDocument()
	rect := NewElement("rect")
	d.AppendChild(rect)
	rect.SetAttribute("fill", style.RGB(0xff, 0, 0))
	c := rect.Clone()
	if c.ParentElement() != nil || c.OwnerDocument() != nil {
		t.Errorf("expected a detached clone")
	}
	rect.SetAttribute("fill", style.RGB(0, 0, 0xff))
	v, _ := c.Attributes().Get("fill")
	if v.Raw().(style.Paint) != style.RGB(0xff, 0, 0) {
		t.Errorf("mutating the original must not affect the clone")
	}
}

func TestCloneDuplicatesCloneableValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom")
	defer teardown()
	e := NewElement("g")
	tl := style.NewTransformList("translate(1 2)", "scale(2)")
	e.SetAttribute("transform", tl)
	c := e.Clone()
	v, ok := c.Attributes().Get("transform")
	if !ok {
		t.Fatalf("expected transform on the clone")
	}
	copied, isTL := v.Raw().(*style.TransformList)
	if !isTL {
		t.Fatalf("expected a transform list, have %v", v.Raw())
	}
	if copied == tl {
		t.Errorf("expected a duplicated value, not a shared reference")
	}
	if !copied.Equals(tl) {
		t.Errorf("expected structural equality after duplication")
	}
}

func TestCloneContentCorrespondence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom")
	defer teardown()
	text := NewElement("text")
	text.AppendText("a")
	span := NewElement("tspan")
	text.AppendChild(span)
	text.AppendText("b")
	c := text.Clone()
	nodes := c.ContentNodes()
	if len(nodes) != 3 {
		t.Fatalf("expected 3 content nodes, have %d", len(nodes))
	}
	el, ok := nodes[1].AsElement()
	if !ok {
		t.Fatalf("expected an element reference at position 1")
	}
	if el == span {
		t.Errorf("clone must reference its own child, not the original's")
	}
	if kids := c.ChildElements(); len(kids) != 1 || kids[0] != el {
		t.Errorf("content reference must point at the cloned child")
	}
	if s, _ := nodes[0].AsText(); s != "a" {
		t.Errorf("expected leading text %q, have %q", "a", s)
	}
}

func TestCloneMirrorsHandlerPresence(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom")
	defer teardown()
	e := NewElement("rect")
	e.AttachHandler(SlotClick, func(target *Element, slot EventSlot) {})
	c := e.Clone()
	if !c.HasHandler(SlotClick) {
		t.Errorf("expected handler presence to be mirrored")
	}
	if c.HasHandler(SlotMouseOver) {
		t.Errorf("expected absent slots to stay absent")
	}
}

func TestCloneReplaysStagedStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom")
	defer teardown()
	e := NewElement("rect")
	e.StageStyle("fill", "red", style.PresentationTier)
	e.StageStyle("fill", "blue", style.InlineTier)
	c := e.Clone()
	if v, ok := c.Styles().InTier("fill", style.PresentationTier); !ok || v != "red" {
		t.Errorf("expected presentation-tier staging to be replayed, have %q", v)
	}
	if v, ok := c.Styles().Collapsed("fill"); !ok || v != "blue" {
		t.Errorf("expected inline staging to rank highest, have %q", v)
	}
}

func TestCloneCopiesCustomAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom")
	defer teardown()
	e := NewElement("rect")
	e.SetCustomAttribute("data-x", "1")
	c := e.Clone()
	if v, ok := c.CustomAttrs().Get("data-x"); !ok || v != "1" {
		t.Errorf("expected custom attribute on the clone, have %q", v)
	}
}
