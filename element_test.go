package svgdom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/svgdom/style"
)

func TestAttributeChangeNotification(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom")
	defer teardown()
	e := NewElement("rect")
	var changes []AttributeChange
	e.OnAttributeChange(func(el *Element, c AttributeChange) {
		if el != e {
			t.Errorf("expected notification for e")
		}
		changes = append(changes, c)
	})
	e.SetAttribute("fill", style.RGB(0xff, 0, 0))
	if len(changes) != 1 {
		t.Fatalf("expected exactly one notification, have %d", len(changes))
	}
	if changes[0].Name != "fill" {
		t.Errorf("expected change for fill, have %s", changes[0].Name)
	}
	e.SetCustomAttribute("data-x", "1")
	if len(changes) != 2 {
		t.Fatalf("custom mutations share the notification channel, have %d", len(changes))
	}
	if changes[0].Session == changes[1].Session {
		t.Errorf("expected distinct sessions")
	}
}

func TestAttributeStoreOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom")
	defer teardown()
	e := NewElement("rect")
	e.SetAttribute("fill", style.RGB(1, 1, 1))
	e.SetAttribute("stroke", style.RGB(2, 2, 2))
	e.SetAttribute("fill", style.RGB(3, 3, 3)) // overwrite keeps position
	var names []string
	e.Attributes().Each(func(name string, v style.Value) {
		names = append(names, name)
	})
	if len(names) != 2 || names[0] != "fill" || names[1] != "stroke" {
		t.Errorf("expected first-set-wins order [fill stroke], have %v", names)
	}
	v, ok := e.Attributes().Get("fill")
	if !ok || !v.Equal(style.ValueOf(style.RGB(3, 3, 3))) {
		t.Errorf("expected overwritten fill value")
	}
}

func TestChildChangeNotification(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom")
	defer teardown()
	parent := NewElement("g")
	first := NewElement("rect")
	second := NewElement("circle")
	parent.AppendChild(first)
	var changes []ChildChange
	parent.OnChildChange(func(c ChildChange) {
		changes = append(changes, c)
	})
	parent.InsertChild(0, second)
	if len(changes) != 1 {
		t.Fatalf("expected one child-added notification, have %d", len(changes))
	}
	if !changes[0].Added || changes[0].Child != second {
		t.Errorf("expected added notification for second")
	}
	if changes[0].NextSibling != first {
		t.Errorf("expected next sibling to be first, have %v", changes[0].NextSibling)
	}
	parent.RemoveChild(second)
	if len(changes) != 2 || changes[1].Added {
		t.Fatalf("expected a removed notification")
	}
	if second.ParentElement() != nil {
		t.Errorf("expected removed child to be detached")
	}
}

type recordingHooks struct {
	added, removed []string
}

func (h *recordingHooks) ChildAdded(parent, child *Element) {
	h.added = append(h.added, child.Name())
}

func (h *recordingHooks) ChildRemoved(parent, child *Element) {
	h.removed = append(h.removed, child.Name())
}

func TestChildHooks(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom")
	defer teardown()
	parent := NewElement("g")
	hooks := &recordingHooks{}
	parent.SetChildHooks(hooks)
	ch := NewElement("rect")
	parent.AppendChild(ch)
	parent.RemoveChild(ch)
	if len(hooks.added) != 1 || hooks.added[0] != "rect" {
		t.Errorf("expected add hook to fire, have %v", hooks.added)
	}
	if len(hooks.removed) != 1 || hooks.removed[0] != "rect" {
		t.Errorf("expected remove hook to fire, have %v", hooks.removed)
	}
}

func TestContentNodesTrackChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom")
	defer teardown()
	e := NewElement("text")
	e.AppendText("hello ")
	span := NewElement("tspan")
	e.AppendChild(span)
	e.AppendText("world")
	nodes := e.ContentNodes()
	if len(nodes) != 3 {
		t.Fatalf("expected 3 content nodes, have %d", len(nodes))
	}
	if s, ok := nodes[0].AsText(); !ok || s != "hello " {
		t.Errorf("expected leading text fragment, have %v", nodes[0])
	}
	if el, ok := nodes[1].AsElement(); !ok || el != span {
		t.Errorf("expected element reference at position 1")
	}
	if s, ok := nodes[2].AsText(); !ok || s != "world" {
		t.Errorf("expected trailing text fragment, have %v", nodes[2])
	}
}

func TestPlainTextStaysInContent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom")
	defer teardown()
	e := NewElement("text")
	e.AppendText("just text")
	if len(e.ContentNodes()) != 0 {
		t.Errorf("expected no materialized content nodes for plain text")
	}
	if e.Content != "just text" {
		t.Errorf("expected Content to accumulate, have %q", e.Content)
	}
}
