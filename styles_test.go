package svgdom

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/svgdom/style"
)

func TestStageStyleText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom")
	defer teardown()
	e := NewElement("rect")
	if err := e.StageStyleText("fill: red; stroke-width: 2pt"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !e.ContainsAttribute("fill") || !e.ContainsAttribute("stroke-width") {
		t.Errorf("expected both declarations to be staged")
	}
	if s, _ := e.TryGetAttribute("fill"); s != "red" {
		t.Errorf("expected staged fill %q, have %q", "red", s)
	}
}

func TestStageStyleTextUnterminated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom")
	defer teardown()
	e := NewElement("rect")
	// no trailing ';' — the final declaration must not lose its value
	if err := e.StageStyleText("fill:#ff0000"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s, ok := e.TryGetAttribute("fill"); !ok || s != "#ff0000" {
		t.Errorf("expected staged fill %q, have %q (%v)", "#ff0000", s, ok)
	}
	e2 := NewElement("rect")
	if err := e2.StageStyleText("fill: red; mix-blend-mode: multiply"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s, _ := e2.TryGetAttribute("mix-blend-mode"); s != "multiply" {
		t.Errorf("expected last declaration to keep its value, have %q", s)
	}
}

func TestFlushKeepsCascadeKeywords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom")
	defer teardown()
	e := NewElement("rect")
	e.StageStyle("fill", "inherit", style.InlineTier)
	e.StageStyle("display", "initial", style.InlineTier)
	e.FlushStyles(false)
	if _, ok := e.Attributes().Get("fill"); ok {
		t.Errorf("inherit must not flush into a typed value")
	}
	if !e.Styles().Contains("fill") || !e.Styles().Contains("display") {
		t.Errorf("cascade keywords must stay staged")
	}
}

func TestFlushAppliesHighestSpecificity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom")
	defer teardown()
	e := NewElement("rect")
	// Two stagings at the same specificity: the collision bumps the second
	// to the next free slot, so it outranks the first.
	e.StageStyle("color", "blue", 0)
	e.StageStyle("color", "red", 0)
	e.FlushStyles(false)
	v, ok := e.Attributes().Get("color")
	if !ok {
		t.Fatalf("expected color to be applied")
	}
	if p, isPaint := v.Raw().(style.Paint); !isPaint || p != style.RGB(0xff, 0, 0) {
		t.Errorf("expected later staging to win, have %v", v.Raw())
	}
	if e.Styles().Contains("color") {
		t.Errorf("expected applied entry to be consumed")
	}
}

func TestFlushKeepsUnrecognized(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom")
	defer teardown()
	e := NewElement("rect")
	e.StageStyle("mix-blend-mode", "multiply", style.InlineTier)
	e.StageStyle("stroke-width", "not-a-length", style.InlineTier)
	e.FlushStyles(false)
	if !e.Styles().Contains("mix-blend-mode") {
		t.Errorf("expected unrecognized property to stay staged")
	}
	if !e.Styles().Contains("stroke-width") {
		t.Errorf("expected inconvertible value to stay staged")
	}
	if _, ok := e.Attributes().Get("stroke-width"); ok {
		t.Errorf("inconvertible value must not reach the attribute store")
	}
	// flushing again changes nothing
	before := e.Styles().Size()
	e.FlushStyles(false)
	if e.Styles().Size() != before {
		t.Errorf("expected flush to be idempotent")
	}
}

func TestFlushRecursive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom")
	defer teardown()
	parent := NewElement("g")
	child := NewElement("rect")
	parent.AppendChild(child)
	parent.StageStyle("fill", "blue", style.InlineTier)
	child.StageStyle("fill", "green", style.InlineTier)
	parent.FlushStyles(true)
	if pv, ok := parent.Attributes().Get("fill"); !ok || pv.Raw().(style.Paint) != style.RGB(0, 0, 0xff) {
		t.Errorf("expected parent fill to be applied")
	}
	if cv, ok := child.Attributes().Get("fill"); !ok || cv.Raw().(style.Paint) != style.RGB(0, 0x80, 0) {
		t.Errorf("expected child fill to be applied")
	}
}

func TestInlineTierOutranksPresentation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom")
	defer teardown()
	e := NewElement("rect")
	e.StageStyle("fill", "red", style.PresentationTier)
	e.StageStyle("fill", "blue", style.InlineTier)
	e.FlushStyles(false)
	v, ok := e.Attributes().Get("fill")
	if !ok {
		t.Fatalf("expected fill to be applied")
	}
	if p := v.Raw().(style.Paint); p != style.RGB(0, 0, 0xff) {
		t.Errorf("expected inline declaration to win, have %v", p)
	}
}
