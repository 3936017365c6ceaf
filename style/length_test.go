package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestLengthParse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom.style")
	defer teardown()
	l, err := ParseLength("10pt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.DU() != 10*dimen.PT {
		t.Errorf("expected 10pt, have %v", l.DU())
	}
	unitless, err := ParseLength("2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if unitless.DU() != 2*dimen.PT {
		t.Errorf("unitless input is interpreted as points, have %v", unitless.DU())
	}
	pct, err := ParseLength("80%")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pct.IsPercent() {
		t.Errorf("expected a percentage length")
	}
	if _, err := ParseLength("wide"); err == nil {
		t.Errorf("expected error for non-numeric length")
	}
}

func TestLengthString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom.style")
	defer teardown()
	if s := Points(2).String(); s != "2pt" {
		t.Errorf("expected 2pt, have %q", s)
	}
	if s := Points(12).String(); s != "12pt" {
		t.Errorf("expected 12pt, have %q", s)
	}
}

func TestLengthRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "svgdom.style")
	defer teardown()
	l := Points(12)
	back, err := ParseLength(l.String())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !l.Equals(back) {
		t.Errorf("expected %v to round-trip, have %v", l, back)
	}
}
