package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// Paint kinds. An unset paint is the zero value and acts as the
// "not set" sentinel during serialization.
const (
	paintUnset uint8 = iota
	paintNone
	paintColor
	paintRef
)

// Paint is a paint-server value for properties like "fill" and "stroke".
// It is either unset, the explicit "none", a solid RGBA color, or a
// reference to a paint server element ("url(#grad)").
type Paint struct {
	kind       uint8
	r, g, b, a uint8
	ref        string
}

// PaintUnset returns the "not set" sentinel paint.
func PaintUnset() Paint {
	return Paint{}
}

// PaintNone returns the explicit no-paint value.
func PaintNone() Paint {
	return Paint{kind: paintNone}
}

// RGB creates a fully opaque color paint.
func RGB(r, g, b uint8) Paint {
	return Paint{kind: paintColor, r: r, g: g, b: b, a: 0xff}
}

// RGBA creates a color paint with an alpha channel.
func RGBA(r, g, b, a uint8) Paint {
	return Paint{kind: paintColor, r: r, g: g, b: b, a: a}
}

// PaintRef creates a paint-server reference, given the target's id.
func PaintRef(id string) Paint {
	return Paint{kind: paintRef, ref: id}
}

// IsUnset checks for the "not set" sentinel.
func (p Paint) IsUnset() bool {
	return p.kind == paintUnset
}

// IsNone checks for the explicit "none" paint.
func (p Paint) IsNone() bool {
	return p.kind == paintNone
}

// IsColor checks for a solid color paint.
func (p Paint) IsColor() bool {
	return p.kind == paintColor
}

// Alpha returns the alpha channel of a color paint; non-color paints are
// fully opaque.
func (p Paint) Alpha() uint8 {
	if p.kind != paintColor {
		return 0xff
	}
	return p.a
}

// Equals is structural equality on paints; the alpha channel takes part.
func (p Paint) Equals(other interface{}) bool {
	q, ok := other.(Paint)
	if !ok {
		return false
	}
	return p == q
}

// String returns the serialized form of a paint. The alpha channel is not
// part of it; it surfaces as a derived "-opacity" attribute during
// serialization instead. Unset paints serialize to the null string.
func (p Paint) String() string {
	switch p.kind {
	case paintNone:
		return "none"
	case paintColor:
		return fmt.Sprintf("#%02x%02x%02x", p.r, p.g, p.b)
	case paintRef:
		return "url(#" + p.ref + ")"
	}
	return ""
}

var namedColors = map[string]Paint{
	"black":   RGB(0, 0, 0),
	"white":   RGB(0xff, 0xff, 0xff),
	"red":     RGB(0xff, 0, 0),
	"green":   RGB(0, 0x80, 0),
	"blue":    RGB(0, 0, 0xff),
	"yellow":  RGB(0xff, 0xff, 0),
	"gray":    RGB(0x80, 0x80, 0x80),
	"grey":    RGB(0x80, 0x80, 0x80),
	"none":    PaintNone(),
	"inherit": PaintUnset(),
}

// ParsePaint parses the serialized form of a paint value: "none", a named
// color, "#rgb", "#rrggbb", "#rrggbbaa" or "url(#id)".
func ParsePaint(s string) (Paint, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return PaintUnset(), nil
	}
	if p, ok := namedColors[s]; ok {
		return p, nil
	}
	if strings.HasPrefix(s, "url(#") && strings.HasSuffix(s, ")") {
		return PaintRef(s[5 : len(s)-1]), nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHexColor(s[1:])
	}
	return Paint{}, fmt.Errorf("style: not a paint value: %q", s)
}

func parseHexColor(hex string) (Paint, error) {
	var r, g, b, a uint8
	a = 0xff
	switch len(hex) {
	case 3:
		_, err := fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		if err != nil {
			return Paint{}, fmt.Errorf("style: invalid color: #%s", hex)
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		_, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
		if err != nil {
			return Paint{}, fmt.Errorf("style: invalid color: #%s", hex)
		}
	case 8:
		_, err := fmt.Sscanf(hex, "%02x%02x%02x%02x", &r, &g, &b, &a)
		if err != nil {
			return Paint{}, fmt.Errorf("style: invalid color: #%s", hex)
		}
	default:
		return Paint{}, fmt.Errorf("style: invalid color: #%s", hex)
	}
	return RGBA(r, g, b, a), nil
}
