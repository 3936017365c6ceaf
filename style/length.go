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
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/tyse/core/percent"
)

// Length is a fixed or %-relative dimension value for properties like
// "stroke-width" or "font-size". Fixed lengths are stored in device units
// (type dimen.DU); unitless input is interpreted as points, the user unit
// of our documents.
type Length struct {
	d     dimen.DU
	pcnt  percent.Percent
	isPct bool
}

// JustLength creates a fixed length of x device units.
func JustLength(x dimen.DU) Length {
	return Length{d: x}
}

// Points creates a fixed length of pt points.
func Points(pt float64) Length {
	return Length{d: dimen.DU(pt * float64(dimen.PT))}
}

// Percentage creates a %-relative length.
func Percentage(n percent.Percent) Length {
	return Length{pcnt: n, isPct: true}
}

// DU returns the device-unit value of a fixed length.
func (l Length) DU() dimen.DU {
	return l.d
}

// IsPercent checks for a %-relative length.
func (l Length) IsPercent() bool {
	return l.isPct
}

// Equals is structural equality on lengths.
func (l Length) Equals(other interface{}) bool {
	m, ok := other.(Length)
	if !ok {
		return false
	}
	return l == m
}

// String returns the serialized form: points with a "pt" suffix, or a
// percentage.
func (l Length) String() string {
	if l.isPct {
		return l.pcnt.String()
	}
	pt := float64(l.d) / float64(dimen.PT)
	return strconv.FormatFloat(pt, 'f', -1, 64) + "pt"
}

// ParseLength parses the serialized form of a length: a decimal number with
// an optional "pt" suffix or a trailing "%".
func ParseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Length{}, fmt.Errorf("style: empty length")
	}
	if strings.HasSuffix(s, "%") {
		n, err := strconv.Atoi(strings.TrimSuffix(s, "%"))
		if err != nil {
			return Length{}, fmt.Errorf("style: not a length: %q", s)
		}
		return Percentage(percent.FromInt(n)), nil
	}
	s = strings.TrimSuffix(s, "pt")
	pt, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Length{}, fmt.Errorf("style: not a length: %q", s)
	}
	return Points(pt), nil
}
