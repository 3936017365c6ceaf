/*
Package style implements the value side of an SVG-like attribute model:
raw property strings, boxed typed values, paint and length value types,
a specificity-ranked style table, and the static registry of declared
properties with their string converters.

Cascading works on three tiers. A property may be expressed as a plain
presentation attribute (lowest tier), as an inline-style declaration
(higher tier), or not at all, in which case readers may inherit a value
from an ancestor element. This package owns the first two tiers; the
ancestor walk lives with the element tree.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'svgdom.style'
func tracer() tracing.Trace {
	return tracing.Select("svgdom.style")
}
