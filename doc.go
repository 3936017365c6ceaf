/*
Package svgdom provides an in-memory model for SVG-like structured
documents: a tree of elements carrying typed, inheritable,
namespace-qualified attributes.

Overview

The heart of the model is the three-tier attribute cascade. An element
resolves a property's effective value from (a) a direct presentation
attribute, (b) staged inline-style declarations ranked by specificity,
and (c) values inherited along the ancestor chain. Serialization runs
the cascade backwards: it emits only the minimal attribute/style set
needed to reconstruct the same effective values, folding paint
properties into a collapsed "style" attribute, composing derived
opacity attributes from color alpha channels, and suppressing values
that match the resolved ancestor value.

Tree Implementation

Elements are built on top of a general purpose tree type (package
tree). In a fully object oriented programming language we would
subclass a base element for every element kind; in Go we resort to
composition, with per-kind behaviour attached through small capability
interfaces (child hooks, identifier management).

The model is single-threaded by contract: mutations, cascade reads and
serialization are plain synchronous calls, and change notifications are
dispatched inline on the mutating call. Callers sharing one tree across
goroutines must supply external synchronization.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package svgdom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'svgdom'
func tracer() tracing.Trace {
	return tracing.Select("svgdom")
}
