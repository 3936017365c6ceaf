/*
Package dbg implements helpers to debug an svgdom element tree.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dbg

import (
	"fmt"
	"strings"

	svgdom "github.com/npillmayer/svgdom"
	"github.com/npillmayer/svgdom/style"
	"github.com/xlab/treeprint"
)

// Dump renders an element subtree as an ASCII tree, one line per element,
// with a short attribute summary. Intended for test logs and debugging.
func Dump(e *svgdom.Element) string {
	tree := treeprint.New()
	addBranch(tree, e)
	return tree.String()
}

func addBranch(tree treeprint.Tree, e *svgdom.Element) {
	branch := tree.AddBranch(label(e))
	for _, ch := range e.ChildElements() {
		addBranch(branch, ch)
	}
}

func label(e *svgdom.Element) string {
	var sb strings.Builder
	sb.WriteString("<" + e.Name())
	if id := e.ID(); id != "" {
		fmt.Fprintf(&sb, " id=%q", id)
	}
	e.Attributes().Each(func(name string, v style.Value) {
		if name == "id" {
			return
		}
		fmt.Fprintf(&sb, " %s=%v", name, v.Raw())
	})
	if n := e.Styles().Size(); n > 0 {
		fmt.Fprintf(&sb, " +%d staged", n)
	}
	sb.WriteString(">")
	return sb.String()
}
