package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "errors"

// ErrEmptyTree is thrown if a walk is started on an empty tree.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// Visitor is a function type to operate on tree nodes during a walk.
// Returning SkipChildren prunes the branch below the node; any other
// non-nil error aborts the walk and is returned to the caller.
type Visitor[T comparable] func(n *Node[T], parent *Node[T], position int) error

// SkipChildren may be returned from a Visitor to prune the branch below the
// current node without aborting the walk.
var SkipChildren = errors.New("skip children of this node")

// TopDown traverses a (sub-)tree starting at (and including) node, in
// depth-first pre-order. Parents are always visited before their children,
// siblings in child order.
func TopDown[T comparable](node *Node[T], visit Visitor[T]) error {
	if node == nil {
		return ErrEmptyTree
	}
	return walk(node, nil, 0, visit)
}

func walk[T comparable](node *Node[T], parent *Node[T], position int, visit Visitor[T]) error {
	err := visit(node, parent, position)
	if err == SkipChildren {
		return nil
	}
	if err != nil {
		return err
	}
	for i, ch := range node.Children() {
		if ch == nil {
			continue
		}
		if err := walk(ch, node, i, visit); err != nil {
			return err
		}
	}
	return nil
}

// AncestorWith climbs the parent chain starting at (and excluding) node,
// returning the first ancestor matching the predicate, or nil. The parent
// chain is a simple path, so the climb needs no cycle guard.
func AncestorWith[T comparable](node *Node[T], predicate func(*Node[T]) bool) *Node[T] {
	if node == nil {
		return nil
	}
	for anc := node.Parent(); anc != nil; anc = anc.Parent() {
		if predicate(anc) {
			return anc
		}
	}
	return nil
}

// Root climbs to the root of the tree containing node.
func Root[T comparable](node *Node[T]) *Node[T] {
	var prev *Node[T]
	for n := node; n != nil; n = n.Parent() {
		prev = n
	}
	return prev
}
