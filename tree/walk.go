package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

// Predicate is a function type to match against nodes of a tree.
// It is used as an argument for various traversal functions to collect
// a selection of nodes.
type Predicate[T comparable] func(node *Node[T]) bool

// Whatever is a predicate to match anything (see type Predicate).
func Whatever[T comparable]() Predicate[T] {
	return func(*Node[T]) bool { return true }
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(node *Node[T]) bool { return node.ChildCount() == 0 }
}

// Action is a function type to operate on tree nodes during a walk.
// Returning false aborts descending the branch below the node.
type Action[T comparable] func(node *Node[T]) bool

// TopDown traverses a tree in document order, starting at (and including)
// the root node. Parents are always visited before their children.
//
// If the action returns false for a node, the branch below this node
// is not descended into.
func TopDown[T comparable](root *Node[T], action Action[T]) {
	if root == nil || action == nil {
		return
	}
	if !action(root) {
		return
	}
	for _, ch := range root.children {
		TopDown(ch, action)
	}
}

// DescendantsWith collects all descendants of root matching a predicate,
// in document order. The collection does not include the root node.
func DescendantsWith[T comparable](root *Node[T], predicate Predicate[T]) []*Node[T] {
	if root == nil || predicate == nil {
		return nil
	}
	var selection []*Node[T]
	for _, ch := range root.children {
		TopDown(ch, func(node *Node[T]) bool {
			if predicate(node) {
				selection = append(selection, node)
			}
			return true
		})
	}
	return selection
}

// AncestorWith finds the nearest ancestor of node matching the given
// predicate, or nil. The search does not include the start node.
func AncestorWith[T comparable](node *Node[T], predicate Predicate[T]) *Node[T] {
	if node == nil || predicate == nil {
		return nil
	}
	anc := node.Parent()
	for anc != nil {
		if predicate(anc) {
			return anc
		}
		anc = anc.Parent()
	}
	return nil
}
