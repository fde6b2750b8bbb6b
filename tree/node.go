package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
)

/*
We manage a tree of mutable nodes. Each node carries a payload of type parameter T.
Nodes maintain an ordered slice of children.

Trees of this kind are operated on by a single writer at a time (a single
script-execution turn in the surrounding engine), therefore nodes perform
no internal locking.
*/

// Node is the base type our trees are built of.
type Node[T comparable] struct {
	parent   *Node[T]   // parent node of this node
	children []*Node[T] // ordered slice of children nodes
	Payload  T          // nodes may carry a payload of arbitrary type
}

// NewNode creates a new tree node with a given payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends a child node. The newly inserted node is connected to
// this node as its parent. If the child currently lives under a different
// parent, it is isolated first. AddChild returns the parent node to allow
// for chaining.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch == nil {
		return node
	}
	ch.Isolate()
	node.children = append(node.children, ch)
	ch.parent = node
	return node
}

// InsertChildAt inserts a new child node at a given position in relation
// to other children, shifting children at later positions. A position
// beyond the current child count appends.
func (node *Node[T]) InsertChildAt(i int, ch *Node[T]) *Node[T] {
	if ch == nil {
		return node
	}
	ch.Isolate()
	if i < 0 {
		i = 0
	}
	if i >= len(node.children) {
		node.children = append(node.children, ch)
	} else {
		node.children = append(node.children, nil)
		copy(node.children[i+1:], node.children[i:])
		node.children[i] = ch
	}
	ch.parent = node
	return node
}

// ReplaceChildren drops all children of a node and appends the given
// nodes instead.
func (node *Node[T]) ReplaceChildren(ch ...*Node[T]) *Node[T] {
	for _, c := range node.children {
		if c != nil {
			c.parent = nil
		}
	}
	node.children = node.children[:0]
	for _, c := range ch {
		node.AddChild(c)
	}
	return node
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	if node == nil {
		return nil
	}
	return node.parent
}

// Isolate removes a node from its parent. Isolate returns the isolated node.
func (node *Node[T]) Isolate() *Node[T] {
	if node == nil || node.parent == nil {
		return node
	}
	siblings := node.parent.children
	for i, ch := range siblings {
		if ch == node {
			node.parent.children = append(siblings[:i], siblings[i+1:]...)
			break
		}
	}
	node.parent = nil
	return node
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node[T]) ChildCount() int {
	if node == nil {
		return 0
	}
	return len(node.children)
}

// Child returns the child node at position n.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	if node == nil || n < 0 || n >= len(node.children) {
		return nil, false
	}
	return node.children[n], true
}

// Children returns a slice with all children of a node.
func (node *Node[T]) Children() []*Node[T] {
	if node == nil {
		return nil
	}
	children := make([]*Node[T], len(node.children))
	copy(children, node.children)
	return children
}

// IndexOfChild returns the index of a child within the list of children
// of its parent, or -1 if ch is not a child of this node.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	for i, child := range node.children {
		if ch == child {
			return i
		}
	}
	return -1
}
