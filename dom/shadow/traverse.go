package shadow

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/shadowdom/dom"
)

// Shadow-including traversal spans the document tree together with every
// shadow tree hanging off one of its elements. Fragments appear in the
// results as the boundary nodes they are, right after their host's light
// subtree. Traversal does not honor the open/closed distinction; hiding
// closed trees from scripts is a concern of the script-facing surface,
// not of the registry.

// IncludingAncestors returns the shadow-including ancestor chain of a
// node, nearest first, crossing from every fragment to its host. The
// node itself is not part of the chain.
func (reg *Registry) IncludingAncestors(n *dom.Node) []*dom.Node {
	var chain []*dom.Node
	for p := reg.IncludingParent(n); p != nil; p = reg.IncludingParent(p) {
		chain = append(chain, p)
	}
	return chain
}

// IncludingDescendants returns the shadow-including descendants of a
// node in tree order: each child is followed by its own descendants and
// then by its shadow tree, fragment first. The shadow tree of n itself
// is not descended into.
func (reg *Registry) IncludingDescendants(n *dom.Node) []*dom.Node {
	var nodes []*dom.Node
	if n != nil {
		reg.collectIncluding(n, &nodes)
	}
	return nodes
}

// IncludingTreeOrder returns n followed by its shadow-including
// descendants, i.e. the inclusive pre-order walk of the composed tree
// below n.
func (reg *Registry) IncludingTreeOrder(n *dom.Node) []*dom.Node {
	if n == nil {
		return nil
	}
	nodes := []*dom.Node{n}
	reg.collectIncluding(n, &nodes)
	return nodes
}

func (reg *Registry) collectIncluding(n *dom.Node, nodes *[]*dom.Node) {
	for _, ch := range n.ChildNodes() {
		*nodes = append(*nodes, ch)
		reg.collectIncluding(ch, nodes)
		if sr := reg.RootFor(ch); sr != nil {
			*nodes = append(*nodes, sr.Fragment())
			reg.collectIncluding(sr.Fragment(), nodes)
		}
	}
}

// IsIncludingAncestor reports whether anc lies on the shadow-including
// ancestor chain of n.
func (reg *Registry) IsIncludingAncestor(anc, n *dom.Node) bool {
	if anc == nil || n == nil {
		return false
	}
	for p := reg.IncludingParent(n); p != nil; p = reg.IncludingParent(p) {
		if p == anc {
			return true
		}
	}
	return false
}

// IncludingFirstChild returns the first child of a node, nil for leaves.
func (reg *Registry) IncludingFirstChild(n *dom.Node) *dom.Node {
	if n == nil || n.ChildCount() == 0 {
		return nil
	}
	return n.ChildNodes()[0]
}

// IncludingLastChild returns the last child of a node, nil for leaves.
func (reg *Registry) IncludingLastChild(n *dom.Node) *dom.Node {
	if n == nil || n.ChildCount() == 0 {
		return nil
	}
	children := n.ChildNodes()
	return children[len(children)-1]
}

// IncludingNextSibling returns the node following n among the children
// of its shadow-including parent. A fragment has no siblings: it is not
// a child of its host.
func (reg *Registry) IncludingNextSibling(n *dom.Node) *dom.Node {
	prev := false
	for _, sib := range reg.includingSiblings(n) {
		if prev {
			return sib
		}
		prev = sib == n
	}
	return nil
}

// IncludingPreviousSibling returns the node preceding n among the
// children of its shadow-including parent.
func (reg *Registry) IncludingPreviousSibling(n *dom.Node) *dom.Node {
	var prev *dom.Node
	for _, sib := range reg.includingSiblings(n) {
		if sib == n {
			return prev
		}
		prev = sib
	}
	return nil
}

func (reg *Registry) includingSiblings(n *dom.Node) []*dom.Node {
	if n == nil {
		return nil
	}
	p := reg.IncludingParent(n)
	if p == nil {
		return nil
	}
	return p.ChildNodes()
}

// --- Shadow-aware selector queries -----------------------------------------

// QuerySelector finds the first element below scope, in shadow-including
// tree order, matching a selector. Selectors are restricted to the
// simple forms of scoped style rules: a tag name, optionally narrowed by
// classes or an id; combinators and pseudo classes are rejected with an
// error.
func (reg *Registry) QuerySelector(scope *dom.Node, sel string) (*dom.Node, error) {
	nodes, err := reg.query(scope, sel, true)
	if err != nil || len(nodes) == 0 {
		return nil, err
	}
	return nodes[0], nil
}

// QuerySelectorAll collects all elements below scope, in shadow-including
// tree order, matching a selector. The selector restrictions of
// QuerySelector apply.
func (reg *Registry) QuerySelectorAll(scope *dom.Node, sel string) ([]*dom.Node, error) {
	return reg.query(scope, sel, false)
}

func (reg *Registry) query(scope *dom.Node, sel string, first bool) ([]*dom.Node, error) {
	if sel == "" || strings.ContainsAny(sel, " \t>+~|&[](),:") {
		return nil, fmt.Errorf("unsupported selector %q", sel)
	}
	s, err := cascadia.Compile(sel)
	if err != nil {
		return nil, fmt.Errorf("selector %q: %w", sel, err)
	}
	var matches []*dom.Node
	reg.queryStep(scope, s, first, &matches)
	tracer().Debugf("query %q matched %d node(s)", sel, len(matches))
	return matches, nil
}

// queryStep visits a node, its children and finally its shadow tree.
// Unlike IncludingDescendants the walk does enter the shadow tree of the
// scope node itself.
func (reg *Registry) queryStep(n *dom.Node, s cascadia.Selector, first bool, matches *[]*dom.Node) {
	if n == nil || (first && len(*matches) > 0) {
		return
	}
	if n.IsElement() && s.Match(n.HTMLNode()) {
		*matches = append(*matches, n)
		if first {
			return
		}
	}
	for _, ch := range n.ChildNodes() {
		reg.queryStep(ch, s, first, matches)
	}
	if sr := reg.RootFor(n); sr != nil {
		reg.queryStep(sr.Fragment(), s, first, matches)
	}
}
