package scopedcss

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/shadowdom/css"
	"github.com/npillmayer/shadowdom/dom"
	"github.com/npillmayer/shadowdom/dom/shadow"
	"github.com/npillmayer/shadowdom/dom/style"
	"github.com/npillmayer/shadowdom/tree"
)

// ApplyScopedStyles applies a parsed rule set to the elements a shadow
// tree scopes: the host, slotted nodes, or elements inside the tree,
// depending on each rule's scope form. Rules whose selector matches
// nothing simply contribute nothing.
func ApplyScopedStyles(reg *shadow.Registry, root *shadow.ShadowRoot, rules []Rule) {
	for _, rule := range rules {
		m := ScopePattern[[]*dom.Node](rule.scope)
		var sel string
		targets := m.OneOf(ScopePatterns[[]*dom.Node]{
			Host:         []*dom.Node{root.Host()},
			HostFunction: m.With(&sel).Const(matchingHost(root, sel)),
			HostContext:  m.With(&sel).Const(hostInContext(reg, root, sel)),
			Slotted:      m.With(&sel).Const(slottedMatches(root, sel)),
			Scoped:       m.With(&sel).Const(scopedMatches(root, sel)),
		})
		for _, target := range targets {
			applyProperties(target, rule.props)
		}
	}
}

func applyProperties(target *dom.Node, props []style.KeyValue) {
	for _, p := range props {
		if style.GroupNameFromPropertyKey(p.Key) == style.PGDimension {
			if css.Dimen(p.Value).IsNone() {
				tracer().Debugf("dropping garbage dimension %s: %s", p.Key, p.Value)
				continue
			}
		}
		target.SetStyleProperty(p.Key, p.Value)
	}
}

func matchingHost(root *shadow.ShadowRoot, sel string) []*dom.Node {
	if matches(sel, root.Host()) {
		return []*dom.Node{root.Host()}
	}
	return nil
}

// hostInContext matches the host, or any of its ancestors outside the
// shadow tree, against sel. Ancestor walking crosses enclosing shadow
// boundaries host-ward.
func hostInContext(reg *shadow.Registry, root *shadow.ShadowRoot, sel string) []*dom.Node {
	for n := root.Host(); n != nil; n = reg.IncludingParent(n) {
		if matches(sel, n) {
			return []*dom.Node{root.Host()}
		}
	}
	return nil
}

// slottedMatches collects the nodes currently projected into the tree's
// slots. Direct assignment is consulted, not the flattened form.
func slottedMatches(root *shadow.ShadowRoot, sel string) []*dom.Node {
	var nodes []*dom.Node
	for _, slot := range root.Slots() {
		for _, n := range slot.AssignedNodes(false) {
			if matches(sel, n) {
				nodes = append(nodes, n)
			}
		}
	}
	return nodes
}

// scopedMatches collects matching elements from a depth-first scan of
// the tree's own children. Nested shadow trees keep their contents to
// themselves.
func scopedMatches(root *shadow.ShadowRoot, sel string) []*dom.Node {
	var nodes []*dom.Node
	tree.TopDown(&root.Fragment().Node, func(n *tree.Node[*dom.Node]) bool {
		if d := dom.FromTree(n); matches(sel, d) {
			nodes = append(nodes, d)
		}
		return true
	})
	return nodes
}

// matches matches an element against the simple selector forms this
// package supports: tag, .class, #id, * and compounds thereof.
// Combinators, attribute selectors, pseudo classes and malformed
// selectors never match.
func matches(sel string, n *dom.Node) bool {
	if n == nil || !n.IsElement() {
		return false
	}
	sel = strings.TrimSpace(sel)
	if sel == "" || strings.ContainsAny(sel, " \t>+~|&[](),:") {
		return false
	}
	s, err := cascadia.Compile(sel)
	if err != nil {
		return false
	}
	return s.Match(n.HTMLNode())
}

// --- Style isolation and custom properties ---------------------------------

// IsolateShadowStyles resets the inheritable properties (the fixed list
// of style.InheritedProperties) to "initial" on the fragment-level store
// of a shadow tree and marks the tree isolated, so that ordinary style
// inheritance does not leak across the boundary.
func IsolateShadowStyles(root *shadow.ShadowRoot) {
	for _, key := range style.InheritedProperties {
		root.Styles().Add(key, style.Property("initial"))
	}
	root.MarkIsolated()
	tracer().Debugf("isolated shadow tree of <%s>", root.Host().TagName())
}

// ResolveCustomProperty resolves a custom property ("--name") for a
// shadow tree: the tree's own store first, then exactly one level of
// fallback to the host's store. Resolution does not continue up the
// ancestor chain.
func ResolveCustomProperty(name string, root *shadow.ShadowRoot) (style.Property, bool) {
	if !style.IsCustomProperty(name) {
		return style.NullStyle, false
	}
	if p, ok := root.Styles().Property(name); ok {
		return p, true
	}
	if p, ok := root.Host().StyleProperty(name); ok {
		return p, true
	}
	return style.NullStyle, false
}
