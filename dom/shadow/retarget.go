package shadow

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/shadowdom/dom"
)

// treeRoot walks plain parent links up to the top of the tree holding n.
// For a node inside a shadow tree this is the tree's fragment node.
func treeRoot(n *dom.Node) *dom.Node {
	for n != nil && n.ParentNode() != nil {
		n = n.ParentNode()
	}
	return n
}

// IncludingParent returns the shadow-including parent of a node: for the
// fragment of a shadow tree this is the tree's host, for every other
// node the ordinary parent.
func (reg *Registry) IncludingParent(n *dom.Node) *dom.Node {
	if n == nil {
		return nil
	}
	if sr := reg.rootOfFragment(n); sr != nil {
		return sr.Host()
	}
	return n.ParentNode()
}

// IncludingRoot returns the shadow-including root of a node, crossing
// from every shadow fragment to its host on the way up.
func (reg *Registry) IncludingRoot(n *dom.Node) *dom.Node {
	for n != nil {
		p := reg.IncludingParent(n)
		if p == nil {
			return n
		}
		n = p
	}
	return nil
}

// ComposedPath computes the chain of nodes an event dispatched at target
// would travel, bottom up. Whenever the walk reaches the fragment of a
// shadow tree, crossing over to the host requires composed; non-composed
// events never leave their tree, open or closed. Closed roots contribute
// their host and its ancestors just like open ones: hiding the inner
// segment of the path from outside observers is a retargeting concern,
// not a path concern.
func (reg *Registry) ComposedPath(target *dom.Node, composed bool) []*dom.Node {
	var path []*dom.Node
	for n := target; n != nil; {
		path = append(path, n)
		if sr := reg.rootOfFragment(n); sr != nil {
			if !composed {
				break
			}
			n = sr.Host()
			continue
		}
		n = n.ParentNode()
	}
	return path
}

// RetargetEvent is the single-step retargeting primitive used by the
// event dispatch loop whenever it crosses one shadow boundary: the
// observed target for listeners outside the tree holding target is the
// tree's host. Outside any shadow tree, target is returned unchanged.
func (reg *Registry) RetargetEvent(target *dom.Node) *dom.Node {
	if target == nil {
		return nil
	}
	if sr := reg.rootOfFragment(treeRoot(target)); sr != nil {
		return sr.Host()
	}
	return target
}

// RetargetRelatedTarget applies the retargeting rule to the related
// target of focus/blur style events. Safe to call with nil.
func (reg *Registry) RetargetRelatedTarget(related *dom.Node) *dom.Node {
	return reg.RetargetEvent(related)
}
