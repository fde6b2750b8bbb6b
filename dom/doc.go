/*
Package dom provides the document nodes our shadow trees are made of.

# Overview

Styling and composition of HTML involve a lot of operations on different
trees. We implement the document tree on top of a general purpose tree
type (package tree). Every document node wraps a node of the HTML parser
from golang.org/x/net, which carries the tag, the attributes and the
structural links selector engines rely on.

In a fully object oriented programming language we would subclass a base
node type for every kind of node in use, but in Go we resort to
composition, thus including a generic tree node in every node. The
downside of this approach is that we have to provide an adapter to return
the dom node from the generic tree node (see function FromTree).

Shadow-tree specific behaviour (encapsulation, slots, retargeting) is
layered on top of this package by package dom/shadow.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'shadowdom.dom'
func tracer() tracing.Trace {
	return tracing.Select("shadowdom.dom")
}
