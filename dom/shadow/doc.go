/*
Package shadow implements shadow tree encapsulation on top of package dom.

# Overview

A shadow tree is a hidden subtree attached to a host element. It consists
of a ShadowRoot (the encapsulation boundary, holding a document fragment),
slot elements which project "light" children of the host into the hidden
subtree, and bookkeeping for event paths that cross the boundary.

All shadow state is owned by a Registry. Client code never links nodes of
the document tree to shadow objects directly; instead the registry keeps
lookup tables (host to root, fragment to root, slot element to slot state,
slottable to assigned slot). Ownership of subtree lifetime always flows
from host to shadow root to fragment children, never the reverse.

Operations are synchronous and perform no internal locking. Clients are
expected to call them from a single mutating goroutine, as is the case for
all tree mutation in this module.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package shadow

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'shadowdom.shadow'
func tracer() tracing.Trace {
	return tracing.Select("shadowdom.shadow")
}
