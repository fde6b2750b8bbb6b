/*
Package scopedcss applies style rules scoped to a shadow tree.

# Overview

Style text belonging to a shadow tree uses a restricted CSS subset. Every
selector of a rule is classified into one of five scope forms:

	:host                  the host element itself
	:host(sel)             the host, if it matches sel
	:host-context(sel)     the host, if it or an ancestor matches sel
	::slotted(sel)         nodes projected into the tree's slots
	sel                    elements inside the shadow tree

Scope is a sum type over these five forms, with matchers in the style of
package css. Parsing is tolerant: unrecognized selectors classify as the
last form and simply never match, a rule body that cannot be parsed is
dropped. No operation of this package returns an error.

Selector matching is restricted to the simple forms a shadow tree needs
(tag, .class, #id, * and compounds thereof); combinators, attribute
selectors and pseudo classes never match.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package scopedcss

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'shadowdom.scopedcss'
func tracer() tracing.Trace {
	return tracing.Select("shadowdom.scopedcss")
}
