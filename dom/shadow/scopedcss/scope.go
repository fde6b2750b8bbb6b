package scopedcss

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"
)

const (
	scopeHost uint8 = iota
	scopeHostFunction
	scopeHostContext
	scopeSlotted
	scopeScoped
)

// Scope is an option type for the scope forms a shadow tree selector may
// take.
type Scope struct {
	kind uint8
	sel  string
}

/*
type Scope
	= Host
	| HostFunction selector
	| HostContext selector
	| Slotted selector
	| ScopedSelector selector
*/

// Host creates the scope of the bare :host selector.
func Host() Scope {
	return Scope{kind: scopeHost}
}

// HostFunction creates the scope of a :host(sel) selector.
func HostFunction(sel string) Scope {
	return Scope{kind: scopeHostFunction, sel: sel}
}

// HostContext creates the scope of a :host-context(sel) selector.
func HostContext(sel string) Scope {
	return Scope{kind: scopeHostContext, sel: sel}
}

// Slotted creates the scope of a ::slotted(sel) selector.
func Slotted(sel string) Scope {
	return Scope{kind: scopeSlotted, sel: sel}
}

// ScopedSelector creates the scope of an ordinary selector, matched
// against elements inside the shadow tree only.
func ScopedSelector(sel string) Scope {
	return Scope{kind: scopeScoped, sel: sel}
}

// Selector returns the inner selector of a scope, empty for Host.
func (s Scope) Selector() string {
	return s.sel
}

func (s Scope) String() string {
	switch s.kind {
	case scopeHost:
		return ":host"
	case scopeHostFunction:
		return ":host(" + s.sel + ")"
	case scopeHostContext:
		return ":host-context(" + s.sel + ")"
	case scopeSlotted:
		return "::slotted(" + s.sel + ")"
	}
	return s.sel
}

// ClassifySelector classifies a selector string by literal prefix and
// suffix matching. Anything that is not one of the :host/::slotted forms
// classifies as a scoped selector, including malformed input, which then
// never matches an element.
func ClassifySelector(sel string) Scope {
	sel = strings.TrimSpace(sel)
	if sel == ":host" {
		return Host()
	}
	if inner, ok := parenArg(sel, ":host-context("); ok {
		return HostContext(inner)
	}
	if inner, ok := parenArg(sel, ":host("); ok {
		return HostFunction(inner)
	}
	if inner, ok := parenArg(sel, "::slotted("); ok {
		return Slotted(inner)
	}
	return ScopedSelector(sel)
}

func parenArg(sel string, prefix string) (string, bool) {
	if !strings.HasPrefix(sel, prefix) || !strings.HasSuffix(sel, ")") {
		return "", false
	}
	return strings.TrimSpace(sel[len(prefix) : len(sel)-1]), true
}

// ---------------------------------------------------------------------------

func (s Scope) Match() *Matcher {
	return &Matcher{scope: s}
}

type Matcher struct {
	scope Scope
}

func (m *Matcher) IsKind(s Scope) *Matcher {
	if m.scope.kind == s.kind {
		return m
	}
	return nil
}

func (m *Matcher) WithSelector(sel *string) *Matcher {
	if m == nil || m.scope.kind == scopeHost {
		return nil
	}
	if sel != nil {
		*sel = m.scope.sel
	}
	return m
}

// --- Expression matching ---------------------------------------------------

type ScopePatterns[T any] struct {
	Host         T
	HostFunction T
	HostContext  T
	Slotted      T
	Scoped       T
}

func ScopePattern[T any](s Scope) *MatchExpr[T] {
	return &MatchExpr[T]{scope: s}
}

type MatchExpr[T any] struct {
	scope Scope
}

// OneOf matches a scope exhaustively against the five forms.
func (m *MatchExpr[T]) OneOf(patterns ScopePatterns[T]) T {
	switch m.scope.kind {
	case scopeHost:
		return patterns.Host
	case scopeHostFunction:
		return patterns.HostFunction
	case scopeHostContext:
		return patterns.HostContext
	case scopeSlotted:
		return patterns.Slotted
	}
	return patterns.Scoped
}

func (m *MatchExpr[T]) With(sel *string) *MatchExpr[T] {
	*sel = m.scope.sel
	return m
}

func (m *MatchExpr[T]) Const(x T) T {
	return x
}
