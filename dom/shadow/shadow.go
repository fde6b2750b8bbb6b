package shadow

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/shadowdom/dom"
	"github.com/npillmayer/shadowdom/dom/style"
	"golang.org/x/net/html"
)

// Attaching a shadow root may fail for structural reasons. Everything
// else in this package degrades silently.
var (
	ErrAlreadyHasShadowRoot = errors.New("host already has a shadow root")
	ErrNotShadowHostCapable = errors.New("element may not be a shadow host")
)

// Mode is the encapsulation mode of a shadow root, fixed at creation.
type Mode int8

const (
	Open Mode = iota
	Closed
)

func (m Mode) String() string {
	if m == Closed {
		return "closed"
	}
	return "open"
}

// ModeFromString converts a mode attribute value to a Mode. Matching is
// case-insensitive. ok is false for anything but "open"/"closed".
func ModeFromString(s string) (Mode, bool) {
	switch strings.ToLower(s) {
	case "open":
		return Open, true
	case "closed":
		return Closed, true
	}
	return Open, false
}

// SlotAssignment selects how slots inside a shadow tree acquire their
// assigned nodes: by name matching or by explicit Slot.Assign calls.
// A shadow root is fully one or the other, fixed at creation.
type SlotAssignment int8

const (
	AssignNamed SlotAssignment = iota
	AssignManual
)

func (a SlotAssignment) String() string {
	if a == AssignManual {
		return "manual"
	}
	return "named"
}

// Options configure a shadow root at attach time. The zero value gives
// a non-clonable, non-serializable root with named slot assignment.
type Options struct {
	Clonable       bool
	Serializable   bool
	DelegatesFocus bool
	SlotAssignment SlotAssignment
}

// --- Registry --------------------------------------------------------------

// Registry owns every shadow tree of a document. Shadow state is kept in
// lookup tables rather than in the document nodes themselves, so the dom
// layer stays free of back-pointers into this package.
type Registry struct {
	roots     map[*dom.Node]*ShadowRoot // host element -> root
	fragments map[*dom.Node]*ShadowRoot // fragment node -> root
	slots     map[*dom.Node]*Slot       // slot element -> slot state
	assigned  map[*dom.Node]*Slot       // slottable -> currently assigned slot
}

// NewRegistry creates an empty shadow tree registry, usually one per
// document.
func NewRegistry() *Registry {
	return &Registry{
		roots:     make(map[*dom.Node]*ShadowRoot),
		fragments: make(map[*dom.Node]*ShadowRoot),
		slots:     make(map[*dom.Node]*Slot),
		assigned:  make(map[*dom.Node]*Slot),
	}
}

// Attach creates a shadow root and attaches it to host. It fails with
// ErrAlreadyHasShadowRoot if the host already owns a live root, and with
// ErrNotShadowHostCapable if the host's tag is not eligible (see
// dom.IsShadowHostCapable).
func (reg *Registry) Attach(host *dom.Node, mode Mode, opts Options) (*ShadowRoot, error) {
	if host == nil || !host.IsElement() {
		return nil, ErrNotShadowHostCapable
	}
	if !dom.IsShadowHostCapable(host.TagName()) {
		return nil, fmt.Errorf("<%s>: %w", host.TagName(), ErrNotShadowHostCapable)
	}
	if _, ok := reg.roots[host]; ok {
		return nil, fmt.Errorf("<%s>: %w", host.TagName(), ErrAlreadyHasShadowRoot)
	}
	sr := &ShadowRoot{
		reg:      reg,
		host:     host,
		fragment: dom.NewFragment(),
		mode:     mode,
		opts:     opts,
		styles:   style.NewPropertyMap(),
	}
	reg.roots[host] = sr
	reg.fragments[sr.fragment] = sr
	tracer().Debugf("attached %s shadow root to <%s>", mode, host.TagName())
	return sr, nil
}

// RootFor returns the shadow root attached to host, or nil. The registry
// is an engine-internal surface: closed roots are returned as well, hiding
// them from script is the concern of an embedding API layer.
func (reg *Registry) RootFor(host *dom.Node) *ShadowRoot {
	return reg.roots[host]
}

// Detach removes the shadow root of host together with all slot state of
// its tree. A host without a root is a no-op.
func (reg *Registry) Detach(host *dom.Node) {
	sr := reg.roots[host]
	if sr == nil {
		return
	}
	for _, slot := range sr.slotList() {
		reg.dropSlot(slot)
	}
	delete(reg.fragments, sr.fragment)
	delete(reg.roots, host)
	tracer().Debugf("detached shadow root from <%s>", host.TagName())
}

// rootOfFragment returns the shadow root whose fragment is n, or nil.
func (reg *Registry) rootOfFragment(n *dom.Node) *ShadowRoot {
	return reg.fragments[n]
}

func (reg *Registry) dropSlot(slot *Slot) {
	for _, n := range slot.assigned {
		if reg.assigned[n] == slot {
			delete(reg.assigned, n)
		}
	}
	delete(reg.slots, slot.elem)
}

// --- ShadowRoot ------------------------------------------------------------

// ShadowRoot is the encapsulation boundary object of one shadow tree. It
// holds a document fragment whose child list is mutated through the
// ordinary dom primitives; the root only adds identity and mode semantics
// on top.
type ShadowRoot struct {
	reg      *Registry
	host     *dom.Node
	fragment *dom.Node
	mode     Mode
	opts     Options
	styles   *style.PropertyMap // fragment-level store, see package scopedcss
	isolated bool
}

// Host returns the element this root is attached to.
func (sr *ShadowRoot) Host() *dom.Node {
	return sr.host
}

// Fragment returns the fragment node holding the shadow tree's children.
// Clients append and remove children through the usual dom operations.
func (sr *ShadowRoot) Fragment() *dom.Node {
	return sr.fragment
}

// Mode returns the encapsulation mode, Open or Closed.
func (sr *ShadowRoot) Mode() Mode {
	return sr.mode
}

func (sr *ShadowRoot) IsClonable() bool {
	return sr.opts.Clonable
}

func (sr *ShadowRoot) IsSerializable() bool {
	return sr.opts.Serializable
}

func (sr *ShadowRoot) DelegatesFocus() bool {
	return sr.opts.DelegatesFocus
}

// SlotAssignment returns the slot assignment mode of this tree.
func (sr *ShadowRoot) SlotAssignment() SlotAssignment {
	return sr.opts.SlotAssignment
}

// AssignedSlot returns the slot this root's host is currently assigned
// to, if the host is itself slotted into an enclosing shadow tree.
func (sr *ShadowRoot) AssignedSlot() *Slot {
	return sr.reg.AssignedSlotOf(sr.host)
}

// Styles returns the style store of the fragment root. Style isolation
// and custom property resolution operate on this store.
func (sr *ShadowRoot) Styles() *style.PropertyMap {
	return sr.styles
}

// IsIsolated reports wether the style isolation pass has been run on
// this tree.
func (sr *ShadowRoot) IsIsolated() bool {
	return sr.isolated
}

// MarkIsolated records that the style isolation pass has run.
func (sr *ShadowRoot) MarkIsolated() {
	sr.isolated = true
}

// ShouldEventCrossBoundary is the gate the event dispatch loop consults
// when a bubbling walk reaches this tree's fragment: an open root lets
// composed events pass, a closed root answers false unconditionally and
// the dispatch loop pairs that with retargeting to the host (see
// Registry.RetargetEvent).
func (sr *ShadowRoot) ShouldEventCrossBoundary(composed bool) bool {
	if sr.mode == Closed {
		return false
	}
	return composed
}

// --- Serialization ---------------------------------------------------------

// InnerHTML serializes the shadow tree's children to markup. Roots not
// created with Options.Serializable answer with the empty string.
func (sr *ShadowRoot) InnerHTML() string {
	if !sr.opts.Serializable {
		return ""
	}
	var b strings.Builder
	for _, ch := range sr.fragment.ChildNodes() {
		if err := html.Render(&b, ch.HTMLNode()); err != nil {
			tracer().Errorf("shadow root serialization: %v", err)
		}
	}
	return b.String()
}

// SetInnerHTML replaces the shadow tree's children with nodes scanned
// from markup. Embedded <style> text is sanitized (see SanitizeShadowCSS)
// before it enters the tree. Scanning is tolerant, malformed markup
// degrades to fewer nodes rather than an error.
func (sr *ShadowRoot) SetInnerHTML(markup string) {
	for _, ch := range sr.fragment.ChildNodes() {
		ch.Remove()
	}
	for _, n := range ScanMarkup(markup) {
		sr.fragment.AppendChild(n)
	}
}
