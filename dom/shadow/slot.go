package shadow

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/shadowdom/dom"
	"github.com/npillmayer/shadowdom/tree"
)

// Nested slot chains are resolved recursively during flattening. Deeper
// chains than this are treated as cyclic and cut off.
const maxSlotDepth = 32

// Slot is the assignment state of one slot element inside a shadow tree.
// Slot state is created lazily by the registry, clients obtain it through
// Registry.SlotFor.
type Slot struct {
	reg      *Registry
	root     *ShadowRoot
	elem     *dom.Node   // the slot element
	assigned []*dom.Node // current assignment, in document order
	manual   []*dom.Node // explicit list, manual assignment mode only
}

// Element returns the slot element this state belongs to.
func (s *Slot) Element() *dom.Node {
	return s.elem
}

// Name returns the slot's matching key, mirroring the name attribute.
// The empty string denotes the default slot.
func (s *Slot) Name() string {
	return s.elem.AttrValue("name")
}

// SetName changes the slot's matching key. The caller re-runs
// AssignSlottables afterwards; SetName itself does not.
func (s *Slot) SetName(name string) {
	s.elem.SetAttr("name", name)
}

// AssignedNodes returns the nodes currently projected into this slot,
// flattened through nested slot chains if requested.
func (s *Slot) AssignedNodes(flatten bool) []*dom.Node {
	if flatten {
		return FlattenedAssignedNodes(s)
	}
	nodes := make([]*dom.Node, len(s.assigned))
	copy(nodes, s.assigned)
	return nodes
}

// AssignedElements is AssignedNodes restricted to element nodes.
func (s *Slot) AssignedElements(flatten bool) []*dom.Node {
	var elems []*dom.Node
	for _, n := range s.AssignedNodes(flatten) {
		if n.IsElement() {
			elems = append(elems, n)
		}
	}
	return elems
}

// Assign sets the explicit candidate list of a slot in a manually
// assigned tree and re-runs assignment. In a named tree Assign is a
// silent no-op.
func (s *Slot) Assign(nodes ...*dom.Node) {
	if s.root.SlotAssignment() != AssignManual {
		tracer().Debugf("slot %q is not manually assignable, ignoring", s.Name())
		return
	}
	s.manual = append([]*dom.Node{}, nodes...)
	s.root.AssignSlottables()
}

// SlotFor returns the slot state of a slot element inside a shadow tree,
// creating it on first use. It returns nil for anything that is not a
// slot element or lives outside every shadow tree.
func (reg *Registry) SlotFor(elem *dom.Node) *Slot {
	if elem == nil || elem.TagName() != "slot" {
		return nil
	}
	if s, ok := reg.slots[elem]; ok {
		return s
	}
	root := reg.rootOfFragment(treeRoot(elem))
	if root == nil {
		return nil
	}
	s := &Slot{reg: reg, root: root, elem: elem}
	reg.slots[elem] = s
	return s
}

// AssignedSlotOf returns the slot a light-tree node is currently
// projected into, or nil.
func (reg *Registry) AssignedSlotOf(n *dom.Node) *Slot {
	return reg.assigned[n]
}

// --- Assignment algorithm --------------------------------------------------

// AssignSlottables recomputes the slot assignment of this shadow tree
// from scratch and returns the slots whose assignment changed. Callers
// invoke it after every structural change to the host's children or to
// the tree's slot set; how a changed slot is signalled is their concern.
//
// Slots are enumerated in document order of the fragment; the walk does
// not descend into nested shadow trees (their fragments are separate
// trees). In named mode every eligible host child is assigned to the
// first slot whose name equals its slot attribute, text nodes targeting
// the default slot. In manual mode each slot's explicit list is filtered
// to current host children. Ineligible inputs are dropped silently.
//
// Slot state of slot elements that have left the tree since the last run
// is dropped, together with the back-references of their former
// assignment. A vanished slot that held an assignment is reported as
// changed.
func (sr *ShadowRoot) AssignSlottables() []*Slot {
	slots := sr.slotList()
	changed := sr.dropVanishedSlots(slots)
	assignment := make(map[*Slot][]*dom.Node, len(slots))
	if sr.SlotAssignment() == AssignManual {
		for _, s := range slots {
			for _, n := range s.manual {
				if isSlottable(n) && n.ParentNode() == sr.host {
					assignment[s] = append(assignment[s], n)
				}
			}
		}
	} else {
		for _, ch := range sr.host.ChildNodes() {
			if !isSlottable(ch) {
				continue
			}
			key := ""
			if ch.IsElement() {
				key = ch.AttrValue("slot")
			}
			for _, s := range slots {
				if s.Name() == key {
					assignment[s] = append(assignment[s], ch)
					break
				}
			}
		}
	}
	for _, s := range slots {
		if !sameNodes(s.assigned, assignment[s]) {
			changed = append(changed, s)
		}
	}
	for _, s := range slots {
		for _, n := range s.assigned {
			if sr.reg.assigned[n] == s {
				delete(sr.reg.assigned, n)
			}
		}
	}
	for _, s := range slots {
		s.assigned = assignment[s]
		for _, n := range s.assigned {
			sr.reg.assigned[n] = s
		}
	}
	tracer().Debugf("assigned slottables of <%s>, %d slot(s) changed",
		sr.host.TagName(), len(changed))
	return changed
}

// dropVanishedSlots reconciles the registry's slot states of this tree
// with the slots currently present in the fragment. States of slot
// elements no longer in the tree are dropped, returning those that
// still held an assignment.
func (sr *ShadowRoot) dropVanishedSlots(current []*Slot) []*Slot {
	present := make(map[*Slot]bool, len(current))
	for _, s := range current {
		present[s] = true
	}
	var vanished []*Slot
	for _, s := range sr.reg.slots {
		if s.root != sr || present[s] {
			continue
		}
		if len(s.assigned) > 0 {
			vanished = append(vanished, s)
		}
		sr.reg.dropSlot(s)
	}
	return vanished
}

// Slots enumerates the slots of this tree in document order of the
// fragment, without descending into nested shadow trees.
func (sr *ShadowRoot) Slots() []*Slot {
	return sr.slotList()
}

// slotList enumerates the slot states of this tree, in document order of
// the fragment.
func (sr *ShadowRoot) slotList() []*Slot {
	var slots []*Slot
	tree.TopDown(&sr.fragment.Node, func(n *tree.Node[*dom.Node]) bool {
		d := dom.FromTree(n)
		if d.TagName() != "slot" {
			return true
		}
		s, ok := sr.reg.slots[d]
		if !ok {
			s = &Slot{reg: sr.reg, root: sr, elem: d}
			sr.reg.slots[d] = s
		} else if s.root != sr { // slot element moved between trees
			s.root = sr
		}
		slots = append(slots, s)
		return true
	})
	return slots
}

// FlattenedAssignedNodes resolves nested slot chains: an assigned node
// that is itself a slot is replaced by that slot's flattened nodes, so a
// chain of slots collapses to the terminal projected content. A depth
// guard cuts off cyclic assignments.
func FlattenedAssignedNodes(s *Slot) []*dom.Node {
	return s.flatten(0)
}

func (s *Slot) flatten(depth int) []*dom.Node {
	if depth >= maxSlotDepth {
		tracer().Errorf("slot %q: nested slot chain exceeds depth %d, cut off",
			s.Name(), maxSlotDepth)
		return nil
	}
	var nodes []*dom.Node
	for _, n := range s.assigned {
		if nested, ok := s.reg.slots[n]; ok {
			nodes = append(nodes, nested.flatten(depth+1)...)
			continue
		}
		nodes = append(nodes, n)
	}
	return nodes
}

func isSlottable(n *dom.Node) bool {
	return n != nil && (n.IsElement() || n.IsText())
}

func sameNodes(a, b []*dom.Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
