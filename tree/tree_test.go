package tree

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNodeAddChild(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowdom.tree")
	defer teardown()
	//
	root := NewNode(1)
	root.AddChild(NewNode(2)).AddChild(NewNode(3))
	if root.ChildCount() != 2 {
		t.Errorf("expected root to have 2 children, has %d", root.ChildCount())
	}
	ch, ok := root.Child(1)
	if !ok || ch.Payload != 3 {
		t.Errorf("expected child #1 to carry payload 3, is %v", ch)
	}
	if ch.Parent() != root {
		t.Error("expected child #1 to link back to root as parent, doesn't")
	}
}

func TestNodeInsertChildAt(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowdom.tree")
	defer teardown()
	//
	root := NewNode(1)
	root.AddChild(NewNode(2)).AddChild(NewNode(4))
	root.InsertChildAt(1, NewNode(3))
	var payloads []int
	for _, ch := range root.Children() {
		payloads = append(payloads, ch.Payload)
	}
	if len(payloads) != 3 || payloads[0] != 2 || payloads[1] != 3 || payloads[2] != 4 {
		t.Errorf("expected children in order [2 3 4], are %v", payloads)
	}
}

func TestNodeIsolate(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowdom.tree")
	defer teardown()
	//
	root := NewNode(1)
	ch := NewNode(2)
	root.AddChild(ch)
	ch.Isolate()
	if root.ChildCount() != 0 {
		t.Errorf("expected root to have no children after isolate, has %d", root.ChildCount())
	}
	if ch.Parent() != nil {
		t.Error("expected isolated node to have no parent, has one")
	}
}

func TestNodeReparent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowdom.tree")
	defer teardown()
	//
	a, b := NewNode(1), NewNode(2)
	ch := NewNode(3)
	a.AddChild(ch)
	b.AddChild(ch) // re-parenting must isolate first
	if a.ChildCount() != 0 {
		t.Errorf("expected a to lose re-parented child, has %d children", a.ChildCount())
	}
	if ch.Parent() != b {
		t.Error("expected re-parented child under b, isn't")
	}
}

func TestTopDownOrder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowdom.tree")
	defer teardown()
	//
	root := NewNode(1)
	sub := NewNode(2)
	sub.AddChild(NewNode(3))
	root.AddChild(sub).AddChild(NewNode(4))
	var order []int
	TopDown(root, func(node *Node[int]) bool {
		order = append(order, node.Payload)
		return true
	})
	if len(order) != 4 || order[0] != 1 || order[1] != 2 || order[2] != 3 || order[3] != 4 {
		t.Errorf("expected document order [1 2 3 4], is %v", order)
	}
}

func TestDescendantsWith(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowdom.tree")
	defer teardown()
	//
	root := NewNode(1)
	sub := NewNode(2)
	sub.AddChild(NewNode(3))
	root.AddChild(sub).AddChild(NewNode(5))
	leafs := DescendantsWith(root, NodeIsLeaf[int]())
	if len(leafs) != 2 {
		t.Fatalf("expected 2 leafs, are %d", len(leafs))
	}
	if leafs[0].Payload != 3 || leafs[1].Payload != 5 {
		t.Errorf("expected leafs [3 5], are [%v %v]", leafs[0].Payload, leafs[1].Payload)
	}
}

func TestAncestorWith(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowdom.tree")
	defer teardown()
	//
	root := NewNode(1)
	sub := NewNode(2)
	leaf := NewNode(3)
	sub.AddChild(leaf)
	root.AddChild(sub)
	anc := AncestorWith(leaf, func(node *Node[int]) bool { return node.Payload == 1 })
	if anc != root {
		t.Errorf("expected ancestor with payload 1 to be root, is %v", anc)
	}
	if AncestorWith(root, Whatever[int]()) != nil {
		t.Error("expected root to have no matching ancestor, has one")
	}
}
