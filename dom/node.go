package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/shadowdom/dom/style"
	"github.com/npillmayer/shadowdom/tree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Node is a document node, the building block of the document tree.
type Node struct {
	tree.Node[*Node]            // we build on top of a general purpose tree
	htmlNode         *html.Node // tag, attributes and structural links
	styles           *style.PropertyMap
}

// NewElement creates a new element node for a given tag name.
func NewElement(tagname string) *Node {
	tagname = strings.ToLower(tagname)
	n := newNode(&html.Node{
		Type:     html.ElementNode,
		Data:     tagname,
		DataAtom: atom.Lookup([]byte(tagname)),
	})
	return n
}

// NewText creates a new text node.
func NewText(text string) *Node {
	return newNode(&html.Node{
		Type: html.TextNode,
		Data: text,
	})
}

// NewFragment creates a document-fragment node, i.e. a parent-less
// container for a subtree. Shadow roots own such a fragment.
func NewFragment() *Node {
	return newNode(&html.Node{
		Type: html.DocumentNode,
	})
}

func newNode(h *html.Node) *Node {
	n := &Node{}
	n.Payload = n // Payload will always reference the node itself
	n.htmlNode = h
	return n
}

// FromTree gets the dom node from a generic tree node.
func FromTree(n *tree.Node[*Node]) *Node {
	if n == nil {
		return nil
	}
	return n.Payload
}

// HTMLNode gets the HTML node corresponding to this dom node.
func (n *Node) HTMLNode() *html.Node {
	return n.htmlNode
}

// NodeType returns the type of the underlying HTML node (ElementNode,
// TextNode, etc.)
func (n *Node) NodeType() html.NodeType {
	if n == nil {
		return html.ErrorNode
	}
	return n.htmlNode.Type
}

// IsElement is a predicate for element nodes.
func (n *Node) IsElement() bool {
	return n != nil && n.htmlNode.Type == html.ElementNode
}

// IsText is a predicate for text nodes.
func (n *Node) IsText() bool {
	return n != nil && n.htmlNode.Type == html.TextNode
}

// TagName returns the (lower case) tag name for element nodes, and the
// empty string for every other node type.
func (n *Node) TagName() string {
	if !n.IsElement() {
		return ""
	}
	return n.htmlNode.Data
}

// Text returns the text content of a text node, and the empty string for
// every other node type.
func (n *Node) Text() string {
	if !n.IsText() {
		return ""
	}
	return n.htmlNode.Data
}

func (n *Node) String() string {
	switch n.NodeType() {
	case html.ElementNode:
		return "<" + n.TagName() + ">"
	case html.TextNode:
		return fmt.Sprintf("%q", n.Text())
	case html.DocumentNode:
		return "#fragment"
	}
	return "<node/?>"
}

// --- Attributes ------------------------------------------------------------

// Attr returns the value of an attribute, together with an indicator
// wether the attribute is present at all.
func (n *Node) Attr(key string) (string, bool) {
	if !n.IsElement() {
		return "", false
	}
	for _, a := range n.htmlNode.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// AttrValue returns the value of an attribute, or the empty string if the
// attribute is not present.
func (n *Node) AttrValue(key string) string {
	v, _ := n.Attr(key)
	return v
}

// SetAttr sets an attribute value, overwriting a present one.
func (n *Node) SetAttr(key, value string) *Node {
	if !n.IsElement() {
		return n
	}
	for i, a := range n.htmlNode.Attr {
		if a.Key == key {
			n.htmlNode.Attr[i].Val = value
			return n
		}
	}
	n.htmlNode.Attr = append(n.htmlNode.Attr, html.Attribute{Key: key, Val: value})
	return n
}

// ID returns the value of the id attribute, if any.
func (n *Node) ID() string {
	return n.AttrValue("id")
}

// HasClass checks for membership in the class attribute.
func (n *Node) HasClass(class string) bool {
	for _, c := range strings.Fields(n.AttrValue("class")) {
		if c == class {
			return true
		}
	}
	return false
}

// --- Structure -------------------------------------------------------------

// AppendChild appends a child node, connecting both the generic tree
// links and the underlying HTML node links. It returns n to allow for
// chaining.
func (n *Node) AppendChild(ch *Node) *Node {
	if ch == nil {
		return n
	}
	isolateHTML(ch.htmlNode)
	n.Node.AddChild(&ch.Node)
	n.htmlNode.AppendChild(ch.htmlNode)
	return n
}

// PrependChild inserts a child node at the first position.
func (n *Node) PrependChild(ch *Node) *Node {
	if ch == nil {
		return n
	}
	isolateHTML(ch.htmlNode)
	n.Node.InsertChildAt(0, &ch.Node)
	n.htmlNode.InsertBefore(ch.htmlNode, n.htmlNode.FirstChild)
	return n
}

// ReplaceChildren drops all children and appends the given nodes instead.
func (n *Node) ReplaceChildren(ch ...*Node) *Node {
	for c := n.htmlNode.FirstChild; c != nil; c = n.htmlNode.FirstChild {
		n.htmlNode.RemoveChild(c)
	}
	n.Node.ReplaceChildren()
	for _, c := range ch {
		n.AppendChild(c)
	}
	return n
}

// Remove isolates a node from its parent (both link layers) and
// returns it.
func (n *Node) Remove() *Node {
	isolateHTML(n.htmlNode)
	n.Node.Isolate()
	return n
}

func isolateHTML(h *html.Node) {
	if h.Parent != nil {
		h.Parent.RemoveChild(h)
	}
}

// ParentNode returns the parent dom node, if any.
func (n *Node) ParentNode() *Node {
	if n == nil {
		return nil
	}
	return FromTree(n.Node.Parent())
}

// ChildNodes returns all children of a node, in document order.
func (n *Node) ChildNodes() []*Node {
	if n == nil {
		return nil
	}
	tnodes := n.Node.Children()
	children := make([]*Node, 0, len(tnodes))
	for _, t := range tnodes {
		children = append(children, FromTree(t))
	}
	return children
}

// Children returns the element children of a node, in document order.
func (n *Node) Children() []*Node {
	var elems []*Node
	for _, ch := range n.ChildNodes() {
		if ch.IsElement() {
			elems = append(elems, ch)
		}
	}
	return elems
}

// TextContent returns the concatenated text of this node and all of its
// descendants, in document order.
func (n *Node) TextContent() string {
	var sb strings.Builder
	tree.TopDown(&n.Node, func(t *tree.Node[*Node]) bool {
		if d := FromTree(t); d.IsText() {
			sb.WriteString(d.Text())
		}
		return true
	})
	return sb.String()
}

// --- Styles ----------------------------------------------------------------

// Styles returns the styling properties attached to this node.
// May be nil (nil is a legal empty property map).
func (n *Node) Styles() *style.PropertyMap {
	return n.styles
}

// SetStyles sets the styling properties of a node.
func (n *Node) SetStyles(styles *style.PropertyMap) {
	n.styles = styles
}

// StyleProperty returns a style property value by key, together with an
// indicator wether it is set on this node. Custom properties ("--*") are
// legal keys. No cascading is performed.
func (n *Node) StyleProperty(key string) (style.Property, bool) {
	if n == nil || n.styles == nil {
		return style.NullStyle, false
	}
	return n.styles.Property(key)
}

// SetStyleProperty sets a style property value, keyed by string name.
func (n *Node) SetStyleProperty(key string, value style.Property) {
	if n == nil {
		return
	}
	if n.styles == nil {
		n.styles = style.NewPropertyMap()
	}
	n.styles.Add(key, value)
}

// --- Shadow host eligibility -----------------------------------------------

// IsShadowHostCapable reports wether an element with the given tag name
// may have a shadow root attached. Custom elements (tag names containing
// a hyphen) are always eligible; of the standard HTML elements only the
// sectioning/grouping tags, form containers and a few interactive
// elements are.
func IsShadowHostCapable(tagname string) bool {
	tagname = strings.ToLower(tagname)
	if strings.Contains(tagname, "-") { // custom elements
		return true
	}
	switch tagname {
	case "article", "aside", "blockquote", "body", "div",
		"footer", "h1", "h2", "h3", "h4", "h5", "h6",
		"header", "main", "nav", "p", "section", "span":
		return true
	case "form", "fieldset":
		return true
	case "details", "dialog":
		return true
	}
	return false
}
