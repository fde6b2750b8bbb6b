package dom

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestNodeCreation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowdom.dom")
	defer teardown()
	//
	div := NewElement("DIV")
	if !div.IsElement() || div.TagName() != "div" {
		t.Errorf("expected a div element with lower case tag, is %v", div)
	}
	text := NewText("hello")
	if !text.IsText() || text.Text() != "hello" {
		t.Errorf("expected a text node \"hello\", is %v", text)
	}
	frag := NewFragment()
	if frag.IsElement() || frag.IsText() {
		t.Errorf("expected a fragment to be neither element nor text, is %v", frag)
	}
}

func TestNodeAttributes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowdom.dom")
	defer teardown()
	//
	p := NewElement("p")
	p.SetAttr("class", "title wide").SetAttr("id", "intro")
	if p.ID() != "intro" {
		t.Errorf("expected id intro, is %q", p.ID())
	}
	if !p.HasClass("wide") || p.HasClass("narrow") {
		t.Error("expected class membership title/wide, isn't")
	}
	p.SetAttr("id", "lead")
	if v, ok := p.Attr("id"); !ok || v != "lead" {
		t.Errorf("expected SetAttr to overwrite id, is %q", v)
	}
	if _, ok := p.Attr("missing"); ok {
		t.Error("expected absent attribute to report absence, doesn't")
	}
}

func TestNodeStructure(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowdom.dom")
	defer teardown()
	//
	div := NewElement("div")
	h1 := NewElement("h1")
	text := NewText("headline")
	h1.AppendChild(text)
	div.AppendChild(h1)
	div.PrependChild(NewElement("nav"))
	//
	children := div.ChildNodes()
	if len(children) != 2 || children[0].TagName() != "nav" || children[1] != h1 {
		t.Errorf("expected children [nav h1], are %v", children)
	}
	if h1.ParentNode() != div {
		t.Error("expected h1 to link back to div, doesn't")
	}
	if div.TextContent() != "headline" {
		t.Errorf("expected text content \"headline\", is %q", div.TextContent())
	}
}

func TestNodeStructureMirrorsHTML(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowdom.dom")
	defer teardown()
	//
	div := NewElement("div")
	h1 := NewElement("h1")
	div.AppendChild(h1)
	if div.HTMLNode().FirstChild != h1.HTMLNode() {
		t.Error("expected the html layer to mirror AppendChild, doesn't")
	}
	h1.Remove()
	if div.HTMLNode().FirstChild != nil {
		t.Error("expected the html layer to mirror Remove, doesn't")
	}
	if div.ChildCount() != 0 {
		t.Errorf("expected no children after remove, have %d", div.ChildCount())
	}
	other := NewElement("section")
	other.AppendChild(h1)
	div.AppendChild(h1) // reparenting detaches from section first
	if len(other.ChildNodes()) != 0 || h1.ParentNode() != div {
		t.Error("expected reparenting to detach both layers, doesn't")
	}
}

func TestNodeReplaceChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowdom.dom")
	defer teardown()
	//
	ul := NewElement("ul")
	ul.AppendChild(NewElement("li"))
	ul.AppendChild(NewElement("li"))
	single := NewElement("li")
	ul.ReplaceChildren(single)
	if children := ul.ChildNodes(); len(children) != 1 || children[0] != single {
		t.Errorf("expected children to be replaced by one li, are %v", children)
	}
	if ul.HTMLNode().FirstChild != single.HTMLNode() ||
		ul.HTMLNode().FirstChild.NextSibling != nil {
		t.Error("expected the html layer to hold exactly the new child, doesn't")
	}
}

func TestElementChildrenOnly(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowdom.dom")
	defer teardown()
	//
	div := NewElement("div")
	div.AppendChild(NewText("intro "))
	div.AppendChild(NewElement("em"))
	div.AppendChild(NewText(" outro"))
	if elems := div.Children(); len(elems) != 1 || elems[0].TagName() != "em" {
		t.Errorf("expected element children [em], are %v", elems)
	}
}

func TestStyleProperties(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowdom.dom")
	defer teardown()
	//
	p := NewElement("p")
	if _, ok := p.StyleProperty("color"); ok {
		t.Error("expected a fresh node to carry no styles, does")
	}
	p.SetStyleProperty("color", "red")
	p.SetStyleProperty("--accent", "blue")
	if v, ok := p.StyleProperty("color"); !ok || v != "red" {
		t.Errorf("expected color red, is %q", v)
	}
	if v, ok := p.StyleProperty("--accent"); !ok || v != "blue" {
		t.Errorf("expected custom property to be stored, is %q", v)
	}
}

func TestIsShadowHostCapable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowdom.dom")
	defer teardown()
	//
	capable := []string{"div", "ARTICLE", "my-widget", "h3", "fieldset", "dialog"}
	for _, tag := range capable {
		if !IsShadowHostCapable(tag) {
			t.Errorf("expected <%s> to be shadow host capable, isn't", strings.ToLower(tag))
		}
	}
	incapable := []string{"img", "a", "input", "table", "slot", "template"}
	for _, tag := range incapable {
		if IsShadowHostCapable(tag) {
			t.Errorf("expected <%s> not to be shadow host capable, is", tag)
		}
	}
}
