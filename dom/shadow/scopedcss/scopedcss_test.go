package scopedcss

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/shadowdom/dom"
	"github.com/npillmayer/shadowdom/dom/shadow"
	"github.com/stretchr/testify/assert"
)

func TestClassifySelector(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowdom.scopedcss")
	defer teardown()
	//
	cases := []struct {
		sel   string
		scope Scope
	}{
		{":host", Host()},
		{":host(.active)", HostFunction(".active")},
		{":host-context(.dark)", HostContext(".dark")},
		{"::slotted(span)", Slotted("span")},
		{"p.title", ScopedSelector("p.title")},
		{"div > p", ScopedSelector("div > p")},
		{":host(.active", ScopedSelector(":host(.active")}, // unbalanced
	}
	for _, c := range cases {
		assert.Equal(t, c.scope, ClassifySelector(c.sel), "selector %q", c.sel)
	}
}

func TestScopeMatching(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowdom.scopedcss")
	defer teardown()
	//
	scope := HostFunction(".active")
	var sel string
	switch m := scope.Match(); m {
	case m.IsKind(HostFunction("")).WithSelector(&sel):
		if sel != ".active" {
			t.Errorf("expected inner selector .active, is %q", sel)
		}
	default:
		t.Errorf("expected scope to match kind HostFunction, doesn't: %v", scope)
	}
	//
	m := ScopePattern[string](Slotted("span"))
	var inner string
	kind := m.OneOf(ScopePatterns[string]{
		Host:         "host",
		HostFunction: "host-fn",
		HostContext:  "host-ctx",
		Slotted:      m.With(&inner).Const("slotted"),
		Scoped:       "scoped",
	})
	if kind != "slotted" || inner != "span" {
		t.Errorf("expected exhaustive match to pick slotted(span), picks %s(%s)", kind, inner)
	}
}

func TestParseShadowCSS(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowdom.scopedcss")
	defer teardown()
	//
	rules := ParseShadowCSS(`
        /* component styling */
        :host { border-color: blue }
        ::slotted(span), p.title {
            color: red;
            width: 10pt;
        }
    `)
	if len(rules) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(rules))
	}
	assert.Equal(t, Host(), rules[0].Scope())
	assert.Equal(t, Slotted("span"), rules[1].Scope())
	assert.Equal(t, ScopedSelector("p.title"), rules[2].Scope())
	props := rules[2].Properties()
	if len(props) != 2 || props[0].Key != "color" || props[0].Value != "red" {
		t.Errorf("expected rule to declare color: red, declares %v", props)
	}
}

func TestParseFallbackScan(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowdom.scopedcss")
	defer teardown()
	//
	rules := scanRules(`
        garbage without a block
        :host { color : green ; nonsense ; }
        p { }
    `)
	if len(rules) != 1 {
		t.Fatalf("expected scan to salvage 1 rule, got %d", len(rules))
	}
	if rules[0].Scope() != Host() {
		t.Errorf("expected salvaged rule to scope to :host, is %v", rules[0].Scope())
	}
	props := rules[0].Properties()
	if len(props) != 1 || props[0].Key != "color" || props[0].Value != "green" {
		t.Errorf("expected declaration color: green, is %v", props)
	}
}

func TestParseNeverFails(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowdom.scopedcss")
	defer teardown()
	//
	for _, text := range []string{"", "}{", "@@@", "p { color: red"} {
		rules := ParseShadowCSS(text)
		t.Logf("%q parsed to %d rule(s)", text, len(rules))
	}
}

// --- Application -----------------------------------------------------------

func buildComponent(t *testing.T) (*shadow.Registry, *shadow.ShadowRoot) {
	reg := shadow.NewRegistry()
	parent := dom.NewElement("section")
	parent.SetAttr("class", "dark")
	host := dom.NewElement("div")
	host.SetAttr("class", "active")
	parent.AppendChild(host)
	sr, err := reg.Attach(host, shadow.Open, shadow.Options{})
	if err != nil {
		t.Fatalf("expected attach to succeed, got %v", err)
	}
	title := dom.NewElement("p")
	title.SetAttr("class", "title")
	sr.Fragment().AppendChild(title)
	sr.Fragment().AppendChild(dom.NewElement("slot"))
	span := dom.NewElement("span")
	host.AppendChild(span)
	sr.AssignSlottables()
	return reg, sr
}

func TestApplyHostRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowdom.scopedcss")
	defer teardown()
	//
	reg, sr := buildComponent(t)
	ApplyScopedStyles(reg, sr, ParseShadowCSS(`
        :host { border-color: blue }
        :host(.active) { color: red }
        :host(.inactive) { color: green }
        :host-context(.dark) { background-color: black }
        :host-context(.light) { background-color: white }
    `))
	host := sr.Host()
	if p, ok := host.StyleProperty("border-color"); !ok || p != "blue" {
		t.Errorf("expected :host rule to set border-color: blue, is %q", p)
	}
	if p, ok := host.StyleProperty("color"); !ok || p != "red" {
		t.Errorf("expected :host(.active) to apply, color is %q", p)
	}
	if p, ok := host.StyleProperty("background-color"); !ok || p != "black" {
		t.Errorf("expected :host-context(.dark) to apply via the parent, is %q", p)
	}
}

func TestApplySlottedAndScopedRules(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowdom.scopedcss")
	defer teardown()
	//
	reg, sr := buildComponent(t)
	ApplyScopedStyles(reg, sr, ParseShadowCSS(`
        ::slotted(span) { color: red }
        ::slotted(p) { color: green }
        p.title { text-align: center }
    `))
	span := sr.Host().ChildNodes()[0]
	if p, ok := span.StyleProperty("color"); !ok || p != "red" {
		t.Errorf("expected ::slotted(span) to style the slotted span, is %q", p)
	}
	title := sr.Fragment().ChildNodes()[0]
	if p, ok := title.StyleProperty("text-align"); !ok || p != "center" {
		t.Errorf("expected p.title to style the inner element, is %q", p)
	}
	if _, ok := title.StyleProperty("color"); ok {
		t.Error("expected inner p not to be styled as slotted, is")
	}
}

func TestApplyDropsGarbageDimensions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowdom.scopedcss")
	defer teardown()
	//
	reg, sr := buildComponent(t)
	ApplyScopedStyles(reg, sr, ParseShadowCSS(`
        :host { width: banana; height: 10pt }
    `))
	if _, ok := sr.Host().StyleProperty("width"); ok {
		t.Error("expected garbage dimension value to be dropped, isn't")
	}
	if p, ok := sr.Host().StyleProperty("height"); !ok || p != "10pt" {
		t.Errorf("expected valid dimension to be applied, is %q", p)
	}
}

func TestIsolateShadowStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowdom.scopedcss")
	defer teardown()
	//
	_, sr := buildComponent(t)
	IsolateShadowStyles(sr)
	if !sr.IsIsolated() {
		t.Error("expected tree to be marked isolated, isn't")
	}
	for _, key := range []string{"color", "font-family", "direction"} {
		if p, ok := sr.Styles().Property(key); !ok || !p.IsInitial() {
			t.Errorf("expected %s to be reset to initial at the boundary, is %q", key, p)
		}
	}
}

func TestResolveCustomProperty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "shadowdom.scopedcss")
	defer teardown()
	//
	_, sr := buildComponent(t)
	sr.Host().SetStyleProperty("--accent", "blue")
	sr.Host().SetStyleProperty("--fallback", "green")
	sr.Host().ParentNode().SetStyleProperty("--spacing", "2pt")
	sr.Styles().Add("--accent", "red")
	//
	if p, ok := ResolveCustomProperty("--accent", sr); !ok || p != "red" {
		t.Errorf("expected tree store to shadow the host value, is %q", p)
	}
	if p, ok := ResolveCustomProperty("--fallback", sr); !ok || p != "green" {
		t.Errorf("expected one level of fallback to the host, is %q", p)
	}
	if p, ok := ResolveCustomProperty("--spacing", sr); ok {
		t.Errorf("expected resolution to stop at the host, found %q", p)
	}
	if _, ok := ResolveCustomProperty("color", sr); ok {
		t.Error("expected non-custom key to be rejected, isn't")
	}
}
