package scopedcss

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/shadowdom/dom/style"
)

// Rule is one style rule scoped to a shadow tree, immutable after
// parsing. A new style text produces a brand-new rule set.
type Rule struct {
	scope Scope
	props []style.KeyValue
}

// Scope returns the classified scope of the rule's selector.
func (r Rule) Scope() Scope {
	return r.scope
}

// Properties returns the declared property key/value pairs.
func (r Rule) Properties() []style.KeyValue {
	props := make([]style.KeyValue, len(r.props))
	copy(props, r.props)
	return props
}

func (r Rule) String() string {
	return r.scope.String() + " { … }"
}

// ParseShadowCSS parses style text into scoped rules. douceur does the
// parsing; input it rejects is handed to a tolerant line scanner instead,
// so ParseShadowCSS never fails, it at worst answers with fewer rules.
// A rule with several (comma separated) selectors contributes one Rule
// per selector.
func ParseShadowCSS(text string) []Rule {
	sheet, err := parser.Parse(text)
	if err != nil {
		tracer().Debugf("style text rejected by parser (%v), falling back to line scan", err)
		return scanRules(text)
	}
	var rules []Rule
	for _, r := range sheet.Rules {
		if r.Kind != css.QualifiedRule {
			continue // @-rules carry no scope
		}
		props := make([]style.KeyValue, 0, len(r.Declarations))
		for _, d := range r.Declarations {
			props = append(props, style.KeyValue{
				Key:   strings.TrimSpace(d.Property),
				Value: style.Property(strings.TrimSpace(d.Value)),
			})
		}
		selectors := r.Selectors
		if len(selectors) == 0 {
			selectors = []string{r.Prelude}
		}
		for _, sel := range selectors {
			rules = append(rules, Rule{scope: ClassifySelector(sel), props: props})
		}
	}
	tracer().Debugf("parsed %d scoped style rule(s)", len(rules))
	return rules
}

// scanRules is the fallback for style text douceur rejects: a
// line-oriented scan for "selector { prop: value; … }" blocks that skips
// comments and everything else it does not recognize.
func scanRules(text string) []Rule {
	text = stripComments(text)
	var rules []Rule
	for {
		open := strings.IndexByte(text, '{')
		if open < 0 {
			return rules
		}
		clos := strings.IndexByte(text[open:], '}')
		if clos < 0 {
			return rules
		}
		selectors := strings.TrimSpace(text[:open])
		body := text[open+1 : open+clos]
		text = text[open+clos+1:]
		props := scanDeclarations(body)
		if selectors == "" || len(props) == 0 {
			continue
		}
		for _, sel := range strings.Split(selectors, ",") {
			rules = append(rules, Rule{scope: ClassifySelector(sel), props: props})
		}
	}
}

func scanDeclarations(body string) []style.KeyValue {
	var props []style.KeyValue
	for _, decl := range strings.Split(body, ";") {
		key, value, ok := strings.Cut(decl, ":")
		if !ok {
			continue
		}
		key, value = strings.TrimSpace(key), strings.TrimSpace(value)
		if key == "" || value == "" {
			continue
		}
		props = append(props, style.KeyValue{Key: key, Value: style.Property(value)})
	}
	return props
}

func stripComments(text string) string {
	for {
		open := strings.Index(text, "/*")
		if open < 0 {
			return text
		}
		clos := strings.Index(text[open:], "*/")
		if clos < 0 {
			return text[:open]
		}
		text = text[:open] + text[open+clos+2:]
	}
}
