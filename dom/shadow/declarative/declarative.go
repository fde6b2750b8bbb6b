/*
Package declarative builds shadow trees from serialized markup.

A <template> element carrying a shadowrootmode directive attribute
declares a shadow tree: processing it attaches a shadow root to a fresh
host element and populates the root's fragment from the template's inner
markup, without the application calling any host API itself. Templates
without the directive are ordinary templates and are left alone.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package declarative

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/shadowdom/dom"
	"github.com/npillmayer/shadowdom/dom/shadow"
	"github.com/npillmayer/shadowdom/dom/shadow/scopedcss"
)

// tracer will return a tracer. We are tracing to 'shadowdom.declarative'
func tracer() tracing.Trace {
	return tracing.Select("shadowdom.declarative")
}

// Placeholder replaces a processed template's span in the rewritten
// document markup.
const Placeholder = "<!-- declarative shadow root processed -->"

// Template is the scratch result of scanning one declarative template
// out of document markup. It is consumed by Process and not retained.
type Template struct {
	Mode           shadow.Mode
	Clonable       bool
	Serializable   bool
	DelegatesFocus bool
	Inner          string // markup between the template tags
	Start, End     int    // byte offsets of the template span in the source
}

// FindTemplates scans markup for top-level declarative shadow templates.
// A template qualifies if its opening tag carries shadowrootmode with
// value open or closed (bare, single- or double-quoted, in any case);
// other templates are skipped. A template without a matching closing tag
// is skipped as well, scanning continues behind its opening tag.
func FindTemplates(markup string) []Template {
	var templates []Template
	lower := strings.ToLower(markup)
	pos := 0
	for {
		start := strings.Index(lower[pos:], "<template")
		if start < 0 {
			return templates
		}
		start += pos
		gt := strings.IndexByte(markup[start:], '>')
		if gt < 0 {
			return templates
		}
		opening := markup[start+1 : start+gt]
		pos = start + gt + 1
		end := matchingClose(lower, pos)
		if end < 0 {
			continue
		}
		tpl, ok := parseDirectives(opening)
		if !ok {
			pos = end + len("</template>")
			continue
		}
		tpl.Inner = markup[pos:end]
		tpl.Start, tpl.End = start, end+len("</template>")
		templates = append(templates, tpl)
		pos = tpl.End
	}
}

// matchingClose finds the matching </template> for an opening tag ending
// just before pos, respecting nested template elements. It returns the
// offset of the closing tag, or -1.
func matchingClose(lower string, pos int) int {
	depth := 1
	for depth > 0 {
		clos := strings.Index(lower[pos:], "</template>")
		if clos < 0 {
			return -1
		}
		clos += pos
		if open := strings.Index(lower[pos:clos], "<template"); open >= 0 {
			depth++
			pos += open + len("<template")
			continue
		}
		depth--
		pos = clos + len("</template>")
		if depth == 0 {
			return clos
		}
	}
	return -1
}

// parseDirectives reads the shadow root directives off a template's
// opening tag. ok is false if shadowrootmode is missing or carries an
// unknown value. The boolean directives are true when present without a
// value or with value "true".
func parseDirectives(opening string) (Template, bool) {
	elems := shadow.ScanMarkup("<" + opening + ">")
	if len(elems) != 1 || elems[0].TagName() != "template" {
		return Template{}, false
	}
	elem := elems[0]
	mode, ok := shadow.ModeFromString(elem.AttrValue("shadowrootmode"))
	if !ok {
		return Template{}, false
	}
	return Template{
		Mode:           mode,
		Clonable:       boolDirective(elem, "shadowrootclonable"),
		Serializable:   boolDirective(elem, "shadowrootserializable"),
		DelegatesFocus: boolDirective(elem, "shadowrootdelegatesfocus"),
	}, true
}

func boolDirective(elem *dom.Node, name string) bool {
	v, ok := elem.Attr(name)
	return ok && (v == "" || strings.EqualFold(v, "true"))
}

// Process materializes one declarative template: it creates a div host,
// attaches a shadow root with the template's mode and flags, scans the
// inner markup into the root's fragment, applies embedded style text as
// scoped rules, runs slot assignment and finally recurses for nested
// declarative templates, whose hosts end up beneath the new fragment.
func Process(reg *shadow.Registry, tpl Template) (*shadow.ShadowRoot, error) {
	host := dom.NewElement("div")
	sr, err := reg.Attach(host, tpl.Mode, shadow.Options{
		Clonable:       tpl.Clonable,
		Serializable:   tpl.Serializable,
		DelegatesFocus: tpl.DelegatesFocus,
	})
	if err != nil {
		return nil, err
	}
	nested := FindTemplates(tpl.Inner)
	inner := cutSpans(tpl.Inner, nested)
	for _, n := range shadow.ScanMarkup(inner) {
		sr.Fragment().AppendChild(n)
	}
	for _, text := range shadow.ExtractStyleTexts(inner) {
		rules := scopedcss.ParseShadowCSS(shadow.SanitizeShadowCSS(text))
		scopedcss.ApplyScopedStyles(reg, sr, rules)
	}
	sr.AssignSlottables()
	for _, inner := range nested {
		innerRoot, err := Process(reg, inner)
		if err != nil {
			tracer().Errorf("nested declarative template: %v", err)
			continue
		}
		sr.Fragment().AppendChild(innerRoot.Host())
	}
	return sr, nil
}

// cutSpans removes the recorded template spans from markup, so that the
// flat node scan does not descend into nested declarative content.
func cutSpans(markup string, templates []Template) string {
	for i := len(templates) - 1; i >= 0; i-- {
		markup = markup[:templates[i].Start] + markup[templates[i].End:]
	}
	return markup
}

// ProcessDocument is the batch entry point for a whole document: it
// finds all declarative templates, processes each one and replaces its
// source span with a placeholder comment. Spans are rewritten in reverse
// order, keeping earlier offsets valid while later ones change. A
// template that fails to process is left untouched in the markup.
func ProcessDocument(reg *shadow.Registry, markup string) (string, []*shadow.ShadowRoot) {
	templates := FindTemplates(markup)
	var roots []*shadow.ShadowRoot
	processed := make([]bool, len(templates))
	for i, tpl := range templates {
		sr, err := Process(reg, tpl)
		if err != nil {
			tracer().Errorf("declarative template at offset %d: %v", tpl.Start, err)
			continue
		}
		roots = append(roots, sr)
		processed[i] = true
	}
	for i := len(templates) - 1; i >= 0; i-- {
		if !processed[i] {
			continue
		}
		markup = markup[:templates[i].Start] + Placeholder + markup[templates[i].End:]
	}
	tracer().Infof("processed %d declarative shadow tree(s)", len(roots))
	return markup, roots
}
