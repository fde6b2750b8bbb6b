package shadow

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"strings"

	"github.com/npillmayer/shadowdom/dom"
)

// ScanMarkup scans serialized markup into a flat list of document nodes.
// This is a minimal scanner, not an HTML parser: it recognizes opening
// tags with their attributes (slot elements among them), text runs and
// comments; closing tags are dropped, nesting is not reconstructed. The
// declarative shadow tree builder and ShadowRoot.SetInnerHTML feed on it.
//
// A <style> element is special: its text content is captured up to the
// closing tag and sanitized before it becomes a text child.
func ScanMarkup(markup string) []*dom.Node {
	var nodes []*dom.Node
	pos := 0
	for pos < len(markup) {
		lt := strings.IndexByte(markup[pos:], '<')
		if lt < 0 {
			nodes = appendText(nodes, markup[pos:])
			break
		}
		lt += pos
		nodes = appendText(nodes, markup[pos:lt])
		switch {
		case strings.HasPrefix(markup[lt:], "<!--"):
			end := strings.Index(markup[lt+4:], "-->")
			if end < 0 {
				return nodes // unterminated comment swallows the rest
			}
			pos = lt + 4 + end + 3
		case strings.HasPrefix(markup[lt:], "</"):
			gt := strings.IndexByte(markup[lt:], '>')
			if gt < 0 {
				return nodes
			}
			pos = lt + gt + 1
		default:
			gt := strings.IndexByte(markup[lt:], '>')
			if gt < 0 {
				return nodes
			}
			elem, tagname := scanTag(markup[lt+1 : lt+gt])
			pos = lt + gt + 1
			if elem == nil {
				continue
			}
			if tagname == "style" {
				end := strings.Index(strings.ToLower(markup[pos:]), "</style")
				if end < 0 {
					return nodes
				}
				css := SanitizeShadowCSS(markup[pos : pos+end])
				elem.AppendChild(dom.NewText(css))
				if gt = strings.IndexByte(markup[pos+end:], '>'); gt < 0 {
					return append(nodes, elem)
				}
				pos = pos + end + gt + 1
			}
			nodes = append(nodes, elem)
		}
	}
	return nodes
}

func appendText(nodes []*dom.Node, text string) []*dom.Node {
	if strings.TrimSpace(text) == "" {
		return nodes
	}
	return append(nodes, dom.NewText(text))
}

// scanTag scans the inside of an opening tag ("div class=x") into an
// element node. Attributes may be bare, single- or double-quoted.
func scanTag(tag string) (*dom.Node, string) {
	tag = strings.TrimSuffix(strings.TrimSpace(tag), "/")
	name := tag
	rest := ""
	if i := strings.IndexAny(tag, " \t\n\r"); i >= 0 {
		name, rest = tag[:i], tag[i:]
	}
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || !isTagName(name) {
		return nil, ""
	}
	elem := dom.NewElement(name)
	for {
		key, value, r := scanAttr(rest)
		if key == "" {
			break
		}
		elem.SetAttr(key, value)
		rest = r
	}
	return elem, name
}

func isTagName(name string) bool {
	for _, r := range name {
		ok := r == '-' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9'
		if !ok {
			return false
		}
	}
	return true
}

// scanAttr scans one attribute off the front of s and returns it together
// with the remaining input. An empty key signals exhausted input.
func scanAttr(s string) (key string, value string, rest string) {
	s = strings.TrimLeft(s, " \t\n\r")
	if s == "" {
		return "", "", ""
	}
	i := 0
	for i < len(s) && !strings.ContainsRune(" \t\n\r=", rune(s[i])) {
		i++
	}
	key, s = strings.ToLower(s[:i]), strings.TrimLeft(s[i:], " \t\n\r")
	if key == "" {
		return "", "", ""
	}
	if !strings.HasPrefix(s, "=") {
		return key, "", s // bare attribute
	}
	s = strings.TrimLeft(s[1:], " \t\n\r")
	if s == "" {
		return key, "", ""
	}
	if q := s[0]; q == '"' || q == '\'' {
		if end := strings.IndexByte(s[1:], q); end >= 0 {
			return key, s[1 : 1+end], s[end+2:]
		}
		return key, s[1:], ""
	}
	i = 0
	for i < len(s) && !strings.ContainsRune(" \t\n\r", rune(s[i])) {
		i++
	}
	return key, s[:i], s[i:]
}

// --- CSS text hygiene ------------------------------------------------------

// SanitizeShadowCSS strips @import statements from style text before it
// enters a shadow tree. Each statement is replaced with a comment, the
// rest of the text is untouched.
func SanitizeShadowCSS(css string) string {
	for {
		at := strings.Index(css, "@import")
		if at < 0 {
			return css
		}
		end := strings.IndexByte(css[at:], ';')
		if end < 0 {
			return css[:at] + "/* @import removed */"
		}
		css = css[:at] + "/* @import removed */" + css[at+end+1:]
	}
}

// ExtractStyleTexts collects the body of every <style> element found in
// markup. Unterminated style elements contribute nothing.
func ExtractStyleTexts(markup string) []string {
	var texts []string
	lower := strings.ToLower(markup)
	pos := 0
	for {
		start := strings.Index(lower[pos:], "<style")
		if start < 0 {
			return texts
		}
		start += pos
		gt := strings.IndexByte(lower[start:], '>')
		if gt < 0 {
			return texts
		}
		body := start + gt + 1
		end := strings.Index(lower[body:], "</style")
		if end < 0 {
			return texts
		}
		texts = append(texts, markup[body:body+end])
		pos = body + end + 7
	}
}
