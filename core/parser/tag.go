package parser

import (
	"regexp"
	"strings"

	"github.com/focuswithjustin/canonref/core/ref"
)

// chapterVersePattern matches a bare chapter or chapter:verse locus, e.g.
// "3", "3:16", "3.16a" — the shape a reference takes once a book name has
// already been matched.
const chapterVersePattern = `[1-9][0-9]*[a-f]{0,2}\b(?:[.:]?[1-9][0-9]*[a-f]{0,2}\b)?`

// separatorPattern matches the punctuation that can join two loci within
// one tagged span: comma, hyphen, en/em dash, optionally surrounded by
// whitespace.
const separatorPattern = `\s*[,\-\x{2013}\x{2014}]?\s*`

// buildTagPattern assembles the single regex TagText uses to find
// reference-shaped spans in prose: an optional leading book name, followed
// by one or more separator-joined chapter/verse loci.
func buildTagPattern(bookPatterns []string) *regexp.Regexp {
	bkAlt := strings.Join(bookPatterns, "|")
	src := `(?i)(?:(?:` + bkAlt + `)\.?\s*)?` + chapterVersePattern +
		`(?:` + separatorPattern + `(?:(?:` + bkAlt + `)\.?\s*)?` + chapterVersePattern + `)*`
	return regexp.MustCompile(src)
}

// TagText finds reference-shaped substrings in plain text and wraps each
// one in a `<ref name="...">` tag, where name is the canonical reference
// string the matched text parses to. It is a thin wrapper over Parser: no
// new parsing logic, just pattern-driven span detection followed by a call
// to Parse per span.
//
// bookHint is passed unchanged to Parse for every span. TagText never
// updates it, so a book named in one span does not carry over to later
// spans or to later calls.
//
// A single call's replacements often reparse the same reference more than
// once (a recurring citation in a long passage, a repeated cross-ref), so
// the formatted refstring for each distinct RefList is cached by its
// ref.HashRefList digest for the lifetime of the call, skipping redundant
// Format/Normalize work for spans that resolve to a list already seen.
func (p *Parser) TagText(text string, bookHint *string) string {
	pattern := buildTagPattern(p.bookPatterns())
	cache := make(map[string]string)
	return pattern.ReplaceAllStringFunc(text, func(span string) string {
		list := p.Parse(span, bookHint)
		if len(list) == 0 {
			return span
		}
		key := ref.HashRefList(list)
		refstr, ok := cache[key]
		if !ok {
			refstr = p.Refstring(list)
			cache[key] = refstr
		}
		return `<ref name="` + escapeXMLAttr(refstr) + `">` + span + `</ref>`
	})
}

// escapeXMLAttr escapes s for use inside a double-quoted XML attribute
// value, as required for the name attribute TagText emits.
func escapeXMLAttr(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		case '"':
			b.WriteString("&quot;")
		case '\'':
			b.WriteString("&#39;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func (p *Parser) bookPatterns() []string {
	patterns := make([]string, 0, len(p.canon.Books))
	for _, b := range p.canon.Books {
		patterns = append(patterns, b.Pattern)
	}
	return patterns
}
