// Package format renders a ref.RefList back to a user-facing string under a
// configurable delimiter scheme, with optional HTML anchor emission.
//
// Grounded on bref/refparser.py's RefParser.format: the same book-name and
// chapter elision rules (a reference that repeats the current book or
// chapter drops the redundant part), the same Psalm/Psalms singularization
// kludge (applied to local display copies only — Format never mutates the
// RefList it's given), and the same literal "; " used between chapters of
// the same book regardless of the configurable semicolon option.
package format

import (
	"fmt"
	"strings"

	"github.com/focuswithjustin/canonref/core/canon"
	"github.com/focuswithjustin/canonref/core/normalize"
	"github.com/focuswithjustin/canonref/core/ref"
)

// BookArg selects which Book attribute Format displays for a book name —
// spec §4.6/§6's "bkarg": "name" and "title" are built in, and any other
// value is looked up in Book.Attrs (the loader's catch-all for attributes
// the canon source carries beyond id/name/title, e.g. a localized title or
// an osisID). An unset or unknown key falls back to Book.Name.
type BookArg string

const (
	// BookArgName displays Book.Name (the short key, e.g. "Gen").
	BookArgName BookArg = "name"
	// BookArgTitle displays Book.Title (e.g. "Genesis").
	BookArgTitle BookArg = "title"
)

// Options configures Format. The zero value is not directly useful; start
// from Default().
type Options struct {
	WithBk    bool
	BookArg   BookArg
	CVSep     string
	BkSep     string
	VsRSep    string
	ChRSep    string
	BkRSep    string
	Comma     string
	Semicolon string

	HTML bool
	URI  string
	QArg string
}

// Default returns the formatter's baseline option set.
func Default() Options {
	return Options{
		WithBk:    true,
		BookArg:   BookArgName,
		CVSep:     ":",
		BkSep:     " ",
		VsRSep:    "-",
		ChRSep:    "–",
		BkRSep:    "—",
		Comma:     ", ",
		Semicolon: "; ",
		QArg:      "?bref=",
	}
}

// Format renders list as a string. c supplies book titles (for BookArgTitle
// and the Psalm/Psalms kludge) and may be nil if opts.BookArg is
// BookArgName and opts.WithBk is false.
func Format(list ref.RefList, c *canon.Canon, opts Options) string {
	var out strings.Builder
	var currBk string
	var currCh, currVs int

	for _, rr := range list {
		start, end := rr.Start, rr.End
		if start.BookName() == "" {
			continue
		}
		startVSub := strings.Trim(start.VSub, "_")
		endVSub := strings.Trim(end.VSub, "_")

		startDisplay, endDisplay := bookDisplay(c, opts.BookArg, start), bookDisplay(c, opts.BookArg, end)
		if opts.BookArg == BookArgTitle && samePsalmChapter(c, start, end) {
			startDisplay, endDisplay = "Psalm", "Psalm"
		}

		var startStr string
		switch {
		case currBk == start.BookName() || !opts.WithBk:
			if currCh == start.Chapter() {
				startStr = fmt.Sprintf("%s%d%s", opts.Comma, start.Verse(), startVSub)
			} else {
				if out.Len() > 0 {
					out.WriteString("; ")
				}
				startStr = fmt.Sprintf("%d%s%d%s", start.Chapter(), opts.CVSep, start.Verse(), startVSub)
			}
		default:
			if out.Len() > 0 {
				out.WriteString(opts.Semicolon)
			}
			startStr = fmt.Sprintf("%s%s%d%s%d%s", startDisplay, opts.BkSep, start.Chapter(), opts.CVSep, start.Verse(), startVSub)
		}

		currBk, currCh, currVs = start.BookName(), start.Chapter(), start.Verse()

		var endStr string
		switch {
		case end.BookName() == "":
			endStr = ""
		case currBk == end.BookName() || !opts.WithBk:
			switch {
			case currCh == end.Chapter():
				if currVs == end.Verse() {
					endStr = ""
				} else {
					endStr = fmt.Sprintf("%s%d%s", opts.VsRSep, end.Verse(), endVSub)
				}
			default:
				endStr = fmt.Sprintf("%s%d%s%d%s", opts.ChRSep, end.Chapter(), opts.CVSep, end.Verse(), endVSub)
			}
		default:
			bk := endDisplay
			if bk == "" {
				bk = startDisplay
			}
			endStr = fmt.Sprintf("%s%s%s%d%s%d%s", opts.BkRSep, bk, opts.BkSep, end.Chapter(), opts.CVSep, end.Verse(), endVSub)
		}

		if opts.HTML {
			term := normalize.Normalize(fmt.Sprintf("%s.%d.%d%s", start.BookName(), start.Chapter(), start.Verse(), endStr))
			href := opts.URI + opts.QArg + term
			out.WriteString(fmt.Sprintf("<a href='%s'>%s</a>", escapeXMLAttr(href), escapeHTML(startStr+endStr)))
		} else {
			out.WriteString(startStr)
			out.WriteString(endStr)
		}
	}
	return out.String()
}

// bookDisplay resolves arg against r's book in c. BookArgName and "" fall
// straight through to the bare book name; BookArgTitle reads Book.Title;
// any other value is treated as a Book.Attrs key, so a canon that carries
// e.g. a localized title or an osisID attribute can be selected for
// display without format growing a case for every attribute a canon
// source might define. A book with no such attribute (or no matching
// book at all) falls back to the bare name.
func bookDisplay(c *canon.Canon, arg BookArg, r ref.Ref) string {
	name := r.BookName()
	if c == nil {
		return name
	}
	b := c.ByName(name)
	if b == nil {
		return name
	}
	switch arg {
	case BookArgName, "":
		return name
	case BookArgTitle:
		if b.Title != "" {
			return b.Title
		}
	default:
		if v, ok := b.Attrs[string(arg)]; ok && v != "" {
			return v
		}
	}
	return name
}

// escapeXMLAttr escapes s for use inside a double-quoted XML/HTML
// attribute value.
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

// escapeHTML escapes s for use as HTML element content.
func escapeHTML(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '&':
			b.WriteString("&amp;")
		case '<':
			b.WriteString("&lt;")
		case '>':
			b.WriteString("&gt;")
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// samePsalmChapter reports whether both sides of a range are in the same
// chapter of the book titled "Psalms" — the trigger for the singular
// "Psalm N:M" display kludge.
func samePsalmChapter(c *canon.Canon, start, end ref.Ref) bool {
	if c == nil {
		return false
	}
	if start.BookName() != end.BookName() || start.Chapter() != end.Chapter() {
		return false
	}
	b := c.ByName(start.BookName())
	return b != nil && b.Title == "Psalms"
}
