// Package refkey implements the fixed-width decimal key codec: encoding a
// Ref as a 9-digit string (book id, chapter, verse, each zero-padded to 3
// digits) and decoding it back, including the truncated 6-digit
// (whole-chapter) and 3-digit (whole-book) short forms.
//
// This is the inverse of ref.Ref.Key for the subset of keys that identify a
// book by numeric id rather than by name — the form used by the parser's
// integer-ID shortcut (spec §4.1) and by any caller storing references as
// plain numbers.
package refkey

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/focuswithjustin/canonref/core/canon"
	"github.com/focuswithjustin/canonref/core/ref"
)

var reNonDigitEdge = regexp.MustCompile(`^\D+|\D+$`)

// FromKey decodes a decimal key against c and returns the corresponding
// Ref. Keys shorter than 9 digits are zero-padded on the right: a 3-digit
// key names a whole book (chapter 1, verse 1), a 6-digit key names a
// specific chapter (verse 1).
func FromKey(key string, c *canon.Canon) ref.Ref {
	key = strings.TrimSpace(key)
	for len(key) < 9 {
		key += "0"
	}
	id, _ := strconv.Atoi(key[0:3])
	ch, _ := strconv.Atoi(key[3:6])
	vs, _ := strconv.Atoi(key[6:9])
	if ch == 0 {
		ch = 1
	}
	if vs == 0 {
		vs = 1
	}

	r := ref.New().WithID(id).WithChapter(ch).WithVerse(vs)
	if c != nil {
		if b := c.ByID(id); b != nil {
			r = r.WithName(b.Name)
		}
	}
	return r
}

// RefStrFromID renders a single bare numeric id (with any stray leading or
// trailing non-digit characters stripped) as a normalized reference string:
// just the book name if the id names a whole book, "Book.ch" if it names a
// chapter, or "Book.ch.vs" if it names a verse — determined by how many of
// the id's trailing digit groups are present. Grounded on
// bref/refparser.py:refstr_from_id; its zfill-and-truncate logic is
// reproduced here as direct string-length checks against the id with its
// trailing zero groups stripped.
func RefStrFromID(id string, c *canon.Canon) string {
	idstr := reNonDigitEdge.ReplaceAllString(id, "")
	idstr = strings.TrimSuffix(idstr, "000000")
	idstr = strings.TrimSuffix(idstr, "000")
	idstr = strings.TrimSuffix(idstr, "000")

	switch {
	case len(idstr) < 4:
		r := FromKey(padLeft(idstr, 3)+"001001", c)
		return r.BookName()
	case len(idstr) < 7:
		r := FromKey(padLeft(idstr, 6)+"001", c)
		return fmt.Sprintf("%s.%d", r.BookName(), r.Chapter())
	default:
		r := FromKey(padLeft(idstr, 9), c)
		return fmt.Sprintf("%s.%d.%d", r.BookName(), r.Chapter(), r.Verse())
	}
}

// RefStrFromIDs renders a comma/hyphen id expression (commas separate
// distinct ranges, hyphens join the two ends of a range) as the equivalent
// normalized reference string, suitable for handing to a parser. The
// expression is parsed with a small participle grammar (see grammar.go)
// rather than hand-split, matching how the rest of the pack reaches for
// participle on reference-shaped mini-languages.
func RefStrFromIDs(ids string, c *canon.Canon) string {
	var ranges []string
	for _, r := range parseIDList(ids) {
		side := RefStrFromID(r.From, c)
		if r.To != nil {
			side += "-" + RefStrFromID(*r.To, c)
		}
		ranges = append(ranges, side)
	}
	return strings.Join(ranges, ";")
}

func padLeft(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}
