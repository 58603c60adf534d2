package parser

import (
	"regexp"
	"strconv"

	"github.com/focuswithjustin/canonref/core/canon"
)

var reTrailingDigits = regexp.MustCompile(`[0-9]+`)
var reTrailingSub = regexp.MustCompile(`[^0-9\W]+$`)

// intPrefix returns the leading run of decimal digits found anywhere in s,
// or "" if s has none — the equivalent of Python's re.search("[0-9]+", s).
func intPrefix(s string) string {
	return reTrailingDigits.FindString(s)
}

func atoiOr(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// fillRange completes a pendingRange's unset fields using the canon's
// chapter/verse structure, covering the six cases of the original's
// fill_range: a bare book (whole book), a book+chapter (whole chapter), a
// book+chapter+verse (single verse, unless End supplies more), and the
// various partially-specified End sides of each.
func fillRange(c *canon.Canon, rng pendingRange) pendingRange {
	if !rng.Start.HasBook {
		return rng
	}
	start := &rng.Start
	end := &rng.End

	if start.Ch != "" {
		if start.Vs != "" {
			switch {
			case end.Vs != "":
				// both sides carry a verse; just fill in missing book/ch on End.
				if end.Ch == "" {
					end.Ch = start.Ch
				}
				if !end.HasBook {
					copyBook(c, start, end)
				}
			case end.Ch != "":
				// range to the end of the End side's chapter.
				if !end.HasBook {
					copyBook(c, start, end)
				}
				end.Ch = intPrefixOr(end.Ch, end.Ch)
				end.Vs = itoa(canon.VersesIn(c, end.BookName, atoiOr(end.Ch, 1)))
			case end.HasBook:
				// range to the end of the End side's book.
				lastCh := canon.ChaptersIn(c, end.BookName)
				end.Ch = itoa(lastCh)
				end.Vs = itoa(canon.VersesIn(c, end.BookName, lastCh))
			default:
				// a single verse: End mirrors Start exactly.
				*end = *start
			}
		} else {
			// a whole chapter, or a range of chapters.
			start.WholeCh = true
			start.Vs = "1"
			if !end.HasBook {
				copyBook(c, start, end)
				if end.Ch == "" {
					end.Ch = start.Ch
				}
			} else if end.Ch == "" {
				end.Ch = itoa(canon.ChaptersIn(c, end.BookName))
			}
			if end.Vs == "" {
				end.Vs = itoa(canon.VersesIn(c, end.BookName, atoiOr(end.Ch, 1)))
			}
		}
	} else {
		if start.Vs != "" {
			// a verse, or range, in a one-chapter book.
			start.Ch = "1"
			if !end.HasBook {
				copyBook(c, start, end)
			}
			if end.Ch == "" {
				end.Ch = start.Ch
			}
			if end.Vs == "" {
				end.Vs = start.Vs
			}
		} else {
			// a whole book, or a range of books.
			start.Ch = "1"
			start.Vs = "1"
			if !end.HasBook {
				copyBook(c, start, end)
			}
			if end.Ch == "" {
				end.Ch = itoa(canon.ChaptersIn(c, end.BookName))
			}
			if end.Vs == "" {
				end.Vs = itoa(canon.VersesIn(c, end.BookName, atoiOr(end.Ch, 1)))
			}
		}
	}
	return rng
}

func copyBook(c *canon.Canon, from, to *pendingRef) {
	to.BookName = from.BookName
	to.BookID = from.BookID
	to.HasBook = from.HasBook
}

func intPrefixOr(s, def string) string {
	if p := intPrefix(s); p != "" {
		return p
	}
	return def
}

func itoa(n int) string {
	return strconv.Itoa(n)
}

// cleanUpRange finishes a filled pendingRange into a resolved ref.RefRange:
// coerces Ch/Vs to integers, extracts any trailing sub-verse letter suffix,
// resolves the book id from its name, and mirrors a resolved Start id onto
// an End that only ever received a name.
func cleanUpRange(c *canon.Canon, rng pendingRange) rangeResult {
	rng = fillRange(c, rng)

	start := resolveRef(c, rng.Start)
	end := resolveRef(c, rng.End)
	if start.id == 0 && start.bookName != "" {
		if b := canon.MatchBook(c, start.bookName); b != nil {
			start.id = b.ID
		}
	}
	if start.id != 0 && end.id == 0 {
		end.id = start.id
	}
	return rangeResult{Start: start, End: end}
}

// resolvedRef is the fully-numeric intermediate produced by cleanUpRange,
// just before conversion to ref.Ref.
type resolvedRef struct {
	id       int
	bookName string
	ch       int
	vs       int
	vsub     string
	wholeCh  bool
}

type rangeResult struct {
	Start resolvedRef
	End   resolvedRef
}

func resolveRef(c *canon.Canon, p pendingRef) resolvedRef {
	r := resolvedRef{id: p.BookID, bookName: p.BookName, wholeCh: p.WholeCh}
	r.ch = atoiOr(intPrefixOr(p.Ch, ""), 1)
	if p.Vs != "" {
		if sub := reTrailingSub.FindString(p.Vs); sub != "" {
			if digits := intPrefix(p.Vs); digits != "" {
				r.vsub = sub
			}
		}
		r.vs = atoiOr(intPrefix(p.Vs), 1)
	}
	return r
}
