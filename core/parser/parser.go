// Package parser implements the token state machine that turns a
// normalized reference string into a ref.RefList, consulting a canon.Canon
// for book recognition and chapter/verse structure.
package parser

import (
	"log/slog"
	"regexp"
	"strconv"

	"github.com/focuswithjustin/canonref/core/canon"
	"github.com/focuswithjustin/canonref/core/format"
	"github.com/focuswithjustin/canonref/core/normalize"
	"github.com/focuswithjustin/canonref/core/ref"
	"github.com/focuswithjustin/canonref/core/refkey"
)

// reChapterWord matches the word "chapter" or any abbreviation of it
// (optionally pluralized), which the state machine treats as a hint that
// the following token is a chapter number rather than advancing expect on
// its own.
var reChapterWord = regexp.MustCompile(`(?i)^(?:ch|chap|chapter)s?$`)

// Parser walks reference strings against a fixed canon.
type Parser struct {
	canon *canon.Canon
	log   *slog.Logger
}

// New returns a Parser bound to c. A nil logger disables debug tracing.
func New(c *canon.Canon, log *slog.Logger) *Parser {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Parser{canon: c, log: log}
}

// Format renders list as a string under opts.
func (p *Parser) Format(list ref.RefList, opts format.Options) string {
	return format.Format(list, p.canon, opts)
}

// Refstring renders list under normalized default options and feeds the
// result back through the normalizer, producing the canonical ID string
// for list — the form used as a <ref> tag's name attribute and as a
// storage/lookup key (spec §6).
func (p *Parser) Refstring(list ref.RefList) string {
	return normalize.Normalize(format.Format(list, p.canon, format.Default()))
}

// Parse parses refstring into a RefList. If the string does not begin with
// a recognizable book token, bookHint (if non-nil) supplies one; otherwise
// an empty RefList is returned. Parse never errors and never panics on
// adversarial input — an un-parseable string simply yields no ranges.
func (p *Parser) Parse(refstring string, bookHint *string) ref.RefList {
	if normalize.IsIDForm(refstring) {
		refstring = refkey.RefStrFromIDs(refstring, p.canon)
	} else {
		refstring = normalize.Normalize(refstring)
	}
	p.log.Debug("parse", "cleaned", refstring, "hint", derefOr(bookHint, ""))

	tokens := tokenize(refstring)
	if len(tokens) == 0 {
		return ref.RefList{}
	}

	if canon.MatchBook(p.canon, tokens[0]) == nil {
		if bookHint == nil {
			return ref.RefList{}
		}
		hintBook := canon.MatchBook(p.canon, *bookHint)
		if hintBook == nil {
			return ref.RefList{}
		}
		tokens = append([]string{hintBook.Name, "."}, tokens...)
	}

	var results []rangeResult
	crng := pendingRange{}
	cref := &crng.Start

	prev := prevNone
	var book *canon.Book
	expect := expectBook

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]
		p.log.Debug("token", "token", token, "expect", expect, "prev", prev)

		switch {
		case token == ".":
			switch prev {
			case prevBook:
				if book != nil && canon.ChaptersIn(p.canon, book.Name) == 1 {
					expect = expectChOrVs
				} else {
					expect = expectCh
				}
			case prevCh:
				expect = expectVs
			}

		case reChapterWord.MatchString(token) && token != "":
			expect = expectCh

		case token == ";" || token == ",":
			results = append(results, cleanUpRange(p.canon, crng))
			prevref := *cref
			if !prevref.HasBook {
				// An End side that named no book continues Start's book.
				copyBook(p.canon, &crng.Start, &prevref)
			}
			crng = pendingRange{}
			cref = &crng.Start
			cref.BookName = prevref.BookName
			cref.BookID = prevref.BookID
			cref.HasBook = prevref.HasBook

			switch {
			case prev == prevNone || prev == prevBook:
				expect = expectBook
			case prev == prevCh:
				expect = expectBookOrCh
			default: // prevVs
				if token == "," {
					expect = expectVs
					cref.Ch = prevref.Ch
				} else {
					expect = expectBookOrCh
				}
			}

		case token == "-":
			cref = &crng.End
			switch prev {
			case prevBook:
				expect = expectBook
			case prevCh:
				expect = expectBookOrCh
			case prevVs:
				expect = expectChOrVs
			}

		default:
			p.consumeContent(tokens, i, &crng, cref, &book, &prev, expect)
			expect = expectSep
		}
	}
	results = append(results, cleanUpRange(p.canon, crng))

	return toRefList(results)
}

func (p *Parser) consumeContent(tokens []string, i int, crng *pendingRange, cref *pendingRef, book **canon.Book, prev *prevKind, expect expectState) {
	token := tokens[i]
	following := ""
	if i+1 < len(tokens) {
		following = tokens[i+1]
	}

	switch expect {
	case expectBook:
		if b := canon.MatchBook(p.canon, token); b != nil {
			*book = b
			cref.BookName = b.Name
			cref.BookID = b.ID
			cref.HasBook = true
		}
		*prev = prevBook

	case expectBookOrCh:
		if b := canon.MatchBook(p.canon, token); b != nil {
			*book = b
			cref.BookName = b.Name
			cref.BookID = b.ID
			cref.HasBook = true
			*prev = prevBook
			return
		}
		if canon.ChaptersIn(p.canon, crng.Start.BookName) == 1 && token != "1" {
			cref.Ch = "1"
			cref.Vs = p.getVs(crng, token)
			*prev = prevVs
		} else {
			cref.Ch = p.getCh(crng, token)
			*prev = prevCh
		}

	case expectChOrVs:
		if *prev == prevVs && i > 0 && tokens[i-1] == "-" {
			if b := canon.MatchBook(p.canon, token); b != nil {
				*book = b
				cref.BookName = b.Name
				cref.BookID = b.ID
				cref.HasBook = true
				*prev = prevBook
			} else if following == "." {
				cref.Ch = p.getCh(crng, token)
				*prev = prevCh
			} else {
				cref.Vs = p.getVs(crng, token)
				*prev = prevVs
			}
			return
		}
		if *prev == prevBook {
			if canon.ChaptersIn(p.canon, cref.BookName) == 1 {
				switch {
				case token != "1":
					cref.Vs = p.getVs(crng, token)
					*prev = prevVs
				case following == ".":
					cref.Ch = p.getCh(crng, token)
					*prev = prevCh
				case following == "-" || following == ",":
					cref.Vs = p.getVs(crng, token)
					*prev = prevVs
				default:
					cref.Ch = p.getCh(crng, token)
					*prev = prevCh
				}
			} else {
				cref.Ch = p.getCh(crng, token)
				*prev = prevCh
			}
		}

	case expectCh:
		cref.Ch = p.getCh(crng, token)
		*prev = prevCh

	case expectVs:
		if b := canon.MatchBook(p.canon, token); b != nil {
			*book = b
			cref.BookName = b.Name
			cref.BookID = b.ID
			cref.HasBook = true
			cref.Ch = ""
			cref.Vs = ""
			*prev = prevBook
		} else {
			cref.Vs = p.getVs(crng, token)
			*prev = prevVs
		}
	}
}

// getCh resolves a chapter token, expanding the "F"/"FF" continuation
// markers via direct canon lookups rather than recursive re-parsing: F
// means "the chapter after the current one", FF means "the book's last
// chapter".
func (p *Parser) getCh(crng *pendingRange, token string) string {
	switch token {
	case "F":
		n := atoiOr(intPrefix(crng.Start.Ch), 1)
		return strconv.Itoa(n + 1)
	case "FF":
		return strconv.Itoa(canon.ChaptersIn(p.canon, crng.Start.BookName))
	default:
		return token
	}
}

// getVs resolves a verse token; F means "the verse after the current one"
// (within the current chapter), FF means "the current chapter's last
// verse".
func (p *Parser) getVs(crng *pendingRange, token string) string {
	switch token {
	case "F":
		n := atoiOr(intPrefix(crng.Start.Vs), 1)
		return strconv.Itoa(n + 1)
	case "FF":
		ch := atoiOr(intPrefix(crng.Start.Ch), 1)
		return strconv.Itoa(canon.VersesIn(p.canon, crng.Start.BookName, ch))
	default:
		return token
	}
}

func toRefList(results []rangeResult) ref.RefList {
	list := make(ref.RefList, 0, len(results))
	for _, rr := range results {
		if rr.Start.bookName == "" {
			continue
		}
		list = append(list, ref.RefRange{
			Start: toRef(rr.Start),
			End:   toRef(rr.End),
		})
	}
	return list
}

func toRef(r resolvedRef) ref.Ref {
	out := ref.New().WithName(r.bookName).WithChapter(r.ch).WithVerse(r.vs)
	if r.id != 0 {
		out = out.WithID(r.id)
	}
	out.VSub = r.vsub
	out.WholeCh = r.wholeCh
	return out
}

func derefOr(s *string, def string) string {
	if s == nil {
		return def
	}
	return *s
}
