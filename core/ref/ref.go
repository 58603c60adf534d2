// Package ref defines the value types the parser and formatter exchange: a
// single locus (Ref), an inclusive range of two loci (RefRange), and an
// ordered sequence of ranges (RefList).
//
// Every Ref field is individually optional, modeled with pointers rather
// than sentinel zero values, per the re-architecture called for in spec §9:
// the Python original represents "absent" with None on an open dict-like
// object, which this package replaces with a small fixed struct and
// explicit nullability. The same type serves as the parser's mutable
// builder and as the finalized, logically-immutable value returned to
// callers; RefRanges emitted by a parser always have both sides fully
// resolved (Name, Ch, Vs all non-nil) — see Ref.Complete.
package ref

import (
	"fmt"
	"hash/fnv"
)

// Ref is a single locus: book + chapter + verse, with an optional
// sub-verse letter suffix, and a flag marking it as standing for an entire
// chapter (which affects only the sort key, zeroing the verse component).
type Ref struct {
	ID      *int
	Name    *string
	Ch      *int
	Vs      *int
	VSub    string
	WholeCh bool
}

// New returns an empty Ref, equivalent to the zero value; provided for
// readability at call sites that build refs field by field.
func New() Ref {
	return Ref{}
}

// Complete reports whether Name, Ch, and Vs are all resolved — the
// invariant a RefRange's Start and End must satisfy once a parser has
// finished with it (spec §8, "Completeness").
func (r Ref) Complete() bool {
	return r.Name != nil && r.Ch != nil && r.Vs != nil
}

// BookName returns the book short name, or "" if unset.
func (r Ref) BookName() string {
	if r.Name == nil {
		return ""
	}
	return *r.Name
}

// Chapter returns the chapter number, or 0 if unset.
func (r Ref) Chapter() int {
	if r.Ch == nil {
		return 0
	}
	return *r.Ch
}

// Verse returns the verse number, or 0 if unset.
func (r Ref) Verse() int {
	if r.Vs == nil {
		return 0
	}
	return *r.Vs
}

// BookID returns the book id, or 0 if unset.
func (r Ref) BookID() int {
	if r.ID == nil {
		return 0
	}
	return *r.ID
}

// WithName returns a copy of r with Name set.
func (r Ref) WithName(name string) Ref {
	r.Name = &name
	return r
}

// WithID returns a copy of r with ID set.
func (r Ref) WithID(id int) Ref {
	r.ID = &id
	return r
}

// WithChapter returns a copy of r with Ch set.
func (r Ref) WithChapter(ch int) Ref {
	r.Ch = &ch
	return r
}

// WithVerse returns a copy of r with Vs set.
func (r Ref) WithVerse(vs int) Ref {
	r.Vs = &vs
	return r
}

// String renders a normalized "book.ch.vs[sub]" form, mirroring the Python
// original's Ref.__str__.
func (r Ref) String() string {
	name := r.BookName()
	if name == "" && r.ID != nil {
		name = fmt.Sprintf("%d", *r.ID)
	}
	return fmt.Sprintf("%s.%d.%d%s", name, r.Chapter(), r.effectiveVerse(), r.VSub)
}

func (r Ref) effectiveVerse() int {
	if r.WholeCh {
		return 0
	}
	return r.Verse()
}

// Key returns the fixed-width decimal sort key for this Ref: three 3-digit
// fields (book id, chapter, verse) plus the sub-verse suffix. A whole-
// chapter Ref sorts with a verse component of 0, ahead of any verse within
// that chapter. Absent numeric fields sort as 0 (spec §3, "Sort key").
func (r Ref) Key() string {
	return fmt.Sprintf("%03d%03d%03d%s", r.BookID(), r.Chapter(), r.effectiveVerse(), r.VSub)
}

// Less reports whether r sorts before other under the canonical sort key.
// All comparisons in this package and its callers go through this single
// function (spec §9: "expose a single canonical comparison function used
// everywhere").
func (r Ref) Less(other Ref) bool {
	return r.Key() < other.Key()
}

// Equal reports structural equality: same book id, chapter, verse and
// sub-verse suffix. WholeCh does not take part: it only moves a Ref in the
// sort order (see Key), so a whole-chapter Ref equals the same locus with
// WholeCh unset.
func (r Ref) Equal(other Ref) bool {
	return r.identity() == other.identity()
}

// identity is Key with the verse always taken from Vs, ignoring WholeCh.
func (r Ref) identity() string {
	return fmt.Sprintf("%03d%03d%03d%s", r.BookID(), r.Chapter(), r.Verse(), r.VSub)
}

// RefRange is an inclusive pair (Start, End) of Refs. A parser always
// returns ranges with Start.Complete() and End.Complete() both true, and
// Start at or before End under Less.
type RefRange struct {
	Start Ref
	End   Ref
}

// String renders "start-end".
func (rr RefRange) String() string {
	return fmt.Sprintf("%s-%s", rr.Start.String(), rr.End.String())
}

// Less reports whether rr sorts before other: by Start, then by End, so
// that of two ranges with equal starts, the shorter one sorts first.
func (rr RefRange) Less(other RefRange) bool {
	if rr.Start.Key() != other.Start.Key() {
		return rr.Start.Less(other.Start)
	}
	return rr.End.Less(other.End)
}

// Equal reports structural equality of both sides.
func (rr RefRange) Equal(other RefRange) bool {
	return rr.Start.Equal(other.Start) && rr.End.Equal(other.End)
}

// Hash returns a 64-bit structural hash of both sides, over the same fields
// Equal compares (so WholeCh is ignored).
//
// The Python original hashes by stripping non-digits from the two keys and
// calling int(...) — fine under Python's arbitrary-precision integers, but
// it would silently overflow a fixed-width integer type. Spec §9 calls for
// a 64-bit structural hash instead; FNV-1a over both keys gives a stable,
// non-overflowing replacement with the same "equal ranges hash equal"
// property.
func (rr RefRange) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(rr.Start.identity()))
	_, _ = h.Write([]byte(rr.End.identity()))
	return h.Sum64()
}

// RefList is an ordered sequence of RefRanges, in authorial order. It is
// never deduplicated or sorted by the parser.
type RefList []RefRange

// String renders "[start-end, start-end, ...]".
func (l RefList) String() string {
	s := "["
	for i, rr := range l {
		if i > 0 {
			s += ", "
		}
		s += rr.String()
	}
	return s + "]"
}

// Equal reports whether two RefLists have the same length and
// element-wise-equal ranges in the same order.
func (l RefList) Equal(other RefList) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if !l[i].Equal(other[i]) {
			return false
		}
	}
	return true
}
