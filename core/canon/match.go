package canon

// MatchBook finds the book a raw token refers to.
//
// Grounded directly on the Python original (bref/refparser.py:match_book):
// a single pass over books in canon order, testing per book first for an
// exact match on Name/Title/Abbr, then — only if that fails — for the
// book's compiled pattern matching at the start of the token. The first
// book that matches either way wins. This is a single interleaved pass, not
// "try every exact match, then every pattern" as a looser reading of the
// spec prose might suggest; the original's control flow is the ground
// truth used to resolve that ambiguity.
func MatchBook(c *Canon, token string) *Book {
	if c == nil || token == "" {
		return nil
	}
	for _, b := range c.Books {
		if b.Name == token || b.Title == token || (b.Abbr != "" && b.Abbr == token) {
			return b
		}
		if re := c.Pattern(b); re != nil {
			if loc := re.FindStringIndex(token); loc != nil && loc[0] == 0 {
				return b
			}
		}
	}
	return nil
}

// ChaptersIn returns the number of chapters in the named book, or 0 if the
// book is not found.
func ChaptersIn(c *Canon, bookName string) int {
	b := MatchBook(c, bookName)
	if b == nil {
		return 0
	}
	return b.ChapterCount()
}

// VersesIn returns the number of verses in chapter ch of the named book, or
// 0 if the book is not found or ch is out of range.
func VersesIn(c *Canon, bookName string, ch int) int {
	b := MatchBook(c, bookName)
	if b == nil {
		return 0
	}
	return b.VerseCount(ch)
}
