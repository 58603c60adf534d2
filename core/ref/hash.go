package ref

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashBytes computes the SHA-256 hash of bytes and returns it as a hex string.
func HashBytes(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// HashString computes the SHA-256 hash of a string and returns it as a hex string.
func HashString(s string) string {
	return HashBytes([]byte(s))
}

// HashRefList computes a content-addressable digest of an entire RefList by
// hashing the concatenation of each range's Start/End fields as compared by
// Ref.Equal (the sort key with WholeCh ignored). Two RefLists
// with the same ranges in the same order hash identically regardless of
// how they were produced (parsed fresh, round-tripped through Parse, or
// built by hand), which makes it a stable cache key for downstream
// consumers — parser.TagText uses it to memoize formatted refstrings
// across repeated citations within one call.
func HashRefList(l RefList) string {
	var sb strings.Builder
	for _, rr := range l {
		sb.WriteString(rr.Start.identity())
		sb.WriteByte('|')
		sb.WriteString(rr.End.identity())
		sb.WriteByte(';')
	}
	return HashString(sb.String())
}
