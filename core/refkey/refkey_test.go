package refkey

import "testing"

func TestFromKeyFullVerse(t *testing.T) {
	r := FromKey("003015007", nil)
	if r.BookID() != 3 || r.Chapter() != 15 || r.Verse() != 7 {
		t.Errorf("FromKey() = %+v, want book=3 ch=15 vs=7", r)
	}
}

func TestFromKeyWholeChapterShortForm(t *testing.T) {
	r := FromKey("003015", nil)
	if r.BookID() != 3 || r.Chapter() != 15 || r.Verse() != 1 {
		t.Errorf("FromKey() = %+v, want book=3 ch=15 vs=1", r)
	}
}

func TestFromKeyWholeBookShortForm(t *testing.T) {
	r := FromKey("003", nil)
	if r.BookID() != 3 || r.Chapter() != 1 || r.Verse() != 1 {
		t.Errorf("FromKey() = %+v, want book=3 ch=1 vs=1", r)
	}
}

func TestRefStrFromID(t *testing.T) {
	// With a nil canon, BookName() resolves to "", so the whole-book form
	// collapses to "" and the chapter/verse forms keep their leading dots.
	cases := map[string]string{
		"3":         "",
		"3015":      ".15",
		"3015007":   ".15.7",
		"003015007": ".15.7",
	}
	for id, want := range cases {
		got := RefStrFromID(id, nil)
		if got != want {
			t.Errorf("RefStrFromID(%q) = %q, want %q", id, got, want)
		}
	}
}

func TestRefStrFromIDsRangeAndList(t *testing.T) {
	got := RefStrFromIDs("3015007-3015010,3016001", nil)
	want := ".15.7-.15.10;.16.1"
	if got != want {
		t.Errorf("RefStrFromIDs() = %q, want %q", got, want)
	}
}

func TestParseIDListMalformedYieldsNoRanges(t *testing.T) {
	if got := parseIDList("not-an-id-list"); got != nil {
		t.Errorf("parseIDList(malformed) = %v, want nil", got)
	}
}
