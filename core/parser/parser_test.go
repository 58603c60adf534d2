package parser

import (
	"testing"

	"github.com/focuswithjustin/canonref/core/canon"
	"github.com/focuswithjustin/canonref/core/ref"
)

func chapters(counts ...int) []canon.Chapter {
	out := make([]canon.Chapter, len(counts))
	for i, n := range counts {
		out[i] = canon.Chapter{Verses: n}
	}
	return out
}

func uniform(n, verses int) []canon.Chapter {
	counts := make([]int, n)
	for i := range counts {
		counts[i] = verses
	}
	return chapters(counts...)
}

func testCanon(t *testing.T) *canon.Canon {
	t.Helper()

	genChapters := uniform(50, 20)
	genChapters[0] = canon.Chapter{Verses: 31}
	genChapters[1] = canon.Chapter{Verses: 25}
	genChapters[49] = canon.Chapter{Verses: 26}

	psChapters := uniform(30, 15)
	psChapters[23] = canon.Chapter{Verses: 10} // ch 24
	psChapters[25] = canon.Chapter{Verses: 12} // ch 26
	psChapters[27] = canon.Chapter{Verses: 20} // ch 28

	kgs1Chapters := uniform(22, 30)
	kgs1Chapters[20] = canon.Chapter{Verses: 43} // ch 21

	kgs2Chapters := uniform(25, 30)
	kgs2Chapters[21] = canon.Chapter{Verses: 20} // ch 22

	books := []*canon.Book{
		{ID: 1, Name: "Gen", Title: "Genesis", Pattern: `Gen(esis)?\.?`, Chapters: genChapters},
		{ID: 19, Name: "Ps", Title: "Psalms", Abbr: "Psalm", Pattern: `Ps(alms?)?\.?`, Chapters: psChapters},
		{ID: 31, Name: "Obad", Title: "Obadiah", Pattern: `Obad(iah)?\.?`, Chapters: uniform(1, 21)},
		{ID: 11, Name: "1Kgs", Title: "1 Kings", Pattern: `1\.?Kgs|1\.?Kings`, Chapters: kgs1Chapters},
		{ID: 12, Name: "2Kgs", Title: "2 Kings", Pattern: `2\.?Kgs|2\.?Kings`, Chapters: kgs2Chapters},
		{ID: 66, Name: "Rev", Title: "Revelation", Pattern: `Rev(elation)?\.?`, Chapters: func() []canon.Chapter {
			cs := uniform(22, 20)
			cs[21] = canon.Chapter{Verses: 21}
			return cs
		}()},
	}
	c, err := canon.New("Test", "en", books)
	if err != nil {
		t.Fatalf("canon.New() error: %v", err)
	}
	return c
}

func wantRange(id int, name string, ch1, vs1, ch2, vs2 int) ref.RefRange {
	return ref.RefRange{
		Start: ref.New().WithID(id).WithName(name).WithChapter(ch1).WithVerse(vs1),
		End:   ref.New().WithID(id).WithName(name).WithChapter(ch2).WithVerse(vs2),
	}
}

func TestParseSingleVerse(t *testing.T) {
	p := New(testCanon(t), nil)
	got := p.Parse("Gen 1:1", nil)
	want := ref.RefList{wantRange(1, "Gen", 1, 1, 1, 1)}
	if !got.Equal(want) {
		t.Errorf("Parse(Gen 1:1) = %s, want %s", got, want)
	}
}

func TestParseWholeChapter(t *testing.T) {
	p := New(testCanon(t), nil)
	got := p.Parse("Gen 1", nil)
	want := ref.RefList{wantRange(1, "Gen", 1, 1, 1, 31)}
	if !got.Equal(want) {
		t.Errorf("Parse(Gen 1) = %s, want %s", got, want)
	}
}

func TestParseWholeBook(t *testing.T) {
	p := New(testCanon(t), nil)
	got := p.Parse("Gen", nil)
	want := ref.RefList{wantRange(1, "Gen", 1, 1, 50, 26)}
	if !got.Equal(want) {
		t.Errorf("Parse(Gen) = %s, want %s", got, want)
	}
}

func TestParseOneChapterBookBareNumber(t *testing.T) {
	p := New(testCanon(t), nil)
	got := p.Parse("Obad 1", nil)
	want := ref.RefList{wantRange(31, "Obad", 1, 1, 1, 21)}
	if !got.Equal(want) {
		t.Errorf("Parse(Obad 1) = %s, want %s", got, want)
	}
}

func TestParseCommaAndSemicolonSeparators(t *testing.T) {
	p := New(testCanon(t), nil)
	got := p.Parse("Ps 24, 26; 28:8-10", nil)
	want := ref.RefList{
		wantRange(19, "Ps", 24, 1, 24, 10),
		wantRange(19, "Ps", 26, 1, 26, 12),
		wantRange(19, "Ps", 28, 8, 28, 10),
	}
	if !got.Equal(want) {
		t.Errorf("Parse(Ps 24, 26; 28:8-10) = %s, want %s", got, want)
	}
}

func TestParseChapterVerseRangeThenVerseList(t *testing.T) {
	p := New(testCanon(t), nil)
	got := p.Parse("Gen 1 - 2:5, 7, 9-10", nil)
	want := ref.RefList{
		wantRange(1, "Gen", 1, 1, 2, 5),
		wantRange(1, "Gen", 2, 7, 2, 7),
		wantRange(1, "Gen", 2, 9, 2, 10),
	}
	if !got.Equal(want) {
		t.Errorf("Parse(Gen 1 - 2:5, 7, 9-10) = %s, want %s", got, want)
	}
}

func TestParseBookRange(t *testing.T) {
	p := New(testCanon(t), nil)
	got := p.Parse("Gen - Rev", nil)
	want := ref.RefList{wantRange(1, "Gen", 1, 1, 22, 21)}
	// End book id differs from Start's; compare sides independently.
	if len(got) != 1 {
		t.Fatalf("Parse(Gen - Rev) = %s, want 1 range", got)
	}
	if !got[0].Start.Equal(want[0].Start) {
		t.Errorf("start = %s, want %s", got[0].Start, want[0].Start)
	}
	if got[0].End.BookName() != "Rev" || got[0].End.Chapter() != 22 || got[0].End.Verse() != 21 {
		t.Errorf("end = %s, want Rev.22.21", got[0].End)
	}
}

func TestParseCrossBookChapterRange(t *testing.T) {
	p := New(testCanon(t), nil)
	got := p.Parse("1Kgs 21-2Kgs 22", nil)
	if len(got) != 1 {
		t.Fatalf("Parse(1Kgs 21-2Kgs 22) = %s, want 1 range", got)
	}
	r := got[0]
	if r.Start.BookName() != "1Kgs" || r.Start.Chapter() != 21 || r.Start.Verse() != 1 {
		t.Errorf("start = %s, want 1Kgs.21.1", r.Start)
	}
	if r.End.BookName() != "2Kgs" || r.End.Chapter() != 22 || r.End.Verse() != 20 {
		t.Errorf("end = %s, want 2Kgs.22.20", r.End)
	}
}

func TestParseFContinuation(t *testing.T) {
	p := New(testCanon(t), nil)
	got := p.Parse("Gen 3:5f", nil)
	want := ref.RefList{wantRange(1, "Gen", 3, 5, 3, 6)}
	if !got.Equal(want) {
		t.Errorf("Parse(Gen 3:5f) = %s, want %s", got, want)
	}
}

func TestParseUnknownBookWithoutHintIsEmpty(t *testing.T) {
	p := New(testCanon(t), nil)
	got := p.Parse("Something 1:5", nil)
	if len(got) != 0 {
		t.Errorf("Parse(Something 1:5) = %s, want empty", got)
	}
}

func TestParseBookHintAppliesWhenFirstTokenIsntABook(t *testing.T) {
	p := New(testCanon(t), nil)
	hint := "Gen"
	got := p.Parse("3:5", &hint)
	want := ref.RefList{wantRange(1, "Gen", 3, 5, 3, 5)}
	if !got.Equal(want) {
		t.Errorf("Parse(3:5, hint=Gen) = %s, want %s", got, want)
	}
}

func TestParseIDFormBypassesNormalizer(t *testing.T) {
	p := New(testCanon(t), nil)
	got := p.Parse("001001001", nil)
	want := ref.RefList{wantRange(1, "Gen", 1, 1, 1, 1)}
	if !got.Equal(want) {
		t.Errorf("Parse(001001001) = %s, want %s", got, want)
	}
}

// TestRoundTripViaRefstring checks parse(refstring(parse(s))) == parse(s)
// for a representative spread of shapes: a single verse, a chapter, a
// whole book, a same-book chapter range, and a cross-book range.
func TestRoundTripViaRefstring(t *testing.T) {
	p := New(testCanon(t), nil)
	inputs := []string{
		"Gen 1:1",
		"Gen 1",
		"Gen",
		"Ps 24, 26; 28:8-10",
		"Gen 1 - 2:5, 7, 9-10",
		"1Kgs 21-2Kgs 22",
	}
	for _, in := range inputs {
		first := p.Parse(in, nil)
		refstr := p.Refstring(first)
		second := p.Parse(refstr, nil)
		if !first.Equal(second) {
			t.Errorf("round-trip for %q: parse(refstring(L)) = %s, want %s (refstring = %q)", in, second, first, refstr)
		}
	}
}

// TestBookHintIndependence checks that a bookHint has no effect once the
// input already begins with a recognizable book token: the hint only
// matters as a fallback for book-less leading tokens.
func TestBookHintIndependence(t *testing.T) {
	p := New(testCanon(t), nil)
	inputs := []string{
		"Gen 1:1",
		"Ps 24, 26; 28:8-10",
		"1Kgs 21-2Kgs 22",
	}
	hints := []string{"Obad", "Rev", "Ps"}
	for _, in := range inputs {
		withoutHint := p.Parse(in, nil)
		for _, h := range hints {
			hint := h
			withHint := p.Parse(in, &hint)
			if !withoutHint.Equal(withHint) {
				t.Errorf("Parse(%q, hint=%q) = %s, want %s (hint should be ignored)", in, h, withHint, withoutHint)
			}
		}
	}
}
