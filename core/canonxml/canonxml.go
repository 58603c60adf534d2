// Package canonxml is the canon reader: the external collaborator spec §6
// describes, consuming a `<canon><book>...</book></canon>` document and
// producing a fully populated canon.Canon. It is the one place in this
// module that does file I/O or XML parsing — the core packages (canon,
// parser, format, refkey) never import encoding/xml or touch a filesystem.
//
// Parsing is built directly on xmlquery/xpath rather than encoding/xml's
// struct-tag unmarshaling, since a book's <chapters> children are more
// naturally selected with an XPath query than walked by hand, and
// ValidateDocument below needs the same tree to run canon-schema checks
// (not just XML well-formedness) before Load ever builds a canon.Canon.
package canonxml

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/antchfx/xmlquery"

	"github.com/focuswithjustin/canonref/core/canon"
	canonerrors "github.com/focuswithjustin/canonref/core/errors"
)

// LoadFile reads and parses a canon document from path.
func LoadFile(path string) (*canon.Canon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, canonerrors.Wrap(err, "reading canon file")
	}
	return Load(data)
}

// Load parses a canon document already in memory.
func Load(data []byte) (*canon.Canon, error) {
	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, canonerrors.NewParse("canon-xml", "", err.Error())
	}

	canonEl := xmlquery.FindOne(root, "/canon")
	if canonEl == nil {
		return nil, canonerrors.NewParse("canon-xml", "", "missing root <canon> element")
	}

	name := canonEl.SelectAttr("name")
	lang := canonEl.SelectAttr("lang")

	bookNodes := xmlquery.Find(root, "/canon/book")
	books := make([]*canon.Book, 0, len(bookNodes))
	for _, bn := range bookNodes {
		b, err := parseBook(bn)
		if err != nil {
			return nil, err
		}
		books = append(books, b)
	}

	c, err := canon.New(name, lang, books)
	if err != nil {
		return nil, canonerrors.Wrap(err, "building canon")
	}
	return c, nil
}

// ValidationResult reports every canon-schema violation ValidateDocument
// found, rather than stopping at the first one — useful for a canon
// author iterating on a document, unlike Load which fails fast.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// ValidateDocument checks data against the canon-source schema spec §6
// describes: well-formed XML, a root <canon name= lang=>, and each <book>
// bearing an integer id, a non-empty <pattern>, and a <chapters> child
// whose <chapter> elements all carry a positive vss. This is schema-aware
// validation specific to this document shape, not generic XML
// well-formedness — a canon author gets every problem in one pass instead
// of fixing documents one Load error at a time.
func ValidateDocument(data []byte) ValidationResult {
	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return ValidationResult{Errors: []string{fmt.Sprintf("not well-formed XML: %v", err)}}
	}

	var errs []string

	canonEl := xmlquery.FindOne(root, "/canon")
	if canonEl == nil {
		return ValidationResult{Errors: []string{"missing root <canon> element"}}
	}
	if canonEl.SelectAttr("name") == "" {
		errs = append(errs, "<canon> is missing a name attribute")
	}
	if canonEl.SelectAttr("lang") == "" {
		errs = append(errs, "<canon> is missing a lang attribute")
	}

	seenIDs := make(map[string]bool)
	for _, bn := range xmlquery.Find(root, "/canon/book") {
		label := bn.SelectAttr("name")
		if label == "" {
			label = "(unnamed book)"
		}

		idStr := bn.SelectAttr("id")
		if idStr == "" {
			errs = append(errs, label+": missing id attribute")
		} else if _, err := strconv.Atoi(idStr); err != nil {
			errs = append(errs, label+": non-integer id "+idStr)
		} else if seenIDs[idStr] {
			errs = append(errs, label+": duplicate book id "+idStr)
		} else {
			seenIDs[idStr] = true
		}

		if childText(bn, "pattern") == "" {
			errs = append(errs, label+": missing or empty <pattern>")
		}

		chaptersNode := firstChild(bn, "chapters")
		if chaptersNode == nil {
			errs = append(errs, label+": missing <chapters>")
			continue
		}
		chCount := 0
		for _, ch := range xmlquery.Find(chaptersNode, "chapter") {
			chCount++
			vss, err := strconv.Atoi(ch.SelectAttr("vss"))
			if err != nil || vss <= 0 {
				errs = append(errs, fmt.Sprintf("%s: chapter %d has a non-positive or non-integer vss %q", label, chCount, ch.SelectAttr("vss")))
			}
		}
		if chCount == 0 {
			errs = append(errs, label+": <chapters> has no <chapter> children")
		}
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}

func parseBook(bn *xmlquery.Node) (*canon.Book, error) {
	idStr := bn.SelectAttr("id")
	nameAttr := bn.SelectAttr("name")

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return nil, canonerrors.NewValidation("id", "book "+nameAttr+" has a non-integer id: "+idStr)
	}

	title := childText(bn, "title")
	pattern := childText(bn, "pattern")
	if pattern == "" {
		return nil, canonerrors.NewValidation("pattern", "book "+nameAttr+" has no <pattern>")
	}

	var chapters []canon.Chapter
	if chaptersNode := firstChild(bn, "chapters"); chaptersNode != nil {
		for _, ch := range xmlquery.Find(chaptersNode, "chapter") {
			vss, _ := strconv.Atoi(ch.SelectAttr("vss"))
			chapters = append(chapters, canon.Chapter{Verses: vss})
		}
	}

	attrs := make(map[string]string)
	for _, a := range bn.Attr {
		if a.Name.Local == "id" || a.Name.Local == "name" {
			continue
		}
		attrs[a.Name.Local] = a.Value
	}
	if len(attrs) == 0 {
		attrs = nil
	}

	return &canon.Book{
		ID:       id,
		Name:     nameAttr,
		Title:    title,
		Pattern:  pattern,
		Chapters: chapters,
		Attrs:    attrs,
	}, nil
}

func firstChild(n *xmlquery.Node, name string) *xmlquery.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == name {
			return c
		}
	}
	return nil
}

func childText(n *xmlquery.Node, name string) string {
	if c := firstChild(n, name); c != nil {
		return c.InnerText()
	}
	return ""
}
