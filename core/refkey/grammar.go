package refkey

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// idRange is one comma-separated member of an id-list expression: a bare
// digit run, or two joined by a hyphen to form a range.
type idRange struct {
	From string  `@Number`
	To   *string `("-" @Number)?`
}

// idList is the id-list sub-language's full grammar: one or more idRanges
// separated by commas. This is the narrow, genuinely grammar-shaped
// sub-language the §4.1 integer-ID shortcut describes — unlike the main
// token state machine, whose expect/prev-driven lookahead a PEG grammar
// cannot express, a flat "digit-run (`,`|`-`) digit-run..." expression is a
// natural fit for a parser combinator.
type idList struct {
	Ranges []*idRange `@@ ("," @@)*`
}

var idLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[0-9]+`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Dash", Pattern: `-`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var idListParser = participle.MustBuild[idList](
	participle.Lexer(idLexer),
	participle.Elide("Whitespace"),
)

// parseIDList parses a digit/hyphen/comma expression into its range
// members. It never errors from the caller's perspective: a malformed
// expression (parser error) simply yields no ranges, consistent with the
// total, never-panicking contract the rest of this library holds to.
func parseIDList(ids string) []*idRange {
	l, err := idListParser.ParseString("", ids)
	if err != nil {
		return nil
	}
	return l.Ranges
}
