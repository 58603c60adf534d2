package parser

import "regexp"

// delimRE finds a single delimiter rune optionally followed by one space, so
// that tokenizing retains the delimiter as its own token — mirroring the
// Python original's re.split(r"([.,;\-] ?)", s), whose capture group keeps
// the separators in the resulting list instead of discarding them.
var delimRE = regexp.MustCompile(`[.,;\-] ?`)

var (
	reTrailingF  = regexp.MustCompile(`(?i)^([0-9]+)f$`)
	reTrailingFF = regexp.MustCompile(`(?i)^([0-9]+)ff$`)
)

// tokenize splits s on '.', ',', ';', '-' (each optionally followed by a
// single space), keeping the delimiters as tokens in between, then expands
// any "<num>f" / "<num>ff" continuation marker into "<num> - F" / "<num> -
// FF" synthetic tokens.
//
// The f/ff pass runs backward over the token slice so that inserting tokens
// ahead of the cursor never disturbs indices still to be visited — the same
// trick the original uses (`for i in range(len(tokens)-1, 0, -1)`).
func tokenize(s string) []string {
	var tokens []string
	last := 0
	for _, loc := range delimRE.FindAllStringIndex(s, -1) {
		tokens = append(tokens, s[last:loc[0]])
		tokens = append(tokens, s[loc[0]:loc[1]])
		last = loc[1]
	}
	tokens = append(tokens, s[last:])

	for i := len(tokens) - 1; i > 0; i-- {
		if m := reTrailingF.FindStringSubmatch(tokens[i]); m != nil {
			tokens[i] = m[1]
			tokens = append(tokens[:i+1], append([]string{"-", "F"}, tokens[i+1:]...)...)
		} else if m := reTrailingFF.FindStringSubmatch(tokens[i]); m != nil {
			tokens[i] = m[1]
			tokens = append(tokens[:i+1], append([]string{"-", "FF"}, tokens[i+1:]...)...)
		}
	}
	return tokens
}
