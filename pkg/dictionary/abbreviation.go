package dictionary

import "strings"

// Abbreviation maps a short token to its full form.
type Abbreviation struct {
	Short string
	Full  string
}

// Abbreviations returns the loaded pairs in declaration order.
func (d *Dictionary) Abbreviations() []Abbreviation {
	out := make([]Abbreviation, len(d.abbreviations))
	copy(out, d.abbreviations)
	return out
}

// ExpandAbbreviation returns the full form of the first pair whose Short
// equals word (case-sensitive), or word itself. Later pairs with the same
// Short are never reached.
func (d *Dictionary) ExpandAbbreviation(word string) string {
	for _, abbr := range d.abbreviations {
		if abbr.Short == word {
			return abbr.Full
		}
	}
	return word
}

// ExpandAbbreviations expands every whitespace separated token of sentence
// and joins the results with single spaces.
func (d *Dictionary) ExpandAbbreviations(sentence string) string {
	tokens := strings.Fields(sentence)
	for i, tok := range tokens {
		tokens[i] = d.ExpandAbbreviation(tok)
	}
	return strings.Join(tokens, " ")
}
