package dedup

import "strings"

// Normalize splits free text on whitespace and lowercases each token. Order
// and duplicates are kept; punctuation stays attached ("Schlüssel," is one
// token).
func Normalize(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, len(fields))
	for i, f := range fields {
		words[i] = strings.ToLower(f)
	}
	return words
}

// ExpandSynonyms returns the union of words and, for every word that is a
// key in table, that key's alternate forms. Expansion is not transitive: a
// synonym of a synonym is only included if it is independently a key's value.
func ExpandSynonyms(words []string, table map[string][]string) map[string]struct{} {
	expanded := make(map[string]struct{}, len(words))
	for _, w := range words {
		expanded[w] = struct{}{}
		for _, alt := range table[w] {
			expanded[alt] = struct{}{}
		}
	}
	return expanded
}
