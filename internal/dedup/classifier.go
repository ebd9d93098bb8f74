package dedup

import (
	"strings"

	"github.com/Tom0603/SoftwareEngineering-Lecture/internal/model"
)

// Classifier decides whether two listings likely describe the same item.
// Stateless and safe for concurrent use.
type Classifier struct {
	synonyms map[string][]string
}

// NewClassifier builds a classifier over the given synonym table. The table
// is treated as immutable; pass DefaultSynonyms for the stock vocabulary.
func NewClassifier(synonyms map[string][]string) *Classifier {
	return &Classifier{synonyms: synonyms}
}

// IsDuplicate reports whether candidate likely duplicates existing.
// Room and category must match exactly (case-sensitive, as stored); then
// either the titles are fuzzily similar or their synonym-expanded word sets
// overlap.
func (c *Classifier) IsDuplicate(candidate, existing *model.Listing) bool {
	if candidate.Room != existing.Room {
		return false
	}
	if candidate.Category != existing.Category {
		return false
	}

	if titleSimilar(strings.ToLower(candidate.Title), strings.ToLower(existing.Title)) {
		return true
	}

	candWords := ExpandSynonyms(Normalize(candidate.Title), c.synonyms)
	for w := range ExpandSynonyms(Normalize(existing.Title), c.synonyms) {
		if _, ok := candWords[w]; ok {
			return true
		}
	}
	return false
}

// FindDuplicates scans every existing listing and returns all matches, in
// input order. The full scan is the documented behavior; callers are expected
// to pass the entire current set.
func (c *Classifier) FindDuplicates(candidate *model.Listing, existing []*model.Listing) []*model.Listing {
	var matches []*model.Listing
	for _, ex := range existing {
		if c.IsDuplicate(candidate, ex) {
			matches = append(matches, ex)
		}
	}
	return matches
}
