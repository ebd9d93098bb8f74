package dedup

// Ratio returns a normalized Levenshtein similarity in [0,1]:
// 1 - distance/max(len). Identical strings score 1, fully disjoint strings
// of comparable length score near 0. Symmetric. Callers lowercase first.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 1
	}
	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	return 1 - float64(levenshtein(ra, rb))/float64(maxLen)
}

// Title similarity threshold, strict: a score of exactly 7/10 does not pass.
const (
	thresholdNum = 7
	thresholdDen = 10
)

// titleSimilar reports whether the similarity of a and b strictly exceeds
// the threshold. The comparison runs on integers so the boundary is exact;
// float rounding puts a true score of 0.7 just above the 0.7 literal.
func titleSimilar(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	maxLen := max(len(ra), len(rb))
	if maxLen == 0 {
		return true
	}
	return thresholdDen*(maxLen-levenshtein(ra, rb)) > thresholdNum*maxLen
}

// levenshtein computes edit distance with a single rolling row.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	row := make([]int, len(b)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(a); i++ {
		prev := row[0]
		row[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur := row[j]
			row[j] = min(row[j]+1, row[j-1]+1, prev+cost)
			prev = cur
		}
	}
	return row[len(b)]
}
