package diagnostic

// Suggestion returns the candidate closest to value, or "" if none is close
// enough to be a likely misspelling. Values longer than three characters
// allow two edits, shorter ones a single edit. Ties go to the earliest
// candidate.
func Suggestion(value string, candidates []string) string {
	limit := 1
	if len(value) > 3 {
		limit = 2
	}

	var (
		best    string
		minDist = -1
	)
	for _, candidate := range candidates {
		if candidate == value {
			continue
		}
		dist := Levenshtein([]rune(value), []rune(candidate))
		if minDist == -1 || dist < minDist {
			best, minDist = candidate, dist
		}
	}
	if minDist == -1 || minDist > limit {
		return ""
	}
	return best
}

// Levenshtein returns the levenshtein distance between two rune arrays.
//
// This implementation translated from the optimized C code at
// https://en.wikibooks.org/wiki/Algorithm_Implementation/Strings/Levenshtein_distance#C
func Levenshtein(s1, s2 []rune) int {
	column := make([]int, len(s1)+1)
	for y := range column {
		column[y] = y
	}
	for x := 1; x <= len(s2); x++ {
		column[0] = x
		lastdiag := x - 1
		for y := 1; y <= len(s1); y++ {
			olddiag := column[y]
			incr := 1
			if s1[y-1] == s2[x-1] {
				incr = 0
			}
			column[y] = min(column[y]+1, column[y-1]+1, lastdiag+incr)
			lastdiag = olddiag
		}
	}
	return column[len(s1)]
}
