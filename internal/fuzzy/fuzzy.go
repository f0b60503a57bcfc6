// Package fuzzy provides edit-distance based string similarity scoring.
package fuzzy

// LevenshteinDistance calculates the minimum number of single-character edits
// (insertions, deletions, or substitutions) required to change one string into
// another. Operates on runes so multi-byte characters count as one edit.
func LevenshteinDistance(a, b string) int {
	if a == b {
		return 0
	}
	runesA := []rune(a)
	runesB := []rune(b)
	lenA := len(runesA)
	lenB := len(runesB)
	if lenA == 0 {
		return lenB
	}
	if lenB == 0 {
		return lenA
	}

	// Two rolling rows are enough; the full matrix is never needed.
	prev := make([]int, lenB+1)
	curr := make([]int, lenB+1)
	for j := 0; j <= lenB; j++ {
		prev[j] = j
	}

	for i := 1; i <= lenA; i++ {
		curr[0] = i
		for j := 1; j <= lenB; j++ {
			cost := 0
			if runesA[i-1] != runesB[j-1] {
				cost = 1
			}
			curr[j] = minOf(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[lenB]
}

// Ratio scores the similarity of a and b in [0, 100], 100 meaning equal.
func Ratio(a, b string) int {
	lenA := len([]rune(a))
	lenB := len([]rune(b))
	if lenA == 0 && lenB == 0 {
		return 100
	}
	longest := lenA
	if lenB > longest {
		longest = lenB
	}
	d := LevenshteinDistance(a, b)
	return (longest - d) * 100 / longest
}

// PartialRatio scores the best alignment of the shorter string against every
// equally long window of the longer string, in [0, 100]. A string that contains
// the other verbatim scores 100. This mirrors the partial-ratio semantics of
// common fuzzy-matching libraries and is what heading detection keys on.
func PartialRatio(a, b string) int {
	shorter, longer := []rune(a), []rune(b)
	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}
	if len(shorter) == 0 {
		return 0
	}

	best := 0
	window := len(shorter)
	for i := 0; i+window <= len(longer); i++ {
		score := Ratio(string(shorter), string(longer[i:i+window]))
		if score > best {
			best = score
		}
		if best == 100 {
			break
		}
	}
	return best
}

func minOf(a, b, c int) int {
	if a <= b && a <= c {
		return a
	}
	if b <= c {
		return b
	}
	return c
}
