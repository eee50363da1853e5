package usecase

// levenshteinDistance calculates the edit distance between two strings.
// Strings are compared rune by rune; callers pass normalized (ASCII) text.
func levenshteinDistance(s1, s2 string) int {
	r1 := []rune(s1)
	r2 := []rune(s2)

	// Keep the shorter string on the columns so the rows stay small
	if len(r2) > len(r1) {
		r1, r2 = r2, r1
	}

	m := len(r1)
	n := len(r2)
	if n == 0 {
		return m
	}

	// Use two rows instead of full matrix for space efficiency
	prev := make([]int, n+1)
	curr := make([]int, n+1)

	for j := 0; j <= n; j++ {
		prev[j] = j
	}

	for i := 1; i <= m; i++ {
		curr[0] = i
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			curr[j] = min(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}

	return prev[n]
}

// similarity turns edit distance into a ratio in [0, 1].
// Two empty strings are identical; an empty string against a non-empty one scores 0.
func similarity(s1, s2 string) float64 {
	longest := max(len([]rune(s1)), len([]rune(s2)))
	if longest == 0 {
		return 1.0
	}
	return float64(longest-levenshteinDistance(s1, s2)) / float64(longest)
}
