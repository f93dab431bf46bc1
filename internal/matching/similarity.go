// Package matching implements the candidate-to-job match scoring and
// ranking engine: approximate string matching, a four-dimension
// weighted scorer, and ranking over candidate/job sets.
package matching

import "strings"

// Similarity returns a normalized closeness measure for two strings in [0, 1].
//
// Exact matches (after case folding) score 1.0. Substring containment
// scores 0.9, deliberately below true equality so exact matches still win
// ties. Everything else falls through to normalized Levenshtein similarity
// with a hard cutoff: values below threshold return 0, not partial credit.
// Empty input on either side returns 0.
func Similarity(a, b string, threshold float64) float64 {
	if a == "" || b == "" {
		return 0
	}

	a = strings.ToLower(a)
	b = strings.ToLower(b)

	if a == b {
		return 1.0
	}

	if strings.Contains(a, b) || strings.Contains(b, a) {
		return 0.9
	}

	ra := []rune(a)
	rb := []rune(b)
	longer := len(ra)
	if len(rb) > longer {
		longer = len(rb)
	}

	sim := 1.0 - float64(levenshtein(ra, rb))/float64(longer)
	if sim >= threshold {
		return sim
	}
	return 0
}

// levenshtein computes the classic edit distance (insert/delete/substitute,
// unit cost) with a full (m+1) x (n+1) table. Inputs here are skill names
// and short phrases, so the rolling-row optimization is not worth it.
func levenshtein(a, b []rune) int {
	m := len(a)
	n := len(b)

	d := make([][]int, m+1)
	for i := range d {
		d[i] = make([]int, n+1)
		d[i][0] = i
	}
	for j := 0; j <= n; j++ {
		d[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			del := d[i-1][j] + 1
			ins := d[i][j-1] + 1
			sub := d[i-1][j-1] + cost

			min := del
			if ins < min {
				min = ins
			}
			if sub < min {
				min = sub
			}
			d[i][j] = min
		}
	}

	return d[m][n]
}
