package wordcount

import "math"

// Similarity computes the cosine similarity between two frequency tables.
// Returns 0 if either table is empty.
func Similarity(a, b Table) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(b) < len(a) {
		a, b = b, a
	}
	var dot float64
	for word, n := range a {
		if m, ok := b[word]; ok {
			dot += float64(n) * float64(m)
		}
	}
	if dot == 0 {
		return 0
	}
	return dot / (magnitude(a) * magnitude(b))
}

// magnitude is the Euclidean length of the table as a count vector.
func magnitude(t Table) float64 {
	var sum float64
	for _, n := range t {
		sum += float64(n) * float64(n)
	}
	return math.Sqrt(sum)
}
