package wordcount

// NoMatch is reported when two texts share no word.
const NoMatch = "No matching words"

// Result is the outcome of a comparison: the winning word and its combined
// count, or no match.
type Result struct {
	Word    string `json:"word"`
	Count   int    `json:"count"`
	Matched bool   `json:"matched"`
}

// String returns the winning word, or NoMatch.
func (r Result) String() string {
	if !r.Matched {
		return NoMatch
	}
	return r.Word
}

// Top selects the word with the highest count. Equal counts resolve to the
// word that sorts first in byte order, so the answer never depends on map
// iteration order. An empty table yields a no-match Result.
func Top(t Table) Result {
	var best Result
	for word, n := range t {
		if best.Matched && (n < best.Count || (n == best.Count && word > best.Word)) {
			continue
		}
		best = Result{Word: word, Count: n, Matched: true}
	}
	return best
}
