package wordcount

import (
	"github.com/kljensen/snowball/english"
	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"
)

// Options tunes the comparison pipeline. The zero value splits with
// PolicyNormalized and leaves every token untouched.
type Options struct {
	Policy Policy
	// FoldCase applies Unicode case folding and NFC normalization to tokens.
	FoldCase bool
	// Stem reduces tokens to their English Snowball stem. The stemmer trims
	// surrounding whitespace and lower-cases, so under PolicyLiteral " out"
	// becomes "out" and a lone " " token becomes "".
	Stem bool
}

// Comparison holds every intermediate table alongside the result.
type Comparison struct {
	Options    Options
	First      Table
	Second     Table
	Collective Table
	Result     Result
}

// Similarity is the cosine similarity of the two per-text tables.
func (c Comparison) Similarity() float64 {
	return Similarity(c.First, c.Second)
}

// WordCounter returns the word with the highest combined count across the two
// texts, using the default options.
func WordCounter(text1, text2 string) Result {
	return Compare(text1, text2, Options{}).Result
}

// Compare runs the full pipeline over both texts.
func Compare(text1, text2 string, opts Options) Comparison {
	first := Tokens(text1, opts)
	second := Tokens(text2, opts)
	c := Comparison{
		Options: opts,
		First:   Count(first),
		Second:  Count(second),
	}
	c.Collective = Collective(c.First, c.Second)
	c.Result = Top(c.Collective)
	return c
}

// Tokens splits text according to opts.Policy and applies the token
// normalizations opts enables.
func Tokens(text string, opts Options) []string {
	words := Split(text, opts.Policy)
	if !opts.FoldCase && !opts.Stem {
		return words
	}
	var fold cases.Caser
	if opts.FoldCase {
		fold = cases.Fold()
	}
	out := words[:0]
	for _, word := range words {
		if opts.FoldCase {
			word = fold.String(norm.NFC.String(word))
		}
		if opts.Stem {
			word = english.Stem(word, false)
		}
		out = append(out, word)
	}
	return out
}
