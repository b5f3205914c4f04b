package wordcount

import (
	"reflect"
	"testing"
)

const (
	hitchhikerFirst = "Far out in the uncharted backwaters of the " +
		"unfashionable end of the western spiral arm of " +
		"the Galaxy lies a small unregarded yellow sun."
	hitchhikerSecond = "Orbiting this at a distance of roughly ninety-two million " +
		"miles is an utterly insignificant little blue green " +
		"planet whose ape-descended life forms are so amazingly " +
		"primitive that they still think digital watches are a pretty neat idea."
)

func TestWordCounterScenarios(t *testing.T) {
	tests := []struct {
		name  string
		text1 string
		text2 string
		want  string
	}{
		{"disjoint", "I love Practical Data Science.", "Who is Nick Eubank?", NoMatch},
		{"shared word keeps punctuation", "This is a test of my code.", "I hope there's not bugs in this code.", "code."},
		{"empty", "", "", NoMatch},
		{"highest combined count", hitchhikerFirst, hitchhikerSecond, "of"},
		{"no spaces same word", "word", "word", "word"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := WordCounter(tt.text1, tt.text2)
			if got.String() != tt.want {
				t.Errorf("WordCounter() = %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestCompareLiteralPolicy(t *testing.T) {
	tests := []struct {
		name  string
		text1 string
		text2 string
		want  string
	}{
		{"disjoint", "I love Practical Data Science.", "Who is Nick Eubank?", NoMatch},
		// Both " code." tokens are trailing segments and never emitted.
		{"trailing word dropped", "This is a test of my code.", "I hope there's not bugs in this code.", NoMatch},
		{"empty", "", "", NoMatch},
		{"leading space kept", hitchhikerFirst, hitchhikerSecond, " of"},
		{"no spaces", "word", "word", NoMatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compare(tt.text1, tt.text2, Options{Policy: PolicyLiteral}).Result
			if got.String() != tt.want {
				t.Errorf("Compare(literal) = %q, want %q", got.String(), tt.want)
			}
		})
	}
}

func TestCompareCounts(t *testing.T) {
	c := Compare(hitchhikerFirst, hitchhikerSecond, Options{})
	if c.First["of"] != 3 || c.Second["of"] != 1 {
		t.Fatalf("per-text counts for of = %d/%d, want 3/1", c.First["of"], c.Second["of"])
	}
	want := Table{"of": 4, "a": 3}
	if !reflect.DeepEqual(c.Collective, want) {
		t.Fatalf("Collective = %v, want %v", c.Collective, want)
	}
	if c.Result.Count != 4 {
		t.Fatalf("Result.Count = %d, want 4", c.Result.Count)
	}
	if s := c.Similarity(); s <= 0 || s >= 1 {
		t.Fatalf("Similarity = %v, want between 0 and 1", s)
	}
}

func TestWordCounterIdempotent(t *testing.T) {
	first := WordCounter(hitchhikerFirst, hitchhikerSecond)
	for i := 0; i < 10; i++ {
		if got := WordCounter(hitchhikerFirst, hitchhikerSecond); got != first {
			t.Fatalf("run %d: WordCounter() = %+v, want %+v", i, got, first)
		}
	}
}

func TestCompareFoldCase(t *testing.T) {
	text1 := "This is a test of my code."
	text2 := "I hope THIS works"

	if got := WordCounter(text1, text2); got.Matched {
		t.Fatalf("default options matched %q, want no match", got.Word)
	}
	got := Compare(text1, text2, Options{FoldCase: true}).Result
	if got.Word != "this" || got.Count != 2 {
		t.Fatalf("Compare(FoldCase) = %+v, want this/2", got)
	}
}

func TestCompareStem(t *testing.T) {
	got := Compare("dogs running", "dog runs", Options{Stem: true}).Result
	// "dog" and "run" both reach 2; the tie goes to the smaller word.
	if got.Word != "dog" || got.Count != 2 {
		t.Fatalf("Compare(Stem) = %+v, want dog/2", got)
	}
}

func TestTokensLeavesInputUntouchedByDefault(t *testing.T) {
	got := Tokens("Mixed CASE words", Options{})
	want := []string{"Mixed", "CASE", "words"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokens = %q, want %q", got, want)
	}
}

func TestTokensStemDropsLiteralSpaces(t *testing.T) {
	opts := Options{Policy: PolicyLiteral, Stem: true}

	got := Tokens("Far out of the running dogs now", opts)
	want := []string{"far", "out", "of", "the", "run", "dog"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokens = %q, want %q", got, want)
	}

	// A double space yields a " " token, which stems to the empty word.
	got = Tokens("a  b c", opts)
	want = []string{"a", "", "b"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Tokens = %q, want %q", got, want)
	}
}

func TestCompareReportsSimilarityAlongsideFoldCase(t *testing.T) {
	c := Compare("Go go", "GO", Options{FoldCase: true})
	if c.Result.Word != "go" || c.Result.Count != 3 {
		t.Fatalf("Compare = %+v, want go/3", c.Result)
	}
	if got := c.Similarity(); got < 0.999 || got > 1.001 {
		t.Fatalf("Similarity = %v, want 1", got)
	}
}
