package wordcount

import "testing"

func TestTopEmptyIsNoMatch(t *testing.T) {
	got := Top(Table{})
	if got.Matched {
		t.Fatalf("Top(empty) = %+v, want no match", got)
	}
	if got.String() != NoMatch {
		t.Fatalf("Top(empty).String() = %q, want %q", got.String(), NoMatch)
	}
}

func TestTopPicksHighestCount(t *testing.T) {
	got := Top(Table{"of": 4, "a": 3, "is": 2})
	if !got.Matched || got.Word != "of" || got.Count != 4 {
		t.Fatalf("Top = %+v, want of/4", got)
	}
}

func TestTopTieBreaksLexicographically(t *testing.T) {
	table := Table{"zeta": 3, "alpha": 3, "mid": 3, "low": 1}
	for i := 0; i < 50; i++ {
		got := Top(table)
		if got.Word != "alpha" || got.Count != 3 {
			t.Fatalf("Top = %+v, want alpha/3", got)
		}
	}
}

func TestTopAgreesWithRanked(t *testing.T) {
	table := Table{"b": 7, "c": 7, "a": 2, " of": 7}
	top := Top(table)
	first := Ranked(table)[0]
	if top.Word != first.Word || top.Count != first.Count {
		t.Fatalf("Top = %+v, Ranked[0] = %+v", top, first)
	}
}
