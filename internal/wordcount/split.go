package wordcount

import (
	"fmt"
	"strings"
)

// Policy selects how Split turns a text into words.
type Policy int

const (
	// PolicyNormalized splits on spaces, drops empty segments and keeps the
	// trailing segment.
	PolicyNormalized Policy = iota
	// PolicyLiteral moves the split point onto each space instead of past
	// it, so every word after the first starts with a space, and never emits
	// the segment after the final space.
	PolicyLiteral
)

const delimiter = ' '

func (p Policy) String() string {
	switch p {
	case PolicyLiteral:
		return "literal"
	case PolicyNormalized:
		return "normalized"
	default:
		return fmt.Sprintf("policy(%d)", int(p))
	}
}

// ParsePolicy converts a policy name ("normalized" or "literal") to a Policy.
func ParsePolicy(value string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "normalized", "":
		return PolicyNormalized, nil
	case "literal":
		return PolicyLiteral, nil
	default:
		return PolicyNormalized, fmt.Errorf("unknown tokenizer policy %q (want normalized or literal)", value)
	}
}

// Split tokenizes text on the ASCII space character using the given policy.
// No case folding or punctuation stripping is applied.
func Split(text string, policy Policy) []string {
	if policy == PolicyLiteral {
		return splitLiteral(text)
	}
	return splitNormalized(text)
}

func splitNormalized(text string) []string {
	words := make([]string, 0, strings.Count(text, string(delimiter))+1)
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] != delimiter {
			continue
		}
		if i > start {
			words = append(words, text[start:i])
		}
		start = i + 1
	}
	if start < len(text) {
		words = append(words, text[start:])
	}
	return words
}

func splitLiteral(text string) []string {
	words := make([]string, 0, strings.Count(text, string(delimiter)))
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == delimiter {
			words = append(words, text[start:i])
			start = i
		}
	}
	return words
}
