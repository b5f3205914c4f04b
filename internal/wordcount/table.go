package wordcount

import "sort"

// Table maps a word to the number of times it occurs.
type Table map[string]int

// Entry is a single word and its count.
type Entry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Count builds the frequency table for words. The result is never nil.
func Count(words []string) Table {
	counts := make(Table, len(words))
	for _, word := range words {
		counts[word]++
	}
	return counts
}

// Total returns the sum of all counts in the table.
func (t Table) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// Collective keeps only the words present in both tables, mapping each to the
// sum of its two counts.
func Collective(a, b Table) Table {
	if len(b) < len(a) {
		a, b = b, a
	}
	combined := make(Table, len(a))
	for word, n := range a {
		if m, ok := b[word]; ok {
			combined[word] = n + m
		}
	}
	return combined
}

// Ranked returns the table entries ordered by count (highest first) and then
// by word in byte order.
func Ranked(t Table) []Entry {
	entries := make([]Entry, 0, len(t))
	for word, n := range t {
		entries = append(entries, Entry{Word: word, Count: n})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})
	return entries
}
