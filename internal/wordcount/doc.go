// Package wordcount finds the word two texts have most in common.
//
// The pipeline is split → count → collective → top: each text is tokenized on
// the ASCII space character, occurrences are counted per text, the two
// frequency tables are intersected (summing counts for shared words), and the
// word with the highest combined count is reported. When the texts share no
// word the result is the NoMatch sentinel, which is a normal outcome rather
// than an error.
//
// Two tokenizer policies exist. PolicyNormalized (the default) emits every
// space-separated segment. PolicyLiteral reproduces the classroom exercise
// this tool grew out of: words after the first keep their leading space and
// the segment after the final space is dropped. The policies disagree on
// ordinary input, so callers that persist or compare results should record
// which one was used.
//
// Every function here is pure and safe for concurrent use.
package wordcount
