// Package textsource resolves CLI arguments into input text. An argument is
// either the text itself, a path to a file, or "-" for standard input.
package textsource
