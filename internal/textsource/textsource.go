package textsource

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// StdinArg is the argument that selects standard input.
const StdinArg = "-"

// ErrStdinReused is returned when standard input is requested more than once.
var ErrStdinReused = errors.New("standard input can only be read once per command")

// Reader resolves arguments against one standard input stream.
type Reader struct {
	stdin    io.Reader
	consumed bool
}

// NewReader returns a Reader that serves "-" from stdin.
func NewReader(stdin io.Reader) *Reader {
	return &Reader{stdin: stdin}
}

// Read returns arg unchanged unless fromFile is set, in which case arg names a
// file (or "-") whose contents are returned with one trailing line terminator removed.
func (r *Reader) Read(arg string, fromFile bool) (string, error) {
	if !fromFile {
		return arg, nil
	}
	if arg == StdinArg {
		if r.consumed {
			return "", ErrStdinReused
		}
		r.consumed = true
		if r.stdin == nil {
			return "", errors.New("standard input is not available")
		}
		data, err := io.ReadAll(r.stdin)
		if err != nil {
			return "", fmt.Errorf("read standard input: %w", err)
		}
		return trimLineEnding(string(data)), nil
	}

	path := strings.TrimSpace(arg)
	if path == "" {
		return "", errors.New("file path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return trimLineEnding(string(data)), nil
}

// Read is a convenience for resolving a single argument.
func Read(arg string, fromFile bool, stdin io.Reader) (string, error) {
	return NewReader(stdin).Read(arg, fromFile)
}

func trimLineEnding(s string) string {
	if trimmed, ok := strings.CutSuffix(s, "\r\n"); ok {
		return trimmed
	}
	return strings.TrimSuffix(s, "\n")
}
