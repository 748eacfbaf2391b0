package vidar

import (
	"bufio"
	"io"
	"os"
	"strings"
	"unicode/utf8"
)

// maxLineSize bounds a single line of a property file.
const maxLineSize = 1 << 20

// ParseOptions controls how property lines are read.
type ParseOptions struct {
	// Comments enables skipping of lines whose first character is CommentChar.
	Comments bool
	// CommentChar is the comment leader, '#' unless set otherwise.
	CommentChar rune
}

// ParseFile reads the property file at path.
//
// Open and read failures are returned as *IOError. A malformed line is
// returned as *PropertyError carrying path. On any error the map is nil.
func ParseFile(path string, opts ParseOptions) (map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}
	defer f.Close()

	props, err := Parse(f, opts)
	if err != nil {
		switch e := err.(type) {
		case *PropertyError:
			e.Path = path
		case *IOError:
			e.Path = path
		}
		return nil, err
	}
	return props, nil
}

// Parse decodes key=value lines from r.
//
// A line that is not a comment must contain exactly one '='. Keys and values
// are kept as written, surrounding whitespace included. Later lines overwrite
// earlier ones with the same key.
func Parse(r io.Reader, opts ParseOptions) (map[string]string, error) {
	props := make(map[string]string)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		if opts.Comments && isComment(line, opts.CommentChar) {
			continue
		}

		if strings.Count(line, "=") != 1 {
			return nil, &PropertyError{Line: lineNo, Text: line}
		}
		key, value, _ := strings.Cut(line, "=")
		props[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, &IOError{Err: err}
	}

	return props, nil
}

func isComment(line string, leader rune) bool {
	if line == "" {
		return false
	}
	first, _ := utf8.DecodeRuneInString(line)
	return first == leader
}
