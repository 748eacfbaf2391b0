package vidar

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParse(t *testing.T) {
	hash := ParseOptions{Comments: true, CommentChar: '#'}

	tests := []struct {
		name        string
		input       string
		opts        ParseOptions
		expectError bool
		errLine     int
		expected    map[string]string
	}{
		{
			name:     "single property",
			input:    "url=https://localhost",
			expected: map[string]string{"url": "https://localhost"},
		},
		{
			name:  "several properties",
			input: "key1=val1\nkey2=val2\nkey3=val3",
			expected: map[string]string{
				"key1": "val1",
				"key2": "val2",
				"key3": "val3",
			},
		},
		{
			name:     "trailing newline",
			input:    "key1=val1\n",
			expected: map[string]string{"key1": "val1"},
		},
		{
			name:     "crlf line endings",
			input:    "key1=val1\r\nkey2=val2\r\n",
			expected: map[string]string{"key1": "val1", "key2": "val2"},
		},
		{
			name:     "empty input",
			input:    "",
			expected: map[string]string{},
		},
		{
			name:     "whitespace is kept",
			input:    " key = value ",
			expected: map[string]string{" key ": " value "},
		},
		{
			name:     "empty value",
			input:    "key=",
			expected: map[string]string{"key": ""},
		},
		{
			name:     "empty key",
			input:    "=value",
			expected: map[string]string{"": "value"},
		},
		{
			name:     "last duplicate wins",
			input:    "url=first\nurl=second",
			expected: map[string]string{"url": "second"},
		},
		{
			name:     "comment skipped",
			input:    "# This is a comment\nurl=https://testurl.vidar.com",
			opts:     hash,
			expected: map[string]string{"url": "https://testurl.vidar.com"},
		},
		{
			name:     "comment containing equals skipped",
			input:    "#a=b=c\nurl=x",
			opts:     hash,
			expected: map[string]string{"url": "x"},
		},
		{
			name:     "custom comment leader",
			input:    ";comment\nurl=x",
			opts:     ParseOptions{Comments: true, CommentChar: ';'},
			expected: map[string]string{"url": "x"},
		},
		{
			name:     "multibyte comment leader",
			input:    "§ comment\nurl=x",
			opts:     ParseOptions{Comments: true, CommentChar: '§'},
			expected: map[string]string{"url": "x"},
		},
		{
			name:        "comment without comments enabled",
			input:       "# This is a comment\nurl=x",
			opts:        ParseOptions{CommentChar: '#'},
			expectError: true,
			errLine:     1,
		},
		{
			name:        "indented comment is not a comment",
			input:       "  # comment",
			opts:        hash,
			expectError: true,
			errLine:     1,
		},
		{
			name:        "no separator",
			input:       "this is a bad property",
			expectError: true,
			errLine:     1,
		},
		{
			name:        "two separators",
			input:       "key1=val1\nurl=https://host/?a=b",
			expectError: true,
			errLine:     2,
		},
		{
			name:        "blank line",
			input:       "key1=val1\n\nkey2=val2",
			opts:        hash,
			expectError: true,
			errLine:     2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(strings.NewReader(tt.input), tt.opts)

			if tt.expectError {
				if !errors.Is(err, ErrInvalidProperty) {
					t.Fatalf("expected ErrInvalidProperty, got %v", err)
				}
				var propErr *PropertyError
				if !errors.As(err, &propErr) {
					t.Fatalf("expected *PropertyError, got %T", err)
				}
				if propErr.Line != tt.errLine {
					t.Errorf("Line = %d, want %d", propErr.Line, tt.errLine)
				}
				if result != nil {
					t.Errorf("expected nil map on error, got %v", result)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.expected, result); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseFile(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(tmpDir, "prod.env")
		if err := os.WriteFile(path, []byte("url=https://produrl.vidar.com\ncreds=secret"), 0644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}

		result, err := ParseFile(path, ParseOptions{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected := map[string]string{"url": "https://produrl.vidar.com", "creds": "secret"}
		if diff := cmp.Diff(expected, result); diff != "" {
			t.Errorf("ParseFile() mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(tmpDir, "missing.env")
		_, err := ParseFile(path, ParseOptions{})
		if !errors.Is(err, ErrIO) {
			t.Fatalf("expected ErrIO, got %v", err)
		}
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("expected fs.ErrNotExist in chain, got %v", err)
		}
		if errors.Is(err, ErrInvalidProperty) {
			t.Errorf("i/o failure must not match ErrInvalidProperty")
		}
		var ioErr *IOError
		if !errors.As(err, &ioErr) || ioErr.Path != path {
			t.Errorf("expected *IOError for %s, got %#v", path, err)
		}
	})

	t.Run("directory instead of file", func(t *testing.T) {
		_, err := ParseFile(tmpDir, ParseOptions{})
		if !errors.Is(err, ErrIO) {
			t.Fatalf("expected ErrIO, got %v", err)
		}
	})

	t.Run("malformed file carries path", func(t *testing.T) {
		path := filepath.Join(tmpDir, "stage.env")
		if err := os.WriteFile(path, []byte("this is a bad property"), 0644); err != nil {
			t.Fatalf("failed to write test file: %v", err)
		}

		_, err := ParseFile(path, ParseOptions{})
		var propErr *PropertyError
		if !errors.As(err, &propErr) {
			t.Fatalf("expected *PropertyError, got %v", err)
		}
		if propErr.Path != path {
			t.Errorf("Path = %q, want %q", propErr.Path, path)
		}
		if !strings.Contains(err.Error(), path) {
			t.Errorf("error message %q does not name the file", err)
		}
	})
}
