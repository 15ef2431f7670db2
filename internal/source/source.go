package source

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"
)

var (
	// ErrUnsupportedType is returned for files that are not .txt or .md.
	ErrUnsupportedType = errors.New("only .txt and .md files are supported")

	// ErrNotUTF8 is returned for files whose content is not valid UTF-8.
	ErrNotUTF8 = errors.New("file is not valid UTF-8 text")
)

// SupportedExtensions lists the accepted study material file types.
var SupportedExtensions = []string{".txt", ".md"}

// Error describes a failure to read study material from Path.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsSupported reports whether path has a supported extension.
func IsSupported(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, supported := range SupportedExtensions {
		if ext == supported {
			return true
		}
	}
	return false
}

// Load reads a study material file as UTF-8 text. A leading byte order
// mark is dropped.
func Load(path string) (string, error) {
	if !IsSupported(path) {
		return "", &Error{Path: path, Err: ErrUnsupportedType}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", &Error{Path: path, Err: err}
	}
	if !utf8.Valid(data) {
		return "", &Error{Path: path, Err: ErrNotUTF8}
	}
	return strings.TrimPrefix(string(data), "\ufeff"), nil
}
