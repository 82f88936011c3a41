package runner

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	// DefaultMaxWordSize is 4KB (conservative default)
	DefaultMaxWordSize = 4096
	// EnvMaxWordSize is the environment variable to override the default
	EnvMaxWordSize = "TURING_MAX_WORD_SIZE"
)

var (
	ErrWordTooLarge = errors.New("word exceeds maximum allowed size")
	ErrInvalidUTF8  = errors.New("word contains invalid UTF-8 sequences")
)

// SanitizeWord cleans an untrusted word by enforcing size limits,
// validating UTF-8, stripping control characters and trimming spaces.
func SanitizeWord(word string) (string, error) {
	limit := getMaxWordSize()
	if len(word) > limit {
		// Rejected rather than truncated: a truncated word is a different word.
		return "", fmt.Errorf("%w: size=%d limit=%d", ErrWordTooLarge, len(word), limit)
	}

	if !utf8.ValidString(word) {
		return "", ErrInvalidUTF8
	}

	// Fast path: if no control chars, return as is.
	if strings.IndexFunc(word, unicode.IsControl) < 0 {
		return strings.TrimSpace(word), nil
	}

	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if !unicode.IsControl(r) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String()), nil
}

func getMaxWordSize() int {
	if val := os.Getenv(EnvMaxWordSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			return size
		}
	}
	return DefaultMaxWordSize
}
