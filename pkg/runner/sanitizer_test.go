package runner

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeWord_SizeLimit(t *testing.T) {
	limit := 4096

	tests := []struct {
		name     string
		wordSize int
		wantErr  bool
	}{
		{"Under Limit", limit - 1, false},
		{"Exact Limit", limit, false},
		{"Over Limit", limit + 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := SanitizeWord(strings.Repeat("a", tt.wordSize))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrWordTooLarge)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSanitizeWord_ControlChars(t *testing.T) {
	tests := []struct {
		name     string
		word     string
		expected string
	}{
		{"Normal Word", "0101", "0101"},
		{"Surrounding Space", "  0101 ", "0101"},
		{"Newline", "01\n01", "0101"},
		{"ANSI Code", "\x1b[31m01", "[31m01"},
		{"Null Byte", "0\x001", "01"},
		{"Unicode Kept", "αβγ", "αβγ"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SanitizeWord(tt.word)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestSanitizeWord_EnvOverride(t *testing.T) {
	t.Setenv(EnvMaxWordSize, "10")

	_, err := SanitizeWord("12345678901")
	assert.ErrorIs(t, err, ErrWordTooLarge)

	_, err = SanitizeWord("12345")
	assert.NoError(t, err)
}

func TestSanitizeWord_InvalidUTF8(t *testing.T) {
	_, err := SanitizeWord("\xbd\xb2\x3d\xbc\x20\xe2\x8c\x98")
	assert.ErrorIs(t, err, ErrInvalidUTF8)
}
