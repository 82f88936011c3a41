package runner

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// maxLineSize leaves word lines bounded only by memory.
const maxLineSize = math.MaxInt

// ReadWords reads newline-delimited words. Lines are split on "\n", "\r\n" or
// a lone "\r", trimmed, and blank lines are skipped.
func ReadWords(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineSize)
	scanner.Split(scanAnyLine)

	var words []string
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		words = append(words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read words: %w", err)
	}
	return words, nil
}

// scanAnyLine is bufio.ScanLines treating '\r' as a terminator on its own.
// A "\r\n" pair yields an extra empty token, which ReadWords skips.
func scanAnyLine(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// FormatResult renders one result line (without newline).
func FormatResult(word string, verdict domain.Verdict) string {
	return word + " - " + verdict.String()
}

// Formatter renders one result line; see FormatResult.
type Formatter func(word string, verdict domain.Verdict) string
