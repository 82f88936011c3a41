package runtime

import (
	"slices"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// Tape is a growable buffer of symbols addressed by logical positions.
// Position 0 is the first symbol of the input word; positions may go negative.
// Cells outside the buffer read as the blank symbol.
type Tape struct {
	cells  []domain.Symbol
	origin int // buffer index of position 0
	blank  domain.Symbol
}

// NewTape lays out word followed by a single blank.
func NewTape(word []domain.Symbol, blank domain.Symbol) *Tape {
	cells := make([]domain.Symbol, len(word), len(word)+1)
	copy(cells, word)
	return &Tape{
		cells: append(cells, blank),
		blank: blank,
	}
}

// Read returns the symbol at pos without growing the buffer.
func (t *Tape) Read(pos int) domain.Symbol {
	i := pos + t.origin
	if i < 0 || i >= len(t.cells) {
		return t.blank
	}
	return t.cells[i]
}

// Write stores sym at pos, padding the buffer with blanks on either side as needed.
func (t *Tape) Write(pos int, sym domain.Symbol) {
	i := pos + t.origin
	if i < 0 {
		pad := slices.Repeat([]domain.Symbol{t.blank}, -i)
		t.cells = append(pad, t.cells...)
		t.origin -= i
		i = 0
	} else if i >= len(t.cells) {
		for len(t.cells) <= i {
			t.cells = append(t.cells, t.blank)
		}
	}
	t.cells[i] = sym
}

// Bounds returns the lowest and highest logical positions held in the buffer.
func (t *Tape) Bounds() (lo, hi int) {
	return -t.origin, len(t.cells) - 1 - t.origin
}

// Len is the size of the buffer.
func (t *Tape) Len() int {
	return len(t.cells)
}

// String renders the buffer with surrounding blanks trimmed.
func (t *Tape) String() string {
	start, end := 0, len(t.cells)
	for start < end && t.cells[start] == t.blank {
		start++
	}
	for end > start && t.cells[end-1] == t.blank {
		end--
	}
	var sb strings.Builder
	for _, s := range t.cells[start:end] {
		sb.WriteRune(rune(s))
	}
	return sb.String()
}
