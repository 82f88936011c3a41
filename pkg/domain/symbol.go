package domain

import (
	"unicode/utf8"
)

// Symbol is the value held by a single tape cell.
type Symbol rune

func (s Symbol) String() string {
	return string(s)
}

func (s Symbol) MarshalText() ([]byte, error) {
	return []byte(string(s)), nil
}

func (s *Symbol) UnmarshalText(text []byte) error {
	parsed, err := ParseSymbol("symbol", string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSymbol converts a raw description field into a Symbol.
// Only the first code point is significant; an empty field is malformed.
func ParseSymbol(field, raw string) (Symbol, error) {
	if raw == "" {
		return 0, &SpecError{Field: field, Reason: "must be a single character", Value: raw}
	}
	r, size := utf8.DecodeRuneInString(raw)
	if r == utf8.RuneError && size == 1 {
		return 0, &SpecError{Field: field, Reason: "invalid UTF-8", Value: raw}
	}
	return Symbol(r), nil
}

// SymbolsOf splits a word into tape symbols.
func SymbolsOf(word string) []Symbol {
	symbols := make([]Symbol, 0, utf8.RuneCountInString(word))
	for _, r := range word {
		symbols = append(symbols, Symbol(r))
	}
	return symbols
}

// Direction is the head movement applied after a write.
type Direction int8

const (
	Left  Direction = -1
	Right Direction = 1
)

func (d Direction) String() string {
	if d == Right {
		return "R"
	}
	return "L"
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection("dir", string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection accepts "L" or "R" (only the first character is read).
func ParseDirection(field, raw string) (Direction, error) {
	if raw == "" {
		return 0, &SpecError{Field: field, Reason: `must be "L" or "R"`, Value: raw}
	}
	switch raw[0] {
	case 'R':
		return Right, nil
	case 'L':
		return Left, nil
	}
	return 0, &SpecError{Field: field, Reason: `must be "L" or "R"`, Value: raw}
}
