package domain

import "fmt"

// Verdict is the outcome of simulating one word.
type Verdict int

const (
	Rejected Verdict = iota
	Accepted
)

func (v Verdict) String() string {
	if v == Accepted {
		return "Accepted"
	}
	return "Rejected"
}

// ParseVerdict is the inverse of Verdict.String.
func ParseVerdict(s string) (Verdict, error) {
	switch s {
	case "Accepted":
		return Accepted, nil
	case "Rejected":
		return Rejected, nil
	}
	return Rejected, fmt.Errorf("unknown verdict %q", s)
}

func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *Verdict) UnmarshalText(text []byte) error {
	parsed, err := ParseVerdict(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
