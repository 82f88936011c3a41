package tui

import (
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/runner"
	"github.com/muesli/termenv"
)

// VerdictFormatter renders result lines with the verdict coloured for the
// given profile. termenv.Ascii yields plain runner.FormatResult output.
func VerdictFormatter(p termenv.Profile) runner.Formatter {
	accepted := p.Color("#22c55e")
	rejected := p.Color("#ef4444")

	return func(word string, v domain.Verdict) string {
		color := rejected
		if v == domain.Accepted {
			color = accepted
		}
		return word + " - " + p.String(v.String()).Foreground(color).Bold().String()
	}
}
