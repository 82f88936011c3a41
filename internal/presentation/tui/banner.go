package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner with the version underneath.
func PrintBanner(w io.Writer, version string) {
	p := termenv.ColorProfile()
	lines := []struct {
		text  string
		color string
	}{
		{" _____           _", "#818cf8"},
		{"|_   _|  _ _ _ _(_)_ _  __ _", "#a78bfa"},
		{"  | || || | '_| | ' \\/ _` |", "#c084fc"},
		{"  |_| \\_,_|_| |_|_||_\\__, |", "#e879f9"},
		{"                     |___/", "#f472b6"},
	}

	fmt.Fprintln(w)
	for _, l := range lines {
		fmt.Fprintln(w, p.String(l.text).Foreground(p.Color(l.color)))
	}
	fmt.Fprintln(w, p.String("  v"+strings.TrimSpace(version)).Faint())
	fmt.Fprintln(w)
}
