package cli

import (
	"fmt"
	"io"

	"github.com/aretw0/turing/internal/presentation/tui"
)

// Describe writes a markdown summary of the machine to w, rendered with
// glamour when render is set.
func Describe(opts EngineOptions, w io.Writer, render bool) error {
	session, err := OpenSession(opts)
	if err != nil {
		return err
	}
	defer session.Close()

	title := session.Engine.Name
	if title == "" {
		title = "Machine"
	}
	doc := tui.DescribeMarkdown(title, session.Engine.Table())

	if render {
		renderer, err := tui.NewRenderer()
		if err != nil {
			return fmt.Errorf("failed to create renderer: %w", err)
		}
		if doc, err = renderer(doc); err != nil {
			return fmt.Errorf("failed to render: %w", err)
		}
	}

	_, err = io.WriteString(w, doc)
	return err
}
