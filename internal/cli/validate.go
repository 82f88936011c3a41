package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/turing/internal/validator"
	"github.com/aretw0/turing/pkg/adapters/file"
	"github.com/aretw0/turing/pkg/domain"
	"github.com/aretw0/turing/pkg/schema"
)

// Validate checks the machine file, printing every structural problem and
// every warning to w. Only structural problems are returned as an error.
func Validate(ctx context.Context, path string, w io.Writer) ([]validator.Warning, error) {
	loader := file.NewLoader(path)
	doc, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	table, err := schema.Compile(doc)
	if err != nil {
		problems := domain.SpecErrors(err)
		fmt.Fprintf(w, "%s: %d problem(s)\n", loader.Source(), len(problems))
		for _, p := range problems {
			fmt.Fprintf(w, "  ✗ %v\n", p)
		}
		return nil, fmt.Errorf("invalid machine %s: %w", loader.Source(), err)
	}

	warnings := validator.Inspect(table)
	for _, warn := range warnings {
		fmt.Fprintf(w, "  ! %s\n", warn)
	}
	fmt.Fprintf(w, "Machine is valid! ✅ (%d states, %d rules, %d warning(s))\n",
		len(table.States()), len(table.Transitions()), len(warnings))
	return warnings, nil
}
