package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/turing/pkg/domain"
)

// DescribeMarkdown summarises a machine as a markdown document.
func DescribeMarkdown(title string, table *domain.Table) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "# %s\n\n", title)
	fmt.Fprintf(&sb, "- **Initial state:** `%d`\n", table.Initial())

	finals := make([]string, 0)
	for _, s := range table.Finals() {
		finals = append(finals, fmt.Sprintf("`%d`", s))
	}
	if len(finals) == 0 {
		finals = append(finals, "_none_")
	}
	fmt.Fprintf(&sb, "- **Final states:** %s\n", strings.Join(finals, ", "))
	fmt.Fprintf(&sb, "- **Blank symbol:** `%s`\n", table.Blank())
	fmt.Fprintf(&sb, "- **States:** %d\n\n", len(table.States()))

	transitions := table.Transitions()
	if len(transitions) == 0 {
		sb.WriteString("_No transitions._\n")
		return sb.String()
	}

	sb.WriteString("| # | From | Read | To | Write | Move | Note |\n")
	sb.WriteString("|---|------|------|----|-------|------|------|\n")
	for i, tr := range transitions {
		note := ""
		if table.Shadowed(i) {
			note = "shadowed"
		}
		fmt.Fprintf(&sb, "| %d | %d | `%s` | %d | `%s` | %s | %s |\n",
			i, tr.From, cell(tr.Read), tr.To, cell(tr.Write), tr.Move, note)
	}
	return sb.String()
}

// cell keeps a symbol from breaking the table layout.
func cell(sym domain.Symbol) string {
	if sym == '|' {
		return `\|`
	}
	return sym.String()
}
