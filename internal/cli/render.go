package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// renderError writes err for humans. Colors are only used when w is a
// terminal that supports them (NO_COLOR disables them).
func renderError(w io.Writer, err error) {
	r := lipgloss.NewRenderer(w)
	label := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF6B6B")).Render("Error:")
	_, _ = fmt.Fprintf(w, "\n%s %s\n\n", label, err.Error())
}
