package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/srclink/srclink/internal/core/domain"
)

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// printSummary writes the final one-line verdict. Styled only when stdout
// is a terminal; log files and pipes always get plain text.
func printSummary(w io.Writer, result *domain.RunResult) {
	line := fmt.Sprintf("%d of %d succeeded", len(result.Succeeded), result.Linked())

	if !isTerminal(w) {
		fmt.Fprintln(w, line)
		return
	}

	style := okStyle
	if !result.OK() {
		style = failStyle
	}
	fmt.Fprintln(w, style.Render(line))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
