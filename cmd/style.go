package cmd

import (
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

const (
	headerRule  = "═══════════════════════════════════════════════════════════════"
	sectionRule = "───────────────────────────────────────────────────────────────"
)

var (
	bannerStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(1, 3).
			MarginLeft(2).
			Bold(true)

	resultStyle = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			Padding(0, 2).
			MarginLeft(2).
			Foreground(lipgloss.Color("#90EE90"))
)

func printHeader(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, headerRule)
	fmt.Fprintf(w, "     %s\n", title)
	fmt.Fprintln(w, headerRule)
	fmt.Fprintln(w)
}

func printSection(w io.Writer, name string) {
	fmt.Fprintf(w, "%s:\n", name)
	fmt.Fprintln(w, sectionRule)
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func resultBox(lines ...string) string {
	return resultStyle.Render(strings.Join(lines, "\n"))
}

// formatValue renders a number for display. Non-finite values print as
// "Invalid"; very large or very small magnitudes switch to scientific notation.
func formatValue(v float64, precision int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "Invalid"
	}
	if a := math.Abs(v); a != 0 && (a < 1e-6 || a >= 1e6) {
		return strconv.FormatFloat(v, 'e', precision, 64)
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// chartWidth is the plot width for asciigraph, sized to the terminal when
// stdout is one
func chartWidth() int {
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil && w > 40 {
			return w - 20
		}
	}
	return 60
}
