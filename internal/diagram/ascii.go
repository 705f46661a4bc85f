package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexiusacademia/gocoiler/internal/winding"
	"github.com/guptarohit/asciigraph"
)

// WindingDiagramData holds data for drawing a winding cross-section
type WindingDiagramData struct {
	// Drum dimensions (mm)
	InnerDiameter float64
	OuterDiameter float64 // limit, 0 if not applicable

	// Pipe and bundle (mm)
	PipeDiameter float64
	BundleWidth  float64 // realized width

	Pattern winding.Pattern

	// Layers as reported by the solver, innermost first
	Layers []winding.Layer
}

const (
	maxCells = 24 // pipes drawn per row before compressing
	maxRows  = 24 // layers drawn before eliding the middle
)

// DrawASCIICrossSection creates an ASCII view of one side of the winding:
// layers stacked outward from the drum core, offset rows shifted half a pipe.
func DrawASCIICrossSection(data WindingDiagramData) string {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString("  WINDING CROSS-SECTION (one side of the drum)\n")
	sb.WriteString("  ────────────────────────────────────────────\n\n")

	if len(data.Layers) == 0 {
		sb.WriteString("  (no layers)\n")
		return sb.String()
	}

	rows := visibleRows(len(data.Layers))
	rowWidth := 2*maxCells + 1

	// outermost layer on top
	for n := len(rows) - 1; n >= 0; n-- {
		idx := rows[n]
		if idx < 0 {
			sb.WriteString(fmt.Sprintf("  │%s│\n", centre("⋮", rowWidth)))
			continue
		}
		l := data.Layers[idx]
		sb.WriteString(fmt.Sprintf("  │%s│  L%-3d D=%.0f mm  %s/%d\n",
			layerRow(l, rowWidth), l.Index, l.Diameter, formatPipes(l.Pipes), l.Capacity))
	}

	sb.WriteString(fmt.Sprintf("  ╞%s╡  core ID=%.0f mm\n", strings.Repeat("═", rowWidth), data.InnerDiameter))
	sb.WriteString("\n")
	sb.WriteString("  Legend:\n")
	sb.WriteString("  ○ = pipe turn   ◌ = empty position   · = compressed\n")
	sb.WriteString(fmt.Sprintf("  Pattern: %s\n", data.Pattern.Label()))
	sb.WriteString(fmt.Sprintf("  Bundle width = %.0f mm, pipe ND = %.1f mm\n", data.BundleWidth, data.PipeDiameter))
	if data.OuterDiameter > 0 {
		sb.WriteString(fmt.Sprintf("  Outer diameter limit = %.0f mm\n", data.OuterDiameter))
	}

	return sb.String()
}

// visibleRows returns the layer indexes to draw; -1 marks an elision
func visibleRows(n int) []int {
	if n <= maxRows {
		rows := make([]int, n)
		for i := range rows {
			rows[i] = i
		}
		return rows
	}

	half := maxRows / 2
	rows := make([]int, 0, maxRows+1)
	for i := 0; i < half; i++ {
		rows = append(rows, i)
	}
	rows = append(rows, -1)
	for i := n - half; i < n; i++ {
		rows = append(rows, i)
	}
	return rows
}

func layerRow(l winding.Layer, width int) string {
	cells := l.Capacity
	compressed := cells > maxCells
	if compressed {
		cells = maxCells
	}

	filled := int(math.Ceil(l.Pipes))
	if compressed && l.Capacity > 0 {
		filled = int(math.Ceil(l.Pipes / float64(l.Capacity) * float64(cells)))
	}

	var sb strings.Builder
	// even layers sit half a pipe further in
	if l.Index%2 == 0 {
		sb.WriteString(" ")
	}
	for i := 0; i < cells; i++ {
		if i < filled {
			sb.WriteString("○")
		} else {
			sb.WriteString("◌")
		}
		if i < cells-1 {
			if compressed {
				sb.WriteString("·")
			} else {
				sb.WriteString(" ")
			}
		}
	}

	return padRight(sb.String(), width)
}

func formatPipes(p float64) string {
	if p == math.Trunc(p) {
		return fmt.Sprintf("%.0f", p)
	}
	return fmt.Sprintf("%.2f", p)
}

func padRight(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func centre(s string, width int) string {
	n := len([]rune(s))
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

// LengthChart plots the cumulative wound length (m) against layer number.
// width is the plot width in columns; 0 lets asciigraph choose.
func LengthChart(layers []winding.Layer, width int) string {
	if len(layers) == 0 {
		return ""
	}

	series := make([]float64, 0, len(layers)+1)
	series = append(series, 0)
	for _, l := range layers {
		series = append(series, l.Cumulative/1000)
	}

	opts := []asciigraph.Option{
		asciigraph.Height(12),
		asciigraph.Precision(1),
		asciigraph.Caption(fmt.Sprintf("cumulative pipe length (m) over %d layers", len(layers))),
	}
	if width > 0 {
		opts = append(opts, asciigraph.Width(width))
	}

	return asciigraph.Plot(series, opts...)
}
