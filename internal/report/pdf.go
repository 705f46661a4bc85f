package report

import (
	"fmt"

	"github.com/phpdave11/gofpdf"
)

// WritePDF writes a one-calculation report with its layer table
func WritePDF(r Report, path string) error {
	title := r.Title
	if title == "" {
		title = "Winding Calculation"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(title, false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 10)
	if !r.Generated.IsZero() {
		pdf.Cell(0, 6, fmt.Sprintf("Date: %s", r.Generated.Format("2006-01-02 15:04")))
		pdf.Ln(8)
	}

	summaryTable(pdf, "INPUT DATA", r.Inputs())
	summaryTable(pdf, "RESULT", r.Outputs())

	if len(r.Layers) > 0 {
		layerTable(pdf, r)
	}

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func summaryTable(pdf *gofpdf.Fpdf, heading string, rows []Row) {
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, heading)
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		pdf.CellFormat(70, 6, row.Label, "B", 0, "L", false, 0, "")
		pdf.CellFormat(60, 6, row.Value, "B", 0, "R", false, 0, "")
		pdf.CellFormat(15, 6, row.Unit, "B", 1, "L", false, 0, "")
	}
	pdf.Ln(6)
}

func layerTable(pdf *gofpdf.Fpdf, r Report) {
	widths := []float64{15, 30, 22, 22, 30, 30, 30}
	header := []string{"Layer", "Diameter mm", "Capacity", "Pipes", "Turn mm", "Layer m", "Total m"}

	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 7, "LAYERS")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(220, 220, 220)
	for i, h := range header {
		pdf.CellFormat(widths[i], 6, h, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, l := range r.Layers {
		cells := []string{
			fmt.Sprintf("%d", l.Index),
			fmt.Sprintf("%.1f", l.Diameter),
			fmt.Sprintf("%d", l.Capacity),
			fmt.Sprintf("%.2f", l.Pipes),
			fmt.Sprintf("%.1f", l.PipeLength),
			fmt.Sprintf("%.3f", l.Length/1000),
			fmt.Sprintf("%.3f", l.Cumulative/1000),
		}
		for i, c := range cells {
			pdf.CellFormat(widths[i], 5, c, "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}

	stats := Stats(r.Layers)
	pdf.Ln(3)
	pdf.SetFont("Helvetica", "B", 9)
	pdf.Cell(0, 5, fmt.Sprintf("%d layers, %.2f pipe turns, %.3f m wound", stats.Layers, stats.Pipes, stats.Length))
	pdf.Ln(-1)
}
