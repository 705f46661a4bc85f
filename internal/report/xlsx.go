package report

import (
	"fmt"

	"github.com/alexiusacademia/gocoiler/internal/winding"
	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	layersSheet  = "Layers"
	batchSheet   = "Batch"
)

var layerHeader = []any{"Layer", "Diameter (mm)", "Capacity", "Pipes", "Turn length (mm)", "Layer length (m)", "Cumulative (m)"}

// WriteXLSX writes the summary and the layer table to an Excel workbook
func WriteXLSX(r Report, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	row := 1
	if err := f.SetCellValue(summarySheet, "A1", r.Title); err != nil {
		return err
	}
	if err := f.SetCellStyle(summarySheet, "A1", "A1", bold); err != nil {
		return err
	}
	row += 2

	for _, section := range []struct {
		name string
		rows []Row
	}{
		{"INPUT", r.Inputs()},
		{"RESULT", r.Outputs()},
	} {
		cell, _ := excelize.CoordinatesToCellName(1, row)
		if err := f.SetCellValue(summarySheet, cell, section.name); err != nil {
			return err
		}
		if err := f.SetCellStyle(summarySheet, cell, cell, bold); err != nil {
			return err
		}
		row++
		for _, sr := range section.rows {
			cell, _ := excelize.CoordinatesToCellName(1, row)
			if err := f.SetSheetRow(summarySheet, cell, &[]any{sr.Label, sr.Value, sr.Unit}); err != nil {
				return err
			}
			row++
		}
		row++
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 28); err != nil {
		return err
	}
	if err := f.SetColWidth(summarySheet, "B", "B", 30); err != nil {
		return err
	}

	if len(r.Layers) > 0 {
		if err := writeLayers(f, r.Layers, bold); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func writeLayers(f *excelize.File, layers []winding.Layer, headerStyle int) error {
	if _, err := f.NewSheet(layersSheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(layersSheet, "A1", &layerHeader); err != nil {
		return err
	}
	if err := f.SetCellStyle(layersSheet, "A1", "G1", headerStyle); err != nil {
		return err
	}

	for i, l := range layers {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		values := []any{l.Index, round(l.Diameter, 2), l.Capacity, l.Pipes, round(l.PipeLength, 2), round(l.Length/1000, 3), round(l.Cumulative/1000, 3)}
		if err := f.SetSheetRow(layersSheet, cell, &values); err != nil {
			return err
		}
	}

	stats := Stats(layers)
	total, _ := excelize.CoordinatesToCellName(1, len(layers)+3)
	if err := f.SetSheetRow(layersSheet, total, &[]any{"Total", nil, nil, stats.Pipes, nil, round(stats.Length, 3)}); err != nil {
		return err
	}
	maxCell, _ := excelize.CoordinatesToCellName(1, len(layers)+4)
	return f.SetSheetRow(layersSheet, maxCell, &[]any{"Max", round(stats.MaxDiameter, 2)})
}

// WriteBatchXLSX writes one row per batch job
func WriteBatchXLSX(title string, rows []BatchRow, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", batchSheet); err != nil {
		return err
	}
	header := []any{"Job", "Mode", "Pattern", "ND (mm)", "ID (mm)", "OD limit (mm)", "W (mm)", "L (m)",
		"Coil length (m)", "Outer diameter (mm)", "Bundle width (mm)", "Bundle height (mm)", "Layers", "Last layer", "Rotations", "Error"}
	if err := f.SetSheetRow(batchSheet, "A1", &header); err != nil {
		return err
	}
	if title != "" {
		if err := f.SetDocProps(&excelize.DocProperties{Title: title}); err != nil {
			return err
		}
	}

	for i, br := range rows {
		req := br.Request
		mode, pattern := br.Labels()
		values := []any{br.Name, mode, pattern, req.PipeDiameter, req.InnerDiameter}
		if req.Mode == winding.CoilLength {
			values = append(values, req.OuterDiameter, req.BundleWidth, nil)
		} else {
			values = append(values, nil, req.BundleWidth, req.PipeLength)
		}

		switch {
		case br.Err != nil:
			values = append(values, nil, nil, nil, nil, nil, nil, nil, br.Err.Error())
		case br.Result.CoilLength != nil:
			c := br.Result.CoilLength
			values = append(values, c.CoilLength, c.RealizedOuterDiameter, c.RealizedBundleWidth, nil, c.Layers, nil, nil, "")
		case br.Result.EndPosition != nil:
			e := br.Result.EndPosition
			values = append(values, nil, e.OuterDiameter, e.BundleWidth, e.BundleHeight, e.NumberOfLayers,
				fmt.Sprintf("%.2f/%d", e.PipesOnLastLayer, e.LastLayerCapacity), e.NumberOfRotations, "")
		}

		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(batchSheet, cell, &values); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}
