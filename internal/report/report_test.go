package report

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexiusacademia/gocoiler/internal/winding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func solvedReport(t *testing.T, r winding.Request) Report {
	t.Helper()
	rep := Report{Title: "Drum test", Request: r, Generated: time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)}
	res, err := winding.Solve(r, winding.Options{OnLayer: func(l winding.Layer) {
		rep.Layers = append(rep.Layers, l)
	}})
	require.NoError(t, err)
	rep.Result = res
	return rep
}

func coilRequest() winding.Request {
	return winding.Request{
		PipeDiameter:  20,
		InnerDiameter: 500,
		OuterDiameter: 800,
		BundleWidth:   2000,
		Mode:          winding.CoilLength,
	}
}

func TestStats(t *testing.T) {
	rep := solvedReport(t, coilRequest())
	stats := Stats(rep.Layers)

	assert.Equal(t, 8, stats.Layers)
	assert.Equal(t, 796.0, stats.Pipes)
	assert.InDelta(t, rep.Result.CoilLength.CoilLength, stats.Length, 0.001)
	assert.InDelta(t, 762.49, stats.MaxDiameter, 0.01)

	assert.Equal(t, LayerStats{}, Stats(nil))
}

func TestInputsAndOutputs(t *testing.T) {
	rep := solvedReport(t, coilRequest())
	assert.Len(t, rep.Inputs(), 6)
	assert.Equal(t, "1603.425", rep.Outputs()[0].Value)

	end := coilRequest()
	end.Mode = winding.EndPosition
	end.PipeLength = 100
	rep = solvedReport(t, end)
	inputs := rep.Inputs()
	assert.Equal(t, "Pipe length (L)", inputs[len(inputs)-1].Label)
	assert.Equal(t, "61.25 / 100", rep.Outputs()[4].Value)
}

func TestWriteXLSX(t *testing.T) {
	rep := solvedReport(t, coilRequest())
	path := filepath.Join(t.TempDir(), "coil.xlsx")
	require.NoError(t, WriteXLSX(rep, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(layersSheet)
	require.NoError(t, err)
	// header, 8 layers, blank, total, max
	require.Len(t, rows, 12)
	assert.Equal(t, "Layer", rows[0][0])
	assert.Equal(t, "1", rows[1][0])
	assert.Equal(t, "Total", rows[10][0])
	assert.Equal(t, "", rows[10][1])
	assert.Equal(t, "796", rows[10][3])
	assert.Equal(t, []string{"Max", "762.49"}, rows[11])

	title, err := f.GetCellValue(summarySheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Drum test", title)
}

func TestWriteBatchXLSX(t *testing.T) {
	ok := solvedReport(t, coilRequest())
	bad := coilRequest()
	bad.PipeDiameter = 0

	rows := []BatchRow{
		{Name: "good", Request: ok.Request, Result: ok.Result},
		{Name: "bad", Request: bad, Err: errors.New("pipe diameter must be greater than 0")},
		{Name: "typo", RawPattern: "spiral", Err: errors.New(`unknown winding pattern "spiral"`)},
	}
	path := filepath.Join(t.TempDir(), "batch.xlsx")
	require.NoError(t, WriteBatchXLSX("batch", rows, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows(batchSheet)
	require.NoError(t, err)
	require.Len(t, got, 4)
	assert.Equal(t, "good", got[1][0])
	assert.Equal(t, "1603.425", got[1][8])
	assert.Equal(t, "pipe diameter must be greater than 0", got[2][len(got[2])-1])
	assert.Equal(t, []string{"typo", "-", "spiral"}, got[3][:3])
}

func TestBatchRowLabels(t *testing.T) {
	row := BatchRow{Request: winding.Request{Mode: winding.EndPosition, Pattern: winding.EvenLayersOffset}}
	mode, pattern := row.Labels()
	assert.Equal(t, "end-position", mode)
	assert.Equal(t, "offset", pattern)

	row = BatchRow{RawMode: "spool", Err: errors.New("unknown mode")}
	mode, pattern = row.Labels()
	assert.Equal(t, "spool", mode)
	assert.Equal(t, "-", pattern)
}

func TestWritePDF(t *testing.T) {
	rep := solvedReport(t, coilRequest())
	path := filepath.Join(t.TempDir(), "coil.pdf")
	require.NoError(t, WritePDF(rep, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "%PDF", string(data[:4]))
}
