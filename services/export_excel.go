package services

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	trendSheet     = "Andamento"
	waterfallSheet = "Scostamenti"
)

// GenerateComparisonExcel renders a ComparisonExport as an Excel workbook
// with one sheet for the round-by-round trend and one for the per-category
// waterfall, and returns the file contents as a byte slice.
func GenerateComparisonExcel(data ComparisonExport) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), trendSheet); err != nil {
		return nil, fmt.Errorf("set sheet name: %w", err)
	}
	if _, err := f.NewSheet(waterfallSheet); err != nil {
		return nil, fmt.Errorf("create waterfall sheet: %w", err)
	}

	// ── Styles ──────────────────────────────────────────────────────────

	titleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 16},
	})
	if err != nil {
		return nil, fmt.Errorf("create title style: %w", err)
	}

	subtitleStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Size: 11},
	})
	if err != nil {
		return nil, fmt.Errorf("create subtitle style: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#333333"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create header style: %w", err)
	}

	cellStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Size: 10},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create cell style: %w", err)
	}

	totalStyle, err := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true, Size: 11},
		Border: thinBorders(),
	})
	if err != nil {
		return nil, fmt.Errorf("create total style: %w", err)
	}

	// ── Trend sheet ─────────────────────────────────────────────────────

	widths := []float64{28, 16, 18, 12}
	for i, col := range []string{"A", "B", "C", "D"} {
		if err := f.SetColWidth(trendSheet, col, col, widths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	if err := f.MergeCell(trendSheet, "A1", "D1"); err != nil {
		return nil, fmt.Errorf("merge title: %w", err)
	}
	f.SetCellValue(trendSheet, "A1", sanitizeExcelCell(data.Commessa))
	f.SetCellStyle(trendSheet, "A1", "D1", titleStyle)

	if data.Code != "" {
		f.SetCellValue(trendSheet, "A2", "Commessa: "+data.Code)
		f.SetCellStyle(trendSheet, "A2", "A2", subtitleStyle)
	}
	f.SetCellValue(trendSheet, "A3", fmt.Sprintf("Imprese: %d — Offerte: %d/%d — %s",
		len(data.Summary.ImpreseAttive),
		data.Summary.OfferteConsiderate,
		data.Summary.OfferteTotali,
		data.GeneratedAt))
	f.SetCellStyle(trendSheet, "A3", "A3", subtitleStyle)

	for i, h := range []string{"Impresa", "Round", "Importo", "Delta"} {
		f.SetCellValue(trendSheet, fmt.Sprintf("%c5", 'A'+i), h)
	}
	f.SetCellStyle(trendSheet, "A5", "D5", headerStyle)

	rowN := 6
	for _, r := range data.TrendRows() {
		rowStr := fmt.Sprintf("%d", rowN)
		f.SetCellValue(trendSheet, "A"+rowStr, sanitizeExcelCell(r.Bidder))
		f.SetCellValue(trendSheet, "B"+rowStr, sanitizeExcelCell(r.RoundLabel))
		f.SetCellValue(trendSheet, "C"+rowStr, FormatEUR(r.Amount))
		f.SetCellValue(trendSheet, "D"+rowStr, FormatPct(r.DeltaPct))
		f.SetCellStyle(trendSheet, "A"+rowStr, "D"+rowStr, cellStyle)
		rowN++
	}

	// One cumulative line per series after the offers.
	rowN++
	for _, s := range data.Trend {
		if s.CumulativeDeltaPct == nil {
			continue
		}
		rowStr := fmt.Sprintf("%d", rowN)
		f.SetCellValue(trendSheet, "A"+rowStr, sanitizeExcelCell(s.Bidder))
		f.SetCellValue(trendSheet, "B"+rowStr, "Totale gara")
		f.SetCellValue(trendSheet, "D"+rowStr, FormatPct(s.CumulativeDeltaPct))
		f.SetCellStyle(trendSheet, "A"+rowStr, "D"+rowStr, totalStyle)
		rowN++
	}

	// ── Waterfall sheet ─────────────────────────────────────────────────

	wfWidths := []float64{34, 18, 18, 18, 12}
	for i, col := range []string{"A", "B", "C", "D", "E"} {
		if err := f.SetColWidth(waterfallSheet, col, col, wfWidths[i]); err != nil {
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	for i, h := range []string{"Categoria", "Base d'asta", "Offerta", "Scostamento", "Scost. %"} {
		f.SetCellValue(waterfallSheet, fmt.Sprintf("%c1", 'A'+i), h)
	}
	f.SetCellStyle(waterfallSheet, "A1", "E1", headerStyle)

	rowN = 2
	for _, c := range data.Waterfall.Categories {
		rowStr := fmt.Sprintf("%d", rowN)
		f.SetCellValue(waterfallSheet, "A"+rowStr, sanitizeExcelCell(c.Category))
		f.SetCellValue(waterfallSheet, "B"+rowStr, FormatEUR(c.BaselineAmount))
		f.SetCellValue(waterfallSheet, "C"+rowStr, FormatEUR(c.BidAmount))
		f.SetCellValue(waterfallSheet, "D"+rowStr, FormatEUR(c.AbsoluteDelta))
		f.SetCellValue(waterfallSheet, "E"+rowStr, FormatPct(c.PercentDelta))
		f.SetCellStyle(waterfallSheet, "A"+rowStr, "E"+rowStr, cellStyle)
		rowN++
	}

	totalRow := fmt.Sprintf("%d", rowN)
	f.SetCellValue(waterfallSheet, "A"+totalRow, "Totale")
	f.SetCellValue(waterfallSheet, "B"+totalRow, FormatEUR(data.Waterfall.BaselineTotal))
	f.SetCellValue(waterfallSheet, "C"+totalRow, FormatEUR(data.Waterfall.BidTotal))
	f.SetCellValue(waterfallSheet, "D"+totalRow, FormatEUR(data.Waterfall.BidTotal-data.Waterfall.BaselineTotal))
	f.SetCellStyle(waterfallSheet, "A"+totalRow, "E"+totalRow, totalStyle)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prevents formula injection by prefixing dangerous leading
// characters with a single quote. Excel interprets cells starting with =, +, -,
// @, \t or \r as formulas, which can be abused for code execution or data theft.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

// thinBorders returns a slice of excelize.Border for thin borders on all four sides.
func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{
			Type:  side,
			Color: "#000000",
			Style: 1, // thin
		}
	}
	return borders
}
