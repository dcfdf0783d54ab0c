package services

import (
	"testing"

	"github.com/xuri/excelize/v2"
)

func sampleExport(t *testing.T) ComparisonExport {
	t.Helper()

	series := mustNormalize(t, []BidRecord{
		{Bidder: "Rossi Costruzioni", Round: 1, Amount: 100000},
		{Bidder: "Rossi Costruzioni", Round: 2, Amount: 95000},
		{Bidder: "Bianchi SpA", Round: 1, Amount: 102000},
	})
	trend := BuildTrend(series, nil)
	waterfall := BuildWaterfall([]CategoryAggregate{
		{Category: "Strutture", BaselineAmount: 60000, BidAmount: 57000},
		{Category: "Impianti", BaselineAmount: 40000, BidAmount: 41500},
	})

	return ComparisonExport{
		Commessa:    "Nuovo Polo Scolastico",
		Code:        "CM-2026-001",
		GeneratedAt: "2026-03-01",
		Summary:     SummarizeFilter(nil, trend, nil),
		Trend:       trend,
		Waterfall:   waterfall,
	}
}

func TestGenerateComparisonExcel(t *testing.T) {
	result, err := GenerateComparisonExcel(sampleExport(t))
	if err != nil {
		t.Fatalf("GenerateComparisonExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateComparisonExcel() returned empty bytes")
	}

	f, err := excelize.OpenReader(bytesReader(result))
	if err != nil {
		t.Fatalf("result is not valid Excel: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 || sheets[0] != "Andamento" || sheets[1] != "Scostamenti" {
		t.Errorf("unexpected sheets: %v", sheets)
	}

	title, _ := f.GetCellValue("Andamento", "A1")
	if title != "Nuovo Polo Scolastico" {
		t.Errorf("title cell = %q", title)
	}

	// First trend data row: first bidder, first round.
	bidder, _ := f.GetCellValue("Andamento", "A6")
	if bidder != "Rossi Costruzioni" {
		t.Errorf("first trend row bidder = %q", bidder)
	}

	// First waterfall row keeps category order.
	cat, _ := f.GetCellValue("Scostamenti", "A2")
	if cat != "Strutture" {
		t.Errorf("first waterfall category = %q", cat)
	}
	total, _ := f.GetCellValue("Scostamenti", "A4")
	if total != "Totale" {
		t.Errorf("totals row label = %q", total)
	}
}

func TestGenerateComparisonExcel_Empty(t *testing.T) {
	result, err := GenerateComparisonExcel(ComparisonExport{
		Commessa:    "Vuota",
		GeneratedAt: "2026-03-01",
	})
	if err != nil {
		t.Fatalf("GenerateComparisonExcel() error = %v", err)
	}
	if len(result) == 0 {
		t.Fatal("GenerateComparisonExcel() returned empty bytes")
	}
}
