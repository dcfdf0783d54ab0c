package handlers

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tenderboard/services"
)

// buildComparisonExport assembles the full comparison report for a commessa
// under the request's filter: trend, averaged waterfall and summary, all from
// the same filtered input.
func buildComparisonExport(app *pocketbase.PocketBase, e *core.RequestEvent, commessaID string) (services.ComparisonExport, error) {
	data, err := loadTenderData(app, e, commessaID)
	if err != nil {
		return services.ComparisonExport{}, err
	}

	aggregates, err := loadCategoryAggregates(app, commessaID, data.filter)
	if err != nil {
		return services.ComparisonExport{}, err
	}

	return services.ComparisonExport{
		Commessa:    data.commessa.GetString("name"),
		Code:        data.commessa.GetString("code"),
		GeneratedAt: time.Now().Format("02-01-2006"),
		Summary:     data.summary(),
		Trend:       services.BuildTrend(data.series, nil),
		Waterfall:   services.BuildWaterfall(averageByCategory(aggregates)),
	}, nil
}

// exportFilename builds a safe download filename from the commessa code or name.
func exportFilename(data services.ComparisonExport, ext string) string {
	base := data.Code
	if base == "" {
		base = data.Commessa
	}
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		}
		return '_'
	}, base)
	if base == "" {
		base = "confronto"
	}
	return fmt.Sprintf("confronto_%s.%s", base, ext)
}

// HandleTenderExportExcel streams the comparison report as an Excel workbook.
func HandleTenderExportExcel(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		commessaID := e.Request.PathValue("id")

		data, err := buildComparisonExport(app, e, commessaID)
		if err != nil {
			log.Printf("tender_export: could not build export for %s: %v", commessaID, err)
			return dataError(e, err)
		}

		fileBytes, err := services.GenerateComparisonExcel(data)
		if err != nil {
			log.Printf("tender_export: excel generation failed for %s: %v", commessaID, err)
			return apiError(e, http.StatusInternalServerError, "Failed to generate Excel file")
		}

		e.Response.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(data, "xlsx")))
		e.Response.WriteHeader(http.StatusOK)
		_, err = e.Response.Write(fileBytes)
		return err
	}
}

// HandleTenderExportPDF streams the comparison report as a PDF document.
func HandleTenderExportPDF(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		commessaID := e.Request.PathValue("id")

		data, err := buildComparisonExport(app, e, commessaID)
		if err != nil {
			log.Printf("tender_export: could not build export for %s: %v", commessaID, err)
			return dataError(e, err)
		}

		fileBytes, err := services.GenerateComparisonPDF(data)
		if err != nil {
			log.Printf("tender_export: pdf generation failed for %s: %v", commessaID, err)
			return apiError(e, http.StatusInternalServerError, "Failed to generate PDF file")
		}

		e.Response.Header().Set("Content-Type", "application/pdf")
		e.Response.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(data, "pdf")))
		e.Response.WriteHeader(http.StatusOK)
		_, err = e.Response.Write(fileBytes)
		return err
	}
}
