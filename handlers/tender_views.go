package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tenderboard/services"
)

// HandleTenderTrend returns the per-bidder offer evolution across rounds.
func HandleTenderTrend(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		commessaID := e.Request.PathValue("id")

		data, err := loadTenderData(app, e, commessaID)
		if err != nil {
			log.Printf("tender_trend: could not load tender data for %s: %v", commessaID, err)
			return dataError(e, err)
		}

		return e.JSON(http.StatusOK, map[string]any{
			"commessa": data.commessa.Id,
			"series":   services.BuildTrend(data.series, nil),
			"summary":  data.summary(),
		})
	}
}

// HandleTenderWaterfall returns the per-category variance between the WBS
// baseline and the averaged bid.
func HandleTenderWaterfall(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		commessaID := e.Request.PathValue("id")

		data, err := loadTenderData(app, e, commessaID)
		if err != nil {
			log.Printf("tender_waterfall: could not load tender data for %s: %v", commessaID, err)
			return dataError(e, err)
		}

		aggregates, err := loadCategoryAggregates(app, commessaID, data.filter)
		if err != nil {
			log.Printf("tender_waterfall: could not load category aggregates for %s: %v", commessaID, err)
			return dataError(e, err)
		}

		return e.JSON(http.StatusOK, map[string]any{
			"commessa":  data.commessa.Id,
			"waterfall": services.BuildWaterfall(averageByCategory(aggregates)),
			"summary":   data.summary(),
		})
	}
}

// HandleTenderHeatmap returns the bidder × category competitiveness matrix.
func HandleTenderHeatmap(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		commessaID := e.Request.PathValue("id")

		data, err := loadTenderData(app, e, commessaID)
		if err != nil {
			log.Printf("tender_heatmap: could not load tender data for %s: %v", commessaID, err)
			return dataError(e, err)
		}

		aggregates, err := loadCategoryAggregates(app, commessaID, data.filter)
		if err != nil {
			log.Printf("tender_heatmap: could not load category aggregates for %s: %v", commessaID, err)
			return dataError(e, err)
		}

		matrix, err := services.BuildHeatmap(aggregates)
		if err != nil {
			log.Printf("tender_heatmap: inconsistent category data for %s: %v", commessaID, err)
			return dataError(e, err)
		}

		return e.JSON(http.StatusOK, map[string]any{
			"commessa": data.commessa.Id,
			"heatmap":  matrix,
			"summary":  data.summary(),
		})
	}
}

// HandleTenderSummary returns only the filter metadata, computed over the
// same filtered set the chart endpoints use for identical parameters.
func HandleTenderSummary(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		commessaID := e.Request.PathValue("id")

		data, err := loadTenderData(app, e, commessaID)
		if err != nil {
			log.Printf("tender_summary: could not load tender data for %s: %v", commessaID, err)
			return dataError(e, err)
		}

		return e.JSON(http.StatusOK, map[string]any{
			"commessa": data.commessa.Id,
			"summary":  data.summary(),
		})
	}
}
