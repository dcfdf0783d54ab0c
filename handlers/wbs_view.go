package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tenderboard/services"
)

// organizationalEntryLevel is the WBS level the tender views aggregate
// against: the first organizational level below the spatial breakdown.
const organizationalEntryLevel = 6

// loadWbsForest fetches the WBS rows of a commessa in source order and
// assembles them into a forest.
func loadWbsForest(app *pocketbase.PocketBase, commessaID string) ([]*services.WbsNode, error) {
	wbsCol, err := app.FindCollectionByNameOrId("wbs_items")
	if err != nil {
		return nil, err
	}

	records, err := app.FindRecordsByFilter(
		wbsCol,
		"commessa = {:commessaId}",
		"sort_order", 0, 0,
		map[string]any{"commessaId": commessaID},
	)
	if err != nil {
		return nil, err
	}

	rows := make([]services.WbsRow, 0, len(records))
	for _, rec := range records {
		rows = append(rows, services.WbsRow{
			ID:          rec.Id,
			ParentID:    rec.GetString("parent_id"),
			Code:        rec.GetString("code"),
			Description: rec.GetString("description"),
			Level:       int(rec.GetFloat("level")),
			Importo:     rec.GetFloat("importo"),
		})
	}
	return services.BuildWbsForest(rows), nil
}

// HandleWbsView returns the WBS forest of a commessa, with the stored totals
// per node plus a recomputed grand total for the consumers that want derived
// additivity.
func HandleWbsView(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		commessaID := e.Request.PathValue("id")
		if commessaID == "" {
			return apiError(e, http.StatusBadRequest, "Missing commessa ID")
		}

		commessa, err := app.FindRecordById("commesse", commessaID)
		if err != nil {
			log.Printf("wbs_view: could not find commessa %s: %v", commessaID, err)
			return apiError(e, http.StatusNotFound, "Commessa not found")
		}

		forest, err := loadWbsForest(app, commessaID)
		if err != nil {
			log.Printf("wbs_view: could not load WBS for commessa %s: %v", commessaID, err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		var storedTotal, leafTotal float64
		for _, root := range forest {
			storedTotal += root.Importo
			leafTotal += services.SumImporti(root)
		}

		return e.JSON(http.StatusOK, map[string]any{
			"commessa":          commessa.Id,
			"name":              commessa.GetString("name"),
			"code":              commessa.GetString("code"),
			"tree":              forest,
			"spatial_max_level": 5,
			"importo_totale":    storedTotal,
			"importo_foglie":    leafTotal,
		})
	}
}
