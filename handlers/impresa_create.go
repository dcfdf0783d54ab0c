package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tenderboard/collections"
)

// HandleImpresaCreate registers a bidder. Names that normalize to an
// existing registry entry are rejected so the same impresa cannot appear
// twice under different spellings.
func HandleImpresaCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return apiError(e, http.StatusBadRequest, "Impresa name is required")
		}

		impreseCol, err := app.FindCollectionByNameOrId("imprese")
		if err != nil {
			log.Printf("impresa_create: could not find imprese collection: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		key := collections.NormalizeImpresaName(name)
		existing, err := app.FindRecordsByFilter(
			impreseCol,
			"normalized_name = {:key}",
			"", 1, 0,
			map[string]any{"key": key},
		)
		if err == nil && len(existing) > 0 {
			return apiError(e, http.StatusConflict, "Impresa already registered")
		}

		rec := core.NewRecord(impreseCol)
		rec.Set("name", name)
		rec.Set("normalized_name", key)
		rec.Set("city", strings.TrimSpace(e.Request.FormValue("city")))
		rec.Set("contact_person", strings.TrimSpace(e.Request.FormValue("contact_person")))
		rec.Set("email", strings.TrimSpace(e.Request.FormValue("email")))
		rec.Set("phone", strings.TrimSpace(e.Request.FormValue("phone")))

		if err := app.Save(rec); err != nil {
			log.Printf("impresa_create: could not save impresa %q: %v", name, err)
			return apiError(e, http.StatusInternalServerError, "Failed to create impresa")
		}

		return e.JSON(http.StatusCreated, map[string]string{
			"id":   rec.Id,
			"name": rec.GetString("name"),
		})
	}
}
