package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleCommessaDelete removes a commessa. WBS items, offers and offer items
// cascade with it (see collections.Setup).
func HandleCommessaDelete(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		commessaID := e.Request.PathValue("id")
		if commessaID == "" {
			return apiError(e, http.StatusBadRequest, "Missing commessa ID")
		}

		rec, err := app.FindRecordById("commesse", commessaID)
		if err != nil {
			log.Printf("commessa_delete: could not find commessa %s: %v", commessaID, err)
			return apiError(e, http.StatusNotFound, "Commessa not found")
		}

		if err := app.Delete(rec); err != nil {
			log.Printf("commessa_delete: failed to delete commessa %s: %v", commessaID, err)
			return apiError(e, http.StatusInternalServerError, "Failed to delete commessa")
		}

		log.Printf("commessa_delete: deleted commessa %s (%s)\n", commessaID, rec.GetString("name"))
		return e.JSON(http.StatusOK, map[string]string{"deleted": commessaID})
	}
}
