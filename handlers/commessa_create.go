package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

var commessaStatuses = map[string]bool{
	"active":    true,
	"tendering": true,
	"awarded":   true,
	"completed": true,
}

// HandleCommessaCreate creates a commessa from form values. Status defaults
// to "active" when omitted.
func HandleCommessaCreate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		name := strings.TrimSpace(e.Request.FormValue("name"))
		if name == "" {
			return apiError(e, http.StatusBadRequest, "Commessa name is required")
		}

		status := e.Request.FormValue("status")
		if status == "" {
			status = "active"
		}
		if !commessaStatuses[status] {
			return apiError(e, http.StatusBadRequest, "Invalid status")
		}

		commesseCol, err := app.FindCollectionByNameOrId("commesse")
		if err != nil {
			log.Printf("commessa_create: could not find commesse collection: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		rec := core.NewRecord(commesseCol)
		rec.Set("name", name)
		rec.Set("code", strings.TrimSpace(e.Request.FormValue("code")))
		rec.Set("client", strings.TrimSpace(e.Request.FormValue("client")))
		rec.Set("status", status)

		if err := app.Save(rec); err != nil {
			log.Printf("commessa_create: could not save commessa %q: %v", name, err)
			return apiError(e, http.StatusInternalServerError, "Failed to create commessa")
		}

		return e.JSON(http.StatusCreated, map[string]string{
			"id":   rec.Id,
			"name": rec.GetString("name"),
		})
	}
}
