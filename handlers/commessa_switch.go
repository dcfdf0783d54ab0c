package handlers

import (
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// HandleCommessaActivate sets the active commessa cookie (30-day expiry).
func HandleCommessaActivate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		commessaID := e.Request.PathValue("id")

		rec, err := app.FindRecordById("commesse", commessaID)
		if err != nil {
			return apiError(e, http.StatusNotFound, "Commessa not found")
		}

		http.SetCookie(e.Response, &http.Cookie{
			Name:     "active_commessa",
			Value:    commessaID,
			Path:     "/",
			MaxAge:   60 * 60 * 24 * 30,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		return e.JSON(http.StatusOK, map[string]string{
			"active": commessaID,
			"name":   rec.GetString("name"),
		})
	}
}

// HandleCommessaDeactivate clears the active commessa cookie.
func HandleCommessaDeactivate(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		http.SetCookie(e.Response, &http.Cookie{
			Name:   "active_commessa",
			Value:  "",
			Path:   "/",
			MaxAge: -1,
		})

		return e.JSON(http.StatusOK, map[string]string{"active": ""})
	}
}
