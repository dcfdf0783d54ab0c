package handlers

import (
	"context"
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type contextKey string

const ActiveCommessaKey contextKey = "activeCommessa"

// ActiveCommessa is the currently selected commessa, resolved once per
// request from the "active_commessa" cookie.
type ActiveCommessa struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
}

// GetActiveCommessa extracts the active commessa from the request context.
func GetActiveCommessa(r *http.Request) *ActiveCommessa {
	if val, ok := r.Context().Value(ActiveCommessaKey).(*ActiveCommessa); ok {
		return val
	}
	return nil
}

// ActiveCommessaMiddleware reads the "active_commessa" cookie, loads the
// commessa record and stores it in the request context so handlers can scope
// queries to it without re-resolving the cookie.
func ActiveCommessaMiddleware(app *pocketbase.PocketBase) func(e *core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		var active *ActiveCommessa

		cookie, err := e.Request.Cookie("active_commessa")
		if err == nil && cookie.Value != "" {
			rec, err := app.FindRecordById("commesse", cookie.Value)
			if err == nil {
				active = &ActiveCommessa{
					ID:   rec.Id,
					Name: rec.GetString("name"),
					Code: rec.GetString("code"),
				}
			} else {
				log.Printf("middleware: active commessa %s not found, clearing cookie", cookie.Value)
				http.SetCookie(e.Response, &http.Cookie{
					Name:   "active_commessa",
					Value:  "",
					Path:   "/",
					MaxAge: -1,
				})
			}
		}

		ctx := context.WithValue(e.Request.Context(), ActiveCommessaKey, active)
		e.Request = e.Request.WithContext(ctx)

		return e.Next()
	}
}
