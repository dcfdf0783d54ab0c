package handlers

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/pocketbase/pocketbase/core"

	"tenderboard/services"
)

// apiError writes a JSON error body with the given status.
func apiError(e *core.RequestEvent, statusCode int, message string) error {
	return e.JSON(statusCode, map[string]string{"error": message})
}

// dataError maps an analytics-core error onto the HTTP surface: integrity
// conflicts become 409 with the conflict detail in the body, anything else a
// generic 500. The core surfaces conflicts instead of guessing; deciding what
// the user sees happens here.
func dataError(e *core.RequestEvent, err error) error {
	var integrity *services.DataIntegrityError
	if errors.As(err, &integrity) {
		return apiError(e, http.StatusConflict, integrity.Error())
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apiError(e, http.StatusNotFound, "Commessa not found")
	}
	return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
}
