package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ImpresaListItem is one row of the bidder registry.
type ImpresaListItem struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	City          string `json:"city"`
	ContactPerson string `json:"contact_person"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
}

func HandleImpresaList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		impreseCol, err := app.FindCollectionByNameOrId("imprese")
		if err != nil {
			log.Printf("impresa_list: could not find imprese collection: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindRecordsByFilter(impreseCol, "", "name", 0, 0, nil)
		if err != nil {
			log.Printf("impresa_list: could not query imprese: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		items := make([]ImpresaListItem, 0, len(records))
		for _, rec := range records {
			items = append(items, ImpresaListItem{
				ID:            rec.Id,
				Name:          rec.GetString("name"),
				City:          rec.GetString("city"),
				ContactPerson: rec.GetString("contact_person"),
				Email:         rec.GetString("email"),
				Phone:         rec.GetString("phone"),
			})
		}

		return e.JSON(http.StatusOK, map[string]any{"imprese": items})
	}
}
