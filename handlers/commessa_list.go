package handlers

import (
	"log"
	"net/http"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// CommessaListItem is one row of the commesse overview.
type CommessaListItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Code       string `json:"code"`
	Client     string `json:"client"`
	Status     string `json:"status"`
	WbsCount   int    `json:"wbs_count"`
	OfferCount int    `json:"offer_count"`
	IsActive   bool   `json:"is_active"`
}

func HandleCommessaList(app *pocketbase.PocketBase) func(*core.RequestEvent) error {
	return func(e *core.RequestEvent) error {
		commesseCol, err := app.FindCollectionByNameOrId("commesse")
		if err != nil {
			log.Printf("commessa_list: could not find commesse collection: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		records, err := app.FindAllRecords(commesseCol)
		if err != nil {
			log.Printf("commessa_list: could not query commesse: %v", err)
			return apiError(e, http.StatusInternalServerError, "Something went wrong. Please try again.")
		}

		wbsCol, _ := app.FindCollectionByNameOrId("wbs_items")
		offersCol, _ := app.FindCollectionByNameOrId("offers")
		active := GetActiveCommessa(e.Request)

		items := make([]CommessaListItem, 0, len(records))
		for _, rec := range records {
			item := CommessaListItem{
				ID:       rec.Id,
				Name:     rec.GetString("name"),
				Code:     rec.GetString("code"),
				Client:   rec.GetString("client"),
				Status:   rec.GetString("status"),
				IsActive: active != nil && active.ID == rec.Id,
			}

			if wbsCol != nil {
				wbsItems, err := app.FindRecordsByFilter(
					wbsCol,
					"commessa = {:commessaId}",
					"", 0, 0,
					map[string]any{"commessaId": rec.Id},
				)
				if err == nil {
					item.WbsCount = len(wbsItems)
				}
			}
			if offersCol != nil {
				offers, err := app.FindRecordsByFilter(
					offersCol,
					"commessa = {:commessaId}",
					"", 0, 0,
					map[string]any{"commessaId": rec.Id},
				)
				if err == nil {
					item.OfferCount = len(offers)
				}
			}

			items = append(items, item)
		}

		return e.JSON(http.StatusOK, map[string]any{"commesse": items})
	}
}
