package handlers

import (
	"strconv"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tenderboard/services"
)

// tenderData is the shared, already-filtered input of the four tender views.
// Every view of one request is computed from the same normalized series so
// that summary counts and chart contents can never disagree.
type tenderData struct {
	commessa *core.Record
	all      []services.BidRecord
	labels   map[int]string
	series   []services.BidderSeries
	filter   services.BidFilter
}

// parseBidFilter reads the ?impresa= and ?max_round= query parameters.
func parseBidFilter(e *core.RequestEvent) services.BidFilter {
	f := services.BidFilter{
		Bidder: strings.TrimSpace(e.Request.URL.Query().Get("impresa")),
	}
	if raw := e.Request.URL.Query().Get("max_round"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			f.MaxRound = n
		}
	}
	return f
}

// loadTenderData fetches a commessa's offers, applies the request filter and
// normalizes the result. A *services.DataIntegrityError from the normalizer
// is returned as-is for the handler to surface.
func loadTenderData(app *pocketbase.PocketBase, e *core.RequestEvent, commessaID string) (*tenderData, error) {
	commessa, err := app.FindRecordById("commesse", commessaID)
	if err != nil {
		return nil, err
	}

	offersCol, err := app.FindCollectionByNameOrId("offers")
	if err != nil {
		return nil, err
	}
	records, err := app.FindRecordsByFilter(
		offersCol,
		"commessa = {:commessaId}",
		"", 0, 0,
		map[string]any{"commessaId": commessaID},
	)
	if err != nil {
		return nil, err
	}

	data := &tenderData{
		commessa: commessa,
		labels:   make(map[int]string),
		filter:   parseBidFilter(e),
	}
	for _, rec := range records {
		round := int(rec.GetFloat("round"))
		data.all = append(data.all, services.BidRecord{
			Bidder: rec.GetString("impresa"),
			Round:  round,
			Amount: rec.GetFloat("importo"),
		})
		if label := rec.GetString("round_label"); label != "" {
			data.labels[round] = label
		}
	}

	filtered := services.FilterBids(data.all, data.filter)
	data.series, err = services.NormalizeBids(filtered, data.labels)
	if err != nil {
		return nil, err
	}
	return data, nil
}

// summary derives the filter metadata from exactly the series the builders
// consume.
func (d *tenderData) summary() services.FilterSummary {
	return services.SummarizeFilter(d.all, d.series, d.labels)
}

// loadCategoryAggregates fetches the per-category offer items of a commessa,
// keyed to the baseline amounts of the organizational WBS level. Categories
// bid on but absent from the WBS get a zero baseline, which the builders
// treat as the undefined-percent case.
func loadCategoryAggregates(app *pocketbase.PocketBase, commessaID string, filter services.BidFilter) ([]services.BidderCategories, error) {
	forest, err := loadWbsForest(app, commessaID)
	if err != nil {
		return nil, err
	}
	baselines := make(map[string]float64)
	for _, cb := range services.CategoriesAtLevel(forest, organizationalEntryLevel) {
		baselines[cb.Category] = cb.Amount
	}

	itemsCol, err := app.FindCollectionByNameOrId("offer_items")
	if err != nil {
		return nil, err
	}
	records, err := app.FindRecordsByFilter(
		itemsCol,
		"commessa = {:commessaId}",
		"", 0, 0,
		map[string]any{"commessaId": commessaID},
	)
	if err != nil {
		return nil, err
	}

	byBidder := make(map[string]int)
	var out []services.BidderCategories
	for _, rec := range records {
		bidder := strings.TrimSpace(rec.GetString("impresa"))
		if bidder == "" {
			continue
		}
		if filter.Bidder != "" && bidder != strings.TrimSpace(filter.Bidder) {
			continue
		}

		i, seen := byBidder[bidder]
		if !seen {
			byBidder[bidder] = len(out)
			out = append(out, services.BidderCategories{Bidder: bidder})
			i = len(out) - 1
		}

		categoria := rec.GetString("categoria")
		out[i].Rows = append(out[i].Rows, services.CategoryAggregate{
			Category:       categoria,
			BaselineAmount: baselines[categoria],
			BidAmount:      rec.GetFloat("importo"),
		})
	}
	return out, nil
}

// averageByCategory folds per-bidder category rows into one averaged row per
// category for the waterfall: the bid amount is the mean across the bidders
// that priced the category. Category order follows first appearance, which
// mirrors WBS ordering in well-formed data.
func averageByCategory(input []services.BidderCategories) []services.CategoryAggregate {
	type acc struct {
		baseline float64
		sum      float64
		count    int
	}
	var order []string
	accs := make(map[string]*acc)

	for _, bc := range input {
		for _, row := range bc.Rows {
			a, seen := accs[row.Category]
			if !seen {
				a = &acc{baseline: row.BaselineAmount}
				accs[row.Category] = a
				order = append(order, row.Category)
			}
			a.sum += row.BidAmount
			a.count++
		}
	}

	out := make([]services.CategoryAggregate, 0, len(order))
	for _, cat := range order {
		a := accs[cat]
		out = append(out, services.CategoryAggregate{
			Category:       cat,
			BaselineAmount: a.baseline,
			BidAmount:      a.sum / float64(a.count),
		})
	}
	return out
}
