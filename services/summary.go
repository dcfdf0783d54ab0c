package services

// RoundMeta describes one bidding round for the filter UI.
type RoundMeta struct {
	Numero       int      `json:"numero"`
	Label        string   `json:"label"`
	Imprese      []string `json:"imprese"`
	ImpreseCount int      `json:"imprese_count"`
}

// FilterSummary is the descriptive metadata shown beside the comparison
// charts: how many offers exist overall, how many survived the active
// filter, and which bidders are currently in play.
type FilterSummary struct {
	OfferteTotali      int         `json:"offerte_totali"`
	OfferteConsiderate int         `json:"offerte_considerate"`
	ImpreseAttive      []string    `json:"imprese_attive"`
	Rounds             []RoundMeta `json:"rounds"`
}

// SummarizeFilter derives the summary from the full raw record set and the
// filtered series actually handed to the builders. It never re-applies the
// filter itself: counting the builders' own input is what keeps the label
// "3 imprese" consistent with a chart that draws three lines.
func SummarizeFilter(all []BidRecord, filtered []BidderSeries, labels map[int]string) FilterSummary {
	summary := FilterSummary{
		OfferteTotali: len(all),
		ImpreseAttive: make([]string, 0, len(filtered)),
	}

	roundIdx := make(map[int]int)
	for _, s := range filtered {
		summary.ImpreseAttive = append(summary.ImpreseAttive, s.Bidder)
		summary.OfferteConsiderate += len(s.Offers)
		for _, offer := range s.Offers {
			i, seen := roundIdx[offer.Round]
			if !seen {
				roundIdx[offer.Round] = len(summary.Rounds)
				summary.Rounds = append(summary.Rounds, RoundMeta{
					Numero: offer.Round,
					Label:  RoundLabel(labels, offer.Round),
				})
				i = len(summary.Rounds) - 1
			}
			summary.Rounds[i].Imprese = append(summary.Rounds[i].Imprese, s.Bidder)
			summary.Rounds[i].ImpreseCount++
		}
	}

	// Rounds surface in ascending order regardless of which bidder
	// introduced them first.
	for i := 1; i < len(summary.Rounds); i++ {
		for j := i; j > 0 && summary.Rounds[j-1].Numero > summary.Rounds[j].Numero; j-- {
			summary.Rounds[j-1], summary.Rounds[j] = summary.Rounds[j], summary.Rounds[j-1]
		}
	}
	return summary
}
