package services

import (
	"fmt"
	"sort"
	"strings"
)

// BidRecord is one raw per-round offer as delivered by the tender endpoint.
// Records arrive in arbitrary order, interleaved across bidders, and a bidder
// may be absent in any round.
type BidRecord struct {
	Bidder string
	Round  int
	Amount float64
}

// Offer is a single round entry inside a BidderSeries. DeltaPct is nil for
// the first offer of a series (no prior round to compare against) and for any
// offer whose prior amount is zero.
type Offer struct {
	Round      int      `json:"round"`
	RoundLabel string   `json:"round_label"`
	Amount     float64  `json:"importo"`
	DeltaPct   *float64 `json:"delta,omitempty"`
}

// BidderSeries is the canonical per-bidder view of a tender: offers sorted
// strictly ascending by round, one offer per round.
type BidderSeries struct {
	Bidder             string   `json:"impresa"`
	Color              string   `json:"color,omitempty"`
	Offers             []Offer  `json:"offers"`
	CumulativeDeltaPct *float64 `json:"cumulative_delta,omitempty"`
}

// RoundLabel returns the display label for a round, falling back to
// "Round N" when the tender metadata carries none.
func RoundLabel(labels map[int]string, round int) string {
	if l, ok := labels[round]; ok && l != "" {
		return l
	}
	return fmt.Sprintf("Round %d", round)
}

// NormalizeBids canonicalizes raw bid records into one BidderSeries per
// bidder. Grouping is by trimmed bidder name; series come out in the order
// each bidder first appears in the input, and offers within a series are
// sorted ascending by round. Deltas are not computed here (see BuildTrend).
//
// Two records colliding on (bidder, round) with different amounts violate the
// upstream contract and return a *DataIntegrityError; exact duplicates
// collapse to a single offer.
func NormalizeBids(records []BidRecord, labels map[int]string) ([]BidderSeries, error) {
	byBidder := make(map[string][]BidRecord)
	var order []string

	for _, rec := range records {
		name := strings.TrimSpace(rec.Bidder)
		if name == "" {
			continue
		}
		if _, seen := byBidder[name]; !seen {
			order = append(order, name)
		}
		byBidder[name] = append(byBidder[name], rec)
	}

	series := make([]BidderSeries, 0, len(order))
	for _, name := range order {
		group := byBidder[name]
		sort.SliceStable(group, func(i, j int) bool { return group[i].Round < group[j].Round })

		offers := make([]Offer, 0, len(group))
		for _, rec := range group {
			if n := len(offers); n > 0 && offers[n-1].Round == rec.Round {
				if !sameAmount(offers[n-1].Amount, rec.Amount) {
					return nil, &DataIntegrityError{
						Bidder:  name,
						Round:   rec.Round,
						Amounts: [2]float64{offers[n-1].Amount, rec.Amount},
					}
				}
				continue
			}
			offers = append(offers, Offer{
				Round:      rec.Round,
				RoundLabel: RoundLabel(labels, rec.Round),
				Amount:     rec.Amount,
			})
		}
		series = append(series, BidderSeries{Bidder: name, Offers: offers})
	}
	return series, nil
}

// BidFilter narrows the raw record set before normalization. A zero value
// filters nothing. The same filtered set must feed every builder and the
// summary so that counts and charts agree.
type BidFilter struct {
	Bidder   string // keep only this bidder (trimmed-name match); empty = all
	MaxRound int    // keep only rounds <= MaxRound; 0 = all
}

// FilterBids applies the filter, preserving input order.
func FilterBids(records []BidRecord, f BidFilter) []BidRecord {
	if f.Bidder == "" && f.MaxRound == 0 {
		return records
	}
	want := strings.TrimSpace(f.Bidder)
	out := make([]BidRecord, 0, len(records))
	for _, rec := range records {
		if want != "" && strings.TrimSpace(rec.Bidder) != want {
			continue
		}
		if f.MaxRound > 0 && rec.Round > f.MaxRound {
			continue
		}
		out = append(out, rec)
	}
	return out
}
