package services

// ColorFunc assigns a display color to a bidder series. Color choice is a
// presentation concern; the builder only records whatever the lookup returns.
type ColorFunc func(bidder string, index int) string

// defaultPalette matches the chart palette used by the comparison views.
var defaultPalette = []string{
	"#2563eb", "#dc2626", "#16a34a", "#d97706",
	"#9333ea", "#0891b2", "#db2777", "#65a30d",
}

// DefaultColor cycles through the built-in palette by series index.
func DefaultColor(_ string, index int) string {
	return defaultPalette[index%len(defaultPalette)]
}

// pctDelta returns (curr-base)/base*100, or nil when base is zero. Monetary
// baselines are never legitimately zero, but malformed input must not leak
// Inf or NaN into chart data.
func pctDelta(curr, base float64) *float64 {
	if base == 0 {
		return nil
	}
	v := (curr - base) / base * 100
	return &v
}

// BuildTrend fills in the evolution metrics of each series: per-offer
// round-over-round percentage deltas and the series-wide cumulative delta.
// The first offer of a series keeps a nil delta — "no prior round" is not
// the same as "no change". Series order is preserved from the normalized
// input so that color assignment stays stable across refreshes.
func BuildTrend(series []BidderSeries, colorFor ColorFunc) []BidderSeries {
	if colorFor == nil {
		colorFor = DefaultColor
	}

	out := make([]BidderSeries, len(series))
	for i, s := range series {
		offers := make([]Offer, len(s.Offers))
		copy(offers, s.Offers)

		for j := 1; j < len(offers); j++ {
			offers[j].DeltaPct = pctDelta(offers[j].Amount, offers[j-1].Amount)
		}

		t := BidderSeries{
			Bidder: s.Bidder,
			Color:  colorFor(s.Bidder, i),
			Offers: offers,
		}
		if len(offers) >= 2 {
			t.CumulativeDeltaPct = pctDelta(offers[len(offers)-1].Amount, offers[0].Amount)
		}
		out[i] = t
	}
	return out
}
