package services

// CategoryAggregate is one pre-aggregated category row: the project baseline
// (from the WBS/computo metrico) against an offered amount.
type CategoryAggregate struct {
	Category       string  `json:"categoria"`
	BaselineAmount float64 `json:"baseline"`
	BidAmount      float64 `json:"importo"`
}

// CategoryComparison is one waterfall step. PercentDelta is nil when the
// baseline is zero.
type CategoryComparison struct {
	Category       string   `json:"categoria"`
	BaselineAmount float64  `json:"baseline"`
	BidAmount      float64  `json:"importo"`
	AbsoluteDelta  float64  `json:"delta"`
	PercentDelta   *float64 `json:"delta_pct,omitempty"`
}

// WaterfallResult carries the per-category steps plus the two grand totals.
// The totals are summed here rather than trusted from upstream, so the chart
// and the figures beside it can never disagree.
type WaterfallResult struct {
	Categories    []CategoryComparison `json:"categories"`
	BaselineTotal float64              `json:"baseline_total"`
	BidTotal      float64              `json:"bid_total"`
}

// BuildWaterfall computes baseline-vs-bid variance per category, preserving
// input order (category order mirrors the WBS and must not be re-sorted by
// magnitude).
func BuildWaterfall(rows []CategoryAggregate) WaterfallResult {
	result := WaterfallResult{
		Categories: make([]CategoryComparison, 0, len(rows)),
	}
	for _, row := range rows {
		result.Categories = append(result.Categories, CategoryComparison{
			Category:       row.Category,
			BaselineAmount: row.BaselineAmount,
			BidAmount:      row.BidAmount,
			AbsoluteDelta:  row.BidAmount - row.BaselineAmount,
			PercentDelta:   pctDelta(row.BidAmount, row.BaselineAmount),
		})
		result.BaselineTotal += row.BaselineAmount
		result.BidTotal += row.BidAmount
	}
	return result
}
