package services

// ComparisonExport holds everything needed to export a tender comparison
// report: the trend series, the waterfall against the baseline, and the
// filter summary shown beside the charts.
type ComparisonExport struct {
	Commessa    string
	Code        string
	GeneratedAt string
	Summary     FilterSummary
	Trend       []BidderSeries
	Waterfall   WaterfallResult
}

// TrendExportRow is one flattened offer for the tabular exports.
type TrendExportRow struct {
	Bidder     string
	RoundLabel string
	Amount     float64
	DeltaPct   *float64
}

// TrendRows flattens the trend series into export rows, bidders in series
// order, offers in round order.
func (e ComparisonExport) TrendRows() []TrendExportRow {
	var rows []TrendExportRow
	for _, s := range e.Trend {
		for _, o := range s.Offers {
			rows = append(rows, TrendExportRow{
				Bidder:     s.Bidder,
				RoundLabel: o.RoundLabel,
				Amount:     o.Amount,
				DeltaPct:   o.DeltaPct,
			})
		}
	}
	return rows
}
