package services

// BidderCategories is the heatmap input for one bidder: the categories it
// bid on, with the baseline each row was compared against upstream.
type BidderCategories struct {
	Bidder string
	Rows   []CategoryAggregate
}

// HeatmapCell is one bidder/category intersection. NoBid marks a category
// the bidder never offered on: the coloring layer renders it neutral instead
// of showing a false "on budget" zero delta.
type HeatmapCell struct {
	Category  string  `json:"categoria"`
	BidAmount float64 `json:"importo"`
	Delta     float64 `json:"delta"`
	NoBid     bool    `json:"no_bid,omitempty"`
}

// BidderCells is one heatmap row: cells aligned 1:1 with the canonical
// category axis.
type BidderCells struct {
	Bidder string        `json:"impresa"`
	Cells  []HeatmapCell `json:"cells"`
}

// HeatmapMatrix is the bidder × category competitiveness matrix. Every
// bidder's Cells covers the same categories as Categories, in the same order.
type HeatmapMatrix struct {
	Categories []CategoryBaseline `json:"categories"`
	Bidders    []BidderCells      `json:"bidders"`
}

// BuildHeatmap assembles the matrix in two passes. The first pass collects
// the union of categories across all bidders in first-seen order, fixing the
// axis and each category's baseline; a later row carrying a different
// baseline for a known category returns a *DataIntegrityError. The second
// pass emits one cell per canonical category for every bidder, marking
// missing categories as NoBid rather than omitting them.
func BuildHeatmap(input []BidderCategories) (HeatmapMatrix, error) {
	var matrix HeatmapMatrix
	baselineIdx := make(map[string]int)

	for _, bc := range input {
		for _, row := range bc.Rows {
			if i, seen := baselineIdx[row.Category]; seen {
				if !sameAmount(matrix.Categories[i].Amount, row.BaselineAmount) {
					return HeatmapMatrix{}, &DataIntegrityError{
						Category: row.Category,
						Amounts:  [2]float64{matrix.Categories[i].Amount, row.BaselineAmount},
					}
				}
				continue
			}
			baselineIdx[row.Category] = len(matrix.Categories)
			matrix.Categories = append(matrix.Categories, CategoryBaseline{
				Category: row.Category,
				Amount:   row.BaselineAmount,
			})
		}
	}

	matrix.Bidders = make([]BidderCells, 0, len(input))
	for _, bc := range input {
		bids := make(map[string]float64, len(bc.Rows))
		for _, row := range bc.Rows {
			if prev, dup := bids[row.Category]; dup && !sameAmount(prev, row.BidAmount) {
				return HeatmapMatrix{}, &DataIntegrityError{
					Bidder:   bc.Bidder,
					Category: row.Category,
					Amounts:  [2]float64{prev, row.BidAmount},
				}
			}
			bids[row.Category] = row.BidAmount
		}

		cells := make([]HeatmapCell, 0, len(matrix.Categories))
		for _, cat := range matrix.Categories {
			amount, ok := bids[cat.Category]
			if !ok {
				cells = append(cells, HeatmapCell{Category: cat.Category, NoBid: true})
				continue
			}
			cells = append(cells, HeatmapCell{
				Category:  cat.Category,
				BidAmount: amount,
				Delta:     amount - cat.Amount,
			})
		}
		matrix.Bidders = append(matrix.Bidders, BidderCells{Bidder: bc.Bidder, Cells: cells})
	}
	return matrix, nil
}
