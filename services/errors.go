package services

import "fmt"

// DataIntegrityError reports input that violates the upstream tender API
// contract: two offers for the same (impresa, round) with different amounts,
// or the same category carrying different baselines across bidders.
// The analytics core surfaces it and never guesses which record wins.
type DataIntegrityError struct {
	Bidder   string
	Round    int
	Category string
	Amounts  [2]float64
}

func (e *DataIntegrityError) Error() string {
	if e.Category != "" {
		if e.Bidder != "" {
			return fmt.Sprintf("conflicting bid amounts for impresa %q, category %q: %.2f vs %.2f",
				e.Bidder, e.Category, e.Amounts[0], e.Amounts[1])
		}
		return fmt.Sprintf("conflicting baselines for category %q: %.2f vs %.2f",
			e.Category, e.Amounts[0], e.Amounts[1])
	}
	return fmt.Sprintf("conflicting offers for impresa %q in round %d: %.2f vs %.2f",
		e.Bidder, e.Round, e.Amounts[0], e.Amounts[1])
}

// amountTolerance is the threshold below which two monetary float64 values
// are considered the same amount.
const amountTolerance = 1e-6

func sameAmount(a, b float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= amountTolerance
}
