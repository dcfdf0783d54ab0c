package services

import (
	"math"
	"testing"
)

func mustNormalize(t *testing.T, records []BidRecord) []BidderSeries {
	t.Helper()
	series, err := NormalizeBids(records, nil)
	if err != nil {
		t.Fatalf("NormalizeBids() error = %v", err)
	}
	return series
}

func TestBuildTrend_Deltas(t *testing.T) {
	series := mustNormalize(t, []BidRecord{
		{Bidder: "A", Round: 1, Amount: 1000},
		{Bidder: "A", Round: 2, Amount: 900},
	})

	trend := BuildTrend(series, nil)
	offers := trend[0].Offers

	if offers[0].DeltaPct != nil {
		t.Errorf("first offer delta = %v, want nil (no prior round)", *offers[0].DeltaPct)
	}
	if offers[1].DeltaPct == nil {
		t.Fatal("second offer delta is nil")
	}
	if math.Abs(*offers[1].DeltaPct-(-10)) > 1e-9 {
		t.Errorf("delta = %v, want -10", *offers[1].DeltaPct)
	}
	if trend[0].CumulativeDeltaPct == nil {
		t.Fatal("cumulative delta is nil for 2-offer series")
	}
	if math.Abs(*trend[0].CumulativeDeltaPct-(-10)) > 1e-9 {
		t.Errorf("cumulative delta = %v, want -10", *trend[0].CumulativeDeltaPct)
	}
}

func TestBuildTrend_SingleOffer(t *testing.T) {
	trend := BuildTrend(mustNormalize(t, []BidRecord{
		{Bidder: "A", Round: 1, Amount: 1000},
	}), nil)

	if trend[0].Offers[0].DeltaPct != nil {
		t.Error("single offer must have nil delta")
	}
	if trend[0].CumulativeDeltaPct != nil {
		t.Error("single-offer series must have nil cumulative delta")
	}
}

func TestBuildTrend_ZeroPriorAmount(t *testing.T) {
	trend := BuildTrend(mustNormalize(t, []BidRecord{
		{Bidder: "A", Round: 1, Amount: 0},
		{Bidder: "A", Round: 2, Amount: 500},
		{Bidder: "A", Round: 3, Amount: 250},
	}), nil)
	offers := trend[0].Offers

	if offers[1].DeltaPct != nil {
		t.Errorf("delta over zero prior amount = %v, want nil", *offers[1].DeltaPct)
	}
	if offers[2].DeltaPct == nil || math.Abs(*offers[2].DeltaPct-(-50)) > 1e-9 {
		t.Error("delta between non-zero rounds should still be computed")
	}
	// Cumulative compares against the first offer, which is zero here.
	if trend[0].CumulativeDeltaPct != nil {
		t.Errorf("cumulative over zero first amount = %v, want nil", *trend[0].CumulativeDeltaPct)
	}
}

func TestBuildTrend_NoNaNOrInf(t *testing.T) {
	trend := BuildTrend(mustNormalize(t, []BidRecord{
		{Bidder: "A", Round: 1, Amount: 0},
		{Bidder: "A", Round: 2, Amount: 0},
		{Bidder: "A", Round: 3, Amount: 100},
	}), nil)

	for _, s := range trend {
		for _, o := range s.Offers {
			if o.DeltaPct != nil && (math.IsNaN(*o.DeltaPct) || math.IsInf(*o.DeltaPct, 0)) {
				t.Errorf("delta for round %d is %v", o.Round, *o.DeltaPct)
			}
		}
		if s.CumulativeDeltaPct != nil && (math.IsNaN(*s.CumulativeDeltaPct) || math.IsInf(*s.CumulativeDeltaPct, 0)) {
			t.Errorf("cumulative delta is %v", *s.CumulativeDeltaPct)
		}
	}
}

func TestBuildTrend_StableOrderAndColors(t *testing.T) {
	series := mustNormalize(t, []BidRecord{
		{Bidder: "Zeta", Round: 1, Amount: 100},
		{Bidder: "Alfa", Round: 1, Amount: 200},
	})

	trend := BuildTrend(series, nil)
	if trend[0].Bidder != "Zeta" || trend[1].Bidder != "Alfa" {
		t.Errorf("bidder order changed: %q, %q", trend[0].Bidder, trend[1].Bidder)
	}
	if trend[0].Color == "" || trend[1].Color == "" {
		t.Error("expected default palette colors assigned")
	}
	if trend[0].Color == trend[1].Color {
		t.Error("adjacent series share a color")
	}

	// Injected lookup wins over the default palette.
	custom := BuildTrend(series, func(bidder string, _ int) string { return "c-" + bidder })
	if custom[0].Color != "c-Zeta" {
		t.Errorf("injected color = %q", custom[0].Color)
	}
}

func TestBuildTrend_DoesNotMutateInput(t *testing.T) {
	series := mustNormalize(t, []BidRecord{
		{Bidder: "A", Round: 1, Amount: 1000},
		{Bidder: "A", Round: 2, Amount: 900},
	})

	BuildTrend(series, nil)
	if series[0].Offers[1].DeltaPct != nil {
		t.Error("BuildTrend mutated its input series")
	}
}

func TestDefaultColor_Cycles(t *testing.T) {
	if DefaultColor("x", 0) != DefaultColor("y", len(defaultPalette)) {
		t.Error("palette does not cycle by index")
	}
}
