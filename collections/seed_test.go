package collections_test

import (
	"testing"

	"tenderboard/collections"
	"tenderboard/testhelpers"
)

func TestSeed_PopulatesDemoCommessa(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	commesseCol, _ := app.FindCollectionByNameOrId("commesse")
	commesse, err := app.FindAllRecords(commesseCol)
	if err != nil {
		t.Fatalf("could not query commesse: %v", err)
	}
	if len(commesse) != 1 {
		t.Fatalf("expected 1 seeded commessa, got %d", len(commesse))
	}

	wbsCol, _ := app.FindCollectionByNameOrId("wbs_items")
	wbsItems, _ := app.FindAllRecords(wbsCol)
	if len(wbsItems) == 0 {
		t.Error("expected seeded WBS items")
	}

	// Roots and leaves both present.
	roots := 0
	for _, item := range wbsItems {
		if item.GetString("parent_id") == "" {
			roots++
		}
	}
	if roots == 0 || roots == len(wbsItems) {
		t.Errorf("expected a mix of root and child WBS items, got %d roots of %d", roots, len(wbsItems))
	}

	offersCol, _ := app.FindCollectionByNameOrId("offers")
	offers, _ := app.FindAllRecords(offersCol)
	if len(offers) == 0 {
		t.Error("expected seeded offers")
	}

	impreseCol, _ := app.FindCollectionByNameOrId("imprese")
	imprese, _ := app.FindAllRecords(impreseCol)
	if len(imprese) != 3 {
		t.Errorf("expected 3 seeded imprese, got %d", len(imprese))
	}
}

func TestSeed_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	if err := collections.Seed(app); err != nil {
		t.Fatalf("first Seed() error: %v", err)
	}
	if err := collections.Seed(app); err != nil {
		t.Fatalf("second Seed() error: %v", err)
	}

	commesseCol, _ := app.FindCollectionByNameOrId("commesse")
	commesse, _ := app.FindAllRecords(commesseCol)
	if len(commesse) != 1 {
		t.Errorf("second Seed() duplicated data: %d commesse", len(commesse))
	}
}

func TestSeed_SkipsWhenCommesseExist(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	testhelpers.CreateTestCommessa(t, app, "Pre-existing")

	if err := collections.Seed(app); err != nil {
		t.Fatalf("Seed() error: %v", err)
	}

	offersCol, _ := app.FindCollectionByNameOrId("offers")
	offers, _ := app.FindAllRecords(offersCol)
	if len(offers) != 0 {
		t.Errorf("Seed() inserted demo offers despite existing commesse")
	}
}
