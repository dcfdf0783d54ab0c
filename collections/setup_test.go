package collections_test

import (
	"testing"

	"tenderboard/collections"
	"tenderboard/testhelpers"
)

// expectedCollections is the full list of collections that Setup() must create.
var expectedCollections = []string{
	"commesse",
	"wbs_items",
	"imprese",
	"offers",
	"offer_items",
}

func TestSetup_AllCollectionsExist(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q not found after Setup(): %v", name, err)
			continue
		}
		if col.Name != name {
			t.Errorf("expected collection name %q, got %q", name, col.Name)
		}
	}
}

func TestSetup_Idempotent(t *testing.T) {
	app := testhelpers.NewTestApp(t) // Setup() already called once via NewTestApp

	// Collect IDs from first run
	ids := make(map[string]string)
	for _, name := range expectedCollections {
		col, _ := app.FindCollectionByNameOrId(name)
		ids[name] = col.Id
	}

	// Run Setup() again
	collections.Setup(app)

	// IDs should not change
	for _, name := range expectedCollections {
		col, err := app.FindCollectionByNameOrId(name)
		if err != nil {
			t.Errorf("collection %q missing after second Setup(): %v", name, err)
			continue
		}
		if col.Id != ids[name] {
			t.Errorf("collection %q was recreated: id %s -> %s", name, ids[name], col.Id)
		}
	}
}

func TestSetup_WbsItemFields(t *testing.T) {
	app := testhelpers.NewTestApp(t)

	col, err := app.FindCollectionByNameOrId("wbs_items")
	if err != nil {
		t.Fatalf("wbs_items collection not found: %v", err)
	}

	for _, field := range []string{"commessa", "parent_id", "sort_order", "code", "description", "level", "importo"} {
		if col.Fields.GetByName(field) == nil {
			t.Errorf("wbs_items missing field %q", field)
		}
	}
}
