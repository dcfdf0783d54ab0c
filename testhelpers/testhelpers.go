// Package testhelpers provides utilities for testing PocketBase-based applications.
package testhelpers

import (
	"strings"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tenderboard/collections"
)

// NewTestApp creates a PocketBase instance backed by a temporary directory.
// It bootstraps the app and runs collections.Setup to create all tables.
// The temporary directory is cleaned up automatically when the test finishes.
func NewTestApp(t *testing.T) *pocketbase.PocketBase {
	t.Helper()

	tmpDir := t.TempDir()
	app := pocketbase.NewWithConfig(pocketbase.Config{
		DefaultDataDir: tmpDir,
	})

	if err := app.Bootstrap(); err != nil {
		t.Fatalf("failed to bootstrap test app: %v", err)
	}

	collections.Setup(app)

	return app
}

// CreateTestCommessa creates a commessa record with the given name and returns it.
func CreateTestCommessa(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("commesse")
	if err != nil {
		t.Fatalf("failed to find commesse collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("code", "CM-TEST")
	record.Set("status", "tendering")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test commessa: %v", err)
	}

	return record
}

// CreateTestWbsItem creates a WBS item linked to a commessa and returns it.
func CreateTestWbsItem(t *testing.T, app *pocketbase.PocketBase, commessaID, parentID, code, description string, level int, importo float64, sortOrder int) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("wbs_items")
	if err != nil {
		t.Fatalf("failed to find wbs_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("commessa", commessaID)
	record.Set("parent_id", parentID)
	record.Set("sort_order", sortOrder)
	record.Set("code", code)
	record.Set("description", description)
	record.Set("level", level)
	record.Set("importo", importo)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test WBS item: %v", err)
	}

	return record
}

// CreateTestImpresa creates an impresa registry record.
func CreateTestImpresa(t *testing.T, app *pocketbase.PocketBase, name string) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("imprese")
	if err != nil {
		t.Fatalf("failed to find imprese collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("name", name)
	record.Set("normalized_name", collections.NormalizeImpresaName(name))
	record.Set("city", "Brescia")

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test impresa: %v", err)
	}

	return record
}

// CreateTestOffer creates a per-round offer record for a commessa.
func CreateTestOffer(t *testing.T, app *pocketbase.PocketBase, commessaID, impresa string, round int, importo float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("offers")
	if err != nil {
		t.Fatalf("failed to find offers collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("commessa", commessaID)
	record.Set("impresa", impresa)
	record.Set("round", round)
	record.Set("importo", importo)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test offer: %v", err)
	}

	return record
}

// CreateTestOfferItem creates a per-category offer item for a commessa.
func CreateTestOfferItem(t *testing.T, app *pocketbase.PocketBase, commessaID, impresa, categoria string, importo float64) *core.Record {
	t.Helper()

	col, err := app.FindCollectionByNameOrId("offer_items")
	if err != nil {
		t.Fatalf("failed to find offer_items collection: %v", err)
	}

	record := core.NewRecord(col)
	record.Set("commessa", commessaID)
	record.Set("impresa", impresa)
	record.Set("categoria", categoria)
	record.Set("importo", importo)

	if err := app.Save(record); err != nil {
		t.Fatalf("failed to save test offer item: %v", err)
	}

	return record
}

// AssertBodyContains checks that a response body contains all specified fragments.
func AssertBodyContains(t *testing.T, body string, fragments ...string) {
	t.Helper()

	for _, frag := range fragments {
		if !strings.Contains(body, frag) {
			t.Errorf("expected body to contain %q, but it was not found\nbody (first 500 chars): %s",
				frag, truncate(body, 500))
		}
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
