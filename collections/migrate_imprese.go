package collections

import (
	"fmt"
	"log"
	"strings"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// NormalizeImpresaName produces the canonical lookup key for a bidder name:
// trimmed, lower-cased, inner whitespace collapsed. Offer records keep the
// display spelling; the registry matches on this key.
func NormalizeImpresaName(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// MigrateOfferImprese scans offer records for bidder names that have no
// entry in the imprese registry and creates one per distinct normalized
// name. Safe to call on every startup -- existing registry entries are left
// untouched.
func MigrateOfferImprese(app *pocketbase.PocketBase) error {
	offersCol, err := app.FindCollectionByNameOrId("offers")
	if err != nil {
		return fmt.Errorf("migrate: could not find offers collection: %w", err)
	}

	impreseCol, err := app.FindCollectionByNameOrId("imprese")
	if err != nil {
		return fmt.Errorf("migrate: could not find imprese collection: %w", err)
	}

	registered, err := app.FindAllRecords(impreseCol)
	if err != nil {
		return fmt.Errorf("migrate: could not query imprese: %w", err)
	}
	known := make(map[string]bool, len(registered))
	for _, rec := range registered {
		key := rec.GetString("normalized_name")
		if key == "" {
			key = NormalizeImpresaName(rec.GetString("name"))
		}
		known[key] = true
	}

	offers, err := app.FindAllRecords(offersCol)
	if err != nil {
		return fmt.Errorf("migrate: could not query offers: %w", err)
	}

	created := 0
	for _, offer := range offers {
		name := strings.TrimSpace(offer.GetString("impresa"))
		if name == "" {
			continue
		}
		key := NormalizeImpresaName(name)
		if known[key] {
			continue
		}

		rec := core.NewRecord(impreseCol)
		rec.Set("name", name)
		rec.Set("normalized_name", key)
		if err := app.Save(rec); err != nil {
			log.Printf("migrate: failed to register impresa %q: %v\n", name, err)
			continue
		}
		known[key] = true
		created++
	}

	if created > 0 {
		log.Printf("migrate: registered %d impresa/e from existing offers.\n", created)
	}
	return nil
}
