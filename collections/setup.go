package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// Setup programmatically creates/ensures the commesse, wbs_items, imprese,
// offers and offer_items collections exist.
func Setup(app *pocketbase.PocketBase) {
	commesse := ensureCollection(app, "commesse", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "code", Required: false})
		c.Fields.Add(&core.TextField{Name: "client", Required: false})
		c.Fields.Add(&core.SelectField{
			Name:      "status",
			Required:  true,
			Values:    []string{"active", "tendering", "awarded", "completed"},
			MaxSelect: 1,
		})
		c.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		c.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})
	})

	ensureCollection(app, "wbs_items", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "commessa",
			Required:      true,
			CollectionId:  commesse.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		// Parent link within the same collection; stored as a plain id so
		// the forest can be rebuilt in one pass.
		c.Fields.Add(&core.TextField{Name: "parent_id", Required: false})
		c.Fields.Add(&core.NumberField{Name: "sort_order", Required: true})
		c.Fields.Add(&core.TextField{Name: "code", Required: true})
		c.Fields.Add(&core.TextField{Name: "description", Required: true})
		c.Fields.Add(&core.NumberField{Name: "level", Required: false})
		c.Fields.Add(&core.NumberField{Name: "importo", Required: false})
	})

	ensureCollection(app, "imprese", func(c *core.Collection) {
		c.Fields.Add(&core.TextField{Name: "name", Required: true})
		c.Fields.Add(&core.TextField{Name: "normalized_name", Required: false})
		c.Fields.Add(&core.TextField{Name: "city", Required: false})
		c.Fields.Add(&core.TextField{Name: "contact_person", Required: false})
		c.Fields.Add(&core.EmailField{Name: "email", Required: false})
		c.Fields.Add(&core.TextField{Name: "phone", Required: false})
	})

	ensureCollection(app, "offers", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "commessa",
			Required:      true,
			CollectionId:  commesse.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "impresa", Required: true})
		c.Fields.Add(&core.NumberField{Name: "round", Required: true})
		c.Fields.Add(&core.TextField{Name: "round_label", Required: false})
		c.Fields.Add(&core.NumberField{Name: "importo", Required: true})
	})

	ensureCollection(app, "offer_items", func(c *core.Collection) {
		c.Fields.Add(&core.RelationField{
			Name:          "commessa",
			Required:      true,
			CollectionId:  commesse.Id,
			CascadeDelete: true,
			MaxSelect:     1,
		})
		c.Fields.Add(&core.TextField{Name: "impresa", Required: true})
		c.Fields.Add(&core.TextField{Name: "categoria", Required: true})
		c.Fields.Add(&core.NumberField{Name: "importo", Required: true})
	})
}

// ensureCollection checks if a collection already exists by name. If it does,
// the existing collection is returned. Otherwise a new base collection is
// created, the addFields callback is invoked to populate its fields, and the
// collection is saved.
func ensureCollection(app *pocketbase.PocketBase, name string, addFields func(*core.Collection)) *core.Collection {
	existing, err := app.FindCollectionByNameOrId(name)
	if err == nil && existing != nil {
		log.Printf("Collection %q already exists, skipping creation.\n", name)
		return existing
	}

	collection := core.NewBaseCollection(name)
	addFields(collection)

	if err := app.Save(collection); err != nil {
		log.Fatalf("Failed to create collection %q: %v", name, err)
	}

	fmt.Printf("Created collection %q (id=%s)\n", name, collection.Id)
	return collection
}
