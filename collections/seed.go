package collections

import (
	"fmt"
	"log"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// ── Definition structs ───────────────────────────────────────────────────

type wbsDef struct {
	code        string
	description string
	level       int
	importo     float64
	children    []wbsDef
}

type impresaDef struct {
	name          string
	city          string
	contactPerson string
	email         string
	phone         string
}

type offerDef struct {
	impresa string
	round   int
	importo float64
}

type offerItemDef struct {
	impresa   string
	categoria string
	importo   float64
}

var seedRoundLabels = map[int]string{
	1: "Offerta iniziale",
	2: "Primo rilancio",
	3: "Secondo rilancio",
}

// Seed populates all collections with a realistic demo commessa: a school
// building project with a spatial/organizational WBS and a three-round
// tender between three imprese. It is safe to call on every startup because
// it returns early if any commessa records already exist.
func Seed(app *pocketbase.PocketBase) error {
	// ── idempotency: skip if commesse already exist ──────────────────
	commesseCol, err := app.FindCollectionByNameOrId("commesse")
	if err != nil {
		return fmt.Errorf("seed: could not find commesse collection: %w", err)
	}
	existing, err := app.FindAllRecords(commesseCol)
	if err != nil {
		return fmt.Errorf("seed: could not query commesse: %w", err)
	}
	if len(existing) > 0 {
		return nil // already seeded
	}

	log.Println("seed: commesse collection is empty – inserting seed data …")

	wbsCol, err := app.FindCollectionByNameOrId("wbs_items")
	if err != nil {
		return fmt.Errorf("seed: could not find wbs_items collection: %w", err)
	}
	impreseCol, err := app.FindCollectionByNameOrId("imprese")
	if err != nil {
		return fmt.Errorf("seed: could not find imprese collection: %w", err)
	}
	offersCol, err := app.FindCollectionByNameOrId("offers")
	if err != nil {
		return fmt.Errorf("seed: could not find offers collection: %w", err)
	}
	offerItemsCol, err := app.FindCollectionByNameOrId("offer_items")
	if err != nil {
		return fmt.Errorf("seed: could not find offer_items collection: %w", err)
	}

	// ── commessa ─────────────────────────────────────────────────────
	commessa := core.NewRecord(commesseCol)
	commessa.Set("name", "Nuovo Polo Scolastico di Via Roma")
	commessa.Set("code", "CM-2026-001")
	commessa.Set("client", "Comune di Brescia")
	commessa.Set("status", "tendering")
	if err := app.Save(commessa); err != nil {
		return fmt.Errorf("seed: could not create commessa: %w", err)
	}

	// ── WBS ──────────────────────────────────────────────────────────
	// Levels 0-5 carry the spatial breakdown, level 6 the work categories
	// the tender views aggregate against.
	wbs := []wbsDef{
		{code: "01", description: "Lotto 1 - Corpo principale", level: 0, importo: 1850000, children: []wbsDef{
			{code: "01.A", description: "Edificio didattico", level: 1, importo: 1250000, children: []wbsDef{
				{code: "01.A.STR", description: "Strutture", level: 6, importo: 480000},
				{code: "01.A.IME", description: "Impianti meccanici", level: 6, importo: 310000},
				{code: "01.A.IEL", description: "Impianti elettrici", level: 6, importo: 220000},
				{code: "01.A.FIN", description: "Finiture", level: 6, importo: 240000},
			}},
			{code: "01.B", description: "Palestra", level: 1, importo: 600000, children: []wbsDef{
				{code: "01.B.SCA", description: "Scavi e fondazioni", level: 6, importo: 180000},
				{code: "01.B.STR", description: "Strutture palestra", level: 6, importo: 420000},
			}},
		}},
		{code: "02", description: "Lotto 2 - Sistemazioni esterne", level: 0, importo: 350000, children: []wbsDef{
			{code: "02.A", description: "Aree verdi e parcheggi", level: 1, importo: 350000, children: []wbsDef{
				{code: "02.A.OPE", description: "Opere esterne", level: 6, importo: 350000},
			}},
		}},
	}

	sortOrder := 0
	var createWbs func(parentID string, d wbsDef) error
	createWbs = func(parentID string, d wbsDef) error {
		sortOrder++
		r := core.NewRecord(wbsCol)
		r.Set("commessa", commessa.Id)
		r.Set("parent_id", parentID)
		r.Set("sort_order", sortOrder)
		r.Set("code", d.code)
		r.Set("description", d.description)
		r.Set("level", d.level)
		r.Set("importo", d.importo)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: could not create WBS item %q: %w", d.code, err)
		}
		for _, child := range d.children {
			if err := createWbs(r.Id, child); err != nil {
				return err
			}
		}
		return nil
	}
	for _, root := range wbs {
		if err := createWbs("", root); err != nil {
			return err
		}
	}

	// ── imprese ──────────────────────────────────────────────────────
	imprese := []impresaDef{
		{name: "Rossi Costruzioni SpA", city: "Brescia", contactPerson: "Marco Rossi", email: "gare@rossicostruzioni.it", phone: "+39 030 123456"},
		{name: "Bianchi Appalti Srl", city: "Bergamo", contactPerson: "Laura Bianchi", email: "ufficio.gare@bianchiappalti.it", phone: "+39 035 654321"},
		{name: "CME Consorzio", city: "Modena", contactPerson: "Paolo Ferrari", email: "tender@cmeconsorzio.it", phone: "+39 059 987654"},
	}
	for _, d := range imprese {
		r := core.NewRecord(impreseCol)
		r.Set("name", d.name)
		r.Set("normalized_name", NormalizeImpresaName(d.name))
		r.Set("city", d.city)
		r.Set("contact_person", d.contactPerson)
		r.Set("email", d.email)
		r.Set("phone", d.phone)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: could not create impresa %q: %w", d.name, err)
		}
	}

	// ── offers (per-round totals) ────────────────────────────────────
	// Bianchi drops out after round 2: sparse rounds are a normal input.
	offers := []offerDef{
		{impresa: "Rossi Costruzioni SpA", round: 1, importo: 2140000},
		{impresa: "Rossi Costruzioni SpA", round: 2, importo: 2065000},
		{impresa: "Rossi Costruzioni SpA", round: 3, importo: 1998000},
		{impresa: "Bianchi Appalti Srl", round: 1, importo: 2210000},
		{impresa: "Bianchi Appalti Srl", round: 2, importo: 2120000},
		{impresa: "CME Consorzio", round: 1, importo: 2095000},
		{impresa: "CME Consorzio", round: 2, importo: 2050000},
		{impresa: "CME Consorzio", round: 3, importo: 2020000},
	}
	for _, d := range offers {
		r := core.NewRecord(offersCol)
		r.Set("commessa", commessa.Id)
		r.Set("impresa", d.impresa)
		r.Set("round", d.round)
		r.Set("round_label", seedRoundLabels[d.round])
		r.Set("importo", d.importo)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: could not create offer for %q round %d: %w", d.impresa, d.round, err)
		}
	}

	// ── offer items (per-category amounts, final round) ──────────────
	// CME never priced the Finiture category: the heatmap renders it as a
	// no-bid cell.
	offerItems := []offerItemDef{
		{impresa: "Rossi Costruzioni SpA", categoria: "Strutture", importo: 465000},
		{impresa: "Rossi Costruzioni SpA", categoria: "Impianti meccanici", importo: 298000},
		{impresa: "Rossi Costruzioni SpA", categoria: "Impianti elettrici", importo: 215000},
		{impresa: "Rossi Costruzioni SpA", categoria: "Finiture", importo: 232000},
		{impresa: "Bianchi Appalti Srl", categoria: "Strutture", importo: 492000},
		{impresa: "Bianchi Appalti Srl", categoria: "Impianti meccanici", importo: 305000},
		{impresa: "Bianchi Appalti Srl", categoria: "Impianti elettrici", importo: 228000},
		{impresa: "Bianchi Appalti Srl", categoria: "Finiture", importo: 245000},
		{impresa: "CME Consorzio", categoria: "Strutture", importo: 470000},
		{impresa: "CME Consorzio", categoria: "Impianti meccanici", importo: 301000},
		{impresa: "CME Consorzio", categoria: "Impianti elettrici", importo: 212000},
	}
	for _, d := range offerItems {
		r := core.NewRecord(offerItemsCol)
		r.Set("commessa", commessa.Id)
		r.Set("impresa", d.impresa)
		r.Set("categoria", d.categoria)
		r.Set("importo", d.importo)
		if err := app.Save(r); err != nil {
			return fmt.Errorf("seed: could not create offer item for %q/%q: %w", d.impresa, d.categoria, err)
		}
	}

	log.Println("seed: demo commessa inserted.")
	return nil
}
