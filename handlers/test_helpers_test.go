package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"

	"tenderboard/testhelpers"
)

// newTestRequestEvent creates a RequestEvent suitable for handler tests.
func newTestRequestEvent(app *pocketbase.PocketBase, req *http.Request, rec *httptest.ResponseRecorder) *core.RequestEvent {
	e := &core.RequestEvent{}
	e.App = app
	e.Request = req
	e.Response = rec
	return e
}

// seedTenderFixture creates a commessa with a small WBS (one spatial branch,
// two organizational categories) and a two-bidder, two-round tender.
// Rossi bids both categories, Bianchi only Strutture.
func seedTenderFixture(t *testing.T, app *pocketbase.PocketBase) *core.Record {
	t.Helper()

	commessa := testhelpers.CreateTestCommessa(t, app, "Fixture")

	root := testhelpers.CreateTestWbsItem(t, app, commessa.Id, "", "01", "Edificio", 0, 1500, 1)
	testhelpers.CreateTestWbsItem(t, app, commessa.Id, root.Id, "01.STR", "Strutture", 6, 1000, 2)
	testhelpers.CreateTestWbsItem(t, app, commessa.Id, root.Id, "01.IMP", "Impianti", 6, 500, 3)

	testhelpers.CreateTestOffer(t, app, commessa.Id, "Rossi", 1, 1000)
	testhelpers.CreateTestOffer(t, app, commessa.Id, "Rossi", 2, 900)
	testhelpers.CreateTestOffer(t, app, commessa.Id, "Bianchi", 1, 1100)

	testhelpers.CreateTestOfferItem(t, app, commessa.Id, "Rossi", "Strutture", 950)
	testhelpers.CreateTestOfferItem(t, app, commessa.Id, "Rossi", "Impianti", 520)
	testhelpers.CreateTestOfferItem(t, app, commessa.Id, "Bianchi", "Strutture", 1050)

	return commessa
}
