package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tenderboard/services"
	"tenderboard/testhelpers"
)

func TestHandleWbsView_ReturnsForest(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	commessa := seedTenderFixture(t, app)

	handler := HandleWbsView(app)

	req := httptest.NewRequest(http.MethodGet, "/commesse/"+commessa.Id+"/wbs", nil)
	req.SetPathValue("id", commessa.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Commessa        string              `json:"commessa"`
		Tree            []*services.WbsNode `json:"tree"`
		SpatialMaxLevel int                 `json:"spatial_max_level"`
		ImportoTotale   float64             `json:"importo_totale"`
		ImportoFoglie   float64             `json:"importo_foglie"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("could not decode response: %v", err)
	}

	if len(body.Tree) != 1 {
		t.Fatalf("expected 1 root, got %d", len(body.Tree))
	}
	root := body.Tree[0]
	if root.Description != "Edificio" {
		t.Errorf("expected root Edificio, got %q", root.Description)
	}
	if len(root.Children) != 2 {
		t.Fatalf("expected 2 children, got %d", len(root.Children))
	}
	// Children keep insertion order, not code order.
	if root.Children[0].Description != "Strutture" || root.Children[1].Description != "Impianti" {
		t.Errorf("unexpected child order: %q, %q",
			root.Children[0].Description, root.Children[1].Description)
	}

	if body.ImportoTotale != 1500 {
		t.Errorf("expected stored total 1500, got %v", body.ImportoTotale)
	}
	if body.ImportoFoglie != 1500 {
		t.Errorf("expected leaf sum 1500, got %v", body.ImportoFoglie)
	}
	if body.SpatialMaxLevel != 5 {
		t.Errorf("expected spatial_max_level 5, got %d", body.SpatialMaxLevel)
	}
}

func TestHandleWbsView_StoredTotalIndependentOfLeaves(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	commessa := testhelpers.CreateTestCommessa(t, app, "Non Additiva")

	// Root stores 2000 but its only leaf carries 1200.
	root := testhelpers.CreateTestWbsItem(t, app, commessa.Id, "", "01", "Lotto", 0, 2000, 1)
	testhelpers.CreateTestWbsItem(t, app, commessa.Id, root.Id, "01.A", "Opere", 6, 1200, 2)

	handler := HandleWbsView(app)

	req := httptest.NewRequest(http.MethodGet, "/commesse/"+commessa.Id+"/wbs", nil)
	req.SetPathValue("id", commessa.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}

	var body struct {
		ImportoTotale float64 `json:"importo_totale"`
		ImportoFoglie float64 `json:"importo_foglie"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("could not decode response: %v", err)
	}
	if body.ImportoTotale != 2000 {
		t.Errorf("expected stored total 2000, got %v", body.ImportoTotale)
	}
	if body.ImportoFoglie != 1200 {
		t.Errorf("expected leaf sum 1200, got %v", body.ImportoFoglie)
	}
}

func TestHandleWbsView_CommessaNotFound(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	handler := HandleWbsView(app)

	req := httptest.NewRequest(http.MethodGet, "/commesse/nonexistent/wbs", nil)
	req.SetPathValue("id", "nonexistent")
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", rec.Code)
	}
}

func TestHandleWbsView_EmptyWbs(t *testing.T) {
	app := testhelpers.NewTestApp(t)
	commessa := testhelpers.CreateTestCommessa(t, app, "Vuota")
	handler := HandleWbsView(app)

	req := httptest.NewRequest(http.MethodGet, "/commesse/"+commessa.Id+"/wbs", nil)
	req.SetPathValue("id", commessa.Id)
	rec := httptest.NewRecorder()
	e := newTestRequestEvent(app, req, rec)

	if err := handler(e); err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body struct {
		Tree []*services.WbsNode `json:"tree"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("could not decode response: %v", err)
	}
	if len(body.Tree) != 0 {
		t.Errorf("expected empty forest, got %d roots", len(body.Tree))
	}
}
