package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestGetActiveCommessa_FromContext(t *testing.T) {
	expected := &ActiveCommessa{ID: "test123", Name: "Polo Scolastico", Code: "CM-1"}
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	ctx := context.WithValue(req.Context(), ActiveCommessaKey, expected)
	req = req.WithContext(ctx)

	got := GetActiveCommessa(req)
	if got == nil {
		t.Fatal("expected active commessa, got nil")
	}
	if got.ID != expected.ID || got.Code != expected.Code {
		t.Errorf("expected %+v, got %+v", expected, got)
	}
}

func TestGetActiveCommessa_NotInContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	got := GetActiveCommessa(req)
	if got != nil {
		t.Errorf("expected nil, got %v", got)
	}
}

func TestGetActiveCommessa_NilValueInContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	var empty *ActiveCommessa
	ctx := context.WithValue(req.Context(), ActiveCommessaKey, empty)
	req = req.WithContext(ctx)

	if got := GetActiveCommessa(req); got != nil {
		t.Errorf("expected nil for unset active commessa, got %v", got)
	}
}
