package mapcache

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPBackendGetAreaUnwrapsDataEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("authorization"); got != "Bearer secret" {
			t.Errorf("got authorization header %q, want %q", got, "Bearer secret")
		}
		if r.URL.Path != "/areas/area-1" {
			t.Errorf("got path %q, want %q", r.URL.Path, "/areas/area-1")
		}
		w.Header().Set("content-type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"data": AreaWithDetails{Area: Area{ID: "area-1", Name: "Town"}},
		})
	}))
	defer srv.Close()

	backend := NewHTTPBackend(srv.URL, "secret")
	details, err := backend.GetArea(context.Background(), "area-1")
	if err != nil {
		t.Fatalf("GetArea() error = %v", err)
	}
	if details.Area.Name != "Town" {
		t.Fatalf("got name %q, want %q", details.Area.Name, "Town")
	}
}

func TestHTTPBackendSurfacesHTTPErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("not found"))
	}))
	defer srv.Close()

	backend := NewHTTPBackend(srv.URL, "secret")
	if _, err := backend.GetArea(context.Background(), "missing"); err == nil {
		t.Fatal("expected an error for a 404 response")
	}
}

func TestHTTPBackendDeleteAreaSendsNoBody(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		if r.Method != http.MethodDelete {
			t.Errorf("got method %q, want DELETE", r.Method)
		}
		if body, _ := io.ReadAll(r.Body); len(body) != 0 {
			t.Errorf("got request body %q, want none", body)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	backend := NewHTTPBackend(srv.URL, "secret")
	if err := backend.DeleteArea(context.Background(), "area-1"); err != nil {
		t.Fatalf("DeleteArea() error = %v", err)
	}
	if !called {
		t.Fatal("expected the test server to be hit")
	}
}
