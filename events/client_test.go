package events

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kultura-platform/adminkit/gateway"
	"github.com/kultura-platform/adminkit/store"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	gw, err := gateway.New(gateway.Config{BaseURL: server.URL}, store.NewMemory())
	if err != nil {
		t.Fatalf("gateway.New failed: %v", err)
	}
	return NewClient(gw)
}

func TestListDropsPlaceholderRows(t *testing.T) {
	var gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Write([]byte(`[
			{"id_event": 1, "titre_event": "Concert"},
			{"id_event": 2, "titre_event": "   "},
			{"id_event": 3}
		]`))
	}))

	list, err := client.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	if gotPath != "/api/evenements/all" {
		t.Errorf("path = %q, want /api/evenements/all", gotPath)
	}
	if len(list) != 1 || list[0].ID != 1 {
		t.Errorf("list = %+v, want only the titled event", list)
	}
}

func TestSearchEscapesQuery(t *testing.T) {
	var gotQuery string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		w.Write([]byte(`[]`))
	}))

	if _, err := client.Search(context.Background(), "jazz & blues"); err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if gotQuery != "jazz & blues" {
		t.Errorf("query = %q, want the raw search text", gotQuery)
	}
}

func TestCreateSendsCamelCasePayload(t *testing.T) {
	var gotBody string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		gotBody = string(data)
		w.Write([]byte(`{"idEvent": 12, "titreEvent": "Nuit du jazz"}`))
	}))

	created, err := client.Create(context.Background(), Input{
		Title:     "Nuit du jazz",
		StartDate: "2026-09-12",
		EndDate:   "2026-09-13",
		Capacity:  250,
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID != 12 {
		t.Errorf("created id = %d, want 12", created.ID)
	}
	for _, field := range []string{`"titreEvent"`, `"dateDebut"`, `"dateFin"`, `"nbPlace"`} {
		if !strings.Contains(gotBody, field) {
			t.Errorf("request body missing %s: %s", field, gotBody)
		}
	}
}

func TestDeleteHitsEventPath(t *testing.T) {
	var gotMethod, gotPath string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	if err := client.Delete(context.Background(), 12); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/evenements/12" {
		t.Errorf("request = %s %s, want DELETE /api/evenements/12", gotMethod, gotPath)
	}
}
