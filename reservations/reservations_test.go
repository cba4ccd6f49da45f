package reservations

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/kultura-platform/adminkit/gateway"
	"github.com/kultura-platform/adminkit/store"
)

func TestReference(t *testing.T) {
	if got := (Reservation{ID: 42}).Reference(); got != "RES-000042" {
		t.Errorf("Reference = %q, want RES-000042", got)
	}
	if got := (Reservation{ID: 1234567}).Reference(); got != "RES-1234567" {
		t.Errorf("Reference = %q, want RES-1234567", got)
	}
}

func TestListAndCancel(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		switch r.URL.Path {
		case "/api/reservations/all":
			w.Write([]byte(`[{"id": 1, "event": "Nuit du jazz", "status": "Confirmée", "places": 2, "prix": "51.00"}]`))
		default:
			w.Write([]byte(`{"id": 1}`))
		}
	}))
	t.Cleanup(server.Close)

	gw, err := gateway.New(gateway.Config{BaseURL: server.URL}, store.NewMemory())
	if err != nil {
		t.Fatalf("gateway.New failed: %v", err)
	}
	client := NewClient(gw)
	ctx := context.Background()

	list, err := client.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 || list[0].Status != StatusConfirmed || list[0].Places != 2 {
		t.Errorf("list = %+v", list)
	}

	if err := client.Cancel(ctx, 1); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if gotMethod != http.MethodDelete || gotPath != "/api/reservations/1" {
		t.Errorf("Cancel = %s %s, want DELETE /api/reservations/1", gotMethod, gotPath)
	}
}
