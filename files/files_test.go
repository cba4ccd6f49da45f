package files

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kultura-platform/adminkit/gateway"
	"github.com/kultura-platform/adminkit/store"
)

func TestValidateImage(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		size     int64
		wantErr  bool
	}{
		{"png accepted", "poster.png", 1024, false},
		{"jpeg accepted", "photo.JPEG", 1024, false},
		{"webp accepted", "banner.webp", 1024, false},
		{"pdf rejected", "flyer.pdf", 1024, true},
		{"no extension rejected", "README", 1024, true},
		{"oversize rejected", "big.png", 6 << 20, true},
		{"size at limit accepted", "exact.png", 5 << 20, false},
		{"long name rejected", strings.Repeat("a", 101) + ".png", 1024, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateImage(tt.filename, tt.size)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateImage(%q, %d) = %v, wantErr %v", tt.filename, tt.size, err, tt.wantErr)
			}
		})
	}
}

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

func TestUploadRejectsInvalidFileBeforeNetwork(t *testing.T) {
	requests := 0
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))

	_, err := client.Upload(context.Background(), "notes.txt", 10, strings.NewReader("x"))
	if err == nil {
		t.Fatal("Upload accepted a non-image file")
	}
	if requests != 0 {
		t.Errorf("upload issued %d requests for a rejected file, want 0", requests)
	}
}

func TestUpload(t *testing.T) {
	var gotPath, gotFilename string
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		file, header, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		file.Close()
		gotFilename = header.Filename
		w.Write([]byte(`{"filename": "poster.png", "url": "/files/poster.png"}`))
	}))

	result, err := client.Upload(context.Background(), "poster.png", 16, strings.NewReader("fake image bytes"))
	if err != nil {
		t.Fatalf("Upload failed: %v", err)
	}

	if gotPath != "/files/upload-simple" {
		t.Errorf("path = %q, want /files/upload-simple", gotPath)
	}
	if gotFilename != "poster.png" {
		t.Errorf("filename = %q, want poster.png", gotFilename)
	}
	if result.Filename != "poster.png" || result.URL != "/files/poster.png" {
		t.Errorf("result = %+v", result)
	}
}

func TestList(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/files/list" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Write([]byte(`{"folder": "uploads", "count": 2, "files": ["a.png", "b.jpg"]}`))
	}))

	listing, err := client.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if listing.Count != 2 || len(listing.Files) != 2 || listing.Folder != "uploads" {
		t.Errorf("listing = %+v", listing)
	}
}

func TestURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	t.Cleanup(server.Close)

	gw, err := gateway.New(gateway.Config{BaseURL: server.URL}, store.NewMemory())
	if err != nil {
		t.Fatalf("gateway.New failed: %v", err)
	}
	client := NewClient(gw)

	if got := client.URL("poster.png"); got != server.URL+"/files/poster.png" {
		t.Errorf("URL = %q", got)
	}
	if got := client.URL(""); got != server.URL+"/files/default.jpg" {
		t.Errorf("URL of blank filename = %q, want the default image", got)
	}
	if got := client.URL("https://cdn.example.com/a.png"); got != "https://cdn.example.com/a.png" {
		t.Errorf("absolute URL rewritten: %q", got)
	}
}
