package release

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestResolvePinnedAppliesPrefix(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	r := NewResolver(srv.URL, "bharxhav", "bolomoty", time.Second)
	tag, err := r.Resolve("1.2.3")
	if err != nil {
		t.Fatalf("Resolve pinned: %v", err)
	}
	if tag != "v1.2.3" {
		t.Errorf("tag = %q, want v1.2.3", tag)
	}
	if n := calls.Load(); n != 0 {
		t.Errorf("pinned resolution made %d network calls, want 0", n)
	}
}

func TestResolveLatest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/bharxhav/bolomoty/releases/latest" {
			t.Errorf("unexpected query path %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		w.Write([]byte(`{"tag_name": "v9.9.9", "name": "ignored", "assets": []}`))
	}))
	defer srv.Close()

	r := NewResolver(srv.URL, "bharxhav", "bolomoty", time.Second)
	tag, err := r.Resolve("")
	if err != nil {
		t.Fatalf("Resolve latest: %v", err)
	}
	if tag != "v9.9.9" {
		t.Errorf("tag = %q, want v9.9.9", tag)
	}
}

func TestResolveLatestFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "missing tag_name field",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"name": "release without tag"}`))
			},
		},
		{
			name: "empty tag_name",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"tag_name": ""}`))
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`this is not json`))
			},
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "no releases", http.StatusNotFound)
			},
		},
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			r := NewResolver(srv.URL, "bharxhav", "bolomoty", time.Second)
			_, err := r.Resolve("")
			if !errors.Is(err, ErrResolveFailed) {
				t.Errorf("error = %v, want ErrResolveFailed", err)
			}
		})
	}
}

func TestResolveLatestNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // nothing listening anymore

	r := NewResolver(srv.URL, "bharxhav", "bolomoty", time.Second)
	_, err := r.Resolve("")
	if !errors.Is(err, ErrResolveFailed) {
		t.Errorf("error = %v, want ErrResolveFailed", err)
	}
}
