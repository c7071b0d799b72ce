package eutils

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/henrybloomingdale/get-papers-list/internal/ncbi"
)

func TestResolveIDs_Success(t *testing.T) {
	fixture := loadTestdata(t, "esearch.json")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/esearch.fcgi" {
			t.Errorf("expected /esearch.fcgi, got %q", r.URL.Path)
		}
		q := r.URL.Query()
		if got := q.Get("db"); got != "pubmed" {
			t.Errorf("expected db=pubmed, got %q", got)
		}
		if got := q.Get("term"); got != "oncology" {
			t.Errorf("expected term=oncology, got %q", got)
		}
		if got := q.Get("retmax"); got != "25" {
			t.Errorf("expected retmax=25, got %q", got)
		}
		if got := q.Get("retmode"); got != "json" {
			t.Errorf("expected retmode=json, got %q", got)
		}
		if got := q.Get("api_key"); got != "test-key" {
			t.Errorf("expected api_key=test-key, got %q", got)
		}
		w.Write(fixture)
	}))
	defer srv.Close()

	ids, err := newTestClient(srv.URL).ResolveIDs(context.Background(), "oncology", 25)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Order must be preserved exactly as returned.
	want := []string{"38000003", "38000001", "38000002"}
	if len(ids) != len(want) {
		t.Fatalf("expected %d ids, got %d: %v", len(want), len(ids), ids)
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %q, want %q", i, ids[i], want[i])
		}
	}
}

func TestResolveIDs_DefaultMaxResults(t *testing.T) {
	var retmax string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		retmax = r.URL.Query().Get("retmax")
		w.Write([]byte(`{"esearchresult":{"count":"0","idlist":[]}}`))
	}))
	defer srv.Close()

	ids, err := newTestClient(srv.URL).ResolveIDs(context.Background(), "nothing", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if retmax != "100" {
		t.Errorf("expected default retmax=100, got %q", retmax)
	}
	if ids == nil || len(ids) != 0 {
		t.Errorf("expected empty non-nil id list, got %v", ids)
	}
}

func TestResolveIDs_ServiceErrorMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"esearchresult":{"ERROR":"Invalid query syntax"}}`))
	}))
	defer srv.Close()

	ids, err := newTestClient(srv.URL).ResolveIDs(context.Background(), "q[[", 5)
	if ids != nil {
		t.Errorf("expected no ids, got %v", ids)
	}
	if err == nil || !strings.Contains(err.Error(), "Invalid query syntax") {
		t.Errorf("expected NCBI error text in %v", err)
	}
}

func TestResolveIDs_CustomHTTPClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Test"); got != "injected" {
			t.Errorf("expected injected header, got %q", got)
		}
		w.Write([]byte(`{"esearchresult":{"idlist":["7"]}}`))
	}))
	defer srv.Close()

	hc := &http.Client{Transport: headerTransport{base: http.DefaultTransport}}
	c := NewClient(WithBaseURL(srv.URL), WithHTTPClient(hc))
	if c.HTTPClient != hc {
		t.Fatal("expected the supplied HTTP client to be used")
	}

	ids, err := c.ResolveIDs(context.Background(), "q", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 1 || ids[0] != "7" {
		t.Errorf("expected [7], got %v", ids)
	}
}

type headerTransport struct {
	base http.RoundTripper
}

func (h headerTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.Header.Set("X-Test", "injected")
	return h.base.RoundTrip(r)
}

func TestResolveIDs_DuplicatesKept(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"esearchresult":{"idlist":["2","1","2"]}}`))
	}))
	defer srv.Close()

	ids, err := newTestClient(srv.URL).ResolveIDs(context.Background(), "q", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 3 || ids[0] != "2" || ids[1] != "1" || ids[2] != "2" {
		t.Errorf("expected [2 1 2], got %v", ids)
	}
}

func TestResolveIDs_EmptyQuery(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).ResolveIDs(context.Background(), "   ", 10)
	if !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("expected ErrEmptyQuery, got %v", err)
	}
	if called {
		t.Error("no request should be issued for an empty query")
	}
}

func TestResolveIDs_Failures(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"server error", http.StatusInternalServerError, ""},
		{"not found", http.StatusNotFound, ""},
		{"malformed json", http.StatusOK, `{"esearchresult": [`},
		{"missing result", http.StatusOK, `{"header":{}}`},
		{"html error page", http.StatusOK, `<html>oops</html>`},
		{"service error", http.StatusOK, `{"header":{"type":"esearch"},"esearchresult":{"ERROR":"Invalid query syntax"}}`},
		{"missing idlist", http.StatusOK, `{"esearchresult":{"count":"0"}}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			_, err := newTestClient(srv.URL).ResolveIDs(context.Background(), "q", 5)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			var fe *ncbi.FetchError
			if !errors.As(err, &fe) {
				t.Errorf("expected *ncbi.FetchError, got %T: %v", err, err)
			}
		})
	}
}
