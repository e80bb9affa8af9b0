package geocode

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

const sampleResponse = `{
	"features": [
		{"properties": {"country_code": "us", "formatted": "123 Main St, Springfield, IL", "street": "Main St", "city": "Springfield", "state": "Illinois", "postcode": "62701"}},
		{"properties": {"country_code": "ca", "formatted": "123 Main St, Toronto, ON", "street": "Main St", "city": "Toronto", "state": "Ontario", "postcode": "M1M 1M1"}},
		{"properties": {"country_code": "us", "formatted": "125 Main St, Springfield, IL", "street": "Main St", "city": "Springfield", "state": "Illinois", "postcode": "62701"}}
	]
}`

func newTestServer(t *testing.T, calls *int32, handler http.HandlerFunc) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(calls, 1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestSearchShortQuerySkipsOutboundCall(t *testing.T) {
	var calls int32
	server := newTestServer(t, &calls, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleResponse))
	})

	client := NewClient(server.URL, "test-key")

	// Multi-byte entries pin the gate to characters rather than bytes.
	for _, q := range []string{"", "a", "ab", "аб", "日本"} {
		matches := client.Search(context.Background(), q)
		if len(matches) != 0 {
			t.Errorf("query %q: expected no matches, got %v", q, matches)
		}
	}
	if n := atomic.LoadInt32(&calls); n != 0 {
		t.Errorf("expected no outbound calls, got %d", n)
	}

	// Three runes is long enough, byte width notwithstanding.
	client.Search(context.Background(), "абв")
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("expected one outbound call for 3-character query, got %d", n)
	}
}

func TestSearchFiltersNonUSResults(t *testing.T) {
	var calls int32
	server := newTestServer(t, &calls, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("filter"); got != "countrycode:us" {
			t.Errorf("filter = %q, want countrycode:us", got)
		}
		if got := r.URL.Query().Get("limit"); got != "5" {
			t.Errorf("limit = %q, want 5", got)
		}
		w.Write([]byte(sampleResponse))
	})

	client := NewClient(server.URL, "test-key")

	matches := client.Search(context.Background(), "123 Main")
	if len(matches) != 2 {
		t.Fatalf("expected 2 US matches, got %d: %v", len(matches), matches)
	}
	for _, m := range matches {
		if m.State != "Illinois" {
			t.Errorf("unexpected match leaked through filter: %+v", m)
		}
	}
	if matches[0].Formatted != "123 Main St, Springfield, IL" || matches[0].Postcode != "62701" {
		t.Errorf("first match reshaped incorrectly: %+v", matches[0])
	}
	if n := atomic.LoadInt32(&calls); n != 1 {
		t.Errorf("expected one outbound call, got %d", n)
	}
}

func TestSearchNonSuccessStatusDegradesToEmpty(t *testing.T) {
	var calls int32
	server := newTestServer(t, &calls, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream down", http.StatusBadGateway)
	})

	client := NewClient(server.URL, "test-key")

	matches := client.Search(context.Background(), "123 Main")
	if len(matches) != 0 {
		t.Errorf("expected empty result, got %v", matches)
	}
}

func TestSearchMalformedPayloadDegradesToEmpty(t *testing.T) {
	var calls int32
	server := newTestServer(t, &calls, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"features": [`))
	})

	client := NewClient(server.URL, "test-key")

	matches := client.Search(context.Background(), "123 Main")
	if len(matches) != 0 {
		t.Errorf("expected empty result, got %v", matches)
	}
}

func TestSearchTimeoutDegradesToEmpty(t *testing.T) {
	var calls int32
	server := newTestServer(t, &calls, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(150 * time.Millisecond)
		w.Write([]byte(sampleResponse))
	})

	client := NewClient(server.URL, "test-key", WithTimeout(20*time.Millisecond))

	start := time.Now()
	matches := client.Search(context.Background(), "123 Main")
	if len(matches) != 0 {
		t.Errorf("expected empty result, got %v", matches)
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Errorf("search did not respect timeout, took %s", elapsed)
	}
}

func TestSearchUnreachableUpstreamDegradesToEmpty(t *testing.T) {
	client := NewClient("http://127.0.0.1:1", "test-key", WithTimeout(100*time.Millisecond))

	matches := client.Search(context.Background(), "123 Main")
	if matches == nil || len(matches) != 0 {
		t.Errorf("expected empty non-nil result, got %v", matches)
	}
}
