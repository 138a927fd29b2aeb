package scraper

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/use-agent/farescan/config"
)

func testFetcher(maxBody int64) *Fetcher {
	return NewFetcher(config.FetchConfig{
		Timeout:      5 * time.Second,
		MaxBodyBytes: maxBody,
	})
}

func TestFetchSuccess(t *testing.T) {
	var gotUA, gotAccept string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		gotAccept = r.Header.Get("Accept")
		w.Write([]byte("<html>flights</html>"))
	}))
	defer srv.Close()

	body := testFetcher(1 << 20).Fetch(context.Background(), srv.URL)
	if body != "<html>flights</html>" {
		t.Errorf("Fetch = %q, want the response body", body)
	}
	if !strings.Contains(gotUA, "Chrome") {
		t.Errorf("User-Agent = %q, want a Chrome identity", gotUA)
	}
	if !strings.Contains(gotAccept, "text/html") {
		t.Errorf("Accept = %q, want a browser accept header", gotAccept)
	}
}

func TestFetchNon200ReturnsEmpty(t *testing.T) {
	for _, status := range []int{http.StatusNotFound, http.StatusForbidden, http.StatusTooManyRequests} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte("error page"))
		}))

		if body := testFetcher(1 << 20).Fetch(context.Background(), srv.URL); body != "" {
			t.Errorf("status %d: Fetch = %q, want empty string", status, body)
		}
		srv.Close()
	}
}

func TestFetchTransportErrorReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	if body := testFetcher(1 << 20).Fetch(context.Background(), srv.URL); body != "" {
		t.Errorf("Fetch against closed server = %q, want empty string", body)
	}
}

func TestFetchBadURLReturnsEmpty(t *testing.T) {
	if body := testFetcher(1 << 20).Fetch(context.Background(), "://not-a-url"); body != "" {
		t.Errorf("Fetch with malformed URL = %q, want empty string", body)
	}
}

func TestFetchBodyCap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("0123456789ABCDEF"))
	}))
	defer srv.Close()

	if body := testFetcher(10).Fetch(context.Background(), srv.URL); body != "0123456789" {
		t.Errorf("Fetch with 10-byte cap = %q, want the first 10 bytes", body)
	}
}
