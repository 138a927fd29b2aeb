// Package scraper fetches travel-search result pages over plain HTTP with a
// browser-like identity, and builds the search URLs it fetches.
package scraper

import (
	"context"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"

	tls2 "github.com/refraction-networking/utls"

	"github.com/use-agent/farescan/config"
)

const chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"

// Fetcher performs single GET requests with a Chrome TLS fingerprint (utls)
// and a realistic browser header set. One request in flight per call, no
// retries, no cancellation beyond the configured timeout.
type Fetcher struct {
	cfg config.FetchConfig
}

// NewFetcher creates a Fetcher from config.
func NewFetcher(cfg config.FetchConfig) *Fetcher {
	return &Fetcher{cfg: cfg}
}

// Fetch retrieves the URL and returns the response body as text.
//
// Failure contract: any transport error, timeout, or non-200 status yields
// an empty string, never an error value. Callers must treat "" as "no data".
func (f *Fetcher) Fetch(ctx context.Context, targetURL string) string {
	ctx, cancel := context.WithTimeout(ctx, f.cfg.Timeout)
	defer cancel()

	transport := &http.Transport{
		DialTLSContext: dialTLSChrome,
	}
	if f.cfg.Proxy != "" {
		proxyURL, err := url.Parse(f.cfg.Proxy)
		if err == nil && (proxyURL.Scheme == "http" || proxyURL.Scheme == "https") {
			transport.Proxy = http.ProxyURL(proxyURL)
		}
	}

	client := &http.Client{Transport: transport}
	defer client.CloseIdleConnections()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		slog.Warn("fetch: build request failed", "url", targetURL, "error", err)
		return ""
	}
	req.Header.Set("User-Agent", chromeUA)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,image/apng,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Connection", "keep-alive")

	resp, err := client.Do(req)
	if err != nil {
		slog.Warn("fetch: request failed", "url", targetURL, "error", err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		slog.Warn("fetch: non-200 response", "url", targetURL, "status", resp.StatusCode)
		return ""
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.cfg.MaxBodyBytes))
	if err != nil {
		slog.Warn("fetch: read body failed", "url", targetURL, "error", err)
		return ""
	}

	slog.Debug("fetch: page retrieved", "url", targetURL, "bytes", len(body))
	return string(body)
}

// dialTLSChrome establishes a TLS connection using a Chrome fingerprint via
// utls, so the request survives fingerprint-based bot filtering.
func dialTLSChrome(ctx context.Context, network, addr string) (net.Conn, error) {
	dialer := &net.Dialer{}
	rawConn, err := dialer.DialContext(ctx, network, addr)
	if err != nil {
		return nil, err
	}

	host, _, _ := net.SplitHostPort(addr)
	tlsConn := tls2.UClient(rawConn, &tls2.Config{
		ServerName: host,
	}, tls2.HelloChrome_Auto)

	if err := tlsConn.HandshakeContext(ctx); err != nil {
		rawConn.Close()
		return nil, err
	}
	return tlsConn, nil
}
