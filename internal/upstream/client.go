package upstream

import (
	"net"
	"net/http"
	"net/url"
	"time"

	"statusio-go/internal/config"
	"statusio-go/internal/constants"
)

func durationOrDefault(seconds int, fallback time.Duration) time.Duration {
	if seconds > 0 {
		return time.Duration(seconds) * time.Second
	}
	return fallback
}

// NewHTTPClient builds the shared HTTP client for provider calls. Timeouts
// and proxy come from configuration; the overall request timeout is the
// only budget imposed on a fan-out, there is no per-call cancellation
// beyond it.
func NewHTTPClient(cfg *config.Config) *http.Client {
	dialTO := constants.DefaultDialTimeout
	tlsTO := constants.DefaultTLSHandshakeTimeout
	hdrTO := constants.DefaultResponseHeaderTimeout
	reqTO := constants.DefaultRequestTimeout
	var proxy string
	if cfg != nil {
		dialTO = durationOrDefault(cfg.DialTimeoutSec, dialTO)
		tlsTO = durationOrDefault(cfg.TLSHandshakeTimeoutSec, tlsTO)
		hdrTO = durationOrDefault(cfg.ResponseHeaderTimeoutSec, hdrTO)
		reqTO = durationOrDefault(cfg.RequestTimeoutSec, reqTO)
		proxy = cfg.ProxyURL
	}

	tr := &http.Transport{
		Proxy: proxyFunc(proxy),
		DialContext: (&net.Dialer{
			Timeout:   dialTO,
			KeepAlive: constants.DefaultKeepAlive,
		}).DialContext,
		TLSHandshakeTimeout:   tlsTO,
		ResponseHeaderTimeout: hdrTO,
		ExpectContinueTimeout: constants.DefaultExpectContinueTimeout,
		MaxIdleConns:          constants.MaxIdleConns,
		MaxIdleConnsPerHost:   constants.MaxIdleConnsPerHost,
		IdleConnTimeout:       constants.DefaultIdleConnTimeout,
	}
	return &http.Client{Transport: tr, Timeout: reqTO}
}

// proxyFunc returns the proxy selector for the transport: the configured
// URL when valid, the environment proxy otherwise.
func proxyFunc(proxyURL string) func(*http.Request) (*url.URL, error) {
	if proxyURL != "" {
		if parsed, err := url.Parse(proxyURL); err == nil {
			return http.ProxyURL(parsed)
		}
	}
	return http.ProxyFromEnvironment
}
