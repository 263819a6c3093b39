package constants

import "time"

// HTTP transport defaults for upstream provider calls.
const (
	DefaultDialTimeout           = 10 * time.Second
	DefaultTLSHandshakeTimeout   = 10 * time.Second
	DefaultResponseHeaderTimeout = 30 * time.Second
	DefaultExpectContinueTimeout = 2 * time.Second

	// DefaultRequestTimeout bounds a whole provider request. The core
	// imposes no cancellation of its own; this is the transport budget.
	DefaultRequestTimeout = 20 * time.Second

	DefaultKeepAlive       = 30 * time.Second
	DefaultIdleConnTimeout = 90 * time.Second
	MaxIdleConns           = 64
	MaxIdleConnsPerHost    = 8
)

// UserAgent is sent on every upstream provider request.
const UserAgent = "Statusio/1.0"
