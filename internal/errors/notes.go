package errors

import (
	"fmt"
	"strings"
)

// Diagnostic note strings carried on unknown-state records. These are
// debugging aids, never user-facing error cards, and their exact shape is
// part of the adapter contract.

// NoteMissingToken is used by adapters authenticating with a bearer token.
const NoteMissingToken = "missing token"

// NoteMissingKey is used by adapters authenticating with an API key.
const NoteMissingKey = "missing key"

// NoteBadResponse marks a payload whose shape the adapter did not recognize
// or whose envelope signalled failure without further detail.
const NoteBadResponse = "bad response"

// HTTPNote formats a non-2xx upstream status.
func HTTPNote(statusCode int) string {
	return fmt.Sprintf("HTTP %d", statusCode)
}

// NetworkNote formats a transport-level failure. The wrapped message is
// trimmed of the noisy url.Error prefix so notes stay short.
func NetworkNote(err error) string {
	msg := "unknown"
	if err != nil {
		msg = err.Error()
		// Strip `Get "https://...": ` prefixes emitted by net/http.
		if i := strings.LastIndex(msg, ": "); i >= 0 && strings.HasPrefix(msg, "Get ") {
			msg = msg[i+2:]
		}
	}
	return "network " + msg
}
