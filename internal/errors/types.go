package errors

// FailureKind classifies everything that can go wrong inside a provider
// adapter. None of these propagate as Go errors past the adapter boundary;
// each collapses into an unknown-state record with a diagnostic note.
type FailureKind int

const (
	MissingCredential FailureKind = iota
	TransportFailure
	UpstreamHTTPError
	MalformedResponse
)

func (k FailureKind) String() string {
	switch k {
	case MissingCredential:
		return "missing_credential"
	case TransportFailure:
		return "transport_failure"
	case UpstreamHTTPError:
		return "upstream_http_error"
	case MalformedResponse:
		return "malformed_response"
	default:
		return "unknown"
	}
}
