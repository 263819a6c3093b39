package upstream

import (
	"context"
	"io"
	"net/http"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"statusio-go/internal/constants"
	apperrors "statusio-go/internal/errors"
	"statusio-go/internal/monitoring/tracing"
)

// maxBodyBytes caps how much of an upstream payload is read. Account info
// responses are tiny; anything larger is garbage.
const maxBodyBytes = 1 << 20

// GetJSON issues an authenticated GET and returns the body and status
// code. A transport-level failure returns err != nil; a non-2xx response
// is not an error at this layer, adapters map it to a diagnostic note.
func GetJSON(ctx context.Context, cli *http.Client, provider, url string, header http.Header) ([]byte, int, error) {
	spanCtx, span := tracing.StartSpan(ctx, "upstream/"+provider, "AccountInfo",
		trace.WithAttributes(
			attribute.String("http.method", http.MethodGet),
			attribute.String("http.url", url),
		))
	defer span.End()

	req, err := http.NewRequestWithContext(spanCtx, http.MethodGet, url, nil)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, err
	}
	req.Header.Set("User-Agent", constants.UserAgent)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Set(k, v)
		}
	}

	resp, err := cli.Do(req)
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.String("failure.kind", apperrors.TransportFailure.String()))
		span.SetStatus(codes.Error, err.Error())
		return nil, 0, err
	}
	defer resp.Body.Close()

	span.SetAttributes(attribute.Int("http.status_code", resp.StatusCode))
	if resp.StatusCode >= 400 {
		span.SetAttributes(attribute.String("failure.kind", apperrors.UpstreamHTTPError.String()))
		span.SetStatus(codes.Error, resp.Status)
	} else {
		span.SetStatus(codes.Ok, "")
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		span.RecordError(err)
		return nil, resp.StatusCode, err
	}
	return body, resp.StatusCode, nil
}

// BearerHeader builds the Authorization header most providers expect.
func BearerHeader(token string) http.Header {
	h := http.Header{}
	h.Set("Authorization", "Bearer "+token)
	return h
}
