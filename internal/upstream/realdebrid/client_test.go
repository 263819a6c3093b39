package realdebrid

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"statusio-go/internal/status"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) { return f(req) }

func TestFetchMissingToken(t *testing.T) {
	t.Parallel()

	calls := 0
	cli := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) {
		calls++
		return nil, nil
	})}

	rec := New(cli, "   ").Fetch(context.Background(), testNow)
	if rec.Premium != status.PremiumUnknown || rec.Note != "missing token" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if calls != 0 {
		t.Fatalf("missing token must not hit the network, got %d calls", calls)
	}
}

func TestFetchPremiumEpochExpiration(t *testing.T) {
	t.Parallel()

	exp := testNow.Add(72 * time.Hour).Unix()
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"username":"alice","premium":true,"expiration":` + itoa(exp) + `}`))
	}))
	defer srv.Close()

	rec := New(srv.Client(), "tok").WithURL(srv.URL).Fetch(context.Background(), testNow)
	if gotAuth != "Bearer tok" {
		t.Fatalf("authorization header: %q", gotAuth)
	}
	if rec.Premium != status.PremiumYes || rec.Username != "alice" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.DaysLeft == nil || *rec.DaysLeft != 3 {
		t.Fatalf("expected 3 days, got %v", rec.DaysLeft)
	}
	if rec.ExpiresAt == nil {
		t.Fatal("expected an expiry instant")
	}
}

func TestFetchPremiumDateStringExpiration(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"username":"alice","type":"premium","expiration":"2026-03-05T12:00:00"}`))
	}))
	defer srv.Close()

	rec := New(srv.Client(), "tok").WithURL(srv.URL).Fetch(context.Background(), testNow)
	if rec.Premium != status.PremiumYes {
		t.Fatalf("type=premium should count as premium: %+v", rec)
	}
	if rec.DaysLeft == nil || *rec.DaysLeft != 4 {
		t.Fatalf("expected 4 days, got %v", rec.DaysLeft)
	}
}

func TestFetchNotPremiumDiscardsExpiry(t *testing.T) {
	t.Parallel()

	exp := testNow.Add(240 * time.Hour).Unix()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"username":"bob","premium":false,"expiration":` + itoa(exp) + `}`))
	}))
	defer srv.Close()

	rec := New(srv.Client(), "tok").WithURL(srv.URL).Fetch(context.Background(), testNow)
	if rec.Premium != status.PremiumNo || rec.Username != "bob" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.DaysLeft == nil || *rec.DaysLeft != 0 || rec.ExpiresAt != nil {
		t.Fatalf("non-premium record must drop expiry data: %+v", rec)
	}
}

func TestFetchHTTPError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	rec := New(srv.Client(), "tok").WithURL(srv.URL).Fetch(context.Background(), testNow)
	if rec.Premium != status.PremiumUnknown || rec.Note != "HTTP 401" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestFetchMalformedBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>nope</html>"))
	}))
	defer srv.Close()

	rec := New(srv.Client(), "tok").WithURL(srv.URL).Fetch(context.Background(), testNow)
	if rec.Premium != status.PremiumUnknown || rec.Note != "bad response" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }
