package debridlink

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"statusio-go/internal/credential"
	"statusio-go/internal/status"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestFetchBearerScheme(t *testing.T) {
	t.Parallel()

	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"value":{"username":"ida","premiumLeft":864000,"accountType":"premium"}}`))
	}))
	defer srv.Close()

	rec := New(srv.Client(), "key", credential.AuthBearer, srv.URL).Fetch(context.Background(), testNow)
	if gotAuth != "Bearer key" {
		t.Fatalf("authorization header: %q", gotAuth)
	}
	if rec.Premium != status.PremiumYes || rec.Username != "ida" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.DaysLeft == nil || *rec.DaysLeft != 10 {
		t.Fatalf("expected 10 days, got %v", rec.DaysLeft)
	}
}

func TestFetchQueryScheme(t *testing.T) {
	t.Parallel()

	var gotKey, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.URL.Query().Get("apikey")
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"value":{"username":"ida","premiumLeft":86400}}`))
	}))
	defer srv.Close()

	rec := New(srv.Client(), "key", credential.AuthQuery, srv.URL).Fetch(context.Background(), testNow)
	if gotKey != "key" {
		t.Fatalf("apikey query param: %q", gotKey)
	}
	if gotAuth != "" {
		t.Fatalf("query scheme must not send Authorization, got %q", gotAuth)
	}
	if rec.Premium != status.PremiumYes {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestFetchFreeAccountNote(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"value":{"username":"jack","premiumLeft":0,"accountType":"free"}}`))
	}))
	defer srv.Close()

	rec := New(srv.Client(), "key", credential.AuthBearer, srv.URL).Fetch(context.Background(), testNow)
	if rec.Premium != status.PremiumNo || rec.Username != "jack" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.Note != "accountType=free" {
		t.Fatalf("unexpected note: %q", rec.Note)
	}
}

func TestFetchMissingAccountType(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"value":{"username":"jack"}}`))
	}))
	defer srv.Close()

	rec := New(srv.Client(), "key", credential.AuthBearer, srv.URL).Fetch(context.Background(), testNow)
	if rec.Note != "accountType=?" {
		t.Fatalf("unexpected note: %q", rec.Note)
	}
}

func TestFetchFailedEnvelope(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":"badToken"}`))
	}))
	defer srv.Close()

	rec := New(srv.Client(), "key", credential.AuthBearer, srv.URL).Fetch(context.Background(), testNow)
	if rec.Premium != status.PremiumUnknown || rec.Note != "bad response" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}

func TestFetchMissingKey(t *testing.T) {
	t.Parallel()

	rec := New(http.DefaultClient, " ", credential.AuthBearer, "").Fetch(context.Background(), testNow)
	if rec.Premium != status.PremiumUnknown || rec.Note != "missing key" {
		t.Fatalf("unexpected record: %+v", rec)
	}
}
