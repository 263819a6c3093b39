// Package torbox adapts the TorBox user API to the canonical status
// record. Contract: GET /v1/api/user/me?settings=true with a Bearer token;
// the payload is an envelope {success, error, detail, data:{...}}.
//
// TorBox expresses "subscribed" two ways across observed payloads: an
// explicit is_subscribed flag and a positive remaining premium duration.
// Either one alone counts as subscribed.
package torbox

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"statusio-go/internal/credential"
	apperrors "statusio-go/internal/errors"
	"statusio-go/internal/status"
	"statusio-go/internal/upstream"
)

const (
	displayName = "TorBox"
	apiURL      = "https://api.torbox.app/v1/api/user/me?settings=true"
	websiteURL  = "https://torbox.app/"
)

type Client struct {
	cli   *http.Client
	token string
	url   string
}

func New(cli *http.Client, token string) *Client {
	return &Client{cli: cli, token: strings.TrimSpace(token), url: apiURL}
}

// WithURL overrides the API endpoint; tests point it at a stub server.
func (c *Client) WithURL(url string) *Client { c.url = url; return c }

func (c *Client) Service() credential.Service { return credential.ServiceTorBox }
func (c *Client) Name() string                { return displayName }
func (c *Client) WebsiteURL() string          { return websiteURL }

func (c *Client) Fetch(ctx context.Context, now time.Time) status.Record {
	if c.token == "" {
		return status.Unknown(displayName, apperrors.NoteMissingToken)
	}
	body, code, err := upstream.GetJSON(ctx, c.cli, "torbox", c.url, upstream.BearerHeader(c.token))
	if err != nil {
		return status.Unknown(displayName, apperrors.NetworkNote(err))
	}
	if code < 200 || code > 299 {
		return status.Unknown(displayName, apperrors.HTTPNote(code))
	}
	return parse(body, now)
}

func parse(body []byte, now time.Time) status.Record {
	if !gjson.ValidBytes(body) {
		return status.Unknown(displayName, apperrors.NoteBadResponse)
	}

	success := gjson.GetBytes(body, "success")
	data := gjson.GetBytes(body, "data")

	// An unsuccessful envelope without a data object is a hard failure;
	// prefer the service-reported error text over a generic note.
	if success.Exists() && !success.Bool() && !data.Exists() {
		return status.Unknown(displayName, envelopeNote(body, "TorBox: unsuccessful response"))
	}

	// The account object moved between payload revisions.
	user := data
	if !user.Exists() {
		user = gjson.GetBytes(body, "user")
	}
	if !user.Exists() {
		user = gjson.ParseBytes(body)
	}

	username := user.Get("username").String()
	if username == "" {
		username = user.Get("email").String()
	}

	subscribed := user.Get("is_subscribed").Bool() || user.Get("isSubscribed").Bool()

	var days *int
	var until *time.Time
	if iso := firstOf(user, "premium_expires_at", "premiumExpiresAt", "premium_until_iso"); iso.Exists() {
		if t, ok := status.ParseTime(iso.String()); ok {
			e := status.FromTime(t, now)
			days = status.Days(e.Days)
			until = e.Until
		}
	} else {
		for _, key := range []string{"remainingPremiumSeconds", "premium_left", "premiumLeft"} {
			if secs := user.Get(key); secs.Float() > 0 {
				e := status.FromDurationSeconds(int64(secs.Float()), now)
				days = status.Days(e.Days)
				until = e.Until
				break
			}
		}
	}

	hasDays := days != nil && *days > 0
	if subscribed || hasDays {
		rec := status.Record{Provider: displayName, Premium: status.PremiumYes, Username: username}
		if hasDays {
			rec.DaysLeft = days
		}
		rec.ExpiresAt = until
		return rec
	}

	rec := status.NotPremium(displayName, username)
	rec.Note = envelopeNote(body, "")
	if rec.Note == "" {
		rec.Note = user.Get("note").String()
	}
	if rec.Note == "" {
		rec.Note = "not subscribed"
	}
	return rec
}

// envelopeNote extracts the most specific error text the envelope carries.
func envelopeNote(body []byte, fallback string) string {
	for _, key := range []string{"error", "message", "detail"} {
		if r := gjson.GetBytes(body, key); r.Exists() && r.Type == gjson.String && r.String() != "" {
			return r.String()
		}
	}
	return fallback
}

func firstOf(obj gjson.Result, keys ...string) gjson.Result {
	for _, key := range keys {
		if r := obj.Get(key); r.Exists() {
			return r
		}
	}
	return gjson.Result{}
}
