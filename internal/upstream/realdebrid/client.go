// Package realdebrid adapts the Real-Debrid account API to the canonical
// status record. Contract: GET /rest/1.0/user with a Bearer token.
package realdebrid

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
	displayName = "Real-Debrid"
	apiURL      = "https://api.real-debrid.com/rest/1.0/user"
	websiteURL  = "https://real-debrid.com/"
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

func (c *Client) Service() credential.Service { return credential.ServiceRealDebrid }
func (c *Client) Name() string                { return displayName }
func (c *Client) WebsiteURL() string          { return websiteURL }

func (c *Client) Fetch(ctx context.Context, now time.Time) status.Record {
	if c.token == "" {
		return status.Unknown(displayName, apperrors.NoteMissingToken)
	}
	body, code, err := upstream.GetJSON(ctx, c.cli, "realdebrid", c.url, upstream.BearerHeader(c.token))
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

	username := gjson.GetBytes(body, "username").String()
	if username == "" {
		username = gjson.GetBytes(body, "user").String()
	}

	premium := gjson.GetBytes(body, "premium").Bool() ||
		strings.EqualFold(gjson.GetBytes(body, "type").String(), "premium")

	var days *int
	var until *time.Time
	if exp := expiry(body, now); exp != nil {
		days = status.Days(exp.Days)
		until = exp.Until
	}

	if premium {
		return status.Record{
			Provider:  displayName,
			Premium:   status.PremiumYes,
			DaysLeft:  days,
			ExpiresAt: until,
			Username:  username,
		}
	}
	return status.NotPremium(displayName, username)
}

// expiry normalizes whichever expiration field the payload carries:
// `expiration` as epoch seconds or a date string, or `premium_until` /
// `premiumUntil` as epoch seconds.
func expiry(body []byte, now time.Time) *status.Expiry {
	if r := gjson.GetBytes(body, "expiration"); r.Exists() {
		if r.Type == gjson.Number && r.Float() > 1_000_000_000 {
			e := status.FromEpochSeconds(int64(r.Float()), now)
			return &e
		}
		if t, ok := status.ParseTime(r.String()); ok {
			e := status.FromTime(t, now)
			return &e
		}
		return nil
	}
	for _, key := range []string{"premium_until", "premiumUntil"} {
		if r := gjson.GetBytes(body, key); r.Exists() && r.Float() > 0 {
			e := status.FromEpochSeconds(int64(r.Float()), now)
			return &e
		}
	}
	return nil
}
