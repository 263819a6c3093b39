// Package premiumize adapts the Premiumize account info API to the
// canonical status record. Contract: GET /api/account/info with the key in
// the query string, either as `apikey` or as an OAuth `access_token`.
// Premiumize reports no explicit premium flag; a positive remaining time
// on `premium_until` is what makes an account premium.
package premiumize

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"

	"statusio-go/internal/credential"
	apperrors "statusio-go/internal/errors"
	"statusio-go/internal/status"
	"statusio-go/internal/upstream"
)

const (
	displayName = "Premiumize"
	apiURL      = "https://www.premiumize.me/api/account/info"
	websiteURL  = "https://www.premiumize.me/"
)

type Client struct {
	cli      *http.Client
	key      string
	useOAuth bool
	url      string
}

func New(cli *http.Client, key string, useOAuth bool) *Client {
	return &Client{cli: cli, key: strings.TrimSpace(key), useOAuth: useOAuth, url: apiURL}
}

// WithURL overrides the API endpoint; tests point it at a stub server.
func (c *Client) WithURL(url string) *Client { c.url = url; return c }

func (c *Client) Service() credential.Service { return credential.ServicePremiumize }
func (c *Client) Name() string                { return displayName }
func (c *Client) WebsiteURL() string          { return websiteURL }

func (c *Client) Fetch(ctx context.Context, now time.Time) status.Record {
	if c.key == "" {
		return status.Unknown(displayName, apperrors.NoteMissingKey)
	}

	u, err := url.Parse(c.url)
	if err != nil {
		return status.Unknown(displayName, apperrors.NoteBadResponse)
	}
	q := u.Query()
	if c.useOAuth {
		q.Set("access_token", c.key)
	} else {
		q.Set("apikey", c.key)
	}
	u.RawQuery = q.Encode()

	body, code, err := upstream.GetJSON(ctx, c.cli, "premiumize", u.String(), nil)
	if err != nil {
		return status.Unknown(displayName, apperrors.NetworkNote(err))
	}
	if code < 200 || code > 299 {
		return status.Unknown(displayName, apperrors.HTTPNote(code))
	}
	return parse(body, now)
}

func parse(body []byte, now time.Time) status.Record {
	if !gjson.ValidBytes(body) ||
		!strings.EqualFold(gjson.GetBytes(body, "status").String(), "success") {
		return status.Unknown(displayName, apperrors.NoteBadResponse)
	}

	username := ""
	if id := gjson.GetBytes(body, "customer_id"); id.Exists() {
		username = id.String()
	}

	e := status.FromEpochSeconds(int64(gjson.GetBytes(body, "premium_until").Float()), now)
	if e.Days <= 0 {
		return status.NotPremium(displayName, username)
	}
	return status.Record{
		Provider:  displayName,
		Premium:   status.PremiumYes,
		DaysLeft:  status.Days(e.Days),
		ExpiresAt: e.Until,
		Username:  username,
	}
}
