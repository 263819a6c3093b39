// Package alldebrid adapts the AllDebrid v4 user API to the canonical
// status record. Contract: GET /v4/user with a Bearer key; the payload is
// an envelope {status, data:{user}}.
package alldebrid

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
	displayName = "AllDebrid"
	apiURL      = "https://api.alldebrid.com/v4/user"
	websiteURL  = "https://alldebrid.com/"
)

type Client struct {
	cli *http.Client
	key string
	url string
}

func New(cli *http.Client, key string) *Client {
	return &Client{cli: cli, key: strings.TrimSpace(key), url: apiURL}
}

// WithURL overrides the API endpoint; tests point it at a stub server.
func (c *Client) WithURL(url string) *Client { c.url = url; return c }

func (c *Client) Service() credential.Service { return credential.ServiceAllDebrid }
func (c *Client) Name() string                { return displayName }
func (c *Client) WebsiteURL() string          { return websiteURL }

func (c *Client) Fetch(ctx context.Context, now time.Time) status.Record {
	if c.key == "" {
		return status.Unknown(displayName, apperrors.NoteMissingKey)
	}
	body, code, err := upstream.GetJSON(ctx, c.cli, "alldebrid", c.url, upstream.BearerHeader(c.key))
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
		gjson.GetBytes(body, "status").String() != "success" ||
		!gjson.GetBytes(body, "data.user").Exists() {
		return status.Unknown(displayName, apperrors.NoteBadResponse)
	}

	user := gjson.GetBytes(body, "data.user")
	username := user.Get("username").String()

	if !user.Get("isPremium").Bool() {
		return status.NotPremium(displayName, username)
	}

	rec := status.Record{Provider: displayName, Premium: status.PremiumYes, Username: username}
	if until := user.Get("premiumUntil"); until.Exists() && until.Float() > 0 {
		e := status.FromEpochSeconds(int64(until.Float()), now)
		rec.DaysLeft = status.Days(e.Days)
		rec.ExpiresAt = e.Until
	}
	return rec
}
