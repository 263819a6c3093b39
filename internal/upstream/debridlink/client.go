// Package debridlink adapts the Debrid-Link account API to the canonical
// status record. Contract: GET /api/account/infos, authenticated either
// with a Bearer header or an `apikey` query parameter depending on the
// configured scheme; the endpoint itself can be overridden per request.
// The payload is an envelope {success, value:{premiumLeft, username,
// accountType}} where premiumLeft is a remaining duration in seconds.
package debridlink

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
	displayName = "Debrid-Link"
	websiteURL  = "https://debrid-link.com/"
)

type Client struct {
	cli      *http.Client
	key      string
	scheme   credential.AuthScheme
	endpoint string
}

func New(cli *http.Client, key string, scheme credential.AuthScheme, endpoint string) *Client {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = credential.DefaultDebridLinkEndpoint
	}
	if scheme != credential.AuthQuery {
		scheme = credential.AuthBearer
	}
	return &Client{cli: cli, key: strings.TrimSpace(key), scheme: scheme, endpoint: strings.TrimSpace(endpoint)}
}

func (c *Client) Service() credential.Service { return credential.ServiceDebridLink }
func (c *Client) Name() string                { return displayName }
func (c *Client) WebsiteURL() string          { return websiteURL }

func (c *Client) Fetch(ctx context.Context, now time.Time) status.Record {
	if c.key == "" {
		return status.Unknown(displayName, apperrors.NoteMissingKey)
	}

	reqURL := c.endpoint
	var header http.Header
	if c.scheme == credential.AuthBearer {
		header = upstream.BearerHeader(c.key)
	} else {
		u, err := url.Parse(c.endpoint)
		if err != nil {
			return status.Unknown(displayName, apperrors.NoteBadResponse)
		}
		q := u.Query()
		q.Set("apikey", c.key)
		u.RawQuery = q.Encode()
		reqURL = u.String()
	}

	body, code, err := upstream.GetJSON(ctx, c.cli, "debridlink", reqURL, header)
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
		!gjson.GetBytes(body, "success").Bool() ||
		!gjson.GetBytes(body, "value").Exists() {
		return status.Unknown(displayName, apperrors.NoteBadResponse)
	}

	value := gjson.GetBytes(body, "value")
	username := value.Get("username").String()

	if secs := int64(value.Get("premiumLeft").Float()); secs > 0 {
		e := status.FromDurationSeconds(secs, now)
		if e.Days > 0 {
			return status.Record{
				Provider:  displayName,
				Premium:   status.PremiumYes,
				DaysLeft:  status.Days(e.Days),
				ExpiresAt: e.Until,
				Username:  username,
			}
		}
	}

	rec := status.NotPremium(displayName, username)
	accountType := "?"
	if t := value.Get("accountType"); t.Exists() && t.Type != gjson.Null {
		accountType = t.String()
	}
	rec.Note = "accountType=" + accountType
	return rec
}
