// Package geocode proxies partial-address lookups to the Geoapify
// autocomplete API. The upstream is treated as unreliable: every failure
// mode degrades to an empty result so the caller never blocks on it.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"
)

const (
	// MinQueryLength short-circuits tiny queries before any outbound call.
	MinQueryLength = 3

	defaultTimeout = 2 * time.Second
	defaultLimit   = 5
)

// AddressMatch is the reshaped subset of a Geoapify feature we expose.
type AddressMatch struct {
	Formatted string `json:"formatted"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	Postcode  string `json:"postcode"`
}

type Client struct {
	baseURL    string
	apiKey     string
	limit      int
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client. The client's timeout
// still bounds the outbound call.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLimit caps the number of results requested upstream.
func WithLimit(limit int) Option {
	return func(c *Client) {
		if limit > 0 {
			c.limit = limit
		}
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		limit:      defaultLimit,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// geoapify autocomplete response, trimmed to the fields we read.
type autocompleteResponse struct {
	Features []struct {
		Properties struct {
			CountryCode string `json:"country_code"`
			Formatted   string `json:"formatted"`
			Street      string `json:"street"`
			City        string `json:"city"`
			State       string `json:"state"`
			Postcode    string `json:"postcode"`
		} `json:"properties"`
	} `json:"features"`
}

// Search forwards the query upstream and returns US matches. Queries shorter
// than MinQueryLength return an empty slice without an outbound call.
// Transport errors, non-2xx statuses, and malformed payloads are logged and
// degrade to an empty slice; Search never returns an error to its caller.
func (c *Client) Search(ctx context.Context, query string) []AddressMatch {
	matches := []AddressMatch{}
	// Characters, not bytes: a two-rune query must not go upstream.
	if utf8.RuneCountInString(query) < MinQueryLength {
		return matches
	}

	req, err := c.newSearchRequest(ctx, query)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Msg("Failed to build address search request")
		return matches
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("query", query).Msg("Address search upstream unreachable")
		return matches
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Ctx(ctx).Warn().
			Int("status", resp.StatusCode).
			Str("query", query).
			Msg("Address search upstream returned non-success status")
		return matches
	}

	var payload autocompleteResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("query", query).Msg("Address search response malformed")
		return matches
	}

	for _, feature := range payload.Features {
		props := feature.Properties
		// Re-check the country even though the upstream filter already asks
		// for US-only results.
		if props.CountryCode != "us" {
			continue
		}
		matches = append(matches, AddressMatch{
			Formatted: props.Formatted,
			Street:    props.Street,
			City:      props.City,
			State:     props.State,
			Postcode:  props.Postcode,
		})
	}
	return matches
}

func (c *Client) newSearchRequest(ctx context.Context, query string) (*http.Request, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	params := url.Values{}
	params.Set("text", query)
	params.Set("filter", "countrycode:us")
	params.Set("limit", strconv.Itoa(c.limit))
	params.Set("apiKey", c.apiKey)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	return req, nil
}
