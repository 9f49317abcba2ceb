// Package station implements the station directory against an external
// alternative-fuel-station provider, with caching and a static fallback set.
package station

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/jmartal/chargeplan/core/model"
	corestation "github.com/jmartal/chargeplan/core/station"
)

// Client is the raw HTTP client for the station provider. It reports every
// transport error, non-success status, and decode failure to its caller;
// degrading to fallback data is the Directory's concern.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient builds a Client from the provider settings.
func NewClient(cfg Config) *Client {
	cfg.SetDefaults()
	return &Client{
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
	}
}

type queryResponse struct {
	FuelStations []model.RawStationRecord `json:"fuel_stations"`
}

// FetchNearby queries the provider for stations around the query center.
// Only public, available electric stations are requested.
func (c *Client) FetchNearby(ctx context.Context, q corestation.Query) ([]model.RawStationRecord, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("latitude", strconv.FormatFloat(q.Center.Latitude, 'f', 6, 64))
	params.Set("longitude", strconv.FormatFloat(q.Center.Longitude, 'f', 6, 64))
	params.Set("radius", strconv.FormatFloat(q.RadiusMiles, 'f', 1, 64))
	params.Set("fuel_type", "ELEC")
	params.Set("status", "E")
	params.Set("access", "public")
	if q.Connector != "" {
		params.Set("ev_connector_type", q.Connector)
	}
	if q.Limit > 0 {
		params.Set("limit", strconv.Itoa(q.Limit))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, body)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	var decoded queryResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return decoded.FuelStations, nil
}
