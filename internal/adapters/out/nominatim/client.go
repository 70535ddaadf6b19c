// Package nominatim implements the Geocoder port against the OpenStreetMap
// Nominatim search API.
package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
)

const (
	// DefaultBaseURL is the public Nominatim instance. Production
	// deployments should point at their own instance via Config.
	DefaultBaseURL = "https://nominatim.openstreetmap.org"

	defaultTimeout = 10 * time.Second
	serviceName    = "nominatim"
)

// Client resolves free-form addresses into geographic coordinates.
// Implements ports.Geocoder. All failures, including an address that
// resolves to nothing, surface as upstream service errors.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

var _ ports.Geocoder = (*Client)(nil)

// NewClient creates a geocoding client against the given Nominatim base URL.
// An empty baseURL falls back to the public instance.
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// searchResult is the subset of the Nominatim response the client reads.
// Nominatim returns coordinates as strings.
type searchResult struct {
	Lon string `json:"lon"`
	Lat string `json:"lat"`
}

// Geocode resolves addressText to a GeoPoint using the first search result.
func (c *Client) Geocode(ctx context.Context, addressText string) (kernel.GeoPoint, error) {
	if addressText == "" {
		return kernel.GeoPoint{}, errs.NewValueIsRequiredError("addressText")
	}

	query := url.Values{}
	query.Set("q", addressText)
	query.Set("format", "json")
	query.Set("limit", "1")

	endpoint := fmt.Sprintf("%s/search?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewUpstreamServiceError(serviceName, err)
	}
	// Nominatim's usage policy requires an identifying user agent.
	req.Header.Set("User-Agent", "dispatch/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewUpstreamServiceError(serviceName, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return kernel.GeoPoint{}, errs.NewUpstreamServiceError(
			serviceName, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var results []searchResult
	if err = json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return kernel.GeoPoint{}, errs.NewUpstreamServiceError(serviceName, err)
	}

	if len(results) == 0 {
		return kernel.GeoPoint{}, errs.NewUpstreamServiceError(
			serviceName, fmt.Errorf("no results for %q", addressText))
	}

	longitude, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewUpstreamServiceError(serviceName, err)
	}

	latitude, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewUpstreamServiceError(serviceName, err)
	}

	point, err := kernel.NewGeoPoint(longitude, latitude)
	if err != nil {
		return kernel.GeoPoint{}, errs.NewUpstreamServiceError(serviceName, err)
	}

	return point, nil
}
