package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"LocalLoop-App/internal/domain/model"
)

// nominatimUserAgent identifies the application as the Nominatim usage
// policy requires.
const nominatimUserAgent = "LocalLoop-App/1.0"

// NominatimProvider resolves addresses through the public OSM Nominatim
// endpoint. Last network provider in the chain: keyless, so always
// available, but throttled to 1 request/second per the usage policy.
type NominatimProvider struct {
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewNominatimProvider creates the provider with its policy rate limit.
func NewNominatimProvider() *NominatimProvider {
	return &NominatimProvider{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		limiter:    rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

// Name identifies the provider in logs.
func (n *NominatimProvider) Name() string { return "nominatim" }

// Available always reports true: no credential is needed.
func (n *NominatimProvider) Available() bool { return true }

// Geocode waits for a rate-limit slot, then queries the search endpoint.
func (n *NominatimProvider) Geocode(ctx context.Context, address string) (*model.LatLng, error) {
	if err := n.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait aborted: %w", err)
	}

	params := url.Values{}
	params.Set("q", address)
	params.Set("format", "json")
	params.Set("limit", "1")
	reqURL := fmt.Sprintf("https://nominatim.openstreetmap.org/search?%s", params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("User-Agent", nominatimUserAgent)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned error status: %s", resp.Status)
	}

	var apiResp []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	if len(apiResp) == 0 {
		return nil, errors.New("no geocoding result returned")
	}

	// Nominatim returns coordinates as strings.
	lat, err := strconv.ParseFloat(apiResp[0].Lat, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed latitude %q: %w", apiResp[0].Lat, err)
	}
	lng, err := strconv.ParseFloat(apiResp[0].Lon, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed longitude %q: %w", apiResp[0].Lon, err)
	}

	return &model.LatLng{Lat: lat, Lng: lng}, nil
}

type nominatimResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}
