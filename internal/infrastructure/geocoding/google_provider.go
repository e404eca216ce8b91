package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"LocalLoop-App/internal/domain/model"
)

// GoogleProvider resolves addresses through the Google Maps Geocoding API.
// First in the provider chain when a key is configured.
type GoogleProvider struct {
	apiKey     string
	httpClient *http.Client
}

// NewGoogleProvider creates the provider. An empty key makes it
// unavailable rather than broken.
func NewGoogleProvider(apiKey string) *GoogleProvider {
	return &GoogleProvider{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Name identifies the provider in logs.
func (g *GoogleProvider) Name() string { return "google" }

// Available reports whether an API key is configured.
func (g *GoogleProvider) Available() bool { return g.apiKey != "" }

// Geocode calls the Geocoding API and returns the first result.
func (g *GoogleProvider) Geocode(ctx context.Context, address string) (*model.LatLng, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", g.apiKey)
	reqURL := fmt.Sprintf("https://maps.googleapis.com/maps/api/geocode/json?%s", params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned error status: %s", resp.Status)
	}

	var apiResp googleGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	if apiResp.Status != "OK" || len(apiResp.Results) == 0 {
		return nil, errors.New("no geocoding result returned")
	}

	location := apiResp.Results[0].Geometry.Location
	return &model.LatLng{Lat: location.Lat, Lng: location.Lng}, nil
}

// --- structs for parsing the Geocoding API response ---

type googleGeocodeResponse struct {
	Results []googleGeocodeResult `json:"results"`
	Status  string                `json:"status"`
}
type googleGeocodeResult struct {
	Geometry googleGeometry `json:"geometry"`
}
type googleGeometry struct {
	Location googleLocation `json:"location"`
}
type googleLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
