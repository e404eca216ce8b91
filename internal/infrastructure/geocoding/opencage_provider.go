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

// OpenCageProvider resolves addresses through the OpenCage Data forward
// geocoding API. Second in the chain; keyed.
type OpenCageProvider struct {
	apiKey     string
	httpClient *http.Client
}

// NewOpenCageProvider creates the provider. An empty key makes it
// unavailable.
func NewOpenCageProvider(apiKey string) *OpenCageProvider {
	return &OpenCageProvider{
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Name identifies the provider in logs.
func (o *OpenCageProvider) Name() string { return "opencage" }

// Available reports whether an API key is configured.
func (o *OpenCageProvider) Available() bool { return o.apiKey != "" }

// Geocode calls the forward geocoding API and returns the best result.
func (o *OpenCageProvider) Geocode(ctx context.Context, address string) (*model.LatLng, error) {
	params := url.Values{}
	params.Set("q", address)
	params.Set("key", o.apiKey)
	params.Set("limit", "1")
	params.Set("no_annotations", "1")
	reqURL := fmt.Sprintf("https://api.opencagedata.com/geocode/v1/json?%s", params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("API returned error status: %s", resp.Status)
	}

	var apiResp openCageResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	if len(apiResp.Results) == 0 {
		return nil, errors.New("no geocoding result returned")
	}

	geometry := apiResp.Results[0].Geometry
	return &model.LatLng{Lat: geometry.Lat, Lng: geometry.Lng}, nil
}

// --- structs for parsing the OpenCage response ---

type openCageResponse struct {
	Results []openCageResult `json:"results"`
}
type openCageResult struct {
	Geometry openCageGeometry `json:"geometry"`
}
type openCageGeometry struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
