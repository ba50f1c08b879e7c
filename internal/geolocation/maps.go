package geolocation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gocache "github.com/patrickmn/go-cache"
	"github.com/sirupsen/logrus"

	"github.com/almamutuguti/Haven-Backend-sub000/internal/apperrors"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/config"
)

// MapsClient talks to the maps HTTP API and implements both Geocoder and
// DistanceProvider. Geocoding results are cached in-process because the
// same scene address tends to be resolved several times per incident.
type MapsClient struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	cache      *gocache.Cache
	logger     *logrus.Logger
}

// NewMapsClient builds a MapsClient from the application config.
func NewMapsClient(cfg *config.Config, logger *logrus.Logger) *MapsClient {
	return &MapsClient{
		baseURL: strings.TrimRight(cfg.MapsBaseURL, "/"),
		apiKey:  cfg.MapsAPIKey,
		httpClient: &http.Client{
			Timeout: cfg.HospitalAPITimeout,
		},
		cache:  gocache.New(cfg.GeocodeCacheTTL, 2*cfg.GeocodeCacheTTL),
		logger: logger,
	}
}

type addressComponent struct {
	LongName string   `json:"long_name"`
	Types    []string `json:"types"`
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		PlaceID          string `json:"place_id"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		AddressComponents []addressComponent `json:"address_components"`
	} `json:"results"`
}

type matrixResponse struct {
	Status string `json:"status"`
	Rows   []struct {
		Elements []struct {
			Status   string `json:"status"`
			Distance struct {
				Value int `json:"value"`
			} `json:"distance"`
			Duration struct {
				Value int `json:"value"`
			} `json:"duration"`
		} `json:"elements"`
	} `json:"rows"`
}

// Geocode resolves a street address to coordinates.
func (m *MapsClient) Geocode(ctx context.Context, address string) (Coordinate, *Address, error) {
	cacheKey := "geocode:" + strings.ToLower(strings.TrimSpace(address))
	if cached, found := m.cache.Get(cacheKey); found {
		hit := cached.(geocodeResult)
		return hit.coordinate, hit.address, nil
	}

	params := url.Values{}
	params.Set("address", address)

	resp, err := m.fetchGeocode(ctx, params)
	if err != nil {
		return Coordinate{}, nil, err
	}
	if len(resp.Results) == 0 {
		return Coordinate{}, nil, apperrors.NewNotFound("address", address)
	}

	result := resp.Results[0]
	coord := Coordinate{
		Latitude:  result.Geometry.Location.Lat,
		Longitude: result.Geometry.Location.Lng,
	}
	resolved := addressFromResult(result.FormattedAddress, result.PlaceID, result.AddressComponents)

	m.cache.Set(cacheKey, geocodeResult{coordinate: coord, address: resolved}, gocache.DefaultExpiration)

	return coord, resolved, nil
}

// ReverseGeocode resolves coordinates to the nearest street address.
func (m *MapsClient) ReverseGeocode(ctx context.Context, lat, lon float64) (*Address, error) {
	cacheKey := fmt.Sprintf("revgeo:%.5f,%.5f", lat, lon)
	if cached, found := m.cache.Get(cacheKey); found {
		hit := cached.(geocodeResult)
		return hit.address, nil
	}

	params := url.Values{}
	params.Set("latlng", fmt.Sprintf("%f,%f", lat, lon))

	resp, err := m.fetchGeocode(ctx, params)
	if err != nil {
		return nil, err
	}
	if len(resp.Results) == 0 {
		return nil, apperrors.NewNotFound("address", fmt.Sprintf("%f,%f", lat, lon))
	}

	result := resp.Results[0]
	resolved := addressFromResult(result.FormattedAddress, result.PlaceID, result.AddressComponents)

	m.cache.Set(cacheKey, geocodeResult{address: resolved}, gocache.DefaultExpiration)

	return resolved, nil
}

// Matrix requests road distances and durations for every origin and
// destination pair. Callers must treat non-OK elements as unroutable.
func (m *MapsClient) Matrix(ctx context.Context, origins, destinations []Coordinate, mode string) ([][]MatrixElement, error) {
	if len(origins) == 0 || len(destinations) == 0 {
		return nil, apperrors.NewValidation("coordinates", "origins and destinations must not be empty")
	}
	if mode == "" {
		mode = "driving"
	}

	params := url.Values{}
	params.Set("origins", joinCoordinates(origins))
	params.Set("destinations", joinCoordinates(destinations))
	params.Set("mode", mode)
	params.Set("key", m.apiKey)

	endpoint := m.baseURL + "/distancematrix/json?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("geolocation: could not build matrix request: %w", err)
	}

	httpResp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geolocation: matrix request failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation: matrix request returned status %d", httpResp.StatusCode)
	}

	var parsed matrixResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("geolocation: could not decode matrix response: %w", err)
	}
	if parsed.Status != "OK" {
		return nil, fmt.Errorf("geolocation: matrix provider returned status %q", parsed.Status)
	}

	matrix := make([][]MatrixElement, len(parsed.Rows))
	for i, row := range parsed.Rows {
		matrix[i] = make([]MatrixElement, len(row.Elements))
		for j, element := range row.Elements {
			matrix[i][j] = MatrixElement{
				OK:              element.Status == "OK",
				DistanceMeters:  element.Distance.Value,
				DurationSeconds: element.Duration.Value,
			}
		}
	}

	return matrix, nil
}

type geocodeResult struct {
	coordinate Coordinate
	address    *Address
}

func (m *MapsClient) fetchGeocode(ctx context.Context, params url.Values) (*geocodeResponse, error) {
	m.logger.WithField("component", "geolocation").Debug("Querying geocode provider")

	params.Set("key", m.apiKey)
	endpoint := m.baseURL + "/geocode/json?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("geolocation: could not build geocode request: %w", err)
	}

	httpResp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geolocation: geocode request failed: %w", err)
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation: geocode request returned status %d", httpResp.StatusCode)
	}

	var parsed geocodeResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("geolocation: could not decode geocode response: %w", err)
	}

	switch parsed.Status {
	case "OK", "ZERO_RESULTS":
		return &parsed, nil
	default:
		return nil, fmt.Errorf("geolocation: geocode provider returned status %q", parsed.Status)
	}
}

func addressFromResult(formatted, placeID string, components []addressComponent) *Address {
	addr := &Address{FormattedAddress: formatted, PlaceID: placeID}
	for _, component := range components {
		for _, t := range component.Types {
			switch t {
			case "locality":
				addr.City = component.LongName
			case "administrative_area_level_1":
				addr.County = component.LongName
			case "country":
				addr.Country = component.LongName
			}
		}
	}
	return addr
}

func joinCoordinates(coords []Coordinate) string {
	parts := make([]string, len(coords))
	for i, c := range coords {
		parts[i] = fmt.Sprintf("%f,%f", c.Latitude, c.Longitude)
	}
	return strings.Join(parts, "|")
}
