package geolocation

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/almamutuguti/Haven-Backend-sub000/internal/apperrors"
	"github.com/almamutuguti/Haven-Backend-sub000/internal/config"
)

func newTestMapsClient(t *testing.T, handler http.HandlerFunc) (*MapsClient, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	log := logrus.New()
	log.SetOutput(&bytes.Buffer{})

	cfg := &config.Config{
		MapsBaseURL:        server.URL,
		MapsAPIKey:         "test-key",
		GeocodeCacheTTL:    time.Minute,
		HospitalAPITimeout: 2 * time.Second,
	}

	return NewMapsClient(cfg, log), server
}

func TestMapsClient_Geocode(t *testing.T) {
	requests := 0
	client, _ := newTestMapsClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests++
		assert.Equal(t, "/geocode/json", r.URL.Path)
		assert.Equal(t, "Kenyatta National Hospital", r.URL.Query().Get("address"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"status": "OK",
			"results": [{
				"formatted_address": "Hospital Rd, Nairobi, Kenya",
				"place_id": "place-123",
				"geometry": {"location": {"lat": -1.3008, "lng": 36.8070}},
				"address_components": [
					{"long_name": "Nairobi", "types": ["locality"]},
					{"long_name": "Nairobi County", "types": ["administrative_area_level_1"]},
					{"long_name": "Kenya", "types": ["country"]}
				]
			}]
		}`))
	})

	coord, addr, err := client.Geocode(context.Background(), "Kenyatta National Hospital")

	require.NoError(t, err)
	assert.InDelta(t, -1.3008, coord.Latitude, 1e-6)
	assert.InDelta(t, 36.8070, coord.Longitude, 1e-6)
	assert.Equal(t, "Hospital Rd, Nairobi, Kenya", addr.FormattedAddress)
	assert.Equal(t, "Nairobi", addr.City)
	assert.Equal(t, "Nairobi County", addr.County)
	assert.Equal(t, "Kenya", addr.Country)
	assert.Equal(t, "place-123", addr.PlaceID)

	// A second lookup of the same address must come from cache.
	_, _, err = client.Geocode(context.Background(), "Kenyatta National Hospital")
	require.NoError(t, err)
	assert.Equal(t, 1, requests)
}

func TestMapsClient_Geocode_NoResults(t *testing.T) {
	client, _ := newTestMapsClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	})

	_, _, err := client.Geocode(context.Background(), "nowhere at all")

	assert.True(t, apperrors.IsNotFound(err))
}

func TestMapsClient_Geocode_ProviderError(t *testing.T) {
	client, _ := newTestMapsClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "REQUEST_DENIED", "results": []}`))
	})

	_, _, err := client.Geocode(context.Background(), "somewhere")

	assert.ErrorContains(t, err, "REQUEST_DENIED")
}

func TestMapsClient_ReverseGeocode(t *testing.T) {
	client, _ := newTestMapsClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("latlng"))
		w.Write([]byte(`{
			"status": "OK",
			"results": [{
				"formatted_address": "Moi Avenue, Nairobi",
				"geometry": {"location": {"lat": -1.2833, "lng": 36.8167}},
				"address_components": [{"long_name": "Nairobi", "types": ["locality"]}]
			}]
		}`))
	})

	addr, err := client.ReverseGeocode(context.Background(), -1.2833, 36.8167)

	require.NoError(t, err)
	assert.Equal(t, "Moi Avenue, Nairobi", addr.FormattedAddress)
	assert.Equal(t, "Nairobi", addr.City)
}

func TestMapsClient_Matrix(t *testing.T) {
	client, _ := newTestMapsClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/distancematrix/json", r.URL.Path)
		assert.Equal(t, "driving", r.URL.Query().Get("mode"))

		w.Write([]byte(`{
			"status": "OK",
			"rows": [{
				"elements": [
					{"status": "OK", "distance": {"value": 3200}, "duration": {"value": 540}},
					{"status": "ZERO_RESULTS"}
				]
			}]
		}`))
	})

	matrix, err := client.Matrix(
		context.Background(),
		[]Coordinate{{Latitude: -1.2833, Longitude: 36.8167}},
		[]Coordinate{{Latitude: -1.3008, Longitude: 36.8070}, {Latitude: -4.0435, Longitude: 39.6682}},
		"",
	)

	require.NoError(t, err)
	require.Len(t, matrix, 1)
	require.Len(t, matrix[0], 2)

	assert.True(t, matrix[0][0].OK)
	assert.Equal(t, 3200, matrix[0][0].DistanceMeters)
	assert.Equal(t, 540, matrix[0][0].DurationSeconds)

	assert.False(t, matrix[0][1].OK)
}

func TestMapsClient_Matrix_EmptyInput(t *testing.T) {
	client, _ := newTestMapsClient(t, func(w http.ResponseWriter, r *http.Request) {})

	_, err := client.Matrix(context.Background(), nil, []Coordinate{{Latitude: 1, Longitude: 1}}, "driving")

	assert.True(t, apperrors.IsValidation(err))
}
