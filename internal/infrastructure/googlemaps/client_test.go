package googlemaps

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/aroundme-service/internal/config"
	"github.com/aroundme-service/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewClient(&config.MapsConfig{BaseURL: server.URL}, zap.NewNop()).(*client)
}

func TestClient_Geocode(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, geocodePath, r.URL.Path)
			assert.Equal(t, "Stańczyka 5, Krakow, Poland", r.URL.Query().Get("address"))
			assert.Equal(t, "pl", r.URL.Query().Get("language"))
			assert.Equal(t, "secret", r.URL.Query().Get("key"))

			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(domain.GeocodeResponse{
				Status: domain.MapsStatusOK,
				Results: []domain.GeocodeResult{{
					FormattedAddress: "Stańczyka 5, 30-126 Kraków, Poland",
					Geometry:         domain.Geometry{Location: domain.LatLng{Lat: 50.0782512, Lng: 19.8941993}},
				}},
			})
		})

		resp, err := c.Geocode(context.Background(), domain.GeocodeRequest{
			Params: domain.GeocodeParams{Address: "Stańczyka 5, Krakow, Poland", Language: "pl", Key: "secret"},
		})
		require.NoError(t, err)
		require.Len(t, resp.Results, 1)
		assert.Equal(t, "Stańczyka 5, 30-126 Kraków, Poland", resp.Results[0].FormattedAddress)
		assert.Equal(t, 50.0782512, resp.Results[0].Geometry.Location.Lat)
	})

	t.Run("zero results is not an error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
		})

		resp, err := c.Geocode(context.Background(), domain.GeocodeRequest{
			Params: domain.GeocodeParams{Address: "nowhere"},
		})
		require.NoError(t, err)
		assert.Equal(t, domain.MapsStatusZeroResults, resp.Status)
		assert.Empty(t, resp.Results)
	})

	t.Run("denied request returns status error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid.","results":[]}`))
		})

		_, err := c.Geocode(context.Background(), domain.GeocodeRequest{
			Params: domain.GeocodeParams{Address: "Rynek Główny, Kraków"},
		})
		require.Error(t, err)

		var statusErr *StatusError
		require.True(t, errors.As(err, &statusErr))
		assert.Equal(t, "REQUEST_DENIED", statusErr.Status)
		assert.Contains(t, err.Error(), "API key is invalid")
	})

	t.Run("http error", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte("boom"))
		})

		_, err := c.Geocode(context.Background(), domain.GeocodeRequest{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 500")
	})

	t.Run("timeout", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
		})

		_, err := c.Geocode(context.Background(), domain.GeocodeRequest{
			Params:  domain.GeocodeParams{Address: "slow"},
			Timeout: 20 * time.Millisecond,
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}

func TestClient_Directions(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, directionsPath, r.URL.Path)
		assert.Equal(t, "50.0782512,19.8941993", q.Get("origin"))
		assert.Equal(t, "50.0619474,19.9368564", q.Get("destination"))
		assert.Equal(t, "transit", q.Get("mode"))
		assert.Equal(t, "false", q.Get("alternatives"))

		w.Write([]byte(`{"status":"OK","routes":[{"legs":[{"distance":{"value":4007,"text":"4.0 km"},"duration":{"value":1346,"text":"22 mins"}}]}]}`))
	})

	resp, err := c.Directions(context.Background(), domain.DirectionsRequest{
		Params: domain.DirectionsParams{
			Origin:      domain.LatLng{Lat: 50.0782512, Lng: 19.8941993},
			Destination: domain.LatLng{Lat: 50.0619474, Lng: 19.9368564},
			Mode:        domain.TravelModeTransit,
		},
	})
	require.NoError(t, err)

	leg, ok := resp.FirstLeg()
	require.True(t, ok)
	assert.Equal(t, 4007, leg.Distance.Value)
	assert.Equal(t, 1346, leg.Duration.Value)
}

func TestClient_PlacesNearby(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, placesNearbyPath, r.URL.Path)
		assert.Equal(t, "1000", q.Get("radius"))
		assert.Equal(t, "tram stop", q.Get("keyword"))
		assert.Empty(t, q.Get("key"))

		w.Write([]byte(`{"status":"OK","results":[
			{"name":"Stańczyka","vicinity":"Kraków","geometry":{"location":{"lat":50.079,"lng":19.893}},"rating":4.1},
			{"name":"No geometry"}
		]}`))
	})

	resp, err := c.PlacesNearby(context.Background(), domain.PlacesNearbyRequest{
		Params: domain.PlacesNearbyParams{
			Location: domain.LatLng{Lat: 50.0782512, Lng: 19.8941993},
			Radius:   1000,
			Keyword:  "tram stop",
		},
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 2)
	require.NotNil(t, resp.Results[0].Geometry)
	require.NotNil(t, resp.Results[0].Rating)
	assert.Equal(t, 4.1, *resp.Results[0].Rating)
	assert.Nil(t, resp.Results[1].Geometry)
}
