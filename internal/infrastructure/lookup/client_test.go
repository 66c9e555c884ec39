package lookup

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"newspaper_checkout/internal/domain/entities"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) (*Client, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", time.Second, "72762"), &calls
}

func TestClient_GetDistance(t *testing.T) {
	t.Run("resolved", func(t *testing.T) {
		c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, pathDistance, r.URL.Path)
			assert.Equal(t, "70173", r.URL.Query().Get("plzDestination"))
			_, _ = w.Write([]byte(`{"distanceCalcObj":[{"distance":32.4,"plzDestination":"70173"}]}`))
		})

		q, err := c.GetDistance(context.Background(), "70173")
		require.NoError(t, err)
		assert.Equal(t, entities.DistanceStatusResolved, q.Status)
		assert.Equal(t, 32.4, q.DistanceKm)
	})

	t.Run("origin at zero km", func(t *testing.T) {
		c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"distanceCalcObj":[{"distance":0,"plzDestination":"72762"}]}`))
		})

		q, err := c.GetDistance(context.Background(), "72762")
		require.NoError(t, err)
		assert.True(t, q.Resolved())
		assert.Zero(t, q.DistanceKm)
	})

	notFound := map[string]http.HandlerFunc{
		"empty list": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"distanceCalcObj":[]}`))
		},
		"zero for other postal code": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"distanceCalcObj":[{"distance":0}]}`))
		},
		"404": func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		},
	}
	for name, h := range notFound {
		t.Run(name, func(t *testing.T) {
			c, _ := newTestServer(t, h)
			q, err := c.GetDistance(context.Background(), "99999")
			require.NoError(t, err)
			assert.Equal(t, entities.DistanceStatusNotFound, q.Status)
			assert.Equal(t, "99999", q.PostalCode)
		})
	}

	t.Run("server error is not retried", func(t *testing.T) {
		c, calls := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := c.GetDistance(context.Background(), "70173")
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUpstreamStatus))
		assert.Equal(t, int32(1), atomic.LoadInt32(calls))
	})

	t.Run("malformed body", func(t *testing.T) {
		c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"distanceCalcObj":`))
		})

		_, err := c.GetDistance(context.Background(), "70173")
		assert.True(t, errors.Is(err, ErrMalformedResponse))
	})

	t.Run("negative distance", func(t *testing.T) {
		c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"distanceCalcObj":[{"distance":-3}]}`))
		})

		_, err := c.GetDistance(context.Background(), "70173")
		assert.True(t, errors.Is(err, ErrMalformedResponse))
	})
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := NewClient(base, time.Second, "72762")
	_, err := c.GetDistance(context.Background(), "70173")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUpstreamUnreachable))
}

func TestClient_GetLocalEditions(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, pathLocalEdition, r.URL.Path)
			assert.Equal(t, "70173", r.URL.Query().Get("plz"))
			_, _ = w.Write([]byte(`{"localversions":[{"id":3,"name":"Stuttgarter Ausgabe","picture":"s.png"},{"id":"5","name":"Filder"}]}`))
		})

		catalog, err := c.GetLocalEditions(context.Background(), "70173")
		require.NoError(t, err)
		assert.Equal(t, "70173", catalog.PostalCode)
		assert.Equal(t, []entities.Edition{
			{ID: 3, Name: "Stuttgarter Ausgabe", Picture: "s.png"},
			{ID: 5, Name: "Filder"},
		}, catalog.Editions)
	})

	t.Run("empty catalog is valid", func(t *testing.T) {
		c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"localversions":[]}`))
		})

		catalog, err := c.GetLocalEditions(context.Background(), "10115")
		require.NoError(t, err)
		assert.True(t, catalog.IsEmpty())
	})

	t.Run("missing edition data", func(t *testing.T) {
		c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		})

		_, err := c.GetLocalEditions(context.Background(), "70173")
		assert.True(t, errors.Is(err, ErrEditionDataMissing))
	})

	t.Run("malformed catalog", func(t *testing.T) {
		c, _ := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"localversions":"nope"}`))
		})

		_, err := c.GetLocalEditions(context.Background(), "70173")
		assert.True(t, errors.Is(err, ErrMalformedEditionCatalog))
	})
}
