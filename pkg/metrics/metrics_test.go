package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestLabelPaths(t *testing.T) map[string]bool {
	t.Helper()

	families, err := DefaultRegistry.Gather()
	require.NoError(t, err)

	paths := map[string]bool{}
	for _, fam := range families {
		if fam.GetName() != "soil_http_requests_total" {
			continue
		}
		for _, m := range fam.GetMetric() {
			for _, label := range m.GetLabel() {
				if label.GetName() == "path" {
					paths[label.GetValue()] = true
				}
			}
		}
	}
	return paths
}

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	mux := chi.NewRouter()
	mux.Use(Middleware())
	mux.Get("/carts/{username}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	for _, username := range []string{"alice", "bob", "carol"} {
		req := httptest.NewRequest(http.MethodGet, "/carts/"+username, nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	paths := requestLabelPaths(t)
	assert.True(t, paths["/carts/{username}"])
	// One series per route pattern, not one per user.
	assert.False(t, paths["/carts/alice"])
	assert.False(t, paths["/carts/bob"])
}
