package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestNamedRoutes(t *testing.T) {
	r := New()
	r.Get("/users/{username}", "users.show", ok)
	r.Post("/users", "users.create", ok)

	path, found := r.Path("users.show")
	require.True(t, found)
	assert.Equal(t, "/users/{username}", path)

	_, found = r.Path("users.missing")
	assert.False(t, found)

	routes := r.Routes()
	require.Len(t, routes, 2)
	assert.Equal(t, http.MethodGet, routes[0].Method)
	assert.Equal(t, "users.show", routes[0].Name)
}

func TestURLSubstitution(t *testing.T) {
	r := New()
	r.Get("/reviews/{product_id}", "reviews.index", ok)

	url, err := r.URL("reviews.index", map[string]string{"product_id": "7"})
	require.NoError(t, err)
	assert.Equal(t, "/reviews/7", url)

	_, err = r.URL("reviews.index", nil)
	assert.Error(t, err)

	_, err = r.URL("missing.route", nil)
	assert.Error(t, err)
}

func TestGroupPrefixes(t *testing.T) {
	r := New()
	api := r.Group("/api")
	api.Get("/products", "products.index", ok)

	nested := api.Group("/admin")
	nested.Get("/stats", "admin.stats", ok)

	path, found := r.Path("products.index")
	require.True(t, found)
	assert.Equal(t, "/api/products", path)

	path, found = r.Path("admin.stats")
	require.True(t, found)
	assert.Equal(t, "/api/admin/stats", path)
}

func TestMiddlewareOrder(t *testing.T) {
	var order []string

	mw := func(tag string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, tag)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := New()
	group := r.Group("/api", mw("group"))
	group.Get("/x", "x", ok, mw("route"))

	req := httptest.NewRequest(http.MethodGet, "/api/x", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"group", "route"}, order)
}

func TestMethodDispatch(t *testing.T) {
	r := New()
	r.Get("/thing", "thing.get", ok)

	req := httptest.NewRequest(http.MethodPost, "/thing", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
