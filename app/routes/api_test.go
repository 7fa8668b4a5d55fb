package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/gbvars988/SoilFullStack/app/models"
	"github.com/gbvars988/SoilFullStack/pkg/router"
)

func setup(t *testing.T) (*router.Router, *gorm.DB) {
	t.Helper()

	name := strings.ReplaceAll(t.Name(), "/", "_")
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{}, &models.Follow{}, &models.Product{},
		&models.Cart{}, &models.CartItem{}, &models.Review{},
	))

	r := router.New()
	RegisterAPI(r, db)
	return r, db
}

func do(t *testing.T, r *router.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}

func seedCatalogue(t *testing.T, db *gorm.DB) models.Product {
	t.Helper()

	require.NoError(t, db.Create(&models.User{
		Username: "alice", Email: "alice@soil.example", PasswordHash: "x",
		FirstName: "Alice", LastName: "Green",
	}).Error)

	product := models.Product{Name: "Raw Honey", Price: 1200, Description: "500g", Quantity: 10}
	require.NoError(t, db.Create(&product).Error)
	return product
}

func TestCartEndpoints(t *testing.T) {
	r, db := setup(t)
	product := seedCatalogue(t, db)

	rec := do(t, r, http.MethodPost, "/api/cart", map[string]interface{}{"username": "alice"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var errBody map[string]string
	decode(t, rec, &errBody)
	assert.Equal(t, "All fields (username, productId, quantity) are required.", errBody["error"])

	add := map[string]interface{}{"username": "alice", "productId": product.ProductID, "quantity": 2}
	rec = do(t, r, http.MethodPost, "/api/cart", add)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, r, http.MethodPost, "/api/cart", add)
	require.Equal(t, http.StatusOK, rec.Code)

	var item models.CartItem
	decode(t, rec, &item)
	assert.Equal(t, 4, item.Quantity)
	require.NotNil(t, item.Product)
	assert.Equal(t, "Raw Honey", item.Product.Name)

	rec = do(t, r, http.MethodGet, "/api/cart/alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.CartItem
	decode(t, rec, &items)
	assert.Len(t, items, 1)

	rec = do(t, r, http.MethodGet, "/api/cart/nobody", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	decode(t, rec, &errBody)
	assert.Equal(t, "Cart not found", errBody["error"])
}

func TestReviewEndpoints(t *testing.T) {
	r, db := setup(t)
	product := seedCatalogue(t, db)

	rec := do(t, r, http.MethodPost, "/api/reviews", map[string]interface{}{
		"content": "great", "stars": 9, "product_id": product.ProductID, "username": "alice",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, r, http.MethodPost, "/api/reviews", map[string]interface{}{
		"content": "great", "stars": 5, "product_id": product.ProductID, "username": "alice",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var review models.Review
	decode(t, rec, &review)
	require.NotNil(t, review.Stars)

	rec = do(t, r, http.MethodPost, "/api/reviews", map[string]interface{}{
		"content": "agreed", "stars": 3, "product_id": product.ProductID,
		"username": "alice", "parent_review_id": review.ReviewID,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var reply models.Review
	decode(t, rec, &reply)
	assert.Nil(t, reply.Stars)

	rec = do(t, r, http.MethodGet, fmt.Sprintf("/api/reviews/%d", product.ProductID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Reviews     []models.Review `json:"reviews"`
		TotalPages  int             `json:"totalPages"`
		CurrentPage int             `json:"currentPage"`
	}
	decode(t, rec, &page)
	assert.Equal(t, 1, page.TotalPages)
	assert.Equal(t, 1, page.CurrentPage)
	require.Len(t, page.Reviews, 1)
	assert.Len(t, page.Reviews[0].Replies, 1)

	rec = do(t, r, http.MethodDelete, fmt.Sprintf("/api/reviews/%d", review.ReviewID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, r, http.MethodDelete, fmt.Sprintf("/api/reviews/%d", review.ReviewID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestFollowEndpoints(t *testing.T) {
	r, db := setup(t)
	seedCatalogue(t, db)
	require.NoError(t, db.Create(&models.User{
		Username: "bob", Email: "bob@soil.example", PasswordHash: "x",
		FirstName: "Bob", LastName: "Fields",
	}).Error)

	rec := do(t, r, http.MethodPost, "/api/follow/follow", map[string]string{
		"followed": "alice", "follower": "alice",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var msg map[string]string
	decode(t, rec, &msg)
	assert.Equal(t, "You cannot follow yourself", msg["message"])

	body := map[string]string{"followed": "alice", "follower": "bob"}
	rec = do(t, r, http.MethodPost, "/api/follow/follow", body)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, r, http.MethodPost, "/api/follow/follow", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, r, http.MethodGet, "/api/users/following/bob", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var following []string
	decode(t, rec, &following)
	assert.Equal(t, []string{"alice"}, following)

	rec = do(t, r, http.MethodPost, "/api/follow/unfollow", body)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, r, http.MethodPost, "/api/follow/unfollow", body)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	decode(t, rec, &msg)
	assert.Equal(t, "You are not following this user", msg["message"])
}

func TestUserEndpoints(t *testing.T) {
	r, _ := setup(t)

	rec := do(t, r, http.MethodPost, "/api/users", map[string]string{
		"username": "carol", "email": "carol@soil.example", "password": "secret123",
		"firstname": "Carol", "lastname": "Rivers",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var user models.User
	decode(t, rec, &user)
	assert.Equal(t, "carol", user.Username)
	assert.NotContains(t, rec.Body.String(), "secret123")

	rec = do(t, r, http.MethodGet, "/api/users/login?username=carol&password=wrong", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "null", strings.TrimSpace(rec.Body.String()))
	assert.Empty(t, rec.Header().Get("X-Auth-Token"))

	rec = do(t, r, http.MethodGet, "/api/users/login?username=carol&password=secret123", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	token := rec.Header().Get("X-Auth-Token")
	require.NotEmpty(t, token)

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	mrec := httptest.NewRecorder()
	r.Handler().ServeHTTP(mrec, req)
	require.Equal(t, http.StatusOK, mrec.Code)

	decode(t, mrec, &user)
	assert.Equal(t, "carol", user.Username)

	rec = do(t, r, http.MethodGet, "/api/users/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, r, http.MethodGet, "/api/users/select/nobody", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEmptyCartSerializesAsArray(t *testing.T) {
	r, db := setup(t)
	product := seedCatalogue(t, db)

	add := map[string]interface{}{"username": "alice", "productId": product.ProductID, "quantity": 2}
	rec := do(t, r, http.MethodPost, "/api/cart", add)
	require.Equal(t, http.StatusOK, rec.Code)

	// Setting the only line to zero empties the cart.
	update := map[string]interface{}{"username": "alice", "productId": product.ProductID, "quantity": 0}
	rec = do(t, r, http.MethodPut, "/api/cart", update)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, r, http.MethodGet, "/api/cart/alice", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestEmptyReviewPageSerializesAsArray(t *testing.T) {
	r, db := setup(t)
	product := seedCatalogue(t, db)

	rec := do(t, r, http.MethodGet, fmt.Sprintf("/api/reviews/%d", product.ProductID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"reviews":[]`)

	// A review without replies carries an empty thread, not null.
	rec = do(t, r, http.MethodPost, "/api/reviews", map[string]interface{}{
		"content": "great", "stars": 5, "product_id": product.ProductID, "username": "alice",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, r, http.MethodGet, fmt.Sprintf("/api/reviews/%d", product.ProductID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"replies":[]`)
}

func TestEmptyUserListSerializesAsArray(t *testing.T) {
	r, _ := setup(t)

	rec := do(t, r, http.MethodGet, "/api/users", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestProductEndpoints(t *testing.T) {
	r, db := setup(t)
	product := seedCatalogue(t, db)

	rec := do(t, r, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var listing []models.RatedProduct
	decode(t, rec, &listing)
	require.Len(t, listing, 1)
	assert.Zero(t, listing[0].AverageRating)

	rec = do(t, r, http.MethodGet, fmt.Sprintf("/api/products/select/%d", product.ProductID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, r, http.MethodGet, "/api/products/select/9999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, r, http.MethodPost, "/api/products", map[string]interface{}{
		"name": "Organic Oats", "price": 480, "description": "1kg", "quantity": 5,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
}
