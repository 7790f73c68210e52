package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staydrive/internal/cache"
	"staydrive/internal/database"
	"staydrive/internal/repository"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(":memory:")
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))
	_, err = repository.Seed(context.Background(), db)
	require.NoError(t, err)

	svc := NewService(repository.NewCatalogRepository(db), cache.Nop{}, nil)
	router := gin.New()
	NewHandler(svc, nil).RegisterRoutes(router.Group("/api/v1"))
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestCatalogRoutes(t *testing.T) {
	router := setupRouter(t)

	w := get(router, "/api/v1/guest-houses")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Lakeside Cabin")

	w = get(router, "/api/v1/guest-houses?max_price=100")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "Lakeside Cabin")
	assert.Contains(t, w.Body.String(), "Old Town Loft")

	w = get(router, "/api/v1/guest-houses/1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"price":150`)

	w = get(router, "/api/v1/cars?seats=7")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Sorento")
	assert.NotContains(t, w.Body.String(), "Yaris")
}

func TestCatalogRoutes_Errors(t *testing.T) {
	router := setupRouter(t)

	w := get(router, "/api/v1/cars/999")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")

	w = get(router, "/api/v1/guest-houses/abc")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
