package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/whitecat-hosting/whitecat/internal/domain/entity"
	domainerr "github.com/whitecat-hosting/whitecat/internal/domain/error"
	"github.com/whitecat-hosting/whitecat/internal/infrastructure/adapter/logger"
	"github.com/whitecat-hosting/whitecat/mocks/port/usecase"
)

func newCatalogRouter(catalog *usecase.MockCatalogUseCase) *gin.Engine {
	handler := NewServerHandler(catalog, logger.NewNoopLogger())
	router := gin.New()
	router.GET("/api/configs", handler.ListConfigs)
	router.GET("/api/configs/:id", handler.GetConfig)
	return router
}

func TestServerHandler_ListConfigs(t *testing.T) {
	t.Run("should list active tiers", func(t *testing.T) {
		catalog := new(usecase.MockCatalogUseCase)
		catalog.On("ListConfigs", mock.Anything).Return([]*entity.ServerConfig{
			{ID: 1, Name: "Kitten", PriceMonthly: 50000, Features: []string{"SSL miễn phí"}},
			{ID: 2, Name: "Cat", PriceMonthly: 100000},
		}, nil)

		recorder := httptest.NewRecorder()
		newCatalogRouter(catalog).ServeHTTP(recorder,
			httptest.NewRequest(http.MethodGet, "/api/configs", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		body := decodeBody(t, recorder)
		assert.Equal(t, true, body["success"])
		configs := body["configs"].([]any)
		require.Len(t, configs, 2)
		assert.Equal(t, "Kitten", configs[0].(map[string]any)["name"])
		// Features marshal as an empty list, never null.
		assert.NotNil(t, configs[1].(map[string]any)["features"])
	})

	t.Run("should return an empty list when nothing is for sale", func(t *testing.T) {
		catalog := new(usecase.MockCatalogUseCase)
		catalog.On("ListConfigs", mock.Anything).Return([]*entity.ServerConfig{}, nil)

		recorder := httptest.NewRecorder()
		newCatalogRouter(catalog).ServeHTTP(recorder,
			httptest.NewRequest(http.MethodGet, "/api/configs", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Len(t, decodeBody(t, recorder)["configs"].([]any), 0)
	})
}

func TestServerHandler_GetConfig(t *testing.T) {
	t.Run("should return a single tier", func(t *testing.T) {
		catalog := new(usecase.MockCatalogUseCase)
		catalog.On("GetConfig", mock.Anything, uint64(2)).
			Return(&entity.ServerConfig{ID: 2, Name: "Cat", PriceMonthly: 100000}, nil)

		recorder := httptest.NewRecorder()
		newCatalogRouter(catalog).ServeHTTP(recorder,
			httptest.NewRequest(http.MethodGet, "/api/configs/2", nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
		config := decodeBody(t, recorder)["config"].(map[string]any)
		assert.Equal(t, "Cat", config["name"])
		assert.Equal(t, float64(100000), config["price_monthly"])
	})

	t.Run("should map an unknown id to 404", func(t *testing.T) {
		catalog := new(usecase.MockCatalogUseCase)
		catalog.On("GetConfig", mock.Anything, uint64(99)).Return(nil, domainerr.ErrConfigNotFound)

		recorder := httptest.NewRecorder()
		newCatalogRouter(catalog).ServeHTTP(recorder,
			httptest.NewRequest(http.MethodGet, "/api/configs/99", nil))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Equal(t, float64(domainerr.CodeConfigNotFound), decodeBody(t, recorder)["code"])
	})

	t.Run("should reject a non-numeric id", func(t *testing.T) {
		catalog := new(usecase.MockCatalogUseCase)

		recorder := httptest.NewRecorder()
		newCatalogRouter(catalog).ServeHTTP(recorder,
			httptest.NewRequest(http.MethodGet, "/api/configs/cat", nil))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		catalog.AssertNotCalled(t, "GetConfig", mock.Anything, mock.Anything)
	})
}
