//go:build !integration

package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/munchbox/shipment-service/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestInitializeApp_WithoutDatabase(t *testing.T) {
	cfg := config.Config{
		Server: config.ServerConfig{
			Port:           "8080",
			RequestTimeout: 30 * time.Second,
			RateLimit:      100,
			RateWindow:     time.Minute,
		},
		Database: config.DatabaseConfig{Enabled: false},
	}

	router := InitializeApp(cfg)
	require.NotNil(t, router)

	t.Run("health endpoint", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("calculate endpoint uses built-in catalog", func(t *testing.T) {
		w := httptest.NewRecorder()
		body := `{"items": [{"unit_weight_grams": 100, "quantity": 2, "packets_per_unit": 1}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/shipments/calculate", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"box-s"`)
	})

	t.Run("box catalog routes absent without database", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/boxes", nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
