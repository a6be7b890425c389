package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LENAX/dag-manager/pkg/api/dto"
)

type fakePinger struct {
	err error
}

func (p *fakePinger) PingContext(ctx context.Context) error { return p.err }

func (p *fakePinger) Stats() sql.DBStats { return sql.DBStats{OpenConnections: 2, InUse: 1, Idle: 1} }

func TestHealthHandler(t *testing.T) {
	t.Run("健康检查返回正确响应", func(t *testing.T) {
		h := NewHealthHandler("1.0.0-test", &fakePinger{})

		router := gin.New()
		router.GET("/health", h.Health)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.APIResponse[dto.HealthResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, 0, resp.Code)
		assert.Equal(t, "healthy", resp.Data.Status)
		assert.Equal(t, "1.0.0-test", resp.Data.Version)
		assert.NotEmpty(t, resp.Data.Uptime)
	})

	t.Run("数据库可用时就绪", func(t *testing.T) {
		h := NewHealthHandler("1.0.0-test", &fakePinger{})

		router := gin.New()
		router.GET("/ready", h.Ready)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		var resp dto.APIResponse[dto.ReadyResponse]
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "ready", resp.Data.Status)
		assert.Equal(t, 2, resp.Data.OpenConnections)
	})

	t.Run("数据库不可用时返回503", func(t *testing.T) {
		h := NewHealthHandler("1.0.0-test", &fakePinger{err: errors.New("connection refused")})

		router := gin.New()
		router.GET("/ready", h.Ready)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), "connection refused")
	})
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "5s", formatDuration(5*time.Second))
	assert.Equal(t, "2m3s", formatDuration(2*time.Minute+3*time.Second))
	assert.Equal(t, "1h0m1s", formatDuration(time.Hour+time.Second))
}
