package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guibecker772/advisor-control/internal/middleware"
	"github.com/guibecker772/advisor-control/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "middleware-test-secret"

func newRouter(cfg middleware.AuthConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.AuthMiddleware(cfg))
	r.GET("/whoami", func(c *gin.Context) {
		userID, _ := middleware.GetUserIDFromContext(c)
		ctxUserID, _ := middleware.GetUserIDFromCtx(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"user": userID, "ctxUser": ctxUserID})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	valid, err := utils.GenerateJWT("advisor-1", secret, time.Hour, "advisor-control")
	require.NoError(t, err)
	expired, err := utils.GenerateJWT("advisor-1", secret, -time.Minute, "advisor-control")
	require.NoError(t, err)
	foreign, err := utils.GenerateJWT("advisor-1", "another-secret", time.Hour, "advisor-control")
	require.NoError(t, err)
	noSubject, err := utils.GenerateJWT("", secret, time.Hour, "advisor-control")
	require.NoError(t, err)

	tests := []struct {
		name       string
		cfg        middleware.AuthConfig
		header     string
		query      string
		wantStatus int
	}{
		{name: "bearer header", cfg: middleware.AuthConfig{Secret: secret}, header: "Bearer " + valid, wantStatus: http.StatusOK},
		{name: "lowercase scheme", cfg: middleware.AuthConfig{Secret: secret}, header: "bearer " + valid, wantStatus: http.StatusOK},
		{name: "missing header", cfg: middleware.AuthConfig{Secret: secret}, wantStatus: http.StatusUnauthorized},
		{name: "malformed header", cfg: middleware.AuthConfig{Secret: secret}, header: valid, wantStatus: http.StatusUnauthorized},
		{name: "expired", cfg: middleware.AuthConfig{Secret: secret}, header: "Bearer " + expired, wantStatus: http.StatusUnauthorized},
		{name: "wrong secret", cfg: middleware.AuthConfig{Secret: secret}, header: "Bearer " + foreign, wantStatus: http.StatusUnauthorized},
		{name: "no subject", cfg: middleware.AuthConfig{Secret: secret}, header: "Bearer " + noSubject, wantStatus: http.StatusUnauthorized},
		{name: "issuer matches", cfg: middleware.AuthConfig{Secret: secret, Issuer: "advisor-control"}, header: "Bearer " + valid, wantStatus: http.StatusOK},
		{name: "issuer differs", cfg: middleware.AuthConfig{Secret: secret, Issuer: "elsewhere"}, header: "Bearer " + valid, wantStatus: http.StatusUnauthorized},
		{name: "query token allowed", cfg: middleware.AuthConfig{Secret: secret, AllowQueryToken: true}, query: valid, wantStatus: http.StatusOK},
		{name: "query token refused", cfg: middleware.AuthConfig{Secret: secret}, query: valid, wantStatus: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := "/whoami"
			if tt.query != "" {
				url += "?access_token=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, url, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			newRouter(tt.cfg).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"user":"advisor-1","ctxUser":"advisor-1"}`, w.Body.String())
			} else {
				assert.Contains(t, w.Body.String(), `"code":"AUTH_REQUIRED"`)
			}
		})
	}
}
