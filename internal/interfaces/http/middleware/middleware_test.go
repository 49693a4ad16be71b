package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitedesk/sitedesk/internal/infrastructure/auth"
	"github.com/sitedesk/sitedesk/internal/infrastructure/ratelimit"
	"github.com/sitedesk/sitedesk/internal/shared/constants"
	"github.com/sitedesk/sitedesk/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(engine *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func bearer(token string) http.Header {
	return http.Header{constants.HeaderAuthorization: []string{"Bearer " + token}}
}

func TestRequireAuth(t *testing.T) {
	jwtSvc := auth.NewJWTService("test-secret", time.Hour)
	m := NewAuthMiddleware(jwtSvc, logger.Nop())

	engine := gin.New()
	engine.GET("/me", m.RequireAuth(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"admin_id": c.GetUint(constants.ContextKeyAdminID),
			"role":     c.GetString(constants.ContextKeyAdminRole),
		})
	})

	valid, err := jwtSvc.Generate(42, auth.RoleCompanyManager)
	require.NoError(t, err)
	foreign, err := auth.NewJWTService("other-secret", time.Hour).Generate(42, auth.RoleCompanyManager)
	require.NoError(t, err)

	t.Run("valid token", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "/me", bearer(valid))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"admin_id":42,"role":"COMPANY_MANAGER"}`, w.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "/me", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong scheme", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "/me", http.Header{constants.HeaderAuthorization: []string{"Basic " + valid}})
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("signed with another secret", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "/me", bearer(foreign))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired", func(t *testing.T) {
		expired, err := auth.NewJWTService("test-secret", -time.Minute).Generate(42, auth.RoleSuperAdmin)
		require.NoError(t, err)
		w := serve(engine, http.MethodGet, "/me", bearer(expired))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func newRateLimitedEngine(t *testing.T, limit int) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	rl := NewRateLimiter(ratelimit.NewRedisRateLimiter(client, ratelimit.Window{Limit: limit, Period: time.Hour}), logger.Nop())
	engine := gin.New()
	engine.POST("/x", func(c *gin.Context) {
		if id := c.GetHeader("X-Admin"); id == "1" {
			c.Set(constants.ContextKeyAdminID, uint(1))
		}
		c.Next()
	}, rl.Limit(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return engine, mr
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	engine, _ := newRateLimitedEngine(t, 2)

	assert.Equal(t, http.StatusNoContent, serve(engine, http.MethodPost, "/x", nil).Code)
	assert.Equal(t, http.StatusNoContent, serve(engine, http.MethodPost, "/x", nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(engine, http.MethodPost, "/x", nil).Code)

	// admins have their own budget
	admin := http.Header{"X-Admin": []string{"1"}}
	assert.Equal(t, http.StatusNoContent, serve(engine, http.MethodPost, "/x", admin).Code)
}

func TestRateLimiter_FailsOpenWhenRedisIsDown(t *testing.T) {
	engine, mr := newRateLimitedEngine(t, 1)
	mr.Close()

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusNoContent, serve(engine, http.MethodPost, "/x", nil).Code)
	}
}

func TestCORS(t *testing.T) {
	engine := gin.New()
	engine.Use(CORS([]string{"https://panel.example.com"}))
	engine.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("allowed origin", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "/x", http.Header{"Origin": []string{"https://panel.example.com"}})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "https://panel.example.com", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("unknown origin", func(t *testing.T) {
		w := serve(engine, http.MethodGet, "/x", http.Header{"Origin": []string{"https://evil.example.com"}})
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight", func(t *testing.T) {
		w := serve(engine, http.MethodOptions, "/x", http.Header{"Origin": []string{"https://panel.example.com"}})
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("wildcard", func(t *testing.T) {
		open := gin.New()
		open.Use(CORS([]string{"*"}))
		open.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

		w := serve(open, http.MethodGet, "/x", http.Header{"Origin": []string{"https://anything.example"}})
		assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, w.Header().Get("Access-Control-Allow-Credentials"))
	})
}
