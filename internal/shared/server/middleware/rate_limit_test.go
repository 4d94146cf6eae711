package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func setupRateLimitedRouter(limiter *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RateLimit(RateLimitConfig{
		Rules: map[string]RateLimitRule{
			"start": {Rate: 1, Burst: 2},
		},
		GroupFor: func(c *gin.Context) string {
			if c.FullPath() == "/start" {
				return "start"
			}
			return ""
		},
		Limiter: limiter,
	}))
	r.POST("/start", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/other", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func doPost(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, nil)
	req.RemoteAddr = "10.0.0.1:1234"
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestRateLimitExhaustsBurst(t *testing.T) {
	now := time.Now()
	limiter := NewRateLimiter(func() time.Time { return now })
	router := setupRateLimitedRouter(limiter)

	for i := 0; i < 2; i++ {
		if resp := doPost(router, "/start"); resp.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, resp.Code)
		}
	}

	resp := doPost(router, "/start")
	if resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %d", resp.Code)
	}
	if resp.Header().Get("Retry-After") == "" {
		t.Fatalf("expected Retry-After header")
	}
}

func TestRateLimitRefillsOverTime(t *testing.T) {
	now := time.Now()
	limiter := NewRateLimiter(func() time.Time { return now })
	router := setupRateLimitedRouter(limiter)

	for i := 0; i < 2; i++ {
		doPost(router, "/start")
	}
	if resp := doPost(router, "/start"); resp.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", resp.Code)
	}

	now = now.Add(2 * time.Second)
	if resp := doPost(router, "/start"); resp.Code != http.StatusOK {
		t.Fatalf("expected 200 after refill, got %d", resp.Code)
	}
}

func TestRateLimitUnmatchedGroupPassesThrough(t *testing.T) {
	limiter := NewRateLimiter(nil)
	router := setupRateLimitedRouter(limiter)

	for i := 0; i < 10; i++ {
		if resp := doPost(router, "/other"); resp.Code != http.StatusOK {
			t.Fatalf("expected unlimited route, got %d", resp.Code)
		}
	}
}
