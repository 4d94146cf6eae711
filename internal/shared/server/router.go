package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"interview-backend/internal/interview"
	"interview-backend/internal/shared/config"
	"interview-backend/internal/shared/metrics"
	"interview-backend/internal/shared/server/middleware"
	"interview-backend/internal/shared/server/respond"
	"interview-backend/internal/uploads"
)

// RouterDeps carries handler dependencies for route registration.
type RouterDeps struct {
	Config           config.Config
	InterviewHandler *interview.Handler
	UploadsHandler   *uploads.Handler
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			Rules: map[string]middleware.RateLimitRule{
				"start":  {Rate: 0.2, Burst: 3},
				"answer": {Rate: 1, Burst: 5},
			},
			GroupFor: func(c *gin.Context) string {
				switch c.FullPath() {
				case "/start":
					return "start"
				case "/answer":
					return "answer"
				}
				return ""
			},
		}),
	)

	// Interview routes keep their original top-level paths.
	root := r.Group("")
	deps.InterviewHandler.RegisterRoutes(root)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	api.GET("/metrics", metrics.Handler())
	deps.UploadsHandler.RegisterRoutes(api)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
