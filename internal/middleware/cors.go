package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

var localOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
	"http://127.0.0.1:3000",
	"http://127.0.0.1:5173",
}

// CORS allows the local dev frontends plus any configured origins.
func CORS(extraOrigins []string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(localOrigins)+len(extraOrigins))
	for _, o := range localOrigins {
		allowed[o] = true
	}
	for _, o := range extraOrigins {
		allowed[o] = true
	}

	cfg := cors.DefaultConfig()
	cfg.AllowOriginFunc = func(origin string) bool { return allowed[origin] }
	cfg.AllowCredentials = true
	cfg.AddAllowHeaders("Authorization", "X-Request-ID")
	cfg.AddExposeHeaders("X-Request-ID")
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	cfg.MaxAge = 10 * time.Minute

	return cors.New(cfg)
}
