package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// devOrigins are only trusted outside production.
var devOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:3001",
}

// CORSMiddleware allows the configured frontend origin to call the API with
// credentials. Disallowed preflights are rejected by gin-contrib/cors.
func CORSMiddleware(frontendURL string, production bool) gin.HandlerFunc {
	origins := []string{}
	if frontendURL != "" {
		origins = append(origins, frontendURL)
	}
	if !production {
		origins = append(origins, devOrigins...)
	}

	cfg := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept", "Authorization", CSRFTokenHeaderName, RequestIDHeader},
		ExposeHeaders:    []string{"Content-Disposition", RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	}
	if len(origins) == 0 {
		// same-origin only
		cfg.AllowOriginFunc = func(string) bool { return false }
	}
	return cors.New(cfg)
}
