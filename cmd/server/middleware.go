package main

import (
	"fmt"
	"time"

	appconfig "codeberg.org/diagramforge/server/internal/config"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// configures cross-origin access for the front-end
func CORSMiddleware(cfg *appconfig.Config) gin.HandlerFunc {
	corsConfig := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}

	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	}

	return cors.New(corsConfig)
}

// limits each client IP to the configured number of generation requests
// per minute, backed by an in-memory store
func RateLimitMiddleware(cfg *appconfig.Config) (gin.HandlerFunc, error) {
	rate, err := limiter.NewRateFromFormatted(fmt.Sprintf("%d-M", cfg.RateLimitPerMinute))
	if err != nil {
		return nil, fmt.Errorf("failed to parse rate limit: %w", err)
	}

	store := memory.NewStore()

	return mgin.NewMiddleware(limiter.New(store, rate)), nil
}
