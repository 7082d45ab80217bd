package main

import (
	"fmt"

	"codeberg.org/diagramforge/server/internal/config"
	"github.com/gin-gonic/gin"
)

// creates and configures a new server instance with all dependencies
func NewServer(cfg *config.Config) (*Server, error) {
	services, err := InitializeServices()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	rateLimit, err := RateLimitMiddleware(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize rate limiter: %w", err)
	}

	router := gin.Default()

	server := &Server{
		config:   cfg,
		services: services,
		router:   router,
	}

	RegisterRoutes(router, server, rateLimit)

	return server, nil
}
