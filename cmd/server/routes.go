package main

import (
	"codeberg.org/diagramforge/server/api/rest/generate"
	"codeberg.org/diagramforge/server/api/rest/health"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server, rateLimit gin.HandlerFunc) {
	router.Use(CORSMiddleware(server.config))
	router.GET("/health", health.Handler)

	v1 := router.Group("/api/v1")

	{
		v1.GET("/ping", health.PingHandler)

		generate.RegisterRoutes(v1, server.services.Agent, rateLimit)
	}
}
