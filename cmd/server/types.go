package main

import (
	"codeberg.org/diagramforge/server/internal/agent"
	"codeberg.org/diagramforge/server/internal/config"
	"codeberg.org/diagramforge/server/internal/llm"
	"github.com/gin-gonic/gin"
)

// holds all dependencies and state for the API server
type Server struct {
	config   *config.Config
	services *Services
	router   *gin.Engine
}

// holds the external service clients and the pipeline built on them
type Services struct {
	Agent     *agent.Agent
	Generator llm.TextGenerator
}
